package base58

import (
	"crypto/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeKnownValues(t *testing.T) {
	tests := []struct {
		name  string
		input [16]byte
		want  string
	}{
		{
			name:  "zero value pads to full width",
			input: [16]byte{},
			want:  "1111111111111111111111",
		},
		{
			name: "reference UUID",
			input: [16]byte{
				0x55, 0x0e, 0x84, 0x00, 0xe2, 0x9b, 0x41, 0xd4,
				0xa7, 0x16, 0x44, 0x66, 0x55, 0x44, 0x00, 0x00,
			},
			want: "BWBeN28Vb7cMEx7Ym8AUzs",
		},
		{
			name: "value one",
			input: [16]byte{
				0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1,
			},
			want: "1111111111111111111112",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, EncodedLen)
		})
	}
}

func TestEncodeFixedWidthAndAlphabetClosure(t *testing.T) {
	inputs := [][16]byte{
		{},
		{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		{0x80},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0x39},
	}
	for i := 0; i < 200; i++ {
		var b [16]byte
		_, err := rand.Read(b[:])
		require.NoError(t, err)
		inputs = append(inputs, b)
	}

	for _, in := range inputs {
		got := Encode(in)
		require.Len(t, got, EncodedLen)
		for _, c := range got {
			assert.Contains(t, Alphabet, string(c))
			assert.NotContains(t, "0OIl", string(c))
		}
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	inputs := [][16]byte{
		{},
		{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{0x80, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0xff, 0xff, 0, 0, 0, 0, 0, 0, 0},
	}
	for i := 0; i < 500; i++ {
		var b [16]byte
		_, err := rand.Read(b[:])
		require.NoError(t, err)
		inputs = append(inputs, b)
	}

	for _, in := range inputs {
		got, err := Decode(Encode(in))
		require.NoError(t, err)
		assert.Equal(t, in, got)
	}
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "empty string",
			input:   "",
			wantErr: ErrInvalidB58Format,
		},
		{
			name:    "21 characters",
			input:   strings.Repeat("1", 21),
			wantErr: ErrInvalidB58Format,
		},
		{
			name:    "23 characters",
			input:   strings.Repeat("1", 23),
			wantErr: ErrInvalidB58Format,
		},
		{
			name:    "excluded digit zero",
			input:   "0111111111111111111111",
			wantErr: ErrInvalidB58Format,
		},
		{
			name:    "excluded uppercase O",
			input:   "111111111O111111111111",
			wantErr: ErrInvalidB58Format,
		},
		{
			name:    "excluded uppercase I",
			input:   "11111111111111111111I1",
			wantErr: ErrInvalidB58Format,
		},
		{
			name:    "excluded lowercase l",
			input:   "1111111111l11111111111",
			wantErr: ErrInvalidB58Format,
		},
		{
			name:    "non-alphanumeric character",
			input:   "111111111-111111111111",
			wantErr: ErrInvalidB58Format,
		},
		{
			name:    "all z overflows 128 bits",
			input:   strings.Repeat("z", 22),
			wantErr: ErrValueOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDecodeErrorNamesOffendingCharacter(t *testing.T) {
	_, err := Decode("1111111111l11111111111")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'l'")
	assert.Contains(t, err.Error(), "position 10")
}

func TestDecodeMaxValue(t *testing.T) {
	max := [16]byte{
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	}
	s := Encode(max)
	require.Len(t, s, EncodedLen)

	got, err := Decode(s)
	require.NoError(t, err)
	assert.Equal(t, max, got)
}
