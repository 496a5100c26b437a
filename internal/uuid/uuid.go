// Package uuid provides the 16-byte UUID value type and the strict
// text parsing and formatting rules for the canonical hyphenated form.
package uuid

import (
	"encoding/hex"
	"fmt"

	guuid "github.com/google/uuid"
)

// UUID is a 128-bit value in big-endian byte order. No semantic
// substructure is imposed beyond the textual layout; the value is treated
// as an opaque 128-bit quantity.
type UUID [16]byte

// Nil is the zero UUID.
var Nil UUID

// Parse parses a UUID from its text form. It accepts the canonical
// 36-character hyphenated form (hyphens exactly at offsets 8, 13, 18 and
// 23) and the bare 32-character hex form. Hex digits are matched
// case-insensitively. Anything else fails with ErrInvalidFormat.
func Parse(s string) (UUID, error) {
	var u UUID

	switch len(s) {
	case 36:
		if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
			return u, fmt.Errorf("%w: %q has misplaced hyphens", ErrInvalidFormat, s)
		}
		var compact [32]byte
		n := 0
		for i := 0; i < len(s); i++ {
			if i == 8 || i == 13 || i == 18 || i == 23 {
				continue
			}
			compact[n] = s[i]
			n++
		}
		if _, err := hex.Decode(u[:], compact[:]); err != nil {
			return u, fmt.Errorf("%w: %q contains non-hex characters", ErrInvalidFormat, s)
		}
		return u, nil

	case 32:
		if _, err := hex.Decode(u[:], []byte(s)); err != nil {
			return u, fmt.Errorf("%w: %q contains non-hex characters", ErrInvalidFormat, s)
		}
		return u, nil

	default:
		return u, fmt.Errorf("%w: %q has length %d, want 36 or 32", ErrInvalidFormat, s, len(s))
	}
}

// MustParse is like Parse but panics on invalid input. It simplifies
// initialization of fixtures and globals.
func MustParse(s string) UUID {
	u, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("uuid: Parse(%q): %v", s, err))
	}
	return u
}

// New returns a random (version 4) UUID drawn from a cryptographically
// secure source, with the RFC 4122 version and variant bits set.
func New() (UUID, error) {
	id, err := guuid.NewRandom()
	if err != nil {
		return Nil, fmt.Errorf("generating random UUID: %w", err)
	}
	return UUID(id), nil
}

// String returns the canonical text form: 32 lowercase hex digits with
// hyphens at offsets 8, 13, 18 and 23. Output length is always 36.
func (u UUID) String() string {
	var buf [36]byte
	hex.Encode(buf[0:8], u[0:4])
	buf[8] = '-'
	hex.Encode(buf[9:13], u[4:6])
	buf[13] = '-'
	hex.Encode(buf[14:18], u[6:8])
	buf[18] = '-'
	hex.Encode(buf[19:23], u[8:10])
	buf[23] = '-'
	hex.Encode(buf[24:36], u[10:16])
	return string(buf[:])
}

// Bytes returns the UUID as a 16-byte slice.
func (u UUID) Bytes() []byte {
	return u[:]
}

// IsNil reports whether the UUID is the zero value.
func (u UUID) IsNil() bool {
	return u == Nil
}

// MarshalText implements encoding.TextMarshaler.
func (u UUID) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *UUID) UnmarshalText(data []byte) error {
	id, err := Parse(string(data))
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (u UUID) MarshalBinary() ([]byte, error) {
	return u[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (u *UUID) UnmarshalBinary(data []byte) error {
	if len(data) != 16 {
		return fmt.Errorf("%w: got %d bytes, want 16", ErrInvalidFormat, len(data))
	}
	copy(u[:], data)
	return nil
}
