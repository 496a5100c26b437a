// Package base58 implements the fixed-width Base58 encoding used for
// B58UUID values: every 128-bit input encodes to exactly 22 characters of
// the Bitcoin alphabet, and every 22-character string decodes back to the
// same 16 bytes or is rejected.
package base58

import (
	"encoding/binary"
	"fmt"
)

// Alphabet is the Bitcoin-style Base58 character table. The visually
// ambiguous characters 0, O, I and l are excluded.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// EncodedLen is the fixed length of an encoded value. 58^22 > 2^128 > 58^21,
// so 22 digits is the minimum width that covers every 128-bit value.
const EncodedLen = 22

// decodeTable maps a byte to its alphabet index, or -1 for bytes outside
// the alphabet.
var decodeTable [256]int8

func init() {
	for i := range decodeTable {
		decodeTable[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		decodeTable[Alphabet[i]] = int8(i)
	}
}

// Encode converts a 16-byte big-endian value to its 22-character Base58
// representation. Small values are left-padded with '1' (the zero digit),
// so the zero value encodes to twenty-two '1' characters.
func Encode(b [16]byte) string {
	v := uint128{
		hi: binary.BigEndian.Uint64(b[0:8]),
		lo: binary.BigEndian.Uint64(b[8:16]),
	}

	var out [EncodedLen]byte
	for i := EncodedLen - 1; i >= 0; i-- {
		var rem uint64
		v, rem = v.divmod58()
		out[i] = Alphabet[rem]
	}
	return string(out[:])
}

// Decode converts a 22-character Base58 string back to its 16-byte
// big-endian value. It fails with ErrInvalidB58Format if the input has the
// wrong length or contains a character outside the alphabet, and with
// ErrValueOverflow if the decoded value does not fit in 128 bits (the
// 22-character width admits values up to 58^22-1, which exceeds 2^128-1).
func Decode(s string) ([16]byte, error) {
	var b [16]byte

	if len(s) != EncodedLen {
		return b, fmt.Errorf("%w: %q has length %d, want %d",
			ErrInvalidB58Format, s, len(s), EncodedLen)
	}

	var v uint128
	for i := 0; i < len(s); i++ {
		digit := decodeTable[s[i]]
		if digit < 0 {
			return b, fmt.Errorf("%w: invalid character %q at position %d in %q",
				ErrInvalidB58Format, s[i], i, s)
		}
		next, ok := v.mul58add(uint64(digit))
		if !ok {
			return b, fmt.Errorf("%w: %q decodes to a value larger than 128 bits",
				ErrValueOverflow, s)
		}
		v = next
	}

	binary.BigEndian.PutUint64(b[0:8], v.hi)
	binary.BigEndian.PutUint64(b[8:16], v.lo)
	return b, nil
}
