// Package b58uuid converts between the standard 36-character hyphenated
// UUID text form and a compact fixed-width 22-character Base58 form of the
// same 128-bit value.
//
// The Base58 form uses the Bitcoin alphabet (no 0, O, I or l) and is
// always exactly 22 characters, which is the minimum width covering every
// 128-bit value. Conversion is lossless in both directions.
package b58uuid

import (
	"github.com/b58uuid/b58uuid/internal/base58"
	"github.com/b58uuid/b58uuid/internal/uuid"
)

// Errors returned by the conversion functions. Wrapped errors carry the
// offending input; match with errors.Is.
var (
	ErrInvalidUUIDFormat = uuid.ErrInvalidFormat
	ErrInvalidB58Format  = base58.ErrInvalidB58Format
	ErrValueOverflow     = base58.ErrValueOverflow
)

// EncodedLen is the length of every B58UUID string.
const EncodedLen = base58.EncodedLen

// Encode converts a UUID text form (hyphenated or bare hex) to its
// 22-character B58UUID form. It fails with ErrInvalidUUIDFormat on
// malformed input.
func Encode(uuidText string) (string, error) {
	u, err := uuid.Parse(uuidText)
	if err != nil {
		return "", err
	}
	return base58.Encode(u), nil
}

// Decode converts a 22-character B58UUID back to the canonical lowercase
// hyphenated UUID text form. It fails with ErrInvalidB58Format on
// malformed input and ErrValueOverflow when the decoded value exceeds
// 128 bits.
func Decode(b58Text string) (string, error) {
	b, err := base58.Decode(b58Text)
	if err != nil {
		return "", err
	}
	return uuid.UUID(b).String(), nil
}

// Generate returns a random version 4 UUID in B58UUID form. It panics only
// if the system random source is exhausted, which is an unrecoverable
// environment failure rather than an input error.
func Generate() string {
	return base58.Encode(mustNew())
}

// GenerateUUID returns a random version 4 UUID in canonical text form.
func GenerateUUID() string {
	return uuid.UUID(mustNew()).String()
}

func mustNew() uuid.UUID {
	u, err := uuid.New()
	if err != nil {
		panic("b58uuid: random source unavailable: " + err.Error())
	}
	return u
}

// Info describes a successfully validated value in both renderings.
type Info struct {
	// Kind is "B58UUID" or "UUID" depending on which form the input
	// matched.
	Kind string

	// UUID is the canonical hyphenated text form.
	UUID string

	// B58UUID is the 22-character Base58 form.
	B58UUID string
}

// Validate classifies s as a B58UUID or a UUID, trying the Base58 form
// first. On success it returns both renderings of the value; otherwise
// ok is false.
func Validate(s string) (Info, bool) {
	if u, err := Decode(s); err == nil {
		return Info{Kind: "B58UUID", UUID: u, B58UUID: s}, true
	}
	if b, err := Encode(s); err == nil {
		u, _ := Decode(b)
		return Info{Kind: "UUID", UUID: u, B58UUID: b}, true
	}
	return Info{}, false
}
