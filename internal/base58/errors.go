package base58

import "errors"

var (
	// ErrInvalidB58Format indicates input that is not a well-formed
	// 22-character Base58 string.
	ErrInvalidB58Format = errors.New("invalid B58UUID format")

	// ErrValueOverflow indicates a syntactically valid 22-character string
	// whose decoded value exceeds the maximum 128-bit value.
	ErrValueOverflow = errors.New("B58UUID value exceeds 128 bits")
)
