package uuid

import "errors"

// ErrInvalidFormat indicates input that is not a well-formed UUID string:
// wrong length, misplaced hyphens, or non-hex characters.
var ErrInvalidFormat = errors.New("invalid UUID format")
