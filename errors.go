package rangesum

import "errors"

var (
	// ErrInvalidInput indicates the sequence handed to New is absent (nil)
	// or, with RejectNonFinite, holds a NaN or infinite element.
	ErrInvalidInput = errors.New("rangesum: invalid input sequence")

	// ErrOutOfRange indicates query indices outside the indexed sequence.
	ErrOutOfRange = errors.New("rangesum: index out of range")
)
