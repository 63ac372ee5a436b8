package rolls

import "errors"

var (
	// ErrUnsupportedFormat marks a document whose media type matches no
	// known logbook schema.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrMalformedDocument marks a document with missing required fields or
	// structurally invalid nesting, cardinality, or frame numbering.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrDuplicateRoll marks two source records sharing a roll identifier.
	// Duplicates are never merged, even when content-identical.
	ErrDuplicateRoll = errors.New("duplicate roll")

	// ErrRollNotFound marks a lookup for an identifier no source supplied.
	ErrRollNotFound = errors.New("roll not found")
)
