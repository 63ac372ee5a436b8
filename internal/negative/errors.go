package negative

import "errors"

var (
	// ErrFrameCountMismatch marks a roll whose frame count differs from the
	// number of supplied image files, in either direction.
	ErrFrameCountMismatch = errors.New("frame count mismatch")

	// ErrFileNotFound marks a supplied image path with no file behind it.
	ErrFileNotFound = errors.New("file not found")

	// ErrUnknownExtension marks a supplied image path whose extension maps to
	// no supported embedded-metadata container.
	ErrUnknownExtension = errors.New("unknown extension")

	// ErrNoApplicableMetadata marks a frame carrying no writable fields at
	// all. Callers treat it as a successful no-op, not a failure.
	ErrNoApplicableMetadata = errors.New("no applicable metadata")
)
