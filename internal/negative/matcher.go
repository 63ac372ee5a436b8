// Package negative pairs a roll's frames with scanned image files and
// computes the embedded-metadata tag set for each pair.
package negative

import (
	"fmt"
	"os"

	"filmtag/internal/rolls"
)

// Pair is one frame matched to one image file.
type Pair struct {
	Frame *rolls.Frame
	Path  string
}

// Match pairs the roll's frames to the given image paths by position: frame k
// with path k, in argument order. Every path is validated before any pair is
// formed, so a failing file aborts the whole batch with nothing matched.
func Match(roll *rolls.Roll, paths []string, extensions ExtensionSet) ([]Pair, error) {
	if len(roll.Frames) != len(paths) {
		return nil, fmt.Errorf("%w: roll %s has %d frames but %d files were supplied",
			ErrFrameCountMismatch, roll.ID, len(roll.Frames), len(paths))
	}
	for _, path := range paths {
		if !extensions.Recognizes(path) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownExtension, path)
		}
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("%w: %s is a directory", ErrFileNotFound, path)
		}
	}

	pairs := make([]Pair, len(paths))
	for i := range paths {
		pairs[i] = Pair{Frame: &roll.Frames[i], Path: paths[i]}
	}
	return pairs, nil
}
