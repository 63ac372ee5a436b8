package negative

import (
	"path/filepath"
	"strings"
)

// defaultExtensions are the containers exiftool can write embedded metadata
// into. Matching is case-insensitive on the path's extension.
var defaultExtensions = []string{"jpg", "jpeg", "tif", "tiff", "png", "dng", "webp"}

// ExtensionSet is the set of recognized image file extensions, lowercase
// without the leading dot.
type ExtensionSet map[string]struct{}

// NewExtensionSet returns the default extension set plus any configured
// extras.
func NewExtensionSet(extra ...string) ExtensionSet {
	set := make(ExtensionSet, len(defaultExtensions)+len(extra))
	for _, ext := range defaultExtensions {
		set[ext] = struct{}{}
	}
	for _, ext := range extra {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext != "" {
			set[ext] = struct{}{}
		}
	}
	return set
}

// Recognizes reports whether the path carries a recognized image extension.
func (s ExtensionSet) Recognizes(path string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return false
	}
	_, ok := s[ext]
	return ok
}
