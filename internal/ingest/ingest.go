// Package ingest sniffs logbook documents, dispatches them to the right
// schema adapter, and fills the canonical roll store.
package ingest

import (
	"bytes"
	"fmt"
	"os"

	"filmtag/internal/rolls"
	"filmtag/internal/rolls/filmrolls"
	"filmtag/internal/rolls/lightme"
)

// Format names a supported logbook schema.
type Format string

const (
	// FormatFilmRolls is the Film Rolls XML export schema.
	FormatFilmRolls Format = "filmrolls"
	// FormatLightme is the Lightme JSON export schema.
	FormatLightme Format = "lightme"
)

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// DetectFormat sniffs a document's schema from its first significant byte.
// A leading UTF-8 byte order mark and whitespace are skipped; anything that
// opens with neither XML nor JSON syntax is unsupported.
func DetectFormat(content []byte) (Format, error) {
	trimmed := bytes.TrimPrefix(content, utf8BOM)
	trimmed = bytes.TrimLeft(trimmed, " \t\r\n")
	if len(trimmed) == 0 {
		return "", fmt.Errorf("%w: empty document", rolls.ErrUnsupportedFormat)
	}
	switch trimmed[0] {
	case '<':
		return FormatFilmRolls, nil
	case '{', '[':
		return FormatLightme, nil
	}
	return "", fmt.Errorf("%w: document starts with %q", rolls.ErrUnsupportedFormat, trimmed[0])
}

var parsers = map[Format]func([]byte) ([]rolls.Roll, error){
	FormatFilmRolls: filmrolls.Parse,
	FormatLightme:   lightme.Parse,
}

// Parse sniffs the document format and runs the matching schema adapter.
func Parse(content []byte) ([]rolls.Roll, error) {
	format, err := DetectFormat(content)
	if err != nil {
		return nil, err
	}
	return parsers[format](content)
}

// LoadFile parses one logbook document and adds its rolls to the store.
// Errors carry the source path so multi-file runs stay diagnosable.
func LoadFile(store *rolls.Store, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read logbook: %w", err)
	}
	parsed, err := Parse(content)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	for _, roll := range parsed {
		if err := store.Add(roll); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

// LoadFiles ingests every given logbook document in argument order. The
// first failing document aborts the load.
func LoadFiles(store *rolls.Store, paths []string) error {
	for _, path := range paths {
		if err := LoadFile(store, path); err != nil {
			return err
		}
	}
	return nil
}
