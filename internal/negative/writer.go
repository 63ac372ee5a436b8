package negative

import (
	"context"
	"fmt"

	exiftool "github.com/barasher/go-exiftool"
)

// Writer persists a computed tag set into one image file. Implementations
// must not reorder or rewrite the tags they are handed.
type Writer interface {
	Apply(ctx context.Context, path string, tags TagSet) error
}

// ExiftoolWriter writes tag sets through a long-lived exiftool process.
type ExiftoolWriter struct {
	et *exiftool.Exiftool
}

// NewExiftoolWriter starts the exiftool backend. An empty binaryPath uses
// whatever exiftool the PATH resolves.
func NewExiftoolWriter(binaryPath string) (*ExiftoolWriter, error) {
	var opts []func(*exiftool.Exiftool) error
	if binaryPath != "" {
		opts = append(opts, exiftool.SetExiftoolBinaryPath(binaryPath))
	}
	et, err := exiftool.NewExiftool(opts...)
	if err != nil {
		return nil, fmt.Errorf("start exiftool: %w", err)
	}
	return &ExiftoolWriter{et: et}, nil
}

// Apply writes the tag set into the file at path.
func (w *ExiftoolWriter) Apply(ctx context.Context, path string, tags TagSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fm := exiftool.FileMetadata{File: path, Fields: map[string]interface{}{}}
	for _, tag := range tags {
		fm.SetString(tag.Name, tag.Value)
	}
	batch := []exiftool.FileMetadata{fm}
	w.et.WriteMetadata(batch)
	if err := batch[0].Err; err != nil {
		return fmt.Errorf("write metadata to %s: %w", path, err)
	}
	return nil
}

// Close shuts the exiftool process down.
func (w *ExiftoolWriter) Close() error {
	return w.et.Close()
}

// Applied is one tag set a dry run would have written.
type Applied struct {
	Path string
	Tags TagSet
}

// DryRunWriter records tag sets instead of persisting them. It sees exactly
// the sets a live writer would, so dry-run output matches a real run.
type DryRunWriter struct {
	Writes []Applied
}

// Apply records the tag set without touching the file.
func (w *DryRunWriter) Apply(_ context.Context, path string, tags TagSet) error {
	w.Writes = append(w.Writes, Applied{Path: path, Tags: tags})
	return nil
}
