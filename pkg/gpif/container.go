// Package gpif reads Guitar Pro 7 containers: a zip archive holding the GPIF
// score document and binary side files.
package gpif

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/Garik-/gpscore/pkg/bytebuffer"
)

const (
	ScoreEntry      = "Content/score.gpif"
	StylesheetEntry = "Content/BinaryStylesheet"
)

var (
	zipMagic = []byte{'P', 'K', 0x03, 0x04}

	// ErrNotContainer is reported when the data is not a zip archive.
	ErrNotContainer = errors.New("not a GP7 container")
	// ErrMissingEntry is reported when a required archive entry is absent.
	ErrMissingEntry = errors.New("missing container entry")
)

// Container holds the uncompressed entries of a GP7 file.
type Container struct {
	entries map[string][]byte
}

// IsContainer reports whether data starts with a zip local file header.
func IsContainer(data []byte) bool {
	return bytebuffer.New(data).HasPrefix(zipMagic)
}

func OpenContainer(data []byte) (*Container, error) {
	if !IsContainer(data) {
		return nil, ErrNotContainer
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w - %v", ErrNotContainer, err)
	}

	c := &Container{entries: make(map[string][]byte, len(zr.File))}
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.Name, err)
		}
		c.entries[f.Name] = content
	}
	return c, nil
}

// Entry returns the content of the named entry.
func (c *Container) Entry(name string) ([]byte, error) {
	content, ok := c.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w - %s", ErrMissingEntry, name)
	}
	return content, nil
}

func (c *Container) Has(name string) bool {
	_, ok := c.entries[name]
	return ok
}

// Document decodes the score.gpif entry.
func (c *Container) Document() (*Document, error) {
	content, err := c.Entry(ScoreEntry)
	if err != nil {
		return nil, err
	}
	return Decode(bytes.NewReader(content))
}
