// Copyright 2026 The turtget Authors
// SPDX-License-Identifier: BSD-3-Clause

package sink

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/moshez/turtget"
)

// ErrMissingPath is returned when a file sink is created without a path.
var ErrMissingPath = errors.New("sink: file path required")

// PNGFile writes every displayed frame to a PNG file. The file is written
// to a temporary sibling first and renamed into place, so readers never see
// a partial image.
type PNGFile struct {
	path string
	enc  png.Encoder
}

var _ turtget.Sink = (*PNGFile)(nil)

// NewPNGFile creates a sink writing to path.
func NewPNGFile(path string) (*PNGFile, error) {
	if path == "" {
		return nil, ErrMissingPath
	}
	return &PNGFile{
		path: filepath.Clean(path),
		enc:  png.Encoder{CompressionLevel: png.BestSpeed},
	}, nil
}

// Path returns the target file path.
func (p *PNGFile) Path() string {
	return p.path
}

// Clear removes the file. A missing file is not an error.
func (p *PNGFile) Clear() error {
	if err := os.Remove(p.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("sink: remove %s: %w", p.path, err)
	}
	return nil
}

// Display writes frame to the file.
func (p *PNGFile) Display(frame image.Image) error {
	tmp, err := os.CreateTemp(filepath.Dir(p.path), ".turtget-*.png")
	if err != nil {
		return fmt.Errorf("sink: create temp file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name()) // no-op after a successful rename
	}()

	if err := p.enc.Encode(tmp, frame); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sink: encode png: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("sink: close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), p.path); err != nil {
		return fmt.Errorf("sink: rename into %s: %w", p.path, err)
	}

	turtget.Logger().Debug("sink: png frame", "path", p.path)
	return nil
}
