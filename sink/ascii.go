// Copyright 2026 The turtget Authors
// SPDX-License-Identifier: BSD-3-Clause

package sink

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/moshez/turtget"
)

// asciiRamp maps luminance to characters, darkest first.
const asciiRamp = "@%#*+=-:. "

// DefaultColumns is the ASCII rendering width used when none is given.
const DefaultColumns = 80

// ASCII renders frames as text, one character per sampled pixel.
// Terminal cells are about twice as tall as wide, so rows are sampled twice
// as sparsely as columns.
type ASCII struct {
	w       io.Writer
	columns int
	lines   []string
}

var _ turtget.Sink = (*ASCII)(nil)

// NewASCII creates an ASCII sink rendering columns characters per row.
// Every displayed frame is written to w, if w is not nil, followed by an
// empty line.
func NewASCII(w io.Writer, columns int) *ASCII {
	if columns <= 0 {
		columns = DefaultColumns
	}
	return &ASCII{w: w, columns: columns}
}

// Clear drops the current rows.
func (a *ASCII) Clear() error {
	a.lines = nil
	return nil
}

// Display converts frame to rows of text.
func (a *ASCII) Display(frame image.Image) error {
	a.lines = toASCII(frame, a.columns)
	if a.w == nil {
		return nil
	}
	if _, err := io.WriteString(a.w, strings.Join(a.lines, "\n")+"\n\n"); err != nil {
		return fmt.Errorf("sink: write ascii: %w", err)
	}
	return nil
}

// Lines returns the current rows.
func (a *ASCII) Lines() []string {
	return a.lines
}

// toASCII samples img every step pixels horizontally and every 2*step
// pixels vertically, where step fits the width into columns characters.
func toASCII(img image.Image, columns int) []string {
	b := img.Bounds()
	stepX := b.Dx() / columns
	if stepX < 1 {
		stepX = 1
	}
	stepY := stepX * 2

	var rows []string
	for y := b.Min.Y; y < b.Max.Y; y += stepY {
		var line strings.Builder
		for x := b.Min.X; x < b.Max.X; x += stepX {
			line.WriteByte(asciiChar(img.At(x, y)))
		}
		rows = append(rows, line.String())
	}
	return rows
}

func asciiChar(c color.Color) byte {
	r, g, b, _ := c.RGBA()
	gray := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)

	idx := int(math.Round(gray / 255 * float64(len(asciiRamp)-1)))
	if idx >= len(asciiRamp) {
		idx = len(asciiRamp) - 1
	}
	return asciiRamp[idx]
}
