// Package icon provides the turtle glyph and the compositing primitives used
// to overlay it on a frame: rotation about the glyph center and paste through
// the glyph's own alpha channel.
package icon

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"image"
	_ "image/png" // PNG decoder for the embedded asset
	"io"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/image/draw"
)

// Size is the width and height, in pixels, of every glyph returned by this
// package.
const Size = 20

//go:embed turtle.png
var turtlePNG []byte

// ErrEmptyData is returned when glyph data is empty.
var ErrEmptyData = errors.New("icon: empty data")

// defaultGlyph decodes the embedded asset once per process.
var defaultGlyph = sync.OnceValues(func() (*image.NRGBA, error) {
	return Load(bytes.NewReader(turtlePNG))
})

// Default returns the embedded turtle glyph, pointing up, sized Size x Size.
// The asset is decoded on first use and shared afterwards; callers must not
// modify the returned image.
func Default() (*image.NRGBA, error) {
	return defaultGlyph()
}

// Load decodes a glyph from r, auto-detecting the registered image format,
// and fits it to Size x Size.
func Load(r io.Reader) (*image.NRGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("icon: decode: %w", err)
	}
	return Fit(img), nil
}

// LoadFile loads a glyph from the given file path.
func LoadFile(path string) (*image.NRGBA, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("icon: read file: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Load(bytes.NewReader(data))
}

// Fit resizes img to Size x Size with bilinear filtering and converts it to
// non-premultiplied RGBA, so that the alpha channel can serve as a paste mask.
func Fit(img image.Image) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, Size, Size))
	b := img.Bounds()
	if b.Dx() == Size && b.Dy() == Size {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
		return dst
	}
	draw.BiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
