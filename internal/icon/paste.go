package icon

import (
	"image"

	"golang.org/x/image/draw"
)

// AlphaMask extracts the alpha channel of src.
func AlphaMask(src *image.NRGBA) *image.Alpha {
	b := src.Bounds()
	mask := image.NewAlpha(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			mask.Pix[mask.PixOffset(x, y)] = src.Pix[src.PixOffset(x, y)+3]
		}
	}
	return mask
}

// Paste composites src onto dst with its top-left corner at at, using the
// alpha channel of src as the mask: each covered pixel becomes
// src·a + dst·(1-a), where a is the source alpha. Fully transparent glyph
// pixels leave dst untouched. Parts of src falling outside dst are clipped.
// The alpha of dst is composited with Over, so an opaque dst stays opaque.
func Paste(dst draw.Image, src *image.NRGBA, at image.Point) {
	b := src.Bounds()
	mask := AlphaMask(src)

	// The mask carries the coverage, so the color source is the glyph with
	// its alpha forced to opaque.
	solid := image.NewNRGBA(b)
	copy(solid.Pix, src.Pix)
	for i := 3; i < len(solid.Pix); i += 4 {
		solid.Pix[i] = 0xff
	}

	r := image.Rectangle{Min: at, Max: at.Add(b.Size())}
	draw.DrawMask(dst, r, solid, b.Min, mask, b.Min, draw.Over)
}
