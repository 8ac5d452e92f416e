package icon

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Rotate returns a copy of src rotated by degrees counter-clockwise as seen
// on screen, about the center of its bounds. The result keeps the bounds of
// src; corners rotated out of view are cut off and uncovered pixels are
// transparent. Sampling is nearest-neighbour, so a glyph with a binary alpha
// channel keeps it binary.
func Rotate(src *image.NRGBA, degrees float64) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)

	turns := math.Mod(degrees, 360)
	if turns == 0 {
		copy(dst.Pix, src.Pix)
		return dst
	}

	draw.NearestNeighbor.Transform(dst, rotation(b, turns), src, b, draw.Src, nil)
	return dst
}

// rotation maps source coordinates to destination coordinates for a
// counter-clockwise on-screen rotation about the center of b. With Y growing
// downward that is
//
//	x' = cx + (x-cx)·cos + (y-cy)·sin
//	y' = cy - (x-cx)·sin + (y-cy)·cos
func rotation(b image.Rectangle, degrees float64) f64.Aff3 {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	cx := float64(b.Min.X+b.Max.X) / 2
	cy := float64(b.Min.Y+b.Max.Y) / 2
	return f64.Aff3{
		cos, sin, cx - cos*cx - sin*cy,
		-sin, cos, cy + sin*cx - cos*cy,
	}
}
