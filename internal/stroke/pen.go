package stroke

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Pen strokes segments into a fixed destination image.
// A Pen is not safe for concurrent use.
type Pen struct {
	dst   *image.RGBA
	width float64
	src   *image.Uniform
	r     *vector.Rasterizer
}

// NewPen returns a pen drawing into dst with the given line width and color.
// Widths below one pixel are raised to one.
func NewPen(dst *image.RGBA, width float64, c color.Color) *Pen {
	if width < 1 {
		width = 1
	}
	b := dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.DrawOp = draw.Over
	return &Pen{
		dst:   dst,
		width: width,
		src:   image.NewUniform(c),
		r:     r,
	}
}

// Width returns the line width in pixels.
func (p *Pen) Width() float64 {
	return p.width
}

// Line strokes the straight segment from -> to. A zero-length segment
// leaves a width x width square dot. Parts outside the image are clipped.
func (p *Pen) Line(from, to image.Point) {
	b := p.dst.Bounds()
	x0, y0 := float64(from.X-b.Min.X), float64(from.Y-b.Min.Y)
	x1, y1 := float64(to.X-b.Min.X), float64(to.Y-b.Min.Y)

	// Unit direction; a degenerate segment is treated as horizontal.
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		dx, dy = 1, 0
	} else {
		dx, dy = dx/length, dy/length
	}

	half := p.width / 2
	// Square caps: extend both ends along the direction.
	ex, ey := dx*half, dy*half
	// Normal offset.
	nx, ny := -dy*half, dx*half

	p.r.Reset(b.Dx(), b.Dy())
	p.r.MoveTo(f32(x0-ex+nx), f32(y0-ey+ny))
	p.r.LineTo(f32(x1+ex+nx), f32(y1+ey+ny))
	p.r.LineTo(f32(x1+ex-nx), f32(y1+ey-ny))
	p.r.LineTo(f32(x0-ex-nx), f32(y0-ey-ny))
	p.r.ClosePath()
	p.r.Draw(p.dst, b, p.src, image.Point{})
}

func f32(v float64) float32 {
	return float32(v)
}
