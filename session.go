package turtget

import (
	"image"
	"image/color"

	"github.com/moshez/turtget/internal/stroke"
	"golang.org/x/image/draw"
)

// Stroke parameters for traces left by the turtle.
const lineWidth = 2

var lineColor = color.RGBA{A: 0xff}

// session bundles the persistent canvas, its pen and the turtle that moves
// over it. The three are created and discarded together.
type session struct {
	canvas *image.RGBA
	pen    *stroke.Pen
	turtle *Turtle
}

func newSession(size Size, background color.Color, glyph *image.NRGBA) *session {
	canvas := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	return &session{
		canvas: canvas,
		pen:    stroke.NewPen(canvas, lineWidth, lineColor),
		turtle: newTurtle(glyph),
	}
}

// snapshot returns a copy of the persistent canvas.
func (s *session) snapshot() *image.RGBA {
	img := image.NewRGBA(s.canvas.Rect)
	copy(img.Pix, s.canvas.Pix)
	return img
}
