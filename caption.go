package turtget

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// captionMargin is the distance, in pixels, between the caption baseline
// and the bottom-left corner of the frame.
const captionMargin = 4

var captionColor = color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}

// captionText describes the turtle pose in one line.
func captionText(t *Turtle) string {
	pen := "up"
	if t.drawing {
		pen = "down"
	}
	return fmt.Sprintf("heading=%g at %v pen=%s", t.heading, t.location, pen)
}

// drawCaption writes the pose caption onto dst.
func drawCaption(dst *image.RGBA, t *Turtle) {
	face := basicfont.Face7x13
	b := dst.Bounds()
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(captionColor),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(b.Min.X + captionMargin),
			Y: fixed.I(b.Max.Y - captionMargin - face.Descent),
		},
	}
	d.DrawString(captionText(t))
}
