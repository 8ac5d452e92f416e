package turtget

import (
	"image"
	"math"

	"github.com/moshez/turtget/internal/icon"
)

// Turtle holds the pose and pen state of the cursor.
//
// The heading is in degrees within [0, 360). Heading 0 moves toward
// decreasing Y (up the screen) and heading 90 toward increasing X.
// The location is center-relative.
//
// A Turtle belongs to a World session and is replaced on reset.
type Turtle struct {
	heading  float64
	location Point
	visible  bool
	drawing  bool

	glyph *image.NRGBA
}

// newTurtle returns a turtle in the default pose: heading 0 at the origin,
// visible, pen down.
func newTurtle(glyph *image.NRGBA) *Turtle {
	return &Turtle{
		visible: true,
		drawing: true,
		glyph:   glyph,
	}
}

// Heading returns the heading in degrees, in [0, 360).
func (t *Turtle) Heading() float64 {
	return t.heading
}

// TrueHeading returns the angle in radians used for movement:
// ((heading - 90) / 360) * 2π.
func (t *Turtle) TrueHeading() float64 {
	return ((t.heading - 90) / 360) * 2 * math.Pi
}

// Location returns the center-relative location.
func (t *Turtle) Location() Point {
	return t.location
}

// Visible reports whether the icon is drawn.
func (t *Turtle) Visible() bool {
	return t.visible
}

// SetVisible shows or hides the icon.
func (t *Turtle) SetVisible(v bool) {
	t.visible = v
}

// Drawing reports whether the pen is down.
func (t *Turtle) Drawing() bool {
	return t.drawing
}

// SetDrawing lowers (true) or raises (false) the pen.
func (t *Turtle) SetDrawing(v bool) {
	t.drawing = v
}

// Turn adds angle degrees to the heading and normalizes it into [0, 360).
// Infinite and NaN angles leave the heading unchanged.
func (t *Turtle) Turn(angle float64) {
	if math.IsInf(angle, 0) || math.IsNaN(angle) {
		return
	}
	h := math.Mod(t.heading+angle, 360)
	if h < 0 {
		h += 360
	}
	// A tiny negative remainder rounds up to exactly 360; -0 becomes 0.
	if h >= 360 || h == 0 {
		h = 0
	}
	t.heading = h
}

// String describes the pose, e.g. "heading=90 at (0,-100) pen=down".
func (t *Turtle) String() string {
	return captionText(t)
}

// Move advances the turtle stride pixels along its heading on a toroidal
// canvas of the given size. The projection of stride on each axis is
// truncated toward zero, then the pixel position wraps modulo the canvas
// dimension.
//
// If the pen is down, Move returns the pixel-space segment from the old to
// the new position and true. When the move wraps, the segment joins the
// pre-wrap and post-wrap positions directly and therefore crosses the
// canvas.
func (t *Turtle) Move(stride int, size Size) (Segment, bool) {
	c := size.Center()
	from := t.location.Add(c)

	sin, cos := math.Sincos(t.TrueHeading())
	to := Point{
		X: wrap(from.X+int(float64(stride)*cos), size.W),
		Y: wrap(from.Y+int(float64(stride)*sin), size.H),
	}
	t.location = to.Sub(c)

	if !t.drawing {
		return Segment{}, false
	}
	return Segment{From: from, To: to}, true
}

// DrawIcon overlays the turtle glyph on img, rotated to the heading and
// centered on the turtle's pixel position. It does nothing when the turtle
// is hidden. img should be a copy of the persistent canvas.
func (t *Turtle) DrawIcon(img *image.RGBA) {
	if !t.visible || t.glyph == nil {
		return
	}

	rotated := icon.Rotate(t.glyph, -t.heading)

	b := img.Bounds()
	size := Size{W: b.Dx(), H: b.Dy()}
	pos := t.location.Add(size.Center())

	gb := rotated.Bounds()
	at := image.Point{
		X: b.Min.X + pos.X - gb.Dx()/2,
		Y: b.Min.Y + pos.Y - gb.Dy()/2,
	}
	icon.Paste(img, rotated, at)
}
