package turtget

import (
	"fmt"
	"image"
	"image/color"

	"github.com/moshez/turtget/internal/icon"
)

// World owns the drawing surface, the turtle and the output sink.
//
// The persistent canvas and the turtle live in a session that is created
// lazily on first access and discarded as a unit by Reset. The output sink
// is created once, on the first redraw, and survives resets.
//
// A World is not safe for concurrent use.
type World struct {
	size       Size
	background color.Color
	glyph      *image.NRGBA
	caption    bool

	sess *session

	newSink func() (Sink, error)
	out     Sink
}

// New creates a World configured by opts. The turtle glyph is resolved here
// so a broken icon aborts construction instead of failing at draw time.
func New(opts ...WorldOption) (*World, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !o.size.Valid() {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidSize, o.size)
	}

	var glyph *image.NRGBA
	if o.glyph != nil {
		glyph = icon.Fit(o.glyph)
	} else {
		g, err := icon.Default()
		if err != nil {
			return nil, fmt.Errorf("turtget: load turtle icon: %w", err)
		}
		glyph = g
	}

	return &World{
		size:       o.size,
		background: o.background,
		glyph:      glyph,
		caption:    o.caption,
		newSink:    o.sinkFactory,
	}, nil
}

// Size returns the fixed canvas size.
func (w *World) Size() Size {
	return w.size
}

// details returns the current session, creating it if absent.
func (w *World) details() *session {
	if w.sess == nil {
		w.sess = newSession(w.size, w.background, w.glyph)
		Logger().Debug("turtget: session created", "size", w.size.String())
	}
	return w.sess
}

// Turtle returns the turtle of the current session.
// The pointer is invalidated by Reset.
func (w *World) Turtle() *Turtle {
	return w.details().turtle
}

// Canvas returns a copy of the persistent image, without the turtle icon.
func (w *World) Canvas() *image.RGBA {
	return w.details().snapshot()
}

// Reset discards the current session. The next access recreates a freshly
// filled canvas and a turtle in the default pose. Resetting a World without
// a session is a no-op.
func (w *World) Reset() {
	if w.sess == nil {
		return
	}
	w.sess = nil
	Logger().Debug("turtget: session discarded")
}

// Move advances the turtle by stride pixels and strokes the resulting
// segment, if any, onto the persistent canvas.
func (w *World) Move(stride int) {
	s := w.details()
	seg, ok := s.turtle.Move(stride, w.size)
	if !ok {
		return
	}
	s.pen.Line(seg.From.Image(), seg.To.Image())
}

// Frame composes the displayable frame: a copy of the persistent canvas
// with the turtle icon (and the caption, if enabled) on top.
func (w *World) Frame() *image.RGBA {
	s := w.details()
	img := s.snapshot()
	s.turtle.DrawIcon(img)
	if w.caption {
		drawCaption(img, s.turtle)
	}
	return img
}

// Output returns the output sink, creating it on first use.
func (w *World) Output() (Sink, error) {
	if w.out != nil {
		return w.out, nil
	}
	s, err := w.newSink()
	if err != nil {
		return nil, fmt.Errorf("turtget: create sink: %w", err)
	}
	if s == nil {
		return nil, ErrNilSink
	}
	w.out = s
	return s, nil
}

// Redraw composes the current frame and replaces the sink's content with it.
func (w *World) Redraw() error {
	frame := w.Frame()

	out, err := w.Output()
	if err != nil {
		return err
	}
	if err := out.Clear(); err != nil {
		return fmt.Errorf("turtget: clear sink: %w", err)
	}
	if err := out.Display(frame); err != nil {
		return fmt.Errorf("turtget: display frame: %w", err)
	}

	t := w.sess.turtle
	Logger().Debug("turtget: frame displayed",
		"heading", t.heading,
		"location", t.location.String(),
		"drawing", t.drawing,
		"visible", t.visible)
	return nil
}
