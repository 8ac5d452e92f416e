package turtget

import (
	"image"
	"image/color"
)

// DefaultSize is the canvas size used when WithSize is not given.
var DefaultSize = Size{W: 600, H: 600}

// WorldOption configures a World during creation.
// Use functional options to customize World behavior.
//
// Example:
//
//	// Default 600x600 canvas with an in-memory sink
//	w, err := turtget.New()
//
//	// Smaller canvas pushing frames as HTML
//	w, err := turtget.New(turtget.WithSize(300, 200), turtget.WithSink(sink.NewHTML(nil)))
type WorldOption func(*worldOptions)

// worldOptions holds optional configuration for World creation.
type worldOptions struct {
	size        Size
	background  color.Color
	glyph       image.Image
	sinkFactory func() (Sink, error)
	caption     bool
}

// defaultOptions returns the default world options.
func defaultOptions() worldOptions {
	return worldOptions{
		size:       DefaultSize,
		background: color.White,
		glyph:      nil, // Embedded turtle icon
		sinkFactory: func() (Sink, error) {
			return NewMemorySink(), nil
		},
	}
}

// WithSize sets the canvas dimensions. They are fixed for the lifetime of
// the World; New rejects non-positive values with ErrInvalidSize.
func WithSize(width, height int) WorldOption {
	return func(o *worldOptions) {
		o.size = Size{W: width, H: height}
	}
}

// WithBackground sets the color the persistent image is filled with
// whenever a session is created.
func WithBackground(c color.Color) WorldOption {
	return func(o *worldOptions) {
		if c != nil {
			o.background = c
		}
	}
}

// WithIcon replaces the embedded turtle glyph. The image is resized to the
// standard icon size once, when the World is created. The glyph must point
// up (heading 0).
func WithIcon(img image.Image) WorldOption {
	return func(o *worldOptions) {
		o.glyph = img
	}
}

// WithSink uses s as the output sink.
func WithSink(s Sink) WorldOption {
	return func(o *worldOptions) {
		o.sinkFactory = func() (Sink, error) { return s, nil }
	}
}

// WithSinkFactory defers sink construction until the first redraw.
// The factory is called at most once; the sink then survives resets.
func WithSinkFactory(f func() (Sink, error)) WorldOption {
	return func(o *worldOptions) {
		if f != nil {
			o.sinkFactory = f
		}
	}
}

// WithCaption enables a one-line pose caption in the bottom-left corner of
// every composed frame. The caption is never drawn into the persistent image.
func WithCaption(enabled bool) WorldOption {
	return func(o *worldOptions) {
		o.caption = enabled
	}
}
