package turtget

import (
	"image"

	"golang.org/x/image/draw"
)

// Sink is a display destination for composed frames.
//
// A redraw calls Clear and then Display with the new frame, so the frame
// becomes the sink's sole content. Implementations must not retain frame
// beyond Display unless they copy it. The sink package provides HTML,
// PNG file, ASCII and terminal implementations.
type Sink interface {
	// Clear removes the currently displayed content.
	Clear() error

	// Display shows frame as the new content.
	Display(frame image.Image) error
}

// MemorySink keeps the most recently displayed frame in memory.
// It is the default sink of a World.
type MemorySink struct {
	frame  *image.RGBA
	frames int
	clears int
}

// NewMemorySink creates an empty in-memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Clear drops the current frame.
func (s *MemorySink) Clear() error {
	s.frame = nil
	s.clears++
	return nil
}

// Display stores a copy of frame.
func (s *MemorySink) Display(frame image.Image) error {
	b := frame.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(img, img.Bounds(), frame, b.Min, draw.Src)
	s.frame = img
	s.frames++
	return nil
}

// Frame returns the current frame, or nil after Clear.
func (s *MemorySink) Frame() *image.RGBA {
	return s.frame
}

// Frames returns how many frames have been displayed.
func (s *MemorySink) Frames() int {
	return s.frames
}

// Clears returns how many times the sink has been cleared.
func (s *MemorySink) Clears() int {
	return s.clears
}
