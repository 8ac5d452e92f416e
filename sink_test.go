package turtget

import (
	"image"
	"image/color"
	"testing"
)

func TestMemorySink(t *testing.T) {
	s := NewMemorySink()
	if s.Frame() != nil {
		t.Fatal("new sink has a frame")
	}

	src := image.NewRGBA(image.Rect(5, 5, 15, 10))
	src.SetRGBA(5, 5, color.RGBA{R: 1, G: 2, B: 3, A: 4})

	if err := s.Display(src); err != nil {
		t.Fatal(err)
	}
	got := s.Frame()
	if got.Bounds() != image.Rect(0, 0, 10, 5) {
		t.Errorf("Frame().Bounds() = %v, want origin-based 10x5", got.Bounds())
	}
	if c := got.RGBAAt(0, 0); c != (color.RGBA{R: 1, G: 2, B: 3, A: 4}) {
		t.Errorf("Frame() pixel = %v, want copied source pixel", c)
	}

	// The sink keeps a copy.
	src.SetRGBA(5, 5, color.RGBA{})
	if c := got.RGBAAt(0, 0); c.A != 4 {
		t.Error("MemorySink retained the caller's buffer")
	}

	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
	if s.Frame() != nil {
		t.Error("Clear() kept the frame")
	}
	if s.Frames() != 1 || s.Clears() != 1 {
		t.Errorf("Frames()=%d Clears()=%d, want 1 and 1", s.Frames(), s.Clears())
	}
}
