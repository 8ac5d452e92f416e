package turtget

import (
	"image"
	"testing"
)

func TestPoint(t *testing.T) {
	p := Pt(3, -4)
	if got := p.Add(Pt(1, 1)); got != Pt(4, -3) {
		t.Errorf("Add() = %v, want (4,-3)", got)
	}
	if got := p.Sub(Pt(3, 3)); got != Pt(0, -7) {
		t.Errorf("Sub() = %v, want (0,-7)", got)
	}
	if got := p.Image(); got != image.Pt(3, -4) {
		t.Errorf("Image() = %v, want (3,-4)", got)
	}
	if got := p.String(); got != "(3,-4)" {
		t.Errorf("String() = %q, want (3,-4)", got)
	}
}

func TestSize(t *testing.T) {
	tests := []struct {
		size   Size
		center Point
		valid  bool
	}{
		{Size{600, 600}, Pt(300, 300), true},
		{Size{601, 401}, Pt(300, 200), true},
		{Size{1, 1}, Pt(0, 0), true},
		{Size{0, 10}, Pt(0, 5), false},
		{Size{10, -1}, Pt(5, 0), false},
	}
	for _, tc := range tests {
		if got := tc.size.Center(); got != tc.center {
			t.Errorf("%v.Center() = %v, want %v", tc.size, got, tc.center)
		}
		if got := tc.size.Valid(); got != tc.valid {
			t.Errorf("%v.Valid() = %v, want %v", tc.size, got, tc.valid)
		}
	}
	if got := (Size{640, 480}).String(); got != "640x480" {
		t.Errorf("String() = %q, want 640x480", got)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct{ v, n, want int }{
		{0, 600, 0},
		{599, 600, 599},
		{600, 600, 0},
		{-1, 600, 599},
		{-600, 600, 0},
		{-601, 600, 599},
		{1250, 600, 50},
	}
	for _, tc := range tests {
		if got := wrap(tc.v, tc.n); got != tc.want {
			t.Errorf("wrap(%d, %d) = %d, want %d", tc.v, tc.n, got, tc.want)
		}
	}
}
