package turtget

import (
	"fmt"
	"image"
)

// Point is an integer 2D position. Depending on context it is either
// center-relative (turtle locations) or in pixel space (segments).
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Image converts the point to an image.Point.
func (p Point) Image() image.Point {
	return image.Point{X: p.X, Y: p.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size is the fixed width and height of a canvas in pixels.
type Size struct {
	W, H int
}

// Center returns the pixel-space position of the center-relative origin,
// using floor division.
func (s Size) Center() Point {
	return Point{X: s.W / 2, Y: s.H / 2}
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool {
	return s.W > 0 && s.H > 0
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}

// Segment is a pixel-space line emitted by a pen-down move.
type Segment struct {
	From, To Point
}

// wrap reduces v modulo n into [0, n). n must be positive.
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
