// Package turtget provides a turtle-graphics engine for exploratory visual
// programming.
//
// # Overview
//
// A turtle is a cursor that moves across a bounded, toroidal canvas. While
// its pen is down it leaves a 2 px black trace; its current pose is drawn as
// a rotated icon on top of the accumulated drawing. Every mutating operation
// recomposes the whole frame and pushes it to an output [Sink].
//
// # Quick Start
//
//	import "github.com/moshez/turtget"
//
//	tw, err := turtget.Start()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for range 4 {
//	    _ = tw.Forward(100)
//	    _ = tw.Turn(90)
//	}
//	out, _ := tw.Output()
//
// # Coordinate System
//
// The turtle location is center-relative: (0,0) is the middle of the canvas.
// Pixel coordinates follow the image package: origin at the top-left corner,
// X increases right and Y increases down.
//
// Headings are in degrees, normalized to [0, 360). Heading 0 moves toward
// decreasing Y (up the screen) and heading 90 moves toward increasing X.
// The angle used for trigonometry is ((heading-90)/360)*2π.
//
// Moving past an edge wraps around to the opposite edge. The trace of such a
// move is stroked as a single straight segment between the pre-wrap and the
// post-wrap pixel positions, so it crosses the canvas.
//
// # Architecture
//
//   - Public API: World, Widget, Turtle, Sink, Point, Size
//   - sink/: HTML, PNG file, ASCII and terminal output sinks, plus a registry
//   - internal/icon: turtle glyph asset, rotation and masked compositing
//   - internal/stroke: line stroking into the persistent canvas
//   - internal/script: the command language used by cmd/turtget
//
// # Concurrency
//
// World and Widget are not safe for concurrent use. Every operation runs its
// mutate-then-redraw cycle to completion before returning.
package turtget

// Version is the current version of the library.
const Version = "0.1.0"
