// Copyright 2026 The turtget Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package sink provides output sinks for turtget frames.
//
// A sink receives every composed frame of a World: the World clears it and
// then displays the new frame, so a sink always shows exactly one frame.
// All sinks implement [turtget.Sink]:
//
//   - HTML: keeps an <img> element with the frame as a base64 PNG data URI,
//     the form notebook front-ends render inline
//   - PNGFile: rewrites a PNG file atomically on every frame
//   - ASCII: renders the frame as rows of luminance characters
//   - Terminal: draws the frame with half-block cells on a tcell screen
//
// # Registry
//
// Sinks are also available by name, which is how cmd/turtget selects them:
//
//	s, err := sink.New("png", sink.Options{Path: "out.png"})
//
// Third-party sinks register themselves with [Register].
//
// Sinks are NOT thread-safe, matching the World that drives them.
package sink
