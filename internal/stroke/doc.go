// Package stroke draws straight line segments into an RGBA image.
//
// A segment is expanded into a filled outline by offsetting it by ±width/2
// perpendicular to its direction and extending both ends by width/2 (square
// caps), so consecutive segments meet without notches. The outline is then
// rasterized with golang.org/x/image/vector and composited with draw.Over.
//
// # Usage
//
//	pen := stroke.NewPen(img, 2, color.Black)
//	pen.Line(image.Pt(300, 300), image.Pt(300, 200))
//
// Endpoints are interpreted as pixel-corner coordinates: a horizontal
// 2 px line through y=200 covers pixel rows 199 and 200 completely.
package stroke
