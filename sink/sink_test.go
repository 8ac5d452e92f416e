// Copyright 2026 The turtget Authors
// SPDX-License-Identifier: BSD-3-Clause

package sink

import (
	"image"
	"image/color"
	"image/draw"
)

// splitFrame returns a w x h frame whose top half (or left half, if
// vertical is false) is black and the rest white.
func splitFrame(w, h int, vertical bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	dark := image.Rect(0, 0, w/2, h)
	if vertical {
		dark = image.Rect(0, 0, w, h/2)
	}
	draw.Draw(img, dark, image.NewUniform(color.Black), image.Point{}, draw.Src)
	return img
}
