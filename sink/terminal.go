// Copyright 2026 The turtget Authors
// SPDX-License-Identifier: BSD-3-Clause

package sink

import (
	"fmt"
	"image"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/moshez/turtget"
)

// halfBlock fills the upper half of a cell: its foreground paints the upper
// pixel and its background the lower one.
const halfBlock = '▀'

// Terminal draws frames on a tcell screen, two pixels per cell, scaled down
// to fit. An optional status line occupies the bottom row.
type Terminal struct {
	screen tcell.Screen
	owned  bool
	status func() string
}

var _ turtget.Sink = (*Terminal)(nil)

// NewTerminal creates a sink drawing on an initialized screen. The caller
// keeps ownership of the screen.
func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// OpenTerminal creates and initializes a screen on the controlling terminal.
// Close restores the terminal.
func OpenTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("sink: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("sink: init screen: %w", err)
	}
	return &Terminal{screen: screen, owned: true}, nil
}

// Screen returns the underlying screen, e.g. to poll input events.
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// SetStatus installs a function whose result is shown on the bottom row of
// every frame. nil removes the status line.
func (t *Terminal) SetStatus(f func() string) {
	t.status = f
}

// Clear blanks the screen buffer.
func (t *Terminal) Clear() error {
	t.screen.Clear()
	return nil
}

// Display draws frame and shows it.
func (t *Terminal) Display(frame image.Image) error {
	cols, rows := t.screen.Size()
	if t.status != nil {
		rows--
	}
	if cols <= 0 || rows <= 0 {
		turtget.Logger().Warn("sink: terminal too small", "cols", cols, "rows", rows)
		return nil
	}

	b := frame.Bounds()
	// One scale for both axes keeps the aspect ratio; each cell holds two
	// vertically stacked pixels.
	scale := math.Max(float64(b.Dx())/float64(cols), float64(b.Dy())/float64(2*rows))

	at := func(px, py int) (tcell.Color, bool) {
		x := b.Min.X + int(float64(px)*scale)
		y := b.Min.Y + int(float64(py)*scale)
		if x >= b.Max.X || y >= b.Max.Y {
			return tcell.ColorDefault, false
		}
		r, g, bl, _ := frame.At(x, y).RGBA()
		return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(bl>>8)), true
	}

	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top, ok := at(cx, 2*cy)
			if !ok {
				continue
			}
			bottom, ok := at(cx, 2*cy+1)
			if !ok {
				bottom = tcell.ColorDefault
			}
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			t.screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}

	if t.status != nil {
		t.drawStatus(rows, cols, t.status())
	}
	t.screen.Show()
	return nil
}

func (t *Terminal) drawStatus(row, cols int, text string) {
	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, r := range text {
		if x >= cols {
			break
		}
		t.screen.SetContent(x, row, r, nil, style)
		x++
	}
}

// Close finalizes the screen if the sink opened it.
func (t *Terminal) Close() error {
	if t.owned {
		t.screen.Fini()
		t.owned = false
	}
	return nil
}
