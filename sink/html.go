// Copyright 2026 The turtget Authors
// SPDX-License-Identifier: BSD-3-Clause

package sink

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/moshez/turtget"
)

// HTML renders frames as an <img> element carrying the frame as a base64
// PNG data URI. This is the form notebook front-ends display inline.
//
// If a writer is configured, every displayed frame's markup is also written
// to it, followed by a newline.
type HTML struct {
	w      io.Writer
	enc    png.Encoder
	markup string
}

var _ turtget.Sink = (*HTML)(nil)

// NewHTML creates an HTML sink. w may be nil.
func NewHTML(w io.Writer) *HTML {
	return &HTML{
		w:   w,
		enc: png.Encoder{CompressionLevel: png.BestSpeed},
	}
}

// Clear drops the current markup.
func (h *HTML) Clear() error {
	h.markup = ""
	return nil
}

// Display encodes frame and replaces the current markup.
func (h *HTML) Display(frame image.Image) error {
	var buf bytes.Buffer
	if err := h.enc.Encode(&buf, frame); err != nil {
		return fmt.Errorf("sink: encode png: %w", err)
	}
	h.markup = `<img src="data:image/png;base64,` +
		base64.StdEncoding.EncodeToString(buf.Bytes()) + `">`

	if h.w != nil {
		if _, err := io.WriteString(h.w, h.markup+"\n"); err != nil {
			return fmt.Errorf("sink: write html: %w", err)
		}
	}
	turtget.Logger().Debug("sink: html frame", "bytes", buf.Len())
	return nil
}

// Markup returns the current <img> element, or "" after Clear.
func (h *HTML) Markup() string {
	return h.markup
}

// String returns the current markup.
func (h *HTML) String() string {
	return h.markup
}
