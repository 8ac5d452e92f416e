// Copyright 2026 The turtget Authors
// SPDX-License-Identifier: BSD-3-Clause

package sink

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"
)

const dataURIPrefix = `<img src="data:image/png;base64,`

func TestHTMLDisplay(t *testing.T) {
	var out bytes.Buffer
	h := NewHTML(&out)

	if err := h.Display(splitFrame(30, 20, false)); err != nil {
		t.Fatalf("Display() = %v", err)
	}

	m := h.Markup()
	if !strings.HasPrefix(m, dataURIPrefix) || !strings.HasSuffix(m, `">`) {
		t.Fatalf("Markup() = %.60q..., want data URI img element", m)
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimSuffix(strings.TrimPrefix(m, dataURIPrefix), `">`))
	if err != nil {
		t.Fatalf("payload is not base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("payload is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 30 || img.Bounds().Dy() != 20 {
		t.Errorf("decoded size = %v, want 30x20", img.Bounds().Size())
	}

	if got := out.String(); got != m+"\n" {
		t.Error("writer did not receive the markup")
	}
	if h.String() != m {
		t.Error("String() differs from Markup()")
	}
}

func TestHTMLClear(t *testing.T) {
	h := NewHTML(nil)
	if err := h.Display(splitFrame(4, 4, false)); err != nil {
		t.Fatal(err)
	}
	if err := h.Clear(); err != nil {
		t.Fatal(err)
	}
	if h.Markup() != "" {
		t.Errorf("Markup() after Clear = %q, want empty", h.Markup())
	}
}
