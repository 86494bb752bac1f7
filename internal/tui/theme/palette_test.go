// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"bytes"
	"testing"
)

func TestPaletteFromEnv(t *testing.T) {
	t.Setenv("COLORFGBG", "0;15")
	palette := paletteFromEnv()
	if !palette.HasBG || palette.BG != (RGB{R: 255, G: 255, B: 255}) {
		t.Fatalf("unexpected palette: %+v", palette)
	}
	if got := modeFromPalette(palette); got != ModeLight {
		t.Fatalf("expected light mode, got %v", got)
	}
}

func TestPaletteFromEnvInvalid(t *testing.T) {
	t.Setenv("COLORFGBG", "nope")
	if palette := paletteFromEnv(); palette.HasBG || palette.HasFG {
		t.Fatalf("expected empty palette, got %+v", palette)
	}
}

func TestModeFromPalette(t *testing.T) {
	dark := Palette{BG: RGB{R: 10, G: 10, B: 10}, HasBG: true}
	if got := modeFromPalette(dark); got != ModeDark {
		t.Fatalf("expected dark mode, got %v", got)
	}
	if got := modeFromPalette(Palette{}); got != ModeUnknown {
		t.Fatalf("expected unknown mode, got %v", got)
	}
}

func TestForOutputDisabledForBuffer(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	var buf bytes.Buffer
	if ForOutput(&buf).Enabled {
		t.Fatalf("expected styling disabled for a non-tty writer")
	}
	if FormTheme(&buf) == nil {
		t.Fatalf("expected a fallback form theme")
	}
}

type ttyWriter struct{ bytes.Buffer }

func (ttyWriter) IsTTY() bool { return true }

func TestForOutputTTYAware(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("NO_COLOR", "")
	t.Setenv("COLORFGBG", "15;0")
	th := ForOutput(&ttyWriter{})
	if !th.Enabled || th.Mode != ModeDark || th.Form == nil {
		t.Fatalf("unexpected theme: %+v", th)
	}
	t.Setenv("NO_COLOR", "1")
	if ForOutput(&ttyWriter{}).Enabled {
		t.Fatalf("NO_COLOR should disable styling")
	}
}
