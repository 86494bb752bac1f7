// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"os"
	"strconv"
	"strings"
)

func modeFromPalette(palette Palette) Mode {
	if palette.HasBG {
		if isLight(palette.BG) {
			return ModeLight
		}
		return ModeDark
	}
	return ModeUnknown
}

func isLight(color RGB) bool {
	luma := 0.2126*float64(color.R) + 0.7152*float64(color.G) + 0.0722*float64(color.B)
	return luma >= 128.0
}

// paletteFromEnv reads COLORFGBG ("fg;bg", xterm indices).
func paletteFromEnv() Palette {
	value := strings.TrimSpace(os.Getenv("COLORFGBG"))
	if value == "" {
		return Palette{}
	}
	parts := strings.Split(value, ";")
	if len(parts) < 2 {
		return Palette{}
	}
	fg := parseEnvIndex(parts[0])
	bg := parseEnvIndex(parts[len(parts)-1])
	var palette Palette
	if fg >= 0 && fg < len(xterm16) {
		palette.FG = xterm16[fg]
		palette.HasFG = true
	}
	if bg >= 0 && bg < len(xterm16) {
		palette.BG = xterm16[bg]
		palette.HasBG = true
	}
	return palette
}

func parseEnvIndex(value string) int {
	idx, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return -1
	}
	return idx
}

var xterm16 = []RGB{
	{R: 0, G: 0, B: 0},
	{R: 128, G: 0, B: 0},
	{R: 0, G: 128, B: 0},
	{R: 128, G: 128, B: 0},
	{R: 0, G: 0, B: 128},
	{R: 128, G: 0, B: 128},
	{R: 0, G: 128, B: 128},
	{R: 192, G: 192, B: 192},
	{R: 128, G: 128, B: 128},
	{R: 255, G: 0, B: 0},
	{R: 0, G: 255, B: 0},
	{R: 255, G: 255, B: 0},
	{R: 0, G: 0, B: 255},
	{R: 255, G: 0, B: 255},
	{R: 0, G: 255, B: 255},
	{R: 255, G: 255, B: 255},
}
