// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package theme picks terminal styles for generated output and forms.
package theme

import (
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

type Mode int

const (
	ModeUnknown Mode = iota
	ModeLight
	ModeDark
)

type RGB struct {
	R uint8
	G uint8
	B uint8
}

type Palette struct {
	FG    RGB
	BG    RGB
	HasFG bool
	HasBG bool
}

// Theme is the zero value when styling is disabled; callers render plain
// text in that case.
type Theme struct {
	Enabled bool
	Mode    Mode
	Styles  Styles
	Form    *huh.Theme
}

type Styles struct {
	Brand      lipgloss.Style
	Header     lipgloss.Style
	Label      lipgloss.Style
	Value      lipgloss.Style
	Muted      lipgloss.Style
	Command    lipgloss.Style
	Comment    lipgloss.Style
	Success    lipgloss.Style
	Warning    lipgloss.Style
	Error      lipgloss.Style
	Enterprise lipgloss.Style
}

func ForOutput(out io.Writer) Theme {
	if !EnabledForOutput(out) {
		return Theme{}
	}
	return buildTheme(paletteFromEnv())
}

// FormTheme returns the huh theme for out, falling back to huh's base
// theme when styling is off.
func FormTheme(out io.Writer) *huh.Theme {
	t := ForOutput(out)
	if !t.Enabled {
		return huh.ThemeBase()
	}
	return t.Form
}

func EnabledForOutput(out io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	termValue := os.Getenv("TERM")
	if termValue == "" || termValue == "dumb" {
		return false
	}
	if ttyAware, ok := out.(interface{ IsTTY() bool }); ok {
		return ttyAware.IsTTY()
	}
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

type tokens struct {
	brand      string
	muted      string
	label      string
	value      string
	header     string
	command    string
	success    string
	warning    string
	error      string
	enterprise string
}

var darkTokens = tokens{
	brand:      "#00C895",
	muted:      "243",
	label:      "244",
	value:      "252",
	header:     "81",
	command:    "254",
	success:    "77",
	warning:    "214",
	error:      "203",
	enterprise: "#F2C14E",
}

var lightTokens = tokens{
	brand:      "#00875F",
	muted:      "240",
	label:      "238",
	value:      "234",
	header:     "23",
	command:    "232",
	success:    "28",
	warning:    "94",
	error:      "160",
	enterprise: "#7A5200",
}

func buildTheme(palette Palette) Theme {
	mode := modeFromPalette(palette)
	if mode == ModeUnknown {
		mode = ModeDark
	}
	pal := darkTokens
	if mode == ModeLight {
		pal = lightTokens
	}
	styles := Styles{
		Brand:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(pal.brand)),
		Header:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(pal.header)),
		Label:      lipgloss.NewStyle().Foreground(lipgloss.Color(pal.label)),
		Value:      lipgloss.NewStyle().Foreground(lipgloss.Color(pal.value)),
		Muted:      lipgloss.NewStyle().Foreground(lipgloss.Color(pal.muted)),
		Command:    lipgloss.NewStyle().Foreground(lipgloss.Color(pal.command)),
		Comment:    lipgloss.NewStyle().Foreground(lipgloss.Color(pal.muted)).Italic(true),
		Success:    lipgloss.NewStyle().Foreground(lipgloss.Color(pal.success)),
		Warning:    lipgloss.NewStyle().Foreground(lipgloss.Color(pal.warning)),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color(pal.error)),
		Enterprise: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(pal.enterprise)),
	}
	return Theme{
		Enabled: true,
		Mode:    mode,
		Styles:  styles,
		Form:    buildHuhTheme(pal),
	}
}
