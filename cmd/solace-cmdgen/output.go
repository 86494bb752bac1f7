// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/itsJamilAhmed/solace-container-command-builder/internal/synth"
	"github.com/itsJamilAhmed/solace-container-command-builder/internal/tui/theme"
)

// printOutputs writes a single output bare so it can be piped, and labels
// each output when there are several.
func printOutputs(out io.Writer, outs []synth.Output) {
	th := theme.ForOutput(out)
	if len(outs) == 1 && !th.Enabled {
		fmt.Fprintln(out, outs[0].Text)
		return
	}
	for i, o := range outs {
		if i > 0 {
			fmt.Fprintln(out)
		}
		header := "# " + o.Role
		file := "(" + o.FileName + ")"
		if th.Enabled {
			header = th.Styles.Header.Render(header)
			file = th.Styles.Muted.Render(file)
		}
		fmt.Fprintf(out, "%s %s\n", header, file)
		text := o.Text
		if th.Enabled {
			text = renderLines(th.Styles.Command, text)
		}
		fmt.Fprintln(out, text)
	}
}

// renderLines styles each line on its own so no line is padded past its
// trailing continuation backslash.
func renderLines(style lipgloss.Style, text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
