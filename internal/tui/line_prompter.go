// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// LinePrompter reads answers one line at a time. Once input is exhausted
// every question takes its default.
type LinePrompter struct {
	reader *bufio.Reader
	out    io.Writer
	eof    bool
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{reader: bufio.NewReader(in), out: out}
}

func (p *LinePrompter) Input(title, description, defaultValue string, validate func(string) error) (string, error) {
	printPromptHeader(p.out, title, description, defaultValue)
	for {
		fmt.Fprint(p.out, "> ")
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		value := strings.TrimSpace(line)
		if value == "" {
			value = defaultValue
		}
		if validate != nil {
			if err := validate(value); err != nil {
				fmt.Fprintln(p.out, err.Error())
				if p.eof {
					return "", fmt.Errorf("%s: %w", title, ErrNoInput)
				}
				continue
			}
		}
		return value, nil
	}
}

func (p *LinePrompter) Secret(title, description, defaultValue string) (string, error) {
	return p.Input(title, description, defaultValue, nil)
}

func (p *LinePrompter) Select(title, description string, options []SelectOption, defaultValue string) (string, error) {
	if len(options) == 0 {
		return "", errors.New("no options available")
	}
	printPromptHeader(p.out, title, description, "")
	for i, opt := range options {
		marker := " "
		if opt.Value == defaultValue {
			marker = "*"
		}
		fmt.Fprintf(p.out, "%s %d) %s\n", marker, i+1, optionLabel(opt))
	}
	for {
		fmt.Fprint(p.out, "Select option: ")
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return defaultValue, nil
		}
		if idx := optionIndex(options, line); idx >= 0 {
			return options[idx].Value, nil
		}
		indices, err := parseSelectionIndices(line, len(options))
		if err != nil || len(indices) != 1 {
			fmt.Fprintln(p.out, "Please select one option by number.")
			continue
		}
		return options[indices[0]].Value, nil
	}
}

func (p *LinePrompter) MultiSelect(title, description string, options []SelectOption, selected []string) ([]string, error) {
	if len(options) == 0 {
		return nil, errors.New("no options available")
	}
	printPromptHeader(p.out, title, description, "")
	for i, opt := range options {
		marker := " "
		if slices.Contains(selected, opt.Value) {
			marker = "x"
		}
		fmt.Fprintf(p.out, "[%s] %d) %s\n", marker, i+1, optionLabel(opt))
	}
	for {
		fmt.Fprint(p.out, "Select options (comma-separated, blank to keep current): ")
		line, err := p.readLine()
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(line) == "" {
			return selected, nil
		}
		indices, err := parseSelectionIndices(line, len(options))
		if err != nil {
			fmt.Fprintln(p.out, "Please select valid option numbers.")
			continue
		}
		next := make([]string, 0, len(indices))
		for _, idx := range indices {
			next = append(next, options[idx].Value)
		}
		return next, nil
	}
}

func (p *LinePrompter) Confirm(title, description string, defaultValue bool) (bool, error) {
	printPromptHeader(p.out, title, description, "")
	hint := "[y/N]"
	if defaultValue {
		hint = "[Y/n]"
	}
	for {
		fmt.Fprintf(p.out, "Confirm %s: ", hint)
		line, err := p.readLine()
		if err != nil {
			return false, err
		}
		value, ok := parseYesNo(line, defaultValue)
		if !ok {
			fmt.Fprintln(p.out, "Please enter y or n.")
			continue
		}
		return value, nil
	}
}

func (p *LinePrompter) readLine() (string, error) {
	if p.eof {
		return "", nil
	}
	line, err := p.reader.ReadString('\n')
	if errors.Is(err, io.EOF) {
		p.eof = true
		return strings.TrimRight(line, "\r\n"), nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func optionLabel(opt SelectOption) string {
	if opt.Label == "" {
		return opt.Value
	}
	return opt.Label
}

func optionIndex(options []SelectOption, answer string) int {
	for i, opt := range options {
		if opt.Value != "" && strings.EqualFold(opt.Value, answer) {
			return i
		}
	}
	return -1
}

func printPromptHeader(out io.Writer, title, description, defaultValue string) {
	if strings.TrimSpace(title) != "" {
		fmt.Fprintln(out, title)
	}
	if strings.TrimSpace(description) != "" {
		fmt.Fprintln(out, description)
	}
	if strings.TrimSpace(defaultValue) != "" {
		fmt.Fprintf(out, "(default: %s)\n", defaultValue)
	}
}
