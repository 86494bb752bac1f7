// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"errors"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrNoInput is returned when input ends before a required answer.
var ErrNoInput = errors.New("no more input")

type SelectOption struct {
	Label string
	Value string
}

// Prompter asks one question at a time. Blank answers keep the default.
type Prompter interface {
	Input(title, description, defaultValue string, validate func(string) error) (string, error)
	Secret(title, description, defaultValue string) (string, error)
	Select(title, description string, options []SelectOption, defaultValue string) (string, error)
	MultiSelect(title, description string, options []SelectOption, selected []string) ([]string, error)
	Confirm(title, description string, defaultValue bool) (bool, error)
}

// NewPrompter returns huh forms when in and out are terminals and plain
// line prompts otherwise.
func NewPrompter(in io.Reader, out io.Writer) Prompter {
	if useForms(in, out) {
		return &FormPrompter{In: in, Out: out}
	}
	return NewLinePrompter(in, out)
}

func useForms(in io.Reader, out io.Writer) bool {
	inFile, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(inFile.Fd())) {
		return false
	}
	outFile, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(outFile.Fd())) {
		return false
	}
	return true
}
