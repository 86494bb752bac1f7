// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/itsJamilAhmed/solace-container-command-builder/internal/tui/theme"
)

// FormPrompter renders each question as a single-field huh form.
type FormPrompter struct {
	In  io.Reader
	Out io.Writer
}

func (p *FormPrompter) run(field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field))
	form.WithInput(p.In).WithOutput(p.Out).WithTheme(theme.FormTheme(p.Out))
	return form.Run()
}

func (p *FormPrompter) Input(title, description, defaultValue string, validate func(string) error) (string, error) {
	value := defaultValue
	input := huh.NewInput().
		Title(title).
		Description(description).
		Prompt("> ").
		Value(&value)
	if validate != nil {
		input = input.Validate(func(v string) error {
			return validate(strings.TrimSpace(v))
		})
	}
	if err := p.run(input); err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

func (p *FormPrompter) Secret(title, description, defaultValue string) (string, error) {
	value := defaultValue
	input := huh.NewInput().
		Title(title).
		Description(description).
		Prompt("> ").
		EchoMode(huh.EchoModePassword).
		Value(&value)
	if err := p.run(input); err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

func (p *FormPrompter) Select(title, description string, options []SelectOption, defaultValue string) (string, error) {
	value := defaultValue
	opts := make([]huh.Option[string], 0, len(options))
	for _, opt := range options {
		opts = append(opts, huh.NewOption(optionLabel(opt), opt.Value))
	}
	field := huh.NewSelect[string]().
		Title(title).
		Description(description).
		Options(opts...).
		Value(&value)
	if err := p.run(field); err != nil {
		return "", err
	}
	return value, nil
}

func (p *FormPrompter) MultiSelect(title, description string, options []SelectOption, selected []string) ([]string, error) {
	chosen := append([]string(nil), selected...)
	opts := make([]huh.Option[string], 0, len(options))
	for _, opt := range options {
		option := huh.NewOption(optionLabel(opt), opt.Value)
		for _, s := range selected {
			if s == opt.Value {
				option = option.Selected(true)
				break
			}
		}
		opts = append(opts, option)
	}
	field := huh.NewMultiSelect[string]().
		Title(title).
		Description(description).
		Options(opts...).
		Value(&chosen)
	if err := p.run(field); err != nil {
		return nil, err
	}
	return chosen, nil
}

func (p *FormPrompter) Confirm(title, description string, defaultValue bool) (bool, error) {
	value := defaultValue
	field := huh.NewConfirm().
		Title(title).
		Description(description).
		Value(&value)
	if err := p.run(field); err != nil {
		return false, err
	}
	return value, nil
}
