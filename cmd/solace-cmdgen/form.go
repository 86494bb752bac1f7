// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"go.uber.org/zap"

	"github.com/itsJamilAhmed/solace-container-command-builder/internal/config"
	"github.com/itsJamilAhmed/solace-container-command-builder/internal/deployment"
	"github.com/itsJamilAhmed/solace-container-command-builder/internal/logging"
	"github.com/itsJamilAhmed/solace-container-command-builder/internal/session"
	"github.com/itsJamilAhmed/solace-container-command-builder/internal/tui"
)

type formFlags struct {
	Profile string `flag:"profile" help:"start from a deployment profile (.toml, .json, .yaml)"`
	Save    string `flag:"save" help:"save the answers as a profile (.toml, .json, .yaml)"`
	Out     string `flag:"out" short:"o" help:"write output files to this directory"`
	Copy    bool   `flag:"copy" help:"copy the output to the clipboard"`
	Verbose bool   `flag:"verbose" short:"v" help:"debug logging"`
}

func handleFormCommand(_ context.Context, args []string) error {
	flags, err := parseFlags[formFlags](args)
	if err != nil {
		return err
	}
	log, err := logging.New(flags.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	_, values, err := loadBase(flags.Profile)
	if err != nil {
		return err
	}
	st := session.New(deployment.Read(values), log)
	form := tui.NewForm(tui.NewPrompter(os.Stdin, os.Stdout), os.Stdout, st)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return newSilentError(err)
		}
		return err
	}
	if flags.Save != "" {
		if err := config.SaveProfile(flags.Save, config.ProfileFrom(st.Config())); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
		log.Info("saved profile", zap.String("path", flags.Save))
	}
	fmt.Fprintln(os.Stdout)
	return emit(os.Stdout, log, st.Snapshot(), emitOptions{Dir: flags.Out, Copy: flags.Copy})
}
