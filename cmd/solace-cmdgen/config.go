// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/itsJamilAhmed/solace-container-command-builder/internal/config"
)

type configFlags struct {
	DefaultProfile string `flag:"default-profile" help:"profile loaded when --profile is not given"`
	OutputDir      string `flag:"output-dir" help:"directory used by generate --write"`
	Reset          bool   `flag:"reset" help:"remove the local configuration"`
}

func handleConfigCommand(_ context.Context, args []string) error {
	flags, err := parseFlags[configFlags](args)
	if err != nil {
		return err
	}
	if flags.Reset {
		if flags.DefaultProfile != "" || flags.OutputDir != "" {
			return newUsageError("--reset cannot be combined with other settings")
		}
		if err := config.RemoveConfigFiles(); err != nil {
			return fmt.Errorf("failed to remove config: %w", err)
		}
		fmt.Fprintln(os.Stdout, "removed local config")
		return nil
	}

	cfg, path, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	updated := false
	if v := strings.TrimSpace(flags.DefaultProfile); v != "" {
		if _, err := config.LoadProfile(v); err != nil {
			return newUsageError(fmt.Sprintf("invalid default profile: %v", err))
		}
		cfg.DefaultProfile = v
		updated = true
	}
	if v := strings.TrimSpace(flags.OutputDir); v != "" {
		cfg.OutputDir = v
		updated = true
	}
	if !updated {
		return showConfig(cfg, path)
	}
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Fprintf(os.Stdout, "wrote config to %s\n", path)
	return nil
}

func showConfig(cfg config.Config, path string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to format config: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Config path: %s\n%s\n", path, string(data))
	return nil
}
