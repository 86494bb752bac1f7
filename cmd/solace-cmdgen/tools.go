// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/itsJamilAhmed/solace-container-command-builder/internal/ports"
	"github.com/itsJamilAhmed/solace-container-command-builder/internal/psk"
	"github.com/itsJamilAhmed/solace-container-command-builder/internal/tui/theme"
)

type pskFlags struct {
	Length string `flag:"length" short:"n" help:"key length (44-344, default 60)"`
	Random bool   `flag:"random" help:"pick a random length"`
}

func handlePSKCommand(_ context.Context, args []string) error {
	flags, err := parseFlags[pskFlags](args)
	if err != nil {
		return err
	}
	if flags.Random && flags.Length != "" {
		return newUsageError("--random and --length are mutually exclusive")
	}
	var key string
	if flags.Random {
		key, err = psk.Random()
	} else {
		length := psk.DefaultLength
		if flags.Length != "" {
			length, err = strconv.Atoi(strings.TrimSpace(flags.Length))
			if err != nil {
				return newUsageError(fmt.Sprintf("invalid --length %q", flags.Length))
			}
		}
		key, err = psk.Generate(length)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, key)
	return nil
}

func handlePortsCommand(_ context.Context, args []string) error {
	if _, err := parseFlags[struct{}](args); err != nil {
		return err
	}
	printPorts(os.Stdout)
	return nil
}

// printPorts lists the catalog by protocol; * marks the recommended set.
func printPorts(out io.Writer) {
	th := theme.ForOutput(out)
	recommended := map[int]bool{}
	for _, p := range ports.Recommended {
		recommended[p] = true
	}
	for i, proto := range ports.Protocols() {
		if i > 0 {
			fmt.Fprintln(out)
		}
		header := proto
		if th.Enabled {
			header = th.Styles.Header.Render(header)
		}
		fmt.Fprintln(out, header)
		for _, number := range ports.Group(proto) {
			entry, _ := ports.Lookup(number)
			marker := " "
			if recommended[number] {
				marker = "*"
			}
			line := fmt.Sprintf("  %s %-5d %s", marker, number, entry.Label)
			if th.Enabled && !recommended[number] {
				line = th.Styles.Muted.Render(line)
			}
			fmt.Fprintln(out, line)
		}
	}
}
