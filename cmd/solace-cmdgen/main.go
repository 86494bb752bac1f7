// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shayne/yargs"
)

func main() {
	if err := runCLI(os.Args[1:]); err != nil {
		reportCLIError(err)
		os.Exit(1)
	}
}

type usageError struct {
	message string
}

func (e usageError) Error() string {
	return e.message
}

type silentError struct {
	err error
}

func (e silentError) Error() string {
	return e.err.Error()
}

func (e silentError) Unwrap() error {
	return e.err
}

func reportCLIError(err error) {
	var usageErr usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintln(os.Stderr, usageErr.message)
		fmt.Fprintln(os.Stderr, "Run 'solace-cmdgen --help' for usage.")
		return
	}
	var quietErr silentError
	if errors.As(err, &quietErr) {
		return
	}
	fmt.Fprintln(os.Stderr, err.Error())
}

func newUsageError(message string) error {
	return usageError{message: message}
}

func newSilentError(err error) error {
	if err == nil {
		return nil
	}
	return silentError{err: err}
}

var (
	version = "dev"
	commit  = ""
)

func runCLI(args []string) error {
	args = ensureGenerateSubcommand(joinDashValues(normalizeArgs(args)))
	handlers := map[string]yargs.SubcommandHandler{
		"generate": handleGenerateCommand,
		"form":     handleFormCommand,
		"config":   handleConfigCommand,
		"psk":      handlePSKCommand,
		"ports":    handlePortsCommand,
		"version":  handleVersionCommand,
	}
	if err := yargs.RunSubcommands(context.Background(), args, helpConfig, struct{}{}, handlers); err != nil {
		if errors.Is(err, yargs.ErrShown) {
			return nil
		}
		return err
	}
	return nil
}

var helpConfig = yargs.HelpConfig{
	Command: yargs.CommandInfo{
		Name:        "solace-cmdgen",
		Description: "Generate docker/podman run commands and Compose files for Solace PubSub+ brokers",
		Examples: []string{
			"solace-cmdgen --recommended",
			"solace-cmdgen --ports 55555,8080 --name broker1 --password admin",
			"solace-cmdgen --mode ha --format compose --out ./deploy",
			"solace-cmdgen --profile lab.toml --role backup --copy",
			"solace-cmdgen form",
			"solace-cmdgen psk --length 100",
			"solace-cmdgen ports",
			"solace-cmdgen config --output-dir ./deploy",
		},
	},
	SubCommands: map[string]yargs.SubCommandInfo{
		"generate": {
			Name:        "generate",
			Description: "Render the run command or Compose file for a deployment",
			Usage:       "[flags]",
			Examples: []string{
				"solace-cmdgen generate --runtime podman --net slirp4netns",
				"solace-cmdgen generate --edition enterprise --spool-gb 2000",
				"solace-cmdgen generate --scaling '--env system_scaling_maxconnectioncount=1000 --shm-size 2g'",
			},
			Hidden: true,
		},
		"form": {
			Name:        "form",
			Description: "Fill in a deployment interactively",
			Usage:       "[--profile <file>] [--save <file>]",
		},
		"config": {
			Name:        "config",
			Description: "Show or update the local configuration",
		},
		"psk": {
			Name:        "psk",
			Description: "Generate an HA pre-shared key",
			Usage:       "[--length <n>] [--random]",
		},
		"ports": {
			Name:        "ports",
			Description: "List the broker ports that can be published",
		},
		"version": {
			Name:        "version",
			Description: "Show CLI version",
		},
	},
}

func normalizeArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	if args[0] == "--version" {
		return append([]string{"version"}, args[1:]...)
	}
	if args[0] == "help" {
		return rewriteHelpArgs(args[1:])
	}
	return args
}

func rewriteHelpArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"--help"}
	}
	if isHelpFlag(args[0]) {
		return []string{"--help"}
	}
	if isKnownCommand(args[0]) {
		return []string{args[0], "--help"}
	}
	return []string{"generate", "--help"}
}

func isKnownCommand(value string) bool {
	switch value {
	case "generate", "form", "config", "psk", "ports", "version":
		return true
	default:
		return false
	}
}

// dashValueFlags take values that themselves start with "-".
var dashValueFlags = map[string]bool{
	"--scaling": true,
}

// joinDashValues rewrites "--scaling <value>" as "--scaling=<value>" so the
// value is not read as a flag.
func joinDashValues(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		if args[i] == "--" {
			return append(out, args[i:]...)
		}
		if dashValueFlags[args[i]] && i+1 < len(args) {
			out = append(out, args[i]+"="+args[i+1])
			i++
			continue
		}
		out = append(out, args[i])
	}
	return out
}

// parseFlags parses a subcommand's flags. Help output returns yargs.ErrShown;
// parse failures come back as usage errors.
func parseFlags[S any](args []string) (S, error) {
	var zero S
	result, err := yargs.ParseWithCommandAndHelp[struct{}, S, struct{}](args, helpConfig)
	if err == nil {
		return result.SubCommandFlags, nil
	}
	if errors.Is(err, yargs.ErrHelp) || errors.Is(err, yargs.ErrSubCommandHelp) || errors.Is(err, yargs.ErrHelpLLM) {
		fmt.Fprint(os.Stdout, result.HelpText)
		return zero, yargs.ErrShown
	}
	return zero, newUsageError(err.Error())
}

// ensureGenerateSubcommand makes generate the default command.
func ensureGenerateSubcommand(args []string) []string {
	if len(args) > 0 && isHelpFlag(args[0]) {
		return args
	}
	if isKnownCommand(firstNonFlag(args)) {
		return args
	}
	return append([]string{"generate"}, args...)
}

func isHelpFlag(value string) bool {
	switch strings.TrimSpace(value) {
	case "-h", "--help", "--help-llm":
		return true
	default:
		return false
	}
}

func firstNonFlag(args []string) string {
	skipNext := false
	for _, arg := range args {
		if skipNext {
			skipNext = false
			continue
		}
		if arg == "--" {
			return ""
		}
		if strings.HasPrefix(arg, "-") {
			if strings.Contains(arg, "=") {
				continue
			}
			if consumesValue(arg) {
				skipNext = true
			}
			continue
		}
		return arg
	}
	return ""
}

func consumesValue(flag string) bool {
	switch flag {
	case "--profile", "--format", "-f", "--mode", "-m", "--runtime", "--edition", "--net",
		"--ports", "-p", "--scaling", "--spool-gb", "--out", "-o", "--role", "--name",
		"--image", "--image-version", "--storage", "--restart", "--user", "--password-method",
		"--password", "--tls-cert", "--tls-passphrase", "--node", "--psk", "--psk-file",
		"--length", "--save", "--default-profile", "--output-dir":
		return true
	default:
		return false
	}
}

func handleVersionCommand(_ context.Context, args []string) error {
	if _, err := parseFlags[struct{}](args); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, versionString())
	return nil
}

func versionString() string {
	trimmed := strings.TrimSpace(version)
	if trimmed == "" {
		trimmed = "dev"
	}
	if c := strings.TrimSpace(commit); c != "" {
		return fmt.Sprintf("%s (%s)", trimmed, c)
	}
	return trimmed
}
