// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/itsJamilAhmed/solace-container-command-builder/internal/clipboard"
	"github.com/itsJamilAhmed/solace-container-command-builder/internal/config"
	"github.com/itsJamilAhmed/solace-container-command-builder/internal/deployment"
	"github.com/itsJamilAhmed/solace-container-command-builder/internal/logging"
	"github.com/itsJamilAhmed/solace-container-command-builder/internal/ports"
	"github.com/itsJamilAhmed/solace-container-command-builder/internal/psk"
	"github.com/itsJamilAhmed/solace-container-command-builder/internal/session"
	"github.com/itsJamilAhmed/solace-container-command-builder/internal/synth"
)

type generateFlags struct {
	Profile        string   `flag:"profile" help:"load a deployment profile (.toml, .json, .yaml)"`
	Format         string   `flag:"format" short:"f" help:"output format: run or compose"`
	Mode           string   `flag:"mode" short:"m" help:"deployment mode: standalone or ha"`
	Runtime        string   `flag:"runtime" help:"container runtime: docker or podman"`
	Edition        string   `flag:"edition" help:"software edition: standard or enterprise"`
	MacOS          bool     `flag:"macos" help:"target Docker/Podman on macOS (no host networking, 55555 published as 55554)"`
	Net            string   `flag:"net" help:"network mode: bridge, host or slirp4netns"`
	Ports          string   `flag:"ports" short:"p" help:"comma separated container ports to publish"`
	Recommended    bool     `flag:"recommended" help:"publish the recommended port set"`
	TLSOnly        bool     `flag:"tls-only" help:"drop plain-text ports from the selection"`
	Scaling        string   `flag:"scaling" help:"extra scaling options as one quoted value (--env KEY=VALUE, --ulimit, --shm-size)"`
	SpoolGB        string   `flag:"spool-gb" help:"max message spool usage in GB"`
	Name           string   `flag:"name" help:"standalone router name"`
	Nodes          []string `flag:"node" help:"HA node as role=name[@host] (repeatable)"`
	Image          string   `flag:"image" help:"image path"`
	ImageVersion   string   `flag:"image-version" help:"image version tag"`
	Storage        string   `flag:"storage" help:"host path bind mounted as broker storage"`
	Restart        string   `flag:"restart" help:"container restart policy"`
	User           string   `flag:"user" help:"run the container as UID[:GID]"`
	PasswordMethod string   `flag:"password-method" help:"password, password_file or encrypted_password"`
	Password       string   `flag:"password" help:"admin password, password file path or encrypted password"`
	TLSCert        string   `flag:"tls-cert" help:"TLS server certificate path"`
	TLSPassphrase  string   `flag:"tls-passphrase" help:"TLS server certificate passphrase file path"`
	PSK            string   `flag:"psk" help:"HA pre-shared key value, or 'generate'"`
	PSKFile        string   `flag:"psk-file" help:"HA pre-shared key file path"`
	Role           string   `flag:"role" help:"only emit one HA node: primary, backup or monitor"`
	Out            string   `flag:"out" short:"o" help:"write output files to this directory"`
	Write          bool     `flag:"write" short:"w" help:"write output files to --out or the configured output dir"`
	Copy           bool     `flag:"copy" help:"copy the output to the clipboard"`
	Verbose        bool     `flag:"verbose" short:"v" help:"debug logging"`
}

func handleGenerateCommand(_ context.Context, args []string) error {
	flags, err := parseFlags[generateFlags](args)
	if err != nil {
		return err
	}
	log, err := logging.New(flags.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	userCfg, values, err := loadBase(flags.Profile)
	if err != nil {
		return err
	}
	values, err = applyFlags(values, flags)
	if err != nil {
		return err
	}
	st := session.New(deployment.Read(values), log)
	if note := st.LimitNote(); note != "" {
		log.Warn(note)
	}
	dir := flags.Out
	if dir == "" && flags.Write {
		dir = userCfg.OutputDir
		if dir == "" {
			dir = "."
		}
	}
	return emit(os.Stdout, log, st.Snapshot(), emitOptions{Role: flags.Role, Dir: dir, Copy: flags.Copy})
}

// loadBase layers the user config defaults and a profile file.
func loadBase(profile string) (config.Config, deployment.Values, error) {
	userCfg, _, err := config.Load()
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("failed to load config: %w", err)
	}
	values := userCfg.Defaults.Values()
	path := strings.TrimSpace(profile)
	if path == "" {
		path = userCfg.DefaultProfile
	}
	if path != "" {
		p, err := config.LoadProfile(path)
		if err != nil {
			if errors.Is(err, config.ErrUnknownFormat) {
				return userCfg, nil, newUsageError(err.Error())
			}
			return userCfg, nil, fmt.Errorf("failed to load profile: %w", err)
		}
		p.Apply(values)
	}
	return userCfg, values, nil
}

// applyFlags overlays command line settings on base. base is not modified.
func applyFlags(base deployment.Values, flags generateFlags) (deployment.Values, error) {
	values := maps.Clone(base)
	if values == nil {
		values = deployment.Values{}
	}
	set := func(f deployment.Field, v string) {
		if v = strings.TrimSpace(v); v != "" {
			values[f] = v
		}
	}
	set(deployment.FieldOutputFormat, flags.Format)
	set(deployment.FieldMode, flags.Mode)
	set(deployment.FieldRuntime, flags.Runtime)
	set(deployment.FieldSoftwareEdition, flags.Edition)
	if flags.MacOS {
		values[deployment.FieldMacOS] = "yes"
	}
	set(deployment.FieldNetworkMode, flags.Net)
	set(deployment.FieldScalingParams, flags.Scaling)
	set(deployment.FieldMaxSpoolUsageGB, flags.SpoolGB)
	set(deployment.FieldStandaloneName, flags.Name)
	set(deployment.FieldImagePath, flags.Image)
	set(deployment.FieldImageVersion, flags.ImageVersion)
	set(deployment.FieldStoragePath, flags.Storage)
	set(deployment.FieldRestartPolicy, flags.Restart)
	set(deployment.FieldUID, flags.User)
	set(deployment.FieldPasswordMethod, flags.PasswordMethod)
	set(deployment.FieldPasswordValue, flags.Password)
	set(deployment.FieldTLSCertPath, flags.TLSCert)
	set(deployment.FieldTLSPassphrasePath, flags.TLSPassphrase)

	if flags.Edition != "" && flags.Image == "" {
		current := values[deployment.FieldImagePath]
		if current == "" {
			current = deployment.ImagePathStandard
		}
		values[deployment.FieldImagePath] = deployment.ImageForEdition(current, deployment.Edition(strings.ToLower(flags.Edition)))
	}

	sel := ports.NewSelection(deployment.ParsePorts(values.Get(deployment.FieldPorts))...)
	if flags.Ports != "" {
		sel = ports.NewSelection(deployment.ParsePorts(flags.Ports)...)
	}
	if flags.Recommended {
		sel.SelectRecommended()
	}
	if flags.TLSOnly {
		sel.SelectTLSOnly()
	}
	values[deployment.FieldPorts] = deployment.FormatPorts(sel.Sorted())

	for _, entry := range flags.Nodes {
		if err := applyNode(values, entry); err != nil {
			return nil, err
		}
	}
	switch key := strings.TrimSpace(flags.PSK); {
	case key == "generate":
		generated, err := psk.Generate(psk.DefaultLength)
		if err != nil {
			return nil, err
		}
		values[deployment.FieldPSKMode] = string(deployment.PSKDirect)
		values[deployment.FieldPSKValue] = generated
	case key != "":
		values[deployment.FieldPSKMode] = string(deployment.PSKDirect)
		values[deployment.FieldPSKValue] = key
	}
	if path := strings.TrimSpace(flags.PSKFile); path != "" {
		values[deployment.FieldPSKMode] = string(deployment.PSKFile)
		values[deployment.FieldPSKFilePath] = path
	}
	return values, nil
}

// applyNode reads role=name[@host].
func applyNode(values deployment.Values, entry string) error {
	roleText, rest, ok := strings.Cut(entry, "=")
	role, known := deployment.ParseRole(roleText)
	if !ok || !known {
		return newUsageError(fmt.Sprintf("invalid node %q (expected role=name[@host], role is primary, backup or monitor)", entry))
	}
	name, host, _ := strings.Cut(rest, "@")
	name = strings.TrimSpace(name)
	if name == "" {
		return newUsageError(fmt.Sprintf("invalid node %q (missing name)", entry))
	}
	nameField, hostField := nodeFields(role)
	values[nameField] = name
	if host = strings.TrimSpace(host); host != "" {
		values[hostField] = host
	}
	return nil
}

func nodeFields(role deployment.Role) (deployment.Field, deployment.Field) {
	switch role {
	case deployment.RoleBackup:
		return deployment.FieldBackupName, deployment.FieldBackupHost
	case deployment.RoleMonitor:
		return deployment.FieldMonitorName, deployment.FieldMonitorHost
	default:
		return deployment.FieldPrimaryName, deployment.FieldPrimaryHost
	}
}

type emitOptions struct {
	Role string
	Dir  string
	Copy bool
}

// emit renders snapshot and prints, saves or copies the result.
func emit(out io.Writer, log *zap.Logger, snapshot deployment.Values, opts emitOptions) error {
	cfg := deployment.Normalize(deployment.Read(snapshot))
	for _, warning := range deployment.Validate(cfg) {
		log.Warn("configuration warning", zap.Error(warning))
	}
	outs, err := selectRole(synth.New(snapshot, log).Outputs(), cfg, opts.Role)
	if err != nil {
		return err
	}
	if opts.Dir != "" {
		paths, err := synth.WriteOutputs(opts.Dir, outs)
		if err != nil {
			return err
		}
		for _, path := range paths {
			log.Info("wrote file", zap.String("path", path))
		}
	} else {
		printOutputs(out, outs)
	}
	if opts.Copy {
		if err := clipboard.WriteText(joinOutputs(outs)); err != nil {
			log.Warn("could not copy to clipboard", zap.Error(err))
		} else {
			log.Info("copied to clipboard")
		}
	}
	return nil
}

func selectRole(outs []synth.Output, cfg deployment.Config, roleText string) ([]synth.Output, error) {
	if strings.TrimSpace(roleText) == "" {
		return outs, nil
	}
	if !cfg.IsHA() {
		return nil, newUsageError("--role only applies to --mode ha")
	}
	role, ok := deployment.ParseRole(roleText)
	if !ok {
		return nil, newUsageError(fmt.Sprintf("unknown role %q (expected primary, backup or monitor)", roleText))
	}
	for _, o := range outs {
		if o.Role == string(role) {
			return []synth.Output{o}, nil
		}
	}
	return nil, newUsageError(fmt.Sprintf("no output for role %q", roleText))
}

func joinOutputs(outs []synth.Output) string {
	if len(outs) == 1 {
		return outs[0].Text
	}
	parts := make([]string, 0, len(outs))
	for _, o := range outs {
		parts = append(parts, "# "+o.Role+"\n"+o.Text)
	}
	return strings.Join(parts, "\n\n")
}
