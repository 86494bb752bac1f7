// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package synth renders a deployment snapshot into container run commands
// and Compose manifests.
package synth

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/itsJamilAhmed/solace-container-command-builder/internal/deployment"
)

// Generator reads its snapshot afresh on every call.
type Generator struct {
	Source deployment.Snapshot
	Log    *zap.Logger
}

func New(source deployment.Snapshot, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{Source: source, Log: log}
}

func (g *Generator) config() deployment.Config {
	return deployment.Normalize(deployment.Read(g.Source))
}

func (g *Generator) GenerateStandalone() string {
	cfg := g.config()
	return RunCommand(cfg, StandaloneArgs(cfg))
}

func (g *Generator) GenerateHANode(role deployment.Role) string {
	cfg := g.config()
	return RunCommand(cfg, HANodeArgs(cfg, role))
}

func (g *Generator) GenerateComposeStandalone() string {
	cfg := g.config()
	return g.renderCompose(cfg, "", false)
}

func (g *Generator) GenerateComposeHANode(role deployment.Role) string {
	cfg := g.config()
	return g.renderCompose(cfg, role, true)
}

func (g *Generator) renderCompose(cfg deployment.Config, role deployment.Role, ha bool) string {
	svc := ComposeService(cfg, role, ha)
	for _, u := range svc.Unmapped {
		g.Log.Debug("scaling option has no compose field", zap.String("service", svc.Key), zap.String("option", u))
	}
	return svc.Render()
}

// Output is one generated document ready to show, copy, or save.
type Output struct {
	Role     string
	FileName string
	Text     string
}

// Outputs renders every document the snapshot's mode and format call for:
// one for standalone, three for HA.
func (g *Generator) Outputs() []Output {
	cfg := g.config()
	asCompose := cfg.Output == deployment.OutputCompose
	if !cfg.IsHA() {
		out := Output{Role: "standalone"}
		if asCompose {
			out.FileName = "docker-compose.yml"
			out.Text = g.renderCompose(cfg, "", false)
		} else {
			out.FileName = "standalone.txt"
			out.Text = RunCommand(cfg, StandaloneArgs(cfg))
		}
		return []Output{out}
	}
	outs := make([]Output, 0, 3)
	for _, role := range deployment.Roles() {
		out := Output{Role: string(role)}
		if asCompose {
			out.FileName = "docker-compose-" + string(role) + ".yml"
			out.Text = g.renderCompose(cfg, role, true)
		} else {
			out.FileName = string(role) + ".txt"
			out.Text = RunCommand(cfg, HANodeArgs(cfg, role))
		}
		outs = append(outs, out)
	}
	return outs
}

// WriteOutputs saves each output under dir, creating it if needed, and
// returns the written paths.
func WriteOutputs(dir string, outs []Output) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	paths := make([]string, 0, len(outs))
	for _, out := range outs {
		path := filepath.Join(dir, out.FileName)
		if err := os.WriteFile(path, []byte(out.Text+"\n"), 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", out.FileName, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
