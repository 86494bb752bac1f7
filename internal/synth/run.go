// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synth

import (
	"github.com/itsJamilAhmed/solace-container-command-builder/internal/deployment"
	"github.com/itsJamilAhmed/solace-container-command-builder/internal/ports"
	"github.com/itsJamilAhmed/solace-container-command-builder/internal/scaling"
	"github.com/itsJamilAhmed/solace-container-command-builder/internal/shellwrap"
)

// StandaloneArgs returns the ordered run-command arguments for a single
// broker, image excluded.
func StandaloneArgs(cfg deployment.Config) []string {
	return runArgs(cfg, "", false)
}

// HANodeArgs returns the ordered run-command arguments for one member of the
// redundancy group, image excluded.
func HANodeArgs(cfg deployment.Config, role deployment.Role) []string {
	return runArgs(cfg, role, true)
}

// RunCommand wraps args into the final shell text with the image last.
func RunCommand(cfg deployment.Config, args []string) string {
	return shellwrap.Wrap(args, cfg.Image())
}

func runArgs(cfg deployment.Config, role deployment.Role, ha bool) []string {
	args := []string{string(cfg.Runtime) + " run -d"}
	if cfg.UID != "" {
		args = append(args, "--user "+cfg.UID)
	}
	for _, b := range ports.Publish(cfg.Ports, cfg.MacOS, cfg.Network) {
		args = append(args, b.RunArg())
	}
	if ha {
		for _, b := range ports.PublishHA(cfg.Network) {
			args = append(args, b.RunArg())
		}
	}
	args = append(args, "--net "+string(cfg.Network))
	if cfg.StoragePath != "" {
		args = append(args, "--mount type=bind,source="+cfg.StoragePath+",target="+deployment.StorageTarget)
	}
	args = appendEnv(args, adminEnv(cfg)...)
	if ha {
		args = appendEnv(args, redundancyEnv()...)
	}
	args = append(args, scaling.Parse(cfg.ScalingParams).RunArgs()...)
	if ha {
		args = appendEnv(args, pskEnv(cfg.PSK)...)
		args = appendEnv(args, groupEnv(cfg.Nodes)...)
		args = appendEnv(args, roleEnv(role))
	}
	args = appendEnv(args, tlsEnv(cfg)...)
	if cfg.RestartPolicy != "" {
		args = append(args, "--restart "+cfg.RestartPolicy)
	}
	if name := nodeName(cfg, role, ha); name != "" {
		args = appendEnv(args, "routername="+name)
		args = append(args, "--hostname="+name, "--name="+name)
	}
	return args
}

func appendEnv(args []string, kvs ...string) []string {
	for _, kv := range kvs {
		args = append(args, "--env "+kv)
	}
	return args
}
