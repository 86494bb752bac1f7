// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synth

import (
	"github.com/itsJamilAhmed/solace-container-command-builder/internal/compose"
	"github.com/itsJamilAhmed/solace-container-command-builder/internal/deployment"
	"github.com/itsJamilAhmed/solace-container-command-builder/internal/ports"
	"github.com/itsJamilAhmed/solace-container-command-builder/internal/scaling"
)

// DefaultServiceKey names the Compose service when the node has no name.
const DefaultServiceKey = "solace"

// ComposePorts returns the port strings for a Compose service. It is empty
// under host networking.
func ComposePorts(cfg deployment.Config, ha bool) []string {
	var out []string
	for _, b := range ports.Publish(cfg.Ports, cfg.MacOS, cfg.Network) {
		out = append(out, b.String())
	}
	if ha {
		for _, b := range ports.PublishHA(cfg.Network) {
			out = append(out, b.String())
		}
	}
	return out
}

// ComposeService builds the Compose service for the standalone broker
// (ha=false) or one HA role.
func ComposeService(cfg deployment.Config, role deployment.Role, ha bool) compose.Service {
	view := scaling.Parse(cfg.ScalingParams).Compose()
	name := nodeName(cfg, role, ha)

	env := adminEnv(cfg)
	if ha {
		env = append(env, redundancyEnv()...)
	}
	env = append(env, view.Env...)
	if ha {
		env = append(env, pskEnv(cfg.PSK)...)
		env = append(env, groupEnv(cfg.Nodes)...)
		env = append(env, roleEnv(role))
	}
	env = append(env, tlsEnv(cfg)...)
	if name != "" {
		env = append(env, "routername="+name)
	}

	key := name
	if key == "" {
		key = DefaultServiceKey
	}
	svc := compose.Service{
		Key:           key,
		ContainerName: name,
		Hostname:      name,
		Image:         cfg.Image(),
		Restart:       cfg.RestartPolicy,
		User:          cfg.UID,
		NetworkMode:   string(cfg.Network),
		ShmSize:       view.ShmSize,
		Ports:         ComposePorts(cfg, ha),
		PortsOmitted:  cfg.Network == deployment.NetworkHost && (len(cfg.Ports) > 0 || ha),
		Environment:   env,
		Unmapped:      view.Unmapped,
	}
	for _, u := range view.Ulimits {
		svc.Ulimits = append(svc.Ulimits, compose.Ulimit{Name: u.Name, Value: u.Value})
	}
	if cfg.StoragePath != "" {
		svc.Volumes = []string{cfg.StoragePath + ":" + deployment.StorageTarget}
	}
	return svc
}
