// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deployment

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSlirpRequiresPodman = errors.New("slirp4netns networking requires podman")
	ErrMissingNodeName     = errors.New("HA node name is required")
	ErrDuplicateNodeName   = errors.New("HA node names must be distinct")
	ErrMissingPSK          = errors.New("HA pre-shared key is not set")
)

// Normalize applies the runtime constraints the form enforces: host
// networking is unavailable on macOS and falls back to bridge.
func Normalize(cfg Config) Config {
	if cfg.MacOS && cfg.Network == NetworkHost {
		cfg.Network = NetworkBridge
	}
	return cfg
}

// Validate reports settings that produce a command the broker or runtime will
// likely reject. Generation does not depend on it.
func Validate(cfg Config) []error {
	var errs []error
	if cfg.Network == NetworkSlirp4netns && cfg.Runtime != RuntimePodman {
		errs = append(errs, ErrSlirpRequiresPodman)
	}
	if !cfg.IsHA() {
		return errs
	}
	seen := map[string]Role{}
	for _, role := range Roles() {
		name := strings.TrimSpace(cfg.Nodes.Get(role).Name)
		if name == "" {
			errs = append(errs, fmt.Errorf("%s: %w", role, ErrMissingNodeName))
			continue
		}
		if prev, ok := seen[name]; ok {
			errs = append(errs, fmt.Errorf("%s and %s share %q: %w", prev, role, name, ErrDuplicateNodeName))
			continue
		}
		seen[name] = role
	}
	switch cfg.PSK.Mode {
	case PSKFile:
		if cfg.PSK.FilePath == "" {
			errs = append(errs, fmt.Errorf("file mode: %w", ErrMissingPSK))
		}
	default:
		if cfg.PSK.Key == "" {
			errs = append(errs, fmt.Errorf("direct mode: %w", ErrMissingPSK))
		}
	}
	return errs
}
