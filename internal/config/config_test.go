// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoad(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	cfg := Config{
		DefaultProfile: "/profiles/lab.toml",
		OutputDir:      "out",
		Defaults: Profile{
			Runtime: "podman",
			Edition: "enterprise",
			Ports:   []int{8080, 55555},
		},
	}

	path, err := configPath()
	if err != nil {
		t.Fatalf("configPath: %v", err)
	}
	if path != filepath.Join(tmp, "solace-cmdgen", "config.toml") {
		t.Fatalf("unexpected config path %s", path)
	}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, loadedPath, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loadedPath != path {
		t.Fatalf("expected path %s, got %s", path, loadedPath)
	}
	if loaded.DefaultProfile != cfg.DefaultProfile {
		t.Fatalf("default profile mismatch: %s != %s", loaded.DefaultProfile, cfg.DefaultProfile)
	}
	if loaded.OutputDir != cfg.OutputDir {
		t.Fatalf("output dir mismatch: %s != %s", loaded.OutputDir, cfg.OutputDir)
	}
	if loaded.Defaults.Runtime != "podman" || loaded.Defaults.Edition != "enterprise" {
		t.Fatalf("defaults mismatch: %+v", loaded.Defaults)
	}
	if len(loaded.Defaults.Ports) != 2 || loaded.Defaults.Ports[1] != 55555 {
		t.Fatalf("ports mismatch: %v", loaded.Defaults.Ports)
	}
}

func TestLoadMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, _, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultProfile != "" || cfg.Defaults.Runtime != "" {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	path, err := configPath()
	if err != nil {
		t.Fatalf("configPath: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("output_dir = ["), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, err := Load(); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestRemoveConfigFiles(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	path, err := configPath()
	if err != nil {
		t.Fatalf("configPath: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("test"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if err := RemoveConfigFiles(); err != nil {
		t.Fatalf("RemoveConfigFiles: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected config removed, got %v", err)
	}
	if err := RemoveConfigFiles(); err != nil {
		t.Fatalf("RemoveConfigFiles with no file: %v", err)
	}
}
