// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/itsJamilAhmed/solace-container-command-builder/internal/deployment"
)

func TestLoadProfileFormats(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"lab.toml": `mode = "ha"
ports = [9000, 1943]
max_spool_usage_gb = 2.5

[primary]
name = "pri"
host = "10.0.0.1"
`,
		"lab.json": `{"mode": "ha", "ports": [9000, 1943], "max_spool_usage_gb": 2.5, "primary": {"name": "pri", "host": "10.0.0.1"}}`,
		"lab.yaml": `mode: ha
ports: [9000, 1943]
max_spool_usage_gb: 2.5
primary:
  name: pri
  host: 10.0.0.1
`,
	}
	want := deployment.Values{
		deployment.FieldMode:            "ha",
		deployment.FieldPorts:           "9000,1943",
		deployment.FieldMaxSpoolUsageGB: "2.5",
		deployment.FieldPrimaryName:     "pri",
		deployment.FieldPrimaryHost:     "10.0.0.1",
	}
	for name, body := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		p, err := LoadProfile(path)
		if err != nil {
			t.Fatalf("load %s: %v", name, err)
		}
		if diff := cmp.Diff(want, p.Values()); diff != "" {
			t.Fatalf("%s values mismatch (-want +got):\n%s", name, diff)
		}
	}
}

func TestLoadProfileUnknownFormat(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "lab.ini"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestSaveProfileRoundTrip(t *testing.T) {
	cfg := deployment.Read(deployment.Values{
		deployment.FieldRuntime:     "podman",
		deployment.FieldMode:        "ha",
		deployment.FieldPorts:       "8080",
		deployment.FieldBackupName:  "bak",
		deployment.FieldPSKMode:     "file",
		deployment.FieldPSKFilePath: "/secrets/psk",
	})
	for _, ext := range []string{".toml", ".json", ".yml"} {
		path := filepath.Join(t.TempDir(), "profile"+ext)
		if err := SaveProfile(path, ProfileFrom(cfg)); err != nil {
			t.Fatalf("save %s: %v", ext, err)
		}
		p, err := LoadProfile(path)
		if err != nil {
			t.Fatalf("load %s: %v", ext, err)
		}
		if diff := cmp.Diff(cfg, deployment.Read(p.Values())); diff != "" {
			t.Fatalf("%s round trip mismatch (-want +got):\n%s", ext, diff)
		}
	}
}

func TestApplyKeepsUnsetFields(t *testing.T) {
	v := deployment.Values{deployment.FieldRuntime: "podman", deployment.FieldUID: "1000"}
	Profile{UID: "2000"}.Apply(v)
	if v[deployment.FieldRuntime] != "podman" || v[deployment.FieldUID] != "2000" {
		t.Fatalf("unexpected values %v", v)
	}
}
