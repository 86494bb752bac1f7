// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deployment

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadAppliesDefaults(t *testing.T) {
	cfg := Read(Values{})
	if cfg.Runtime != RuntimeDocker {
		t.Fatalf("expected docker runtime, got %q", cfg.Runtime)
	}
	if cfg.Mode != ModeStandalone || cfg.Output != OutputRun {
		t.Fatalf("unexpected mode/output: %q/%q", cfg.Mode, cfg.Output)
	}
	if cfg.Network != NetworkBridge {
		t.Fatalf("expected bridge, got %q", cfg.Network)
	}
	if cfg.Edition != EditionStandard {
		t.Fatalf("expected standard edition, got %q", cfg.Edition)
	}
	if cfg.PasswordMethod != PasswordPlain || cfg.PSK.Mode != PSKDirect {
		t.Fatalf("unexpected password/psk defaults: %q/%q", cfg.PasswordMethod, cfg.PSK.Mode)
	}
	if cfg.Image() != ImagePathStandard+":latest" {
		t.Fatalf("unexpected image %q", cfg.Image())
	}
	if cfg.MacOS {
		t.Fatalf("expected macOS off by default")
	}
}

func TestReadRejectsUnknownEnumValues(t *testing.T) {
	cfg := Read(Values{
		FieldRuntime:     "containerd",
		FieldNetworkMode: "overlay",
		FieldMode:        "HA",
	})
	if cfg.Runtime != RuntimeDocker {
		t.Fatalf("expected fallback runtime, got %q", cfg.Runtime)
	}
	if cfg.Network != NetworkBridge {
		t.Fatalf("expected fallback network, got %q", cfg.Network)
	}
	if cfg.Mode != ModeHA {
		t.Fatalf("expected case-insensitive mode, got %q", cfg.Mode)
	}
}

func TestParsePortsSortsAndDedupes(t *testing.T) {
	got := ParsePorts("9000, 1943 9000,abc,70000,,55555")
	want := []int{1943, 9000, 55555}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ports mismatch (-want +got):\n%s", diff)
	}
	if FormatPorts(got) != "1943,9000,55555" {
		t.Fatalf("unexpected format %q", FormatPorts(got))
	}
}

func TestParseGB(t *testing.T) {
	cases := map[string]float64{
		"":     0,
		"abc":  0,
		"1.5":  1.5,
		" 2 ":  2,
		"NaN":  0,
		"+Inf": 0,
	}
	for raw, want := range cases {
		if got := ParseGB(raw); got != want {
			t.Fatalf("ParseGB(%q) = %v, want %v", raw, got, want)
		}
	}
	if FormatGB(2) != "2" || FormatGB(1.5) != "1.5" {
		t.Fatalf("unexpected FormatGB output")
	}
}

func TestValuesRoundTrip(t *testing.T) {
	cfg := Config{
		Runtime:        RuntimePodman,
		MacOS:          true,
		Mode:           ModeHA,
		Output:         OutputCompose,
		Network:        NetworkSlirp4netns,
		ImagePath:      "img",
		ImageVersion:   "1.0",
		Edition:        EditionEnterprise,
		PasswordMethod: PasswordFile,
		Password:       "/run/secret",
		Ports:          []int{1943, 8080},
		ScalingParams:  "--env a=1",
		MaxSpoolGB:     1.5,
		Nodes: Nodes{
			Primary: Node{Name: "p", Host: "p.local"},
			Backup:  Node{Name: "b", Host: "b.local"},
			Monitor: Node{Name: "m", Host: "m.local"},
		},
		PSK: PSK{Mode: PSKFile, FilePath: "/psk"},
	}
	got := Read(cfg.Values())
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestPasswordMethodEnvKey(t *testing.T) {
	cases := map[PasswordMethod]string{
		PasswordPlain:     "username_admin_password",
		PasswordFile:      "username_admin_passwordfilepath",
		PasswordEncrypted: "username_admin_encryptedpassword",
	}
	for method, want := range cases {
		if got := method.EnvKey(); got != want {
			t.Fatalf("%s: got %q want %q", method, got, want)
		}
	}
}

func TestImageForEdition(t *testing.T) {
	if got := ImageForEdition(ImagePathStandard, EditionEnterprise); got != ImagePathEnterprise {
		t.Fatalf("expected enterprise image, got %q", got)
	}
	if got := ImageForEdition(ImagePathEnterprise, EditionStandard); got != ImagePathStandard {
		t.Fatalf("expected standard image, got %q", got)
	}
	if got := ImageForEdition("registry.local/solace", EditionEnterprise); got != "registry.local/solace" {
		t.Fatalf("expected custom image untouched, got %q", got)
	}
}

func TestNormalizeMacOSHostNetwork(t *testing.T) {
	cfg := Normalize(Config{MacOS: true, Network: NetworkHost})
	if cfg.Network != NetworkBridge {
		t.Fatalf("expected bridge on macOS, got %q", cfg.Network)
	}
	cfg = Normalize(Config{Network: NetworkHost})
	if cfg.Network != NetworkHost {
		t.Fatalf("expected host kept off macOS, got %q", cfg.Network)
	}
}

func TestValidateHA(t *testing.T) {
	cfg := Config{
		Mode:    ModeHA,
		Runtime: RuntimeDocker,
		Network: NetworkSlirp4netns,
		Nodes: Nodes{
			Primary: Node{Name: "a"},
			Backup:  Node{Name: "a"},
		},
		PSK: PSK{Mode: PSKDirect},
	}
	errs := Validate(cfg)
	var slirp, dup, missing, psk bool
	for _, err := range errs {
		switch {
		case errors.Is(err, ErrSlirpRequiresPodman):
			slirp = true
		case errors.Is(err, ErrDuplicateNodeName):
			dup = true
		case errors.Is(err, ErrMissingNodeName):
			missing = true
		case errors.Is(err, ErrMissingPSK):
			psk = true
		}
	}
	if !slirp || !dup || !missing || !psk {
		t.Fatalf("expected all validation errors, got %v", errs)
	}
}

func TestValidateStandaloneIgnoresHA(t *testing.T) {
	if errs := Validate(Config{Mode: ModeStandalone, Network: NetworkBridge}); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestParseRole(t *testing.T) {
	if role, ok := ParseRole("Monitoring"); !ok || role != RoleMonitor {
		t.Fatalf("expected monitor role, got %q %v", role, ok)
	}
	if _, ok := ParseRole("witness"); ok {
		t.Fatalf("expected unknown role to fail")
	}
}
