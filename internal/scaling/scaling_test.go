// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scaling

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSetThenGet(t *testing.T) {
	p := Parse("")
	p.Set("system_scaling_maxconnectioncount", "1000")
	got, ok := p.Get("system_scaling_maxconnectioncount")
	if !ok || got != "1000" {
		t.Fatalf("expected 1000, got %q %v", got, ok)
	}
	if p.String() != "--env system_scaling_maxconnectioncount=1000" {
		t.Fatalf("unexpected serialization %q", p.String())
	}
}

func TestSetReplacesInPlace(t *testing.T) {
	p := Parse("--env a=1   --env b=2\n--shm-size=1g --env c=3")
	p.Set("b", "20")
	want := "--env a=1 --env b=20 --shm-size=1g --env c=3"
	if p.String() != want {
		t.Fatalf("expected %q, got %q", want, p.String())
	}
}

func TestRemoveKeepsOrderAndNormalizes(t *testing.T) {
	p := Parse("  --env a=1 --env b=2\t--env c=3  ")
	p.Remove("b")
	if _, ok := p.Get("b"); ok {
		t.Fatalf("expected b removed")
	}
	if p.String() != "--env a=1 --env c=3" {
		t.Fatalf("unexpected serialization %q", p.String())
	}
	p.Remove("missing")
	if p.String() != "--env a=1 --env c=3" {
		t.Fatalf("removing a missing key changed the text: %q", p.String())
	}
}

func TestParseCollapsesDuplicateKeys(t *testing.T) {
	p := Parse("--env a=1 --env a=2 --env=b=3")
	got, _ := p.Get("a")
	if got != "1" {
		t.Fatalf("expected first occurrence to win, got %q", got)
	}
	if p.String() != "--env a=1 --env b=3" {
		t.Fatalf("unexpected serialization %q", p.String())
	}
}

func TestRunArgsPairsOptions(t *testing.T) {
	p := Parse("--env a=1 --ulimit nofile=2448:42192 --shm-size=1g --privileged --shm-size 2g")
	want := []string{
		"--env a=1",
		"--ulimit nofile=2448:42192",
		"--shm-size=1g",
		"--privileged",
		"--shm-size 2g",
	}
	if diff := cmp.Diff(want, p.RunArgs()); diff != "" {
		t.Fatalf("run args mismatch (-want +got):\n%s", diff)
	}
}

func TestDanglingOptionsKeptVerbatim(t *testing.T) {
	p := Parse("--env a=1 --ulimit")
	if diff := cmp.Diff([]string{"--env a=1", "--ulimit"}, p.RunArgs()); diff != "" {
		t.Fatalf("run args mismatch (-want +got):\n%s", diff)
	}
	p = Parse("--env")
	if p.String() != "--env" {
		t.Fatalf("unexpected serialization %q", p.String())
	}
}

func TestSpoolConversions(t *testing.T) {
	p := Parse("--env " + SpoolKey + "=2000")
	if gb := p.SpoolGB(); gb != 2 {
		t.Fatalf("expected 2 GB, got %v", gb)
	}
	p.SetSpoolGB(1.5)
	if got, _ := p.Get(SpoolKey); got != "1500" {
		t.Fatalf("expected 1500 MB, got %q", got)
	}
	p.SetSpoolGB(0)
	if _, ok := p.Get(SpoolKey); ok {
		t.Fatalf("expected spool token removed at 0 GB")
	}
	if gb := Parse("--env " + SpoolKey + "=lots").SpoolGB(); gb != 0 {
		t.Fatalf("expected 0 GB for non-numeric token, got %v", gb)
	}
}

func TestComposeView(t *testing.T) {
	p := Parse("--env a=1 --env BARE --ulimit core=-1 --ulimit nofile=2448:42192 --ulimit junk --shm-size=1g --cap-add=SYS_NICE --env")
	got := p.Compose()
	want := ComposeView{
		Env: []string{"a=1", "BARE"},
		Ulimits: []Ulimit{
			{Name: "core", Value: "-1"},
			{Name: "nofile", Value: "2448:42192"},
		},
		ShmSize:  "1g",
		Unmapped: []string{"--ulimit junk", "--cap-add=SYS_NICE", "--env"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("compose view mismatch (-want +got):\n%s", diff)
	}
}
