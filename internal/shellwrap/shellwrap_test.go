// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shellwrap

import (
	"strings"
	"testing"
)

func TestWrapSingleLine(t *testing.T) {
	got := Wrap([]string{"docker run -d", "-p 1943:1943", "-p 9000:9000", "--net bridge"}, "img:1.0")
	want := "docker run -d -p 1943:1943 -p 9000:9000 --net bridge \\\n  img:1.0"
	if got != want {
		t.Fatalf("wrap mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestWrapEmptyBodyIsImageOnly(t *testing.T) {
	if got := Wrap(nil, "img:1.0"); got != "img:1.0" {
		t.Fatalf("expected bare image, got %q", got)
	}
}

func TestWrapBreaksAtWidth(t *testing.T) {
	a := strings.Repeat("a", 60)
	b := strings.Repeat("b", 34)
	c := strings.Repeat("c", 35)
	got := Wrap([]string{a, b, c}, "img")
	// a+" "+b is 95 with the trailing space counted, so b still fits.
	want := a + " " + b + " \\\n  " + c + " \\\n  img"
	if got != want {
		t.Fatalf("wrap mismatch:\n got: %q\nwant: %q", got, want)
	}
	for _, line := range strings.Split(got, "\n") {
		if len(strings.TrimSuffix(line, " \\")) > WrapAt+2 {
			t.Fatalf("line too long: %q", line)
		}
	}
}

func TestWrapOverflowStartsNewLine(t *testing.T) {
	a := strings.Repeat("a", 60)
	b := strings.Repeat("b", 35)
	got := Wrap([]string{a, b}, "img")
	want := a + " \\\n  " + b + " \\\n  img"
	if got != want {
		t.Fatalf("wrap mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestWrapLongFirstArgHasNoLeadingBreak(t *testing.T) {
	long := strings.Repeat("x", 120)
	got := Wrap([]string{long}, "img")
	if got != long+" \\\n  img" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestWrapForcedBreaks(t *testing.T) {
	args := []string{
		"docker run -d",
		"--net bridge",
		"--env redundancy_activestandbyrole=primary",
		"--restart always",
		"--env routername=p",
		"--hostname=p",
		"--name=p",
	}
	got := Wrap(args, "img:1.0")
	want := "docker run -d --net bridge \\\n" +
		"  --env redundancy_activestandbyrole=primary \\\n" +
		"  --restart always --env routername=p --hostname=p \\\n" +
		"  --name=p \\\n" +
		"  img:1.0"
	if got != want {
		t.Fatalf("wrap mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestWrapForcedBreakFirst(t *testing.T) {
	got := Wrap([]string{"--name=solo"}, "img")
	if got != "--name=solo \\\n  img" {
		t.Fatalf("unexpected output %q", got)
	}
}
