// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseYesNo(t *testing.T) {
	cases := []struct {
		input    string
		fallback bool
		want     bool
		ok       bool
	}{
		{input: "y", want: true, ok: true},
		{input: "YES", want: true, ok: true},
		{input: "n", fallback: true, want: false, ok: true},
		{input: "no", want: false, ok: true},
		{input: "", want: false, ok: true},
		{input: "  ", fallback: true, want: true, ok: true},
		{input: "maybe", want: false, ok: false},
	}
	for _, tc := range cases {
		got, ok := parseYesNo(tc.input, tc.fallback)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("parseYesNo(%q, %v) = (%v, %v), want (%v, %v)", tc.input, tc.fallback, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseSelectionIndices(t *testing.T) {
	cases := []struct {
		input string
		max   int
		want  []int
	}{
		{input: "1,3", max: 4, want: []int{0, 2}},
		{input: "2", max: 2, want: []int{1}},
		{input: "2-4,1", max: 5, want: []int{1, 2, 3, 0}},
		{input: "1,1, 2-3,3", max: 3, want: []int{0, 1, 2}},
		{input: "all", max: 3, want: []int{0, 1, 2}},
		{input: "", max: 3, want: nil},
	}
	for _, tc := range cases {
		got, err := parseSelectionIndices(tc.input, tc.max)
		if err != nil {
			t.Fatalf("parseSelectionIndices(%q): %v", tc.input, err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("parseSelectionIndices(%q) mismatch (-want +got):\n%s", tc.input, diff)
		}
	}
}

func TestParseSelectionIndicesErrors(t *testing.T) {
	if _, err := parseSelectionIndices("5", 3); !errors.Is(err, errSelectionRange) {
		t.Fatalf("expected range error, got %v", err)
	}
	if _, err := parseSelectionIndices("2-9", 3); !errors.Is(err, errSelectionRange) {
		t.Fatalf("expected range error, got %v", err)
	}
	if _, err := parseSelectionIndices("3-1", 3); !errors.Is(err, errInvalidSelection) {
		t.Fatalf("expected invalid selection, got %v", err)
	}
	if _, err := parseSelectionIndices("x", 3); !errors.Is(err, errInvalidSelection) {
		t.Fatalf("expected invalid selection, got %v", err)
	}
	if _, err := parseSelectionIndices("1", 0); err == nil {
		t.Fatalf("expected error with no options")
	}
}
