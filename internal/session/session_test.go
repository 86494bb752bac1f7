// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package session

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/itsJamilAhmed/solace-container-command-builder/internal/deployment"
	"github.com/itsJamilAhmed/solace-container-command-builder/internal/edition"
)

const connKey = "system_scaling_maxconnectioncount"

func standardConfig() deployment.Config {
	return deployment.Read(deployment.Values{})
}

func TestSetSliderClampsStandard(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	s := New(standardConfig(), zap.New(core))
	if s.LimitNote() != "" {
		t.Fatalf("expected no note before a clamp")
	}
	idx, err := s.SetSlider(connKey, 4)
	if err != nil {
		t.Fatalf("set slider: %v", err)
	}
	if idx != 1 {
		t.Fatalf("expected clamp to index 1, got %d", idx)
	}
	if got := s.ScalingText(); got != "--env "+connKey+"=1000" {
		t.Fatalf("unexpected scaling text %q", got)
	}
	if s.LimitNote() == "" {
		t.Fatalf("expected limit note after clamp")
	}
	if _, err := s.SetSlider("system_scaling_maxbridgecount", 2); err != nil {
		t.Fatalf("set slider: %v", err)
	}
	if n := logs.FilterMessageSnippet("limit reached").Len(); n != 1 {
		t.Fatalf("expected one first-exceedance log, got %d", n)
	}
}

func TestSetSliderEnterprise(t *testing.T) {
	cfg := standardConfig()
	cfg.Edition = deployment.EditionEnterprise
	s := New(cfg, nil)
	idx, err := s.SetSlider(connKey, 4)
	if err != nil {
		t.Fatalf("set slider: %v", err)
	}
	if idx != 4 || s.ScalingText() != "--env "+connKey+"=200000" {
		t.Fatalf("unexpected enterprise result %d %q", idx, s.ScalingText())
	}
	if s.LimitNote() != "" {
		t.Fatalf("enterprise should never note a limit")
	}
}

func TestSetSliderUnknownKey(t *testing.T) {
	s := New(standardConfig(), nil)
	if _, err := s.SetSlider("nope", 0); !errors.Is(err, ErrUnknownParam) {
		t.Fatalf("expected ErrUnknownParam, got %v", err)
	}
}

func TestClearSlider(t *testing.T) {
	cfg := standardConfig()
	cfg.ScalingParams = "--env " + connKey + "=100 --shm-size=1g"
	s := New(cfg, nil)
	if _, ok := s.Slider(connKey); !ok {
		t.Fatalf("expected slider from scaling text")
	}
	if err := s.ClearSlider(connKey); err != nil {
		t.Fatalf("clear slider: %v", err)
	}
	if _, ok := s.Slider(connKey); ok {
		t.Fatalf("slider still set after clear")
	}
	if got := s.ScalingText(); got != "--shm-size=1g" {
		t.Fatalf("unexpected scaling text %q", got)
	}
	if err := s.ClearSlider("nope"); !errors.Is(err, ErrUnknownParam) {
		t.Fatalf("expected ErrUnknownParam, got %v", err)
	}
}

func TestSetSpoolInput(t *testing.T) {
	s := New(standardConfig(), nil)
	if gb := s.SetSpoolInput("1000"); gb != 800 {
		t.Fatalf("expected 800 GB, got %v", gb)
	}
	if got := s.ScalingText(); got != "--env messagespool_maxspoolusage=800000" {
		t.Fatalf("unexpected scaling text %q", got)
	}
	if gb := s.SetSpoolInput(""); gb != 0 {
		t.Fatalf("expected 0 GB, got %v", gb)
	}
	if got := s.ScalingText(); got != "" {
		t.Fatalf("expected spool token removed, got %q", got)
	}
}

func TestSetScalingTextDerivesSpoolAndSliders(t *testing.T) {
	s := New(standardConfig(), nil)
	s.SetScalingText("--env  messagespool_maxspoolusage=2500   --env " + connKey + "=100000")
	if s.SpoolGB() != 2.5 {
		t.Fatalf("expected 2.5 GB, got %v", s.SpoolGB())
	}
	if idx, ok := s.Slider(connKey); !ok || idx != 1 {
		t.Fatalf("expected slider index 1, got %d %v", idx, ok)
	}
	want := "--env messagespool_maxspoolusage=2500 --env " + connKey + "=1000"
	if got := s.ScalingText(); got != want {
		t.Fatalf("unexpected scaling text:\n%s\nwant:\n%s", got, want)
	}
	s.SetScalingText("--env " + connKey + "=1000")
	if s.SpoolGB() != 0 {
		t.Fatalf("expected spool cleared with its token, got %v", s.SpoolGB())
	}
}

func TestSetEditionReclamps(t *testing.T) {
	cfg := standardConfig()
	cfg.Edition = deployment.EditionEnterprise
	cfg.ImagePath = deployment.ImagePathEnterprise
	cfg.ScalingParams = "--env " + connKey + "=200000"
	cfg.MaxSpoolGB = 5000
	s := New(cfg, nil)
	if s.SpoolGB() != 5000 {
		t.Fatalf("expected 5000 GB, got %v", s.SpoolGB())
	}

	s.SetEdition(deployment.EditionStandard)
	got := s.Config()
	if got.ImagePath != deployment.ImagePathStandard {
		t.Fatalf("expected standard image, got %q", got.ImagePath)
	}
	if got.MaxSpoolGB != edition.StandardMaxSpoolGB {
		t.Fatalf("expected spool clamp, got %v", got.MaxSpoolGB)
	}
	want := "--env " + connKey + "=1000 --env messagespool_maxspoolusage=800000"
	if got.ScalingParams != want {
		t.Fatalf("unexpected scaling text:\n%s\nwant:\n%s", got.ScalingParams, want)
	}
	if s.LimitNote() == "" {
		t.Fatalf("expected limit note")
	}
}

func TestSnapshotPorts(t *testing.T) {
	s := New(standardConfig(), nil)
	s.Ports().Add(9000)
	s.Ports().Add(1943)
	if diff := cmp.Diff([]int{1943, 9000}, s.Config().Ports); diff != "" {
		t.Fatalf("ports mismatch (-want +got):\n%s", diff)
	}
	if got := s.Snapshot().Get(deployment.FieldPorts); got != "1943,9000" {
		t.Fatalf("unexpected snapshot ports %q", got)
	}
}

func TestOptionLabel(t *testing.T) {
	s := New(standardConfig(), nil)
	param, _ := edition.Lookup(connKey)
	if got := s.OptionLabel(param, 4); got != "200,000" {
		t.Fatalf("expected plain label, got %q", got)
	}
	s.SetSlider(connKey, 4)
	if got := s.OptionLabel(param, 4); got != "200,000"+EnterpriseSuffix {
		t.Fatalf("expected enterprise label, got %q", got)
	}
	if got := s.OptionLabel(param, 1); got != "1,000" {
		t.Fatalf("expected allowed label, got %q", got)
	}
}
