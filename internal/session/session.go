// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package session holds the editable state behind the interactive form and
// keeps the scaling sliders, the spool size and the scaling text in step.
package session

import (
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/itsJamilAhmed/solace-container-command-builder/internal/deployment"
	"github.com/itsJamilAhmed/solace-container-command-builder/internal/edition"
	"github.com/itsJamilAhmed/solace-container-command-builder/internal/ports"
	"github.com/itsJamilAhmed/solace-container-command-builder/internal/scaling"
)

var ErrUnknownParam = errors.New("unknown scaling parameter")

// EnterpriseSuffix is appended to option labels above the standard ceiling
// once the first limit has been hit.
const EnterpriseSuffix = " (Enterprise)"

// State is one editing session. It is not safe for concurrent use.
type State struct {
	base    deployment.Config
	params  *scaling.Params
	ports   *ports.Selection
	sliders map[string]int
	spoolGB float64
	notice  *edition.Notice
	log     *zap.Logger
}

// New starts a session from cfg. A non-zero MaxSpoolGB wins over a spool
// token in the scaling text.
func New(cfg deployment.Config, log *zap.Logger) *State {
	if log == nil {
		log = zap.NewNop()
	}
	s := &State{
		base:   cfg,
		ports:  ports.NewSelection(cfg.Ports...),
		notice: &edition.Notice{},
		log:    log,
	}
	s.SetScalingText(cfg.ScalingParams)
	if cfg.MaxSpoolGB > 0 {
		s.SetSpoolInput(deployment.FormatGB(cfg.MaxSpoolGB))
	}
	return s
}

func (s *State) policy() edition.Policy {
	return edition.NewPolicy(s.base.Edition, s.notice, s.log)
}

// Update edits the plain fields. Scaling, ports and spool size are owned by
// the session and are ignored if fn changes them.
func (s *State) Update(fn func(*deployment.Config)) {
	fn(&s.base)
}

// Config returns the current settings.
func (s *State) Config() deployment.Config {
	cfg := s.base
	cfg.ScalingParams = s.params.String()
	cfg.Ports = s.ports.Sorted()
	cfg.MaxSpoolGB = s.spoolGB
	return cfg
}

// Snapshot exports the current settings for the generators.
func (s *State) Snapshot() deployment.Values {
	return s.Config().Values()
}

func (s *State) Ports() *ports.Selection {
	return s.ports
}

func (s *State) ScalingText() string {
	return s.params.String()
}

func (s *State) SpoolGB() float64 {
	return s.spoolGB
}

// Slider returns the index of param key, and false when the scaling text
// does not set it.
func (s *State) Slider(key string) (int, bool) {
	idx, ok := s.sliders[key]
	return idx, ok
}

// SetSlider moves a slider and writes its value into the scaling text. It
// returns the index actually applied.
func (s *State) SetSlider(key string, idx int) (int, error) {
	param, ok := edition.Lookup(key)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownParam, key)
	}
	idx, _ = s.policy().Clamp(param, idx)
	s.sliders[key] = idx
	s.params.Set(key, strconv.FormatInt(param.Values[idx], 10))
	return idx, nil
}

// ClearSlider drops param key from the scaling text so the broker default
// applies.
func (s *State) ClearSlider(key string) error {
	if _, ok := edition.Lookup(key); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownParam, key)
	}
	delete(s.sliders, key)
	s.params.Remove(key)
	return nil
}

// SetSpoolInput applies a spool size typed in GB and rewrites the MB token.
func (s *State) SetSpoolInput(raw string) float64 {
	gb, _ := s.policy().ClampSpoolGB(raw)
	s.spoolGB = gb
	s.params.SetSpoolGB(gb)
	return gb
}

// SetScalingText replaces the scaling text and re-derives the sliders and
// spool size from its tokens. Values above the edition ceiling are clamped
// and written back.
func (s *State) SetScalingText(raw string) {
	s.params = scaling.Parse(raw)
	s.sliders = map[string]int{}
	s.spoolGB = s.params.SpoolGB()
	s.reclamp()
}

// SetEdition switches edition, swaps a stock image path and re-clamps every
// parameter and the spool size.
func (s *State) SetEdition(e deployment.Edition) {
	s.base.Edition = e
	s.base.ImagePath = deployment.ImageForEdition(s.base.ImagePath, e)
	s.reclamp()
}

func (s *State) reclamp() {
	policy := s.policy()
	for _, param := range edition.Params {
		v, ok := s.params.Get(param.Key)
		if !ok {
			delete(s.sliders, param.Key)
			continue
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			s.log.Debug("scaling value is not numeric", zap.String("key", param.Key), zap.String("value", v))
			delete(s.sliders, param.Key)
			continue
		}
		idx, clamped := policy.Clamp(param, stepIndex(param.Values, n))
		s.sliders[param.Key] = idx
		if clamped {
			s.params.Set(param.Key, strconv.FormatInt(param.Values[idx], 10))
		}
	}
	if s.spoolGB > 0 {
		s.SetSpoolInput(deployment.FormatGB(s.spoolGB))
	}
}

// stepIndex returns the first step at or above n, or the last step.
func stepIndex(values []int64, n int64) int {
	for i, v := range values {
		if v >= n {
			return i
		}
	}
	return len(values) - 1
}

// LimitNote is the message shown once a standard edition limit was hit, or
// "" before that.
func (s *State) LimitNote() string {
	if !s.notice.Seen() {
		return ""
	}
	return "Values above the standard edition limits need the enterprise edition."
}

// OptionLabel labels one slider step, marking steps above the standard
// ceiling after the first limit hit.
func (s *State) OptionLabel(param edition.Param, idx int) string {
	label := param.Label(idx)
	if !s.notice.Seen() {
		return label
	}
	allowed, ok := edition.NewPolicy(deployment.EditionStandard, nil, nil).Allowed(param)
	if ok && idx > allowed {
		label += EnterpriseSuffix
	}
	return label
}
