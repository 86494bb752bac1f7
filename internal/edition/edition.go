// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package edition holds the per-edition scaling ceilings and the clamp rules
// applied to scaling parameters and the message spool size.
package edition

import (
	"math"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/itsJamilAhmed/solace-container-command-builder/internal/deployment"
)

const (
	StandardMaxSpoolGB   = 800
	EnterpriseMaxSpoolGB = 6000
)

// Param is a discretely valued scaling parameter rendered as an env override.
type Param struct {
	Key    string
	Title  string
	Values []int64
	Labels []string
}

// Label returns the display label for the value at idx.
func (p Param) Label(idx int) string {
	if idx < 0 || idx >= len(p.Labels) {
		return ""
	}
	return p.Labels[idx]
}

var Params = []Param{
	{Key: "system_scaling_maxconnectioncount", Title: "Max client connections", Values: []int64{100, 1000, 10000, 100000, 200000}, Labels: []string{"100", "1,000", "10,000", "100,000", "200,000"}},
	{Key: "system_scaling_maxqueuemessagecount", Title: "Max queue messages", Values: []int64{100, 240, 3000}, Labels: []string{"100M", "240M", "3000M"}},
	{Key: "system_scaling_maxkafkabridgecount", Title: "Max Kafka bridges", Values: []int64{0, 10, 50, 200}, Labels: []string{"0", "10", "50", "200"}},
	{Key: "system_scaling_maxkafkabrokerconnectioncount", Title: "Max Kafka broker connections", Values: []int64{0, 300, 2000, 10000}, Labels: []string{"0", "300", "2,000", "10,000"}},
	{Key: "system_scaling_maxbridgecount", Title: "Max bridges", Values: []int64{25, 500, 5000}, Labels: []string{"25", "500", "5,000"}},
	{Key: "system_scaling_maxsubscriptioncount", Title: "Max subscriptions", Values: []int64{50000, 500000, 5000000}, Labels: []string{"50,000", "500,000", "5,000,000"}},
	{Key: "system_scaling_maxguaranteedmessagesize", Title: "Max guaranteed message size (MB)", Values: []int64{10, 30}, Labels: []string{"10", "30"}},
}

// Lookup finds a scaling parameter by env key.
func Lookup(key string) (Param, bool) {
	for _, p := range Params {
		if p.Key == key {
			return p, true
		}
	}
	return Param{}, false
}

var standardCeilings = map[string]int64{
	"system_scaling_maxconnectioncount":            1000,
	"system_scaling_maxqueuemessagecount":          240,
	"system_scaling_maxkafkabrokerconnectioncount": 10000,
	"system_scaling_maxbridgecount":                25,
	"system_scaling_maxsubscriptioncount":          500000,
	"system_scaling_maxguaranteedmessagesize":      30,
}

// AllowedIndex returns the index of the highest value not above ceiling.
// values must be ascending. When no value fits, 0 is returned.
func AllowedIndex(values []int64, ceiling int64) int {
	allowed := 0
	for i, v := range values {
		if v <= ceiling {
			allowed = i
		}
	}
	return allowed
}

// Notice records the first attempt to exceed a standard edition limit. It
// lives for one session; Reset starts a new one.
type Notice struct {
	seen atomic.Bool
}

// Note marks an exceedance and reports whether it is the first.
func (n *Notice) Note() bool {
	return n.seen.CompareAndSwap(false, true)
}

func (n *Notice) Seen() bool {
	return n.seen.Load()
}

func (n *Notice) Reset() {
	n.seen.Store(false)
}

// Policy applies one edition's limits.
type Policy struct {
	Edition deployment.Edition
	Notice  *Notice
	Log     *zap.Logger
}

func NewPolicy(e deployment.Edition, notice *Notice, log *zap.Logger) Policy {
	if notice == nil {
		notice = &Notice{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return Policy{Edition: e, Notice: notice, Log: log}
}

// Ceiling returns the edition limit for key, if any.
func (p Policy) Ceiling(key string) (int64, bool) {
	if p.Edition == deployment.EditionEnterprise {
		return 0, false
	}
	c, ok := standardCeilings[key]
	return c, ok
}

// Allowed returns the highest selectable index for param, or false when the
// edition places no limit on it.
func (p Policy) Allowed(param Param) (int, bool) {
	ceiling, ok := p.Ceiling(param.Key)
	if !ok {
		return 0, false
	}
	return AllowedIndex(param.Values, ceiling), true
}

// Clamp coerces idx into range and under the edition ceiling. The second
// result reports whether the ceiling forced the value down.
func (p Policy) Clamp(param Param, idx int) (int, bool) {
	idx = max(0, min(len(param.Values)-1, idx))
	allowed, ok := p.Allowed(param)
	if !ok || idx <= allowed {
		return idx, false
	}
	p.note("scaling parameter clamped", zap.String("key", param.Key), zap.Int("requested", idx), zap.Int("allowed", allowed))
	return allowed, true
}

// MaxSpoolGB is the largest message spool the edition accepts.
func (p Policy) MaxSpoolGB() float64 {
	if p.Edition == deployment.EditionEnterprise {
		return EnterpriseMaxSpoolGB
	}
	return StandardMaxSpoolGB
}

// ClampSpoolGB normalizes a spool size entered in GB: blank, non-numeric and
// negative input reads as 0, and values above the edition maximum are capped.
func (p Policy) ClampSpoolGB(raw string) (float64, bool) {
	n := deployment.ParseGB(raw)
	limit := p.MaxSpoolGB()
	gb := math.Min(limit, math.Max(0, n))
	if n <= limit {
		return gb, false
	}
	if p.Edition != deployment.EditionEnterprise {
		p.note("max spool usage clamped", zap.Float64("requested_gb", n), zap.Float64("allowed_gb", limit))
	}
	return gb, true
}

// CutoffPercent places the standard edition cut-off along the parameter's
// value range. It returns false when there is nothing to mark.
func (p Policy) CutoffPercent(param Param) (float64, bool) {
	allowed, ok := p.Allowed(param)
	maxIdx := len(param.Values) - 1
	if !ok || maxIdx <= 0 || allowed >= maxIdx {
		return 100, false
	}
	return float64(allowed) / float64(maxIdx) * 100, true
}

func (p Policy) note(msg string, fields ...zap.Field) {
	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}
	log.Debug(msg, fields...)
	if p.Notice != nil && p.Notice.Note() {
		log.Info("standard edition limit reached; enterprise values are labelled from now on")
	}
}
