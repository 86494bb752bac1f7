// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scaling stores the free-form scaling overrides as an ordered list of
// typed items. Text in the `--env KEY=VALUE` grammar is only read and written
// at the boundary (Parse and String).
package scaling

import (
	"math"
	"strconv"
	"strings"
)

// SpoolKey is the env override carrying the max spool usage in MB.
const SpoolKey = "messagespool_maxspoolusage"

type Kind int

const (
	KindEnv Kind = iota
	KindUlimit
	KindShmSize
	KindOther
)

// Item is one scaling token. For KindEnv, Key and Value hold the variable
// (HasValue is false for a bare `--env NAME`). For KindUlimit and KindShmSize
// Value holds the option argument. KindOther keeps the token verbatim in Value.
type Item struct {
	Kind     Kind
	Key      string
	Value    string
	HasValue bool
	inline   bool
}

func (it Item) String() string {
	switch it.Kind {
	case KindEnv:
		if !it.HasValue {
			return "--env " + it.Key
		}
		return "--env " + it.Key + "=" + it.Value
	case KindUlimit:
		return "--ulimit " + it.Value
	case KindShmSize:
		if it.inline {
			return "--shm-size=" + it.Value
		}
		return "--shm-size " + it.Value
	default:
		return it.Value
	}
}

// Params is the ordered scaling override set. The zero value is empty and
// ready to use.
type Params struct {
	items []Item
}

// Parse reads whitespace separated scaling tokens. Env keys appear at most
// once; later duplicates are dropped in favour of the first occurrence.
func Parse(raw string) *Params {
	p := &Params{}
	tokens := strings.Fields(raw)
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		switch {
		case t == "--env" || t == "-e":
			if i+1 >= len(tokens) {
				p.items = append(p.items, Item{Kind: KindOther, Value: t})
				continue
			}
			i++
			p.addEnv(tokens[i])
		case strings.HasPrefix(t, "--env="):
			p.addEnv(strings.TrimPrefix(t, "--env="))
		case t == "--ulimit":
			if i+1 >= len(tokens) {
				p.items = append(p.items, Item{Kind: KindOther, Value: t})
				continue
			}
			i++
			p.items = append(p.items, Item{Kind: KindUlimit, Value: tokens[i]})
		case strings.HasPrefix(t, "--ulimit="):
			p.items = append(p.items, Item{Kind: KindUlimit, Value: strings.TrimPrefix(t, "--ulimit=")})
		case strings.HasPrefix(t, "--shm-size="):
			p.items = append(p.items, Item{Kind: KindShmSize, Value: strings.TrimPrefix(t, "--shm-size="), inline: true})
		case t == "--shm-size" && i+1 < len(tokens):
			i++
			p.items = append(p.items, Item{Kind: KindShmSize, Value: tokens[i]})
		default:
			p.items = append(p.items, Item{Kind: KindOther, Value: t})
		}
	}
	return p
}

func (p *Params) addEnv(kv string) {
	key, value, hasValue := strings.Cut(kv, "=")
	if key == "" {
		p.items = append(p.items, Item{Kind: KindOther, Value: "--env=" + kv})
		return
	}
	if p.index(key) >= 0 {
		return
	}
	p.items = append(p.items, Item{Kind: KindEnv, Key: key, Value: value, HasValue: hasValue})
}

func (p *Params) index(key string) int {
	for i, it := range p.items {
		if it.Kind == KindEnv && it.Key == key {
			return i
		}
	}
	return -1
}

// Get returns the value of env key.
func (p *Params) Get(key string) (string, bool) {
	if i := p.index(key); i >= 0 {
		return p.items[i].Value, true
	}
	return "", false
}

// Set replaces key in place, or appends it when absent.
func (p *Params) Set(key, value string) {
	if i := p.index(key); i >= 0 {
		p.items[i].Value = value
		p.items[i].HasValue = true
		return
	}
	p.items = append(p.items, Item{Kind: KindEnv, Key: key, Value: value, HasValue: true})
}

// Remove deletes env key. Other items keep their order.
func (p *Params) Remove(key string) {
	out := p.items[:0]
	for _, it := range p.items {
		if it.Kind == KindEnv && it.Key == key {
			continue
		}
		out = append(out, it)
	}
	p.items = out
}

func (p *Params) Len() int {
	return len(p.items)
}

// Items returns a copy of the stored items in order.
func (p *Params) Items() []Item {
	return append([]Item(nil), p.items...)
}

// String serializes the items as single-space separated tokens.
func (p *Params) String() string {
	parts := make([]string, len(p.items))
	for i, it := range p.items {
		parts[i] = it.String()
	}
	return strings.Join(parts, " ")
}

// RunArgs returns one argument per item, option and value kept together.
func (p *Params) RunArgs() []string {
	out := make([]string, len(p.items))
	for i, it := range p.items {
		out[i] = it.String()
	}
	return out
}

// SpoolGB reads the max spool usage token (MB) as gigabytes. A missing or
// non-numeric token reads as 0.
func (p *Params) SpoolGB() float64 {
	v, ok := p.Get(SpoolKey)
	if !ok {
		return 0
	}
	mb, err := strconv.ParseInt(v, 10, 64)
	if err != nil || mb < 0 {
		return 0
	}
	return float64(mb) / 1000
}

// SetSpoolGB writes the spool size in MB, or drops the token for 0.
func (p *Params) SetSpoolGB(gb float64) {
	if gb <= 0 {
		p.Remove(SpoolKey)
		return
	}
	p.Set(SpoolKey, strconv.FormatInt(int64(math.Round(gb*1000)), 10))
}
