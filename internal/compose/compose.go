// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compose emits the small YAML subset needed for a single-service
// Compose document. Field order is fixed so output is byte-stable.
package compose

import (
	"regexp"
	"strconv"
	"strings"

	units "github.com/docker/go-units"
)

// HostNetworkPortsNote explains why a host-networked service has no ports.
const HostNetworkPortsNote = `# Note: ports are omitted because network_mode: "host" conflicts with port publishing in Compose.`

// UnmappedHeader introduces scaling options that have no Compose field.
const UnmappedHeader = "# Unmapped docker run options from Scaling Parameters:"

type Ulimit struct {
	Name  string
	Value string
}

// Service is one Compose service. Empty optional fields are omitted.
type Service struct {
	Key           string
	ContainerName string
	Hostname      string
	Image         string
	Restart       string
	User          string
	NetworkMode   string
	ShmSize       string
	Ulimits       []Ulimit
	Ports         []string
	// PortsOmitted marks ports that were selected but dropped by host
	// networking; a note replaces the ports block.
	PortsOmitted bool
	Volumes      []string
	Environment  []string
	Unmapped     []string
}

// Render returns the `services:` document for s, without a trailing newline.
func (s Service) Render() string {
	lines := []string{"services:", "  " + Escape(s.Key) + ":"}
	scalar := func(name, value string) {
		if value != "" {
			lines = append(lines, "    "+name+": "+Escape(value))
		}
	}
	list := func(name string, values []string) {
		if len(values) == 0 {
			return
		}
		lines = append(lines, "    "+name+":")
		for _, v := range values {
			lines = append(lines, "      - "+Escape(v))
		}
	}

	scalar("container_name", s.ContainerName)
	scalar("hostname", s.Hostname)
	scalar("image", s.Image)
	scalar("restart", s.Restart)
	scalar("user", s.User)
	scalar("network_mode", s.NetworkMode)
	scalar("shm_size", s.ShmSize)
	if len(s.Ulimits) > 0 {
		lines = append(lines, "    ulimits:")
		for _, u := range s.Ulimits {
			lines = append(lines, ulimitLines(u)...)
		}
	}
	if s.PortsOmitted {
		lines = append(lines, "    "+HostNetworkPortsNote)
	} else {
		list("ports", s.Ports)
	}
	list("volumes", s.Volumes)
	list("environment", s.Environment)
	if len(s.Unmapped) > 0 {
		lines = append(lines, "    "+UnmappedHeader)
		for _, u := range s.Unmapped {
			lines = append(lines, "    # - "+u)
		}
	}
	return strings.Join(lines, "\n")
}

// ulimitLines renders `soft:hard` as a mapping and a bare value as a scalar.
func ulimitLines(u Ulimit) []string {
	name := Escape(u.Name)
	raw := strings.TrimSpace(u.Value)
	if parsed, err := units.ParseUlimit(u.Name + "=" + raw); err == nil {
		if strings.Contains(raw, ":") {
			return []string{
				"      " + name + ":",
				"        soft: " + strconv.FormatInt(parsed.Soft, 10),
				"        hard: " + strconv.FormatInt(parsed.Hard, 10),
			}
		}
		return []string{"      " + name + ": " + strconv.FormatInt(parsed.Soft, 10)}
	}
	if soft, hard, ok := strings.Cut(raw, ":"); ok {
		return []string{
			"      " + name + ":",
			"        soft: " + number(soft),
			"        hard: " + number(hard),
		}
	}
	return []string{"      " + name + ": " + number(raw)}
}

func number(raw string) string {
	if _, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return raw
	}
	return quote(raw)
}

var (
	safeScalar = regexp.MustCompile(`^[A-Za-z0-9._/:=-]+$`)
	// colon-separated digits read as base-60 integers under YAML 1.1.
	sexagesimal = regexp.MustCompile(`^[0-9]+(:[0-9]+)+$`)
)

var reservedWords = map[string]bool{
	"y": true, "yes": true, "n": true, "no": true,
	"true": true, "false": true, "on": true, "off": true,
	"null": true, "~": true,
}

// Escape returns v as a YAML scalar. Values outside [A-Za-z0-9._/:=-] are
// double quoted; so are values YAML would otherwise read as a bool, null or
// number.
func Escape(v string) string {
	if v == "" {
		return `""`
	}
	if !safeScalar.MatchString(v) || ambiguous(v) {
		return quote(v)
	}
	return v
}

func ambiguous(v string) bool {
	if reservedWords[strings.ToLower(v)] {
		return true
	}
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return true
	}
	if _, err := strconv.ParseInt(v, 0, 64); err == nil {
		return true
	}
	return sexagesimal.MatchString(v)
}

func quote(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `"`, `\"`)
	return `"` + v + `"`
}
