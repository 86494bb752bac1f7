// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ports tracks which broker ports are published and renders them as
// host:container bindings.
package ports

import (
	"fmt"
	"slices"
	"strings"

	"github.com/itsJamilAhmed/solace-container-command-builder/internal/deployment"
)

// Port is one entry of the broker port table.
type Port struct {
	Number   int
	Protocol string
	Label    string
}

// Plain reports whether the port carries unencrypted traffic.
func (p Port) Plain() bool {
	return strings.Contains(p.Label, "(Plain)")
}

var Catalog = []Port{
	{Number: 55555, Protocol: "SMF", Label: "SMF (Plain)"},
	{Number: 55003, Protocol: "SMF", Label: "SMF Compressed (Plain)"},
	{Number: 55443, Protocol: "SMF", Label: "SMF (TLS)"},
	{Number: 8008, Protocol: "Web Transport", Label: "WebSocket (Plain)"},
	{Number: 1443, Protocol: "Web Transport", Label: "WebSocket (TLS)"},
	{Number: 9000, Protocol: "REST", Label: "REST (Plain)"},
	{Number: 9443, Protocol: "REST", Label: "REST (TLS)"},
	{Number: 5672, Protocol: "AMQP", Label: "AMQP (Plain)"},
	{Number: 5671, Protocol: "AMQP", Label: "AMQP (TLS)"},
	{Number: 1883, Protocol: "MQTT", Label: "MQTT (Plain)"},
	{Number: 8883, Protocol: "MQTT", Label: "MQTT (TLS)"},
	{Number: 8000, Protocol: "MQTT", Label: "MQTT WebSocket (Plain)"},
	{Number: 8443, Protocol: "MQTT", Label: "MQTT WebSocket (TLS)"},
	{Number: 8080, Protocol: "SEMP", Label: "SEMP / PubSub+ Manager (Plain)"},
	{Number: 1943, Protocol: "SEMP", Label: "SEMP / PubSub+ Manager (TLS)"},
	{Number: 2222, Protocol: "SSH", Label: "SSH / CLI"},
	{Number: 5550, Protocol: "Health Check", Label: "Health Check (Plain)"},
}

// Recommended is the well-known subset selected by SelectRecommended.
var Recommended = []int{55555, 55443, 9000, 9443, 8080, 1943, 8008, 1443, 2222}

// Lookup finds a catalog entry by port number.
func Lookup(number int) (Port, bool) {
	for _, p := range Catalog {
		if p.Number == number {
			return p, true
		}
	}
	return Port{}, false
}

// Protocols lists catalog protocol groups in first-seen order.
func Protocols() []string {
	var out []string
	for _, p := range Catalog {
		if !slices.Contains(out, p.Protocol) {
			out = append(out, p.Protocol)
		}
	}
	return out
}

// Group returns the port numbers of one protocol group.
func Group(protocol string) []int {
	var out []int
	for _, p := range Catalog {
		if p.Protocol == protocol {
			out = append(out, p.Number)
		}
	}
	return out
}

// Selection is the set of published container ports.
type Selection struct {
	set map[int]bool
}

func NewSelection(ports ...int) *Selection {
	s := &Selection{set: map[int]bool{}}
	for _, p := range ports {
		s.Add(p)
	}
	return s
}

func (s *Selection) ensure() {
	if s.set == nil {
		s.set = map[int]bool{}
	}
}

func (s *Selection) Add(port int) {
	s.ensure()
	s.set[port] = true
}

func (s *Selection) Remove(port int) {
	delete(s.set, port)
}

func (s *Selection) Has(port int) bool {
	return s.set[port]
}

func (s *Selection) Len() int {
	return len(s.set)
}

// Sorted returns the selected ports ascending.
func (s *Selection) Sorted() []int {
	out := make([]int, 0, len(s.set))
	for p := range s.set {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

// SelectRecommended replaces the selection with the recommended set.
func (s *Selection) SelectRecommended() {
	s.Clear()
	for _, p := range Recommended {
		s.Add(p)
	}
}

// SelectTLSOnly drops every selected plain-text port. Nothing is added.
func (s *Selection) SelectTLSOnly() {
	for p := range s.set {
		if entry, ok := Lookup(p); ok && entry.Plain() {
			delete(s.set, p)
		}
	}
}

func (s *Selection) Clear() {
	s.set = map[int]bool{}
}

// ToggleGroup selects every port of the group when any is unselected, and
// deselects the whole group otherwise.
func (s *Selection) ToggleGroup(group []int) {
	if len(group) == 0 {
		return
	}
	selectAll := s.anyUnselected(group)
	for _, p := range group {
		if selectAll {
			s.Add(p)
		} else {
			s.Remove(p)
		}
	}
}

// GroupAction is the label of the bulk action ToggleGroup would perform.
func (s *Selection) GroupAction(group []int) string {
	if s.anyUnselected(group) {
		return "Select all"
	}
	return "Clear all"
}

func (s *Selection) anyUnselected(group []int) bool {
	for _, p := range group {
		if !s.Has(p) {
			return true
		}
	}
	return false
}

// Binding is one published port.
type Binding struct {
	Host      int
	Container int
	Proto     string
}

// RunArg renders the binding as a run-command publish flag.
func (b Binding) RunArg() string {
	return "-p " + b.String()
}

func (b Binding) String() string {
	s := fmt.Sprintf("%d:%d", b.Host, b.Container)
	if b.Proto != "" {
		s += "/" + b.Proto
	}
	return s
}

// HABindings are the redundancy and config-sync ports every HA node publishes.
var HABindings = []Binding{
	{Host: 8741, Container: 8741, Proto: "tcp"},
	{Host: 8300, Container: 8300, Proto: "tcp"},
	{Host: 8301, Container: 8301, Proto: "tcp"},
	{Host: 8301, Container: 8301, Proto: "udp"},
	{Host: 8302, Container: 8302, Proto: "tcp"},
	{Host: 8302, Container: 8302, Proto: "udp"},
}

const (
	macOSReservedPort = 55555
	macOSRemappedPort = 55554
)

// Publish turns selected container ports into bindings. Host networking
// publishes nothing. On macOS the host side of 55555 moves to 55554.
func Publish(selected []int, macOS bool, network deployment.NetworkMode) []Binding {
	if network == deployment.NetworkHost {
		return nil
	}
	sorted := slices.Clone(selected)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	out := make([]Binding, 0, len(sorted))
	for _, p := range sorted {
		host := p
		if macOS && p == macOSReservedPort {
			host = macOSRemappedPort
		}
		out = append(out, Binding{Host: host, Container: p})
	}
	return out
}

// PublishHA returns the HA-only bindings, or none under host networking.
func PublishHA(network deployment.NetworkMode) []Binding {
	if network == deployment.NetworkHost {
		return nil
	}
	return slices.Clone(HABindings)
}
