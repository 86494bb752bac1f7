// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deployment

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// Field identifies one configuration input.
type Field string

const (
	FieldRuntime           Field = "runtime"
	FieldMacOS             Field = "macos"
	FieldMode              Field = "mode"
	FieldOutputFormat      Field = "output_format"
	FieldNetworkMode       Field = "network_mode"
	FieldStoragePath       Field = "storage_path"
	FieldImagePath         Field = "image_path"
	FieldImageVersion      Field = "image_version"
	FieldSoftwareEdition   Field = "software_edition"
	FieldRestartPolicy     Field = "restart_policy"
	FieldUID               Field = "uid"
	FieldPasswordMethod    Field = "password_method"
	FieldPasswordValue     Field = "pw_value"
	FieldTLSCertPath       Field = "tls_servercertificate_filepath"
	FieldTLSPassphrasePath Field = "tls_servercertificate_passphrasefilepath"
	FieldPorts             Field = "ports"
	FieldScalingParams     Field = "scaling_params"
	FieldMaxSpoolUsageGB   Field = "max_spool_usage_gb"
	FieldStandaloneName    Field = "standalone_name"
	FieldPrimaryName       Field = "ha_primary_name"
	FieldPrimaryHost       Field = "ha_primary_host"
	FieldBackupName        Field = "ha_backup_name"
	FieldBackupHost        Field = "ha_backup_host"
	FieldMonitorName       Field = "ha_monitor_name"
	FieldMonitorHost       Field = "ha_monitor_host"
	FieldPSKMode           Field = "ha_psk_mode"
	FieldPSKValue          Field = "ha_psk_value"
	FieldPSKFilePath       Field = "ha_psk_filepath"
)

// Snapshot is the read side of whatever collects the configuration (a form,
// a profile file, CLI flags). Absent fields return "".
type Snapshot interface {
	Get(field Field) string
}

// Values is a map-backed Snapshot.
type Values map[Field]string

func (v Values) Get(field Field) string {
	if v == nil {
		return ""
	}
	return v[field]
}

// Read converts a snapshot into a Config, applying defaults for blank or
// unrecognized values. It never fails.
func Read(s Snapshot) Config {
	get := func(f Field) string { return strings.TrimSpace(s.Get(f)) }
	cfg := Config{
		Runtime:           Runtime(choose(get(FieldRuntime), string(RuntimeDocker), string(RuntimePodman))),
		MacOS:             parseYes(get(FieldMacOS)),
		Mode:              Mode(choose(get(FieldMode), string(ModeStandalone), string(ModeHA))),
		Output:            OutputFormat(choose(get(FieldOutputFormat), string(OutputRun), string(OutputCompose))),
		Network:           NetworkMode(choose(get(FieldNetworkMode), string(NetworkBridge), string(NetworkHost), string(NetworkSlirp4netns))),
		StoragePath:       get(FieldStoragePath),
		ImagePath:         orDefault(get(FieldImagePath), ImagePathStandard),
		ImageVersion:      orDefault(get(FieldImageVersion), DefaultImageVersion),
		Edition:           Edition(choose(get(FieldSoftwareEdition), string(EditionStandard), string(EditionEnterprise))),
		RestartPolicy:     get(FieldRestartPolicy),
		UID:               get(FieldUID),
		PasswordMethod:    PasswordMethod(choose(get(FieldPasswordMethod), string(PasswordPlain), string(PasswordFile), string(PasswordEncrypted))),
		Password:          get(FieldPasswordValue),
		TLSCertPath:       get(FieldTLSCertPath),
		TLSPassphrasePath: get(FieldTLSPassphrasePath),
		Ports:             ParsePorts(s.Get(FieldPorts)),
		ScalingParams:     get(FieldScalingParams),
		MaxSpoolGB:        ParseGB(get(FieldMaxSpoolUsageGB)),
		StandaloneName:    get(FieldStandaloneName),
		Nodes: Nodes{
			Primary: Node{Name: get(FieldPrimaryName), Host: get(FieldPrimaryHost)},
			Backup:  Node{Name: get(FieldBackupName), Host: get(FieldBackupHost)},
			Monitor: Node{Name: get(FieldMonitorName), Host: get(FieldMonitorHost)},
		},
		PSK: PSK{
			Mode:     PSKMode(choose(get(FieldPSKMode), string(PSKDirect), string(PSKFile))),
			Key:      get(FieldPSKValue),
			FilePath: get(FieldPSKFilePath),
		},
	}
	return cfg
}

// Values renders the config back into snapshot form.
func (c Config) Values() Values {
	v := Values{
		FieldRuntime:           string(c.Runtime),
		FieldMacOS:             formatYes(c.MacOS),
		FieldMode:              string(c.Mode),
		FieldOutputFormat:      string(c.Output),
		FieldNetworkMode:       string(c.Network),
		FieldStoragePath:       c.StoragePath,
		FieldImagePath:         c.ImagePath,
		FieldImageVersion:      c.ImageVersion,
		FieldSoftwareEdition:   string(c.Edition),
		FieldRestartPolicy:     c.RestartPolicy,
		FieldUID:               c.UID,
		FieldPasswordMethod:    string(c.PasswordMethod),
		FieldPasswordValue:     c.Password,
		FieldTLSCertPath:       c.TLSCertPath,
		FieldTLSPassphrasePath: c.TLSPassphrasePath,
		FieldPorts:             FormatPorts(c.Ports),
		FieldScalingParams:     c.ScalingParams,
		FieldMaxSpoolUsageGB:   FormatGB(c.MaxSpoolGB),
		FieldStandaloneName:    c.StandaloneName,
		FieldPrimaryName:       c.Nodes.Primary.Name,
		FieldPrimaryHost:       c.Nodes.Primary.Host,
		FieldBackupName:        c.Nodes.Backup.Name,
		FieldBackupHost:        c.Nodes.Backup.Host,
		FieldMonitorName:       c.Nodes.Monitor.Name,
		FieldMonitorHost:       c.Nodes.Monitor.Host,
		FieldPSKMode:           string(c.PSK.Mode),
		FieldPSKValue:          c.PSK.Key,
		FieldPSKFilePath:       c.PSK.FilePath,
	}
	return v
}

// ParsePorts reads a comma or whitespace separated port list. Invalid
// entries are skipped; the result is de-duplicated and ascending.
func ParsePorts(raw string) []int {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n <= 0 || n > 65535 {
			continue
		}
		out = append(out, n)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func FormatPorts(ports []int) string {
	parts := make([]string, len(ports))
	for i, p := range ports {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ",")
}

// ParseGB reads a gigabyte quantity; blank, non-numeric, or non-finite input
// reads as 0.
func ParseGB(raw string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// FormatGB prints a gigabyte quantity in its shortest form ("2", "1.5").
func FormatGB(gb float64) string {
	return strconv.FormatFloat(gb, 'f', -1, 64)
}

func choose(value string, fallback string, allowed ...string) string {
	v := strings.ToLower(value)
	if v == fallback || slices.Contains(allowed, v) {
		return v
	}
	return fallback
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func parseYes(value string) bool {
	switch strings.ToLower(value) {
	case "yes", "true", "1", "on":
		return true
	default:
		return false
	}
}

func formatYes(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
