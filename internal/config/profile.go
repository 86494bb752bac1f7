// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/itsJamilAhmed/solace-container-command-builder/internal/deployment"
)

var ErrUnknownFormat = errors.New("unknown profile format")

type Node struct {
	Name string `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`
	Host string `json:"host,omitempty" toml:"host,omitempty" yaml:"host,omitempty"`
}

// Profile is a saved deployment. Zero fields leave the underlying value
// alone when applied.
type Profile struct {
	Runtime           string  `json:"runtime,omitempty" toml:"runtime,omitempty" yaml:"runtime,omitempty"`
	MacOS             bool    `json:"macos,omitempty" toml:"macos,omitempty" yaml:"macos,omitempty"`
	Mode              string  `json:"mode,omitempty" toml:"mode,omitempty" yaml:"mode,omitempty"`
	Output            string  `json:"output_format,omitempty" toml:"output_format,omitempty" yaml:"output_format,omitempty"`
	Network           string  `json:"network_mode,omitempty" toml:"network_mode,omitempty" yaml:"network_mode,omitempty"`
	StoragePath       string  `json:"storage_path,omitempty" toml:"storage_path,omitempty" yaml:"storage_path,omitempty"`
	ImagePath         string  `json:"image_path,omitempty" toml:"image_path,omitempty" yaml:"image_path,omitempty"`
	ImageVersion      string  `json:"image_version,omitempty" toml:"image_version,omitempty" yaml:"image_version,omitempty"`
	Edition           string  `json:"software_edition,omitempty" toml:"software_edition,omitempty" yaml:"software_edition,omitempty"`
	RestartPolicy     string  `json:"restart_policy,omitempty" toml:"restart_policy,omitempty" yaml:"restart_policy,omitempty"`
	UID               string  `json:"uid,omitempty" toml:"uid,omitempty" yaml:"uid,omitempty"`
	PasswordMethod    string  `json:"password_method,omitempty" toml:"password_method,omitempty" yaml:"password_method,omitempty"`
	Password          string  `json:"password,omitempty" toml:"password,omitempty" yaml:"password,omitempty"`
	TLSCertPath       string  `json:"tls_cert_path,omitempty" toml:"tls_cert_path,omitempty" yaml:"tls_cert_path,omitempty"`
	TLSPassphrasePath string  `json:"tls_passphrase_path,omitempty" toml:"tls_passphrase_path,omitempty" yaml:"tls_passphrase_path,omitempty"`
	Ports             []int   `json:"ports,omitempty" toml:"ports,omitempty" yaml:"ports,omitempty"`
	ScalingParams     string  `json:"scaling_params,omitempty" toml:"scaling_params,omitempty" yaml:"scaling_params,omitempty"`
	MaxSpoolGB        float64 `json:"max_spool_usage_gb,omitempty" toml:"max_spool_usage_gb,omitempty" yaml:"max_spool_usage_gb,omitempty"`
	StandaloneName    string  `json:"standalone_name,omitempty" toml:"standalone_name,omitempty" yaml:"standalone_name,omitempty"`
	Primary           Node    `json:"primary,omitzero" toml:"primary,omitempty" yaml:"primary,omitempty"`
	Backup            Node    `json:"backup,omitzero" toml:"backup,omitempty" yaml:"backup,omitempty"`
	Monitor           Node    `json:"monitor,omitzero" toml:"monitor,omitempty" yaml:"monitor,omitempty"`
	PSKMode           string  `json:"psk_mode,omitempty" toml:"psk_mode,omitempty" yaml:"psk_mode,omitempty"`
	PSKValue          string  `json:"psk_value,omitempty" toml:"psk_value,omitempty" yaml:"psk_value,omitempty"`
	PSKFilePath       string  `json:"psk_filepath,omitempty" toml:"psk_filepath,omitempty" yaml:"psk_filepath,omitempty"`
}

// Apply writes the profile's set fields into v.
func (p Profile) Apply(v deployment.Values) {
	set := func(f deployment.Field, value string) {
		if value != "" {
			v[f] = value
		}
	}
	set(deployment.FieldRuntime, p.Runtime)
	if p.MacOS {
		v[deployment.FieldMacOS] = "yes"
	}
	set(deployment.FieldMode, p.Mode)
	set(deployment.FieldOutputFormat, p.Output)
	set(deployment.FieldNetworkMode, p.Network)
	set(deployment.FieldStoragePath, p.StoragePath)
	set(deployment.FieldImagePath, p.ImagePath)
	set(deployment.FieldImageVersion, p.ImageVersion)
	set(deployment.FieldSoftwareEdition, p.Edition)
	set(deployment.FieldRestartPolicy, p.RestartPolicy)
	set(deployment.FieldUID, p.UID)
	set(deployment.FieldPasswordMethod, p.PasswordMethod)
	set(deployment.FieldPasswordValue, p.Password)
	set(deployment.FieldTLSCertPath, p.TLSCertPath)
	set(deployment.FieldTLSPassphrasePath, p.TLSPassphrasePath)
	if len(p.Ports) > 0 {
		v[deployment.FieldPorts] = deployment.FormatPorts(p.Ports)
	}
	set(deployment.FieldScalingParams, p.ScalingParams)
	if p.MaxSpoolGB > 0 {
		v[deployment.FieldMaxSpoolUsageGB] = deployment.FormatGB(p.MaxSpoolGB)
	}
	set(deployment.FieldStandaloneName, p.StandaloneName)
	set(deployment.FieldPrimaryName, p.Primary.Name)
	set(deployment.FieldPrimaryHost, p.Primary.Host)
	set(deployment.FieldBackupName, p.Backup.Name)
	set(deployment.FieldBackupHost, p.Backup.Host)
	set(deployment.FieldMonitorName, p.Monitor.Name)
	set(deployment.FieldMonitorHost, p.Monitor.Host)
	set(deployment.FieldPSKMode, p.PSKMode)
	set(deployment.FieldPSKValue, p.PSKValue)
	set(deployment.FieldPSKFilePath, p.PSKFilePath)
}

// Values returns the profile as a snapshot.
func (p Profile) Values() deployment.Values {
	v := deployment.Values{}
	p.Apply(v)
	return v
}

// ProfileFrom captures cfg so it can be saved and replayed.
func ProfileFrom(cfg deployment.Config) Profile {
	return Profile{
		Runtime:           string(cfg.Runtime),
		MacOS:             cfg.MacOS,
		Mode:              string(cfg.Mode),
		Output:            string(cfg.Output),
		Network:           string(cfg.Network),
		StoragePath:       cfg.StoragePath,
		ImagePath:         cfg.ImagePath,
		ImageVersion:      cfg.ImageVersion,
		Edition:           string(cfg.Edition),
		RestartPolicy:     cfg.RestartPolicy,
		UID:               cfg.UID,
		PasswordMethod:    string(cfg.PasswordMethod),
		Password:          cfg.Password,
		TLSCertPath:       cfg.TLSCertPath,
		TLSPassphrasePath: cfg.TLSPassphrasePath,
		Ports:             cfg.Ports,
		ScalingParams:     cfg.ScalingParams,
		MaxSpoolGB:        cfg.MaxSpoolGB,
		StandaloneName:    cfg.StandaloneName,
		Primary:           Node(cfg.Nodes.Primary),
		Backup:            Node(cfg.Nodes.Backup),
		Monitor:           Node(cfg.Nodes.Monitor),
		PSKMode:           string(cfg.PSK.Mode),
		PSKValue:          cfg.PSK.Key,
		PSKFilePath:       cfg.PSK.FilePath,
	}
}

type codec struct {
	marshal   func(any) ([]byte, error)
	unmarshal func([]byte, any) error
}

func codecFor(path string) (codec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return codec{marshal: toml.Marshal, unmarshal: toml.Unmarshal}, nil
	case ".json":
		return codec{
			marshal:   func(v any) ([]byte, error) { return json.MarshalIndent(v, "", "  ") },
			unmarshal: json.Unmarshal,
		}, nil
	case ".yaml", ".yml":
		return codec{marshal: yaml.Marshal, unmarshal: yaml.Unmarshal}, nil
	default:
		return codec{}, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// LoadProfile reads a profile, picking the format from the file extension.
func LoadProfile(path string) (Profile, error) {
	c, err := codecFor(path)
	if err != nil {
		return Profile{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, err
	}
	var p Profile
	if err := c.unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return p, nil
}

func SaveProfile(path string, p Profile) error {
	c, err := codecFor(path)
	if err != nil {
		return err
	}
	data, err := c.marshal(p)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
