// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package deployment describes a broker deployment as read from a form or
// profile: runtime, networking, credentials, scaling overrides and the HA
// redundancy group.
package deployment

import "strings"

type Runtime string

const (
	RuntimeDocker Runtime = "docker"
	RuntimePodman Runtime = "podman"
)

type Mode string

const (
	ModeStandalone Mode = "standalone"
	ModeHA         Mode = "ha"
)

type OutputFormat string

const (
	OutputRun     OutputFormat = "run"
	OutputCompose OutputFormat = "compose"
)

type NetworkMode string

const (
	NetworkBridge      NetworkMode = "bridge"
	NetworkHost        NetworkMode = "host"
	NetworkSlirp4netns NetworkMode = "slirp4netns"
)

type Edition string

const (
	EditionStandard   Edition = "standard"
	EditionEnterprise Edition = "enterprise"
)

// PasswordMethod selects how the admin credential is handed to the broker.
type PasswordMethod string

const (
	PasswordPlain     PasswordMethod = "password"
	PasswordFile      PasswordMethod = "password_file"
	PasswordEncrypted PasswordMethod = "encrypted_password"
)

// EnvKey returns the broker config key carrying the admin credential.
func (m PasswordMethod) EnvKey() string {
	switch m {
	case PasswordFile:
		return "username_admin_passwordfilepath"
	case PasswordEncrypted:
		return "username_admin_encryptedpassword"
	default:
		return "username_admin_password"
	}
}

type PSKMode string

const (
	PSKDirect PSKMode = "direct"
	PSKFile   PSKMode = "file"
)

// Role names one member of the HA redundancy group.
type Role string

const (
	RolePrimary Role = "primary"
	RoleBackup  Role = "backup"
	RoleMonitor Role = "monitor"
)

// Roles lists the HA roles in emission order.
func Roles() []Role {
	return []Role{RolePrimary, RoleBackup, RoleMonitor}
}

func ParseRole(value string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(value))) {
	case RolePrimary:
		return RolePrimary, true
	case RoleBackup:
		return RoleBackup, true
	case RoleMonitor, "monitoring":
		return RoleMonitor, true
	default:
		return "", false
	}
}

const (
	ImagePathStandard   = "docker.io/solace/solace-pubsub-standard"
	ImagePathEnterprise = "solace-pubsub-enterprise"
	DefaultImageVersion = "latest"

	// StorageTarget is where the broker keeps its state inside the container.
	StorageTarget = "/var/lib/solace"
)

// Node is one broker container in the redundancy group.
type Node struct {
	Name string
	Host string
}

type Nodes struct {
	Primary Node
	Backup  Node
	Monitor Node
}

func (n Nodes) Get(role Role) Node {
	switch role {
	case RoleBackup:
		return n.Backup
	case RoleMonitor:
		return n.Monitor
	default:
		return n.Primary
	}
}

// PSK is the redundancy pre-shared key. Only the field matching Mode is used.
type PSK struct {
	Mode     PSKMode
	Key      string
	FilePath string
}

// Config is one immutable read of every setting the generators consume.
type Config struct {
	Runtime           Runtime
	MacOS             bool
	Mode              Mode
	Output            OutputFormat
	Network           NetworkMode
	StoragePath       string
	ImagePath         string
	ImageVersion      string
	Edition           Edition
	RestartPolicy     string
	UID               string
	PasswordMethod    PasswordMethod
	Password          string
	TLSCertPath       string
	TLSPassphrasePath string
	Ports             []int
	ScalingParams     string
	MaxSpoolGB        float64
	StandaloneName    string
	Nodes             Nodes
	PSK               PSK
}

// Image returns the image reference as path:version.
func (c Config) Image() string {
	return c.ImagePath + ":" + c.ImageVersion
}

func (c Config) IsHA() bool {
	return c.Mode == ModeHA
}

// ImageForEdition swaps between the two stock image paths when the edition
// changes. Custom image paths are returned untouched.
func ImageForEdition(current string, edition Edition) string {
	cur := strings.TrimSpace(current)
	if cur != ImagePathStandard && cur != ImagePathEnterprise {
		return current
	}
	if edition == EditionEnterprise {
		return ImagePathEnterprise
	}
	return ImagePathStandard
}
