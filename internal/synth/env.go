// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synth

import "github.com/itsJamilAhmed/solace-container-command-builder/internal/deployment"

// The helpers below return KEY=VALUE strings shared by run and compose output.

func adminEnv(cfg deployment.Config) []string {
	if cfg.Password == "" {
		return nil
	}
	return []string{
		cfg.PasswordMethod.EnvKey() + "=" + cfg.Password,
		"username_admin_globalaccesslevel=admin",
	}
}

func redundancyEnv() []string {
	return []string{"redundancy_enable=yes", "configsync_enable=yes"}
}

func pskEnv(psk deployment.PSK) []string {
	if psk.Mode == deployment.PSKFile {
		if psk.FilePath == "" {
			return nil
		}
		return []string{"redundancy_authentication_presharedkey_filepath=" + psk.FilePath}
	}
	if psk.Key == "" {
		return nil
	}
	return []string{"redundancy_authentication_presharedkey_key=" + psk.Key}
}

// groupEnv describes all three nodes so every member knows the full group.
func groupEnv(nodes deployment.Nodes) []string {
	var out []string
	for _, role := range deployment.Roles() {
		node := nodes.Get(role)
		if node.Name == "" {
			continue
		}
		prefix := "redundancy_group_node_" + node.Name
		if node.Host != "" {
			out = append(out, prefix+"_connectvia="+node.Host)
		}
		nodeType := "message_routing"
		if role == deployment.RoleMonitor {
			nodeType = "monitoring"
		}
		out = append(out, prefix+"_nodetype="+nodeType)
	}
	return out
}

func roleEnv(role deployment.Role) string {
	if role == deployment.RoleMonitor {
		return "nodetype=monitoring"
	}
	if role == deployment.RoleBackup {
		return "redundancy_activestandbyrole=backup"
	}
	return "redundancy_activestandbyrole=primary"
}

func tlsEnv(cfg deployment.Config) []string {
	var out []string
	if cfg.TLSCertPath != "" {
		out = append(out, "tls_servercertificate_filepath="+cfg.TLSCertPath)
	}
	if cfg.TLSPassphrasePath != "" {
		out = append(out, "tls_servercertificate_passphrasefilepath="+cfg.TLSPassphrasePath)
	}
	return out
}

func nodeName(cfg deployment.Config, role deployment.Role, ha bool) string {
	if ha {
		return cfg.Nodes.Get(role).Name
	}
	return cfg.StandaloneName
}
