// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/itsJamilAhmed/solace-container-command-builder/internal/deployment"
	"github.com/itsJamilAhmed/solace-container-command-builder/internal/edition"
	"github.com/itsJamilAhmed/solace-container-command-builder/internal/ports"
	"github.com/itsJamilAhmed/solace-container-command-builder/internal/psk"
	"github.com/itsJamilAhmed/solace-container-command-builder/internal/session"
	"github.com/itsJamilAhmed/solace-container-command-builder/internal/tui/theme"
)

// Form walks through every deployment setting and writes the answers into
// a session.
type Form struct {
	Prompter Prompter
	Out      io.Writer
	State    *session.State

	noted bool
}

func NewForm(p Prompter, out io.Writer, st *session.State) *Form {
	return &Form{Prompter: p, Out: out, State: st}
}

// Run asks each section in turn. It stops at the first prompt error.
func (f *Form) Run() error {
	steps := []func() error{
		f.askPlatform,
		f.askImage,
		f.askRuntimeOptions,
		f.askCredentials,
		f.askPorts,
		f.askScaling,
		f.askTopology,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func (f *Form) section(title string) {
	th := theme.ForOutput(f.Out)
	if th.Enabled {
		title = th.Styles.Header.Render(title)
	}
	fmt.Fprintf(f.Out, "\n%s\n", title)
}

func (f *Form) cfg() deployment.Config {
	return f.State.Config()
}

func (f *Form) update(fn func(*deployment.Config)) {
	f.State.Update(fn)
}

func options(values ...string) []SelectOption {
	out := make([]SelectOption, len(values))
	for i, v := range values {
		out[i] = SelectOption{Label: v, Value: v}
	}
	return out
}

func (f *Form) askPlatform() error {
	f.section("Platform")
	p := f.Prompter
	cfg := f.cfg()
	runtime, err := p.Select("Container runtime", "", options(string(deployment.RuntimeDocker), string(deployment.RuntimePodman)), string(cfg.Runtime))
	if err != nil {
		return err
	}
	macOS, err := p.Confirm("Running on macOS?", "Host networking is unavailable on macOS; port 55555 is published as 55554.", cfg.MacOS)
	if err != nil {
		return err
	}
	mode, err := p.Select("Deployment", "", []SelectOption{
		{Label: "Standalone broker", Value: string(deployment.ModeStandalone)},
		{Label: "HA redundancy group (primary, backup, monitor)", Value: string(deployment.ModeHA)},
	}, string(cfg.Mode))
	if err != nil {
		return err
	}
	output, err := p.Select("Output", "", []SelectOption{
		{Label: "Run command", Value: string(deployment.OutputRun)},
		{Label: "Compose file", Value: string(deployment.OutputCompose)},
	}, string(cfg.Output))
	if err != nil {
		return err
	}
	networks := []string{string(deployment.NetworkBridge)}
	if !macOS {
		networks = append(networks, string(deployment.NetworkHost))
	}
	if deployment.Runtime(runtime) == deployment.RuntimePodman {
		networks = append(networks, string(deployment.NetworkSlirp4netns))
	}
	current := string(cfg.Network)
	if !containsValue(networks, current) {
		current = string(deployment.NetworkBridge)
	}
	network, err := p.Select("Network mode", "", options(networks...), current)
	if err != nil {
		return err
	}
	ed, err := p.Select("Software edition", "", options(string(deployment.EditionStandard), string(deployment.EditionEnterprise)), string(cfg.Edition))
	if err != nil {
		return err
	}
	f.update(func(c *deployment.Config) {
		c.Runtime = deployment.Runtime(runtime)
		c.MacOS = macOS
		c.Mode = deployment.Mode(mode)
		c.Output = deployment.OutputFormat(output)
		c.Network = deployment.NetworkMode(network)
	})
	if deployment.Edition(ed) != cfg.Edition {
		f.State.SetEdition(deployment.Edition(ed))
		f.showLimitNote()
	}
	return nil
}

func (f *Form) askImage() error {
	f.section("Image")
	cfg := f.cfg()
	path, err := f.Prompter.Input("Image path", "", cfg.ImagePath, required("image path"))
	if err != nil {
		return err
	}
	version, err := f.Prompter.Input("Image version", "", cfg.ImageVersion, required("image version"))
	if err != nil {
		return err
	}
	f.update(func(c *deployment.Config) {
		c.ImagePath = path
		c.ImageVersion = version
	})
	return nil
}

func (f *Form) askRuntimeOptions() error {
	f.section("Container")
	p := f.Prompter
	cfg := f.cfg()
	storage, err := p.Input("Storage path", "Host directory bind mounted at "+deployment.StorageTarget+". Leave blank for none.", cfg.StoragePath, nil)
	if err != nil {
		return err
	}
	restart, err := p.Select("Restart policy", "", []SelectOption{
		{Label: "none", Value: ""},
		{Label: "always", Value: "always"},
		{Label: "unless-stopped", Value: "unless-stopped"},
		{Label: "on-failure", Value: "on-failure"},
	}, cfg.RestartPolicy)
	if err != nil {
		return err
	}
	uid, err := p.Input("Run as user", "UID or UID:GID. Leave blank for the image default.", cfg.UID, nil)
	if err != nil {
		return err
	}
	f.update(func(c *deployment.Config) {
		c.StoragePath = storage
		c.RestartPolicy = restart
		c.UID = uid
	})
	return nil
}

func (f *Form) askCredentials() error {
	f.section("Credentials")
	p := f.Prompter
	cfg := f.cfg()
	method, err := p.Select("Admin password", "", []SelectOption{
		{Label: "Plain password", Value: string(deployment.PasswordPlain)},
		{Label: "Password file", Value: string(deployment.PasswordFile)},
		{Label: "Encrypted password", Value: string(deployment.PasswordEncrypted)},
	}, string(cfg.PasswordMethod))
	if err != nil {
		return err
	}
	var value string
	switch deployment.PasswordMethod(method) {
	case deployment.PasswordFile:
		value, err = p.Input("Password file path", "Path inside the container.", cfg.Password, nil)
	default:
		value, err = p.Secret("Admin password value", "Leave blank to skip the admin user.", cfg.Password)
	}
	if err != nil {
		return err
	}
	cert, err := p.Input("TLS server certificate path", "Leave blank to skip TLS.", cfg.TLSCertPath, nil)
	if err != nil {
		return err
	}
	passphrase := cfg.TLSPassphrasePath
	if cert != "" {
		passphrase, err = p.Input("TLS passphrase file path", "", cfg.TLSPassphrasePath, nil)
		if err != nil {
			return err
		}
	}
	f.update(func(c *deployment.Config) {
		c.PasswordMethod = deployment.PasswordMethod(method)
		c.Password = value
		c.TLSCertPath = cert
		c.TLSPassphrasePath = passphrase
	})
	return nil
}

func (f *Form) askPorts() error {
	f.section("Ports")
	p := f.Prompter
	sel := f.State.Ports()
	action, err := p.Select("Published ports", "Currently: "+describePorts(sel.Sorted()), []SelectOption{
		{Label: "Keep current selection", Value: "keep"},
		{Label: "Recommended set", Value: "recommended"},
		{Label: "Drop plain-text ports", Value: "tls-only"},
		{Label: "By protocol", Value: "groups"},
		{Label: "Pick individually", Value: "custom"},
		{Label: "Publish nothing", Value: "clear"},
	}, "keep")
	if err != nil {
		return err
	}
	switch action {
	case "recommended":
		sel.SelectRecommended()
	case "tls-only":
		sel.SelectTLSOnly()
	case "clear":
		sel.Clear()
	case "groups":
		for _, proto := range ports.Protocols() {
			group := ports.Group(proto)
			ok, err := p.Confirm(sel.GroupAction(group)+" "+proto+"?", describePorts(group), false)
			if err != nil {
				return err
			}
			if ok {
				sel.ToggleGroup(group)
			}
		}
	case "custom":
		opts := make([]SelectOption, 0, len(ports.Catalog))
		var current []string
		for _, port := range ports.Catalog {
			v := strconv.Itoa(port.Number)
			opts = append(opts, SelectOption{Label: fmt.Sprintf("%-5d %s", port.Number, port.Label), Value: v})
			if sel.Has(port.Number) {
				current = append(current, v)
			}
		}
		chosen, err := p.MultiSelect("Ports", "", opts, current)
		if err != nil {
			return err
		}
		sel.Clear()
		for _, v := range chosen {
			if n, err := strconv.Atoi(v); err == nil {
				sel.Add(n)
			}
		}
	}
	return nil
}

func (f *Form) askScaling() error {
	f.section("Scaling")
	p := f.Prompter
	adjust, err := p.Confirm("Adjust scaling parameters?", "", false)
	if err != nil {
		return err
	}
	if adjust {
		for _, param := range edition.Params {
			if err := f.askSlider(param); err != nil {
				return err
			}
		}
	}

	limit := edition.NewPolicy(f.cfg().Edition, nil, nil).MaxSpoolGB()
	current := ""
	if gb := f.State.SpoolGB(); gb > 0 {
		current = deployment.FormatGB(gb)
	}
	spool, err := p.Input("Max spool usage (GB)", fmt.Sprintf("Up to %s GB. Leave blank for the broker default.", deployment.FormatGB(limit)), current, validGB)
	if err != nil {
		return err
	}
	f.State.SetSpoolInput(spool)
	f.showLimitNote()

	text, err := p.Input("Scaling parameters", "Extra --env KEY=VALUE, --ulimit and --shm-size options.", f.State.ScalingText(), nil)
	if err != nil {
		return err
	}
	if text != f.State.ScalingText() {
		f.State.SetScalingText(text)
		f.showLimitNote()
	}
	return nil
}

// brokerDefault is the slider answer that drops the parameter.
const brokerDefault = "default"

func (f *Form) askSlider(param edition.Param) error {
	opts := []SelectOption{{Label: "broker default", Value: brokerDefault}}
	for i, v := range param.Values {
		opts = append(opts, SelectOption{Label: f.State.OptionLabel(param, i), Value: strconv.FormatInt(v, 10)})
	}
	current := brokerDefault
	if idx, ok := f.State.Slider(param.Key); ok {
		current = strconv.FormatInt(param.Values[idx], 10)
	}
	answer, err := f.Prompter.Select(param.Title, "", opts, current)
	if err != nil {
		return err
	}
	if answer == current {
		return nil
	}
	if answer == brokerDefault {
		return f.State.ClearSlider(param.Key)
	}
	n, err := strconv.ParseInt(answer, 10, 64)
	idx := slices.Index(param.Values, n)
	if err != nil || idx < 0 {
		return fmt.Errorf("%s: unknown value %q", param.Title, answer)
	}
	if _, err := f.State.SetSlider(param.Key, idx); err != nil {
		return err
	}
	f.showLimitNote()
	return nil
}

func (f *Form) askTopology() error {
	if !f.cfg().IsHA() {
		f.section("Broker")
		name, err := f.Prompter.Input("Router name", "Also used as hostname and container name. Leave blank to omit.", f.cfg().StandaloneName, nil)
		if err != nil {
			return err
		}
		f.update(func(c *deployment.Config) { c.StandaloneName = name })
		return nil
	}

	f.section("Redundancy group")
	p := f.Prompter
	cfg := f.cfg()
	nodes := cfg.Nodes
	var taken []string
	for _, role := range deployment.Roles() {
		node := nodes.Get(role)
		name, err := p.Input(titleCase(string(role))+" node name", "", node.Name, distinctFrom(taken))
		if err != nil {
			return err
		}
		if name != "" {
			taken = append(taken, name)
		}
		host, err := p.Input(titleCase(string(role))+" node address", "Host or IP the other nodes connect to.", node.Host, nil)
		if err != nil {
			return err
		}
		setNode(&nodes, role, deployment.Node{Name: name, Host: host})
	}

	key := cfg.PSK
	mode, err := p.Select("Pre-shared key", "", []SelectOption{
		{Label: "Key value", Value: string(deployment.PSKDirect)},
		{Label: "Key file", Value: string(deployment.PSKFile)},
	}, string(key.Mode))
	if err != nil {
		return err
	}
	key.Mode = deployment.PSKMode(mode)
	if key.Mode == deployment.PSKFile {
		key.FilePath, err = p.Input("Pre-shared key file path", "Path inside the container.", key.FilePath, nil)
		if err != nil {
			return err
		}
	} else {
		def := "generate"
		if key.Key != "" {
			def = "keep"
		}
		choice, err := p.Select("Key value", "", []SelectOption{
			{Label: "Generate a random key", Value: "generate"},
			{Label: "Enter a key", Value: "enter"},
			{Label: "Keep current key", Value: "keep"},
		}, def)
		if err != nil {
			return err
		}
		switch choice {
		case "generate":
			key.Key, err = psk.Generate(psk.DefaultLength)
		case "enter":
			key.Key, err = p.Secret("Pre-shared key", fmt.Sprintf("%d to %d characters.", psk.MinLength, psk.MaxLength), key.Key)
		}
		if err != nil {
			return err
		}
	}
	f.update(func(c *deployment.Config) {
		c.Nodes = nodes
		c.PSK = key
	})
	return nil
}

func (f *Form) showLimitNote() {
	if f.noted {
		return
	}
	note := f.State.LimitNote()
	if note == "" {
		return
	}
	f.noted = true
	th := theme.ForOutput(f.Out)
	if th.Enabled {
		note = th.Styles.Enterprise.Render(note)
	}
	fmt.Fprintln(f.Out, note)
}

func setNode(nodes *deployment.Nodes, role deployment.Role, node deployment.Node) {
	switch role {
	case deployment.RoleBackup:
		nodes.Backup = node
	case deployment.RoleMonitor:
		nodes.Monitor = node
	default:
		nodes.Primary = node
	}
}

func describePorts(list []int) string {
	if len(list) == 0 {
		return "none"
	}
	return deployment.FormatPorts(list)
}

func containsValue(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func required(name string) func(string) error {
	return func(v string) error {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

func validGB(v string) error {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err != nil {
		return errors.New("enter a number of gigabytes")
	}
	return nil
}

func distinctFrom(taken []string) func(string) error {
	return func(v string) error {
		if containsValue(taken, v) {
			return fmt.Errorf("%q is already used by another node", v)
		}
		return nil
	}
}
