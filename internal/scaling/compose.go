// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scaling

import "strings"

// Ulimit is a `--ulimit NAME=VALUE` option; Value is `soft:hard` or a bare
// number.
type Ulimit struct {
	Name  string
	Value string
}

// ComposeView sorts the scaling items into the fields a compose service
// understands. Anything else lands in Unmapped, verbatim.
type ComposeView struct {
	Env      []string
	Ulimits  []Ulimit
	ShmSize  string
	Unmapped []string
}

func (p *Params) Compose() ComposeView {
	var view ComposeView
	for _, it := range p.items {
		switch it.Kind {
		case KindEnv:
			if it.HasValue {
				view.Env = append(view.Env, it.Key+"="+it.Value)
			} else {
				view.Env = append(view.Env, it.Key)
			}
		case KindUlimit:
			name, value, ok := strings.Cut(it.Value, "=")
			if !ok || name == "" {
				view.Unmapped = append(view.Unmapped, it.String())
				continue
			}
			view.Ulimits = append(view.Ulimits, Ulimit{Name: name, Value: value})
		case KindShmSize:
			view.ShmSize = it.Value
		default:
			view.Unmapped = append(view.Unmapped, it.Value)
		}
	}
	return view
}
