// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build tools

// Package tools pins the developer tools run from the Makefile.
package tools

import (
	_ "github.com/google/addlicense"
	_ "github.com/tailscale/depaware"
)
