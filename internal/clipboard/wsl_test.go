// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clipboard

import (
	"errors"
	"runtime"
	"testing"
)

func TestIsWSLFromEnv(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux only")
	}
	t.Setenv("WSL_DISTRO_NAME", "Ubuntu")
	if !isWSL() {
		t.Fatalf("expected WSL detection from WSL_DISTRO_NAME")
	}
}

func TestWriteWSLWithoutClip(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	err := writeWSL("docker run -d")
	if err == nil {
		t.Skip("clip.exe is reachable on this host")
	}
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
