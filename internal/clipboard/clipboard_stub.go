// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux && !clipboard_x11

package clipboard

// WriteText places text on the system clipboard. Without the clipboard_x11
// tag only the WSL bridge is available.
func WriteText(text string) error {
	if isWSL() {
		return writeWSL(text)
	}
	return ErrUnavailable
}
