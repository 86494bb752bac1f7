// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shellwrap lays out an argument list as a multi-line shell command
// using backslash continuations.
package shellwrap

import "strings"

// WrapAt is the widest a continuation line may grow before flushing.
const WrapAt = 95

const continuation = " \\\n  "

// forcedBreaks are argument prefixes that always sit on a line of their own.
var forcedBreaks = []string{
	"--name=",
	"--env nodetype=monitoring",
	"--env redundancy_activestandbyrole=primary",
	"--env redundancy_activestandbyrole=backup",
}

func forcesBreak(arg string) bool {
	for _, prefix := range forcedBreaks {
		if strings.HasPrefix(arg, prefix) {
			return true
		}
	}
	return false
}

// Wrap fills lines greedily up to WrapAt and appends image as the final
// continuation line. With no args the result is image alone.
func Wrap(args []string, image string) string {
	var out strings.Builder
	line := ""
	flush := func() {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out.WriteString(trimmed)
			out.WriteString(continuation)
		}
		line = ""
	}
	for _, arg := range args {
		if forcesBreak(arg) {
			flush()
			out.WriteString(arg)
			out.WriteString(continuation)
			continue
		}
		// line carries a trailing space, so this is the width of line+arg.
		if line != "" && len(line)+len(arg) > WrapAt {
			flush()
		}
		line += arg + " "
	}
	out.WriteString(strings.TrimSpace(line))

	body := strings.TrimRight(out.String(), " \n")
	body = strings.TrimSuffix(body, "\\")
	body = strings.TrimRight(body, " \n")
	if body == "" {
		return image
	}
	return body + continuation + image
}
