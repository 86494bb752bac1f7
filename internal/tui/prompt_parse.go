// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"errors"
	"strconv"
	"strings"
)

var (
	errInvalidSelection = errors.New("invalid selection")
	errSelectionRange   = errors.New("selection out of range")
)

// parseYesNo reads a y/n answer. A blank answer takes fallback.
func parseYesNo(input string, fallback bool) (bool, bool) {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "":
		return fallback, true
	case "n", "no", "false":
		return false, true
	case "y", "yes", "true":
		return true, true
	default:
		return false, false
	}
}

// parseSelectionIndices turns "1,3-4" or "all" into zero-based indices in
// the order given. Duplicates are dropped.
func parseSelectionIndices(input string, max int) ([]int, error) {
	if max <= 0 {
		return nil, errors.New("no options available")
	}
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, nil
	}
	if strings.EqualFold(trimmed, "all") {
		all := make([]int, max)
		for i := range all {
			all[i] = i
		}
		return all, nil
	}
	seen := map[int]bool{}
	var indices []int
	for part := range strings.SplitSeq(trimmed, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi, err := selectionRange(part)
		if err != nil {
			return nil, err
		}
		if lo < 1 || hi > max {
			return nil, errSelectionRange
		}
		for value := lo; value <= hi; value++ {
			if seen[value-1] {
				continue
			}
			seen[value-1] = true
			indices = append(indices, value-1)
		}
	}
	return indices, nil
}

func selectionRange(part string) (int, int, error) {
	first, last, isRange := strings.Cut(part, "-")
	lo, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return 0, 0, errInvalidSelection
	}
	if !isRange {
		return lo, lo, nil
	}
	hi, err := strconv.Atoi(strings.TrimSpace(last))
	if err != nil || hi < lo {
		return 0, 0, errInvalidSelection
	}
	return lo, hi, nil
}
