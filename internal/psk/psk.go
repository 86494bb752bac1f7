// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package psk generates redundancy group pre-shared keys.
package psk

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	MinLength     = 44
	MaxLength     = 344
	DefaultLength = 60
)

const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// Generate returns a random key of length characters, clamped to
// [MinLength, MaxLength].
func Generate(length int) (string, error) {
	length = max(MinLength, min(MaxLength, length))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", fmt.Errorf("generate psk: %w", err)
		}
		out[i] = charset[n.Int64()]
	}
	return string(out), nil
}

// Random returns a key of random length within range.
func Random() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(MaxLength-MinLength+1))
	if err != nil {
		return "", fmt.Errorf("pick psk length: %w", err)
	}
	return Generate(MinLength + int(n.Int64()))
}
