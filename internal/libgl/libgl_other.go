// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build (!linux && !windows) || (linux && !cgo)

package libgl

import "unsafe"

// No fallback here. Context resolvers must answer for every symbol.

func load() {}

func lookup(string) unsafe.Pointer { return nil }
