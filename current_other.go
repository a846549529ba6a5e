// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !linux && !windows

package glwin

// currentThreadID reports 0 where thread identity has no portable query.
// Strict currency checks then rely on the context's IsCurrent alone.
func currentThreadID() int64 {
	return 0
}
