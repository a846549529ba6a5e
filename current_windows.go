// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package glwin

import "golang.org/x/sys/windows"

// currentThreadID returns the id of the calling OS thread.
func currentThreadID() int64 {
	return int64(windows.GetCurrentThreadId())
}
