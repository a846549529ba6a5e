// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build linux

package glwin

import "golang.org/x/sys/unix"

// currentThreadID returns the kernel id of the calling OS thread. Callers
// that rely on it pin the goroutine with runtime.LockOSThread, as GL's own
// currency rules already demand.
func currentThreadID() int64 {
	return int64(unix.Gettid())
}
