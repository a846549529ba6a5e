// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package libgl resolves GL symbols in the system's GL libraries.
//
// It backs the fallback path of adapter resolvers: some platforms'
// GetProcAddress only answers for extension symbols (EGL before 1.5), so
// core entry points have to come from the library exports directly. The
// libraries are loaded once and stay loaded; the dynamic loader caches
// them for the process lifetime anyway.
package libgl

import (
	"sync"
	"unsafe"
)

var loadOnce sync.Once

// Lookup resolves name in the system GL libraries, returning nil when the
// libraries are missing or none of them exports the symbol. The first
// call loads the libraries; a failed load is not retried.
//
// Lookup is safe for concurrent use after the loading call returns, and
// concurrent first calls serialize on the load.
func Lookup(name string) unsafe.Pointer {
	loadOnce.Do(load)
	return lookup(name)
}
