// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build linux && cgo

package libgl

// #cgo LDFLAGS: -ldl
// #include <dlfcn.h>
// #include <stdlib.h>
import "C"

import "unsafe"

// libNames are probed in order: desktop GL first, then the GLES and EGL
// sonames mobile-class drivers ship.
var libNames = [...]string{
	"libGL.so.1",
	"libGL.so",
	"libGLESv2.so.2",
	"libEGL.so.1",
}

// handles holds every library that opened. Written only during load.
var handles []unsafe.Pointer

func load() {
	for _, name := range libNames {
		cname := C.CString(name)
		h := C.dlopen(cname, C.RTLD_LAZY|C.RTLD_GLOBAL)
		C.free(unsafe.Pointer(cname))
		if h != nil {
			handles = append(handles, h)
		}
	}
}

func lookup(name string) unsafe.Pointer {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	for _, h := range handles {
		if p := C.dlsym(h, cname); p != nil {
			return p
		}
	}
	return nil
}
