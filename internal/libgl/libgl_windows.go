// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package libgl

import (
	"unsafe"

	syscall "golang.org/x/sys/windows"
)

// opengl32 exports every core GL 1.1 symbol on Windows. Extension symbols
// go through wglGetProcAddress, which is the live context's job, not ours.
var opengl32 = syscall.DLL{}

func load() {
	handle, err := syscall.LoadLibraryEx("opengl32.dll", 0, syscall.LOAD_LIBRARY_SEARCH_SYSTEM32)
	if err != nil {
		return
	}
	opengl32.Handle = handle
	opengl32.Name = "opengl32.dll"
}

func lookup(name string) unsafe.Pointer {
	if opengl32.Handle == 0 {
		return nil
	}
	proc, err := opengl32.FindProc(name)
	if err != nil {
		return nil
	}
	return unsafe.Pointer(proc.Addr())
}
