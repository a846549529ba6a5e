// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glwin

import (
	"sync/atomic"
	"testing"
	"unsafe"
)

// Shared in-memory fakes for the package tests.

// Verify at compile time that the fakes satisfy the contracts.
var (
	_ NativeContext = (*fakeContext)(nil)
	_ WindowContext = (*fakeWindow)(nil)
)

// procMarker backs the pointers fake resolvers hand out.
var procMarker byte

// fakeContext implements NativeContext in memory. The zero value is a
// non-current context whose resolver answers every symbol.
type fakeContext struct {
	pf       PixelFormat
	current  bool
	swapErr  error
	releases atomic.Int32
	swaps    atomic.Int32
	asked    []string
	resolve  func(name string) unsafe.Pointer
}

func (f *fakeContext) PixelFormat() PixelFormat { return f.pf }

func (f *fakeContext) GetProcAddress(name string) unsafe.Pointer {
	f.asked = append(f.asked, name)
	if f.resolve != nil {
		return f.resolve(name)
	}
	return unsafe.Pointer(&procMarker)
}

func (f *fakeContext) MakeCurrent() error {
	f.current = true
	return nil
}

func (f *fakeContext) IsCurrent() bool { return f.current }

func (f *fakeContext) SwapBuffers() error {
	f.swaps.Add(1)
	return f.swapErr
}

func (f *fakeContext) Release() { f.releases.Add(1) }

// fakeWindow is a fakeContext with a resizable window behind it.
type fakeWindow struct {
	fakeContext
	width, height float64
	scale         float64
}

func (f *fakeWindow) InnerSize() (width, height float64) { return f.width, f.height }

func (f *fakeWindow) ScaleFactor() float64 { return f.scale }

// newFakeWindow returns a current, double-buffered, linear 24/8 window of
// 800x600 logical units at scale 1.
func newFakeWindow() *fakeWindow {
	return &fakeWindow{
		fakeContext: fakeContext{
			pf: PixelFormat{
				ColorBits:    24,
				AlphaBits:    8,
				DepthBits:    24,
				StencilBits:  8,
				DoubleBuffer: true,
			},
			current: true,
		},
		width:  800,
		height: 600,
		scale:  1,
	}
}

// noSystemGL disables the system-library fallback for one test so results
// do not depend on the machine's GL installation.
func noSystemGL(t *testing.T) {
	t.Helper()
	old := systemLookup
	systemLookup = func(string) unsafe.Pointer { return nil }
	t.Cleanup(func() { systemLookup = old })
}
