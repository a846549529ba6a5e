// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glwin

import "unsafe"

// PixelFormat describes the framebuffer configuration of a native GL
// context as reported by the windowing system. Bit counts follow the
// convention of EGL and WGL config queries: ColorBits counts the red,
// green and blue channels together and excludes alpha.
type PixelFormat struct {
	// ColorBits is the combined size of the red, green and blue
	// channels in bits (24 for an 8-bit-per-channel framebuffer).
	ColorBits int

	// AlphaBits is the size of the alpha channel in bits.
	AlphaBits int

	// DepthBits is the size of the depth buffer in bits.
	DepthBits int

	// StencilBits is the size of the stencil buffer in bits.
	StencilBits int

	// Samples is the multisample count. Both 0 and 1 mean no
	// multisampling.
	Samples int

	// DoubleBuffer reports whether the framebuffer is double-buffered.
	DoubleBuffer bool

	// SRGB reports whether the framebuffer performs sRGB encoding on
	// write. In GL this is a property of the framebuffer, not of a
	// texture format.
	SRGB bool
}

// SampleCount returns the effective multisample count, normalizing the
// "no multisampling" encodings (0 and 1) to 1.
func (pf PixelFormat) SampleCount() int {
	if pf.Samples < 1 {
		return 1
	}
	return pf.Samples
}

// NativeContext is the contract a windowing library fulfills to let glwin
// negotiate over one of its GL contexts. Implementations wrap whatever the
// platform provides (EGL, WGL, CGL, GLX, or a library such as GLFW that
// abstracts them).
//
// Currency is cooperative: glwin never makes a context current on its own.
// The embedder establishes currency before calling operations that need it
// and keeps the context current for their duration. MakeCurrent is part of
// the contract so that callers holding a [ContextHandle] can reach it, not
// so that glwin can call it.
type NativeContext interface {
	// PixelFormat reports the context's framebuffer configuration.
	PixelFormat() PixelFormat

	// GetProcAddress resolves a GL or EGL symbol by name, returning nil
	// when the symbol is unknown. Some platforms only resolve extension
	// symbols here; glwin compensates with a system-library fallback
	// when building adapter resolvers.
	GetProcAddress(name string) unsafe.Pointer

	// MakeCurrent binds the context to the calling OS thread.
	MakeCurrent() error

	// IsCurrent reports whether the context is current on the calling
	// OS thread. Must be cheap; it backs the optional strict currency
	// checks.
	IsCurrent() bool

	// SwapBuffers presents the back buffer. The context must be current.
	SwapBuffers() error

	// Release destroys the native context. Called exactly once by the
	// last [ContextHandle] release.
	Release()
}

// WindowContext is a NativeContext backed by a visible window. It adds the
// size queries surface negotiation needs. InnerSize reports logical units;
// glwin converts to physical pixels with the scale factor at query time.
type WindowContext interface {
	NativeContext

	// InnerSize reports the window's client area in logical units.
	InnerSize() (width, height float64)

	// ScaleFactor reports the window's current logical-to-physical
	// scale. 1.0 on displays without DPI scaling.
	ScaleFactor() float64
}
