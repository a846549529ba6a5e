// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glwin

// Headless wraps a windowless native context. It enumerates adapters for
// offscreen rendering and compute but has no surface: no formats, no
// capability envelope, no swapchain.
type Headless struct {
	h *ContextHandle
}

var _ Instance = (*Headless)(nil)

// NewHeadless wraps ctx, taking one ownership share.
func NewHeadless(ctx NativeContext, opts ...HandleOption) *Headless {
	return &Headless{h: NewContextHandle(ctx, opts...)}
}

// Handle returns the underlying context handle.
func (hl *Headless) Handle() *ContextHandle {
	return hl.h
}

// EnumerateAdapters exposes the context as a single adapter. The context
// must be current on the calling thread.
func (hl *Headless) EnumerateAdapters() ([]*Adapter, error) {
	return enumerateAdapters(hl.h)
}

// Release drops the ownership share.
func (hl *Headless) Release() {
	hl.h.Release()
}
