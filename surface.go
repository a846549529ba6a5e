// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glwin

import (
	"log/slog"
	"math"
)

// Surface is a window-backed presentation target. It owns one share of
// the underlying context and answers the negotiation queries a renderer
// needs before building a swapchain: formats, capability envelope, and
// present modes.
//
// Every query reads the live window state. Nothing is cached, so answers
// change when the window is resized or moved across displays, and callers
// re-query rather than hold on to old envelopes.
type Surface struct {
	h   *ContextHandle
	win WindowContext
}

// Compile-time check: surfaces enumerate adapters.
var _ Instance = (*Surface)(nil)

// NewSurface wraps a window-backed context in a surface. The surface
// holds one ownership share; release it with Release when done. Options
// configure the underlying handle.
func NewSurface(win WindowContext, opts ...HandleOption) *Surface {
	return &Surface{h: NewContextHandle(win, opts...), win: win}
}

// Handle returns the surface's context handle. Embedders reach it to
// call MarkCurrent, MarkLost, or to clone shares of their own.
func (s *Surface) Handle() *ContextHandle {
	return s.h
}

// physicalExtent converts the window's logical size to physical pixels
// with the scale factor the window reports right now.
func physicalExtent(win WindowContext) Extent2D {
	w, h := win.InnerSize()
	scale := win.ScaleFactor()
	return Extent2D{
		Width:  uint32(math.Round(w * scale)),
		Height: uint32(math.Round(h * scale)),
	}
}

// Extent returns the window's client area in physical pixels, queried
// fresh from the window.
func (s *Surface) Extent() (Extent2D, error) {
	if _, err := s.h.Context(); err != nil {
		return Extent2D{}, err
	}
	return physicalExtent(s.win), nil
}

// Samples reports the framebuffer's multisample count.
func (s *Surface) Samples() (int, error) {
	ctx, err := s.h.Context()
	if err != nil {
		return 0, err
	}
	return ctx.PixelFormat().SampleCount(), nil
}

// Formats returns the formats this surface can present, in preference
// order. A nil slice with a nil error means the window's pixel format
// supports no presentable format at all.
func (s *Surface) Formats() ([]Format, error) {
	ctx, err := s.h.Context()
	if err != nil {
		return nil, err
	}
	fs := SurfaceFormats(ctx.PixelFormat())
	Logger().Debug("surface formats negotiated",
		slog.String("context", s.h.s.label),
		slog.Int("count", len(fs)))
	return fs, nil
}

// Capabilities computes the surface's capability envelope. The envelope
// is built fresh on every call from the window's current size and the
// context's pixel format.
func (s *Surface) Capabilities() (SurfaceCapabilities, error) {
	ctx, err := s.h.Context()
	if err != nil {
		return SurfaceCapabilities{}, err
	}
	pf := ctx.PixelFormat()
	extent := physicalExtent(s.win)

	// The windowing system owns the real buffers: two of them under
	// double buffering, one otherwise. No other count is available.
	images := ImageCountRange{Min: 1, Max: 2}
	if pf.DoubleBuffer {
		images = ImageCountRange{Min: 2, Max: 3}
	}

	caps := SurfaceCapabilities{
		ImageCount:    images,
		CurrentExtent: extent,
		Extents: ExtentRange{
			Min: extent,
			Max: Extent2D{Width: extent.Width + 1, Height: extent.Height + 1},
		},
		MaxImageLayers: 1,
		Usage:          TextureUsageRenderAttachment | TextureUsageCopySrc,
		CompositeAlpha: CompositeAlphaOpaque,
	}
	Logger().Debug("surface capabilities",
		slog.String("context", s.h.s.label),
		slog.String("extent", extent.String()),
		slog.Uint64("minImages", uint64(images.Min)))
	return caps, nil
}

// PresentModes returns the present modes the surface honors. GL windows
// swap in FIFO order; nothing else is available.
func (s *Surface) PresentModes() ([]PresentMode, error) {
	if _, err := s.h.Context(); err != nil {
		return nil, err
	}
	return []PresentMode{PresentModeFifo}, nil
}

// SupportsAdapter reports whether a can present to this surface. The
// question matters for Vulkan-style surfaces where support varies per
// adapter and queue family; adapters enumerated from a GL context family
// always support its surfaces.
func (s *Surface) SupportsAdapter(a *Adapter) bool {
	return a != nil
}

// Compatibility bundles Capabilities, Formats and PresentModes for one
// adapter. GL window surfaces answer the same for every adapter they
// enumerate, so a only gates the call, it does not change the answer.
func (s *Surface) Compatibility(a *Adapter) (SurfaceCapabilities, []Format, []PresentMode, error) {
	caps, err := s.Capabilities()
	if err != nil {
		return SurfaceCapabilities{}, nil, nil, err
	}
	formats, err := s.Formats()
	if err != nil {
		return SurfaceCapabilities{}, nil, nil, err
	}
	modes, err := s.PresentModes()
	if err != nil {
		return SurfaceCapabilities{}, nil, nil, err
	}
	return caps, formats, modes, nil
}

// EnumerateAdapters exposes the context as a single adapter. The context
// must be current on the calling thread.
func (s *Surface) EnumerateAdapters() ([]*Adapter, error) {
	return enumerateAdapters(s.h)
}

// Release drops the surface's ownership share. The surface must not be
// used afterwards; swapchains and adapters created from it keep their own
// shares and remain valid.
func (s *Surface) Release() {
	s.h.Release()
}
