// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glwin

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// Provider adapts a Surface to gpucontext.DeviceProvider, the handle
// renderers across the gogpu ecosystem take their GPU access from. It
// lets a host hand the negotiated surface format to a renderer before
// any device exists.
//
// Device, Queue and Adapter return nil: glwin negotiates surfaces, it
// does not open devices. A host that later opens a device exposes its own
// provider and keeps SurfaceFormat consistent with this one.
type Provider struct {
	s *Surface
}

// Ensure Provider implements the gpucontext contract.
var _ gpucontext.DeviceProvider = (*Provider)(nil)

// NewProvider wraps s. The provider borrows the surface; releasing the
// surface invalidates the provider's answers.
func NewProvider(s *Surface) *Provider {
	return &Provider{s: s}
}

// Device returns nil; no device is opened by this layer.
func (p *Provider) Device() gpucontext.Device { return nil }

// Queue returns nil; no device is opened by this layer.
func (p *Provider) Queue() gpucontext.Queue { return nil }

// Adapter returns nil; adapter access goes through Surface.EnumerateAdapters.
func (p *Provider) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns the surface's preferred format in gputypes
// vocabulary, TextureFormatUndefined when the surface negotiates no
// format or its context is lost.
//
// gputypes carries no sRGB variants, so sRGB formats report their UNorm
// base. GL applies sRGB encoding at the framebuffer rather than in the
// texel format, which makes the base format the accurate answer here.
func (p *Provider) SurfaceFormat() gputypes.TextureFormat {
	formats, err := p.s.Formats()
	if err != nil || len(formats) == 0 {
		return gputypes.TextureFormatUndefined
	}
	return gpuTypesFormat(formats[0])
}

// gpuTypesFormat maps a glwin Format into gputypes vocabulary. Formats
// with no counterpart map to TextureFormatUndefined.
func gpuTypesFormat(f Format) gputypes.TextureFormat {
	switch f {
	case FormatRGBA8Unorm, FormatRGBA8UnormSrgb:
		return gputypes.TextureFormatRGBA8Unorm
	case FormatBGRA8Unorm, FormatBGRA8UnormSrgb:
		return gputypes.TextureFormatBGRA8Unorm
	case FormatDepth24PlusStencil8:
		return gputypes.TextureFormatDepth24PlusStencil8
	default:
		return gputypes.TextureFormatUndefined
	}
}
