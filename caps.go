// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glwin

import (
	"fmt"
	"strings"
)

// Extent2D is a size in physical pixels.
type Extent2D struct {
	Width  uint32
	Height uint32
}

func (e Extent2D) String() string {
	return fmt.Sprintf("%dx%d", e.Width, e.Height)
}

// ExtentRange is a half-open extent interval: Min is allowed, Max is not.
// Both dimensions are constrained independently.
type ExtentRange struct {
	Min Extent2D
	Max Extent2D
}

// Contains reports whether e lies in the range.
func (r ExtentRange) Contains(e Extent2D) bool {
	return e.Width >= r.Min.Width && e.Width < r.Max.Width &&
		e.Height >= r.Min.Height && e.Height < r.Max.Height
}

// ImageCountRange is a half-open image count interval [Min, Max).
type ImageCountRange struct {
	Min uint32
	Max uint32
}

// Contains reports whether n lies in the range.
func (r ImageCountRange) Contains(n uint32) bool {
	return n >= r.Min && n < r.Max
}

// Clamp returns n forced into the range.
func (r ImageCountRange) Clamp(n uint32) uint32 {
	if n < r.Min {
		return r.Min
	}
	if n >= r.Max {
		return r.Max - 1
	}
	return n
}

// TextureUsage is a bitset of allowed swapchain image usages. Bit values
// match WebGPU.
type TextureUsage uint32

const (
	TextureUsageCopySrc          TextureUsage = 0x01
	TextureUsageCopyDst          TextureUsage = 0x02
	TextureUsageTextureBinding   TextureUsage = 0x04
	TextureUsageStorageBinding   TextureUsage = 0x08
	TextureUsageRenderAttachment TextureUsage = 0x10
)

// String returns the set bits joined with "|", or "none".
func (u TextureUsage) String() string {
	if u == 0 {
		return "none"
	}
	names := []struct {
		bit  TextureUsage
		name string
	}{
		{TextureUsageCopySrc, "copy-src"},
		{TextureUsageCopyDst, "copy-dst"},
		{TextureUsageTextureBinding, "texture-binding"},
		{TextureUsageStorageBinding, "storage-binding"},
		{TextureUsageRenderAttachment, "render-attachment"},
	}
	var parts []string
	for _, n := range names {
		if u&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// PresentMode selects how presentation is paced. GL window surfaces only
// honor FIFO (vsync-locked swap); the other modes exist so capability
// answers share a vocabulary with Vulkan-style surfaces.
type PresentMode uint8

const (
	PresentModeFifo PresentMode = iota
	PresentModeFifoRelaxed
	PresentModeImmediate
	PresentModeMailbox
)

func (m PresentMode) String() string {
	switch m {
	case PresentModeFifo:
		return "fifo"
	case PresentModeFifoRelaxed:
		return "fifo-relaxed"
	case PresentModeImmediate:
		return "immediate"
	case PresentModeMailbox:
		return "mailbox"
	default:
		return "unknown"
	}
}

// CompositeAlphaMode selects how the compositor treats the surface's alpha
// channel. GL window surfaces are always opaque.
type CompositeAlphaMode uint8

const (
	CompositeAlphaOpaque CompositeAlphaMode = iota
	CompositeAlphaPreMultiplied
	CompositeAlphaPostMultiplied
	CompositeAlphaInherit
)

func (m CompositeAlphaMode) String() string {
	switch m {
	case CompositeAlphaOpaque:
		return "opaque"
	case CompositeAlphaPreMultiplied:
		return "premultiplied"
	case CompositeAlphaPostMultiplied:
		return "postmultiplied"
	case CompositeAlphaInherit:
		return "inherit"
	default:
		return "unknown"
	}
}

// SurfaceCapabilities is the envelope a surface reports for swapchain
// construction. Envelopes are computed fresh on every query; callers must
// not assume values remain valid across window resizes.
type SurfaceCapabilities struct {
	// ImageCount is the allowed swapchain length. Double-buffered
	// windows report [2,3), single-buffered [1,2): the windowing system
	// owns the real buffers, so the count is not negotiable.
	ImageCount ImageCountRange

	// CurrentExtent is the window's client area in physical pixels at
	// query time.
	CurrentExtent Extent2D

	// Extents is [CurrentExtent, CurrentExtent+1x1): images cannot be
	// decoupled from the window size beyond a one-pixel resize race.
	Extents ExtentRange

	// MaxImageLayers is always 1. Window surfaces are not layered.
	MaxImageLayers uint32

	// Usage is render-attachment plus copy-src: the default framebuffer
	// can be drawn to and read back, nothing else.
	Usage TextureUsage

	// CompositeAlpha is always opaque composition.
	CompositeAlpha CompositeAlphaMode
}
