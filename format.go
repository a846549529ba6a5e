// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glwin

import "fmt"

// Format identifies a texture format a surface can present. The set is
// closed: GL window framebuffers only ever decompose into the formats
// listed here, and negotiation answers come exclusively from this set.
//
// Names follow WebGPU conventions. The Srgb variants denote sRGB encoding
// on write, which GL models as a framebuffer property rather than a
// distinct texel layout.
type Format uint8

const (
	// FormatUndefined is the zero Format. It stands for "no format",
	// for example the absence of a depth/stencil attachment.
	FormatUndefined Format = iota

	FormatRGBA8Unorm
	FormatRGBA8UnormSrgb
	FormatBGRA8Unorm
	FormatBGRA8UnormSrgb

	FormatDepth16Unorm
	FormatDepth24PlusStencil8
	FormatDepth32Float
	FormatStencil8
)

// FormatBits is the per-aspect bit decomposition of a Format. Color counts
// the red, green and blue channels together and excludes alpha, matching
// the PixelFormat convention.
type FormatBits struct {
	Color   int
	Alpha   int
	Depth   int
	Stencil int
}

// Bits returns the bit decomposition of f. FormatUndefined decomposes to
// all zeros.
func (f Format) Bits() FormatBits {
	switch f {
	case FormatRGBA8Unorm, FormatRGBA8UnormSrgb,
		FormatBGRA8Unorm, FormatBGRA8UnormSrgb:
		return FormatBits{Color: 24, Alpha: 8}
	case FormatDepth16Unorm:
		return FormatBits{Depth: 16}
	case FormatDepth24PlusStencil8:
		return FormatBits{Depth: 24, Stencil: 8}
	case FormatDepth32Float:
		return FormatBits{Depth: 32}
	case FormatStencil8:
		return FormatBits{Stencil: 8}
	default:
		return FormatBits{}
	}
}

// Srgb reports whether f carries sRGB encoding on write.
func (f Format) Srgb() bool {
	return f == FormatRGBA8UnormSrgb || f == FormatBGRA8UnormSrgb
}

// IsColor reports whether f is a color format.
func (f Format) IsColor() bool {
	b := f.Bits()
	return b.Color > 0
}

// String returns the WebGPU-style name of the format.
func (f Format) String() string {
	switch f {
	case FormatRGBA8Unorm:
		return "rgba8unorm"
	case FormatRGBA8UnormSrgb:
		return "rgba8unorm-srgb"
	case FormatBGRA8Unorm:
		return "bgra8unorm"
	case FormatBGRA8UnormSrgb:
		return "bgra8unorm-srgb"
	case FormatDepth16Unorm:
		return "depth16unorm"
	case FormatDepth24PlusStencil8:
		return "depth24plus-stencil8"
	case FormatDepth32Float:
		return "depth32float"
	case FormatStencil8:
		return "stencil8"
	default:
		return "undefined"
	}
}

// ParseFormat parses a WebGPU-style format name as produced by String.
func ParseFormat(s string) (Format, error) {
	for f := FormatUndefined; f <= FormatStencil8; f++ {
		if f.String() == s {
			return f, nil
		}
	}
	return FormatUndefined, fmt.Errorf("glwin: unknown format %q", s)
}

// SurfaceFormats maps a native pixel format to the presentable formats it
// supports, in preference order (RGBA before BGRA). The mapping is exact:
// only 8-bit-per-channel RGBA framebuffers are presentable, split by sRGB
// encoding. Every other configuration yields nil, which is a valid answer
// and not an error.
func SurfaceFormats(pf PixelFormat) []Format {
	switch {
	case pf.ColorBits == 24 && pf.AlphaBits == 8 && pf.SRGB:
		return []Format{FormatRGBA8UnormSrgb, FormatBGRA8UnormSrgb}
	case pf.ColorBits == 24 && pf.AlphaBits == 8:
		return []Format{FormatRGBA8Unorm, FormatBGRA8Unorm}
	default:
		return nil
	}
}

// PreferredFormat returns the first entry of SurfaceFormats(pf), or
// FormatUndefined when the pixel format supports no presentable format.
func PreferredFormat(pf PixelFormat) Format {
	if fs := SurfaceFormats(pf); len(fs) > 0 {
		return fs[0]
	}
	return FormatUndefined
}
