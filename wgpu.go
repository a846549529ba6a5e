// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glwin

import types "github.com/gogpu/gputypes"

// WGPUFormat maps a glwin Format to the gogpu/wgpu texture format a HAL
// built on wgpu expects. Formats a window surface never presents map to
// TextureFormatUndefined.
func WGPUFormat(f Format) types.TextureFormat {
	switch f {
	case FormatRGBA8Unorm:
		return types.TextureFormatRGBA8Unorm
	case FormatRGBA8UnormSrgb:
		return types.TextureFormatRGBA8UnormSrgb
	case FormatBGRA8Unorm:
		return types.TextureFormatBGRA8Unorm
	case FormatBGRA8UnormSrgb:
		return types.TextureFormatBGRA8UnormSrgb
	case FormatDepth24PlusStencil8:
		return types.TextureFormatDepth24PlusStencil8
	default:
		return types.TextureFormatUndefined
	}
}

// FormatFromWGPU is the inverse of WGPUFormat. wgpu formats outside the
// presentable set map to FormatUndefined.
func FormatFromWGPU(tf types.TextureFormat) Format {
	switch tf {
	case types.TextureFormatRGBA8Unorm:
		return FormatRGBA8Unorm
	case types.TextureFormatRGBA8UnormSrgb:
		return FormatRGBA8UnormSrgb
	case types.TextureFormatBGRA8Unorm:
		return FormatBGRA8Unorm
	case types.TextureFormatBGRA8UnormSrgb:
		return FormatBGRA8UnormSrgb
	case types.TextureFormatDepth24PlusStencil8:
		return FormatDepth24PlusStencil8
	default:
		return FormatUndefined
	}
}

// WGPUExtent maps an Extent2D to the wgpu 3D extent used for texture and
// surface configuration, with a single array layer.
func WGPUExtent(e Extent2D) types.Extent3D {
	return types.Extent3D{
		Width:              e.Width,
		Height:             e.Height,
		DepthOrArrayLayers: 1,
	}
}
