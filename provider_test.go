// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glwin

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestProviderSurfaceFormat(t *testing.T) {
	tests := []struct {
		name string
		srgb bool
		want gputypes.TextureFormat
	}{
		// sRGB encoding lives on the framebuffer in GL, so both report
		// the same base format.
		{"linear", false, gputypes.TextureFormatRGBA8Unorm},
		{"srgb", true, gputypes.TextureFormatRGBA8Unorm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			win := newFakeWindow()
			win.pf.SRGB = tt.srgb
			s := NewSurface(win)
			defer s.Release()

			if got := NewProvider(s).SurfaceFormat(); got != tt.want {
				t.Errorf("SurfaceFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProviderSurfaceFormatUndefined(t *testing.T) {
	win := newFakeWindow()
	win.pf.ColorBits = 16
	win.pf.AlphaBits = 0
	s := NewSurface(win)
	defer s.Release()

	if got := NewProvider(s).SurfaceFormat(); got != gputypes.TextureFormatUndefined {
		t.Errorf("SurfaceFormat() = %v for 16-bit framebuffer, want undefined", got)
	}
}

func TestProviderSurfaceFormatLost(t *testing.T) {
	s := NewSurface(newFakeWindow())
	defer s.Release()
	s.Handle().MarkLost()

	if got := NewProvider(s).SurfaceFormat(); got != gputypes.TextureFormatUndefined {
		t.Errorf("SurfaceFormat() = %v after loss, want undefined", got)
	}
}

func TestProviderOpensNoDevice(t *testing.T) {
	s := NewSurface(newFakeWindow())
	defer s.Release()
	p := NewProvider(s)

	if p.Device() != nil {
		t.Error("Device() != nil, want nil")
	}
	if p.Queue() != nil {
		t.Error("Queue() != nil, want nil")
	}
	if p.Adapter() != nil {
		t.Error("Adapter() != nil, want nil")
	}
}
