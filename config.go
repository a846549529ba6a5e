// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glwin

// ContextConfig is a request for a native context configuration, handed to
// the windowing library before it creates the context. The windowing
// system treats it as a lower bound and may round up, so the context's
// actual PixelFormat is authoritative afterwards.
//
// ContextConfig is a value; the With methods return modified copies and
// chain:
//
//	cfg := glwin.DefaultContextConfig().
//		WithDepthBits(24).
//		WithStencilBits(8).
//		WithSRGB(true)
type ContextConfig struct {
	ColorBits    int
	AlphaBits    int
	DepthBits    int
	StencilBits  int
	Samples      int
	SRGB         bool
	DoubleBuffer bool
	VSync        bool
}

// DefaultContextConfig returns the baseline request: double-buffered,
// vsync on, no color depth constraints.
func DefaultContextConfig() ContextConfig {
	return ContextConfig{
		DoubleBuffer: true,
		VSync:        true,
	}
}

// WithColorBits sets the combined RGB channel size in bits.
func (c ContextConfig) WithColorBits(n int) ContextConfig {
	c.ColorBits = n
	return c
}

// WithAlphaBits sets the alpha channel size in bits.
func (c ContextConfig) WithAlphaBits(n int) ContextConfig {
	c.AlphaBits = n
	return c
}

// WithDepthBits sets the depth buffer size in bits.
func (c ContextConfig) WithDepthBits(n int) ContextConfig {
	c.DepthBits = n
	return c
}

// WithStencilBits sets the stencil buffer size in bits.
func (c ContextConfig) WithStencilBits(n int) ContextConfig {
	c.StencilBits = n
	return c
}

// WithSamples sets the requested multisample count.
func (c ContextConfig) WithSamples(n int) ContextConfig {
	c.Samples = n
	return c
}

// WithSRGB requests an sRGB-encoding framebuffer.
func (c ContextConfig) WithSRGB(srgb bool) ContextConfig {
	c.SRGB = srgb
	return c
}

// WithDoubleBuffer requests double buffering.
func (c ContextConfig) WithDoubleBuffer(db bool) ContextConfig {
	c.DoubleBuffer = db
	return c
}

// WithVSync requests vsync-locked buffer swaps. GL surfaces present in
// FIFO order either way; disabling vsync only affects tearing.
func (c ContextConfig) WithVSync(vsync bool) ContextConfig {
	c.VSync = vsync
	return c
}

// PixelFormat returns the framebuffer configuration the request describes,
// for comparing a request against what a context actually provides.
func (c ContextConfig) PixelFormat() PixelFormat {
	return PixelFormat{
		ColorBits:    c.ColorBits,
		AlphaBits:    c.AlphaBits,
		DepthBits:    c.DepthBits,
		StencilBits:  c.StencilBits,
		Samples:      c.Samples,
		DoubleBuffer: c.DoubleBuffer,
		SRGB:         c.SRGB,
	}
}

// ConfigureContext fills cfg with the framebuffer bits needed to present
// color and, optionally, attach depthStencil. Pass FormatUndefined for
// depthStencil to request no depth or stencil buffer. The function is
// total: formats decompose through [Format.Bits], and unknown aspects
// contribute zero bits.
//
// A context created from the result and then described again offers the
// requested color format:
//
//	cfg := glwin.ConfigureContext(glwin.DefaultContextConfig(),
//		glwin.FormatBGRA8UnormSrgb, glwin.FormatDepth24PlusStencil8)
//	// glwin.SurfaceFormats(cfg.PixelFormat()) contains FormatBGRA8UnormSrgb.
func ConfigureContext(cfg ContextConfig, color, depthStencil Format) ContextConfig {
	cb := color.Bits()
	db := depthStencil.Bits()
	cfg.ColorBits = cb.Color
	cfg.AlphaBits = cb.Alpha
	cfg.SRGB = color.Srgb()
	cfg.DepthBits = db.Depth
	cfg.StencilBits = db.Stencil
	return cfg
}
