// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glfwwin

import (
	"log/slog"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/glwin"
)

// hint is one pending window hint.
type hint struct {
	target glfw.Hint
	value  int
}

// hints translates cfg into the window hints ApplyHints will set. Color
// and alpha hints only appear when the config constrains them, so an
// unconstrained config keeps GLFW's defaults; depth, stencil and sample
// hints are always present because zero is a meaningful request there.
func hints(cfg glwin.ContextConfig) []hint {
	var hs []hint
	if cfg.ColorBits > 0 {
		per := cfg.ColorBits / 3
		hs = append(hs,
			hint{glfw.RedBits, per},
			hint{glfw.GreenBits, per},
			hint{glfw.BlueBits, per},
			hint{glfw.AlphaBits, cfg.AlphaBits},
		)
	}
	return append(hs,
		hint{glfw.DepthBits, cfg.DepthBits},
		hint{glfw.StencilBits, cfg.StencilBits},
		hint{glfw.Samples, cfg.Samples},
		hint{glfw.SRGBCapable, glfwBool(cfg.SRGB)},
		hint{glfw.DoubleBuffer, glfwBool(cfg.DoubleBuffer)},
	)
}

// ApplyHints sets cfg's window hints. Call it after glfw.Init and before
// glfw.CreateWindow.
func ApplyHints(cfg glwin.ContextConfig) {
	for _, h := range hints(cfg) {
		glfw.WindowHint(h.target, h.value)
	}
	glwin.Logger().Debug("glfw hints applied",
		slog.Int("colorBits", cfg.ColorBits),
		slog.Int("alphaBits", cfg.AlphaBits),
		slog.Bool("srgb", cfg.SRGB))
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// Context implements glwin.WindowContext over a *glfw.Window.
type Context struct {
	win   *glfw.Window
	pf    glwin.PixelFormat
	vsync bool
}

var _ glwin.WindowContext = (*Context)(nil)

// Wrap adapts win, which was created under cfg's hints. Ownership of
// destruction moves to the wrapper: release the handle or surface built
// on it instead of calling win.Destroy.
func Wrap(win *glfw.Window, cfg glwin.ContextConfig) *Context {
	return &Context{win: win, pf: cfg.PixelFormat(), vsync: cfg.VSync}
}

// NewSurface wraps win and builds a surface on it in one step.
func NewSurface(win *glfw.Window, cfg glwin.ContextConfig, opts ...glwin.HandleOption) *glwin.Surface {
	return glwin.NewSurface(Wrap(win, cfg), opts...)
}

// PixelFormat reports the configuration the window was created with.
func (c *Context) PixelFormat() glwin.PixelFormat {
	return c.pf
}

// GetProcAddress resolves a symbol against the current context. GLFW
// requires a context to be current for this to answer.
func (c *Context) GetProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

// MakeCurrent binds the window's context to the calling OS thread and
// applies the configured swap interval, which GLFW ties to the current
// context.
func (c *Context) MakeCurrent() error {
	c.win.MakeContextCurrent()
	if c.vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	return nil
}

// IsCurrent reports whether the window's context is current on the
// calling OS thread.
func (c *Context) IsCurrent() bool {
	return glfw.GetCurrentContext() == c.win
}

// SwapBuffers presents the back buffer.
func (c *Context) SwapBuffers() error {
	c.win.SwapBuffers()
	return nil
}

// Release destroys the window. Called by the last handle release.
func (c *Context) Release() {
	glwin.Logger().Debug("glfw window destroyed")
	c.win.Destroy()
}

// InnerSize reports the client area in screen coordinates, GLFW's
// logical unit.
func (c *Context) InnerSize() (width, height float64) {
	w, h := c.win.GetSize()
	return float64(w), float64(h)
}

// ScaleFactor reports the window's content scale. GLFW reports per-axis
// scales; they only differ on exotic display arrangements, so the
// horizontal one answers for both.
func (c *Context) ScaleFactor() float64 {
	sx, _ := c.win.GetContentScale()
	return float64(sx)
}
