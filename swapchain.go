// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glwin

import (
	"fmt"
	"log/slog"
	"slices"
	"time"
)

// Semaphore is a placeholder GPU synchronization object. The presentation
// scaffold accepts semaphores and never signals them.
type Semaphore struct{}

// Fence is a placeholder CPU synchronization object, accepted and never
// signaled, like Semaphore.
type Fence struct{}

// SwapchainConfig describes a swapchain to build. Zero values pick the
// surface's defaults where possible: ImageCount 0 clamps up to the
// capability minimum. Format has no default; it must come from the
// surface's format list.
type SwapchainConfig struct {
	Format      Format
	ImageCount  uint32
	PresentMode PresentMode
}

// DefaultSwapchainConfig builds the config the surface prefers: first
// negotiated format, minimum image count, FIFO. Fails with
// ErrUnsupportedFormat when the surface offers no formats.
func (s *Surface) DefaultSwapchainConfig() (SwapchainConfig, error) {
	caps, err := s.Capabilities()
	if err != nil {
		return SwapchainConfig{}, err
	}
	formats, err := s.Formats()
	if err != nil {
		return SwapchainConfig{}, err
	}
	if len(formats) == 0 {
		return SwapchainConfig{}, fmt.Errorf("no presentable format: %w", ErrUnsupportedFormat)
	}
	return SwapchainConfig{
		Format:      formats[0],
		ImageCount:  caps.ImageCount.Min,
		PresentMode: PresentModeFifo,
	}, nil
}

// Swapchain scaffolds presentation over the window's default framebuffer.
// It records its extent at build time; the window's live size is
// re-checked at present time, because a resize can race the build.
type Swapchain struct {
	h      *ContextHandle
	win    WindowContext
	format Format
	extent Extent2D
	images uint32
}

// CreateSwapchain validates cfg against the surface's current answers and
// builds a swapchain holding its own context share.
//
// The format must be in Formats (ErrUnsupportedFormat), the present mode
// must be FIFO (ErrUnsupportedMode), and the image count is clamped into
// the capability range.
func (s *Surface) CreateSwapchain(cfg SwapchainConfig) (*Swapchain, error) {
	ctx, err := s.h.Context()
	if err != nil {
		return nil, err
	}
	formats := SurfaceFormats(ctx.PixelFormat())
	if !slices.Contains(formats, cfg.Format) {
		return nil, fmt.Errorf("format %s: %w", cfg.Format, ErrUnsupportedFormat)
	}
	if cfg.PresentMode != PresentModeFifo {
		return nil, fmt.Errorf("present mode %s: %w", cfg.PresentMode, ErrUnsupportedMode)
	}
	caps, err := s.Capabilities()
	if err != nil {
		return nil, err
	}

	sc := &Swapchain{
		h:      s.h.Clone(),
		win:    s.win,
		format: cfg.Format,
		extent: caps.CurrentExtent,
		images: caps.ImageCount.Clamp(cfg.ImageCount),
	}
	Logger().Debug("swapchain created",
		slog.String("context", s.h.s.label),
		slog.String("format", sc.format.String()),
		slog.String("extent", sc.extent.String()),
		slog.Uint64("images", uint64(sc.images)))
	return sc, nil
}

// Format returns the swapchain's image format.
func (sc *Swapchain) Format() Format {
	return sc.format
}

// Extent returns the extent recorded when the swapchain was built.
func (sc *Swapchain) Extent() Extent2D {
	return sc.extent
}

// ImageCount returns the clamped image count.
func (sc *Swapchain) ImageCount() uint32 {
	return sc.images
}

// AcquireImage returns the index of the next image to render to. The
// default framebuffer is the only image there is, so the index is always
// 0 and never suboptimal. The timeout and sync objects are accepted and
// ignored: nothing blocks and nothing signals until a backend supplies a
// real image pool. Fails with ErrContextLost once the context is lost.
func (sc *Swapchain) AcquireImage(timeout time.Duration, sem *Semaphore, fence *Fence) (index uint32, suboptimal bool, err error) {
	if _, err := sc.h.Context(); err != nil {
		return 0, false, err
	}
	return 0, false, nil
}

// Present swaps the window's buffers. The context must be current on the
// calling thread. When the window's physical extent has drifted from the
// swapchain's, Present fails with ErrOutOfDate and the caller rebuilds
// the swapchain at the new size.
func (sc *Swapchain) Present() error {
	ctx, err := sc.h.Context()
	if err != nil {
		return err
	}
	if err := sc.h.checkCurrent(); err != nil {
		return err
	}
	if cur := physicalExtent(sc.win); cur != sc.extent {
		return fmt.Errorf("window %v, swapchain %v: %w", cur, sc.extent, ErrOutOfDate)
	}
	if err := ctx.SwapBuffers(); err != nil {
		return fmt.Errorf("glwin: swap buffers: %w", err)
	}
	return nil
}

// Release drops the swapchain's context share.
func (sc *Swapchain) Release() {
	sc.h.Release()
}
