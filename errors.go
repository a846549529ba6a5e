// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glwin

import "errors"

// Sentinel errors returned by glwin operations. Callers match them with
// errors.Is; wrapped forms carry call-site detail.
var (
	// ErrContextLost reports that the native context was marked lost.
	// Once a handle is lost every operation derived from it fails with
	// this error and no native pointer is handed out again.
	ErrContextLost = errors.New("glwin: context lost")

	// ErrReleased reports use of a handle wrapper after its Release.
	ErrReleased = errors.New("glwin: context handle released")

	// ErrNotCurrent reports that a strict currency check found the
	// context not current on the calling thread. Only returned when
	// checks are enabled with WithCurrencyChecks.
	ErrNotCurrent = errors.New("glwin: context not current on calling thread")

	// ErrUnsupportedFormat reports a swapchain format the surface does
	// not offer for its current pixel format.
	ErrUnsupportedFormat = errors.New("glwin: unsupported surface format")

	// ErrUnsupportedMode reports a present mode other than FIFO.
	ErrUnsupportedMode = errors.New("glwin: unsupported present mode")

	// ErrSymbolResolution reports that the bootstrap GL symbol could not
	// be resolved through the context or the system GL library, so no
	// usable adapter can be exposed.
	ErrSymbolResolution = errors.New("glwin: cannot resolve GL entry points")

	// ErrOutOfDate reports that the window's extent no longer matches
	// the swapchain. The caller recreates the swapchain and retries.
	ErrOutOfDate = errors.New("glwin: swapchain out of date")
)
