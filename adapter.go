// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glwin

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"unsafe"

	"github.com/gogpu/glwin/internal/libgl"
)

// bootstrapSymbol must resolve for a context to be usable as an adapter.
// glGetString exists in every GL and GLES version, so a nil answer means
// the resolver itself is broken, not that a feature is missing.
const bootstrapSymbol = "glGetString"

// ProcResolver resolves a GL symbol by name, nil when unknown. A HAL
// feeds it to its function loader to bind the API against the context.
type ProcResolver func(name string) unsafe.Pointer

// Instance enumerates the adapters reachable through a native context.
// Both *Surface and *Headless implement it.
type Instance interface {
	EnumerateAdapters() ([]*Adapter, error)
}

// adapterIDs hands out process-unique adapter ids.
var adapterIDs atomic.Uint64

// systemLookup is the fallback symbol source. Swapped out in tests to
// decouple them from the machine's GL installation.
var systemLookup = libgl.Lookup

// Adapter is one enumerated GPU entry point: an opaque id plus the
// symbol resolver a HAL loads the API through. A GL context reaches
// whatever device the windowing system bound it to, so enumeration always
// yields exactly one adapter.
//
// The adapter holds its own share of the context and stays valid after
// the surface that enumerated it is released.
type Adapter struct {
	id       uint64
	resolver ProcResolver
	h        *ContextHandle
}

// ID returns the adapter's process-unique id.
func (a *Adapter) ID() uint64 {
	return a.id
}

// Resolve resolves a GL symbol through the adapter. It returns nil for
// unknown symbols and, without exception, after the context was marked
// lost or the adapter released: a dead context must not leak function
// pointers.
func (a *Adapter) Resolve(name string) unsafe.Pointer {
	if _, err := a.h.Context(); err != nil {
		return nil
	}
	return a.resolver(name)
}

// Resolver returns the adapter's resolver as a closure, in the shape
// function loaders expect. The closure carries the same lost-context
// guard as Resolve.
func (a *Adapter) Resolver() ProcResolver {
	return a.Resolve
}

// Release drops the adapter's context share.
func (a *Adapter) Release() {
	a.h.Release()
}

// enumerateAdapters builds the one adapter a context exposes. It needs
// the context current on the calling thread; with strict checks enabled
// that is verified, otherwise it is the embedder's contract.
func enumerateAdapters(h *ContextHandle) ([]*Adapter, error) {
	ctx, err := h.Context()
	if err != nil {
		return nil, err
	}
	if err := h.checkCurrent(); err != nil {
		return nil, err
	}

	resolver := newResolver(ctx)
	if resolver(bootstrapSymbol) == nil {
		return nil, fmt.Errorf("resolving %q: %w", bootstrapSymbol, ErrSymbolResolution)
	}

	a := &Adapter{
		id:       adapterIDs.Add(1),
		resolver: resolver,
		h:        h.Clone(),
	}
	Logger().Info("adapter enumerated",
		slog.Uint64("adapter", a.id),
		slog.String("context", h.s.label))
	return []*Adapter{a}, nil
}

// newResolver builds the raw resolver for ctx: the context's own lookup
// first, then the system GL library. The fallback matters on platforms
// whose GetProcAddress only answers for extensions (EGL before 1.5), so
// core symbols still resolve.
func newResolver(ctx NativeContext) ProcResolver {
	return func(name string) unsafe.Pointer {
		if p := ctx.GetProcAddress(name); p != nil {
			return p
		}
		if p := systemLookup(name); p != nil {
			Logger().Debug("symbol resolved via system GL library",
				slog.String("symbol", name))
			return p
		}
		return nil
	}
}
