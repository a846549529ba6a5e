// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glwin

import (
	"log/slog"
	"sync/atomic"
)

// sharedContext is the state behind every ContextHandle cloned from the
// same native context: the context itself, the reference count, and the
// lost flag.
type sharedContext struct {
	ctx    NativeContext
	refs   atomic.Int32
	lost   atomic.Bool
	thread atomic.Int64 // OS thread recorded by MarkCurrent, 0 = none
	strict bool
	label  string
}

// ContextHandle is one ownership share of a native GL context. A surface,
// each of its swapchains, and each enumerated adapter hold their own
// share, so the context outlives any single one of them and is destroyed
// exactly once, when the last share is released.
//
// Clone creates a new share; Release drops one. Release is idempotent per
// handle: releasing the same handle twice drops the share once. The
// native context's Release runs when the count reaches zero.
//
// All methods are safe for concurrent use. The context reached through
// Context or With is only safe to issue commands on under the embedder's
// currency discipline.
type ContextHandle struct {
	s        *sharedContext
	released atomic.Bool
}

// NewContextHandle wraps ctx in a fresh handle with reference count one.
// The handle takes over destruction: callers stop using ctx.Release and
// release handles instead.
func NewContextHandle(ctx NativeContext, opts ...HandleOption) *ContextHandle {
	o := defaultHandleOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := &sharedContext{
		ctx:    ctx,
		strict: o.strictCurrency,
		label:  o.label,
	}
	s.refs.Store(1)
	return &ContextHandle{s: s}
}

// Clone returns a new share of the same context. Cloning a released
// handle yields an already-released handle; it never resurrects a
// destroyed context.
func (h *ContextHandle) Clone() *ContextHandle {
	nh := &ContextHandle{s: h.s}
	if h.released.Load() {
		nh.released.Store(true)
		return nh
	}
	for {
		r := h.s.refs.Load()
		if r <= 0 {
			// Lost the race against the final Release.
			nh.released.Store(true)
			return nh
		}
		if h.s.refs.CompareAndSwap(r, r+1) {
			return nh
		}
	}
}

// Release drops this handle's share. The first Release on the last
// outstanding share destroys the native context. Further Release calls on
// the same handle are no-ops.
func (h *ContextHandle) Release() {
	if !h.released.CompareAndSwap(false, true) {
		return
	}
	if h.s.refs.Add(-1) == 0 {
		Logger().Debug("releasing native context", slog.String("context", h.s.label))
		h.s.ctx.Release()
	}
}

// Context returns the native context for read access. It fails with
// ErrReleased on a released handle and ErrContextLost once the context
// has been marked lost, so callers never reach a dead native object.
func (h *ContextHandle) Context() (NativeContext, error) {
	if h.released.Load() {
		return nil, ErrReleased
	}
	if h.s.lost.Load() {
		return nil, ErrContextLost
	}
	return h.s.ctx, nil
}

// With runs fn with the native context, holding this handle's share for
// the duration of the call. It returns the handle's error when the
// context is unavailable, otherwise fn's error.
func (h *ContextHandle) With(fn func(NativeContext) error) error {
	ctx, err := h.Context()
	if err != nil {
		return err
	}
	return fn(ctx)
}

// MarkLost records that the driver reported the context lost. Every
// subsequent operation on any share fails with ErrContextLost. There is
// no way back; the embedder builds a new context and new handles.
func (h *ContextHandle) MarkLost() {
	if h.s.lost.CompareAndSwap(false, true) {
		Logger().Warn("context marked lost", slog.String("context", h.s.label))
	}
}

// Lost reports whether the context has been marked lost.
func (h *ContextHandle) Lost() bool {
	return h.s.lost.Load()
}

// MarkCurrent records the calling OS thread as the one the context is
// current on. Embedders call it right after MakeCurrent when strict
// currency checks are enabled; otherwise it is optional bookkeeping.
func (h *ContextHandle) MarkCurrent() {
	h.s.thread.Store(currentThreadID())
}

// ClearCurrent clears the recorded thread. Pairs with MarkCurrent the way
// the embedder's make-current and release-current calls pair.
func (h *ContextHandle) ClearCurrent() {
	h.s.thread.Store(0)
}

// checkCurrent enforces the currency contract when strict checks are on.
// With checks off it always succeeds; the contract is documentation then.
func (h *ContextHandle) checkCurrent() error {
	if !h.s.strict {
		return nil
	}
	if tid := h.s.thread.Load(); tid != 0 {
		if cur := currentThreadID(); cur != 0 && cur != tid {
			return ErrNotCurrent
		}
	}
	if !h.s.ctx.IsCurrent() {
		return ErrNotCurrent
	}
	return nil
}

// refCount reports the live share count. Test helper.
func (h *ContextHandle) refCount() int32 {
	return h.s.refs.Load()
}
