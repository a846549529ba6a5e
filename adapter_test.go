// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glwin

import (
	"errors"
	"slices"
	"testing"
	"unsafe"
)

func TestEnumerateExactlyOneAdapter(t *testing.T) {
	win := newFakeWindow()
	s := NewSurface(win)
	defer s.Release()

	adapters, err := s.EnumerateAdapters()
	if err != nil {
		t.Fatalf("EnumerateAdapters() = %v", err)
	}
	if len(adapters) != 1 {
		t.Fatalf("EnumerateAdapters() returned %d adapters, want 1", len(adapters))
	}
	defer adapters[0].Release()

	if adapters[0].ID() == 0 {
		t.Error("adapter ID() = 0, want a nonzero id")
	}

	// A second enumeration exposes the same context again: still one
	// adapter, each with its own identity and share.
	again, err := s.EnumerateAdapters()
	if err != nil {
		t.Fatalf("second EnumerateAdapters() = %v", err)
	}
	if len(again) != 1 {
		t.Fatalf("second EnumerateAdapters() returned %d adapters, want 1", len(again))
	}
	again[0].Release()
}

func TestAdapterResolveForwards(t *testing.T) {
	win := newFakeWindow()
	s := NewSurface(win)
	defer s.Release()

	adapters, err := s.EnumerateAdapters()
	if err != nil {
		t.Fatalf("EnumerateAdapters() = %v", err)
	}
	a := adapters[0]
	defer a.Release()

	if p := a.Resolve("glClear"); p == nil {
		t.Error("Resolve(glClear) = nil, want resolved symbol")
	}
	if !slices.Contains(win.asked, "glClear") {
		t.Errorf("context was not asked for glClear; asked = %v", win.asked)
	}

	// Resolver() hands out the same behavior as Resolve.
	r := a.Resolver()
	if p := r("glDrawArrays"); p == nil {
		t.Error("Resolver()(glDrawArrays) = nil, want resolved symbol")
	}
}

func TestEnumerateBrokenResolver(t *testing.T) {
	noSystemGL(t)
	win := newFakeWindow()
	win.resolve = func(string) unsafe.Pointer { return nil }
	s := NewSurface(win)
	defer s.Release()

	_, err := s.EnumerateAdapters()
	if !errors.Is(err, ErrSymbolResolution) {
		t.Errorf("EnumerateAdapters() = %v, want ErrSymbolResolution", err)
	}
}

// When the context's own resolver comes up empty the system GL library
// answers for core symbols.
func TestEnumerateSystemFallback(t *testing.T) {
	marker := new(byte)
	old := systemLookup
	systemLookup = func(name string) unsafe.Pointer {
		if name == "glGetString" {
			return unsafe.Pointer(marker)
		}
		return nil
	}
	t.Cleanup(func() { systemLookup = old })

	win := newFakeWindow()
	win.resolve = func(string) unsafe.Pointer { return nil }
	s := NewSurface(win)
	defer s.Release()

	adapters, err := s.EnumerateAdapters()
	if err != nil {
		t.Fatalf("EnumerateAdapters() = %v, want fallback to succeed", err)
	}
	a := adapters[0]
	defer a.Release()

	if p := a.Resolve("glGetString"); p != unsafe.Pointer(marker) {
		t.Errorf("Resolve(glGetString) = %v, want the system library's pointer", p)
	}
}

func TestAdapterResolveAfterLost(t *testing.T) {
	win := newFakeWindow()
	s := NewSurface(win)
	defer s.Release()

	adapters, err := s.EnumerateAdapters()
	if err != nil {
		t.Fatalf("EnumerateAdapters() = %v", err)
	}
	a := adapters[0]
	defer a.Release()

	s.Handle().MarkLost()
	if p := a.Resolve("glGetString"); p != nil {
		t.Errorf("Resolve() = %v after loss, want nil: lost contexts must not leak pointers", p)
	}
	if p := a.Resolver()("glGetString"); p != nil {
		t.Errorf("Resolver()() = %v after loss, want nil", p)
	}
}

func TestEnumerateLostContext(t *testing.T) {
	win := newFakeWindow()
	s := NewSurface(win)
	defer s.Release()
	s.Handle().MarkLost()

	if _, err := s.EnumerateAdapters(); !errors.Is(err, ErrContextLost) {
		t.Errorf("EnumerateAdapters() = %v, want ErrContextLost", err)
	}
}

func TestHeadlessEnumerate(t *testing.T) {
	ctx := &fakeContext{current: true}
	hl := NewHeadless(ctx)
	defer hl.Release()

	adapters, err := hl.EnumerateAdapters()
	if err != nil {
		t.Fatalf("EnumerateAdapters() = %v", err)
	}
	if len(adapters) != 1 {
		t.Fatalf("EnumerateAdapters() returned %d adapters, want 1", len(adapters))
	}
	adapters[0].Release()
}
