// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glwin

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestWithLabelInLogs(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	h := NewContextHandle(&fakeContext{}, WithLabel("editor-viewport"))
	defer h.Release()
	h.MarkLost()

	if got := buf.String(); !strings.Contains(got, "editor-viewport") {
		t.Errorf("lost-context log missing label, got: %s", got)
	}
}

func TestOptionsCompose(t *testing.T) {
	o := defaultHandleOptions()
	for _, opt := range []HandleOption{WithCurrencyChecks(), WithLabel("x")} {
		opt(&o)
	}
	if !o.strictCurrency {
		t.Error("WithCurrencyChecks() did not set strictCurrency")
	}
	if o.label != "x" {
		t.Errorf("label = %q, want %q", o.label, "x")
	}
}
