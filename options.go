package glwin

// HandleOption configures a ContextHandle during creation.
//
// Example:
//
//	// Default: documented currency contract, no runtime checks.
//	h := glwin.NewContextHandle(ctx)
//
//	// Development build: verify currency on context-dependent calls.
//	h := glwin.NewContextHandle(ctx, glwin.WithCurrencyChecks())
type HandleOption func(*handleOptions)

// handleOptions holds optional configuration for ContextHandle creation.
type handleOptions struct {
	strictCurrency bool
	label          string
}

func defaultHandleOptions() handleOptions {
	return handleOptions{}
}

// WithCurrencyChecks enables strict currency verification. Operations that
// need the context current then compare the calling OS thread against the
// thread recorded by MarkCurrent and consult the context's IsCurrent,
// failing with ErrNotCurrent on a mismatch.
//
// The checks cost one atomic load and one IsCurrent call per operation.
// They are off by default; the currency contract holds either way.
func WithCurrencyChecks() HandleOption {
	return func(o *handleOptions) {
		o.strictCurrency = true
	}
}

// WithLabel attaches a label to the handle for log correlation. Useful
// when an application juggles several contexts.
//
// Example:
//
//	h := glwin.NewContextHandle(ctx, glwin.WithLabel("editor-viewport"))
func WithLabel(label string) HandleOption {
	return func(o *handleOptions) {
		o.label = label
	}
}
