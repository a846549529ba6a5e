// Package glwin bridges native OpenGL window contexts to GPU-style
// surface negotiation for the GoGPU ecosystem.
//
// # Overview
//
// A windowing library (GLFW, or any EGL/WGL wrapper) creates a GL context
// and a window; a renderer wants Vulkan-shaped answers: which texture
// formats can be presented, what the capability envelope looks like,
// which adapters exist. glwin sits between the two. It wraps the native
// context in a shared-ownership handle, decomposes the window's pixel
// format into presentable texture formats, reports capability envelopes
// from the live window state, and exposes the context as a single adapter
// whose proc-address resolver a HAL loads the GL API through.
//
// # Quick Start
//
//	import "github.com/gogpu/glwin"
//
//	// Wrap a window-backed GL context (see integration/glfwwin).
//	surface := glwin.NewSurface(winCtx)
//	defer surface.Release()
//
//	// Negotiate.
//	formats, _ := surface.Formats()
//	caps, _ := surface.Capabilities()
//
//	// Enumerate the adapter; the context must be current.
//	adapters, err := surface.EnumerateAdapters()
//	if err != nil {
//		log.Fatal(err)
//	}
//	loadGL(adapters[0].Resolver())
//
// # Ownership
//
// One native context is shared by the surface, its swapchains, and every
// enumerated adapter. Each holds a [ContextHandle] share; the context is
// destroyed when the last share is released, in any release order.
//
// # Currency
//
// glwin never makes a context current. The embedder establishes currency
// before operations that need it (adapter enumeration, presentation) and
// can opt into strict runtime verification with [WithCurrencyChecks].
//
// # Architecture
//
//   - Public API: Surface, Headless, ContextHandle, Swapchain, Adapter,
//     Format and capability vocabulary
//   - internal/libgl: system GL library fallback for symbol resolution
//   - integration/glfwwin: go-gl/glfw adapter implementing WindowContext
package glwin
