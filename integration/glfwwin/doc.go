// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package glfwwin adapts go-gl/glfw windows to glwin's window context
// contract, so a GLFW application can negotiate surface formats and
// enumerate adapters without writing platform glue.
//
// # Architecture
//
// The package translates in both directions around window creation:
//
//   - ApplyHints turns a glwin.ContextConfig into GLFW window hints
//   - Wrap turns the created *glfw.Window into a glwin.WindowContext
//
// GLFW owns the OS window and the GL context; glwin owns negotiation and
// shared-handle lifetime on top of them. Destruction moves to glwin: the
// last handle release calls the window's Destroy.
//
// # Usage
//
// Usage follows GLFW's own lifecycle. The caller owns glfw.Init,
// MakeContextCurrent and the event loop; glfwwin only translates:
//
//	cfg := glwin.ConfigureContext(glwin.DefaultContextConfig(),
//		glwin.FormatBGRA8UnormSrgb, glwin.FormatDepth24PlusStencil8)
//
//	glfwwin.ApplyHints(cfg)
//	win, err := glfw.CreateWindow(800, 600, "demo", nil, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	win.MakeContextCurrent()
//
//	surface := glfwwin.NewSurface(win, cfg)
//	defer surface.Release()
//	adapters, err := surface.EnumerateAdapters()
//
// # Thread Safety
//
// GLFW requires window and context calls on the main OS thread; the usual
// runtime.LockOSThread in main applies. The wrappers add no locking of
// their own.
//
// # Pixel Format Reporting
//
// GLFW cannot query the created framebuffer's bit depths back, so a
// wrapped window reports the configuration it was created with. Pass the
// same config to ApplyHints and Wrap.
package glfwwin
