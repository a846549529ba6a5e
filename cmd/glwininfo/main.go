// Command glwininfo reports what glwin negotiates for a described window:
// presentable formats, the capability envelope, present modes, adapter
// enumeration, and the context request for a chosen format.
//
// The window is described by flags, not created, so the tool runs without
// a display. Adapter enumeration still probes the system GL library and
// reports whether a resolver could be built on this machine.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"unsafe"

	"github.com/gogpu/glwin"
)

func main() {
	var (
		colorBits   = flag.Int("color", 24, "combined RGB bits of the framebuffer")
		alphaBits   = flag.Int("alpha", 8, "alpha bits of the framebuffer")
		depthBits   = flag.Int("depth", 24, "depth bits of the framebuffer")
		stencilBits = flag.Int("stencil", 8, "stencil bits of the framebuffer")
		samples     = flag.Int("samples", 0, "multisample count")
		srgb        = flag.Bool("srgb", false, "framebuffer is sRGB-encoding")
		single      = flag.Bool("single", false, "single-buffered framebuffer")
		width       = flag.Float64("width", 800, "window width, logical units")
		height      = flag.Float64("height", 600, "window height, logical units")
		scale       = flag.Float64("scale", 1.0, "display scale factor")
		request     = flag.String("request", "", "also print the context request for this format (e.g. bgra8unorm-srgb)")
		verbose     = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		glwin.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	win := &describedWindow{
		pf: glwin.PixelFormat{
			ColorBits:    *colorBits,
			AlphaBits:    *alphaBits,
			DepthBits:    *depthBits,
			StencilBits:  *stencilBits,
			Samples:      *samples,
			DoubleBuffer: !*single,
			SRGB:         *srgb,
		},
		width:  *width,
		height: *height,
		scale:  *scale,
	}
	surface := glwin.NewSurface(win)
	defer surface.Release()

	report(surface, win.pf)

	if *request != "" {
		printRequest(*request, *depthBits, *stencilBits)
	}
}

func report(surface *glwin.Surface, pf glwin.PixelFormat) {
	fmt.Printf("pixel format: color %d, alpha %d, depth %d, stencil %d, samples %d, double-buffered %v, srgb %v\n",
		pf.ColorBits, pf.AlphaBits, pf.DepthBits, pf.StencilBits,
		pf.SampleCount(), pf.DoubleBuffer, pf.SRGB)

	formats, err := surface.Formats()
	if err != nil {
		log.Fatalf("formats: %v", err)
	}
	if len(formats) == 0 {
		fmt.Println("formats: none (pixel format is not presentable)")
	} else {
		fmt.Print("formats:")
		for _, f := range formats {
			fmt.Printf(" %s", f)
		}
		fmt.Println()
	}

	caps, err := surface.Capabilities()
	if err != nil {
		log.Fatalf("capabilities: %v", err)
	}
	fmt.Printf("image count: [%d,%d)\n", caps.ImageCount.Min, caps.ImageCount.Max)
	fmt.Printf("extent: %v, allowed [%v,%v)\n", caps.CurrentExtent, caps.Extents.Min, caps.Extents.Max)
	fmt.Printf("max layers: %d\n", caps.MaxImageLayers)
	fmt.Printf("usage: %v\n", caps.Usage)
	fmt.Printf("composite alpha: %v\n", caps.CompositeAlpha)

	modes, err := surface.PresentModes()
	if err != nil {
		log.Fatalf("present modes: %v", err)
	}
	fmt.Print("present modes:")
	for _, m := range modes {
		fmt.Printf(" %s", m)
	}
	fmt.Println()

	adapters, err := surface.EnumerateAdapters()
	switch {
	case errors.Is(err, glwin.ErrSymbolResolution):
		fmt.Println("adapters: none (no GL runtime on this machine)")
	case err != nil:
		log.Fatalf("adapters: %v", err)
	default:
		fmt.Printf("adapters: %d (GL symbols resolvable)\n", len(adapters))
		for _, a := range adapters {
			a.Release()
		}
	}
}

func printRequest(name string, depthBits, stencilBits int) {
	f, err := glwin.ParseFormat(name)
	if err != nil {
		log.Fatal(err)
	}
	ds := glwin.FormatUndefined
	if depthBits == 24 && stencilBits == 8 {
		ds = glwin.FormatDepth24PlusStencil8
	}
	cfg := glwin.ConfigureContext(glwin.DefaultContextConfig(), f, ds)
	fmt.Printf("context request for %s (+%s): color %d, alpha %d, srgb %v, depth %d, stencil %d\n",
		f, ds, cfg.ColorBits, cfg.AlphaBits, cfg.SRGB, cfg.DepthBits, cfg.StencilBits)
}

// describedWindow is a stand-in window context built from flags. It never
// reaches a real GL context; GetProcAddress answers nil so resolution
// falls through to the system GL library.
type describedWindow struct {
	pf            glwin.PixelFormat
	width, height float64
	scale         float64
}

func (w *describedWindow) PixelFormat() glwin.PixelFormat { return w.pf }

func (w *describedWindow) GetProcAddress(string) unsafe.Pointer { return nil }

func (w *describedWindow) MakeCurrent() error { return nil }

func (w *describedWindow) IsCurrent() bool { return true }

func (w *describedWindow) SwapBuffers() error { return nil }

func (w *describedWindow) Release() {}

func (w *describedWindow) InnerSize() (float64, float64) { return w.width, w.height }

func (w *describedWindow) ScaleFactor() float64 { return w.scale }
