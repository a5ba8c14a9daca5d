// Package app wires the window, the event plumbing and the renderer
// into the single-threaded setup-then-loop program.
package app

import (
	"time"

	"github.com/thiagopls1/gl-triangle/engine"
)

// App owns the window and the renderer for the lifetime of the render
// loop.
type App struct {
	cfg      Config
	window   Window
	renderer *engine.Renderer
	cleanup  func()
}

// New runs the whole setup sequence: window and context creation,
// shader compile/link, mesh upload, version diagnostics. Every failure
// is fatal to the caller, there is no recovery or retry. Must be
// called on the locked main thread.
func New(cfg Config) (*App, error) {
	events := NewObserver()
	input := NewInputManager(events)

	wm, err := NewWindowManager(cfg, events, input)
	if err != nil {
		return nil, err
	}

	ctx := engine.GL()
	fbWidth, fbHeight := wm.FramebufferSize()

	renderer, err := engine.NewRenderer(ctx, engine.Options{
		Width:  fbWidth,
		Height: fbHeight,

		ClearColor: cfg.ClearColor,

		VertexShader:   cfg.VertexShader,
		FragmentShader: cfg.FragmentShader,

		Geometry: cfg.Geometry,
	})
	if err != nil {
		wm.Cleanup()
		return nil, err
	}

	version, glsl := ctx.Versions()
	Logger().Info("opengl version", "version", version)
	Logger().Info("glsl version", "version", glsl)

	NewControlSystem(wm, cfg.QuitKey, events)

	return &App{
		cfg:      cfg,
		window:   wm,
		renderer: renderer,
		cleanup:  wm.Cleanup,
	}, nil
}

// Run drives the render loop until the window reports close, then
// releases the gl resources and the platform window.
func (a *App) Run() {
	runLoop(a.window, a.renderer.Frame, a.cfg.FrameCap)

	a.renderer.Dispose()
	a.cleanup()
}

// runLoop repeats poll -> frame -> swap while the should-close flag is
// down. Event handlers fire synchronously inside Poll, so a close
// request or quit key ends the loop after at most the iteration it
// arrived in. With frameCap > 0 iterations are gated by a ticker,
// otherwise pacing is left to the swap interval.
func runLoop(w Window, frame func(), frameCap float64) {
	var tick <-chan time.Time
	if frameCap > 0 {
		t := time.NewTicker(time.Duration(float64(time.Second) / frameCap))
		defer t.Stop()
		tick = t.C
	}

	for !w.ShouldClose() {
		if tick != nil {
			<-tick
		}

		w.Poll()
		frame()
		w.Swap()
	}
}
