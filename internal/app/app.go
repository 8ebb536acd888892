package app

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rook-computer/clockface/component"
	"github.com/rook-computer/clockface/internal/render"
	"github.com/rook-computer/clockface/internal/system"
)

type App struct {
	Render render.Renderer
	Clock  *component.Clock
	Logger Logger
	// Console switches the active VT to graphics mode while running, for
	// hosts that draw straight to the framebuffer.
	Console bool
	Debug   bool

	exitOnce atomic.Bool
	exitCh   chan error
}

func New(renderer render.Renderer, clock *component.Clock) *App {
	return &App{Render: renderer, Clock: clock, Logger: NoopLogger{}, exitCh: make(chan error, 1)}
}

// Exit requests the app to stop running. Only the first call has an effect.
func (app *App) Exit(err error) {
	if app.exitCh == nil {
		return
	}
	if !app.exitOnce.CompareAndSwap(false, true) {
		return
	}
	select {
	case app.exitCh <- err:
	default:
	}
}

// Start runs the clock until ctx is done or Exit is called. The returned
// error is the context's error or the one passed to Exit.
func (app *App) Start(ctx context.Context) error {
	if app.exitCh == nil {
		app.exitCh = make(chan error, 1)
	}
	app.exitOnce.Store(false)
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}

	// Initialize renderer
	if app.Render == nil {
		app.Render = render.NewFBRenderer(render.DefaultDevice)
	}
	switch r := app.Render.(type) {
	case *render.FBRenderer:
		r.Logger = app.Logger
		r.Debug = app.Debug
	case *render.PNGRenderer:
		r.Logger = app.Logger
	}
	if err := app.Render.Start(ctx); err != nil {
		app.Logger.Errorf("app", "renderer start error: %v", err)
		return err
	}
	defer app.Render.Stop()

	if app.Console {
		// Switch console to KD_GRAPHICS to suppress hardware cursor
		if err := system.SetGraphicsModeWithLog(app.Logger); err != nil {
			app.Logger.Errorf("tty", "set graphics mode failed: %v", err)
		}
		_ = system.HideCursorWithLog(app.Logger)
		defer func() { _ = system.ShowCursorWithLog(app.Logger); _ = system.RestoreTextModeWithLog(app.Logger) }()
	}

	if app.Clock == nil {
		app.Clock = component.New(component.WithLogger(app.Logger))
	}
	if err := app.Clock.Mount(app.Render); err != nil {
		app.Logger.Errorf("app", "clock mount error: %v", err)
		return err
	}
	defer app.Clock.Unmount()

	// Force immediate first redraw so the face shows without waiting for the loop.
	app.Render.RedrawNow()

	loopCtx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		app.Render.RunLoop(loopCtx)
	}()
	app.Logger.Infof("app", "clock running")

	var err error
	select {
	case <-ctx.Done():
		err = ctx.Err()
	case err = <-app.exitCh:
	}
	cancel()
	wg.Wait()
	app.Logger.Infof("app", "clock stopped")
	return err
}
