package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rook-computer/clockface/component"
	"github.com/rook-computer/clockface/internal/app"
	"github.com/rook-computer/clockface/internal/config"
	"github.com/rook-computer/clockface/internal/render"
	"github.com/rook-computer/clockface/internal/system"
)

func main() {
	defaults, err := config.FromEnv(config.HostConfig{
		Device:   render.DefaultDevice,
		FPS:      render.DefaultFPS,
		LogLevel: "info",
	})
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	// Flags
	debug := flag.Bool("debug", defaults.Debug, "enable debug logging; also configurable via "+config.EnvDebug)
	stylePath := flag.String("style", defaults.StylePath, "YAML style file for the clock face; also configurable via "+config.EnvStyle)
	device := flag.String("fb", defaults.Device, "framebuffer device; also configurable via "+config.EnvDevice)
	fps := flag.Int("fps", defaults.FPS, "framebuffer redraws per second; also configurable via "+config.EnvFPS)
	logLevel := flag.String("log-level", defaults.LogLevel, "debug | info | warn | error; also configurable via "+config.EnvLogLevel)
	stdioLog := flag.String("stdio-log", defaults.StdioLog, "redirect stdout+stderr (including panics) to this file; also configurable via "+config.EnvStdioLog)
	flag.Parse()

	// Best-effort: redirect all stdout/stderr output (including panic stack traces)
	// to a file so crashes are diagnosable even when the console is left in graphics mode.
	if *stdioLog != "" {
		if err := redirectStdIO(*stdioLog); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	level := *logLevel
	if *debug {
		level = "debug"
	}
	logger, err := app.NewCharmLogger(os.Stderr, level)
	if err != nil {
		fmt.Println("logger error:", err)
		os.Exit(2)
	}

	style, err := config.LoadStyle(*stylePath)
	if err != nil {
		logger.Errorf("config", "%v", err)
		os.Exit(2)
	}
	clock := component.New(component.WithLogger(logger))
	if err := clock.SetAll(style); err != nil {
		logger.Errorf("config", "%v", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer := render.NewFBRenderer(*device)
	renderer.FPS = *fps

	a := app.New(renderer, clock)
	a.Logger = logger
	a.Console = true
	a.Debug = *debug
	system.WatchExitKeys(ctx, logger, func() { a.Exit(nil) }, system.KeyEsc, system.KeyQ)

	if err := a.Start(ctx); err != nil && err != context.Canceled {
		logger.Errorf("main", "app error: %v", err)
		os.Exit(1)
	}
}
