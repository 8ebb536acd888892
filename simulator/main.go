package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/rook-computer/clockface/component"
	"github.com/rook-computer/clockface/internal/app"
	"github.com/rook-computer/clockface/internal/config"
	"github.com/rook-computer/clockface/internal/render"
)

func main() {
	defaults, err := config.FromEnv(config.HostConfig{LogLevel: "info"})
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	outDir := flag.String("out", "/tmp/clockface-sim", "directory the PNG frames are written to")
	frames := flag.Int("frames", 10, "stop after this many frames; 0 runs until interrupted")
	size := flag.String("size", fmt.Sprintf("%dx%d", render.CanvasWidth, render.CanvasHeight), "frame size as WIDTHxHEIGHT")
	interval := flag.Duration("interval", time.Second, "time between frames")
	stylePath := flag.String("style", defaults.StylePath, "YAML style file for the clock face; also configurable via "+config.EnvStyle)
	logLevel := flag.String("log-level", defaults.LogLevel, "debug | info | warn | error; also configurable via "+config.EnvLogLevel)
	flag.Parse()

	width, height, err := parseSize(*size)
	if err != nil {
		fmt.Println("size error:", err)
		os.Exit(2)
	}
	logger, err := app.NewCharmLogger(os.Stderr, *logLevel)
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

	processCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer := render.NewPNGRenderer(*outDir)
	renderer.Width, renderer.Height = width, height
	renderer.Interval = *interval
	renderer.MaxFrames = *frames

	a := app.New(renderer, clock)
	a.Logger = logger
	renderer.OnLimit = func() { a.Exit(nil) }

	fmt.Println("Clockface simulator writing frames to", *outDir)
	if err := a.Start(processCtx); err != nil && err != context.Canceled {
		logger.Errorf("main", "app error: %v", err)
		os.Exit(1)
	}
	fmt.Println("Frames written:", renderer.Frames())
}

// parseSize parses "WIDTHxHEIGHT" with positive dimensions.
func parseSize(s string) (int, int, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%q is not WIDTHxHEIGHT", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return 0, 0, fmt.Errorf("width %q: %w", w, err)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return 0, 0, fmt.Errorf("height %q: %w", h, err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("%q must have positive dimensions", s)
	}
	return width, height, nil
}
