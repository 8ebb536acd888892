package render

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// PNGRenderer writes one numbered PNG per redraw into Dir. It stands in for
// the framebuffer on machines without one.
type PNGRenderer struct {
	stage

	Dir      string
	Width    int
	Height   int
	Interval time.Duration
	// MaxFrames stops writing after that many frames; 0 means no limit.
	// OnLimit runs once when the limit is reached.
	MaxFrames int
	OnLimit   func()
	Clock     clockwork.Clock
	Logger    Logger

	mu      sync.Mutex
	frame   *image.RGBA
	written int
	started bool
}

func NewPNGRenderer(dir string) *PNGRenderer {
	return &PNGRenderer{
		Dir:      dir,
		Width:    CanvasWidth,
		Height:   CanvasHeight,
		Interval: time.Second,
		Clock:    clockwork.NewRealClock(),
	}
}

func (r *PNGRenderer) Start(ctx context.Context) error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("png frame %dx%d: %w", r.Width, r.Height, ErrInvalidSize)
	}
	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return fmt.Errorf("create frame dir: %w", err)
	}
	r.mu.Lock()
	r.frame = image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	r.started = true
	r.mu.Unlock()
	if r.Logger != nil {
		r.Logger.Infof("png", "writing %dx%d frames to %s", r.Width, r.Height, r.Dir)
	}
	return nil
}

func (r *PNGRenderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = false
	return nil
}

// RedrawNow writes the next frame unless the frame limit has been reached.
func (r *PNGRenderer) RedrawNow() {
	r.mu.Lock()
	if !r.started || r.limitReached() {
		r.mu.Unlock()
		return
	}
	r.compose(r.frame)
	path := filepath.Join(r.Dir, fmt.Sprintf("frame-%04d.png", r.written))
	err := writePNG(path, r.frame)
	if err == nil {
		r.written++
	}
	reached := err == nil && r.limitReached()
	r.mu.Unlock()

	if err != nil {
		if r.Logger != nil {
			r.Logger.Errorf("png", "write %s: %v", path, err)
		}
		return
	}
	if reached {
		if r.Logger != nil {
			r.Logger.Infof("png", "frame limit %d reached", r.MaxFrames)
		}
		if r.OnLimit != nil {
			r.OnLimit()
		}
	}
}

// RunLoop redraws every Interval until the context is done.
func (r *PNGRenderer) RunLoop(ctx context.Context) {
	clk := r.Clock
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	interval := r.Interval
	if interval <= 0 {
		interval = time.Second
	}
	ticker := clk.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			r.RedrawNow()
		}
	}
}

// Frames reports how many frames have been written.
func (r *PNGRenderer) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.written
}

func (r *PNGRenderer) limitReached() bool {
	return r.MaxFrames > 0 && r.written >= r.MaxFrames
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
