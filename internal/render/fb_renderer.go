package render

import (
	"context"
	"image"
	"image/color"
	"sync"
	"sync/atomic"
	"time"

	fb "github.com/gonutz/framebuffer"
)

// DefaultDevice is the framebuffer the renderer opens when none is set.
const DefaultDevice = "/dev/fb0"

// DefaultFPS redraws often enough that the second hand never lags a tick by
// more than a quarter second.
const DefaultFPS = 4

// FBRenderer renders to the Linux framebuffer using an offscreen logical canvas.
type FBRenderer struct {
	stage

	Device string
	FPS    int
	Logger Logger
	Debug  bool

	fbDev   *fb.Device
	frame   *image.RGBA
	drawMu  sync.Mutex
	running atomic.Bool
}

func NewFBRenderer(device string) *FBRenderer {
	if device == "" {
		device = DefaultDevice
	}
	return &FBRenderer{Device: device, FPS: DefaultFPS}
}

func (r *FBRenderer) Start(ctx context.Context) error {
	dev, err := fb.Open(r.Device)
	if err != nil {
		return err
	}
	r.fbDev = dev
	if r.Logger != nil {
		bounds := dev.Bounds()
		r.Logger.Infof("fb", "framebuffer %s open, bounds=%dx%d", r.Device, bounds.Dx(), bounds.Dy())
	}

	// Prepare logical canvas
	r.frame = image.NewRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight))
	r.running.Store(true)
	return nil
}

func (r *FBRenderer) Stop() error {
	r.running.Store(false)
	r.drawMu.Lock()
	defer r.drawMu.Unlock()
	if r.fbDev != nil {
		r.fbDev.Close()
		r.fbDev = nil
	}
	return nil
}

// RedrawNow composes the clock and pushes one frame to the device.
func (r *FBRenderer) RedrawNow() {
	if !r.running.Load() {
		return
	}
	r.drawMu.Lock()
	defer r.drawMu.Unlock()
	if r.fbDev == nil {
		return
	}
	r.compose(r.frame)
	blit(r.fbDev, r.frame)
	if r.Debug && r.Logger != nil {
		r.Logger.Infof("fb", "redraw done")
	}
}

// RunLoop redraws at FPS until the context is done.
func (r *FBRenderer) RunLoop(ctx context.Context) {
	fps := r.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	lastLog := time.Now()
	frames := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.RedrawNow()
			frames++
			if r.Logger != nil && time.Since(lastLog) > time.Minute {
				r.Logger.Infof("fb", "heartbeat, %d frames", frames)
				lastLog = time.Now()
			}
		}
	}
}

// pixelSink is the part of the framebuffer device blit writes to.
type pixelSink interface {
	Bounds() image.Rectangle
	Set(x, y int, c color.Color)
}

// blit copies canvas onto dst via nearest-neighbor scaling. Alpha is forced
// opaque since framebuffers ignore it.
func blit(dst pixelSink, canvas *image.RGBA) {
	bounds := dst.Bounds()
	src := canvas.Bounds()
	dstWidth, dstHeight := bounds.Dx(), bounds.Dy()
	if dstWidth == 0 || dstHeight == 0 || src.Empty() {
		return
	}
	for y := 0; y < dstHeight; y++ {
		sy := src.Min.Y + (y*src.Dy())/dstHeight
		for x := 0; x < dstWidth; x++ {
			sx := src.Min.X + (x*src.Dx())/dstWidth
			pixel := canvas.RGBAAt(sx, sy)
			dst.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
}
