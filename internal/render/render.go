package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	xdraw "golang.org/x/image/draw"

	"github.com/rook-computer/clockface/canvas"
	"github.com/rook-computer/clockface/clock"
	"github.com/rook-computer/clockface/internal/render/layout"
)

// Renderer presents a mounted clock. It is the component.Host the clock
// mounts on: Surfaces hands out the dial and hands canvases that each redraw
// composes onto the output.
type Renderer interface {
	Start(ctx context.Context) error
	Stop() error
	Surfaces(width, height int) (dial, hands clock.Surface, err error)
	RedrawNow()
	RunLoop(ctx context.Context)
}

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

var ErrInvalidSize = errors.New("invalid surface size")

// Stub implementations
type NoopRenderer struct{}

func (n *NoopRenderer) Start(ctx context.Context) error { return nil }
func (n *NoopRenderer) Stop() error                     { return nil }
func (n *NoopRenderer) Surfaces(width, height int) (clock.Surface, clock.Surface, error) {
	return canvas.New(width, height), canvas.New(width, height), nil
}
func (n *NoopRenderer) RedrawNow()                  {}
func (n *NoopRenderer) RunLoop(ctx context.Context) {}

// stage holds the canvases handed to the mounted clock.
type stage struct {
	mu    sync.Mutex
	dial  *canvas.Canvas
	hands *canvas.Canvas
}

func (s *stage) Surfaces(width, height int) (clock.Surface, clock.Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, nil, fmt.Errorf("surfaces %dx%d: %w", width, height, ErrInvalidSize)
	}
	dial, hands := canvas.New(width, height), canvas.New(width, height)
	s.mu.Lock()
	s.dial, s.hands = dial, hands
	s.mu.Unlock()
	return dial, hands, nil
}

func (s *stage) compose(dst *image.RGBA) {
	s.mu.Lock()
	dial, hands := s.dial, s.hands
	s.mu.Unlock()
	Compose(dst, dial, hands, Background)
}

// Compose fills dst with bg and draws dial then hands over it, scaled into
// the largest centred square that fits inside the padding.
func Compose(dst *image.RGBA, dial, hands *canvas.Canvas, bg color.Color) {
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)
	target := layout.Inset(layout.CenterSquare(dst.Bounds()), Padding)
	if target.Empty() {
		return
	}
	for _, c := range []*canvas.Canvas{dial, hands} {
		if c == nil {
			continue
		}
		c.DrawTo(dst, target, xdraw.ApproxBiLinear)
	}
}
