package render

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/clockface/canvas"
)

var red = color.NRGBA{R: 0xFF, A: 0xFF}

func filled(size int) *canvas.Canvas {
	c := canvas.New(size, size)
	c.StrokeLine(0, float64(size)/2, float64(size), float64(size)/2, float64(size), red)
	return c
}

func TestCompose(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 200, 100))
	Compose(dst, filled(50), nil, Background)

	// square (50,0)-(150,100) inset by Padding
	assert.Equal(t, color.RGBA{R: 0xFF, A: 0xFF}, dst.RGBAAt(100, 50))
	assert.Equal(t, Background, dst.RGBAAt(10, 50))
	assert.Equal(t, Background, dst.RGBAAt(100, 5))
	assert.Equal(t, Background, dst.RGBAAt(190, 95))
}

func TestComposeLayersHandsOverDial(t *testing.T) {
	dial := filled(20)
	hands := canvas.New(20, 20)
	hands.StrokeLine(10, 0, 10, 20, 20, color.NRGBA{B: 0xFF, A: 0xFF})

	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	Compose(dst, dial, hands, color.White)
	assert.Equal(t, color.RGBA{B: 0xFF, A: 0xFF}, dst.RGBAAt(50, 50))
}

func TestComposeWithoutCanvases(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	Compose(dst, nil, nil, Background)
	assert.Equal(t, Background, dst.RGBAAt(10, 10))
}

func TestBlitScalesAndForcesOpaque(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(0, 0, color.RGBA{R: 0x80, A: 0x80})
	src.SetRGBA(1, 1, color.RGBA{G: 0xFF, A: 0xFF})

	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	blit(dst, src)

	assert.Equal(t, color.RGBA{R: 0x80, A: 0xFF}, dst.RGBAAt(1, 1))
	assert.Equal(t, color.RGBA{G: 0xFF, A: 0xFF}, dst.RGBAAt(3, 2))
	assert.Equal(t, color.RGBA{A: 0xFF}, dst.RGBAAt(3, 0))
}

func TestStageSurfaces(t *testing.T) {
	var s stage
	_, _, err := s.Surfaces(0, 10)
	assert.ErrorIs(t, err, ErrInvalidSize)

	dial, hands, err := s.Surfaces(30, 30)
	require.NoError(t, err)
	w, h := dial.Size()
	assert.Equal(t, 30, w)
	assert.Equal(t, 30, h)
	assert.NotSame(t, dial, hands)
}

func TestPNGRendererWritesFramesUntilLimit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	r := NewPNGRenderer(dir)
	r.Width, r.Height = 64, 48
	r.MaxFrames = 2
	var limits atomic.Int32
	r.OnLimit = func() { limits.Add(1) }

	require.NoError(t, r.Start(context.Background()))
	defer r.Stop()
	_, _, err := r.Surfaces(20, 20)
	require.NoError(t, err)

	r.RedrawNow()
	r.RedrawNow()
	r.RedrawNow()

	assert.Equal(t, 2, r.Frames())
	assert.Equal(t, int32(1), limits.Load())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"frame-0000.png", "frame-0001.png"}, names)

	f, err := os.Open(filepath.Join(dir, "frame-0001.png"))
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 48), img.Bounds())
}

func TestPNGRendererIgnoresRedrawBeforeStart(t *testing.T) {
	r := NewPNGRenderer(t.TempDir())
	r.RedrawNow()
	assert.Zero(t, r.Frames())
}

func TestPNGRendererRejectsEmptyFrame(t *testing.T) {
	r := NewPNGRenderer(t.TempDir())
	r.Width = 0
	assert.ErrorIs(t, r.Start(context.Background()), ErrInvalidSize)
}

func TestPNGRendererRunLoop(t *testing.T) {
	fc := clockwork.NewFakeClock()
	r := NewPNGRenderer(t.TempDir())
	r.Width, r.Height = 16, 16
	r.Clock = fc
	require.NoError(t, r.Start(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		r.RunLoop(ctx)
	}()

	require.NoError(t, fc.BlockUntilContext(ctx, 1))
	fc.Advance(time.Second)
	require.Eventually(t, func() bool { return r.Frames() == 1 }, 2*time.Second, time.Millisecond)
	fc.Advance(time.Second)
	require.Eventually(t, func() bool { return r.Frames() == 2 }, 2*time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("RunLoop did not return after cancel")
	}
}

func TestNoopRenderer(t *testing.T) {
	var r Renderer = &NoopRenderer{}
	require.NoError(t, r.Start(context.Background()))
	dial, _, err := r.Surfaces(10, 10)
	require.NoError(t, err)
	w, _ := dial.Size()
	assert.Equal(t, 10, w)
	r.RedrawNow()
	r.RunLoop(context.Background())
	assert.NoError(t, r.Stop())
}
