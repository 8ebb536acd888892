// Package canvas implements clock.Surface on an offscreen RGBA image.
//
// Paths are rasterised with github.com/golang/freetype/raster using round caps
// and joins. Text is drawn from Go Regular glyph outlines so that it can be
// both filled and stroked.
package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"

	"github.com/golang/freetype/raster"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"

	"github.com/rook-computer/clockface/clock"
)

// Canvas is safe for concurrent use: a ticking controller may draw while a
// presenter reads the image.
type Canvas struct {
	mu  sync.Mutex
	img *image.RGBA
	ras *raster.Rasterizer
}

var _ clock.Surface = (*Canvas)(nil)

// New returns a transparent canvas. Negative sizes are treated as zero.
func New(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	ras := raster.NewRasterizer(width, height)
	ras.UseNonZeroWinding = true
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		ras: ras,
	}
}

// Size reports the canvas size. A nil canvas has no area.
func (c *Canvas) Size() (int, int) {
	if c == nil {
		return 0, 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// ClearRect resets the pixels covered by the rectangle to transparent.
func (c *Canvas) ClearRect(x, y, width, height float64) {
	rect := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+width)), int(math.Ceil(y+height)),
	)
	c.mu.Lock()
	defer c.mu.Unlock()
	rect = rect.Canon().Intersect(c.img.Bounds())
	if rect.Empty() {
		return
	}
	draw.Draw(c.img, rect, image.Transparent, image.Point{}, draw.Src)
}

func (c *Canvas) StrokeCircle(cx, cy, radius, lineWidth float64, stroke color.Color) {
	if radius <= 0 || lineWidth <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ras.Clear()
	c.ras.AddStroke(circlePath(cx, cy, radius), fix(lineWidth), raster.RoundCapper, raster.RoundJoiner)
	c.paint(stroke)
}

// StrokeLine draws a segment with round caps. A zero-length segment leaves a
// dot of diameter lineWidth.
func (c *Canvas) StrokeLine(x0, y0, x1, y1, lineWidth float64, stroke color.Color) {
	if lineWidth <= 0 {
		return
	}
	a, b := point(x0, y0), point(x1, y1)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ras.Clear()
	if a == b {
		c.ras.AddPath(circlePath(x0, y0, lineWidth/2))
	} else {
		var p raster.Path
		p.Start(a)
		p.Add1(b)
		c.ras.AddStroke(p, fix(lineWidth), raster.RoundCapper, raster.RoundJoiner)
	}
	c.paint(stroke)
}

func (c *Canvas) StrokeText(text string, x, y float64, style clock.TextStyle, lineWidth float64, stroke color.Color) {
	if lineWidth <= 0 {
		return
	}
	p := textPath(text, x, y, style)
	if len(p) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ras.Clear()
	c.ras.AddStroke(p, fix(lineWidth), raster.RoundCapper, raster.RoundJoiner)
	c.paint(stroke)
}

func (c *Canvas) FillText(text string, x, y float64, style clock.TextStyle, fill color.Color) {
	p := textPath(text, x, y, style)
	if len(p) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ras.Clear()
	c.ras.AddPath(p)
	c.paint(fill)
}

// Image returns a copy of the current pixels.
func (c *Canvas) Image() *image.RGBA {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := image.NewRGBA(c.img.Bounds())
	copy(out.Pix, c.img.Pix)
	return out
}

// DrawTo composites the canvas over dst at r. When r differs from the canvas
// size the pixels are resampled with s, or bilinearly when s is nil.
func (c *Canvas) DrawTo(dst draw.Image, r image.Rectangle, s xdraw.Scaler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if r.Size() == c.img.Bounds().Size() {
		draw.Draw(dst, r, c.img, image.Point{}, draw.Over)
		return
	}
	if s == nil {
		s = xdraw.ApproxBiLinear
	}
	s.Scale(dst, r, c.img, c.img.Bounds(), draw.Over, nil)
}

// paint must be called with mu held.
func (c *Canvas) paint(col color.Color) {
	if col == nil {
		col = color.Black
	}
	painter := raster.NewRGBAPainter(c.img)
	painter.SetColor(col)
	c.ras.Rasterize(painter)
}

func fix(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func point(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fix(x), Y: fix(y)}
}
