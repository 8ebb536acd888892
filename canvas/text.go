package canvas

import (
	"sync"

	"github.com/golang/freetype/raster"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/rook-computer/clockface/clock"
)

// DefaultFontSize is used when a TextStyle carries no size.
const DefaultFontSize = 10

var loadFont = sync.OnceValues(func() (*sfnt.Font, error) {
	return opentype.Parse(goregular.TTF)
})

type glyph struct {
	index sfnt.GlyphIndex
	x     fixed.Int26_6 // pen position before the glyph
}

// MeasureText returns the advance width of text at size, before any
// MaxWidth condensing.
func MeasureText(text string, size float64) float64 {
	f, err := loadFont()
	if err != nil {
		return 0
	}
	var buf sfnt.Buffer
	_, width := layoutGlyphs(f, &buf, text, fix(size))
	return float64(width) / 64
}

func layoutGlyphs(f *sfnt.Font, buf *sfnt.Buffer, text string, ppem fixed.Int26_6) ([]glyph, fixed.Int26_6) {
	var (
		glyphs   []glyph
		pen      fixed.Int26_6
		prev     sfnt.GlyphIndex
		havePrev bool
	)
	for _, r := range text {
		idx, err := f.GlyphIndex(buf, r)
		if err != nil {
			continue
		}
		if havePrev {
			if k, err := f.Kern(buf, prev, idx, ppem, font.HintingNone); err == nil {
				pen += k
			}
		}
		glyphs = append(glyphs, glyph{index: idx, x: pen})
		adv, err := f.GlyphAdvance(buf, idx, ppem, font.HintingNone)
		if err == nil {
			pen += adv
		}
		prev, havePrev = idx, true
	}
	return glyphs, pen
}

// textPath returns the outline of text with its alphabetic baseline at y,
// positioned horizontally by style.Align and condensed to style.MaxWidth.
func textPath(text string, x, y float64, style clock.TextStyle) raster.Path {
	if text == "" {
		return nil
	}
	f, err := loadFont()
	if err != nil {
		return nil
	}
	size := style.Size
	if size <= 0 {
		size = DefaultFontSize
	}
	ppem := fix(size)

	var buf sfnt.Buffer
	glyphs, advance := layoutGlyphs(f, &buf, text, ppem)
	width := float64(advance) / 64

	scaleX := 1.0
	if style.MaxWidth > 0 && width > style.MaxWidth {
		scaleX = style.MaxWidth / width
		width = style.MaxWidth
	}
	originX := x
	switch style.Align {
	case clock.TextAlignCenter:
		originX -= width / 2
	case clock.TextAlignRight:
		originX -= width
	}

	var b pathBuilder
	for _, g := range glyphs {
		segments, err := f.LoadGlyph(&buf, g.index, ppem, nil)
		if err != nil {
			continue
		}
		at := func(p fixed.Point26_6) fixed.Point26_6 {
			return point(originX+float64(g.x+p.X)/64*scaleX, y+float64(p.Y)/64)
		}
		for _, seg := range segments {
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				b.moveTo(at(seg.Args[0]))
			case sfnt.SegmentOpLineTo:
				b.lineTo(at(seg.Args[0]))
			case sfnt.SegmentOpQuadTo:
				b.quadTo(at(seg.Args[0]), at(seg.Args[1]))
			case sfnt.SegmentOpCubeTo:
				b.cubeTo(at(seg.Args[0]), at(seg.Args[1]), at(seg.Args[2]))
			}
		}
		b.close()
	}
	return b.finish()
}
