package clock

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrNoSurface is returned when a drawing surface is missing or has no area.
var ErrNoSurface = errors.New("drawing surface unavailable")

type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// TextStyle describes how text is placed. The y coordinate passed with it is
// the alphabetic baseline; Align controls how x is interpreted.
type TextStyle struct {
	Size float64 // font size in pixels
	// MaxWidth, when positive, condenses text horizontally so that it is no
	// wider than MaxWidth.
	MaxWidth float64
	Align    TextAlign
}

// Surface is a 2D drawing target. Strokes use round caps and joins.
// Implementations composite new paint over existing content.
type Surface interface {
	Size() (width, height int)
	ClearRect(x, y, width, height float64)
	StrokeCircle(cx, cy, radius, lineWidth float64, stroke color.Color)
	StrokeLine(x0, y0, x1, y1, lineWidth float64, stroke color.Color)
	StrokeText(text string, x, y float64, style TextStyle, lineWidth float64, stroke color.Color)
	FillText(text string, x, y float64, style TextStyle, fill color.Color)
}

func checkSurface(name string, s Surface) error {
	if s == nil {
		return fmt.Errorf("%s surface: %w", name, ErrNoSurface)
	}
	if w, h := s.Size(); w <= 0 || h <= 0 {
		return fmt.Errorf("%s surface %dx%d: %w", name, w, h, ErrNoSurface)
	}
	return nil
}
