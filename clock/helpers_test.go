package clock_test

import (
	"image/color"
	"sync"

	"github.com/rook-computer/clockface/clock"
)

type op struct {
	Kind   string
	Text   string
	Points []float64
	Width  float64
	Color  color.Color
	Style  clock.TextStyle
}

// recordingSurface records draw calls and signals every ClearRect.
type recordingSurface struct {
	mu     sync.Mutex
	width  int
	height int
	ops    []op
	clears chan struct{}
}

func newRecordingSurface(width, height int) *recordingSurface {
	return &recordingSurface{width: width, height: height, clears: make(chan struct{}, 64)}
}

func (s *recordingSurface) record(o op) {
	s.mu.Lock()
	s.ops = append(s.ops, o)
	s.mu.Unlock()
}

func (s *recordingSurface) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

func (s *recordingSurface) resize(width, height int) {
	s.mu.Lock()
	s.width, s.height = width, height
	s.mu.Unlock()
}

func (s *recordingSurface) ClearRect(x, y, width, height float64) {
	s.record(op{Kind: "clear", Points: []float64{x, y, width, height}})
	select {
	case s.clears <- struct{}{}:
	default:
	}
}

func (s *recordingSurface) StrokeCircle(cx, cy, radius, lineWidth float64, stroke color.Color) {
	s.record(op{Kind: "circle", Points: []float64{cx, cy, radius}, Width: lineWidth, Color: stroke})
}

func (s *recordingSurface) StrokeLine(x0, y0, x1, y1, lineWidth float64, stroke color.Color) {
	s.record(op{Kind: "line", Points: []float64{x0, y0, x1, y1}, Width: lineWidth, Color: stroke})
}

func (s *recordingSurface) StrokeText(text string, x, y float64, style clock.TextStyle, lineWidth float64, stroke color.Color) {
	s.record(op{Kind: "strokeText", Text: text, Points: []float64{x, y}, Width: lineWidth, Color: stroke, Style: style})
}

func (s *recordingSurface) FillText(text string, x, y float64, style clock.TextStyle, fill color.Color) {
	s.record(op{Kind: "fillText", Text: text, Points: []float64{x, y}, Color: fill, Style: style})
}

func (s *recordingSurface) snapshot() []op {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]op(nil), s.ops...)
}

func (s *recordingSurface) reset() {
	s.mu.Lock()
	s.ops = nil
	s.mu.Unlock()
}

func (s *recordingSurface) count(kind string) int {
	n := 0
	for _, o := range s.snapshot() {
		if o.Kind == kind {
			n++
		}
	}
	return n
}

// lastLines returns the lines drawn after the most recent clear.
func (s *recordingSurface) lastLines() []op {
	ops := s.snapshot()
	start := 0
	for i, o := range ops {
		if o.Kind == "clear" {
			start = i + 1
		}
	}
	var lines []op
	for _, o := range ops[start:] {
		if o.Kind == "line" {
			lines = append(lines, o)
		}
	}
	return lines
}
