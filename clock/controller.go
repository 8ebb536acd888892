package clock

import (
	"image/color"
	"math"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultInterval is the time between two hand redraws.
const DefaultInterval = time.Second

const numeralStrokeWidth = 0.5

// Logger matches the logging shape used across the host application.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

type Option func(*Controller)

// WithClock sets the time source used to read the wall clock and to tick.
func WithClock(c clockwork.Clock) Option {
	return func(ctl *Controller) {
		if c != nil {
			ctl.clock = c
		}
	}
}

func WithLogger(l Logger) Option {
	return func(ctl *Controller) {
		if l != nil {
			ctl.logger = l
		}
	}
}

// WithInterval overrides the redraw interval. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(ctl *Controller) {
		if d > 0 {
			ctl.interval = d
		}
	}
}

type palette struct {
	dial, number, hour, minute, second color.Color
}

// Controller draws a clock onto two surfaces: a static dial and a hands
// surface that is redrawn once per interval while ticking.
type Controller struct {
	dial   Surface
	hands  Surface
	config StyleConfig
	colors palette

	clock    clockwork.Clock
	logger   Logger
	interval time.Duration

	mu   sync.Mutex
	loop *tickLoop
}

type tickLoop struct {
	ticker clockwork.Ticker
	stop   chan struct{}
	done   chan struct{}
}

// New returns a controller drawing on dial and hands. overrides may be nil.
// The resolved configuration does not change afterwards.
func New(dial, hands Surface, overrides *Overrides, opts ...Option) *Controller {
	ctl := &Controller{
		dial:     dial,
		hands:    hands,
		config:   Resolve(overrides),
		clock:    clockwork.NewRealClock(),
		logger:   NoopLogger{},
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(ctl)
	}
	ctl.colors = palette{
		dial:   ctl.parseColor("dialStroke", ctl.config.DialStroke),
		number: ctl.parseColor("numberColor", ctl.config.NumberColor),
		hour:   ctl.parseColor("hourStroke", ctl.config.HourStroke),
		minute: ctl.parseColor("minuteStroke", ctl.config.MinuteStroke),
		second: ctl.parseColor("secondStroke", ctl.config.SecondStroke),
	}
	return ctl
}

func (ctl *Controller) parseColor(key, value string) color.Color {
	c, err := ParseColor(value)
	if err != nil {
		ctl.logger.Errorf("clock", "%s: %v; using black", key, err)
		return color.Black
	}
	return c
}

// Config returns a copy of the resolved configuration.
func (ctl *Controller) Config() StyleConfig { return ctl.config }

// RenderDial draws the dial outline and, when enabled, the numerals. It does
// not clear the dial surface first.
func (ctl *Controller) RenderDial() error {
	if err := checkSurface("dial", ctl.dial); err != nil {
		return err
	}
	cfg := ctl.config
	radius := cfg.DialRadius

	ctl.dial.StrokeCircle(radius, radius, radius-cfg.DialStrokeWidth, cfg.DialStrokeWidth, ctl.colors.dial)

	if !cfg.NumberShow {
		return nil
	}
	for _, n := range NumeralLayout(cfg) {
		style := TextStyle{Size: n.Size, MaxWidth: n.Size, Align: TextAlignCenter}
		if cfg.NumberStyle == NumberStroke {
			ctl.dial.StrokeText(n.Text, n.X, n.Y, style, numeralStrokeWidth, ctl.colors.number)
		} else {
			ctl.dial.FillText(n.Text, n.X, n.Y, style, ctl.colors.number)
		}
	}
	return nil
}

// Numeral is one dial label and its baseline anchor.
type Numeral struct {
	Text string
	X, Y float64
	Size float64
}

// NumeralLayout places the twelve numerals of cfg, index 0 at 12 o'clock,
// going clockwise. Y is shifted down by half the font size so the glyphs sit
// roughly centred on their circle.
func NumeralLayout(cfg StyleConfig) []Numeral {
	radius := cfg.DialRadius
	fontSize := Clamp(0.16*radius, 12, 24, 0)
	fontRadius := radius - fontSize

	labels := Numerals(cfg.NumberText)
	out := make([]Numeral, 0, len(labels))
	for idx, text := range labels {
		x, y := HandEndpoint(radius, radius, fontRadius, math.Pi/6*float64(idx))
		out = append(out, Numeral{Text: text, X: x, Y: y + fontSize/2, Size: fontSize})
	}
	return out
}

// HandEndpoint returns the point length away from (cx, cy) at angle radians
// clockwise from 12 o'clock. Offsets are rounded to two decimals.
func HandEndpoint(cx, cy, length, angle float64) (x, y float64) {
	return cx + Round(length*math.Sin(angle), 2), cy + Round(length*-math.Cos(angle), 2)
}

// HandAngles returns the hand angles for t in radians clockwise from
// 12 o'clock. Hour and minute move smoothly; the second hand steps.
func HandAngles(t time.Time) (hour, minute, second float64) {
	h := float64(t.Hour() % 12)
	m := float64(t.Minute())
	s := float64(t.Second())

	inHour := h + m/60 + s/3600
	inMinute := m + s/60
	return math.Pi / 6 * inHour, math.Pi / 30 * inMinute, math.Pi / 30 * s
}

func (ctl *Controller) renderHMS() error {
	if err := checkSurface("hands", ctl.hands); err != nil {
		return err
	}
	hour, minute, second := HandAngles(ctl.clock.Now())
	size := 2 * ctl.config.DialRadius

	ctl.hands.ClearRect(0, 0, size, size)
	ctl.renderHour(hour)
	ctl.renderMinute(minute)
	ctl.renderSecond(second)
	return nil
}

func (ctl *Controller) renderHour(angle float64) {
	cfg := ctl.config
	ctl.renderHand(angle, cfg.HourPercent, cfg.HourStrokeWidth, ctl.colors.hour)
}

func (ctl *Controller) renderMinute(angle float64) {
	cfg := ctl.config
	ctl.renderHand(angle, cfg.MinutePercent, cfg.MinuteStrokeWidth, ctl.colors.minute)
}

func (ctl *Controller) renderSecond(angle float64) {
	cfg := ctl.config
	ctl.renderHand(angle, cfg.SecondPercent, cfg.SecondStrokeWidth, ctl.colors.second)
}

func (ctl *Controller) renderHand(angle, percent, width float64, stroke color.Color) {
	radius := ctl.config.DialRadius
	x, y := HandEndpoint(radius, radius, radius*percent, angle)
	ctl.hands.StrokeLine(radius, radius, x, y, width, stroke)
}

// RenderPointer draws the hands now and then once per interval until
// StopTick. Calling it while already ticking restarts the loop, so at most
// one loop runs per controller.
func (ctl *Controller) RenderPointer() error {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()

	ctl.stopLocked()
	if err := ctl.renderHMS(); err != nil {
		return err
	}

	loop := &tickLoop{
		ticker: ctl.clock.NewTicker(ctl.interval),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	ctl.loop = loop
	go ctl.run(loop)
	return nil
}

func (ctl *Controller) run(loop *tickLoop) {
	defer close(loop.done)
	failing := false
	for {
		select {
		case <-loop.stop:
			return
		case <-loop.ticker.Chan():
			err := ctl.renderHMS()
			switch {
			case err != nil && !failing:
				ctl.logger.Errorf("clock", "tick: %v", err)
				failing = true
			case err == nil && failing:
				ctl.logger.Infof("clock", "tick: hands surface available again")
				failing = false
			}
		}
	}
}

// StopTick stops the redraw loop and waits for it to finish. It is a no-op
// when the controller is not ticking.
func (ctl *Controller) StopTick() {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	ctl.stopLocked()
}

func (ctl *Controller) stopLocked() {
	if ctl.loop == nil {
		return
	}
	ctl.loop.ticker.Stop()
	close(ctl.loop.stop)
	<-ctl.loop.done
	ctl.loop = nil
}

// Ticking reports whether the redraw loop is running.
func (ctl *Controller) Ticking() bool {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	return ctl.loop != nil
}
