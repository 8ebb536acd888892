// Package component wraps the clock controller as a mountable component with
// individually settable style properties.
package component

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/rook-computer/clockface/clock"
)

var (
	ErrUnknownProperty = errors.New("unknown property")
	ErrNotMounted      = errors.New("component not mounted")
)

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// Host allocates the dial and hands surfaces a mounted clock draws on.
type Host interface {
	Surfaces(width, height int) (dial, hands clock.Surface, err error)
}

type Option func(*Clock)

func WithLogger(l Logger) Option {
	return func(c *Clock) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithControllerOptions passes options to every controller the component
// creates on Mount.
func WithControllerOptions(opts ...clock.Option) Option {
	return func(c *Clock) {
		c.ctlOpts = append(c.ctlOpts, opts...)
	}
}

// Clock is the clock component. Properties are collected with Set and read
// once per Mount; changing them while mounted takes effect on the next Mount.
type Clock struct {
	mu      sync.Mutex
	props   map[string]any
	logger  Logger
	ctlOpts []clock.Option
	ctl     *clock.Controller
}

func New(opts ...Option) *Clock {
	c := &Clock{props: map[string]any{}, logger: NoopLogger{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Set stores one style property. Values may be numbers or numeric text.
func (c *Clock) Set(key string, value any) error {
	if !clock.IsKey(key) {
		return fmt.Errorf("set %q: %w", key, ErrUnknownProperty)
	}
	c.mu.Lock()
	c.props[key] = value
	c.mu.Unlock()
	return nil
}

// SetAll stores every property in props. Nothing is stored when any key is
// unknown.
func (c *Clock) SetAll(props map[string]any) error {
	for key := range props {
		if !clock.IsKey(key) {
			return fmt.Errorf("set %q: %w", key, ErrUnknownProperty)
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, v := range props {
		c.props[key] = v
	}
	return nil
}

// Props returns a copy of the properties set so far.
func (c *Clock) Props() map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]any, len(c.props))
	for k, v := range c.props {
		out[k] = v
	}
	return out
}

// Mount resolves the properties, asks host for two square surfaces of twice
// the dial radius, draws the dial and starts the hands. Mounting a mounted
// component unmounts it first.
func (c *Clock) Mount(host Host) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unmountLocked()

	record := make(map[string]any, len(c.props))
	for k, v := range c.props {
		record[k] = v
	}
	clock.CoerceNumeric(record)
	overrides, err := clock.OverridesFromMap(record)
	if err != nil {
		return fmt.Errorf("mount: %w", err)
	}

	cfg := clock.Resolve(&overrides)
	size := int(math.Ceil(2 * cfg.DialRadius))
	dial, hands, err := host.Surfaces(size, size)
	if err != nil {
		return fmt.Errorf("mount: surfaces %dx%d: %w", size, size, err)
	}

	opts := append([]clock.Option{clock.WithLogger(c.logger)}, c.ctlOpts...)
	ctl := clock.New(dial, hands, &overrides, opts...)
	if err := ctl.RenderDial(); err != nil {
		return fmt.Errorf("mount: %w", err)
	}
	if err := ctl.RenderPointer(); err != nil {
		return fmt.Errorf("mount: %w", err)
	}
	c.ctl = ctl
	c.logger.Infof("component", "mounted clock, radius=%g numerals=%t", cfg.DialRadius, cfg.NumberShow)
	return nil
}

// Unmount stops the hands. It is a no-op when not mounted.
func (c *Clock) Unmount() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unmountLocked()
}

func (c *Clock) unmountLocked() {
	if c.ctl == nil {
		return
	}
	c.ctl.StopTick()
	c.ctl = nil
	c.logger.Infof("component", "unmounted clock")
}

func (c *Clock) Mounted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ctl != nil
}

// Config returns the configuration resolved by the current mount.
func (c *Clock) Config() (clock.StyleConfig, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ctl == nil {
		return clock.StyleConfig{}, ErrNotMounted
	}
	return c.ctl.Config(), nil
}
