package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// CharmLogger writes leveled, timestamped lines through charmbracelet/log.
// The component name is attached as a key on every line.
type CharmLogger struct {
	base *log.Logger
}

// NewCharmLogger returns a logger writing to w (stderr when nil) at level,
// one of debug, info, warn, error. An empty level means info.
func NewCharmLogger(w io.Writer, level string) (*CharmLogger, error) {
	if w == nil {
		w = os.Stderr
	}
	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(strings.ToLower(level))
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		lvl = parsed
	}
	return &CharmLogger{base: log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Prefix:          "clockface",
	})}, nil
}

func (l *CharmLogger) Infof(component string, format string, args ...interface{}) {
	l.base.With("component", component).Infof(format, args...)
}

func (l *CharmLogger) Errorf(component string, format string, args ...interface{}) {
	l.base.With("component", component).Errorf(format, args...)
}
