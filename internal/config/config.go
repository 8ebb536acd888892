package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	EnvDevice   = "CLOCKFACE_FB"
	EnvFPS      = "CLOCKFACE_FPS"
	EnvStyle    = "CLOCKFACE_STYLE"
	EnvDebug    = "CLOCKFACE_DEBUG"
	EnvLogLevel = "CLOCKFACE_LOG_LEVEL"
	EnvStdioLog = "CLOCKFACE_STDIO_LOG"
)

// HostConfig contains settings for running a clock host binary.
//
// The values read here become flag defaults, so a flag given on the command
// line wins over the environment.
type HostConfig struct {
	Device    string
	FPS       int
	StylePath string
	Debug     bool
	LogLevel  string
	StdioLog  string
}

// FromEnv returns defaults with every CLOCKFACE_* variable that is set
// applied over it.
func FromEnv(defaults HostConfig) (HostConfig, error) {
	cfg := defaults
	if v := os.Getenv(EnvDevice); v != "" {
		cfg.Device = v
	}
	if v := os.Getenv(EnvStyle); v != "" {
		cfg.StylePath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvStdioLog); v != "" {
		cfg.StdioLog = v
	}

	if raw := os.Getenv(EnvFPS); raw != "" {
		fps, err := strconv.Atoi(raw)
		if err != nil {
			return HostConfig{}, fmt.Errorf("%s must be an integer (got %q): %w", EnvFPS, raw, err)
		}
		if fps <= 0 {
			return HostConfig{}, fmt.Errorf("%s must be positive (got %d)", EnvFPS, fps)
		}
		cfg.FPS = fps
	}

	if raw := os.Getenv(EnvDebug); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return HostConfig{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvDebug, raw, err)
		}
		cfg.Debug = parsed
	}

	return cfg, nil
}
