package system

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// KD console modes from linux/kd.h
const (
	kdText     = 0x00
	kdGraphics = 0x01
	kdSetMode  = 0x4B3A // KDSETMODE ioctl
)

// consolePaths are tried in order: the controlling tty, then the active VT.
var consolePaths = []string{"/dev/tty", "/dev/tty0"}

var errNoConsole = errors.New("no console device")

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// SetGraphicsMode switches the active console to graphics mode so the kernel
// stops drawing its text cursor over the framebuffer.
func SetGraphicsMode() error { return setConsoleMode(kdGraphics, "KD_GRAPHICS") }

// RestoreTextMode returns the console to text mode.
func RestoreTextMode() error { return setConsoleMode(kdText, "KD_TEXT") }

func HideCursor() error { return writeVT("\x1b[?25l") }
func ShowCursor() error { return writeVT("\x1b[?25h") }

func SetGraphicsModeWithLog(l logger) error {
	return logResult(l, SetGraphicsMode(), "KD_GRAPHICS set", "KD_GRAPHICS failed")
}

func RestoreTextModeWithLog(l logger) error {
	return logResult(l, RestoreTextMode(), "KD_TEXT set", "KD_TEXT failed")
}

func HideCursorWithLog(l logger) error {
	return logResult(l, HideCursor(), "cursor hidden", "hide cursor failed")
}

func ShowCursorWithLog(l logger) error {
	return logResult(l, ShowCursor(), "cursor shown", "show cursor failed")
}

func logResult(l logger, err error, ok, failed string) error {
	if l == nil {
		return err
	}
	if err != nil {
		l.Errorf("tty", "%s: %v", failed, err)
	} else {
		l.Infof("tty", "%s", ok)
	}
	return err
}

func setConsoleMode(mode int, name string) error {
	lastErr := errNoConsole
	for _, p := range consolePaths {
		err := ioctlConsole(p, mode)
		if err == nil {
			return nil
		}
		lastErr = fmt.Errorf("%s on %s: %w", name, p, err)
	}
	return lastErr
}

func ioctlConsole(path string, mode int) error {
	fd, err := unix.Open(path, unix.O_RDONLY, 0)
	if err != nil {
		return err
	}
	defer unix.Close(fd)
	return unix.IoctlSetInt(fd, kdSetMode, mode)
}

func writeVT(s string) error {
	lastErr := errNoConsole
	for _, p := range consolePaths {
		f, err := os.OpenFile(p, os.O_WRONLY, 0)
		if err != nil {
			lastErr = err
			continue
		}
		_, err = f.WriteString(s)
		f.Close()
		if err == nil {
			return nil
		}
		lastErr = err
	}
	return fmt.Errorf("write VT failed: %w", lastErr)
}
