//go:build !linux

package system

import "context"

const (
	KeyEsc = 1
	KeyQ   = 16
)

// WatchExitKeys is a no-op outside Linux; there is no evdev to read.
func WatchExitKeys(ctx context.Context, l logger, onExit func(), keys ...uint16) {
	if l != nil {
		l.Infof("input", "exit keys unsupported on this platform")
	}
}
