//go:build linux

package system

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"
)

const evKey = 0x01

// Linux input-event-codes.h
const (
	KeyEsc = 1
	KeyQ   = 16
)

// WatchExitKeys watches Linux evdev devices under /dev/input/event* and
// invokes onExit once when any of keys is pressed. It returns immediately;
// the watchers stop when ctx is done.
//
// It is best-effort: if no input devices are available, it logs and returns.
func WatchExitKeys(ctx context.Context, l logger, onExit func(), keys ...uint16) {
	if onExit == nil || len(keys) == 0 {
		return
	}

	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(paths) == 0 {
		if l != nil {
			l.Infof("input", "no evdev devices found, exit keys disabled")
		}
		return
	}

	var once sync.Once
	trigger := func(code uint16) {
		once.Do(func() {
			if l != nil {
				l.Infof("input", "key %d pressed: exiting", code)
			}
			onExit()
		})
	}

	layout := newEventLayout()
	for _, path := range paths {
		go watchDevice(ctx, path, layout, keys, trigger)
	}
}

func watchDevice(ctx context.Context, path string, layout eventLayout, keys []uint16, trigger func(uint16)) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return
	}
	f := os.NewFile(uintptr(fd), path)
	defer f.Close()

	buf := make([]byte, 4096)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			// Device might have gone away.
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}
		if code, ok := layout.pressed(buf[:n], keys); ok {
			trigger(code)
			return
		}
	}
}

// eventLayout describes struct input_event for this architecture:
// a timeval followed by u16 type, u16 code and s32 value.
type eventLayout struct {
	tvSize    int
	eventSize int
}

func newEventLayout() eventLayout {
	tvSize := binary.Size(unix.Timeval{})
	return eventLayout{tvSize: tvSize, eventSize: tvSize + 2 + 2 + 4}
}

// pressed scans buf for a key-down event of one of keys.
func (e eventLayout) pressed(buf []byte, keys []uint16) (uint16, bool) {
	for off := 0; off+e.eventSize <= len(buf); off += e.eventSize {
		rec := buf[off : off+e.eventSize]
		typ := binary.LittleEndian.Uint16(rec[e.tvSize : e.tvSize+2])
		code := binary.LittleEndian.Uint16(rec[e.tvSize+2 : e.tvSize+4])
		value := int32(binary.LittleEndian.Uint32(rec[e.tvSize+4 : e.tvSize+8]))
		if typ != evKey || value != 1 {
			continue
		}
		for _, k := range keys {
			if code == k {
				return code, true
			}
		}
	}
	return 0, false
}
