//go:build !unix

package main

import (
	"fmt"
	"os"
)

// redirectStdIO swaps the os.Stdout and os.Stderr variables. Output the runtime
// writes directly to the original descriptors, such as panics, is not captured.
func redirectStdIO(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open stdio log: %w", err)
	}
	os.Stdout = f
	os.Stderr = f
	return nil
}
