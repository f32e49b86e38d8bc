package main

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"
)

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// copyToClipboard puts text on the system clipboard. Initialization
// happens once per process; on headless machines it fails cleanly and
// the caller reports the error without aborting.
func copyToClipboard(text string) error {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		return fmt.Errorf("clipboard unavailable: %w", clipboardErr)
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
