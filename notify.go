package main

import (
	"os"
	"runtime"

	"github.com/gen2brain/beeep"
)

// notifyDesktop shows a desktop notification, best-effort and non-fatal.
// The preview window tends to cover the terminal, so without this a failed
// reload would vanish silently when the process exits.
func notifyDesktop(title, body string) {
	if body == "" {
		return
	}
	// Skip on headless Linux without a display; beeep would error.
	if runtime.GOOS == "linux" && os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		return
	}
	_ = beeep.Notify(title, body, "")
}
