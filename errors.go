package main

import "errors"

// One error class per failure site so callers and tests can classify a
// failure with errors.Is. All of them are fatal where they occur; they
// propagate up to main, which reports and exits.
var (
	errWatchInit     = errors.New("init file watcher")
	errWatchAdd      = errors.New("watch file")
	errImageLoad     = errors.New("load image")
	errTextureCreate = errors.New("create texture")
	errShaderRead    = errors.New("read shader")
	errShaderCompile = errors.New("compile shader")
	errFileEvent     = errors.New("read file events")
)

var errClasses = []error{
	errWatchInit,
	errWatchAdd,
	errImageLoad,
	errTextureCreate,
	errShaderRead,
	errShaderCompile,
	errFileEvent,
}

// isClassified reports whether err belongs to one of the error classes
// above. Anything else coming out of the render loop is a draw or display
// failure from the graphics driver.
func isClassified(err error) bool {
	for _, class := range errClasses {
		if errors.Is(err, class) {
			return true
		}
	}
	return false
}
