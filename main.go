package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

const usageText = `shadey
Shader testing environment.

Usage:
  shadey [-debug] <image> <shader>
  shadey (-h | --help)

The image is rendered on a fullscreen quad through the Kage fragment
shader; the texture is bound as the shader's first source image, sampled
with imageSrc0At. Both files are watched and the GPU resources are
rebuilt whenever either one changes on disk.

Options:
  -h --help          Show this screen.
  -debug             Verbose/debug logging.
`

const (
	minWindowW, minWindowH = 320, 240
	maxWindowW, maxWindowH = 1600, 1000
)

func main() {
	doDebug := flag.Bool("debug", false, "verbose/debug logging")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usageText) }
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	imagePath, shaderPath := flag.Arg(0), flag.Arg(1)

	setupLogging(*doDebug)

	watch, err := newFileWatcher()
	if err != nil {
		logError("%v", err)
		os.Exit(1)
	}
	defer watch.close()
	if err := watch.watch(imagePath); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
	if err := watch.watch(shaderPath); err != nil {
		logError("%v", err)
		os.Exit(1)
	}

	// Build the first session before any window exists so a missing image
	// or a broken shader fails on the command line.
	sess, err := newSession(imagePath, shaderPath)
	if err != nil {
		logError("%v", err)
		os.Exit(1)
	}

	w, h := clampWindow(sess.texW, sess.texH)
	ebiten.SetWindowTitle("Shadey")
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	g := &Game{
		imagePath:  imagePath,
		shaderPath: shaderPath,
		watch:      watch,
		session:    sess,
	}
	op := &ebiten.RunGameOptions{ScreenTransparent: false}
	if err := ebiten.RunGameWithOptions(g, op); err != nil {
		if isClassified(err) {
			logError("%v", err)
		} else {
			logError("draw: %v", err)
		}
		os.Exit(1)
	}
}

// clampWindow sizes the window from the image dimensions, bounded to
// something that fits on a desktop.
func clampWindow(w, h int) (int, int) {
	if w < minWindowW {
		w = minWindowW
	}
	if h < minWindowH {
		h = minWindowH
	}
	if w > maxWindowW {
		w = maxWindowW
	}
	if h > maxWindowH {
		h = maxWindowH
	}
	return w, h
}
