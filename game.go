package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// outcome is what the render loop decides to do at the top of a frame.
type outcome int

const (
	outcomeRun outcome = iota
	outcomeTerminate
	outcomeReload
)

// decideOutcome ranks the two session-ending signals. A close requested on
// an earlier frame beats a file change pending in the same frame.
func decideOutcome(closed bool, changed []string) outcome {
	if closed {
		return outcomeTerminate
	}
	if len(changed) > 0 {
		return outcomeReload
	}
	return outcomeRun
}

// Game drives one session at a time: it renders the current session every
// frame and swaps in a freshly built one when a watched file changes. The
// window outlives sessions; a reload rebuilds only the GPU resources.
type Game struct {
	imagePath  string
	shaderPath string

	watch   *fileWatcher
	session *session

	// closed records a window-close request; it is observed at the top
	// of the next update so the frame in flight still completes.
	closed  bool
	reloads int
}

func (g *Game) Update() error {
	changed, err := g.watch.poll()
	if err != nil {
		return err
	}
	switch decideOutcome(g.closed, changed) {
	case outcomeTerminate:
		logDebug("window closed after %d reloads", g.reloads)
		return ebiten.Termination
	case outcomeReload:
		logDebug("change detected: %v", changed)
		if err := g.reload(); err != nil {
			notifyDesktop("Shadey", err.Error())
			return err
		}
	}
	if ebiten.IsWindowBeingClosed() {
		g.closed = true
	}
	return nil
}

// reload builds a new session from the same two paths, picking up the new
// file contents. The old resources are released only after the new build
// succeeds; on failure the error is fatal and nothing is ever drawn with
// either resource set again.
func (g *Game) reload() error {
	next, err := newSession(g.imagePath, g.shaderPath)
	if err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	old := g.session
	g.session = next
	old.release()
	g.reloads++
	logDebug("reload #%d complete", g.reloads)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	op := &ebiten.DrawTrianglesShaderOptions{}
	op.Images[0] = g.session.texture
	screen.DrawTrianglesShader(quadVertices(w, h, g.session.texW, g.session.texH), quadIndices, g.session.shader, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	return outsideWidth, outsideHeight
}
