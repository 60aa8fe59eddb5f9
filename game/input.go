package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	// The population box owns the keyboard while it is being edited
	if !g.controls.Editing() {
		if rl.IsKeyPressed(rl.KeySpace) {
			g.toggleRun()
		}
		if rl.IsKeyPressed(rl.KeyTab) {
			g.controls.Toggle()
		}
		if rl.IsKeyPressed(rl.KeyP) {
			g.saveSnapshot()
		}
		g.handleOverlayKeys()
		g.handleCameraKeys()
	}

	g.handleCameraMouse()
	g.handleSelection()
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h
	g.camera.Resize(w, h)
	g.layoutPanels()
}

// handleOverlayKeys checks for overlay toggle key presses.
func (g *Game) handleOverlayKeys() {
	for _, desc := range g.overlays.All() {
		if desc.Key != 0 && rl.IsKeyPressed(desc.Key) {
			g.overlays.Toggle(desc.ID)
		}
	}
}

// handleCameraKeys processes keyboard pan and zoom.
func (g *Game) handleCameraKeys() {
	const panSpeed = float32(8.0)

	if rl.IsKeyDown(rl.KeyRight) {
		g.camera.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		g.camera.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		g.camera.Pan(0, panSpeed)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		g.camera.Pan(0, -panSpeed)
	}

	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.camera.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.camera.ZoomBy(0.8)
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		g.camera.Reset()
	}
}

// handleCameraMouse pans with a right drag and zooms toward the cursor
// with the wheel.
func (g *Game) handleCameraMouse() {
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		d := rl.GetMouseDelta()
		g.camera.Pan(-d.X, -d.Y)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		mouse := rl.GetMousePosition()
		g.camera.ZoomAt(mouse.X, mouse.Y, 1+wheel*0.1)
	}
}

// handleSelection selects the organism under a left click.
func (g *Game) handleSelection() {
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}
	mouse := rl.GetMousePosition()
	if g.overPanel(mouse.X, mouse.Y) {
		return
	}

	wx, wy := g.camera.ScreenToWorld(mouse.X, mouse.Y)
	// At least a few pixels of slack when zoomed out
	radius := 3 * g.cfg.Motion.BodySize
	if px := 8 / float64(g.camera.Zoom); px > radius {
		radius = px
	}
	if id, ok := pickOrganism(g.orgs, float64(wx), float64(wy), radius); ok {
		g.selectedID = id
		g.hasSelection = true
	} else {
		g.hasSelection = false
	}
}

// overPanel reports whether a screen point is covered by a UI panel.
func (g *Game) overPanel(x, y float32) bool {
	if g.controls.Contains(x, y) {
		return true
	}
	return g.hasSelection && g.inspector.Contains(x, y)
}

// toggleRun starts or stops the clock.
func (g *Game) toggleRun() {
	if g.kernel.IsRunning() {
		g.kernel.Stop()
	} else {
		g.kernel.Start()
	}
}

// saveSnapshot writes the current population when a snapshot directory
// is configured.
func (g *Game) saveSnapshot() {
	dir := g.opts.Sim.SnapshotDir
	if dir == "" {
		slog.Warn("snapshot skipped, no snapshot directory set")
		return
	}
	path, err := g.kernel.SaveSnapshot(dir)
	if err != nil {
		slog.Error("failed to save snapshot", "error", err)
		return
	}
	slog.Info("snapshot saved", "path", path)
}
