package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/codonlife/renderer"
	"github.com/pthm-cable/codonlife/ui"
)

const controlsLegend = "[Space] Start/Stop  [Tab] Controls  [RMB drag] Pan  [Wheel] Zoom  [Home] Reset  [LMB] Select  [P] Snapshot"

// Draw renders one frame.
func (g *Game) Draw() {
	g.kernel.RecordFrame()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 15, G: 18, B: 22, A: 255})

	if g.overlays.IsEnabled(ui.OverlayTerrain) {
		g.fieldRenderer.Draw(g.camera)
	} else {
		g.drawFieldBounds()
	}

	opts := renderer.DrawOptions{
		Cones: g.overlays.IsEnabled(ui.OverlayPerceptionCones),
		IDs:   g.overlays.IsEnabled(ui.OverlayOrganismIDs),
	}
	if g.hasSelection {
		opts.SelectedID = g.selectedID
	}
	g.orgRenderer.Draw(g.orgs, g.camera, opts)

	g.drawUI()

	rl.EndDrawing()
}

// drawFieldBounds outlines the field when terrain is hidden.
func (g *Game) drawFieldBounds() {
	sx, sy := g.camera.WorldToScreen(0, 0)
	side := float32(g.cfg.Field.Size) * g.camera.Zoom
	rl.DrawRectangleLinesEx(rl.Rectangle{X: sx, Y: sy, Width: side, Height: side}, 1, rl.Gray)
}

// drawUI renders the HUD and panels, then applies clicked controls.
func (g *Game) drawUI() {
	running := g.kernel.IsRunning()

	g.hud.Draw(ui.HUDData{
		Title:      "codonlife",
		Tick:       g.kernel.Tick(),
		Population: len(g.orgs),
		Target:     g.kernel.PopulationTarget(),
		MaxPop:     g.kernel.MaxPopulation(),
		Running:    running,
		Skipped:    g.kernel.Skipped(),
		FPS:        rl.GetFPS(),
	})
	g.hud.DrawControls(int32(g.screenHeight), controlsLegend)

	if g.overlays.IsEnabled(ui.OverlayStats) {
		g.statsPanel.Draw(g.kernel.Stats())
	}

	if o, ok := g.selected(); ok {
		g.inspector.Draw(o)
	}

	action := g.controls.Draw(ui.ControlsState{
		Running: running,
		Target:  g.kernel.PopulationTarget(),
		MaxPop:  g.kernel.MaxPopulation(),
	}, g.overlays)
	g.applyControls(action)
}

// applyControls carries out what the user clicked in the controls panel.
func (g *Game) applyControls(action ui.ControlsAction) {
	if action.ToggleRun {
		g.toggleRun()
	}
	if action.ApplyTarget {
		if err := g.kernel.SetPopulationTarget(action.Target); err != nil {
			slog.Warn("population target rejected", "target", action.Target, "error", err)
		}
	}
	if action.ResetCamera {
		g.camera.Reset()
	}
}
