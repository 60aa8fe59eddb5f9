package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/codonlife/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title      string
	Tick       int64
	Population int
	Target     int
	MaxPop     int
	Running    bool
	Skipped    int64
	FPS        int32
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Population: %d / target %d / max %d", data.Population, data.Target, data.MaxPop),
		10, 35, 16, rl.LightGray,
	)
	rl.DrawText(
		fmt.Sprintf("Tick: %d | Skipped: %d | FPS: %d", data.Tick, data.Skipped, data.FPS),
		10, 55, 16, rl.LightGray,
	)

	statusText, statusColor := StatusText(data.Running)
	rl.DrawText(statusText, 10, 75, 16, statusColor)
}

// StatusText returns the clock status label and its color.
func StatusText(running bool) (string, rl.Color) {
	if running {
		return "RUNNING", rl.Green
	}
	return "STOPPED", rl.Yellow
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// StatsPanel renders the last telemetry window.
type StatsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewStatsPanel creates a new stats panel.
func NewStatsPanel(x, y, width int32) *StatsPanel {
	return &StatsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the panel position.
func (p *StatsPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the panel. A zero WindowEndTick means no window has closed yet.
func (p *StatsPanel) Draw(s telemetry.WindowStats) int32 {
	r := p.renderer
	padding := r.Theme.Padding
	lines := StatsLines(s)

	height := padding*2 + r.Theme.LineHeight*int32(len(lines)+1)
	r.DrawPanel(p.x, p.y, p.width, height)

	y := p.y + padding
	rl.DrawText("Window Stats", p.x+padding, y, 16, rl.White)
	y += r.Theme.LineHeight

	for _, l := range lines {
		y = r.DrawLabelValue(p.x+padding, y, l[0], l[1])
	}
	return y
}

// StatsLines formats a window as label/value pairs.
func StatsLines(s telemetry.WindowStats) [][2]string {
	if s.WindowEndTick == 0 {
		return [][2]string{{"Window", "pending"}}
	}
	return [][2]string{
		{"Window end", fmt.Sprintf("%d", s.WindowEndTick)},
		{"Births", fmt.Sprintf("%d", s.Births)},
		{"Contacts", fmt.Sprintf("%d", s.Contacts)},
		{"Incompat.", fmt.Sprintf("%d", s.Incompatible)},
		{"Rejected", fmt.Sprintf("%d", s.CapacityRejected)},
		{"Max gen", fmt.Sprintf("%d", s.MaxGeneration)},
		{"View range", fmt.Sprintf("%.1f ± %.1f", s.ViewRangeMean, s.ViewRangeStd)},
		{"View angle", fmt.Sprintf("%.2f ± %.2f", s.ViewAngleMean, s.ViewAngleStd)},
		{"Genome len", fmt.Sprintf("%.0f (p50 %.0f)", s.GenomeLenMean, s.GenomeLenP50)},
	}
}
