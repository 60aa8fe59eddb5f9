package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ControlsState is what the controls panel shows this frame.
type ControlsState struct {
	Running bool
	Target  int
	MaxPop  int
}

// ControlsAction reports what the user clicked this frame.
type ControlsAction struct {
	ToggleRun   bool
	ApplyTarget bool
	Target      int
	ResetCamera bool
}

// ControlsPanel renders the simulation controls and overlay toggles.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool

	targetValue int32
	editing     bool
	synced      bool
	lastHeight  int32
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		visible:  true,
	}
}

// SetPosition updates the panel position.
func (c *ControlsPanel) SetPosition(x, y int32) {
	c.x = x
	c.y = y
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Editing reports whether the population box has keyboard focus.
// Hotkeys should be ignored while it does.
func (c *ControlsPanel) Editing() bool {
	return c.visible && c.editing
}

// Contains reports whether a screen point falls on the panel.
func (c *ControlsPanel) Contains(x, y float32) bool {
	if !c.visible {
		return false
	}
	return x >= float32(c.x) && x <= float32(c.x+c.width) &&
		y >= float32(c.y) && y <= float32(c.y+c.lastHeight)
}

func (c *ControlsPanel) height(overlays *OverlayRegistry) int32 {
	r := c.renderer
	h := r.Theme.Padding*2 + r.Theme.LineHeight + 4 + 3*34
	if overlays != nil {
		for _, cat := range overlays.Categories() {
			h += r.Theme.LineHeight*int32(len(overlays.ByCategory(cat))+1) + 4
		}
	}
	return h
}

// Draw renders the panel and returns the user's actions.
func (c *ControlsPanel) Draw(state ControlsState, overlays *OverlayRegistry) ControlsAction {
	var action ControlsAction
	if !c.visible {
		return action
	}
	if !c.synced && !c.editing {
		c.targetValue = int32(state.Target)
		c.synced = true
	}

	r := c.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight
	c.lastHeight = c.height(overlays)
	r.DrawPanel(c.x, c.y, c.width, c.lastHeight)

	x := float32(c.x + padding)
	y := c.y + padding
	inner := float32(c.width - padding*2)

	rl.DrawText("Simulation", c.x+padding, y, 16, rl.White)
	y += lineHeight + 4

	label := "Start"
	if state.Running {
		label = "Stop"
	}
	if gui.Button(rl.Rectangle{X: x, Y: float32(y), Width: inner, Height: 28}, label) {
		action.ToggleRun = true
	}
	y += 34

	boxWidth := inner - 70
	if gui.ValueBox(rl.Rectangle{X: x, Y: float32(y), Width: boxWidth, Height: 28}, "", &c.targetValue, 0, state.MaxPop, c.editing) {
		c.editing = !c.editing
	}
	if gui.Button(rl.Rectangle{X: x + boxWidth + 6, Y: float32(y), Width: 64, Height: 28}, "Apply") {
		action.ApplyTarget = true
		action.Target = ClampTarget(int(c.targetValue), state.MaxPop)
		c.targetValue = int32(action.Target)
		c.editing = false
	}
	y += 34

	if gui.Button(rl.Rectangle{X: x, Y: float32(y), Width: inner, Height: 28}, "Reset Camera") {
		action.ResetCamera = true
	}
	y += 34

	if overlays != nil {
		for _, category := range overlays.Categories() {
			rl.DrawText(categoryLabel(category), c.x+padding, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
			y += lineHeight
			for _, desc := range overlays.ByCategory(category) {
				c.drawToggle(c.x+padding, y, desc, overlays.IsEnabled(desc.ID), c.width-padding*2)
				y += lineHeight
			}
			y += 4
		}
	}
	return action
}

// drawToggle draws a single overlay toggle line.
func (c *ControlsPanel) drawToggle(x, y int32, desc OverlayDescriptor, enabled bool, width int32) {
	r := c.renderer

	statusColor := rl.Color{R: 80, G: 80, B: 80, A: 255}
	nameColor := r.Theme.LabelColor
	if enabled {
		statusColor = rl.Color{R: 100, G: 200, B: 100, A: 255}
		nameColor = rl.White
	}
	rl.DrawRectangle(x, y+2, 8, 8, statusColor)
	rl.DrawText(desc.Name, x+14, y, r.Theme.FontSize, nameColor)

	if desc.KeyLabel != "" {
		keyText := fmt.Sprintf("[%s]", desc.KeyLabel)
		keyWidth := rl.MeasureText(keyText, r.Theme.FontSize)
		rl.DrawText(keyText, x+width-keyWidth, y, r.Theme.FontSize, rl.Color{R: 150, G: 150, B: 150, A: 255})
	}
}

// ClampTarget limits a requested population target to [0, maxPop].
func ClampTarget(v, maxPop int) int {
	if v < 0 {
		return 0
	}
	if v > maxPop {
		return maxPop
	}
	return v
}

// categoryLabel returns a display label for a category.
func categoryLabel(cat string) string {
	switch cat {
	case "field":
		return "Field"
	case "organisms":
		return "Organisms"
	case "telemetry":
		return "Telemetry"
	default:
		return cat
	}
}
