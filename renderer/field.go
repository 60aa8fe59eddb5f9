package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/codonlife/camera"
	"github.com/pthm-cable/codonlife/sim"
)

// FieldRenderer draws the terrain grid as a single texture, one texel per cell.
type FieldRenderer struct {
	colormap *Colormap
	maxLevel float64

	tex         rl.Texture2D
	size        int
	initialized bool
}

// NewFieldRenderer creates a field renderer for levels in [0, maxLevel).
func NewFieldRenderer(maxLevel float64) *FieldRenderer {
	return &FieldRenderer{
		colormap: NewNormalColormap(),
		maxLevel: maxLevel,
	}
}

// Init uploads the field (must be called after the raylib window is created).
// The terrain never changes, so this runs once.
func (r *FieldRenderer) Init(field sim.FieldView) {
	if r.initialized {
		return
	}
	r.size = field.Size

	img := rl.GenImageColor(field.Size, field.Size, rl.Black)
	r.tex = rl.LoadTextureFromImage(img)
	rl.SetTextureFilter(r.tex, rl.FilterPoint)
	rl.UnloadImage(img)

	rl.UpdateTexture(r.tex, FieldPixels(field, r.colormap, r.maxLevel))
	r.initialized = true
}

// FieldPixels converts field levels to row-major texture pixels.
func FieldPixels(field sim.FieldView, cm *Colormap, maxLevel float64) []color.RGBA {
	pixels := make([]color.RGBA, len(field.Levels))
	for i, level := range field.Levels {
		c := cm.At(level, maxLevel)
		pixels[i] = color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	}
	return pixels
}

// Draw renders the field through the camera.
func (r *FieldRenderer) Draw(cam *camera.Camera) {
	if !r.initialized {
		return
	}
	sx, sy := cam.WorldToScreen(0, 0)
	side := float32(r.size) * cam.Zoom

	srcRect := rl.Rectangle{X: 0, Y: 0, Width: float32(r.size), Height: float32(r.size)}
	dstRect := rl.Rectangle{X: sx, Y: sy, Width: side, Height: side}
	rl.DrawTexturePro(r.tex, srcRect, dstRect, rl.Vector2{}, 0, rl.White)
	rl.DrawRectangleLinesEx(dstRect, 1, rl.Color{R: 60, G: 70, B: 80, A: 255})
}

// Unload frees GPU resources.
func (r *FieldRenderer) Unload() {
	if !r.initialized {
		return
	}
	rl.UnloadTexture(r.tex)
	r.initialized = false
}
