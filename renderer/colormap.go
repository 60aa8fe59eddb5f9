// Package renderer draws the field and its organisms with raylib.
package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ColormapSize is the number of quantized colormap entries.
const ColormapSize = 200

// Colormap is a quantized blue to green to red ramp used for terrain level.
type Colormap [ColormapSize]rl.Color

// NewNormalColormap builds the default terrain ramp. The lower half fades
// blue into green, the upper half green into red.
func NewNormalColormap() *Colormap {
	var cm Colormap
	half := ColormapSize / 2
	dc := 255.0 / float64(half)
	for i := 0; i < ColormapSize; i++ {
		if i < half {
			v := ramp(dc * float64(i))
			cm[i] = rl.Color{R: 0, G: v, B: 255 - v, A: 255}
		} else {
			v := ramp(dc * float64(i-half))
			cm[i] = rl.Color{R: v, G: 255 - v, B: 0, A: 255}
		}
	}
	return &cm
}

// At maps a level in [0, maxLevel) onto the ramp. Out of range levels
// take the end colors.
func (cm *Colormap) At(level, maxLevel float64) rl.Color {
	return cm[cm.Index(level, maxLevel)]
}

// Index returns the ramp entry for level.
func (cm *Colormap) Index(level, maxLevel float64) int {
	if maxLevel <= 0 || math.IsNaN(level) {
		return 0
	}
	i := int(level / maxLevel * ColormapSize)
	if i < 0 {
		return 0
	}
	if i >= ColormapSize {
		return ColormapSize - 1
	}
	return i
}

func ramp(v float64) uint8 {
	c := math.Ceil(v)
	if c > 255 {
		return 255
	}
	return uint8(c)
}
