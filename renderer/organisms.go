package renderer

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/codonlife/camera"
	"github.com/pthm-cable/codonlife/sim"
)

// Cone is a circular sector in field coordinates. Start and End are
// absolute angles in radians, Start <= End.
type Cone struct {
	X, Y       float64
	Start, End float64
	Radius     float64
}

// PerceptionCones returns the right and left view cones of an organism:
// each is centered on heading plus its view position, spans the view
// angle and reaches the view range.
func PerceptionCones(o sim.OrganismView) [2]Cone {
	half := o.ViewAngle / 2
	right := o.Heading + o.ViewRPosition
	left := o.Heading + o.ViewLPosition
	return [2]Cone{
		{X: o.X, Y: o.Y, Start: right - half, End: right + half, Radius: o.ViewRange},
		{X: o.X, Y: o.Y, Start: left - half, End: left + half, Radius: o.ViewRange},
	}
}

// Arc returns segments+1 points along the cone's outer edge, from Start to End.
func (c Cone) Arc(segments int) [][2]float64 {
	if segments < 1 {
		segments = 1
	}
	pts := make([][2]float64, segments+1)
	step := (c.End - c.Start) / float64(segments)
	for i := range pts {
		a := c.Start + float64(i)*step
		pts[i] = [2]float64{c.X + c.Radius*math.Cos(a), c.Y + c.Radius*math.Sin(a)}
	}
	return pts
}

// Triangle returns the three vertices of a body marker pointing along
// heading: the nose at 1.5 radius, the two tail corners at radius.
func Triangle(x, y, heading, radius float64) [3][2]float64 {
	back := math.Pi * 0.8
	return [3][2]float64{
		{x + math.Cos(heading)*radius*1.5, y + math.Sin(heading)*radius*1.5},
		{x + math.Cos(heading+back)*radius, y + math.Sin(heading+back)*radius},
		{x + math.Cos(heading-back)*radius, y + math.Sin(heading-back)*radius},
	}
}

// OrganismRenderer draws organisms as colored triangles.
type OrganismRenderer struct {
	BodySize     float64
	ConeSegments int
}

// NewOrganismRenderer creates an organism renderer for the given body size.
func NewOrganismRenderer(bodySize float64) *OrganismRenderer {
	return &OrganismRenderer{BodySize: bodySize, ConeSegments: 12}
}

// DrawOptions selects optional layers.
type DrawOptions struct {
	Cones      bool
	IDs        bool
	SelectedID uint32 // 0 = none
}

// Draw renders all organisms through the camera.
func (r *OrganismRenderer) Draw(orgs []sim.OrganismView, cam *camera.Camera, opts DrawOptions) {
	radius := float32(r.BodySize) * cam.Zoom
	if radius < 2 {
		radius = 2
	}

	if opts.Cones {
		for i := range orgs {
			o := &orgs[i]
			if !cam.IsVisible(float32(o.X), float32(o.Y), float32(o.ViewRange)) {
				continue
			}
			r.drawCones(*o, cam)
		}
	}

	for i := range orgs {
		o := &orgs[i]
		if !cam.IsVisible(float32(o.X), float32(o.Y), float32(r.BodySize)*2) {
			continue
		}
		sx, sy := cam.WorldToScreen(float32(o.X), float32(o.Y))
		v := Triangle(float64(sx), float64(sy), o.Heading, float64(radius))
		v1 := rl.Vector2{X: float32(v[0][0]), Y: float32(v[0][1])}
		v2 := rl.Vector2{X: float32(v[1][0]), Y: float32(v[1][1])}
		v3 := rl.Vector2{X: float32(v[2][0]), Y: float32(v[2][1])}

		color := rl.Color{R: o.Color.R, G: o.Color.G, B: o.Color.B, A: 255}
		// DrawTriangle requires counter-clockwise winding (v1, v3, v2)
		rl.DrawTriangle(v1, v3, v2, color)

		outline := rl.White
		if o.Attacked {
			outline = rl.Red
		}
		rl.DrawTriangleLines(v1, v2, v3, outline)

		if o.ID == opts.SelectedID {
			rl.DrawCircleLines(int32(sx), int32(sy), radius*2.5, rl.Yellow)
		}
		if opts.IDs {
			rl.DrawText(fmt.Sprintf("%d", o.ID), int32(sx+radius*1.5), int32(sy-radius*1.5), 10, rl.White)
		}
	}
}

func (r *OrganismRenderer) drawCones(o sim.OrganismView, cam *camera.Camera) {
	if o.ViewRange <= 0 || o.ViewAngle <= 0 {
		return
	}
	cx, cy := cam.WorldToScreen(float32(o.X), float32(o.Y))
	center := rl.Vector2{X: cx, Y: cy}

	colors := [2]rl.Color{
		{R: 100, G: 150, B: 200, A: 40},
		{R: 200, G: 150, B: 100, A: 40},
	}
	for i, cone := range PerceptionCones(o) {
		pts := cone.Arc(r.ConeSegments)
		prev := toScreen(cam, pts[0])
		for _, p := range pts[1:] {
			cur := toScreen(cam, p)
			rl.DrawTriangle(center, cur, prev, colors[i])
			prev = cur
		}
		edge := rl.Color{R: 200, G: 200, B: 200, A: 100}
		rl.DrawLineV(center, toScreen(cam, pts[0]), edge)
		rl.DrawLineV(center, prev, edge)
	}
}

func toScreen(cam *camera.Camera, p [2]float64) rl.Vector2 {
	x, y := cam.WorldToScreen(float32(p[0]), float32(p[1]))
	return rl.Vector2{X: x, Y: y}
}
