package ui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/codonlife/sim"
)

// genomePreviewLen is how many genome symbols fit on one inspector line.
const genomePreviewLen = 36

// Inspector renders the selected organism's panel.
type Inspector struct {
	renderer *Renderer
	panel    PanelDescriptor
	x, y     int32

	lastHeight int32 // height of the last drawn panel, 0 before the first draw
}

// NewInspector creates an inspector whose trait bars span the phenotype limits.
func NewInspector(x, y, width int32, viewAngleMax, viewRangeMax float64) *Inspector {
	return &Inspector{
		renderer: NewRenderer(),
		panel:    OrganismPanel(width, viewAngleMax, viewRangeMax),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the inspector position.
func (ins *Inspector) SetPosition(x, y int32) {
	ins.x = x
	ins.y = y
}

// Width returns the panel width.
func (ins *Inspector) Width() int32 {
	return ins.panel.Width
}

// Contains reports whether a screen point lies on the last drawn panel.
func (ins *Inspector) Contains(x, y float32) bool {
	return x >= float32(ins.x) && x <= float32(ins.x+ins.panel.Width) &&
		y >= float32(ins.y) && y <= float32(ins.y+ins.lastHeight)
}

// Draw renders the panel for o and returns the bottom Y.
func (ins *Inspector) Draw(o sim.OrganismView) int32 {
	r := ins.renderer
	padding := r.Theme.Padding
	contentWidth := ins.panel.Width - padding*2

	height := padding*2 + r.Theme.LineHeight + 4
	for _, sd := range ins.panel.Sections {
		height += r.SectionHeight(sd, o)
	}
	r.DrawPanel(ins.x, ins.y, ins.panel.Width, height)
	ins.lastHeight = height

	y := ins.y + padding
	rl.DrawText(ins.panel.Title, ins.x+padding, y, 16, rl.White)
	y += r.Theme.LineHeight + 4

	for _, sd := range ins.panel.Sections {
		y = r.DrawSection(ins.x+padding, y, sd, o, contentWidth)
	}
	return y
}

// OrganismPanel describes the inspector layout over sim.OrganismView.
func OrganismPanel(width int32, viewAngleMax, viewRangeMax float64) PanelDescriptor {
	view := func(data any) sim.OrganismView {
		return data.(sim.OrganismView)
	}
	return PanelDescriptor{
		ID:    "organism",
		Title: "Organism",
		Width: width,
		Sections: []SectionDescriptor{
			{
				ID:    "identity",
				Title: "Identity",
				Fields: []FieldDescriptor{
					{ID: "id", Label: "ID", Widget: WidgetText, TextGetter: func(d any) string {
						return fmt.Sprintf("#%d", view(d).ID)
					}},
					{ID: "generation", Label: "Generation", Widget: WidgetText, TextGetter: func(d any) string {
						return fmt.Sprintf("%d", view(d).Generation)
					}},
					{ID: "position", Label: "Position", Widget: WidgetText, TextGetter: func(d any) string {
						o := view(d)
						return fmt.Sprintf("(%.1f, %.1f)", o.X, o.Y)
					}},
					{ID: "heading", Label: "Heading", Widget: WidgetCenteredBar, Format: "%+.2f",
						Range:  FieldRange{Min: -math.Pi, Max: math.Pi},
						Getter: func(d any) float32 { return float32(view(d).Heading) }},
					{ID: "attacked", Label: "Contact", Widget: WidgetText, TextGetter: func(d any) string {
						if view(d).Attacked {
							return "yes"
						}
						return "no"
					}},
					{ID: "contacts", Label: "Contacts", Widget: WidgetText, TextGetter: func(d any) string {
						return fmt.Sprintf("%d", view(d).Contacts)
					}},
					{ID: "children", Label: "Children", Widget: WidgetText, TextGetter: func(d any) string {
						return fmt.Sprintf("%d", view(d).Children)
					}},
				},
			},
			{
				ID:    "traits",
				Title: "Traits",
				Fields: []FieldDescriptor{
					{ID: "color", Label: "Color", Widget: WidgetColorSwatch, ColorGetter: func(d any) rl.Color {
						c := view(d).Color
						return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
					}},
					{ID: "view_range", Label: "View range", Widget: WidgetBar, Format: "%.1f",
						Range:  FieldRange{Min: 0, Max: float32(viewRangeMax)},
						Getter: func(d any) float32 { return float32(view(d).ViewRange) }},
					{ID: "view_angle", Label: "View angle", Widget: WidgetBar, Format: "%.2f",
						Range:  FieldRange{Min: 0, Max: float32(viewAngleMax)},
						Getter: func(d any) float32 { return float32(view(d).ViewAngle) }},
					{ID: "view_r", Label: "Right cone", Widget: WidgetCenteredBar, Format: "%+.2f",
						Range:  FieldRange{Min: -math.Pi, Max: math.Pi},
						Getter: func(d any) float32 { return float32(view(d).ViewRPosition) }},
					{ID: "view_l", Label: "Left cone", Widget: WidgetCenteredBar, Format: "%+.2f",
						Range:  FieldRange{Min: -math.Pi, Max: math.Pi},
						Getter: func(d any) float32 { return float32(view(d).ViewLPosition) }},
				},
			},
			{
				ID:    "genome",
				Title: "Genome",
				Fields: []FieldDescriptor{
					{ID: "genome_len", Label: "Length", Widget: WidgetText, TextGetter: func(d any) string {
						return fmt.Sprintf("%d", len(view(d).Genome))
					}},
					{ID: "genome", Label: "Sequence", Widget: WidgetText, TextGetter: func(d any) string {
						return GenomePreview(view(d).Genome, genomePreviewLen)
					}},
				},
			},
		},
	}
}

// GenomePreview shortens a genome string to at most n symbols plus an ellipsis.
func GenomePreview(genome string, n int) string {
	if len(genome) <= n {
		return genome
	}
	return genome[:n] + "..."
}
