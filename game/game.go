// Package game drives the viewer: it owns the simulation kernel and draws
// it with raylib, or steps it without graphics in headless mode.
package game

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/pthm-cable/codonlife/camera"
	"github.com/pthm-cable/codonlife/config"
	"github.com/pthm-cable/codonlife/renderer"
	"github.com/pthm-cable/codonlife/sim"
	"github.com/pthm-cable/codonlife/ui"
)

// Panel widths
const (
	controlsWidth  = 220
	inspectorWidth = 280
	statsWidth     = 240
)

// Options configures the game beyond the loaded config.
type Options struct {
	Sim       sim.Options
	Headless  bool     // No raylib calls; the caller steps with UpdateHeadless
	AutoStart bool     // Start the clock immediately (graphical mode)
	Genomes   []string // Hand-written organisms added after the initial population
}

// Game holds the kernel and the viewer state.
type Game struct {
	cfg    *config.Config
	kernel *sim.Kernel
	opts   Options

	// Rendering (nil in headless mode)
	camera        *camera.Camera
	fieldRenderer *renderer.FieldRenderer
	orgRenderer   *renderer.OrganismRenderer

	// UI
	hud        *ui.HUD
	controls   *ui.ControlsPanel
	inspector  *ui.Inspector
	statsPanel *ui.StatsPanel
	overlays   *ui.OverlayRegistry

	// Per-frame snapshot taken in Update
	orgs []sim.OrganismView

	selectedID   uint32
	hasSelection bool

	screenWidth, screenHeight float32
}

// NewGameWithOptions creates the kernel and, unless headless, the viewer.
// The raylib window must already be open in graphical mode.
func NewGameWithOptions(cfg *config.Config, opts Options) (*Game, error) {
	kernel, err := sim.NewKernel(cfg, opts.Sim)
	if err != nil {
		return nil, fmt.Errorf("creating kernel: %w", err)
	}

	g := &Game{
		cfg:    cfg,
		kernel: kernel,
		opts:   opts,
	}

	addGenomes(kernel, opts.Genomes)

	if !opts.Headless {
		g.initViewer()
		if opts.AutoStart {
			kernel.Start()
		}
	}
	return g, nil
}

// addGenomes creates one organism per genome string. A genome that fails
// to parse is logged and skipped; a full population skips the rest.
func addGenomes(kernel *sim.Kernel, genomes []string) int {
	added := 0
	for i, genome := range genomes {
		o, err := kernel.CreateOrganism(genome)
		if errors.Is(err, sim.ErrCapacityExceeded) {
			slog.Warn("population full, remaining genomes skipped", "skipped", len(genomes)-i)
			break
		}
		if err != nil {
			slog.Warn("genome skipped", "genome", genome, "error", err)
			continue
		}
		added++
		slog.Info("organism created", "id", o.ID, "genome", o.Genome, "view_range", o.ViewRange)
	}
	return added
}

func (g *Game) initViewer() {
	cfg := g.cfg
	g.screenWidth = float32(cfg.Screen.Width)
	g.screenHeight = float32(cfg.Screen.Height)

	size := float32(cfg.Field.Size)
	g.camera = camera.New(g.screenWidth, g.screenHeight, size, size)

	g.fieldRenderer = renderer.NewFieldRenderer(cfg.Field.MaxLevel)
	g.fieldRenderer.Init(g.kernel.Field())
	g.orgRenderer = renderer.NewOrganismRenderer(cfg.Motion.BodySize)

	g.hud = ui.NewHUD()
	g.controls = ui.NewControlsPanel(10, 100, controlsWidth)
	g.inspector = ui.NewInspector(0, 10, inspectorWidth, cfg.Derived.ViewAngleMax, cfg.Phenotype.ViewRangeMax)
	g.statsPanel = ui.NewStatsPanel(0, 0, statsWidth)
	g.overlays = ui.NewOverlayRegistry()
	g.layoutPanels()
}

// layoutPanels anchors the right-hand panels to the current screen size.
func (g *Game) layoutPanels() {
	w := int32(g.screenWidth)
	h := int32(g.screenHeight)
	g.inspector.SetPosition(w-inspectorWidth-10, 10)
	g.statsPanel.SetPosition(10, h-200)
}

// Kernel returns the simulation kernel.
func (g *Game) Kernel() *sim.Kernel {
	return g.kernel
}

// Tick returns the number of completed simulation ticks.
func (g *Game) Tick() int64 {
	return g.kernel.Tick()
}

// Update processes input and snapshots the organisms for this frame.
// Ticks run on the kernel's clock, not here.
func (g *Game) Update() {
	g.handleInput()
	g.orgs = g.kernel.Organisms()
}

// UpdateHeadless runs one simulation tick synchronously.
func (g *Game) UpdateHeadless() {
	g.kernel.Step()
}

// Unload stops the simulation and releases GPU and file resources.
func (g *Game) Unload() {
	if g.fieldRenderer != nil {
		g.fieldRenderer.Unload()
	}
	if err := g.kernel.Close(); err != nil {
		slog.Error("closing kernel", "error", err)
	}
}

// selected returns the selected organism from the current snapshot.
func (g *Game) selected() (sim.OrganismView, bool) {
	if !g.hasSelection {
		return sim.OrganismView{}, false
	}
	return findByID(g.orgs, g.selectedID)
}
