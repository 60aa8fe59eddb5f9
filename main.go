package main

import (
	"flag"
	"log/slog"
	"os"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/codonlife/config"
	"github.com/pthm-cable/codonlife/game"
	"github.com/pthm-cable/codonlife/sim"
	"github.com/pthm-cable/codonlife/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	statsWindow := flag.Int("stats-window", 0, "Stats window size in ticks (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	snapshotDir := flag.String("snapshot-dir", "", "Directory for population snapshots on bookmarks (empty = disabled)")
	fromSnapshot := flag.String("from-snapshot", "", "Add the genomes of a saved snapshot at startup")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	population := flag.Int("population", -1, "Initial population (-1 = use config)")
	genomes := flag.String("genome", "", "Comma-separated genomes to add at startup, e.g. augugaaaa")
	start := flag.Bool("start", false, "Start the clock when the window opens")
	debug := flag.Bool("debug", false, "Enable debug logging")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *population >= 0 {
		cfg.Population.Initial = *population
		if err := cfg.Validate(); err != nil {
			slog.Error("invalid population", "error", err)
			os.Exit(1)
		}
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	startGenomes := splitGenomes(*genomes)
	if *fromSnapshot != "" {
		snap, err := telemetry.LoadSnapshot(*fromSnapshot)
		if err != nil {
			slog.Error("failed to load snapshot", "error", err)
			os.Exit(1)
		}
		slog.Info("loaded snapshot", "path", *fromSnapshot, "tick", snap.Tick, "organisms", len(snap.Organisms))
		startGenomes = append(startGenomes, snap.Genomes()...)
	}

	opts := game.Options{
		Sim: sim.Options{
			Seed:        rngSeed,
			LogStats:    *logStats,
			OutputDir:   *outputDir,
			StatsWindow: *statsWindow,
			SnapshotDir: *snapshotDir,
		},
		Headless:  *headless,
		AutoStart: *start,
		Genomes:   startGenomes,
	}

	if *headless {
		// Headless mode - ticks run back to back, no raylib needed
		g, err := game.NewGameWithOptions(cfg, opts)
		if err != nil {
			slog.Error("failed to start simulation", "error", err)
			os.Exit(1)
		}
		defer g.Unload()

		slog.Info("starting headless simulation",
			"seed", rngSeed,
			"population", cfg.Population.Initial,
			"max_ticks", *maxTicks,
		)

		for {
			g.UpdateHeadless()

			if *maxTicks > 0 && g.Tick() >= int64(*maxTicks) {
				slog.Info("max ticks reached", "tick", g.Tick(), "population", g.Kernel().Len())
				return
			}
		}
	}

	// Graphical mode
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "codonlife")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGameWithOptions(cfg, opts)
	if err != nil {
		slog.Error("failed to start simulation", "error", err)
		return
	}
	defer g.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if *maxTicks > 0 && g.Tick() >= int64(*maxTicks) {
			break
		}
	}
}

func splitGenomes(s string) []string {
	var out []string
	for _, g := range strings.Split(s, ",") {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	return out
}
