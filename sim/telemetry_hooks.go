package sim

import (
	"log/slog"

	"github.com/pthm-cable/codonlife/telemetry"
)

// flushTelemetry checks if the stats window should be flushed and handles bookmarks.
func (s *Simulation) flushTelemetry() {
	if !s.collector.ShouldFlush(s.tick) {
		return
	}

	stats := s.collector.Flush(s.tick, s.samplePopulation())
	perfStats := s.perfCollector.Stats()
	s.lastStats = stats

	if s.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := s.outputManager.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := s.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}

	for _, bm := range s.bookmarks.Check(stats) {
		if s.logStats {
			bm.LogBookmark()
		}
		if err := s.outputManager.WriteBookmark(bm); err != nil {
			slog.Error("failed to write bookmark", "error", err)
		}
		if s.snapshotDir != "" {
			s.saveSnapshot(bm)
		}
	}
}

// Snapshot captures the population with lifetime stats.
func (s *Simulation) Snapshot(bm *telemetry.Bookmark) *telemetry.Snapshot {
	snap := &telemetry.Snapshot{
		Version:   telemetry.SnapshotVersion,
		Seed:      s.seed,
		FieldSize: s.field.Size(),
		Tick:      s.tick,
		Organisms: make([]telemetry.OrganismState, 0, s.store.Len()),
		Bookmark:  bm,
	}
	for _, e := range s.store.Order() {
		pos := s.store.posMap.Get(e)
		org := s.store.orgMap.Get(e)
		snap.Organisms = append(snap.Organisms, telemetry.OrganismState{
			ID:            org.ID,
			X:             pos.X,
			Y:             pos.Y,
			Heading:       s.store.motionMap.Get(e).Heading,
			Genome:        s.store.genesMap.Get(e).Genome.String(),
			Generation:    org.Generation,
			ReproCooldown: org.ReproCooldown,
			Lifetime:      s.lifetimes.Get(org.ID).ToJSON(),
		})
	}
	return snap
}

func (s *Simulation) saveSnapshot(bm telemetry.Bookmark) {
	path, err := telemetry.SaveSnapshot(s.Snapshot(&bm), s.snapshotDir)
	if err != nil {
		slog.Error("failed to save snapshot", "error", err)
		return
	}
	slog.Info("snapshot saved", "path", path, "bookmark", string(bm.Type))
}

// samplePopulation collects per-organism trait values for the stats window.
func (s *Simulation) samplePopulation() telemetry.PopulationSample {
	sample := telemetry.NewPopulationSample(s.store.Len())

	query := s.store.filter.Query()
	for query.Next() {
		pos, _, tr, genes, org := query.Get()

		sample.ViewRange = append(sample.ViewRange, tr.ViewRange)
		sample.ViewAngle = append(sample.ViewAngle, tr.ViewAngle)
		sample.GenomeLength = append(sample.GenomeLength, float64(len(genes.Genome)))
		sample.Generation = append(sample.Generation, float64(org.Generation))
		sample.Height = append(sample.Height, s.field.HeightAt(pos.X, pos.Y))
		sample.ColorR = append(sample.ColorR, float64(tr.Color.R))
		sample.ColorG = append(sample.ColorG, float64(tr.Color.G))
		sample.ColorB = append(sample.ColorB, float64(tr.Color.B))
	}
	return sample
}
