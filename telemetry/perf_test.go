package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseUpkeep)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseMotion)
		time.Sleep(200 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration")
	}
	if stats.MinTickDuration > stats.AvgTickDuration || stats.MaxTickDuration < stats.AvgTickDuration {
		t.Errorf("min %v / avg %v / max %v out of order", stats.MinTickDuration, stats.AvgTickDuration, stats.MaxTickDuration)
	}
	if _, ok := stats.PhaseAvg[PhaseUpkeep]; !ok {
		t.Error("expected upkeep phase to be tracked")
	}
	if _, ok := stats.PhaseAvg[PhaseMotion]; !ok {
		t.Error("expected motion phase to be tracked")
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)

	for i := 0; i < 10; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseMotion)
		time.Sleep(10 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration after window filled")
	}
	if stats.TicksPerSecond <= 0 {
		t.Error("expected positive ticks per second")
	}
}

func TestPerfCollector_PhasePercentages(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase("fast")
		time.Sleep(10 * time.Microsecond)
		pc.StartPhase("slow")
		time.Sleep(2 * time.Millisecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.PhasePct["slow"] <= stats.PhasePct["fast"] {
		t.Errorf("expected slow phase (%v%%) > fast phase (%v%%)", stats.PhasePct["slow"], stats.PhasePct["fast"])
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	stats := NewPerfCollector(10).Stats()

	if stats.AvgTickDuration != 0 {
		t.Error("expected zero avg tick duration for empty collector")
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("expected non-nil phase maps")
	}
}

func TestPerfStatsToCSV(t *testing.T) {
	s := PerfStats{
		AvgTickDuration: 1500 * time.Microsecond,
		PhasePct:        map[string]float64{PhaseMotion: 80, PhaseBirths: 5},
	}
	row := s.ToCSV(400)
	if row.WindowEnd != 400 || row.AvgTickUS != 1500 {
		t.Errorf("row = %+v", row)
	}
	if row.MotionPct != 80 || row.BirthsPct != 5 || row.UpkeepPct != 0 {
		t.Errorf("phase columns = %+v", row)
	}
}
