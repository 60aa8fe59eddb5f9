package telemetry

import "testing"

func TestCollectorShouldFlush(t *testing.T) {
	c := NewCollector(10)
	if c.ShouldFlush(9) {
		t.Error("flushed before the window ended")
	}
	if !c.ShouldFlush(10) {
		t.Error("did not flush at window end")
	}

	c.Flush(10, PopulationSample{})
	if c.ShouldFlush(15) {
		t.Error("window did not restart at the last flush")
	}
	if !c.ShouldFlush(20) {
		t.Error("second window did not end")
	}

	if NewCollector(0).WindowTicks() != 1 {
		t.Error("window shorter than one tick")
	}
}

func TestCollectorFlush(t *testing.T) {
	c := NewCollector(100)
	c.RecordContact()
	c.RecordContact()
	c.RecordContact()
	c.RecordIncompatible()
	c.RecordCooldown()
	c.RecordBirth()
	c.RecordCapacityRejected()
	c.RecordSkippedTicks(2)

	sample := NewPopulationSample(3)
	for i, g := range []float64{9, 12, 12} {
		sample.GenomeLength = append(sample.GenomeLength, g)
		sample.ViewRange = append(sample.ViewRange, float64(10*i))
		sample.ViewAngle = append(sample.ViewAngle, 0.5)
		sample.Generation = append(sample.Generation, float64(i))
		sample.Height = append(sample.Height, 2)
		sample.ColorR = append(sample.ColorR, 255)
		sample.ColorG = append(sample.ColorG, 0)
		sample.ColorB = append(sample.ColorB, 30)
	}

	s := c.Flush(100, sample)

	if s.WindowStartTick != 0 || s.WindowEndTick != 100 {
		t.Errorf("window = [%d, %d], want [0, 100]", s.WindowStartTick, s.WindowEndTick)
	}
	if s.Population != 3 {
		t.Errorf("Population = %d, want 3", s.Population)
	}
	if s.Contacts != 3 || s.Incompatible != 1 || s.CooldownBlocked != 1 || s.Births != 1 || s.CapacityRejected != 1 {
		t.Errorf("counters = %+v", s)
	}
	if s.SkippedTicks != 2 {
		t.Errorf("SkippedTicks = %d, want 2", s.SkippedTicks)
	}
	if s.GenomeLenMean != 11 {
		t.Errorf("GenomeLenMean = %v, want 11", s.GenomeLenMean)
	}
	if s.ViewRangeMean != 10 {
		t.Errorf("ViewRangeMean = %v, want 10", s.ViewRangeMean)
	}
	if s.MaxGeneration != 2 {
		t.Errorf("MaxGeneration = %d, want 2", s.MaxGeneration)
	}
	if s.ColorR != 255 || s.ColorB != 30 || s.HeightMean != 2 {
		t.Errorf("means = (%v, %v, %v)", s.ColorR, s.ColorB, s.HeightMean)
	}

	// Counters reset
	next := c.Flush(200, PopulationSample{})
	if next.Contacts != 0 || next.Births != 0 || next.SkippedTicks != 0 {
		t.Errorf("counters not reset: %+v", next)
	}
	if next.WindowStartTick != 100 {
		t.Errorf("WindowStartTick = %d, want 100", next.WindowStartTick)
	}
	if next.Population != 0 || next.MaxGeneration != 0 {
		t.Errorf("empty sample = %+v", next)
	}
}
