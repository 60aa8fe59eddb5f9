package telemetry

// LifetimeStats tracks per-organism statistics since birth.
type LifetimeStats struct {
	BornTick   int64
	Generation int
	Parents    [2]uint32 // zero for organisms created directly

	Contacts int // contacts where this organism was scanning
	Children int
}

// LifetimeTracker manages per-organism lifetime statistics by organism id.
type LifetimeTracker struct {
	stats map[uint32]*LifetimeStats
}

// NewLifetimeTracker creates a new lifetime tracker.
func NewLifetimeTracker() *LifetimeTracker {
	return &LifetimeTracker{
		stats: make(map[uint32]*LifetimeStats),
	}
}

// Register creates lifetime stats for a new organism.
func (lt *LifetimeTracker) Register(id uint32, bornTick int64, generation int, parents [2]uint32) {
	lt.stats[id] = &LifetimeStats{
		BornTick:   bornTick,
		Generation: generation,
		Parents:    parents,
	}
}

// Get returns the lifetime stats for an organism, or nil if not found.
func (lt *LifetimeTracker) Get(id uint32) *LifetimeStats {
	return lt.stats[id]
}

// RecordContact increments the contact count.
func (lt *LifetimeTracker) RecordContact(id uint32) {
	if s := lt.stats[id]; s != nil {
		s.Contacts++
	}
}

// RecordChild increments the child count of a parent.
func (lt *LifetimeTracker) RecordChild(parentID uint32) {
	if s := lt.stats[parentID]; s != nil {
		s.Children++
	}
}

// Count returns the number of tracked organisms.
func (lt *LifetimeTracker) Count() int {
	return len(lt.stats)
}

// MostChildren returns the organism with the most children. Ties go to
// the lower id. ok is false when no organism has children.
func (lt *LifetimeTracker) MostChildren() (id uint32, children int, ok bool) {
	for oid, s := range lt.stats {
		if s.Children == 0 {
			continue
		}
		if s.Children > children || (s.Children == children && oid < id) {
			id, children, ok = oid, s.Children, true
		}
	}
	return id, children, ok
}
