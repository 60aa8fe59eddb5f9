package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SnapshotVersion is incremented when the format changes.
const SnapshotVersion = 1

// Snapshot holds the population state at one tick. Together with the seed
// and field size it is enough to reseed a run with the same genomes.
type Snapshot struct {
	Version   int   `json:"version"`
	Seed      int64 `json:"seed"`
	FieldSize int   `json:"field_size"`

	Tick int64 `json:"tick"`

	Organisms []OrganismState `json:"organisms"`

	Bookmark *Bookmark `json:"bookmark,omitempty"`
}

// OrganismState holds one organism's state.
type OrganismState struct {
	ID      uint32  `json:"id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Heading float64 `json:"heading"`

	Genome        string `json:"genome"`
	Generation    int    `json:"generation"`
	ReproCooldown int32  `json:"repro_cooldown"`

	Lifetime *LifetimeStatsJSON `json:"lifetime,omitempty"`
}

// LifetimeStatsJSON is the JSON-serializable form of LifetimeStats.
type LifetimeStatsJSON struct {
	BornTick   int64     `json:"born_tick"`
	Generation int       `json:"generation"`
	Parents    [2]uint32 `json:"parents"`
	Contacts   int       `json:"contacts"`
	Children   int       `json:"children"`
}

// ToJSON converts LifetimeStats to its JSON form.
func (ls *LifetimeStats) ToJSON() *LifetimeStatsJSON {
	if ls == nil {
		return nil
	}
	return &LifetimeStatsJSON{
		BornTick:   ls.BornTick,
		Generation: ls.Generation,
		Parents:    ls.Parents,
		Contacts:   ls.Contacts,
		Children:   ls.Children,
	}
}

// FromJSON converts the JSON form back to LifetimeStats.
func (lsj *LifetimeStatsJSON) FromJSON() *LifetimeStats {
	if lsj == nil {
		return nil
	}
	return &LifetimeStats{
		BornTick:   lsj.BornTick,
		Generation: lsj.Generation,
		Parents:    lsj.Parents,
		Contacts:   lsj.Contacts,
		Children:   lsj.Children,
	}
}

// SaveSnapshot writes a snapshot to disk.
// Returns the filepath where it was saved.
func SaveSnapshot(snapshot *Snapshot, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	name := fmt.Sprintf("snapshot_%d", snapshot.Tick)
	if snapshot.Bookmark != nil {
		sanitized := strings.ReplaceAll(string(snapshot.Bookmark.Type), " ", "_")
		name = fmt.Sprintf("snapshot_%d_%s", snapshot.Tick, sanitized)
	}
	path := filepath.Join(dir, name+".json")

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	return path, nil
}

// LoadSnapshot reads a snapshot from disk.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	if snapshot.Version != SnapshotVersion {
		return nil, fmt.Errorf("snapshot version %d, want %d", snapshot.Version, SnapshotVersion)
	}
	return &snapshot, nil
}

// Genomes returns the genome strings of every organism in the snapshot.
func (s *Snapshot) Genomes() []string {
	out := make([]string, len(s.Organisms))
	for i, o := range s.Organisms {
		out[i] = o.Genome
	}
	return out
}
