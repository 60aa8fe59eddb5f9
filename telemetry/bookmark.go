package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkFirstBirth      BookmarkType = "first_birth"
	BookmarkBirthBurst      BookmarkType = "birth_burst"
	BookmarkCapacityReached BookmarkType = "capacity_reached"
	BookmarkLengthConverged BookmarkType = "length_converged"
	BookmarkStagnation      BookmarkType = "stagnation"
)

// stagnationWindows is how many birthless windows in a row count as stagnation.
const stagnationWindows = 5

// Bookmark marks a notable window in a run.
type Bookmark struct {
	Type        BookmarkType `csv:"type" json:"type"`
	Tick        int64        `csv:"tick" json:"tick"`
	Description string       `csv:"description" json:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector detects notable moments from consecutive WindowStats.
type BookmarkDetector struct {
	capacity int

	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	sawBirth         bool
	atCapacity       bool
	lengthConverged  bool
	birthlessWindows int
}

// NewBookmarkDetector creates a detector for a population capped at
// capacity, averaging over historySize windows.
func NewBookmarkDetector(capacity, historySize int) *BookmarkDetector {
	if historySize < 3 {
		historySize = 3
	}
	return &BookmarkDetector{
		capacity:    capacity,
		history:     make([]WindowStats, historySize),
		historySize: historySize,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark
	for _, check := range []func(WindowStats) *Bookmark{
		bd.checkFirstBirth,
		bd.checkBirthBurst,
		bd.checkCapacity,
		bd.checkLengthConverged,
		bd.checkStagnation,
	} {
		if b := check(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
	}

	bd.addToHistory(stats)
	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []WindowStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

func (bd *BookmarkDetector) checkFirstBirth(stats WindowStats) *Bookmark {
	if bd.sawBirth || stats.Births == 0 {
		return nil
	}
	bd.sawBirth = true
	return &Bookmark{
		Type:        BookmarkFirstBirth,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("First %d birth(s) after %d contacts", stats.Births, stats.Contacts),
	}
}

func (bd *BookmarkDetector) checkBirthBurst(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total int
	for _, h := range history {
		total += h.Births
	}
	avg := float64(total) / float64(len(history))
	if avg == 0 {
		return nil
	}

	if float64(stats.Births) > avg*2.0 && stats.Births >= 3 {
		return &Bookmark{
			Type:        BookmarkBirthBurst,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("%d births is %.1fx average (%.2f)", stats.Births, float64(stats.Births)/avg, avg),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkCapacity(stats WindowStats) *Bookmark {
	full := bd.capacity > 0 && stats.Population >= bd.capacity
	if full == bd.atCapacity {
		return nil
	}
	bd.atCapacity = full
	if !full {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkCapacityReached,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("Population reached capacity %d", bd.capacity),
	}
}

// checkLengthConverged fires when every organism shares one genome
// length, so any contact can reproduce.
func (bd *BookmarkDetector) checkLengthConverged(stats WindowStats) *Bookmark {
	converged := stats.Population >= 2 && stats.GenomeLenStd == 0
	if converged == bd.lengthConverged {
		return nil
	}
	bd.lengthConverged = converged
	if !converged {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkLengthConverged,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("All %d organisms have genome length %.0f", stats.Population, stats.GenomeLenMean),
	}
}

func (bd *BookmarkDetector) checkStagnation(stats WindowStats) *Bookmark {
	if stats.Births > 0 || stats.Population < 2 {
		bd.birthlessWindows = 0
		return nil
	}
	bd.birthlessWindows++
	if bd.birthlessWindows == stagnationWindows { // trigger exactly once per streak
		return &Bookmark{
			Type:        BookmarkStagnation,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("No births for %d windows (%d incompatible contacts this window)", stagnationWindows, stats.Incompatible),
		}
	}
	return nil
}
