// Package state persists coverage snapshots to SQLite so the progress
// of a binding layer can be tracked over time.
package state

import (
	"time"
)

// SectionCount is the per-section slice of one snapshot.
type SectionCount struct {
	Section  string `json:"section"`
	Bound    int    `json:"bound"`
	Internal int    `json:"internal"`
	Total    int    `json:"total"`
}

// Snapshot is one recorded coverage measurement.
type Snapshot struct {
	ID      string    `json:"id"`
	TakenAt time.Time `json:"taken_at"`

	API        string `json:"api,omitempty"`
	APIVersion string `json:"api_version,omitempty"`
	Binding    string `json:"binding,omitempty"`

	Bound    int `json:"bound"`
	Internal int `json:"internal"`
	Total    int `json:"total"`

	Sections []SectionCount `json:"sections,omitempty"`
}

// Percent returns the snapshot's total coverage percentage.
func (s *Snapshot) Percent() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Bound) / float64(s.Total) * 100
}

// Store records and retrieves coverage snapshots.
type Store interface {
	// Save persists a snapshot. The ID and TakenAt fields are assigned
	// by the store.
	Save(snap *Snapshot) error

	// List returns snapshots in reverse chronological order, newest
	// first. A limit of 0 returns all of them.
	List(limit int) ([]*Snapshot, error)

	// Get returns one snapshot with its section counts, or nil when
	// the ID is unknown.
	Get(id string) (*Snapshot, error)

	Close() error
}
