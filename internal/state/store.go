package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/astrodash/internal/almanac"
)

// Forecast is the enriched result of one completed fetch.
type Forecast struct {
	Days     []almanac.EnrichedDay
	Summary  almanac.Summary
	CityName string
}

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Forecast
	Loaded    bool // a fetch completed, successfully or not
	LastError error
	FetchedAt time.Time
}

// Failed reports whether the completed fetch produced an error.
func (s Snapshot) Failed() bool {
	return s.Loaded && s.LastError != nil
}

// Store coordinates the loader goroutine and the UI.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	closed   bool
}

// Update records a completed fetch. When err is non-nil the previous data is
// kept and the error is recorded. Updates after Close are dropped and Update
// returns false.
func (s *Store) Update(f *Forecast, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}

	s.snapshot.Loaded = true
	s.snapshot.FetchedAt = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		return true
	}

	if f != nil {
		s.snapshot.Forecast = Forecast{
			Days:     cloneDays(f.Days),
			Summary:  f.Summary,
			CityName: f.CityName,
		}
	}
	s.snapshot.LastError = nil
	return true
}

// Close marks the owning component as torn down.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}


// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Days = cloneDays(s.snapshot.Days)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneDays(days []almanac.EnrichedDay) []almanac.EnrichedDay {
	if len(days) == 0 {
		return nil
	}
	dup := make([]almanac.EnrichedDay, len(days))
	copy(dup, days)
	return dup
}
