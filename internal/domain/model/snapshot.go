package model

import (
	"time"

	"aqi-dashboard/internal/domain/entity"
)

// DashboardSnapshot is the immutable result of one refresh pass: the full
// table of readings (one row per roster city), the per-city failure notes and
// the time the pass ran. A new snapshot replaces the previous one wholesale.
type DashboardSnapshot struct {
	Readings  []entity.CityReading `json:"readings"`
	Warnings  []string             `json:"warnings,omitempty"`
	FetchedAt time.Time            `json:"fetchedAt"`
}

// Available counts the non-sentinel rows of the snapshot.
func (s *DashboardSnapshot) Available() int {
	count := 0
	for _, reading := range s.Readings {
		if reading.Available {
			count++
		}
	}
	return count
}

// Unavailable counts the sentinel rows of the snapshot.
func (s *DashboardSnapshot) Unavailable() int {
	return len(s.Readings) - s.Available()
}

// Age returns how old the snapshot is at the given instant.
func (s *DashboardSnapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.FetchedAt)
}
