package cache

import (
	"context"

	"aqi-dashboard/internal/domain/model"
)

// SnapshotStore holds the most recent dashboard snapshot. Freshness is decided
// by the caller from the snapshot's own fetch timestamp, so the store stays a
// dumb latest-value holder.
type SnapshotStore interface {
	// Get returns the stored snapshot, or nil when nothing is cached.
	Get(ctx context.Context) (*model.DashboardSnapshot, error)

	// Put replaces the stored snapshot.
	Put(ctx context.Context, snapshot *model.DashboardSnapshot) error

	// Health reports the status of the cache backend.
	Health() model.ComponentHealthStatus
}
