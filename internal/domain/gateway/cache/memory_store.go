package cache

import (
	"context"
	"strconv"
	"sync"
	"time"

	"aqi-dashboard/internal/domain/model"
)

// memorySnapshotStore keeps the latest snapshot in process memory. Snapshots
// are immutable once built, so a single pointer swap under a mutex is enough.
type memorySnapshotStore struct {
	mu       sync.RWMutex
	snapshot *model.DashboardSnapshot
	storedAt time.Time
}

// NewMemorySnapshotStore creates an in-memory snapshot store.
func NewMemorySnapshotStore() SnapshotStore {
	return &memorySnapshotStore{}
}

func (s *memorySnapshotStore) Get(ctx context.Context) (*model.DashboardSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot, nil
}

func (s *memorySnapshotStore) Put(ctx context.Context, snapshot *model.DashboardSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snapshot
	s.storedAt = time.Now()
	return nil
}

func (s *memorySnapshotStore) Health() model.ComponentHealthStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	details := map[string]string{
		"backend":      "memory",
		"has_snapshot": strconv.FormatBool(s.snapshot != nil),
	}
	if s.snapshot != nil {
		details["stored_at"] = s.storedAt.Format(time.RFC3339)
		details["rows"] = strconv.Itoa(len(s.snapshot.Readings))
	}

	return model.ComponentHealthStatus{
		Status:  model.StatusUp,
		Details: details,
	}
}
