package airquality

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aqi-dashboard/internal/domain/entity"
	"aqi-dashboard/internal/domain/gateway/cache"
	"aqi-dashboard/internal/domain/model/external"
)

// fakeAQIGateway serves canned per-slug results and counts upstream calls.
type fakeAQIGateway struct {
	aqiBySlug map[string]int
	errBySlug map[string]error
	calls     int
}

func (f *fakeAQIGateway) GetCityFeed(citySlug string) (*external.FeedData, error) {
	f.calls++
	if err, ok := f.errBySlug[citySlug]; ok {
		return nil, err
	}
	raw, _ := json.Marshal(f.aqiBySlug[citySlug])
	return &external.FeedData{AQI: raw}, nil
}

func newTestUseCase(gateway *fakeAQIGateway, freshness time.Duration, now *time.Time) *airQualityUseCase {
	return &airQualityUseCase{
		cities:     []entity.City{delhi, mumbai},
		freshness:  freshness,
		apiGateway: gateway,
		store:      cache.NewMemorySnapshotStore(),
		now:        func() time.Time { return *now },
	}
}

func TestGetDashboardServesCacheWithinFreshnessWindow(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	gateway := &fakeAQIGateway{aqiBySlug: map[string]int{"delhi": 120, "mumbai": 60}}
	uc := newTestUseCase(gateway, 10*time.Minute, &now)

	first, err := uc.GetDashboard(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 2, gateway.calls, "first render pays one fetch pass")

	now = now.Add(5 * time.Minute)
	second, err := uc.GetDashboard(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 2, gateway.calls, "fresh cache must not issue upstream calls")
	assert.Equal(t, first.FetchedAt, second.FetchedAt)
}

func TestGetDashboardRefreshesAfterFreshnessWindow(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	gateway := &fakeAQIGateway{aqiBySlug: map[string]int{"delhi": 120, "mumbai": 60}}
	uc := newTestUseCase(gateway, 10*time.Minute, &now)

	_, err := uc.GetDashboard(context.Background(), false)
	require.NoError(t, err)

	now = now.Add(11 * time.Minute)
	snapshot, err := uc.GetDashboard(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 4, gateway.calls, "stale cache must issue exactly one fetch pass")
	assert.Equal(t, now, snapshot.FetchedAt)
}

func TestGetDashboardForceRefreshBypassesCache(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	gateway := &fakeAQIGateway{aqiBySlug: map[string]int{"delhi": 120, "mumbai": 60}}
	uc := newTestUseCase(gateway, 10*time.Minute, &now)

	_, err := uc.GetDashboard(context.Background(), false)
	require.NoError(t, err)

	now = now.Add(1 * time.Minute)
	_, err = uc.GetDashboard(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, 4, gateway.calls, "manual refresh must bypass the freshness check")
}

func TestRefreshDashboardScenarioDelhiOkMumbaiFailed(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	gateway := &fakeAQIGateway{
		aqiBySlug: map[string]int{"delhi": 250},
		errBySlug: map[string]error{"mumbai": errors.New("connection reset")},
	}
	uc := newTestUseCase(gateway, 10*time.Minute, &now)

	snapshot, err := uc.RefreshDashboard(context.Background())
	require.NoError(t, err)

	require.Len(t, snapshot.Readings, 2)
	assert.Equal(t, "Delhi", snapshot.Readings[0].City)
	assert.Equal(t, entity.BucketVeryUnhealthy, snapshot.Readings[0].Bucket)
	assert.Equal(t, "Mumbai", snapshot.Readings[1].City)
	assert.Equal(t, entity.BucketUnavailable, snapshot.Readings[1].Bucket)
	assert.Len(t, snapshot.Warnings, 1)
}

func TestRefreshDashboardTotalOutageDegradesToAllSentinel(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	gateway := &fakeAQIGateway{
		errBySlug: map[string]error{
			"delhi":  errors.New("no route to host"),
			"mumbai": errors.New("no route to host"),
		},
	}
	uc := newTestUseCase(gateway, 10*time.Minute, &now)

	snapshot, err := uc.RefreshDashboard(context.Background())
	require.NoError(t, err, "a total upstream outage must not become an error")

	require.Len(t, snapshot.Readings, 2)
	assert.Equal(t, 0, snapshot.Available())
	assert.Equal(t, 2, snapshot.Unavailable())
}

func TestRefreshDashboardStoresSnapshotForNextRender(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	gateway := &fakeAQIGateway{aqiBySlug: map[string]int{"delhi": 40, "mumbai": 55}}
	uc := newTestUseCase(gateway, 10*time.Minute, &now)

	refreshed, err := uc.RefreshDashboard(context.Background())
	require.NoError(t, err)

	stored, err := uc.store.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, refreshed.Readings, stored.Readings)
}
