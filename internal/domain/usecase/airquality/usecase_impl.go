package airquality

import (
	"context"
	"fmt"
	"time"

	"aqi-dashboard/internal/domain/entity"
	"aqi-dashboard/internal/domain/gateway/api"
	"aqi-dashboard/internal/domain/gateway/cache"
	"aqi-dashboard/internal/domain/model"
	"aqi-dashboard/pkg/log"
	"aqi-dashboard/pkg/msg"
)

type airQualityUseCase struct {
	cities     []entity.City
	freshness  time.Duration
	apiGateway api.AQIGateway
	store      cache.SnapshotStore
	now        func() time.Time
}

// NewAirQualityUseCase wires the fetch-normalize-cache flow for the given
// roster. The freshness window decides how long a stored snapshot is served
// before the next render triggers a fetch pass.
func NewAirQualityUseCase(cities []entity.City, freshness time.Duration, apiGateway api.AQIGateway, store cache.SnapshotStore) UseCase {
	return &airQualityUseCase{
		cities:     cities,
		freshness:  freshness,
		apiGateway: apiGateway,
		store:      store,
		now:        time.Now,
	}
}

// Cities returns the configured roster in display order
func (uc *airQualityUseCase) Cities() []entity.City {
	return uc.cities
}

// GetDashboard serves the cached snapshot while fresh, refreshing otherwise.
// The two states are explicit: Fresh (age below the window) serves the cache,
// Stale (no snapshot, or age at/over the window, or forced) re-fetches.
func (uc *airQualityUseCase) GetDashboard(ctx context.Context, forceRefresh bool) (*model.DashboardSnapshot, error) {
	if !forceRefresh {
		snapshot, err := uc.store.Get(ctx)
		if err != nil {
			// A broken cache backend degrades to a refresh, not a failure.
			log.Warnf("Failed to read cached snapshot, refreshing instead: %v", err)
		} else if snapshot != nil && snapshot.Age(uc.now()) < uc.freshness {
			log.Debugf("%s", msg.GetMessage("dashboard.cache.hit", snapshot.Age(uc.now()).Round(time.Second).String()))
			return snapshot, nil
		}
	}

	return uc.RefreshDashboard(ctx)
}

// RefreshDashboard runs the sequential per-city fetch pass, normalizes the
// outcomes into a fresh table and stores it. Individual fetch failures become
// sentinel rows; nothing here is fatal.
func (uc *airQualityUseCase) RefreshDashboard(ctx context.Context) (*model.DashboardSnapshot, error) {
	log.Infof("%s", msg.GetMessage("dashboard.refresh.start", len(uc.cities)))

	fetchedAt := uc.now()
	outcomes := make([]FetchOutcome, 0, len(uc.cities))
	var warnings []string

	for _, city := range uc.cities {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("refresh cancelled: %w", err)
		}

		feed, err := uc.apiGateway.GetCityFeed(city.Slug)
		if err != nil {
			warning := msg.GetMessage("dashboard.refresh.city-failed", city.Name, failureReason(err))
			log.Warnf("%s", warning)
			warnings = append(warnings, warning)
		}
		outcomes = append(outcomes, FetchOutcome{City: city, Feed: feed, Err: err})
	}

	snapshot := &model.DashboardSnapshot{
		Readings:  BuildTable(outcomes, fetchedAt),
		Warnings:  warnings,
		FetchedAt: fetchedAt,
	}

	if err := uc.store.Put(ctx, snapshot); err != nil {
		// Serve the fresh table anyway; the next render just pays the fetch again.
		log.Warnf("%s", msg.GetMessage("dashboard.cache.store-failed", err.Error()))
	}

	log.Infof("%s", msg.GetMessage("dashboard.refresh.end", snapshot.Available(), snapshot.Unavailable()))
	return snapshot, nil
}
