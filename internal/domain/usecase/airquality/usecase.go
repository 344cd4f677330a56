package airquality

import (
	"context"

	"aqi-dashboard/internal/domain/entity"
	"aqi-dashboard/internal/domain/model"
)

type UseCase interface {
	// GetDashboard returns the current reading table. The cached snapshot is
	// served while it is younger than the freshness window; forceRefresh
	// bypasses the check and always runs a fetch pass.
	GetDashboard(ctx context.Context, forceRefresh bool) (*model.DashboardSnapshot, error)

	// RefreshDashboard runs a full fetch-and-normalize pass over the roster
	// and stores the resulting snapshot.
	RefreshDashboard(ctx context.Context) (*model.DashboardSnapshot, error)

	// Cities returns the configured roster in display order.
	Cities() []entity.City
}
