package health

import (
	"aqi-dashboard/internal/domain/gateway/cache"
	"aqi-dashboard/internal/domain/model"
)

type healthUseCase struct {
	store cache.SnapshotStore
}

func NewHealthUseCase(store cache.SnapshotStore) UseCase {
	return &healthUseCase{
		store: store,
	}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	cacheHealth := useCase.store.Health()

	overallStatus := model.StatusUp
	if cacheHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status: overallStatus,
		Cache:  cacheHealth,
	}
}
