package health

import (
	"aqi-dashboard/internal/domain/model"
)

type UseCase interface {
	// CheckHealth reports the aggregated application health
	CheckHealth() model.HealthResponse
}
