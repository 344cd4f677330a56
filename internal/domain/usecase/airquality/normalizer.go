package airquality

import (
	"errors"
	"time"

	"aqi-dashboard/internal/domain/entity"
	"aqi-dashboard/internal/domain/gateway/api"
	"aqi-dashboard/internal/domain/model/external"
)

// FetchOutcome is the result of one per-city fetch: either a feed or an error.
type FetchOutcome struct {
	City entity.City
	Feed *external.FeedData
	Err  error
}

// BuildTable converts per-city fetch outcomes into the ordered reading table.
// Pure: one row per outcome, input order preserved, failed outcomes become
// sentinel rows, identical input always yields an identical table.
func BuildTable(outcomes []FetchOutcome, fetchedAt time.Time) []entity.CityReading {
	readings := make([]entity.CityReading, 0, len(outcomes))
	stamp := fetchedAt.Format(time.RFC3339)

	for _, outcome := range outcomes {
		readings = append(readings, buildReading(outcome, stamp))
	}

	return readings
}

func buildReading(outcome FetchOutcome, fetchedAt string) entity.CityReading {
	if outcome.Err != nil {
		return entity.SentinelReading(outcome.City, fetchedAt, failureReason(outcome.Err))
	}

	aqi, ok := outcome.Feed.AQIValue()
	if !ok {
		return entity.SentinelReading(outcome.City, fetchedAt, "station reports no current index")
	}

	bucket := entity.ClassifyAQI(aqi)
	latitude, longitude := coordinates(outcome.City, outcome.Feed)

	return entity.CityReading{
		City:              outcome.City.Name,
		AQI:               aqi,
		Bucket:            bucket,
		Color:             bucket.Color(),
		DominantPollutant: outcome.Feed.DominantPollutant,
		Latitude:          latitude,
		Longitude:         longitude,
		MeasuredAt:        outcome.Feed.Time.S,
		FetchedAt:         fetchedAt,
		Available:         true,
	}
}

// coordinates prefers the feed's station geolocation, falling back to the
// static roster coordinates.
func coordinates(city entity.City, feed *external.FeedData) (float64, float64) {
	if len(feed.City.Geo) >= 2 {
		return feed.City.Geo[0], feed.City.Geo[1]
	}
	return city.Latitude, city.Longitude
}

// failureReason renders a fetch error for display on the dashboard.
func failureReason(err error) string {
	switch {
	case errors.Is(err, api.ErrTokenMissing):
		return "API token not configured"
	case errors.Is(err, api.ErrUnauthorized):
		return "API token rejected"
	case errors.Is(err, api.ErrMalformedResponse):
		return "unexpected API response"
	default:
		return "network error: " + err.Error()
	}
}
