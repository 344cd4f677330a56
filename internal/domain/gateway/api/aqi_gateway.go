package api

import (
	"errors"

	"aqi-dashboard/internal/domain/model/external"
)

// Fetch failure taxonomy. Callers classify with errors.Is; anything else is a
// plain network/transport failure.
var (
	// ErrTokenMissing means no API credential was configured.
	ErrTokenMissing = errors.New("aqi api token is not configured")
	// ErrUnauthorized means the upstream rejected the credential.
	ErrUnauthorized = errors.New("aqi api rejected the token")
	// ErrMalformedResponse means the upstream answered with an unexpected shape.
	ErrMalformedResponse = errors.New("aqi api returned a malformed response")
)

// AQIGateway defines the interface for air-quality external API calls
type AQIGateway interface {
	// GetCityFeed fetches the current AQI feed for a city slug.
	// Performs a single upstream request; retries are not attempted.
	GetCityFeed(citySlug string) (*external.FeedData, error)
}
