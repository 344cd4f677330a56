package api

import (
	"encoding/json"
	"fmt"
	"strings"

	"aqi-dashboard/internal/domain/model/external"
	"aqi-dashboard/pkg/http"
)

// aqiGatewayImpl implements the AQIGateway interface against the WAQI feed API
type aqiGatewayImpl struct {
	httpClient *http.Client
	token      string
}

// NewAQIGateway creates a new instance of AQIGateway with HTTP client
func NewAQIGateway(baseUrl string, token string, clientOptions http.ClientOptions) AQIGateway {
	httpClient := http.NewHttpClient(baseUrl, clientOptions)

	return &aqiGatewayImpl{
		httpClient: httpClient,
		token:      token,
	}
}

// GetCityFeed fetches the current AQI feed for a city slug
func (g *aqiGatewayImpl) GetCityFeed(citySlug string) (*external.FeedData, error) {
	if g.token == "" {
		return nil, ErrTokenMissing
	}

	path := fmt.Sprintf("/feed/%s/", citySlug)

	successResp, _, _, err := g.httpClient.Request().
		WithMethod(http.GET).
		WithPath(path).
		WithQueryParams(map[string]string{"token": g.token}).
		WithSuccessResp(&external.FeedEnvelope{}).
		Execute()

	if err != nil {
		return nil, err
	}

	envelope := successResp.(*external.FeedEnvelope)
	if envelope.Status != "ok" {
		return nil, g.classifyFeedError(envelope)
	}

	var feed external.FeedData
	if err := json.Unmarshal(envelope.Data, &feed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return &feed, nil
}

// classifyFeedError maps a non-ok envelope onto the failure taxonomy. The API
// reports errors as a string in the data field, e.g. "Invalid key".
func (g *aqiGatewayImpl) classifyFeedError(envelope *external.FeedEnvelope) error {
	var message string
	if err := json.Unmarshal(envelope.Data, &message); err != nil {
		return fmt.Errorf("%w: status %q", ErrMalformedResponse, envelope.Status)
	}

	if strings.Contains(strings.ToLower(message), "invalid key") {
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	}

	return fmt.Errorf("aqi api error: %s", message)
}
