package external

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FeedEnvelope represents the top-level WAQI feed response. Data is raw
// because the API reuses the field: an object on success, an error string on
// failure (e.g. "Invalid key").
type FeedEnvelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// FeedData represents the subset of the WAQI feed payload that is consumed.
// AQI is raw because stations without a current index report it as the
// string "-" instead of a number.
type FeedData struct {
	AQI               json.RawMessage `json:"aqi"`
	IDX               int             `json:"idx"`
	DominantPollutant string          `json:"dominentpol"`
	City              FeedCity        `json:"city"`
	Time              FeedTime        `json:"time"`
}

// AQIValue parses the AQI field, returning false when the station reports no
// usable index.
func (d *FeedData) AQIValue() (int, bool) {
	raw := strings.Trim(strings.TrimSpace(string(d.AQI)), `"`)
	if raw == "" || raw == "-" {
		return 0, false
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return int(value), true
}

// FeedCity represents the reporting station of a feed.
type FeedCity struct {
	Name string    `json:"name"`
	Geo  []float64 `json:"geo"`
}

// FeedTime represents the measurement timestamp of a feed.
type FeedTime struct {
	S  string `json:"s"`
	TZ string `json:"tz"`
}
