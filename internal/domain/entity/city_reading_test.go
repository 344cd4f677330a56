package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyAQIBands(t *testing.T) {
	cases := []struct {
		aqi    int
		bucket SeverityBucket
	}{
		{0, BucketGood},
		{50, BucketGood},
		{51, BucketModerate},
		{100, BucketModerate},
		{101, BucketUnhealthySensitive},
		{150, BucketUnhealthySensitive},
		{151, BucketUnhealthy},
		{200, BucketUnhealthy},
		{201, BucketVeryUnhealthy},
		{250, BucketVeryUnhealthy},
		{300, BucketVeryUnhealthy},
		{301, BucketHazardous},
		{999, BucketHazardous},
		{-1, BucketUnavailable},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.bucket, ClassifyAQI(tc.aqi), "aqi %d", tc.aqi)
	}
}

func TestClassifyAQIIsMonotonic(t *testing.T) {
	previous := ClassifyAQI(0).Rank()
	for aqi := 1; aqi <= 500; aqi++ {
		rank := ClassifyAQI(aqi).Rank()
		assert.GreaterOrEqual(t, rank, previous, "severity decreased at aqi %d", aqi)
		previous = rank
	}
}

func TestBucketColors(t *testing.T) {
	assert.Equal(t, "#009966", BucketGood.Color())
	assert.Equal(t, "#7E0023", BucketHazardous.Color())
	assert.Equal(t, "#808080", BucketUnavailable.Color())
	// Unknown buckets fall back to the sentinel color.
	assert.Equal(t, "#808080", SeverityBucket("bogus").Color())
}

func TestSentinelReading(t *testing.T) {
	city := City{Name: "Mumbai", Slug: "mumbai", Latitude: 19.0760, Longitude: 72.8777}

	reading := SentinelReading(city, "2026-08-29T12:00:00Z", "network error")

	assert.False(t, reading.Available)
	assert.Equal(t, "Mumbai", reading.City)
	assert.Equal(t, BucketUnavailable, reading.Bucket)
	assert.Equal(t, city.Latitude, reading.Latitude)
	assert.Equal(t, city.Longitude, reading.Longitude)
	assert.Equal(t, "network error", reading.FailureReason)
}

func TestCitiesRosterIsStable(t *testing.T) {
	cities := Cities()

	assert.Len(t, cities, 12)
	assert.Equal(t, "Delhi", cities[0].Name)
	assert.Equal(t, "Patna", cities[len(cities)-1].Name)

	seen := make(map[string]bool)
	for _, city := range cities {
		assert.NotEmpty(t, city.Slug)
		assert.False(t, seen[city.Slug], "duplicate slug %s", city.Slug)
		seen[city.Slug] = true
	}
}
