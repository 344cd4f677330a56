package entity

// SeverityBucket is the health category derived from an AQI value.
type SeverityBucket string

const (
	BucketGood               SeverityBucket = "Good"
	BucketModerate           SeverityBucket = "Moderate"
	BucketUnhealthySensitive SeverityBucket = "Unhealthy for Sensitive Groups"
	BucketUnhealthy          SeverityBucket = "Unhealthy"
	BucketVeryUnhealthy      SeverityBucket = "Very Unhealthy"
	BucketHazardous          SeverityBucket = "Hazardous"
	BucketUnavailable        SeverityBucket = "Unavailable"
)

// bucketColors maps each bucket to its display color.
var bucketColors = map[SeverityBucket]string{
	BucketGood:               "#009966",
	BucketModerate:           "#FFDE33",
	BucketUnhealthySensitive: "#FF9933",
	BucketUnhealthy:          "#CC0033",
	BucketVeryUnhealthy:      "#660099",
	BucketHazardous:          "#7E0023",
	BucketUnavailable:        "#808080",
}

// bucketRanks orders buckets by severity, sentinel lowest.
var bucketRanks = map[SeverityBucket]int{
	BucketUnavailable:        0,
	BucketGood:               1,
	BucketModerate:           2,
	BucketUnhealthySensitive: 3,
	BucketUnhealthy:          4,
	BucketVeryUnhealthy:      5,
	BucketHazardous:          6,
}

// Color returns the display color for the bucket.
func (b SeverityBucket) Color() string {
	if color, ok := bucketColors[b]; ok {
		return color
	}
	return bucketColors[BucketUnavailable]
}

// Rank returns the severity order of the bucket, sentinel lowest.
func (b SeverityBucket) Rank() int {
	return bucketRanks[b]
}

// ClassifyAQI maps an AQI value onto its severity bucket. The partition is the
// standard AQI banding: 0-50, 51-100, 101-150, 151-200, 201-300, >300.
// Negative values classify as Unavailable.
func ClassifyAQI(aqi int) SeverityBucket {
	switch {
	case aqi < 0:
		return BucketUnavailable
	case aqi <= 50:
		return BucketGood
	case aqi <= 100:
		return BucketModerate
	case aqi <= 150:
		return BucketUnhealthySensitive
	case aqi <= 200:
		return BucketUnhealthy
	case aqi <= 300:
		return BucketVeryUnhealthy
	default:
		return BucketHazardous
	}
}

// CityReading is one row of the dashboard table. A refresh always produces one
// reading per roster city; failed fetches become sentinel rows with
// Available=false and the Unavailable bucket.
type CityReading struct {
	City              string         `json:"city"`
	AQI               int            `json:"aqi"`
	Bucket            SeverityBucket `json:"bucket"`
	Color             string         `json:"color"`
	DominantPollutant string         `json:"dominantPollutant,omitempty"`
	Latitude          float64        `json:"latitude"`
	Longitude         float64        `json:"longitude"`
	MeasuredAt        string         `json:"measuredAt,omitempty"`
	FetchedAt         string         `json:"fetchedAt"`
	Available         bool           `json:"available"`
	FailureReason     string         `json:"failureReason,omitempty"`
}

// SentinelReading builds the placeholder row for a city whose fetch failed.
func SentinelReading(city City, fetchedAt string, reason string) CityReading {
	return CityReading{
		City:          city.Name,
		AQI:           -1,
		Bucket:        BucketUnavailable,
		Color:         BucketUnavailable.Color(),
		Latitude:      city.Latitude,
		Longitude:     city.Longitude,
		FetchedAt:     fetchedAt,
		Available:     false,
		FailureReason: reason,
	}
}
