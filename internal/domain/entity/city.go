package entity

// City is one entry of the fixed monitoring roster: a display name, the slug
// used by the WAQI feed endpoint, and static coordinates for map placement
// when the feed does not return its own geolocation.
type City struct {
	Name      string  `json:"name"`
	Slug      string  `json:"slug"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Cities returns the monitored major Indian cities, in display order.
func Cities() []City {
	return []City{
		{Name: "Delhi", Slug: "delhi", Latitude: 28.6139, Longitude: 77.2090},
		{Name: "Mumbai", Slug: "mumbai", Latitude: 19.0760, Longitude: 72.8777},
		{Name: "Kolkata", Slug: "kolkata", Latitude: 22.5726, Longitude: 88.3639},
		{Name: "Chennai", Slug: "chennai", Latitude: 13.0827, Longitude: 80.2707},
		{Name: "Bengaluru", Slug: "bangalore", Latitude: 12.9716, Longitude: 77.5946},
		{Name: "Hyderabad", Slug: "hyderabad", Latitude: 17.3850, Longitude: 78.4867},
		{Name: "Pune", Slug: "pune", Latitude: 18.5204, Longitude: 73.8567},
		{Name: "Ahmedabad", Slug: "ahmedabad", Latitude: 23.0225, Longitude: 72.5714},
		{Name: "Jaipur", Slug: "jaipur", Latitude: 26.9124, Longitude: 75.7873},
		{Name: "Lucknow", Slug: "lucknow", Latitude: 26.8467, Longitude: 80.9462},
		{Name: "Bhopal", Slug: "bhopal", Latitude: 23.2599, Longitude: 77.4126},
		{Name: "Patna", Slug: "patna", Latitude: 25.5941, Longitude: 85.1376},
	}
}
