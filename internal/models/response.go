package models

type FlightsMetadata struct {
	TotalGroups      int    `json:"total_groups"`
	TotalFlights     int    `json:"total_flights"`
	GenerationTimeMs int64  `json:"generation_time_ms"`
	CacheHit         bool   `json:"cache_hit"`
	Origin           string `json:"origin"`
	Destination      string `json:"destination"`
	Date             string `json:"date"`
}

type FlightsResponse struct {
	Metadata FlightsMetadata `json:"metadata"`
	Groups   []AirlineGroup  `json:"groups"`
}

type TripResponse struct {
	Trip *TripState `json:"trip"`
}

type LocationsResponse struct {
	Locations []Location `json:"locations"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
