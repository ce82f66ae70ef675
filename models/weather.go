package models

// CourtConditions is the current weather at the venue plus the verdict on
// whether the outdoor courts are playable.
type CourtConditions struct {
	Condition     string  `json:"condition"`
	RainMMPerHour float64 `json:"rain_mm_per_hour"`
	WindKmh       float64 `json:"wind_kmh"`
	CanPlay       bool    `json:"can_play"`
}
