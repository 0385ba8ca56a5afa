package models

// Weather is the request-scoped view model produced by the weather
// enrichment lookup. It is never persisted.
type Weather struct {
	City        string  `json:"city"`
	Temp        float64 `json:"temp"`
	Description string  `json:"desc"`
	Icon        string  `json:"icon"`
	Humidity    int     `json:"humidity"`
	Wind        float64 `json:"wind"`
	FeelsLike   float64 `json:"feels_like"`
}
