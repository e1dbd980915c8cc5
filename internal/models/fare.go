package models

// FareRequest is the body accepted by POST /fare. Origin and Destination are either "lat,lng" pairs or free-form addresses.
type FareRequest struct {
	Origin      string `json:"origin" example:"12.9352,77.6245"`
	Destination string `json:"destination" example:"12.9716,77.5946"`
}

// DistanceResult is the travel distance and duration between an origin and a destination.
type DistanceResult struct {
	DistanceKm  float64 `json:"distance_km"`
	DurationMin float64 `json:"duration_min"`
}

// Provider holds the pricing coefficients of one ride offering.
type Provider struct {
	Key        string  `json:"key"`
	Label      string  `json:"label"`
	BaseFee    float64 `json:"base_fee"`
	PerKmRate  float64 `json:"per_km_rate"`
	PerMinRate float64 `json:"per_min_rate"`
}

// FareQuote is one provider's estimated price.
type FareQuote struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Price int64  `json:"price"`
}

// Meta summarises the trip a comparison was computed for.
type Meta struct {
	DistanceKm  float64 `json:"distance_km"`
	DurationMin int64   `json:"duration_min"`
}

// Links maps a provider group to its continuation URL.
type Links struct {
	Ola    string `json:"ola"`
	Uber   string `json:"uber"`
	Rapido string `json:"rapido"`
	Namma  string `json:"namma"`
}

// ComparisonResult is the composite response of a fare comparison.
type ComparisonResult struct {
	Meta  Meta        `json:"meta"`
	Fares []FareQuote `json:"fares"`
	Links Links       `json:"links"`
}
