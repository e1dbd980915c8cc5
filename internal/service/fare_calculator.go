package service

import (
	"math"
	"sort"

	"fare-compare-api/internal/models"
)

// DefaultProviders returns the fare table tuned for Bengaluru local mobility.
func DefaultProviders() []models.Provider {
	return []models.Provider{
		{Key: "ola_auto", Label: "Ola (Auto)", BaseFee: 30, PerKmRate: 12.0, PerMinRate: 0.5},
		{Key: "uber_auto", Label: "Uber (Auto)", BaseFee: 35, PerKmRate: 11.0, PerMinRate: 0.6},
		{Key: "rapido_bike", Label: "Rapido (Bike)", BaseFee: 20, PerKmRate: 9.0, PerMinRate: 0.4},
		{Key: "nammayatri_auto", Label: "Namma Yatri (Auto)", BaseFee: 25, PerKmRate: 10.0, PerMinRate: 0.4},
	}
}

// FareCalculator prices a trip for every configured provider.
type FareCalculator struct {
	providers []models.Provider
}

func NewFareCalculator(providers []models.Provider) *FareCalculator {
	return &FareCalculator{providers: append([]models.Provider(nil), providers...)}
}

// ComputeFares returns one quote per provider, cheapest first. Equal prices are ordered by key.
func (c *FareCalculator) ComputeFares(distanceKm, durationMin float64) []models.FareQuote {
	fares := make([]models.FareQuote, 0, len(c.providers))
	for _, p := range c.providers {
		fares = append(fares, models.FareQuote{
			Key:   p.Key,
			Label: p.Label,
			Price: price(p.BaseFee + p.PerKmRate*distanceKm + p.PerMinRate*durationMin),
		})
	}

	sort.Slice(fares, func(i, j int) bool {
		if fares[i].Price != fares[j].Price {
			return fares[i].Price < fares[j].Price
		}
		return fares[i].Key < fares[j].Key
	})
	return fares
}

// price rounds half away from zero and floors at 0.
func price(amount float64) int64 {
	rounded := math.Round(amount)
	if math.IsNaN(rounded) || rounded < 0 {
		return 0
	}
	if rounded >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(rounded)
}
