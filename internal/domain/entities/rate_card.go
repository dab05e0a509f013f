package entities

import (
	"math"
	"strings"
)

// ScrapType is a material category accepted for pickup.
type ScrapType string

const (
	ScrapTypePaper   ScrapType = "paper"
	ScrapTypePlastic ScrapType = "plastic"
	ScrapTypeMetal   ScrapType = "metal"
	ScrapTypeGlass   ScrapType = "glass"
	ScrapTypeMixed   ScrapType = "mixed"
)

// TransportBonusPerKg is added to the payout when the customer brings the scrap in.
const TransportBonusPerKg = 1.05

// Rate is a price band in INR per kilogram.
type Rate struct {
	MinPerKg float64 `json:"min_per_kg"`
	MaxPerKg float64 `json:"max_per_kg"`
}

func (r Rate) Midpoint() float64 {
	return (r.MinPerKg + r.MaxPerKg) / 2
}

var rateCard = map[ScrapType]Rate{
	ScrapTypePaper:   {MinPerKg: 9, MaxPerKg: 10},
	ScrapTypePlastic: {MinPerKg: 8, MaxPerKg: 12},
	ScrapTypeMetal:   {MinPerKg: 15, MaxPerKg: 25},
	ScrapTypeGlass:   {MinPerKg: 5, MaxPerKg: 8},
	ScrapTypeMixed:   {MinPerKg: 9.5, MaxPerKg: 9.5},
}

func ParseScrapType(s string) (ScrapType, bool) {
	t := ScrapType(strings.ToLower(strings.TrimSpace(s)))
	_, ok := rateCard[t]
	return t, ok
}

func RateFor(t ScrapType) (Rate, bool) {
	r, ok := rateCard[t]
	return r, ok
}

// RateCard returns a copy of the published rates.
func RateCard() map[ScrapType]Rate {
	out := make(map[ScrapType]Rate, len(rateCard))
	for k, v := range rateCard {
		out[k] = v
	}
	return out
}

// TotalWeight sums item weights, ignoring negative values.
func TotalWeight(items []ScrapItem) float64 {
	total := 0.0
	for _, it := range items {
		if it.Weight > 0 {
			total += it.Weight
		}
	}
	return total
}

// EstimateValue prices items at the midpoint of their band, rounded to paise.
// Unknown types contribute nothing.
func EstimateValue(items []ScrapItem, ownTransport bool) float64 {
	total := 0.0
	for _, it := range items {
		if it.Weight <= 0 {
			continue
		}
		rate, ok := rateCard[it.Type]
		if !ok {
			continue
		}
		perKg := rate.Midpoint()
		if ownTransport {
			perKg += TransportBonusPerKg
		}
		total += perKg * it.Weight
	}
	return math.Round(total*100) / 100
}
