package ranking

import (
	"math"

	"github.com/jfcamacho/vuelacol/internal/models"
)

const (
	PriceWeight    = 0.5
	DurationWeight = 0.3
	StopsWeight    = 0.2
)

// ScoreGroups annotates every flight option with a best-value score computed
// against the whole result set. Lower score = better value. The basic tier
// fare is the comparable price, since it is the one the grid sorts on.
func ScoreGroups(groups []models.AirlineGroup) []models.AirlineGroup {
	maxPrice := 0.0
	maxDuration := 0.0
	for _, g := range groups {
		for _, f := range g.Flights {
			if p := float64(basicPrice(f)); p > maxPrice {
				maxPrice = p
			}
			if d := float64(f.Duration.TotalMinutes); d > maxDuration {
				maxDuration = d
			}
		}
	}

	for gi := range groups {
		for fi := range groups[gi].Flights {
			f := &groups[gi].Flights[fi]
			f.BestValueScore = score(*f, maxPrice, maxDuration)
		}
	}

	return groups
}

func score(f models.FlightOption, maxPrice, maxDuration float64) float64 {
	priceScore := 0.0
	if maxPrice > 0 {
		priceScore = (float64(basicPrice(f)) / maxPrice) * 100
	}

	durationScore := 0.0
	if maxDuration > 0 {
		durationScore = (float64(f.Duration.TotalMinutes) / maxDuration) * 100
	}

	stopsScore := 0.0
	if !f.Direct {
		stopsScore = 15
	}

	s := (priceScore * PriceWeight) + (durationScore * DurationWeight) + (stopsScore * StopsWeight)
	return math.Round(s*100) / 100
}

func basicPrice(f models.FlightOption) int {
	return f.Prices[models.TierBasic]
}
