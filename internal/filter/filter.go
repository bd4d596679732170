package filter

import (
	"sort"

	"github.com/jfcamacho/vuelacol/internal/models"
	"github.com/jfcamacho/vuelacol/internal/ranking"
)

// Options are the fare-grid refinements ("Más económicos", filters) applied
// on top of the generated catalog. The catalog itself is never mutated; Apply
// works on a copy so memoized results stay intact.
type Options struct {
	MaxPrice   int    // 0 means no cap; compared against the basic tier fare
	DirectOnly bool
	Sort       string // "cheapest", "duration" or "" for generated order
}

const (
	SortCheapest = "cheapest"
	SortDuration = "duration"
)

func Apply(groups []models.AirlineGroup, opts Options) []models.AirlineGroup {
	out := cloneAndFilter(groups, opts)
	out = ranking.ScoreGroups(out)

	switch opts.Sort {
	case SortCheapest:
		for i := range out {
			flights := out[i].Flights
			sort.SliceStable(flights, func(a, b int) bool {
				return flights[a].Prices[models.TierBasic] < flights[b].Prices[models.TierBasic]
			})
		}
	case SortDuration:
		for i := range out {
			flights := out[i].Flights
			sort.SliceStable(flights, func(a, b int) bool {
				return flights[a].Duration.TotalMinutes < flights[b].Duration.TotalMinutes
			})
		}
	}

	return out
}

func cloneAndFilter(groups []models.AirlineGroup, opts Options) []models.AirlineGroup {
	out := make([]models.AirlineGroup, 0, len(groups))

	for _, g := range groups {
		kept := make([]models.FlightOption, 0, len(g.Flights))
		for _, f := range g.Flights {
			if opts.DirectOnly && !f.Direct {
				continue
			}
			if opts.MaxPrice > 0 && f.Prices[models.TierBasic] > opts.MaxPrice {
				continue
			}
			kept = append(kept, f)
		}

		if len(kept) == 0 {
			continue
		}

		g.Flights = kept
		out = append(out, g)
	}

	return out
}
