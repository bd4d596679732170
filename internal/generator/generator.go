package generator

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"

	"github.com/jfcamacho/vuelacol/internal/catalog"
	"github.com/jfcamacho/vuelacol/internal/models"
)

const (
	dayStartMinute = 5 * 60  // earliest departure 05:00
	dayEndMinute   = 21 * 60 // latest departure 21:00

	directProbability = 0.7
	priceStepCOP      = 1000
)

// Tier markups over the basic fare, in FareTierKeys order.
var tierMarkups = []float64{1.0, 1.15, 1.35, 1.65}

// Generate synthesizes the fare grid for one route and date: one group per
// roster carrier, each with 2-4 priced flights. The output is deterministic
// for a given (origin, destination, date) triple; the results table, the
// return-leg page and back navigation all rely on re-invocations agreeing.
//
// Inputs are not validated here. Missing inputs yield an empty result so
// callers can render a "no data" state instead of failing.
func Generate(origin, destination, date string) []models.AirlineGroup {
	if origin == "" || destination == "" || date == "" {
		return nil
	}

	origin = strings.ToUpper(origin)
	destination = strings.ToUpper(destination)

	rng := rand.New(rand.NewSource(routeSeed(origin, destination, date)))

	carriers := catalog.Carriers()
	groups := make([]models.AirlineGroup, 0, len(carriers))

	nextID := 1
	for _, c := range carriers {
		count := 2 + rng.Intn(3)
		flights := make([]models.FlightOption, 0, count)

		// Each carrier gets its own fallback so unknown routes still
		// differ per airline.
		baseline := baselineFor(origin, destination, 40+rng.Intn(41))
		slot := (dayEndMinute - dayStartMinute) / count

		for i := 0; i < count; i++ {
			departure := dayStartMinute + i*slot + rng.Intn(slot)

			duration := baseline + rng.Intn(21) - 10
			direct := rng.Float64() < directProbability
			if !direct {
				duration += 45 + rng.Intn(46)
			}

			flights = append(flights, models.FlightOption{
				ID:            nextID,
				FlightNumber:  fmt.Sprintf("%s %d", c.Code, 1000+rng.Intn(9000)),
				DepartureTime: clockTime(departure),
				ArrivalTime:   clockTime(departure + duration),
				Duration:      toDuration(duration),
				Direct:        direct,
				Prices:        tierPrices(rng, duration, direct, len(c.FareTypes)),
			})
			nextID++
		}

		groups = append(groups, models.AirlineGroup{
			Name:        c.Name,
			Code:        c.Code,
			Logo:        c.Logo,
			BgColor:     c.BgColor,
			BorderColor: c.BorderColor,
			FareTypes:   c.FareTypes,
			Flights:     flights,
		})
	}

	return groups
}

// routeSeed hashes the triple so output is stable per route+date but varies
// across routes and dates.
func routeSeed(origin, destination, date string) int64 {
	h := fnv.New64a()
	h.Write([]byte(origin))
	h.Write([]byte{'|'})
	h.Write([]byte(destination))
	h.Write([]byte{'|'})
	h.Write([]byte(date))
	return int64(h.Sum64())
}

// tierPrices derives the basic fare from duration and directness, then applies
// fixed markups per tier. Prices never decrease from one tier to the next.
func tierPrices(rng *rand.Rand, duration int, direct bool, tiers int) map[string]int {
	base := 95000 + duration*1400
	if !direct {
		base += 60000
	}
	base += (rng.Intn(41) - 20) * priceStepCOP

	if tiers > len(models.FareTierKeys) {
		tiers = len(models.FareTierKeys)
	}

	prices := make(map[string]int, tiers)
	prev := 0
	for i := 0; i < tiers; i++ {
		p := roundToStep(float64(base) * tierMarkups[i])
		if p < prev {
			p = prev
		}
		prices[models.FareTierKeys[i]] = p
		prev = p
	}
	return prices
}

func roundToStep(amount float64) int {
	return int(amount/priceStepCOP+0.5) * priceStepCOP
}

func clockTime(minuteOfDay int) string {
	minuteOfDay %= 24 * 60
	return fmt.Sprintf("%02d:%02d", minuteOfDay/60, minuteOfDay%60)
}

func toDuration(minutes int) models.Duration {
	return models.Duration{
		Hours:        minutes / 60,
		Minutes:      minutes % 60,
		TotalMinutes: minutes,
	}
}
