package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jfcamacho/vuelacol/internal/filter"
	"github.com/jfcamacho/vuelacol/internal/generator"
	"github.com/jfcamacho/vuelacol/internal/latency"
	"github.com/jfcamacho/vuelacol/internal/middleware"
	"github.com/jfcamacho/vuelacol/internal/models"
	"github.com/jfcamacho/vuelacol/internal/store"
)

// GetFlights serves the outbound fare grid. The generation result is memoized
// in the trip state per route+date; re-rendering the page hits the cache
// instead of regenerating (the generator is deterministic either way, the
// memo only skips the simulated latency).
func (h *Handler) GetFlights(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()
	sid := middleware.SessionID(c)

	trip := h.store.Get(ctx, sid)
	info := trip.SearchInfo
	if info.Origin == nil || info.Destination == nil || info.StartDate == "" {
		return c.JSON(http.StatusOK, emptyFlightsResponse(startTime))
	}

	origin := info.Origin.Code
	destination := info.Destination.Code
	date := info.StartDate

	cacheHit := false
	var groups []models.AirlineGroup

	if cached := trip.GeneratedFlights; cached != nil &&
		cached.Origin == origin && cached.Destination == destination && cached.Date == date {
		cacheHit = true
		groups = cached.Groups
	} else {
		h.store.SetFlag(ctx, sid, store.FlagGeneratingFlights, true)
		waitErr := latency.Wait(ctx, h.generateDelay)
		h.store.SetFlag(context.WithoutCancel(ctx), sid, store.FlagGeneratingFlights, false)
		if waitErr != nil {
			return waitErr
		}

		groups = generator.Generate(origin, destination, date)
		h.store.SetGeneratedFlights(ctx, sid, models.GeneratedCatalog{
			Origin:      origin,
			Destination: destination,
			Date:        date,
			Groups:      groups,
		})
	}

	filtered := filter.Apply(groups, filterOptions(c))

	return c.JSON(http.StatusOK, models.FlightsResponse{
		Metadata: models.FlightsMetadata{
			TotalGroups:      len(filtered),
			TotalFlights:     countFlights(filtered),
			GenerationTimeMs: time.Since(startTime).Milliseconds(),
			CacheHit:         cacheHit,
			Origin:           origin,
			Destination:      destination,
			Date:             date,
		},
		Groups: filtered,
	})
}

// GetReturnFlights serves the return-leg grid: the reversed route on the end
// date. Not memoized; determinism guarantees back navigation sees the same
// grid anyway.
func (h *Handler) GetReturnFlights(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()
	sid := middleware.SessionID(c)

	trip := h.store.Get(ctx, sid)
	info := trip.SearchInfo
	if info.Origin == nil || info.Destination == nil || info.EndDate == "" {
		return c.JSON(http.StatusOK, emptyFlightsResponse(startTime))
	}

	origin := info.Destination.Code
	destination := info.Origin.Code
	date := info.EndDate

	h.store.SetFlag(ctx, sid, store.FlagGeneratingFlights, true)
	waitErr := latency.Wait(ctx, h.generateDelay)
	h.store.SetFlag(context.WithoutCancel(ctx), sid, store.FlagGeneratingFlights, false)
	if waitErr != nil {
		return waitErr
	}

	groups := generator.Generate(origin, destination, date)
	filtered := filter.Apply(groups, filterOptions(c))

	return c.JSON(http.StatusOK, models.FlightsResponse{
		Metadata: models.FlightsMetadata{
			TotalGroups:      len(filtered),
			TotalFlights:     countFlights(filtered),
			GenerationTimeMs: time.Since(startTime).Milliseconds(),
			CacheHit:         false,
			Origin:           origin,
			Destination:      destination,
			Date:             date,
		},
		Groups: filtered,
	})
}

func filterOptions(c echo.Context) filter.Options {
	opts := filter.Options{
		Sort: c.QueryParam("sort"),
	}

	if v := c.QueryParam("max_price"); v != "" {
		if maxPrice, err := strconv.Atoi(v); err == nil && maxPrice > 0 {
			opts.MaxPrice = maxPrice
		}
	}
	if v := c.QueryParam("direct_only"); v == "true" || v == "1" {
		opts.DirectOnly = true
	}

	return opts
}

func countFlights(groups []models.AirlineGroup) int {
	total := 0
	for _, g := range groups {
		total += len(g.Flights)
	}
	return total
}

func emptyFlightsResponse(startTime time.Time) models.FlightsResponse {
	return models.FlightsResponse{
		Metadata: models.FlightsMetadata{
			GenerationTimeMs: time.Since(startTime).Milliseconds(),
		},
		Groups: []models.AirlineGroup{},
	}
}
