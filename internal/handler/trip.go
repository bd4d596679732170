package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jfcamacho/vuelacol/internal/catalog"
	"github.com/jfcamacho/vuelacol/internal/latency"
	"github.com/jfcamacho/vuelacol/internal/middleware"
	"github.com/jfcamacho/vuelacol/internal/models"
	"github.com/jfcamacho/vuelacol/internal/pricing"
	"github.com/jfcamacho/vuelacol/internal/store"
	"github.com/jfcamacho/vuelacol/pkg/currency"
)

// Handler serves the booking-flow API. Every endpoint operates on the
// session's TripState; totals are only ever produced by the pricing package
// so no page can display a number another page disagrees with.
type Handler struct {
	store         *store.Store
	searchDelay   time.Duration
	generateDelay time.Duration
}

func New(st *store.Store, searchDelay, generateDelay time.Duration) *Handler {
	return &Handler{
		store:         st,
		searchDelay:   searchDelay,
		generateDelay: generateDelay,
	}
}

// GetTrip returns the full state snapshot for the session.
func (h *Handler) GetTrip(c echo.Context) error {
	trip := h.store.Get(c.Request().Context(), middleware.SessionID(c))
	return c.JSON(http.StatusOK, models.TripResponse{Trip: trip})
}

// UpdateSearch merges a partial booking-form update into the search criteria.
// The simulated search delay keeps the loader behavior of the original flow;
// it is cancellable, so a client that navigates away does not leave the
// searching flag behind.
func (h *Handler) UpdateSearch(c echo.Context) error {
	ctx := c.Request().Context()
	sid := middleware.SessionID(c)

	var req models.SearchUpdateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid_request", "Failed to parse request body: "+err.Error())
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, "validation_error", err.Error())
	}

	trip, err := h.store.UpdateSearchInfo(ctx, sid, req)
	if err != nil {
		return badRequest(c, "validation_error", err.Error())
	}

	h.store.SetFlag(ctx, sid, store.FlagSearchingFlights, true)
	waitErr := latency.Wait(ctx, h.searchDelay)
	h.store.SetFlag(context.WithoutCancel(ctx), sid, store.FlagSearchingFlights, false)
	if waitErr != nil {
		return waitErr
	}

	return c.JSON(http.StatusOK, models.TripResponse{Trip: trip})
}

// SelectFlight stores the outbound selection snapshot.
func (h *Handler) SelectFlight(c echo.Context) error {
	return h.selectLeg(c, h.store.SetSelectedFlight)
}

// SelectReturnFlight stores the return selection snapshot.
func (h *Handler) SelectReturnFlight(c echo.Context) error {
	return h.selectLeg(c, h.store.SetSelectedReturnFlight)
}

func (h *Handler) selectLeg(c echo.Context, set func(context.Context, string, models.Selection)) error {
	ctx := c.Request().Context()
	sid := middleware.SessionID(c)

	var req models.SelectFlightRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid_request", "Failed to parse request body: "+err.Error())
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, "validation_error", err.Error())
	}

	set(ctx, sid, req.Selection)
	return c.JSON(http.StatusOK, models.TripResponse{Trip: h.store.Get(ctx, sid)})
}

// Navigate toggles the checkout/payment transition overlays.
func (h *Handler) Navigate(c echo.Context) error {
	ctx := c.Request().Context()
	sid := middleware.SessionID(c)

	var req models.NavigateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid_request", "Failed to parse request body: "+err.Error())
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, "validation_error", err.Error())
	}

	flag := store.FlagNavigatingToCheckout
	if req.Target == models.NavigatePayment {
		flag = store.FlagNavigatingToPayment
	}
	h.store.SetFlag(ctx, sid, flag, req.Active)

	return c.JSON(http.StatusOK, models.TripResponse{Trip: h.store.Get(ctx, sid)})
}

// FormattedTotals are the display strings the checkout, payment and success
// screens render verbatim.
type FormattedTotals struct {
	PricePerPassenger     string `json:"price_per_passenger"`
	TotalForAllPassengers string `json:"total_for_all_passengers"`
	TaxesAndFees          string `json:"taxes_and_fees"`
	FinalTotal            string `json:"final_total"`
}

type PricingResponse struct {
	Pricing   pricing.Breakdown `json:"pricing"`
	Formatted FormattedTotals   `json:"formatted"`
}

// GetPricing computes the itemized total from the current state snapshot.
func (h *Handler) GetPricing(c echo.Context) error {
	trip := h.store.Get(c.Request().Context(), middleware.SessionID(c))

	breakdown := pricing.Calculate(trip.SearchInfo, trip.SelectedFlight, trip.SelectedReturnFlight)

	return c.JSON(http.StatusOK, PricingResponse{
		Pricing: breakdown,
		Formatted: FormattedTotals{
			PricePerPassenger:     currency.FormatCOP(breakdown.PricePerPassenger),
			TotalForAllPassengers: currency.FormatCOP(breakdown.TotalForAllPassengers),
			TaxesAndFees:          currency.FormatCOP(breakdown.TaxesAndFees),
			FinalTotal:            currency.FormatCOP(breakdown.FinalTotal),
		},
	})
}

// Reset discards the trip, e.g. after a completed or abandoned flow.
func (h *Handler) Reset(c echo.Context) error {
	ctx := c.Request().Context()
	sid := middleware.SessionID(c)

	h.store.Reset(ctx, sid)
	return c.JSON(http.StatusOK, models.TripResponse{Trip: h.store.Get(ctx, sid)})
}

// GetLocations returns the city roster for the search form.
func (h *Handler) GetLocations(c echo.Context) error {
	return c.JSON(http.StatusOK, models.LocationsResponse{Locations: catalog.Locations()})
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

func badRequest(c echo.Context, kind, message string) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   kind,
		Message: message,
		Code:    http.StatusBadRequest,
	})
}
