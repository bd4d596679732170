package models

import "time"

// SearchUpdateRequest is a partial update of SearchInfo. Nil fields are left
// untouched by the merge.
type SearchUpdateRequest struct {
	TripType    *string   `json:"trip_type,omitempty"`
	Origin      *Location `json:"origin,omitempty"`
	Destination *Location `json:"destination,omitempty"`
	StartDate   *string   `json:"start_date,omitempty"`
	EndDate     *string   `json:"end_date,omitempty"`
	Adults      *int      `json:"adults,omitempty"`
	Children    *int      `json:"children,omitempty"`
	ChildAges   *[]int    `json:"child_ages,omitempty"`
}

func (r *SearchUpdateRequest) Validate() error {
	if r.TripType != nil && *r.TripType != TripTypeOneWay && *r.TripType != TripTypeRoundtrip {
		return ErrInvalidTripType
	}
	if r.Origin != nil && len(r.Origin.Code) != 3 {
		return ErrInvalidLocation
	}
	if r.Destination != nil && len(r.Destination.Code) != 3 {
		return ErrInvalidLocation
	}
	if r.StartDate != nil && *r.StartDate != "" {
		if _, err := time.Parse("2006-01-02", *r.StartDate); err != nil {
			return ErrInvalidDate
		}
	}
	if r.EndDate != nil && *r.EndDate != "" {
		if _, err := time.Parse("2006-01-02", *r.EndDate); err != nil {
			return ErrInvalidDate
		}
	}
	if r.Adults != nil && *r.Adults < 1 {
		return ErrInvalidPassengers
	}
	if r.Children != nil && *r.Children < 0 {
		return ErrInvalidPassengers
	}
	if r.ChildAges != nil {
		for _, age := range *r.ChildAges {
			if age < 0 || age > 17 {
				return ErrInvalidChildAge
			}
		}
	}
	return nil
}

// ValidateSearchInfo checks cross-field invariants on the merged criteria,
// after a partial update has been folded in.
func ValidateSearchInfo(info SearchInfo) error {
	if info.Origin != nil && info.Destination != nil && info.Origin.Code == info.Destination.Code {
		return ErrSameRoute
	}
	if info.StartDate != "" && info.EndDate != "" && info.EndDate < info.StartDate {
		return ErrEndBeforeStart
	}
	if len(info.ChildAges) != info.Children {
		return ErrChildAgesMismatch
	}
	return nil
}

// SelectFlightRequest stores a denormalized selection for one leg.
type SelectFlightRequest struct {
	Selection Selection `json:"selection"`
}

func (r *SelectFlightRequest) Validate() error {
	if r.Selection.ID <= 0 {
		return ErrMissingSelection
	}
	if r.Selection.FareType == "" {
		return ErrMissingFareType
	}
	if r.Selection.Price < 0 {
		return ErrInvalidPrice
	}
	return nil
}

// NavigateRequest toggles a navigation overlay flag.
type NavigateRequest struct {
	Target string `json:"target"`
	Active bool   `json:"active"`
}

const (
	NavigateCheckout = "checkout"
	NavigatePayment  = "payment"
)

func (r *NavigateRequest) Validate() error {
	if r.Target != NavigateCheckout && r.Target != NavigatePayment {
		return ErrInvalidNavTarget
	}
	return nil
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrInvalidTripType   ValidationError = "trip_type must be one-way or roundtrip"
	ErrInvalidLocation   ValidationError = "location code must be 3 letters"
	ErrInvalidDate       ValidationError = "dates must be formatted YYYY-MM-DD"
	ErrInvalidPassengers ValidationError = "adults must be >= 1 and children >= 0"
	ErrInvalidChildAge   ValidationError = "child ages must be between 0 and 17"
	ErrSameRoute         ValidationError = "origin and destination must differ"
	ErrEndBeforeStart    ValidationError = "end_date must not be before start_date"
	ErrChildAgesMismatch ValidationError = "child_ages length must match children"
	ErrMissingSelection  ValidationError = "selection id is required"
	ErrMissingFareType   ValidationError = "selection fare_type is required"
	ErrInvalidPrice      ValidationError = "selection price must not be negative"
	ErrInvalidNavTarget  ValidationError = "target must be checkout or payment"
)
