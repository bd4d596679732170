package models

// Fare tier keys in ascending price order. A carrier offering only three
// tiers uses a prefix of this list.
const (
	TierBasic    = "basic"
	TierStandard = "standard"
	TierPlus     = "plus"
	TierPremium  = "premium"
)

var FareTierKeys = []string{TierBasic, TierStandard, TierPlus, TierPremium}

type Duration struct {
	Hours        int `json:"hours"`
	Minutes      int `json:"minutes"`
	TotalMinutes int `json:"total_minutes"`
}

// FlightOption is one synthetic flight instance with a price per fare tier.
// Prices are integer COP amounts; keys are a prefix of FareTierKeys matching
// the owning group's FareTypes length.
type FlightOption struct {
	ID             int            `json:"id"`
	FlightNumber   string         `json:"flight_number"`
	DepartureTime  string         `json:"departure_time"`
	ArrivalTime    string         `json:"arrival_time"`
	Duration       Duration       `json:"duration"`
	Direct         bool           `json:"direct"`
	Prices         map[string]int `json:"prices"`
	BestValueScore float64        `json:"best_value_score,omitempty"`
}

// AirlineGroup is every option one carrier offers for a route+date, plus the
// branding the fare grid renders alongside it.
type AirlineGroup struct {
	Name        string         `json:"name"`
	Code        string         `json:"code"`
	Logo        string         `json:"logo"`
	BgColor     string         `json:"bg_color"`
	BorderColor string         `json:"border_color"`
	FareTypes   []string       `json:"fare_types"`
	Flights     []FlightOption `json:"flights"`
}
