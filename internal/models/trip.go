package models

const (
	TripTypeOneWay    = "one-way"
	TripTypeRoundtrip = "roundtrip"
)

// Location is a selectable city. Equality is by Code.
type Location struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// SearchInfo is the booking form state. Dates are ISO "2006-01-02" strings;
// empty means unset. EndDate is only meaningful for roundtrip.
type SearchInfo struct {
	TripType    string    `json:"trip_type"`
	Origin      *Location `json:"origin,omitempty"`
	Destination *Location `json:"destination,omitempty"`
	StartDate   string    `json:"start_date,omitempty"`
	EndDate     string    `json:"end_date,omitempty"`
	Adults      int       `json:"adults"`
	Children    int       `json:"children"`
	ChildAges   []int     `json:"child_ages,omitempty"`
}

// Selection is a denormalized snapshot of a chosen flight+tier. It is copied
// out of the generated catalog at selection time so a later regeneration
// cannot retroactively change what was chosen.
type Selection struct {
	ID            int      `json:"id"`
	DepartureTime string   `json:"departure_time"`
	ArrivalTime   string   `json:"arrival_time"`
	Duration      Duration `json:"duration"`
	Airline       string   `json:"airline"`
	FareType      string   `json:"fare_type"`
	Price         int      `json:"price"`
	FlightNumber  string   `json:"flight_number"`
	Direct        bool     `json:"direct"`
}

// Flags drive the full-screen loading overlays. They are persisted with the
// rest of the state but forced false on load so a hard refresh never comes
// back stuck on a loader.
type Flags struct {
	IsSearchingFlights     bool `json:"is_searching_flights"`
	IsGeneratingFlights    bool `json:"is_generating_flights"`
	IsNavigatingToCheckout bool `json:"is_navigating_to_checkout"`
	IsNavigatingToPayment  bool `json:"is_navigating_to_payment"`
}

// GeneratedCatalog memoizes one generator run together with the inputs it was
// produced for, so the flights page can tell a cache hit from a stale result.
type GeneratedCatalog struct {
	Origin      string         `json:"origin"`
	Destination string         `json:"destination"`
	Date        string         `json:"date"`
	Groups      []AirlineGroup `json:"groups"`
}

// TripState is the root state one session carries through the whole flow.
type TripState struct {
	SearchInfo           SearchInfo        `json:"search_info"`
	SelectedFlight       *Selection        `json:"selected_flight,omitempty"`
	SelectedReturnFlight *Selection        `json:"selected_return_flight,omitempty"`
	GeneratedFlights     *GeneratedCatalog `json:"generated_flights,omitempty"`
	Flags                Flags             `json:"flags"`
}

// NewTripState returns the defaults a session starts from.
func NewTripState() *TripState {
	return &TripState{
		SearchInfo: SearchInfo{
			TripType:  TripTypeOneWay,
			Adults:    1,
			Children:  0,
			ChildAges: []int{},
		},
	}
}

// Clone deep-copies the state so readers can never alias the store's live
// object.
func (s *TripState) Clone() *TripState {
	if s == nil {
		return nil
	}

	out := *s
	out.SearchInfo.ChildAges = append([]int(nil), s.SearchInfo.ChildAges...)

	if s.SearchInfo.Origin != nil {
		o := *s.SearchInfo.Origin
		out.SearchInfo.Origin = &o
	}
	if s.SearchInfo.Destination != nil {
		d := *s.SearchInfo.Destination
		out.SearchInfo.Destination = &d
	}
	if s.SelectedFlight != nil {
		sel := *s.SelectedFlight
		out.SelectedFlight = &sel
	}
	if s.SelectedReturnFlight != nil {
		sel := *s.SelectedReturnFlight
		out.SelectedReturnFlight = &sel
	}
	if s.GeneratedFlights != nil {
		cat := *s.GeneratedFlights
		cat.Groups = cloneGroups(s.GeneratedFlights.Groups)
		out.GeneratedFlights = &cat
	}

	return &out
}

func cloneGroups(groups []AirlineGroup) []AirlineGroup {
	out := make([]AirlineGroup, len(groups))
	for i, g := range groups {
		out[i] = g
		out[i].FareTypes = append([]string(nil), g.FareTypes...)
		out[i].Flights = make([]FlightOption, len(g.Flights))
		for j, f := range g.Flights {
			out[i].Flights[j] = f
			prices := make(map[string]int, len(f.Prices))
			for k, v := range f.Prices {
				prices[k] = v
			}
			out[i].Flights[j].Prices = prices
		}
	}
	return out
}
