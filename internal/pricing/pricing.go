package pricing

import "github.com/jfcamacho/vuelacol/internal/models"

// Breakdown is the itemized total every downstream screen displays. All
// amounts are integer COP.
type Breakdown struct {
	IsRoundtrip           bool `json:"is_roundtrip"`
	TotalPassengers       int  `json:"total_passengers"`
	OutboundPrice         int  `json:"outbound_price"`
	ReturnPrice           int  `json:"return_price"`
	PricePerPassenger     int  `json:"price_per_passenger"`
	TotalForAllPassengers int  `json:"total_for_all_passengers"`
	TaxesAndFees          int  `json:"taxes_and_fees"`
	FinalTotal            int  `json:"final_total"`
}

// Calculate computes the itemized price for the current trip. It is a pure
// function: the checkout, payment, bank-auth and success screens all call it
// with the same store snapshot and must display identical totals, so none of
// them is allowed to recompute a total on its own.
//
// Children pay full adult fare; there is no age-based tier. Missing
// selections price as zero rather than failing.
func Calculate(info models.SearchInfo, outbound, ret *models.Selection) Breakdown {
	isRoundtrip := info.TripType == models.TripTypeRoundtrip
	totalPassengers := info.Adults + info.Children

	outboundPrice := 0
	if outbound != nil {
		outboundPrice = outbound.Price
	}

	returnPrice := 0
	if isRoundtrip && ret != nil {
		returnPrice = ret.Price
	}

	pricePerPassenger := outboundPrice + returnPrice
	totalForAllPassengers := pricePerPassenger * totalPassengers

	// No tax model: taxes stay at zero and the final total is the fare total.
	taxesAndFees := 0

	return Breakdown{
		IsRoundtrip:           isRoundtrip,
		TotalPassengers:       totalPassengers,
		OutboundPrice:         outboundPrice,
		ReturnPrice:           returnPrice,
		PricePerPassenger:     pricePerPassenger,
		TotalForAllPassengers: totalForAllPassengers,
		TaxesAndFees:          taxesAndFees,
		FinalTotal:            totalForAllPassengers + taxesAndFees,
	}
}
