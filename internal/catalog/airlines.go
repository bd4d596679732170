package catalog

// Carrier is a roster entry the generator expands into an AirlineGroup.
// FareTypes are display labels; their length (3 or 4) decides how many fare
// tiers each flight of this carrier gets priced for.
type Carrier struct {
	Name        string
	Code        string
	Logo        string
	BgColor     string
	BorderColor string
	FareTypes   []string
}

var carriers = []Carrier{
	{
		Name:        "Avianca",
		Code:        "AV",
		Logo:        "/assets/airlines/avianca.svg",
		BgColor:     "bg-red-700",
		BorderColor: "border-red-700",
		FareTypes:   []string{"XS Basic", "S Clásica", "M Flex", "L Premium"},
	},
	{
		Name:        "LATAM",
		Code:        "LA",
		Logo:        "/assets/airlines/latam.svg",
		BgColor:     "bg-indigo-900",
		BorderColor: "border-indigo-900",
		FareTypes:   []string{"Basic", "Light", "Plus", "Top"},
	},
	{
		Name:        "Wingo",
		Code:        "P5",
		Logo:        "/assets/airlines/wingo.svg",
		BgColor:     "bg-purple-700",
		BorderColor: "border-purple-700",
		FareTypes:   []string{"Go Basic", "Go Plus", "Go Max"},
	},
	{
		Name:        "JetSMART",
		Code:        "JA",
		Logo:        "/assets/airlines/jetsmart.svg",
		BgColor:     "bg-sky-600",
		BorderColor: "border-sky-600",
		FareTypes:   []string{"Smart", "Smart Plus", "Smart Full"},
	},
	{
		Name:        "Clic",
		Code:        "VE",
		Logo:        "/assets/airlines/clic.svg",
		BgColor:     "bg-emerald-600",
		BorderColor: "border-emerald-600",
		FareTypes:   []string{"Clic Básico", "Clic Flexible", "Clic Premium"},
	},
}

// Carriers returns the fixed carrier roster in stable order.
func Carriers() []Carrier {
	return carriers
}
