package generator

// Approximate nonstop flight minutes between the busier city pairs. Routes
// missing here get a seeded baseline so every pair still produces schedules.
var routeBaseMinutes = map[string]int{
	"BOG-MDE": 45,
	"BOG-CLO": 50,
	"BOG-CTG": 80,
	"BOG-BAQ": 85,
	"BOG-SMR": 85,
	"BOG-ADZ": 140,
	"BOG-PEI": 40,
	"BOG-BGA": 55,
	"BOG-CUC": 65,
	"BOG-LET": 110,
	"BOG-MTR": 75,
	"BOG-VVC": 35,
	"BOG-NVA": 40,
	"MDE-CLO": 45,
	"MDE-CTG": 65,
	"MDE-BAQ": 75,
	"MDE-SMR": 80,
	"MDE-ADZ": 120,
	"CLO-CTG": 85,
	"CLO-BAQ": 95,
	"CTG-ADZ": 95,
	"BAQ-ADZ": 100,
}

func baselineFor(origin, destination string, fallback int) int {
	if m, ok := routeBaseMinutes[origin+"-"+destination]; ok {
		return m
	}
	if m, ok := routeBaseMinutes[destination+"-"+origin]; ok {
		return m
	}
	return fallback
}
