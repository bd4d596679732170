package generator_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/jfcamacho/vuelacol/internal/catalog"
	"github.com/jfcamacho/vuelacol/internal/generator"
	"github.com/jfcamacho/vuelacol/internal/models"
)

func TestGenerate_Deterministic(t *testing.T) {
	first := generator.Generate("BOG", "CTG", "2025-03-10")
	second := generator.Generate("BOG", "CTG", "2025-03-10")

	if !reflect.DeepEqual(first, second) {
		t.Fatal("two generations for the same route+date differ")
	}

	// Serialized output must match too: pages compare rendered data.
	a, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	b, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(a) != string(b) {
		t.Fatal("serialized generations differ")
	}
}

func TestGenerate_VariesAcrossInputs(t *testing.T) {
	base := generator.Generate("BOG", "MDE", "2025-03-10")

	tests := []struct {
		name        string
		origin      string
		destination string
		date        string
	}{
		{"different destination", "BOG", "CTG", "2025-03-10"},
		{"different date", "BOG", "MDE", "2025-03-11"},
		{"reversed route", "MDE", "BOG", "2025-03-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := generator.Generate(tt.origin, tt.destination, tt.date)
			if reflect.DeepEqual(base, other) {
				t.Error("expected different output for different inputs")
			}
		})
	}
}

func TestGenerate_NonEmpty(t *testing.T) {
	groups := generator.Generate("BOG", "MDE", "2025-03-10")

	if len(groups) != len(catalog.Carriers()) {
		t.Fatalf("expected %d groups, got %d", len(catalog.Carriers()), len(groups))
	}

	for _, g := range groups {
		if len(g.Flights) < 2 || len(g.Flights) > 4 {
			t.Errorf("group %s: expected 2-4 flights, got %d", g.Name, len(g.Flights))
		}
	}
}

func TestGenerate_FareMonotonicity(t *testing.T) {
	groups := generator.Generate("CLO", "ADZ", "2025-07-01")

	for _, g := range groups {
		for _, f := range g.Flights {
			if len(f.Prices) != len(g.FareTypes) {
				t.Fatalf("group %s flight %d: %d prices for %d fare types",
					g.Name, f.ID, len(f.Prices), len(g.FareTypes))
			}

			prev := 0
			for i := 0; i < len(g.FareTypes); i++ {
				tier := models.FareTierKeys[i]
				price, ok := f.Prices[tier]
				if !ok {
					t.Fatalf("group %s flight %d: missing tier %s", g.Name, f.ID, tier)
				}
				if price < prev {
					t.Errorf("group %s flight %d: tier %s price %d below previous tier %d",
						g.Name, f.ID, tier, price, prev)
				}
				if price <= 0 {
					t.Errorf("group %s flight %d: non-positive price %d", g.Name, f.ID, price)
				}
				if price%1000 != 0 {
					t.Errorf("group %s flight %d: price %d not rounded to 1000 COP", g.Name, f.ID, price)
				}
				prev = price
			}
		}
	}
}

func TestGenerate_UniqueSequentialIDs(t *testing.T) {
	groups := generator.Generate("BOG", "BAQ", "2025-05-20")

	seen := make(map[int]bool)
	want := 1
	for _, g := range groups {
		for _, f := range g.Flights {
			if seen[f.ID] {
				t.Fatalf("duplicate flight id %d", f.ID)
			}
			seen[f.ID] = true
			if f.ID != want {
				t.Errorf("expected id %d, got %d", want, f.ID)
			}
			want++
		}
	}
}

func TestGenerate_Schedules(t *testing.T) {
	groups := generator.Generate("MDE", "SMR", "2025-09-15")

	for _, g := range groups {
		for _, f := range g.Flights {
			dep := parseClock(t, f.DepartureTime)
			arr := parseClock(t, f.ArrivalTime)

			if f.Duration.TotalMinutes <= 0 {
				t.Errorf("flight %d: non-positive duration %d", f.ID, f.Duration.TotalMinutes)
			}
			if f.Duration.Hours*60+f.Duration.Minutes != f.Duration.TotalMinutes {
				t.Errorf("flight %d: duration parts do not add up", f.ID)
			}

			wantArr := (dep + f.Duration.TotalMinutes) % (24 * 60)
			if arr != wantArr {
				t.Errorf("flight %d: arrival %s, want departure %s + %dm",
					f.ID, f.ArrivalTime, f.DepartureTime, f.Duration.TotalMinutes)
			}
		}
	}
}

func TestGenerate_MissingInput(t *testing.T) {
	tests := []struct {
		name        string
		origin      string
		destination string
		date        string
	}{
		{"no origin", "", "MDE", "2025-03-10"},
		{"no destination", "BOG", "", "2025-03-10"},
		{"no date", "BOG", "MDE", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := generator.Generate(tt.origin, tt.destination, tt.date); got != nil {
				t.Errorf("expected nil for missing input, got %d groups", len(got))
			}
		})
	}
}

func TestGenerate_CaseInsensitiveCodes(t *testing.T) {
	upper := generator.Generate("BOG", "MDE", "2025-03-10")
	lower := generator.Generate("bog", "mde", "2025-03-10")

	if !reflect.DeepEqual(upper, lower) {
		t.Error("lowercase codes should produce the same output as uppercase")
	}
}

func parseClock(t *testing.T, s string) int {
	t.Helper()
	if len(s) != 5 || s[2] != ':' {
		t.Fatalf("bad clock time %q", s)
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	if h < 0 || h > 23 || m < 0 || m > 59 {
		t.Fatalf("clock time %q out of range", s)
	}
	return h*60 + m
}
