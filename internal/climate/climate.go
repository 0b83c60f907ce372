// Package climate generates the zoo's ambient weather narrative: a smooth
// day-indexed temperature curve from simplex noise, mapped to a display
// condition. It colors day reports only and never feeds back into the
// simulation arithmetic.
package climate

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Report describes the ambient conditions of one day.
type Report struct {
	Day         int     `json:"day"`
	Temperature float64 `json:"temperature"` // Celsius
	Conditions  string  `json:"conditions"`
}

// Model produces deterministic ambient weather from a seed.
type Model struct {
	noise opensimplex.Noise
}

// NewModel creates a climate model seeded alongside the simulation.
func NewModel(seed int64) *Model {
	return &Model{noise: opensimplex.New(seed)}
}

// ForDay returns the ambient conditions for a day number. Consecutive days
// vary smoothly; the same day always maps to the same report.
func (m *Model) ForDay(day int) Report {
	// Slow drift plus a faster wobble, centered around a mild 22C.
	drift := m.noise.Eval2(float64(day)*0.05, 0.0)
	wobble := m.noise.Eval2(float64(day)*0.31, 100.0)
	temp := 22.0 + drift*12.0 + wobble*4.0

	humidity := m.noise.Eval2(float64(day)*0.17, 200.0)

	return Report{
		Day:         day,
		Temperature: temp,
		Conditions:  describe(temp, humidity),
	}
}

func describe(temp, humidity float64) string {
	switch {
	case temp >= 32:
		return "scorching sun"
	case temp >= 27 && humidity > 0.3:
		return "hot and humid"
	case temp >= 27:
		return "hot and dry"
	case temp >= 18 && humidity > 0.4:
		return "warm with showers"
	case temp >= 18:
		return "pleasant and clear"
	case temp >= 10:
		return "cool breeze"
	case temp >= 4:
		return "cold and overcast"
	default:
		return "bitter cold"
	}
}
