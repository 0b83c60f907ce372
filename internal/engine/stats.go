package engine

import (
	"gonum.org/v1/gonum/stat"

	"github.com/talgya/ozzoo/internal/zoo"
)

// VitalStats aggregates animal vitals across the whole zoo at the end of a
// day. StdDev is zero when fewer than two animals exist.
type VitalStats struct {
	AnimalCount    int     `json:"animal_count"`
	MeanHealth     float64 `json:"mean_health"`
	StdDevHealth   float64 `json:"stddev_health"`
	MeanHunger     float64 `json:"mean_hunger"`
	MeanHappiness  float64 `json:"mean_happiness"`
	MinHealth      float64 `json:"min_health"`
	CriticalCount  int     `json:"critical_count"`
	CriticalCutoff float64 `json:"critical_cutoff"`
}

// collectVitalStats computes population-level vital statistics from a zoo
// snapshot.
func collectVitalStats(status zoo.Status) VitalStats {
	var health, hunger, happiness []float64
	for _, enc := range status.Enclosures {
		for _, a := range enc.Animals {
			health = append(health, a.Health)
			hunger = append(hunger, a.Hunger)
			happiness = append(happiness, a.Happiness)
		}
	}

	vs := VitalStats{
		AnimalCount:    len(health),
		CriticalCutoff: 30.0,
	}
	if len(health) == 0 {
		return vs
	}

	vs.MeanHealth = stat.Mean(health, nil)
	vs.MeanHunger = stat.Mean(hunger, nil)
	vs.MeanHappiness = stat.Mean(happiness, nil)
	if len(health) > 1 {
		vs.StdDevHealth = stat.StdDev(health, nil)
	}

	vs.MinHealth = health[0]
	for _, h := range health {
		if h < vs.MinHealth {
			vs.MinHealth = h
		}
		if h <= vs.CriticalCutoff {
			vs.CriticalCount++
		}
	}
	return vs
}
