// Package animal provides the animal data model: bounded vitals, daily decay,
// feeding behavior, and the health notification channel.
package animal

import (
	"fmt"
	"strings"

	"github.com/talgya/ozzoo/internal/entropy"
)

// Health notifications emitted when a mutation crosses the alert threshold.
const (
	EventHealthCritical = "health_critical"
	EventHealthImproved = "health_improved"
	EventAnimalDied     = "animal_died"
)

// HealthThreshold is the health value below which an animal is critical.
const HealthThreshold = 30.0

// VitalChange carries the before/after values of a health mutation.
type VitalChange struct {
	OldHealth float64 `json:"old_health"`
	NewHealth float64 `json:"new_health"`
	Threshold float64 `json:"threshold"`
	Cause     string  `json:"cause,omitempty"`
}

// Sink receives health notifications from an animal. Sinks are attached
// directly to the animal record; fan-out is a plain function call.
type Sink interface {
	Receive(a *Animal, event string, change VitalChange)
}

// Animal is a single animal. Vitals are private: the only way to change them
// is through the ModifyX methods, which re-clamp into [0,100] on every call.
type Animal struct {
	Name    string
	Species string
	Age     int
	Diet    Diet
	Habitat string

	health    float64
	hunger    float64
	happiness float64

	spec  *Species
	sinks []Sink
}

// New creates an animal of the given species at full health and happiness.
func New(spec *Species, name string, age int) *Animal {
	return &Animal{
		Name:      name,
		Species:   spec.Name,
		Age:       age,
		Diet:      spec.Diet,
		Habitat:   spec.Habitat,
		health:    100.0,
		hunger:    0.0,
		happiness: 100.0,
		spec:      spec,
	}
}

// Key identifies the animal for alert bookkeeping. Names are not unique on
// their own, so the species is folded in.
func (a *Animal) Key() string {
	return a.Name + "_" + a.Species
}

func (a *Animal) Health() float64    { return a.health }
func (a *Animal) Hunger() float64    { return a.hunger }
func (a *Animal) Happiness() float64 { return a.happiness }

// Sound returns the species' display sound.
func (a *Animal) Sound() string { return a.spec.Sound }

// Attach registers a notification sink. Attaching the same sink twice is a
// no-op.
func (a *Animal) Attach(s Sink) {
	for _, existing := range a.sinks {
		if existing == s {
			return
		}
	}
	a.sinks = append(a.sinks, s)
}

// Detach removes a previously attached sink.
func (a *Animal) Detach(s Sink) {
	for i, existing := range a.sinks {
		if existing == s {
			a.sinks = append(a.sinks[:i], a.sinks[i+1:]...)
			return
		}
	}
}

func (a *Animal) notify(event string, change VitalChange) {
	for _, s := range a.sinks {
		s.Receive(a, event, change)
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// ModifyHealth applies a bounded delta to health and emits a notification if
// the change crosses the alert threshold or reaches zero. The three branches
// are mutually exclusive: a mutation that falls straight from above the
// threshold to zero reports the critical crossing, not the death.
func (a *Animal) ModifyHealth(delta float64) {
	old := a.health
	a.health = clamp(a.health + delta)

	change := VitalChange{OldHealth: old, NewHealth: a.health, Threshold: HealthThreshold}
	switch {
	case a.health <= HealthThreshold && old > HealthThreshold:
		a.notify(EventHealthCritical, change)
	case a.health > HealthThreshold && old <= HealthThreshold:
		a.notify(EventHealthImproved, change)
	case a.health <= 0 && old > 0:
		change.Cause = "health_depleted"
		a.notify(EventAnimalDied, change)
	}
}

// ModifyHunger applies a bounded delta to hunger.
func (a *Animal) ModifyHunger(delta float64) {
	a.hunger = clamp(a.hunger + delta)
}

// ModifyHappiness applies a bounded delta to happiness.
func (a *Animal) ModifyHappiness(delta float64) {
	a.happiness = clamp(a.happiness + delta)
}

// DailyTick applies one day of decay: hunger rises, sustained hunger eats
// into health, happiness erodes with hunger and age, and there is a small
// chance of a random ailment. Species quirks layer on top.
func (a *Animal) DailyTick(rng *entropy.Source) {
	a.ModifyHunger(rng.Uniform(5.0, 15.0))

	if a.hunger > 70.0 {
		a.ModifyHealth(-rng.Uniform(2.0, 5.0))
	}

	a.ModifyHappiness(-(a.hunger*0.1 + float64(a.Age)*0.5))

	if rng.Chance(0.1) {
		a.ModifyHealth(-rng.Uniform(1.0, 3.0))
	}

	// Species-specific daily drift (flight appetite, slow reptile metabolism).
	if a.spec.DailyHunger != 0 {
		a.ModifyHunger(a.spec.DailyHunger)
	}
	if a.spec.QuirkChance > 0 && rng.Chance(a.spec.QuirkChance) {
		a.ModifyHappiness(a.spec.QuirkHappiness)
	}
}

// Eat offers the animal a food type and returns a narrative outcome. The
// dispatch is a guarded substring match: a refusal rule first (no vitals
// change), then the species' favourite foods (big branch), then the fallback
// (small branch).
func (a *Animal) Eat(food string) string {
	lower := strings.ToLower(food)

	if len(a.spec.RefuseUnless) > 0 && !containsAny(lower, a.spec.RefuseUnless) {
		return fmt.Sprintf(a.spec.RefuseMessage, a.Name, food)
	}
	if len(a.spec.RefuseIfPresent) > 0 && containsAny(lower, a.spec.RefuseIfPresent) {
		return fmt.Sprintf(a.spec.RefuseMessage, a.Name, food)
	}

	if containsAny(lower, a.spec.Favorites) {
		a.ModifyHunger(a.spec.FavoriteHunger)
		a.ModifyHappiness(a.spec.FavoriteHappiness)
		return fmt.Sprintf(a.spec.FeastMessage, a.Name, food)
	}

	a.ModifyHunger(a.spec.FallbackHunger)
	a.ModifyHappiness(a.spec.FallbackHappiness)
	return fmt.Sprintf(a.spec.PickMessage, a.Name, food)
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Info is the read-only snapshot of an animal for presentation layers.
type Info struct {
	Name      string  `json:"name"`
	Species   string  `json:"species"`
	Age       int     `json:"age"`
	Health    float64 `json:"health"`
	Hunger    float64 `json:"hunger"`
	Happiness float64 `json:"happiness"`
	Diet      string  `json:"diet"`
	Habitat   string  `json:"habitat"`
	Sound     string  `json:"sound"`
}

// GetInfo returns the animal's snapshot.
func (a *Animal) GetInfo() Info {
	return Info{
		Name:      a.Name,
		Species:   a.Species,
		Age:       a.Age,
		Health:    a.health,
		Hunger:    a.hunger,
		Happiness: a.happiness,
		Diet:      a.Diet.String(),
		Habitat:   a.Habitat,
		Sound:     a.spec.Sound,
	}
}

func (a *Animal) String() string {
	return fmt.Sprintf("%s the %s (Health: %.1f%%)", a.Name, a.Species, a.health)
}
