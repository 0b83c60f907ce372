// Package zoo provides the enclosure container and the zoo aggregate that
// owns enclosures and the resource ledger.
package zoo

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/talgya/ozzoo/internal/animal"
	"github.com/talgya/ozzoo/internal/entropy"
	"github.com/talgya/ozzoo/internal/ledger"
)

var (
	ErrCapacityExceeded    = errors.New("enclosure at capacity")
	ErrIncompatibleSpecies = errors.New("incompatible species")
	ErrDuplicateEnclosure  = errors.New("enclosure name already exists")
	ErrEnclosureNotEmpty   = errors.New("enclosure not empty")
)

// Enclosure houses animals under a capacity limit and a compatibility rule.
// Resident order is insertion order and carries no meaning beyond display.
type Enclosure struct {
	Name        string
	Capacity    int
	Environment string

	animals     []*animal.Animal
	cleanliness float64
	compatible  []string // species allow-list; empty = unrestricted
}

// NewEnclosure creates an empty enclosure at full cleanliness.
func NewEnclosure(name string, capacity int, environment string, compatibleSpecies []string) *Enclosure {
	return &Enclosure{
		Name:        name,
		Capacity:    capacity,
		Environment: environment,
		cleanliness: 100.0,
		compatible:  compatibleSpecies,
	}
}

// Count returns the number of resident animals.
func (e *Enclosure) Count() int { return len(e.animals) }

// Animals returns a copy of the resident list.
func (e *Enclosure) Animals() []*animal.Animal {
	out := make([]*animal.Animal, len(e.animals))
	copy(out, e.animals)
	return out
}

// Cleanliness returns the current cleanliness level.
func (e *Enclosure) Cleanliness() float64 { return e.cleanliness }

// NeedsCleaning reports whether cleanliness has fallen below 30.
func (e *Enclosure) NeedsCleaning() bool { return e.cleanliness < 30.0 }

// Clean restores cleanliness to 100. It cannot fail.
func (e *Enclosure) Clean() {
	old := e.cleanliness
	e.cleanliness = 100.0
	slog.Info("enclosure cleaned", "enclosure", e.Name, "was", fmt.Sprintf("%.1f", old))
}

// AddAnimal admits an animal if capacity and the compatibility rule allow it.
// A rejected add leaves both the enclosure and the candidate unchanged. A
// habitat mismatch is advisory only and never blocks.
func (e *Enclosure) AddAnimal(a *animal.Animal) error {
	if len(e.animals) >= e.Capacity {
		return fmt.Errorf("%w: %q holds %d animals", ErrCapacityExceeded, e.Name, e.Capacity)
	}
	if err := e.checkCompatible(a); err != nil {
		return err
	}

	if a.Habitat != e.Environment {
		slog.Warn("habitat mismatch",
			"animal", a.Name, "species", a.Species,
			"prefers", a.Habitat, "enclosure", e.Environment)
	}

	e.animals = append(e.animals, a)
	slog.Info("animal added", "animal", a.Name, "species", a.Species, "enclosure", e.Name)
	return nil
}

// checkCompatible applies the compatibility rule against current residents.
// An empty enclosure accepts any animal. Carnivores may not share with
// non-carnivores of a different species; an allow-list, when set, must name
// the candidate's species.
func (e *Enclosure) checkCompatible(a *animal.Animal) error {
	if len(e.animals) == 0 {
		return nil
	}

	if len(e.compatible) > 0 {
		allowed := false
		for _, s := range e.compatible {
			if s == a.Species {
				allowed = true
				break
			}
		}
		if !allowed {
			return fmt.Errorf("%w: %s not in allow-list %v for %q",
				ErrIncompatibleSpecies, a.Species, e.compatible, e.Name)
		}
	}

	for _, resident := range e.animals {
		if resident.Species == a.Species {
			continue
		}
		predation := (resident.Diet == animal.DietCarnivore && a.Diet != animal.DietCarnivore) ||
			(a.Diet == animal.DietCarnivore && resident.Diet != animal.DietCarnivore)
		if predation {
			return fmt.Errorf("%w: %s (%s) cannot share with %s (%s)",
				ErrIncompatibleSpecies, a.Species, a.Diet, resident.Species, resident.Diet)
		}
	}
	return nil
}

// RemoveAnimal detaches the first animal whose name matches
// case-insensitively. It returns nil when no resident matches; absence is not
// an error.
func (e *Enclosure) RemoveAnimal(name string) *animal.Animal {
	for i, a := range e.animals {
		if strings.EqualFold(a.Name, name) {
			e.animals = append(e.animals[:i], e.animals[i+1:]...)
			slog.Info("animal removed", "animal", a.Name, "enclosure", e.Name)
			return a
		}
	}
	return nil
}

// BoostCleanliness raises cleanliness by the given amount, capped at 100.
// Used by weather effects; manual cleaning goes through Clean.
func (e *Enclosure) BoostCleanliness(amount float64) {
	e.cleanliness += amount
	if e.cleanliness > 100.0 {
		e.cleanliness = 100.0
	}
}

// DailyUpdate applies one day of wear: residents dirty the enclosure, every
// resident runs its daily decay, and a dirty enclosure (below 50 after the
// degradation) costs every resident 5 happiness.
func (e *Enclosure) DailyUpdate(rng *entropy.Source) {
	dirt := rng.Uniform(2.0, 8.0)
	e.cleanliness -= float64(len(e.animals)) * dirt
	if e.cleanliness < 0 {
		e.cleanliness = 0
	}

	for _, a := range e.animals {
		a.DailyTick(rng)
	}

	if e.cleanliness < 50.0 {
		for _, a := range e.animals {
			a.ModifyHappiness(-5.0)
		}
	}
}

// FeedResult buckets per-animal feeding outcomes. Refusals surface only in
// the successful bucket's message text; the Refused bucket exists for
// callers that promote them but the simulation itself never fills it.
type FeedResult struct {
	Successful []string `json:"successful"`
	Failed     []string `json:"failed"`
	Refused    []string `json:"refused"`
}

// FeedAnimals feeds every resident 2kg of the given food type from the
// ledger. If the supply debit fails nothing is fed and the failure is
// reported; feeding is all-or-nothing at the enclosure level.
func (e *Enclosure) FeedAnimals(foodType string, l *ledger.Ledger) FeedResult {
	result := FeedResult{
		Successful: []string{},
		Failed:     []string{},
		Refused:    []string{},
	}

	needed := 2.0 * float64(len(e.animals))
	if err := l.UseFood(foodType, needed); err != nil {
		result.Failed = append(result.Failed, fmt.Sprintf("food supply error: %v", err))
		return result
	}

	for _, a := range e.animals {
		outcome := a.Eat(foodType)
		result.Successful = append(result.Successful, fmt.Sprintf("%s: %s", a.Name, outcome))
	}
	return result
}

// Occupancy returns the fill level as a percentage.
func (e *Enclosure) Occupancy() float64 {
	if e.Capacity == 0 {
		return 0
	}
	return float64(len(e.animals)) / float64(e.Capacity) * 100.0
}

// Info is the enclosure snapshot for presentation layers.
type Info struct {
	Name              string        `json:"name"`
	Environment       string        `json:"environment"`
	Capacity          int           `json:"capacity"`
	AnimalCount       int           `json:"animal_count"`
	OccupancyPercent  float64       `json:"occupancy_percent"`
	Cleanliness       float64       `json:"cleanliness"`
	NeedsCleaning     bool          `json:"needs_cleaning"`
	CompatibleSpecies []string      `json:"compatible_species"`
	Animals           []animal.Info `json:"animals"`
}

// GetInfo returns the enclosure snapshot.
func (e *Enclosure) GetInfo() Info {
	infos := make([]animal.Info, 0, len(e.animals))
	for _, a := range e.animals {
		infos = append(infos, a.GetInfo())
	}
	return Info{
		Name:              e.Name,
		Environment:       e.Environment,
		Capacity:          e.Capacity,
		AnimalCount:       len(e.animals),
		OccupancyPercent:  e.Occupancy(),
		Cleanliness:       e.cleanliness,
		NeedsCleaning:     e.NeedsCleaning(),
		CompatibleSpecies: e.compatible,
		Animals:           infos,
	}
}
