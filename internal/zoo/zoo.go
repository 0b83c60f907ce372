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

// Operating cost constants, charged once per day.
const (
	baseDailyCost    = 500.0
	perAnimalCost    = 10.0
	perEnclosureCost = 50.0
)

// Zoo owns the enclosures and the resource ledger and orchestrates visitor
// simulation, feeding routing, and daily operating costs.
type Zoo struct {
	Name   string
	Ledger *ledger.Ledger

	enclosures      []*Enclosure
	visitorsToday   int
	totalVisitors   int
	daysOperational int
	ticketPrice     float64
}

// New creates a zoo with the given starting funds and ticket price.
func New(name string, initialFunds, ticketPrice float64) *Zoo {
	return &Zoo{
		Name:        name,
		Ledger:      ledger.New(initialFunds),
		ticketPrice: ticketPrice,
	}
}

// Funds returns the ledger balance.
func (z *Zoo) Funds() float64 { return z.Ledger.Funds() }

// DaysOperational returns the number of completed daily updates.
func (z *Zoo) DaysOperational() int { return z.daysOperational }

// TotalVisitors returns the cumulative visitor count.
func (z *Zoo) TotalVisitors() int { return z.totalVisitors }

// Enclosures returns a copy of the enclosure list.
func (z *Zoo) Enclosures() []*Enclosure {
	out := make([]*Enclosure, len(z.enclosures))
	copy(out, z.enclosures)
	return out
}

// AnimalCount returns the total number of animals across all enclosures.
func (z *Zoo) AnimalCount() int {
	total := 0
	for _, e := range z.enclosures {
		total += e.Count()
	}
	return total
}

// AddEnclosure attaches an enclosure; names must be unique within the zoo.
func (z *Zoo) AddEnclosure(e *Enclosure) error {
	for _, existing := range z.enclosures {
		if existing.Name == e.Name {
			return fmt.Errorf("%w: %q", ErrDuplicateEnclosure, e.Name)
		}
	}
	z.enclosures = append(z.enclosures, e)
	slog.Info("enclosure added", "enclosure", e.Name, "zoo", z.Name)
	return nil
}

// RemoveEnclosure detaches an enclosure by name. Only empty enclosures can
// be removed; an unknown name returns false without error.
func (z *Zoo) RemoveEnclosure(name string) (bool, error) {
	for i, e := range z.enclosures {
		if e.Name == name {
			if e.Count() > 0 {
				return false, fmt.Errorf("%w: %q holds %d animals", ErrEnclosureNotEmpty, name, e.Count())
			}
			z.enclosures = append(z.enclosures[:i], z.enclosures[i+1:]...)
			slog.Info("enclosure removed", "enclosure", name, "zoo", z.Name)
			return true, nil
		}
	}
	return false, nil
}

// FindEnclosure looks up an enclosure by case-insensitive name.
func (z *Zoo) FindEnclosure(name string) *Enclosure {
	for _, e := range z.enclosures {
		if strings.EqualFold(e.Name, name) {
			return e
		}
	}
	return nil
}

// AddAnimal places an animal into the named enclosure. Capacity,
// compatibility, and lookup failures all collapse into a false return; the
// precise cause is logged. The boolean contract keeps a single bad placement
// from aborting a day's processing.
func (z *Zoo) AddAnimal(a *animal.Animal, enclosureName string) bool {
	e := z.FindEnclosure(enclosureName)
	if e == nil {
		slog.Warn("add animal failed", "animal", a.Name, "enclosure", enclosureName, "reason", "enclosure not found")
		return false
	}
	if err := e.AddAnimal(a); err != nil {
		slog.Warn("add animal failed", "animal", a.Name, "enclosure", enclosureName, "error", err)
		return false
	}
	return true
}

// DetermineFoodType picks a batch food for a group of animals by majority
// diet: any carnivore wins meat, else any herbivore wins vegetables, else
// seeds. A coarse proxy, not per-animal choice.
func DetermineFoodType(animals []*animal.Animal) string {
	if len(animals) == 0 {
		return "seeds"
	}
	hasCarnivore, hasHerbivore := false, false
	for _, a := range animals {
		switch a.Diet {
		case animal.DietCarnivore:
			hasCarnivore = true
		case animal.DietHerbivore:
			hasHerbivore = true
		}
	}
	if hasCarnivore {
		return "meat"
	}
	if hasHerbivore {
		return "vegetables"
	}
	return "seeds"
}

// FeedAnimals feeds one named enclosure, or all of them when the name is
// empty. The result is keyed by enclosure name.
func (z *Zoo) FeedAnimals(enclosureName string) (map[string]FeedResult, error) {
	results := make(map[string]FeedResult)

	if enclosureName != "" {
		e := z.FindEnclosure(enclosureName)
		if e == nil {
			return nil, fmt.Errorf("enclosure %q not found", enclosureName)
		}
		results[e.Name] = e.FeedAnimals(DetermineFoodType(e.Animals()), z.Ledger)
		return results, nil
	}

	for _, e := range z.enclosures {
		results[e.Name] = e.FeedAnimals(DetermineFoodType(e.Animals()), z.Ledger)
	}
	return results, nil
}

// CleanEnclosures cleans the named enclosure, or every enclosure that needs
// cleaning when the name is empty. It returns the number cleaned.
func (z *Zoo) CleanEnclosures(enclosureName string) (int, error) {
	if enclosureName != "" {
		e := z.FindEnclosure(enclosureName)
		if e == nil {
			return 0, fmt.Errorf("enclosure %q not found", enclosureName)
		}
		if !e.NeedsCleaning() {
			return 0, nil
		}
		e.Clean()
		return 1, nil
	}

	cleaned := 0
	for _, e := range z.enclosures {
		if e.NeedsCleaning() {
			e.Clean()
			cleaned++
		}
	}
	return cleaned, nil
}

// OrderSupplies restocks the basic food and medicine lines. Individual
// orders that cannot be funded are logged and skipped.
func (z *Zoo) OrderSupplies() {
	orders := []struct {
		kind string
		do   func() error
	}{
		{"meat", func() error { return z.Ledger.OrderFood("meat", 50.0, 8.0) }},
		{"seeds", func() error { return z.Ledger.OrderFood("seeds", 100.0, 2.0) }},
		{"vegetables", func() error { return z.Ledger.OrderFood("vegetables", 80.0, 3.0) }},
		{"vaccine", func() error { return z.Ledger.OrderMedicine("vaccine", 5, 15.0) }},
		{"antibiotics", func() error { return z.Ledger.OrderMedicine("antibiotics", 10, 8.0) }},
	}
	for _, o := range orders {
		if err := o.do(); err != nil {
			slog.Warn("supply order failed", "item", o.kind, "error", err)
		}
	}
}

// DayStats summarizes one completed daily update.
type DayStats struct {
	Day           int     `json:"day"`
	Visitors      int     `json:"visitors"`
	TicketIncome  float64 `json:"ticket_income"`
	OperatingCost float64 `json:"operating_cost"`
	CostsCovered  bool    `json:"costs_covered"`
}

// DailyUpdate runs one zoo day in fixed order: visitor simulation and ticket
// income first, then enclosure degradation and per-animal decay, then
// operating costs, then the ledger's daily reset, then the day counter. The
// ordering is load-bearing: same-day ticket income is credited before the
// cost debit is attempted.
func (z *Zoo) DailyUpdate(rng *entropy.Source) DayStats {
	stats := DayStats{Day: z.daysOperational + 1}

	stats.Visitors, stats.TicketIncome = z.simulateVisitors(rng)

	for _, e := range z.enclosures {
		e.DailyUpdate(rng)
	}

	stats.OperatingCost, stats.CostsCovered = z.payOperatingCosts()

	z.Ledger.ResetDaily()

	z.daysOperational++
	z.visitorsToday = 0

	slog.Info("day completed",
		"zoo", z.Name,
		"day", z.daysOperational,
		"visitors", stats.Visitors,
		"income", fmt.Sprintf("%.2f", stats.TicketIncome),
		"operating_cost", fmt.Sprintf("%.2f", stats.OperatingCost),
		"costs_covered", stats.CostsCovered,
		"funds", fmt.Sprintf("%.2f", z.Funds()),
	)
	return stats
}

func (z *Zoo) simulateVisitors(rng *entropy.Source) (int, float64) {
	base := 100
	randomFactor := rng.Between(-20, 50)
	attraction := z.AnimalCount() * 2

	z.visitorsToday = base + randomFactor + attraction
	if z.visitorsToday < 10 {
		z.visitorsToday = 10
	}
	z.totalVisitors += z.visitorsToday

	income := float64(z.visitorsToday) * z.ticketPrice
	if err := z.Ledger.Add(income, "ticket sales"); err != nil {
		slog.Error("ticket income credit failed", "error", err)
	}
	return z.visitorsToday, income
}

// payOperatingCosts attempts the daily cost debit. A shortfall is a warning,
// not a failure: the day still completes.
func (z *Zoo) payOperatingCosts() (float64, bool) {
	total := baseDailyCost +
		float64(z.AnimalCount())*perAnimalCost +
		float64(len(z.enclosures))*perEnclosureCost

	if err := z.Ledger.Spend(total, "daily operations"); err != nil {
		if errors.Is(err, ledger.ErrInsufficientFunds) {
			slog.Warn("could not pay full operating costs", "needed", total, "error", err)
			return total, false
		}
		slog.Error("operating cost debit failed", "error", err)
		return total, false
	}
	return total, true
}

// Status is the full zoo snapshot, the sole contract between the simulation
// core and any presentation layer.
type Status struct {
	Name            string        `json:"name"`
	DaysOperational int           `json:"days_operational"`
	TotalVisitors   int           `json:"total_visitors"`
	VisitorsToday   int           `json:"visitors_today"`
	EnclosureCount  int           `json:"enclosure_count"`
	AnimalCount     int           `json:"animal_count"`
	Enclosures      []Info        `json:"enclosures"`
	Resources       ledger.Status `json:"resources"`
	Financials      Financials    `json:"financials"`
}

// Financials summarizes the money side of the snapshot.
type Financials struct {
	Funds       float64 `json:"funds"`
	TicketPrice float64 `json:"ticket_price"`
	DailyCosts  float64 `json:"daily_costs"`
	DailyIncome float64 `json:"daily_income"`
}

// GetStatus returns the zoo snapshot.
func (z *Zoo) GetStatus() Status {
	infos := make([]Info, 0, len(z.enclosures))
	for _, e := range z.enclosures {
		infos = append(infos, e.GetInfo())
	}
	resources := z.Ledger.GetStatus()
	return Status{
		Name:            z.Name,
		DaysOperational: z.daysOperational,
		TotalVisitors:   z.totalVisitors,
		VisitorsToday:   z.visitorsToday,
		EnclosureCount:  len(z.enclosures),
		AnimalCount:     z.AnimalCount(),
		Enclosures:      infos,
		Resources:       resources,
		Financials: Financials{
			Funds:       resources.Funds,
			TicketPrice: z.ticketPrice,
			DailyCosts:  resources.DailyCosts,
			DailyIncome: resources.DailyIncome,
		},
	}
}
