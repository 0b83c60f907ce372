// Package events provides the catalog of probabilistic daily events and the
// engine that selects and triggers them. Events mutate zoo state directly
// and report structured outcomes; the reported impacts are informational,
// already applied.
package events

import (
	"log/slog"

	"github.com/talgya/ozzoo/internal/animal"
	"github.com/talgya/ozzoo/internal/entropy"
	"github.com/talgya/ozzoo/internal/zoo"
)

// Category tags an event's domain.
type Category string

const (
	CategoryWeather   Category = "weather"
	CategoryAnimal    Category = "animal"
	CategoryFinancial Category = "financial"
	CategoryVisitor   Category = "visitor"
	CategorySpecial   Category = "special"
)

// Severity tags an event's tone.
type Severity string

const (
	SeverityPositive Severity = "positive"
	SeverityNeutral  Severity = "neutral"
	SeverityNegative Severity = "negative"
	SeverityCritical Severity = "critical"
)

// Result reports what an event did. Impact fields describe deltas that the
// effect already applied to zoo state; callers must not re-apply them. A
// failed event produced no effects and does not count toward the day's quota.
type Result struct {
	Success         bool     `json:"success"`
	Messages        []string `json:"messages"`
	FinancialImpact float64  `json:"financial_impact,omitempty"`
	HappinessImpact float64  `json:"happiness_impact,omitempty"`
	HealthImpact    float64  `json:"health_impact,omitempty"`
	VisitorImpact   int      `json:"visitor_impact,omitempty"`
}

// Context carries the collaborators an effect may need.
type Context struct {
	Zoo     *zoo.Zoo
	Rng     *entropy.Source
	Factory *animal.Factory
}

// Effect applies an event's state transition and reports the outcome.
type Effect func(ctx *Context) Result

// Event is one catalog entry: a declarative record plus a per-day
// already-fired flag.
type Event struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Severity    Severity `json:"severity"`
	Probability float64  `json:"probability"`
	Effect      Effect   `json:"-"`

	occurredToday bool
}

// ShouldOccur rolls the event's probability; an event already fired today
// never occurs again.
func (e *Event) ShouldOccur(rng *entropy.Source) bool {
	return rng.Chance(e.Probability) && !e.occurredToday
}

// Trigger runs the effect and marks the event consumed on success.
func (e *Event) Trigger(ctx *Context) Result {
	result := e.Effect(ctx)
	if result.Success {
		e.occurredToday = true
	}
	return result
}

// Reset clears the already-fired flag for a new day.
func (e *Event) Reset() {
	e.occurredToday = false
}

// Triggered pairs an event with its result for the day's report.
type Triggered struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Severity Severity `json:"severity"`
	Result   Result   `json:"result"`
}

// Engine owns the event catalog and runs the per-day selection: reset all
// flags, shuffle, then scan until a random target of 1-3 successful events
// is met or the catalog is exhausted.
type Engine struct {
	catalog []*Event
	rng     *entropy.Source
	factory *animal.Factory
}

// NewEngine creates an engine with the built-in catalog.
func NewEngine(rng *entropy.Source, factory *animal.Factory) *Engine {
	return &Engine{
		catalog: Catalog(),
		rng:     rng,
		factory: factory,
	}
}

// AddEvent appends a custom event to the catalog.
func (en *Engine) AddEvent(e *Event) {
	en.catalog = append(en.catalog, e)
}

// Events returns a copy of the catalog.
func (en *Engine) Events() []*Event {
	out := make([]*Event, len(en.catalog))
	copy(out, en.catalog)
	return out
}

// TriggerDaily runs one day's event selection against the zoo and returns
// the successful triggers in firing order.
func (en *Engine) TriggerDaily(z *zoo.Zoo) []Triggered {
	for _, e := range en.catalog {
		e.Reset()
	}

	target := en.rng.Between(1, 3)

	order := make([]*Event, len(en.catalog))
	copy(order, en.catalog)
	en.rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	ctx := &Context{Zoo: z, Rng: en.rng, Factory: en.factory}

	var fired []Triggered
	for _, e := range order {
		if len(fired) >= target {
			break
		}
		if !e.ShouldOccur(en.rng) {
			continue
		}
		result := e.Trigger(ctx)
		if !result.Success {
			slog.Debug("event fizzled", "event", e.Name, "messages", result.Messages)
			continue
		}
		slog.Info("event triggered", "event", e.Name, "category", e.Category, "severity", e.Severity)
		fired = append(fired, Triggered{
			Name:     e.Name,
			Category: e.Category,
			Severity: e.Severity,
			Result:   result,
		})
	}
	return fired
}
