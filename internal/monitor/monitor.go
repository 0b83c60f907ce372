// Package monitor provides the built-in health notification sink: it tracks
// which animals are currently critical and keeps an append-only alert
// history.
package monitor

import (
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/talgya/ozzoo/internal/animal"
)

// Alert is one recorded health notification.
type Alert struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Animal    string    `json:"animal"`
	Species   string    `json:"species"`
	Health    float64   `json:"health"`
	Cause     string    `json:"cause,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthMonitor receives health notifications from observed animals. The
// critical set is mutated solely by threshold-crossing notifications: add on
// critical, remove on improvement or death.
type HealthMonitor struct {
	critical map[string]bool
	history  []Alert
}

// New creates an empty monitor.
func New() *HealthMonitor {
	return &HealthMonitor{critical: make(map[string]bool)}
}

// Receive implements animal.Sink.
func (m *HealthMonitor) Receive(a *animal.Animal, event string, change animal.VitalChange) {
	alert := Alert{
		ID:        uuid.NewString(),
		Type:      event,
		Animal:    a.Name,
		Species:   a.Species,
		Health:    change.NewHealth,
		Cause:     change.Cause,
		Timestamp: time.Now(),
	}
	m.history = append(m.history, alert)

	switch event {
	case animal.EventHealthCritical:
		m.critical[a.Key()] = true
		slog.Warn("critical health alert",
			"animal", a.Name, "species", a.Species,
			"health", change.NewHealth, "was", change.OldHealth)
	case animal.EventHealthImproved:
		delete(m.critical, a.Key())
		slog.Info("health improved",
			"animal", a.Name, "species", a.Species, "health", change.NewHealth)
	case animal.EventAnimalDied:
		delete(m.critical, a.Key())
		slog.Warn("animal died",
			"animal", a.Name, "species", a.Species, "cause", change.Cause)
	}
}

// CriticalAnimals returns the keys of currently-critical animals, sorted for
// stable output.
func (m *HealthMonitor) CriticalAnimals() []string {
	keys := make([]string, 0, len(m.critical))
	for k := range m.critical {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsCritical reports whether the given animal key is in the critical set.
func (m *HealthMonitor) IsCritical(key string) bool {
	return m.critical[key]
}

// AlertHistory returns a copy of the recorded alerts, oldest first.
func (m *HealthMonitor) AlertHistory() []Alert {
	out := make([]Alert, len(m.history))
	copy(out, m.history)
	return out
}
