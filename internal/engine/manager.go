// Package engine provides the day orchestrator and the paced simulation
// loop. One call to AdvanceDay is one atomic simulated day.
package engine

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/talgya/ozzoo/internal/animal"
	"github.com/talgya/ozzoo/internal/chronicle"
	"github.com/talgya/ozzoo/internal/climate"
	"github.com/talgya/ozzoo/internal/entropy"
	"github.com/talgya/ozzoo/internal/events"
	"github.com/talgya/ozzoo/internal/monitor"
	"github.com/talgya/ozzoo/internal/zoo"
)

// maxRetainedReports bounds the in-memory day report history.
const maxRetainedReports = 30

// DayReport is the result of one completed day: everything a presentation
// layer needs to narrate it.
type DayReport struct {
	ID              string             `json:"id"`
	Day             int                `json:"day"`
	Events          []events.Triggered `json:"events"`
	EventMessages   []string           `json:"event_messages"`
	BehaviorEvents  []string           `json:"behavior_events"`
	CriticalAnimals []string           `json:"critical_animals"`
	Stats           zoo.DayStats       `json:"stats"`
	Vitals          VitalStats         `json:"vitals"`
	Weather         climate.Report     `json:"weather"`
	Status          zoo.Status         `json:"zoo_status"`
	GameOver        bool               `json:"game_over"`
}

// Manager sequences the daily pipeline: events first, then the zoo's own
// update, then narrative synthesis and health-alert collection. It is the
// only component the presentation layer talks to, so its public accessors
// are guarded for concurrent reads while a day advances.
type Manager struct {
	mu sync.RWMutex

	Zoo     *zoo.Zoo
	Events  *events.Engine
	Monitor *monitor.HealthMonitor
	Factory *animal.Factory
	Rng     *entropy.Source
	Climate *climate.Model

	// Chronicle is optional; when set, completed days and alerts are
	// recorded to it.
	Chronicle *chronicle.DB

	day         int
	alertCursor int
	actionLog   []string
	reports     []DayReport
}

// NewManager wires the orchestrator around a zoo with a seeded random source.
func NewManager(z *zoo.Zoo, rng *entropy.Source, seed int64) *Manager {
	factory := animal.NewFactory()
	return &Manager{
		Zoo:     z,
		Events:  events.NewEngine(rng, factory),
		Monitor: monitor.New(),
		Factory: factory,
		Rng:     rng,
		Climate: climate.NewModel(seed),
	}
}

// Day returns the current day count.
func (m *Manager) Day() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.day
}

// CreateAnimal builds an animal through the factory and attaches the health
// monitor to it.
func (m *Manager) CreateAnimal(typeKey, name string, age int) (*animal.Animal, error) {
	a, err := m.Factory.Create(typeKey, name, age)
	if err != nil {
		return nil, err
	}
	a.Attach(m.Monitor)
	m.logAction(fmt.Sprintf("Created %s: %s", typeKey, name))
	return a, nil
}

// AddAnimalToZoo creates an animal and places it into the named enclosure.
// All failure causes collapse into false; the cause is logged.
func (m *Manager) AddAnimalToZoo(typeKey, name string, age int, enclosureName string) bool {
	a, err := m.CreateAnimal(typeKey, name, age)
	if err != nil {
		slog.Warn("animal creation failed", "type", typeKey, "name", name, "error", err)
		return false
	}
	if !m.Zoo.AddAnimal(a, enclosureName) {
		return false
	}
	m.logAction(fmt.Sprintf("Added %s the %s to %s", name, typeKey, enclosureName))
	return true
}

// Feed feeds the named enclosure, or all of them when the name is empty.
func (m *Manager) Feed(enclosureName string) (map[string]zoo.FeedResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	results, err := m.Zoo.FeedAnimals(enclosureName)
	if err != nil {
		return nil, err
	}
	m.logAction("Fed animals")
	return results, nil
}

// Clean cleans the named enclosure, or every enclosure that needs it.
func (m *Manager) Clean(enclosureName string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cleaned, err := m.Zoo.CleanEnclosures(enclosureName)
	if err != nil {
		return 0, err
	}
	if cleaned > 0 {
		m.logAction(fmt.Sprintf("Cleaned %d enclosures", cleaned))
	}
	return cleaned, nil
}

// Restock places the standard supply orders.
func (m *Manager) Restock() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Zoo.OrderSupplies()
	m.logAction("Ordered supplies")
}

// AdvanceDay runs one full simulated day and returns its report.
func (m *Manager) AdvanceDay() DayReport {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.day++
	m.logAction(fmt.Sprintf("Advanced to day %d", m.day))

	// Events fire before the zoo's own daily routine so their state changes
	// feed into visitor simulation and decay.
	fired := m.Events.TriggerDaily(m.Zoo)

	stats := m.Zoo.DailyUpdate(m.Rng)

	status := m.Zoo.GetStatus()
	report := DayReport{
		ID:              uuid.NewString(),
		Day:             m.day,
		Events:          fired,
		EventMessages:   flattenMessages(fired),
		BehaviorEvents:  synthesizeBehavior(m.Rng, status, stats),
		CriticalAnimals: m.Monitor.CriticalAnimals(),
		Stats:           stats,
		Vitals:          collectVitalStats(status),
		Weather:         m.Climate.ForDay(m.day),
		Status:          status,
		GameOver:        status.Financials.Funds <= 0,
	}

	for _, t := range fired {
		if t.Result.FinancialImpact > 0 {
			m.logAction(fmt.Sprintf("Event: gained $%.0f from %s", t.Result.FinancialImpact, t.Name))
		} else if t.Result.FinancialImpact < 0 {
			m.logAction(fmt.Sprintf("Event: lost $%.0f from %s", -t.Result.FinancialImpact, t.Name))
		}
	}

	m.reports = append(m.reports, report)
	if len(m.reports) > maxRetainedReports {
		m.reports = m.reports[len(m.reports)-maxRetainedReports:]
	}

	m.record(report)
	return report
}

// record persists the report and any new alerts to the chronicle.
func (m *Manager) record(report DayReport) {
	history := m.Monitor.AlertHistory()
	newAlerts := history[m.alertCursor:]
	m.alertCursor = len(history)

	if m.Chronicle == nil {
		return
	}

	eventsJSON, _ := json.Marshal(report.Events)
	behaviorJSON, _ := json.Marshal(report.BehaviorEvents)
	criticalJSON, _ := json.Marshal(report.CriticalAnimals)

	rec := chronicle.DayRecord{
		ID:            report.ID,
		Day:           report.Day,
		Visitors:      report.Stats.Visitors,
		TicketIncome:  report.Stats.TicketIncome,
		OperatingCost: report.Stats.OperatingCost,
		CostsCovered:  report.Stats.CostsCovered,
		Funds:         report.Status.Financials.Funds,
		AnimalCount:   report.Status.AnimalCount,
		EventCount:    len(report.Events),
		EventsJSON:    string(eventsJSON),
		BehaviorJSON:  string(behaviorJSON),
		CriticalJSON:  string(criticalJSON),
		Conditions:    report.Weather.Conditions,
		Temperature:   report.Weather.Temperature,
		CreatedAt:     reportTime(),
	}
	if err := m.Chronicle.RecordDay(rec); err != nil {
		slog.Error("chronicle day record failed", "day", report.Day, "error", err)
	}
	if err := m.Chronicle.RecordAlerts(report.Day, newAlerts); err != nil {
		slog.Error("chronicle alert record failed", "day", report.Day, "error", err)
	}
}

// IsGameOver reports whether the zoo has run out of money.
func (m *Manager) IsGameOver() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.day > 0 && m.Zoo.Funds() <= 0
}

// Status returns the current zoo snapshot.
func (m *Manager) Status() zoo.Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.Zoo.GetStatus()
}

// Reports returns a copy of the retained day reports, oldest first.
func (m *Manager) Reports() []DayReport {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]DayReport, len(m.reports))
	copy(out, m.reports)
	return out
}

// Alerts returns the full health alert history.
func (m *Manager) Alerts() []monitor.Alert {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.Monitor.AlertHistory()
}

// Critical returns the animals currently below the health threshold.
func (m *Manager) Critical() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.Monitor.CriticalAnimals()
}

// RecentActions returns the last count orchestrator log lines.
func (m *Manager) RecentActions(count int) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.actionLog) <= count {
		out := make([]string, len(m.actionLog))
		copy(out, m.actionLog)
		return out
	}
	tail := m.actionLog[len(m.actionLog)-count:]
	out := make([]string, len(tail))
	copy(out, tail)
	return out
}

func (m *Manager) logAction(action string) {
	m.actionLog = append(m.actionLog, fmt.Sprintf("Day %d: %s", m.day, action))
}

func flattenMessages(fired []events.Triggered) []string {
	var msgs []string
	for _, t := range fired {
		msgs = append(msgs, t.Result.Messages...)
	}
	return msgs
}
