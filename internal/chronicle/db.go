// Package chronicle provides SQLite-backed recording of completed days and
// health alerts. It is an append-only history for presentation and analysis;
// the simulation never reads its own state back from it.
package chronicle

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/ozzoo/internal/monitor"
)

// DB wraps the SQLite connection holding the chronicle.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates the chronicle database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open chronicle: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate chronicle: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS day_reports (
		id TEXT PRIMARY KEY,
		day INTEGER NOT NULL,
		visitors INTEGER NOT NULL,
		ticket_income REAL NOT NULL,
		operating_cost REAL NOT NULL,
		costs_covered INTEGER NOT NULL,
		funds REAL NOT NULL,
		animal_count INTEGER NOT NULL,
		event_count INTEGER NOT NULL,
		events_json TEXT NOT NULL,
		behavior_json TEXT NOT NULL,
		critical_json TEXT NOT NULL,
		conditions TEXT NOT NULL,
		temperature REAL NOT NULL,
		created_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS health_alerts (
		id TEXT PRIMARY KEY,
		day INTEGER NOT NULL,
		type TEXT NOT NULL,
		animal TEXT NOT NULL,
		species TEXT NOT NULL,
		health REAL NOT NULL,
		cause TEXT,
		created_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_day_reports_day ON day_reports(day);
	CREATE INDEX IF NOT EXISTS idx_health_alerts_day ON health_alerts(day);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// DayRecord is the flattened chronicle row for one completed day. The same
// struct feeds the CSV export.
type DayRecord struct {
	ID            string    `db:"id" csv:"id" json:"id"`
	Day           int       `db:"day" csv:"day" json:"day"`
	Visitors      int       `db:"visitors" csv:"visitors" json:"visitors"`
	TicketIncome  float64   `db:"ticket_income" csv:"ticket_income" json:"ticket_income"`
	OperatingCost float64   `db:"operating_cost" csv:"operating_cost" json:"operating_cost"`
	CostsCovered  bool      `db:"costs_covered" csv:"costs_covered" json:"costs_covered"`
	Funds         float64   `db:"funds" csv:"funds" json:"funds"`
	AnimalCount   int       `db:"animal_count" csv:"animal_count" json:"animal_count"`
	EventCount    int       `db:"event_count" csv:"event_count" json:"event_count"`
	EventsJSON    string    `db:"events_json" csv:"-" json:"-"`
	BehaviorJSON  string    `db:"behavior_json" csv:"-" json:"-"`
	CriticalJSON  string    `db:"critical_json" csv:"-" json:"-"`
	Conditions    string    `db:"conditions" csv:"conditions" json:"conditions"`
	Temperature   float64   `db:"temperature" csv:"temperature" json:"temperature"`
	CreatedAt     time.Time `db:"created_at" csv:"-" json:"created_at"`
}

// RecordDay appends one day record.
func (db *DB) RecordDay(rec DayRecord) error {
	_, err := db.conn.NamedExec(`
		INSERT INTO day_reports (
			id, day, visitors, ticket_income, operating_cost, costs_covered,
			funds, animal_count, event_count, events_json, behavior_json,
			critical_json, conditions, temperature, created_at
		) VALUES (
			:id, :day, :visitors, :ticket_income, :operating_cost, :costs_covered,
			:funds, :animal_count, :event_count, :events_json, :behavior_json,
			:critical_json, :conditions, :temperature, :created_at
		)`, rec)
	if err != nil {
		return fmt.Errorf("record day %d: %w", rec.Day, err)
	}
	return nil
}

// RecordAlerts appends health alerts raised during the given day.
func (db *DB) RecordAlerts(day int, alerts []monitor.Alert) error {
	for _, a := range alerts {
		_, err := db.conn.Exec(`
			INSERT INTO health_alerts (id, day, type, animal, species, health, cause, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			a.ID, day, a.Type, a.Animal, a.Species, a.Health, a.Cause, a.Timestamp)
		if err != nil {
			return fmt.Errorf("record alert for %s: %w", a.Animal, err)
		}
	}
	return nil
}

// RecentDays returns up to limit day records, newest first.
func (db *DB) RecentDays(limit int) ([]DayRecord, error) {
	var records []DayRecord
	err := db.conn.Select(&records,
		`SELECT * FROM day_reports ORDER BY day DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("load recent days: %w", err)
	}
	return records, nil
}

// AllDays returns every day record, oldest first.
func (db *DB) AllDays() ([]DayRecord, error) {
	var records []DayRecord
	err := db.conn.Select(&records, `SELECT * FROM day_reports ORDER BY day ASC`)
	if err != nil {
		return nil, fmt.Errorf("load days: %w", err)
	}
	return records, nil
}
