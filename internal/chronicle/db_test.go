package chronicle

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/ozzoo/internal/monitor"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "chronicle.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleRecord(day int) DayRecord {
	return DayRecord{
		ID:            "id-" + string(rune('0'+day)),
		Day:           day,
		Visitors:      100 + day,
		TicketIncome:  2500.0,
		OperatingCost: 550.0,
		CostsCovered:  true,
		Funds:         48000.0,
		AnimalCount:   8,
		EventCount:    2,
		EventsJSON:    "[]",
		BehaviorJSON:  "[]",
		CriticalJSON:  "[]",
		Conditions:    "pleasant and clear",
		Temperature:   21.5,
		CreatedAt:     time.Now().UTC(),
	}
}

func TestRecordDay_RoundTrip(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.RecordDay(sampleRecord(1)))
	require.NoError(t, db.RecordDay(sampleRecord(2)))

	days, err := db.AllDays()
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, 1, days[0].Day, "AllDays is oldest first")
	assert.Equal(t, 101, days[0].Visitors)
	assert.Equal(t, "pleasant and clear", days[0].Conditions)
}

func TestRecordDay_DuplicateIDRejected(t *testing.T) {
	db := openTestDB(t)

	rec := sampleRecord(1)
	require.NoError(t, db.RecordDay(rec))
	assert.Error(t, db.RecordDay(rec))
}

func TestRecentDays_NewestFirstWithLimit(t *testing.T) {
	db := openTestDB(t)
	for day := 1; day <= 5; day++ {
		require.NoError(t, db.RecordDay(sampleRecord(day)))
	}

	recent, err := db.RecentDays(3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, 5, recent[0].Day)
	assert.Equal(t, 3, recent[2].Day)
}

func TestRecordAlerts(t *testing.T) {
	db := openTestDB(t)

	alerts := []monitor.Alert{
		{ID: "a1", Type: "health_critical", Animal: "Leo", Species: "Lion", Health: 25.0, Timestamp: time.Now()},
		{ID: "a2", Type: "health_improved", Animal: "Leo", Species: "Lion", Health: 55.0, Timestamp: time.Now()},
	}
	assert.NoError(t, db.RecordAlerts(3, alerts))
	assert.NoError(t, db.RecordAlerts(4, nil))
}

func TestExportCSV_WritesDayReports(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.RecordDay(sampleRecord(1)))

	dir := filepath.Join(t.TempDir(), "export")
	require.NoError(t, db.ExportCSV(dir))

	data, err := os.ReadFile(filepath.Join(dir, "day_reports.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "pleasant and clear")
	assert.Contains(t, string(data), "day")
}
