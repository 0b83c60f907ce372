package zoo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/ozzoo/internal/animal"
	"github.com/talgya/ozzoo/internal/entropy"
)

func newTestZoo(t *testing.T, funds float64) *Zoo {
	t.Helper()
	z := New("Testville Zoo", funds, 25.0)
	require.NoError(t, z.AddEnclosure(NewEnclosure("Field", 4, "savannah", nil)))
	return z
}

func TestAddEnclosure_DuplicateNameRejected(t *testing.T) {
	z := newTestZoo(t, 1000.0)

	err := z.AddEnclosure(NewEnclosure("Field", 2, "savannah", nil))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateEnclosure))
	assert.Len(t, z.Enclosures(), 1)
}

func TestRemoveEnclosure_OnlyWhenEmpty(t *testing.T) {
	z := newTestZoo(t, 1000.0)
	require.True(t, z.AddAnimal(mustAnimal(t, "zebra", "Zigzag", 4), "Field"))

	ok, err := z.RemoveEnclosure("Field")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEnclosureNotEmpty))
	assert.False(t, ok)

	z.FindEnclosure("Field").RemoveAnimal("Zigzag")
	ok, err = z.RemoveEnclosure("Field")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, z.Enclosures())
}

func TestRemoveEnclosure_UnknownNameIsNotAnError(t *testing.T) {
	z := newTestZoo(t, 1000.0)

	ok, err := z.RemoveEnclosure("Nowhere")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestAddAnimal_UnknownEnclosureReturnsFalse(t *testing.T) {
	z := newTestZoo(t, 1000.0)
	assert.False(t, z.AddAnimal(mustAnimal(t, "zebra", "Zigzag", 4), "Nowhere"))
}

func TestAddAnimal_IncompatibleReturnsFalse(t *testing.T) {
	z := newTestZoo(t, 1000.0)
	require.True(t, z.AddAnimal(mustAnimal(t, "zebra", "Zigzag", 4), "Field"))

	assert.False(t, z.AddAnimal(mustAnimal(t, "lion", "Leo", 5), "Field"))
	assert.Equal(t, 1, z.AnimalCount())
}

func TestFindEnclosure_CaseInsensitive(t *testing.T) {
	z := newTestZoo(t, 1000.0)
	assert.NotNil(t, z.FindEnclosure("field"))
	assert.Nil(t, z.FindEnclosure("FieldX"))
}

func TestDetermineFoodType(t *testing.T) {
	lion := mustAnimal(t, "lion", "Leo", 5)
	zebra := mustAnimal(t, "zebra", "Zigzag", 4)
	bird := mustAnimal(t, "bird", "Tweety", 1)

	assert.Equal(t, "meat", DetermineFoodType([]*animal.Animal{lion}))
	assert.Equal(t, "meat", DetermineFoodType([]*animal.Animal{zebra, lion}))
	assert.Equal(t, "vegetables", DetermineFoodType([]*animal.Animal{zebra, bird}))
	assert.Equal(t, "seeds", DetermineFoodType([]*animal.Animal{bird}))
	assert.Equal(t, "seeds", DetermineFoodType(nil))
}

func TestFeedAnimals_UnknownEnclosureErrors(t *testing.T) {
	z := newTestZoo(t, 1000.0)
	_, err := z.FeedAnimals("Nowhere")
	assert.Error(t, err)
}

func TestFeedAnimals_AllEnclosures(t *testing.T) {
	z := newTestZoo(t, 1000.0)
	require.NoError(t, z.AddEnclosure(NewEnclosure("Pool", 4, "arctic", nil)))
	require.True(t, z.AddAnimal(mustAnimal(t, "zebra", "Zigzag", 4), "Field"))
	require.True(t, z.AddAnimal(mustAnimal(t, "penguin", "Pip", 3), "Pool"))

	results, err := z.FeedAnimals("")
	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Len(t, results["Field"].Successful, 1)
	assert.Len(t, results["Pool"].Successful, 1)
}

func TestCleanEnclosures_OnlyDirtyOnesCleaned(t *testing.T) {
	z := newTestZoo(t, 1000.0)

	cleaned, err := z.CleanEnclosures("")
	require.NoError(t, err)
	assert.Equal(t, 0, cleaned, "pristine enclosures are skipped")

	cleaned, err = z.CleanEnclosures("Field")
	require.NoError(t, err)
	assert.Equal(t, 0, cleaned)

	_, err = z.CleanEnclosures("Nowhere")
	assert.Error(t, err)
}

func TestDailyUpdate_VisitorFloorAndIncome(t *testing.T) {
	z := newTestZoo(t, 10000.0)
	rng := entropy.NewSource(42)

	stats := z.DailyUpdate(rng)

	assert.Equal(t, 1, stats.Day)
	assert.GreaterOrEqual(t, stats.Visitors, 10)
	assert.Equal(t, float64(stats.Visitors)*25.0, stats.TicketIncome)
	assert.Equal(t, stats.Visitors, z.TotalVisitors())
}

func TestDailyUpdate_IncomeCreditedBeforeCosts(t *testing.T) {
	// Operating cost for one enclosure and no animals is 550. Starting with
	// 100, the day's ticket income (at least 250) must land first so the
	// debit can succeed.
	z := newTestZoo(t, 400.0)
	rng := entropy.NewSource(1)

	stats := z.DailyUpdate(rng)

	assert.Equal(t, 550.0, stats.OperatingCost)
	assert.True(t, stats.CostsCovered)
}

func TestDailyUpdate_UncoveredCostsStillCompleteTheDay(t *testing.T) {
	z := New("Broke Zoo", 0.0, 0.0) // no ticket income
	require.NoError(t, z.AddEnclosure(NewEnclosure("Field", 4, "savannah", nil)))
	rng := entropy.NewSource(1)

	stats := z.DailyUpdate(rng)

	assert.False(t, stats.CostsCovered)
	assert.Equal(t, 1, z.DaysOperational())
	assert.Equal(t, 0.0, z.Funds(), "failed debit must not change the balance")
}

func TestDailyUpdate_CostsScaleWithAnimalsAndEnclosures(t *testing.T) {
	z := newTestZoo(t, 100000.0)
	require.NoError(t, z.AddEnclosure(NewEnclosure("Pool", 4, "arctic", nil)))
	require.True(t, z.AddAnimal(mustAnimal(t, "penguin", "Pip", 3), "Pool"))
	require.True(t, z.AddAnimal(mustAnimal(t, "penguin", "Waddles", 4), "Pool"))

	stats := z.DailyUpdate(entropy.NewSource(1))

	// 500 base + 2*10 animals + 2*50 enclosures.
	assert.Equal(t, 620.0, stats.OperatingCost)
}

func TestDailyUpdate_ResetsLedgerAccumulators(t *testing.T) {
	z := newTestZoo(t, 10000.0)
	z.DailyUpdate(entropy.NewSource(1))

	assert.Equal(t, 0.0, z.Ledger.DailyCosts())
	assert.Equal(t, 0.0, z.Ledger.DailyIncome())
}

func TestGetStatus_ReflectsState(t *testing.T) {
	z := newTestZoo(t, 5000.0)
	require.True(t, z.AddAnimal(mustAnimal(t, "zebra", "Zigzag", 4), "Field"))

	status := z.GetStatus()

	assert.Equal(t, "Testville Zoo", status.Name)
	assert.Equal(t, 1, status.EnclosureCount)
	assert.Equal(t, 1, status.AnimalCount)
	assert.Equal(t, 5000.0, status.Financials.Funds)
	assert.Equal(t, 25.0, status.Financials.TicketPrice)
	require.Len(t, status.Enclosures, 1)
	assert.Equal(t, "Zigzag", status.Enclosures[0].Animals[0].Name)
}

func TestOrderSupplies_RestocksWhenFunded(t *testing.T) {
	z := newTestZoo(t, 10000.0)
	z.OrderSupplies()

	supply := z.Ledger.FoodSupply()
	assert.Equal(t, 150.0, supply["meat"])
	assert.Equal(t, 300.0, supply["seeds"])
	assert.Equal(t, 180.0, supply["vegetables"])
	assert.Equal(t, 15, z.Ledger.MedicineSupply()["vaccine"])
}

func TestOrderSupplies_SkipsUnfundableOrders(t *testing.T) {
	z := newTestZoo(t, 0.0)
	z.OrderSupplies()

	assert.Equal(t, 100.0, z.Ledger.FoodSupply()["meat"])
	assert.Equal(t, 0.0, z.Funds())
}
