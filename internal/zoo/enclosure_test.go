package zoo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/ozzoo/internal/animal"
	"github.com/talgya/ozzoo/internal/entropy"
	"github.com/talgya/ozzoo/internal/ledger"
)

func mustAnimal(t *testing.T, typeKey, name string, age int) *animal.Animal {
	t.Helper()
	a, err := animal.NewFactory().Create(typeKey, name, age)
	require.NoError(t, err)
	return a
}

func TestAddAnimal_CapacityEnforced(t *testing.T) {
	e := NewEnclosure("Small Pen", 1, "savannah", nil)

	require.NoError(t, e.AddAnimal(mustAnimal(t, "zebra", "First", 3)))

	err := e.AddAnimal(mustAnimal(t, "zebra", "Second", 2))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCapacityExceeded))
	assert.Equal(t, 1, e.Count())
}

func TestAddAnimal_EmptyEnclosureAcceptsAnything(t *testing.T) {
	e := NewEnclosure("Open Pen", 5, "forest", nil)
	assert.NoError(t, e.AddAnimal(mustAnimal(t, "lion", "Leo", 5)))
}

func TestAddAnimal_SameSpeciesAlwaysCompatible(t *testing.T) {
	e := NewEnclosure("Pride Rock", 4, "savannah", nil)

	require.NoError(t, e.AddAnimal(mustAnimal(t, "lion", "Leo", 5)))
	assert.NoError(t, e.AddAnimal(mustAnimal(t, "lion", "Nala", 4)))
}

func TestAddAnimal_CarnivoreCannotJoinHerbivores(t *testing.T) {
	e := NewEnclosure("Grazing Field", 4, "savannah", nil)
	require.NoError(t, e.AddAnimal(mustAnimal(t, "zebra", "Zigzag", 4)))

	err := e.AddAnimal(mustAnimal(t, "lion", "Leo", 5))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIncompatibleSpecies))
}

func TestAddAnimal_HerbivoreCannotJoinCarnivores(t *testing.T) {
	e := NewEnclosure("Big Cat Den", 4, "savannah", nil)
	require.NoError(t, e.AddAnimal(mustAnimal(t, "lion", "Leo", 5)))

	err := e.AddAnimal(mustAnimal(t, "giraffe", "Stretch", 6))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIncompatibleSpecies))
}

func TestAddAnimal_AllowListRejectsOutsiders(t *testing.T) {
	e := NewEnclosure("Penguin Pool", 4, "arctic", []string{"Penguin"})
	require.NoError(t, e.AddAnimal(mustAnimal(t, "penguin", "Pip", 3)))

	err := e.AddAnimal(mustAnimal(t, "eagle", "Echo", 3))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIncompatibleSpecies))
}

func TestAddAnimal_RejectedAddLeavesEnclosureUnchanged(t *testing.T) {
	e := NewEnclosure("Grazing Field", 4, "savannah", nil)
	require.NoError(t, e.AddAnimal(mustAnimal(t, "zebra", "Zigzag", 4)))

	_ = e.AddAnimal(mustAnimal(t, "lion", "Leo", 5))
	assert.Equal(t, 1, e.Count())
	assert.Equal(t, "Zigzag", e.Animals()[0].Name)
}

func TestRemoveAnimal_CaseInsensitiveFirstMatch(t *testing.T) {
	e := NewEnclosure("Pool", 4, "arctic", nil)
	require.NoError(t, e.AddAnimal(mustAnimal(t, "penguin", "Pip", 3)))
	require.NoError(t, e.AddAnimal(mustAnimal(t, "penguin", "Waddles", 4)))

	removed := e.RemoveAnimal("pip")
	require.NotNil(t, removed)
	assert.Equal(t, "Pip", removed.Name)
	assert.Equal(t, 1, e.Count())
}

func TestRemoveAnimal_AbsenceIsNotAnError(t *testing.T) {
	e := NewEnclosure("Pool", 4, "arctic", nil)
	assert.Nil(t, e.RemoveAnimal("Ghost"))
}

func TestClean_RestoresFullCleanliness(t *testing.T) {
	e := NewEnclosure("Pen", 4, "savannah", nil)
	require.NoError(t, e.AddAnimal(mustAnimal(t, "zebra", "Zigzag", 4)))

	rng := entropy.NewSource(2)
	for i := 0; i < 10; i++ {
		e.DailyUpdate(rng)
	}
	assert.Less(t, e.Cleanliness(), 100.0)

	e.Clean()
	assert.Equal(t, 100.0, e.Cleanliness())
	assert.False(t, e.NeedsCleaning())
}

func TestBoostCleanliness_CapsAtHundred(t *testing.T) {
	e := NewEnclosure("Pen", 4, "savannah", nil)
	e.BoostCleanliness(50.0)
	assert.Equal(t, 100.0, e.Cleanliness())
}

func TestDailyUpdate_DirtScalesWithResidents(t *testing.T) {
	seed := int64(9)
	one := NewEnclosure("One", 4, "savannah", nil)
	require.NoError(t, one.AddAnimal(mustAnimal(t, "zebra", "A", 1)))

	two := NewEnclosure("Two", 4, "savannah", nil)
	require.NoError(t, two.AddAnimal(mustAnimal(t, "zebra", "B", 1)))
	require.NoError(t, two.AddAnimal(mustAnimal(t, "zebra", "C", 1)))

	// Same seed means the same dirt draw; the dirtier enclosure is the one
	// with more residents.
	one.DailyUpdate(entropy.NewSource(seed))
	two.DailyUpdate(entropy.NewSource(seed))
	assert.Greater(t, one.Cleanliness(), two.Cleanliness())
}

func TestDailyUpdate_DirtyEnclosurePenalizesHappiness(t *testing.T) {
	e := NewEnclosure("Pen", 4, "savannah", nil)
	a := mustAnimal(t, "zebra", "Zigzag", 0)
	require.NoError(t, e.AddAnimal(a))

	rng := entropy.NewSource(4)
	for i := 0; i < 60; i++ {
		e.DailyUpdate(rng)
	}

	assert.Equal(t, 0.0, e.Cleanliness())
	assert.Less(t, a.Happiness(), 100.0)
}

func TestFeedAnimals_DebitsTwoKilosPerAnimal(t *testing.T) {
	e := NewEnclosure("Pool", 4, "arctic", nil)
	require.NoError(t, e.AddAnimal(mustAnimal(t, "penguin", "Pip", 3)))
	require.NoError(t, e.AddAnimal(mustAnimal(t, "penguin", "Waddles", 4)))

	l := ledger.New(0.0)
	result := e.FeedAnimals("fish", l)

	assert.Len(t, result.Successful, 2)
	assert.Empty(t, result.Failed)
	assert.Equal(t, 46.0, l.FoodSupply()["fish"])
}

func TestFeedAnimals_SupplyFailureFeedsNobody(t *testing.T) {
	e := NewEnclosure("Bug House", 20, "forest", nil)
	for i := 0; i < 15; i++ {
		require.NoError(t, e.AddAnimal(mustAnimal(t, "snake", "S", 1)))
	}

	l := ledger.New(0.0) // 20kg insects in stock, need 30kg
	result := e.FeedAnimals("insects", l)

	assert.Empty(t, result.Successful)
	require.Len(t, result.Failed, 1)
	assert.Contains(t, result.Failed[0], "food supply error")
	assert.Equal(t, 20.0, l.FoodSupply()["insects"], "failed feed must not debit stock")
}

func TestFeedAnimals_RefusalSurfacesInMessageOnly(t *testing.T) {
	e := NewEnclosure("Field", 4, "savannah", nil)
	require.NoError(t, e.AddAnimal(mustAnimal(t, "zebra", "Zigzag", 4)))

	l := ledger.New(0.0)
	result := e.FeedAnimals("meat", l)

	require.Len(t, result.Successful, 1)
	assert.Contains(t, result.Successful[0], "prefers plants")
	assert.Empty(t, result.Refused)
}

func TestOccupancy(t *testing.T) {
	e := NewEnclosure("Pen", 4, "savannah", nil)
	assert.Equal(t, 0.0, e.Occupancy())

	require.NoError(t, e.AddAnimal(mustAnimal(t, "zebra", "A", 1)))
	assert.Equal(t, 25.0, e.Occupancy())
}
