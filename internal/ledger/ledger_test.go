package ledger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpend_DebitsFunds(t *testing.T) {
	l := New(1000.0)

	require.NoError(t, l.Spend(300.0, "test"))
	assert.Equal(t, 700.0, l.Funds())
	assert.Equal(t, 300.0, l.DailyCosts())
}

func TestSpend_InsufficientFundsLeavesBalanceUntouched(t *testing.T) {
	l := New(100.0)

	err := l.Spend(150.0, "too much")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInsufficientFunds))
	assert.Equal(t, 100.0, l.Funds())
	assert.Equal(t, 0.0, l.DailyCosts())
}

func TestSpend_NegativeAmountRejected(t *testing.T) {
	l := New(100.0)

	err := l.Spend(-50.0, "refund trick")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidAmount))
	assert.Equal(t, 100.0, l.Funds())
}

func TestAdd_CreditsFundsAndIncome(t *testing.T) {
	l := New(0.0)

	require.NoError(t, l.Add(250.0, "tickets"))
	assert.Equal(t, 250.0, l.Funds())
	assert.Equal(t, 250.0, l.DailyIncome())

	err := l.Add(-1.0, "negative")
	assert.True(t, errors.Is(err, ErrInvalidAmount))
}

func TestUseFood_DebitsStock(t *testing.T) {
	l := New(0.0)

	require.NoError(t, l.UseFood("meat", 40.0))
	assert.Equal(t, 60.0, l.FoodSupply()["meat"])
}

func TestUseFood_UnknownCategory(t *testing.T) {
	l := New(0.0)

	err := l.UseFood("pizza", 1.0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownResource))
}

func TestUseFood_InsufficientSupplyIsAtomic(t *testing.T) {
	l := New(0.0)

	err := l.UseFood("insects", 25.0) // stock is 20
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInsufficientSupply))
	assert.Equal(t, 20.0, l.FoodSupply()["insects"])
}

func TestUseMedicine_DebitsUnits(t *testing.T) {
	l := New(0.0)

	require.NoError(t, l.UseMedicine("vaccine", 3))
	assert.Equal(t, 7, l.MedicineSupply()["vaccine"])

	err := l.UseMedicine("vaccine", 100)
	assert.True(t, errors.Is(err, ErrInsufficientSupply))

	err = l.UseMedicine("leeches", 1)
	assert.True(t, errors.Is(err, ErrUnknownResource))
}

func TestOrderFood_SpendsThenCredits(t *testing.T) {
	l := New(1000.0)

	require.NoError(t, l.OrderFood("meat", 50.0, 8.0))
	assert.Equal(t, 600.0, l.Funds())
	assert.Equal(t, 150.0, l.FoodSupply()["meat"])
}

func TestOrderFood_FailedSpendLeavesStockUntouched(t *testing.T) {
	l := New(10.0)

	err := l.OrderFood("meat", 50.0, 8.0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInsufficientFunds))
	assert.Equal(t, 10.0, l.Funds())
	assert.Equal(t, 100.0, l.FoodSupply()["meat"])
}

func TestOrderMedicine_FailedSpendLeavesStockUntouched(t *testing.T) {
	l := New(5.0)

	err := l.OrderMedicine("antibiotics", 10, 8.0)
	require.Error(t, err)
	assert.Equal(t, 15, l.MedicineSupply()["antibiotics"])
}

func TestResetDaily_ZeroesAccumulators(t *testing.T) {
	l := New(1000.0)
	require.NoError(t, l.Spend(100.0, "costs"))
	require.NoError(t, l.Add(200.0, "income"))

	l.ResetDaily()

	assert.Equal(t, 0.0, l.DailyCosts())
	assert.Equal(t, 0.0, l.DailyIncome())
	assert.Equal(t, 1100.0, l.Funds(), "reset must not touch the balance")
}

func TestGetStatus_SnapshotsAreCopies(t *testing.T) {
	l := New(500.0)
	status := l.GetStatus()

	status.FoodSupply["meat"] = 0.0
	assert.Equal(t, 100.0, l.FoodSupply()["meat"])
}
