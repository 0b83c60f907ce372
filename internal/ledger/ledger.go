// Package ledger provides the zoo's fund and supply accounting. Debits are
// fail-fast: an operation that cannot be covered fails atomically and leaves
// the ledger untouched.
package ledger

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrUnknownResource    = errors.New("unknown resource category")
	ErrInsufficientSupply = errors.New("insufficient supply")
)

// FoodCategories is the fixed set of food supply categories, in kilograms.
var FoodCategories = []string{"meat", "fish", "seeds", "fruits", "vegetables", "insects"}

// Ledger tracks funds, food and medicine supplies, and the running daily
// cost/income accumulators. One Ledger is owned by one Zoo.
type Ledger struct {
	funds       float64
	food        map[string]float64
	medicine    map[string]int
	dailyCosts  float64
	dailyIncome float64
}

// New creates a ledger with the given starting funds and the default supply
// stocks.
func New(initialFunds float64) *Ledger {
	return &Ledger{
		funds: initialFunds,
		food: map[string]float64{
			"meat":       100.0,
			"fish":       50.0,
			"seeds":      200.0,
			"fruits":     150.0,
			"vegetables": 100.0,
			"insects":    20.0,
		},
		medicine: map[string]int{
			"vaccine":       10,
			"antibiotics":   15,
			"pain_reliever": 20,
			"vitamins":      25,
		},
	}
}

// Funds returns the current balance.
func (l *Ledger) Funds() float64 { return l.funds }

// DailyCosts returns today's accumulated spending.
func (l *Ledger) DailyCosts() float64 { return l.dailyCosts }

// DailyIncome returns today's accumulated income.
func (l *Ledger) DailyIncome() float64 { return l.dailyIncome }

// FoodSupply returns a copy of the food stocks.
func (l *Ledger) FoodSupply() map[string]float64 {
	out := make(map[string]float64, len(l.food))
	for k, v := range l.food {
		out[k] = v
	}
	return out
}

// MedicineSupply returns a copy of the medicine stocks.
func (l *Ledger) MedicineSupply() map[string]int {
	out := make(map[string]int, len(l.medicine))
	for k, v := range l.medicine {
		out[k] = v
	}
	return out
}

// Spend debits funds for a purpose. It fails with ErrInvalidAmount for a
// negative amount and ErrInsufficientFunds when the balance cannot cover it;
// in both cases the balance is unchanged.
func (l *Ledger) Spend(amount float64, purpose string) error {
	if amount < 0 {
		return fmt.Errorf("%w: cannot spend negative amount %.2f", ErrInvalidAmount, amount)
	}
	if amount > l.funds {
		return fmt.Errorf("%w: %s needs %.2f, have %.2f", ErrInsufficientFunds, purpose, amount, l.funds)
	}
	l.funds -= amount
	l.dailyCosts += amount
	slog.Debug("funds spent", "amount", amount, "purpose", purpose, "remaining", l.funds)
	return nil
}

// Add credits funds from a source.
func (l *Ledger) Add(amount float64, source string) error {
	if amount < 0 {
		return fmt.Errorf("%w: cannot add negative amount %.2f", ErrInvalidAmount, amount)
	}
	l.funds += amount
	l.dailyIncome += amount
	slog.Debug("funds added", "amount", amount, "source", source, "total", l.funds)
	return nil
}

// UseFood debits kilograms of a food category. The category must be one of
// the fixed set, and the debit fails atomically if the stock cannot cover it.
func (l *Ledger) UseFood(foodType string, amount float64) error {
	have, ok := l.food[foodType]
	if !ok {
		return fmt.Errorf("%w: food type %q", ErrUnknownResource, foodType)
	}
	if amount > have {
		return fmt.Errorf("%w: %s has %.1fkg, need %.1fkg", ErrInsufficientSupply, foodType, have, amount)
	}
	l.food[foodType] = have - amount
	return nil
}

// UseMedicine debits units of a medicine category.
func (l *Ledger) UseMedicine(medicineType string, quantity int) error {
	have, ok := l.medicine[medicineType]
	if !ok {
		return fmt.Errorf("%w: medicine type %q", ErrUnknownResource, medicineType)
	}
	if quantity > have {
		return fmt.Errorf("%w: %s has %d units, need %d", ErrInsufficientSupply, medicineType, have, quantity)
	}
	l.medicine[medicineType] = have - quantity
	return nil
}

// OrderFood spends amount*costPerKg and credits the food stock. If the spend
// fails the stock is not credited.
func (l *Ledger) OrderFood(foodType string, amount, costPerKg float64) error {
	total := amount * costPerKg
	if err := l.Spend(total, fmt.Sprintf("ordering %.0fkg of %s", amount, foodType)); err != nil {
		return fmt.Errorf("order %s: %w", foodType, err)
	}
	l.food[foodType] += amount
	slog.Debug("food ordered", "type", foodType, "amount_kg", amount, "stock_kg", l.food[foodType])
	return nil
}

// OrderMedicine spends quantity*costPerUnit and credits the medicine stock.
// If the spend fails the stock is not credited.
func (l *Ledger) OrderMedicine(medicineType string, quantity int, costPerUnit float64) error {
	total := float64(quantity) * costPerUnit
	if err := l.Spend(total, fmt.Sprintf("ordering %d units of %s", quantity, medicineType)); err != nil {
		return fmt.Errorf("order %s: %w", medicineType, err)
	}
	l.medicine[medicineType] += quantity
	slog.Debug("medicine ordered", "type", medicineType, "quantity", quantity, "stock", l.medicine[medicineType])
	return nil
}

// ResetDaily zeroes the daily cost and income accumulators. Called exactly
// once per day by the zoo's daily update.
func (l *Ledger) ResetDaily() {
	l.dailyCosts = 0
	l.dailyIncome = 0
}

// Status is the ledger snapshot for presentation layers.
type Status struct {
	Funds          float64            `json:"funds"`
	DailyCosts     float64            `json:"daily_costs"`
	DailyIncome    float64            `json:"daily_income"`
	FoodSupply     map[string]float64 `json:"food_supply"`
	MedicineSupply map[string]int     `json:"medicine_supply"`
}

// GetStatus returns the ledger snapshot.
func (l *Ledger) GetStatus() Status {
	return Status{
		Funds:          l.funds,
		DailyCosts:     l.dailyCosts,
		DailyIncome:    l.dailyIncome,
		FoodSupply:     l.FoodSupply(),
		MedicineSupply: l.MedicineSupply(),
	}
}
