package events

import (
	"errors"
	"fmt"
	"strings"

	"github.com/talgya/ozzoo/internal/ledger"
	"github.com/talgya/ozzoo/internal/zoo"
)

// Catalog returns a fresh copy of the built-in event catalog.
func Catalog() []*Event {
	return []*Event{
		{
			Name:        "Heatwave",
			Description: "A severe heatwave hits the zoo!",
			Category:    CategoryWeather,
			Severity:    SeverityNegative,
			Probability: 0.15,
			Effect:      heatwave,
		},
		{
			Name:        "Perfect Weather",
			Description: "The weather is absolutely perfect today!",
			Category:    CategoryWeather,
			Severity:    SeverityPositive,
			Probability: 0.20,
			Effect:      perfectWeather,
		},
		{
			Name:        "Rainy Day",
			Description: "It's raining heavily at the zoo.",
			Category:    CategoryWeather,
			Severity:    SeverityNeutral,
			Probability: 0.25,
			Effect:      rainyDay,
		},
		{
			Name:        "Animal Birth",
			Description: "A new animal is born in the zoo!",
			Category:    CategoryAnimal,
			Severity:    SeverityPositive,
			Probability: 0.10,
			Effect:      animalBirth,
		},
		{
			Name:        "Animal Escape",
			Description: "An animal has escaped from its enclosure!",
			Category:    CategoryAnimal,
			Severity:    SeverityCritical,
			Probability: 0.08,
			Effect:      animalEscape,
		},
		{
			Name:        "Generous Donor",
			Description: "A wealthy donor makes a generous contribution!",
			Category:    CategoryFinancial,
			Severity:    SeverityPositive,
			Probability: 0.12,
			Effect:      generousDonor,
		},
		{
			Name:        "Unexpected Expense",
			Description: "An unexpected maintenance cost arises.",
			Category:    CategoryFinancial,
			Severity:    SeverityNegative,
			Probability: 0.18,
			Effect:      unexpectedExpense,
		},
		{
			Name:        "School Trip",
			Description: "A large school group visits the zoo!",
			Category:    CategoryVisitor,
			Severity:    SeverityPositive,
			Probability: 0.15,
			Effect:      schoolTrip,
		},
		{
			Name:        "Animal Rights Protest",
			Description: "Protesters are demonstrating outside the zoo.",
			Category:    CategoryVisitor,
			Severity:    SeverityNegative,
			Probability: 0.07,
			Effect:      protest,
		},
	}
}

func heatwave(ctx *Context) Result {
	var healthImpact, happinessImpact float64
	for _, e := range ctx.Zoo.Enclosures() {
		for _, a := range e.Animals() {
			healthLoss := ctx.Rng.Uniform(5.0, 15.0)
			happinessLoss := ctx.Rng.Uniform(10.0, 25.0)
			a.ModifyHealth(-healthLoss)
			a.ModifyHappiness(-happinessLoss)
			healthImpact += healthLoss
			happinessImpact += happinessLoss
		}
	}

	visitorLoss := ctx.Rng.Between(20, 50)
	return Result{
		Success: true,
		Messages: []string{
			"Animals are suffering from the heat! Health and happiness decreased.",
			fmt.Sprintf("Visitor numbers dropped by %d due to extreme heat.", visitorLoss),
		},
		HealthImpact:    -healthImpact,
		HappinessImpact: -happinessImpact,
		VisitorImpact:   -visitorLoss,
	}
}

func perfectWeather(ctx *Context) Result {
	var happinessImpact float64
	for _, e := range ctx.Zoo.Enclosures() {
		for _, a := range e.Animals() {
			gain := ctx.Rng.Uniform(10.0, 20.0)
			a.ModifyHappiness(gain)
			happinessImpact += gain
		}
	}

	visitorBoost := ctx.Rng.Between(30, 80)
	return Result{
		Success: true,
		Messages: []string{
			"Animals are enjoying the beautiful weather! Happiness increased.",
			fmt.Sprintf("Visitor numbers increased by %d due to perfect weather!", visitorBoost),
		},
		HappinessImpact: happinessImpact,
		VisitorImpact:   visitorBoost,
	}
}

// rainLovers enjoy rain; everyone else would rather stay dry.
var rainLovers = map[string]bool{"Elephant": true, "Penguin": true}

func rainyDay(ctx *Context) Result {
	messages := []string{}
	for _, e := range ctx.Zoo.Enclosures() {
		for _, a := range e.Animals() {
			if rainLovers[a.Species] {
				a.ModifyHappiness(15.0)
				messages = append(messages, fmt.Sprintf("%s the %s is enjoying the rain!", a.Name, a.Species))
			} else {
				a.ModifyHappiness(-8.0)
			}
		}
	}

	visitorLoss := ctx.Rng.Between(10, 30)
	messages = append(messages, fmt.Sprintf("Visitor numbers decreased by %d due to rain.", visitorLoss))

	for _, e := range ctx.Zoo.Enclosures() {
		e.BoostCleanliness(ctx.Rng.Uniform(5.0, 15.0))
	}
	messages = append(messages, "Rain naturally cleaned the enclosures!")

	return Result{
		Success:       true,
		Messages:      messages,
		VisitorImpact: -visitorLoss,
	}
}

func animalBirth(ctx *Context) Result {
	type parent struct {
		enclosure *zoo.Enclosure
		name      string
		species   string
	}
	var parents []parent
	for _, e := range ctx.Zoo.Enclosures() {
		for _, a := range e.Animals() {
			if a.Age >= 2 {
				parents = append(parents, parent{e, a.Name, a.Species})
			}
		}
	}
	if len(parents) == 0 {
		return Result{Success: false, Messages: []string{"No adult animals for birth event"}}
	}

	chosen := parents[ctx.Rng.Intn(len(parents))]
	babyName := babyNameFor(ctx, chosen.name)

	baby, err := ctx.Factory.Create(strings.ToLower(chosen.species), babyName, 0)
	if err != nil {
		return Result{Success: false, Messages: []string{fmt.Sprintf("Birth failed: %v", err)}}
	}

	if err := chosen.enclosure.AddAnimal(baby); err != nil {
		return Result{Success: false, Messages: []string{fmt.Sprintf("Could not add baby to enclosure: %v", err)}}
	}

	for _, a := range chosen.enclosure.Animals() {
		a.ModifyHappiness(10.0)
	}

	return Result{
		Success: true,
		Messages: []string{
			fmt.Sprintf("%s gave birth to %s the baby %s!", chosen.name, babyName, chosen.species),
			fmt.Sprintf("Animals in %s are celebrating!", chosen.enclosure.Name),
		},
	}
}

func babyNameFor(ctx *Context, parentName string) string {
	suffixes := []string{"Junior", "II", "Little", "Baby"}
	prefixes := []string{"Little ", "Tiny ", "Baby "}
	if ctx.Rng.Float64() > 0.5 {
		return parentName + " " + suffixes[ctx.Rng.Intn(len(suffixes))]
	}
	return prefixes[ctx.Rng.Intn(len(prefixes))] + parentName
}

func animalEscape(ctx *Context) Result {
	type escaper struct {
		enclosure *zoo.Enclosure
		name      string
		species   string
	}
	var candidates []escaper
	for _, e := range ctx.Zoo.Enclosures() {
		for _, a := range e.Animals() {
			if a.Happiness() < 40.0 {
				candidates = append(candidates, escaper{e, a.Name, a.Species})
			}
		}
	}
	if len(candidates) == 0 {
		return Result{Success: false, Messages: []string{"No unhappy animals to escape"}}
	}

	chosen := candidates[ctx.Rng.Intn(len(candidates))]
	chosen.enclosure.RemoveAnimal(chosen.name)

	penalty := ctx.Rng.Between(500, 2000)
	financialImpact := -float64(penalty)
	penaltyMsg := fmt.Sprintf("$%d spent on recovery efforts.", penalty)
	if err := ctx.Zoo.Ledger.Spend(float64(penalty), "escape recovery"); err != nil {
		if errors.Is(err, ledger.ErrInsufficientFunds) {
			// The escape still happened; the recovery bill just goes unpaid.
			financialImpact = 0
			penaltyMsg = fmt.Sprintf("Could not fund $%d recovery effort - insufficient funds!", penalty)
		}
	}

	visitorLoss := ctx.Rng.Between(50, 100)
	return Result{
		Success: true,
		Messages: []string{
			fmt.Sprintf("%s the %s escaped from %s!", chosen.name, chosen.species, chosen.enclosure.Name),
			penaltyMsg,
			fmt.Sprintf("Visitor numbers decreased by %d due to safety concerns.", visitorLoss),
		},
		FinancialImpact: financialImpact,
		VisitorImpact:   -visitorLoss,
	}
}

func generousDonor(ctx *Context) Result {
	base := ctx.Rng.Between(1000, 5000)
	bonus := ctx.Zoo.DaysOperational() * 10
	total := float64(base + bonus)

	if err := ctx.Zoo.Ledger.Add(total, "generous donation"); err != nil {
		return Result{Success: false, Messages: []string{fmt.Sprintf("Donation failed: %v", err)}}
	}

	return Result{
		Success:         true,
		Messages:        []string{fmt.Sprintf("Generous donor contributed $%.0f to the zoo!", total)},
		FinancialImpact: total,
	}
}

func unexpectedExpense(ctx *Context) Result {
	expense := ctx.Rng.Between(300, 1200)

	if err := ctx.Zoo.Ledger.Spend(float64(expense), "unexpected maintenance"); err != nil {
		return Result{
			Success:  false,
			Messages: []string{fmt.Sprintf("Could not pay $%d expense - insufficient funds!", expense)},
		}
	}

	return Result{
		Success:         true,
		Messages:        []string{fmt.Sprintf("Unexpected maintenance cost: $%d", expense)},
		FinancialImpact: -float64(expense),
	}
}

func schoolTrip(ctx *Context) Result {
	boost := ctx.Rng.Between(80, 150)
	return Result{
		Success:       true,
		Messages:      []string{fmt.Sprintf("School trip brought %d extra visitors!", boost)},
		VisitorImpact: boost,
	}
}

func protest(ctx *Context) Result {
	poorConditions := false
	for _, e := range ctx.Zoo.Enclosures() {
		if e.NeedsCleaning() {
			poorConditions = true
			break
		}
		for _, a := range e.Animals() {
			if a.Happiness() < 30.0 {
				poorConditions = true
				break
			}
		}
		if poorConditions {
			break
		}
	}

	if poorConditions {
		visitorLoss := ctx.Rng.Between(60, 120)
		return Result{
			Success:       true,
			Messages:      []string{fmt.Sprintf("Animal rights protest reduced visitors by %d!", visitorLoss)},
			VisitorImpact: -visitorLoss,
		}
	}

	// The protest fizzles against good conditions.
	return Result{
		Success:       true,
		Messages:      []string{"Protest occurred but had little impact due to good animal care."},
		VisitorImpact: -10,
	}
}
