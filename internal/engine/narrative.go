package engine

import (
	"fmt"
	"time"

	"github.com/talgya/ozzoo/internal/entropy"
	"github.com/talgya/ozzoo/internal/zoo"
)

// maxBehaviorEvents caps the flavor lines in one day report.
const maxBehaviorEvents = 5

var (
	happyBehaviors = []string{
		"%s the %s is playing energetically",
		"%s the %s lets out a contented %s",
		"%s the %s is showing off for the visitors",
		"%s the %s is basking peacefully",
	}
	hungryBehaviors = []string{
		"%s the %s is pacing near the feeding area",
		"%s the %s is calling loudly for food",
		"%s the %s keeps eyeing the keeper's bucket",
	}
	sickBehaviors = []string{
		"%s the %s is lying down more than usual",
		"%s the %s is off its food and moving slowly",
		"%s the %s is being checked on by the vet team",
	}
)

// synthesizeBehavior turns the day's final vitals into short narrative lines.
// Very happy animals get a happy line, very hungry ones a hungry line, and
// unhealthy ones a sick line. Output is capped; the lines are flavor, not
// state.
func synthesizeBehavior(rng *entropy.Source, status zoo.Status, stats zoo.DayStats) []string {
	var lines []string

	for _, enc := range status.Enclosures {
		for _, a := range enc.Animals {
			if len(lines) >= maxBehaviorEvents {
				return lines
			}
			switch {
			case a.Happiness > 80:
				tmpl := happyBehaviors[rng.Intn(len(happyBehaviors))]
				lines = append(lines, formatBehavior(tmpl, a.Name, a.Species, a.Sound))
			case a.Hunger > 70:
				tmpl := hungryBehaviors[rng.Intn(len(hungryBehaviors))]
				lines = append(lines, formatBehavior(tmpl, a.Name, a.Species, a.Sound))
			case a.Health < 50:
				tmpl := sickBehaviors[rng.Intn(len(sickBehaviors))]
				lines = append(lines, formatBehavior(tmpl, a.Name, a.Species, a.Sound))
			}
		}
	}

	if len(lines) < maxBehaviorEvents && stats.TicketIncome > 1000 {
		lines = append(lines, fmt.Sprintf("Great turnout today: %d visitors came through the gates", stats.Visitors))
	}

	if len(lines) < maxBehaviorEvents {
		for _, enc := range status.Enclosures {
			if enc.NeedsCleaning {
				lines = append(lines, fmt.Sprintf("The %s enclosure badly needs cleaning", enc.Name))
				break
			}
		}
	}

	return lines
}

// formatBehavior fills a behavior template, which may or may not reference the
// animal's sound.
func formatBehavior(tmpl, name, species, sound string) string {
	if countVerbs(tmpl) == 3 {
		return fmt.Sprintf(tmpl, name, species, sound)
	}
	return fmt.Sprintf(tmpl, name, species)
}

func countVerbs(tmpl string) int {
	n := 0
	for i := 0; i < len(tmpl)-1; i++ {
		if tmpl[i] == '%' && tmpl[i+1] == 's' {
			n++
		}
	}
	return n
}

// reportTime stamps chronicle rows. A function so tests can read it as the
// single source of record timestamps.
func reportTime() time.Time {
	return time.Now().UTC()
}
