package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/talgya/ozzoo/internal/engine"
)

// Simulation metrics, exposed on /metrics.
var (
	daysTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ozzoo_days_total",
		Help: "Total simulated days completed.",
	})
	eventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ozzoo_events_total",
		Help: "Events triggered, by category and severity.",
	}, []string{"category", "severity"})
	fundsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ozzoo_funds",
		Help: "Current zoo funds.",
	})
	animalsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ozzoo_animals",
		Help: "Current animal count.",
	})
	visitorsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ozzoo_visitors_today",
		Help: "Visitors on the most recent day.",
	})
	criticalGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ozzoo_critical_animals",
		Help: "Animals currently below the health threshold.",
	})
)

// ObserveDay updates the exported metrics from a completed day report.
func ObserveDay(report engine.DayReport) {
	daysTotal.Inc()
	for _, t := range report.Events {
		eventsTotal.WithLabelValues(string(t.Category), string(t.Severity)).Inc()
	}
	fundsGauge.Set(report.Status.Financials.Funds)
	animalsGauge.Set(float64(report.Status.AnimalCount))
	visitorsGauge.Set(float64(report.Stats.Visitors))
	criticalGauge.Set(float64(len(report.CriticalAnimals)))
}
