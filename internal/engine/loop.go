package engine

import (
	"log/slog"
	"time"
)

// Loop drives the simulation forward one day at a time.
type Loop struct {
	Speed    float64       // Multiplier: 1.0 = configured pace, 0 = paused
	Interval time.Duration // Base wall-clock length of one simulated day
	Running  bool

	// OnDay runs once per simulated day. Returning false stops the loop.
	OnDay func(day int) bool

	day  int
	stop chan struct{}
}

// NewLoop creates a loop with the given day pacing.
func NewLoop(interval time.Duration) *Loop {
	return &Loop{
		Speed:    1.0,
		Interval: interval,
		stop:     make(chan struct{}),
	}
}

// Run starts the day loop. Blocks until Stop is called or OnDay returns
// false.
func (l *Loop) Run() {
	l.Running = true
	slog.Info("simulation loop started", "interval", l.Interval, "speed", l.Speed)

	for l.Running {
		select {
		case <-l.stop:
			l.Running = false
			continue
		default:
		}

		if l.Speed <= 0 {
			// Paused. Sleep briefly and check again.
			time.Sleep(100 * time.Millisecond)
			continue
		}

		start := time.Now()

		l.day++
		if l.OnDay != nil && !l.OnDay(l.day) {
			l.Running = false
			break
		}

		// Sleep for the remainder of the day interval, adjusted for speed.
		elapsed := time.Since(start)
		target := time.Duration(float64(l.Interval) / l.Speed)
		if elapsed < target {
			select {
			case <-l.stop:
				l.Running = false
			case <-time.After(target - elapsed):
			}
		}
	}

	slog.Info("simulation loop stopped", "day", l.day)
}

// Stop halts the loop. Safe to call from another goroutine.
func (l *Loop) Stop() {
	select {
	case <-l.stop:
	default:
		close(l.stop)
	}
}
