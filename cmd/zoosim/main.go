// Command zoosim runs the OzZoo autonomous zoo simulation.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/talgya/ozzoo/internal/api"
	"github.com/talgya/ozzoo/internal/chronicle"
	"github.com/talgya/ozzoo/internal/config"
	"github.com/talgya/ozzoo/internal/engine"
	"github.com/talgya/ozzoo/internal/entropy"
	"github.com/talgya/ozzoo/internal/zoo"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.Info("OzZoo — Autonomous Zoo Simulation",
		"zoo", cfg.ZooName,
		"seed", cfg.Seed,
		"starting_funds", cfg.StartingFunds,
	)

	// ── Chronicle ─────────────────────────────────────────────────────
	os.MkdirAll(filepath.Dir(cfg.ChroniclePath), 0755)
	db, err := chronicle.Open(cfg.ChroniclePath)
	if err != nil {
		slog.Error("failed to open chronicle", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("chronicle opened", "path", cfg.ChroniclePath)

	// ── Zoo ───────────────────────────────────────────────────────────
	rng := entropy.NewSource(cfg.Seed)
	z := zoo.New(cfg.ZooName, cfg.StartingFunds, cfg.TicketPrice)

	mgr := engine.NewManager(z, rng, cfg.Seed)
	mgr.Chronicle = db

	if cfg.StarterEnclosures {
		populateStarterZoo(mgr, z)
	}

	z.OrderSupplies()

	slog.Info("zoo ready",
		"enclosures", len(z.Enclosures()),
		"animals", z.AnimalCount(),
		"funds", z.Funds(),
	)

	// ── Simulation loop ───────────────────────────────────────────────
	loop := engine.NewLoop(time.Duration(cfg.DayInterval))
	hub := api.NewHub()
	go hub.Run()

	loop.OnDay = func(day int) bool {
		// Daily keeper routine before the day advances.
		if _, err := mgr.Feed(""); err != nil {
			slog.Error("feeding failed", "error", err)
		}
		if _, err := mgr.Clean(""); err != nil {
			slog.Error("cleaning failed", "error", err)
		}
		if day%7 == 0 {
			mgr.Restock()
		}

		report := mgr.AdvanceDay()
		api.ObserveDay(report)
		hub.BroadcastJSON(report)

		for _, msg := range report.EventMessages {
			slog.Info("event", "day", day, "message", msg)
		}
		for _, line := range report.BehaviorEvents {
			slog.Info("behavior", "day", day, "message", line)
		}
		for _, key := range report.CriticalAnimals {
			slog.Warn("critical health", "day", day, "animal", key)
		}

		if report.GameOver {
			slog.Error("the zoo has run out of money", "day", day)
			return false
		}
		return true
	}

	// ── HTTP API ──────────────────────────────────────────────────────
	adminKey := os.Getenv("OZZOO_ADMIN_KEY")
	if adminKey == "" {
		slog.Warn("OZZOO_ADMIN_KEY not set — admin POST endpoints will be disabled")
	}

	apiServer := &api.Server{
		Manager:  mgr,
		Loop:     loop,
		DB:       db,
		Hub:      hub,
		Port:     cfg.APIPort,
		AdminKey: adminKey,
	}
	apiServer.Start()

	// ── Start ─────────────────────────────────────────────────────────
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received signal, shutting down", "signal", sig)
		loop.Stop()
	}()

	fmt.Printf("\n%s is open: %d animals across %d enclosures.\n",
		cfg.ZooName, z.AnimalCount(), len(z.Enclosures()))
	fmt.Printf("API: http://localhost:%d/api/v1/status\n", cfg.APIPort)
	fmt.Println("Starting simulation... (Ctrl+C to stop)")

	loop.Run()

	// Final export on shutdown.
	slog.Info("exporting day history", "dir", cfg.ExportDir)
	if err := db.ExportCSV(cfg.ExportDir); err != nil {
		slog.Error("export failed", "error", err)
	}

	fmt.Println("Simulation stopped. Day history exported.")
}

// populateStarterZoo builds the standard opening layout: four themed
// enclosures plus a carnivore ridge, with a small founding population.
func populateStarterZoo(mgr *engine.Manager, z *zoo.Zoo) {
	starters := []*zoo.Enclosure{
		zoo.NewEnclosure("Savannah Plains", 3, "savannah", []string{"Elephant", "Zebra", "Giraffe"}),
		zoo.NewEnclosure("Lion Ridge", 2, "savannah", []string{"Lion", "Tiger"}),
		zoo.NewEnclosure("Eagle's Peak", 2, "aviary", []string{"Eagle", "Bird"}),
		zoo.NewEnclosure("Reptile House", 4, "forest", []string{"Snake", "Reptile"}),
		zoo.NewEnclosure("Penguin Pool", 3, "arctic", []string{"Penguin"}),
	}
	for _, e := range starters {
		if err := z.AddEnclosure(e); err != nil {
			slog.Error("starter enclosure failed", "enclosure", e.Name, "error", err)
		}
	}

	founders := []struct {
		typeKey   string
		name      string
		age       int
		enclosure string
	}{
		{"elephant", "Ellie", 8, "Savannah Plains"},
		{"zebra", "Zigzag", 4, "Savannah Plains"},
		{"giraffe", "Stretch", 6, "Savannah Plains"},
		{"lion", "Leo", 5, "Lion Ridge"},
		{"eagle", "Echo", 3, "Eagle's Peak"},
		{"snake", "Slinky", 2, "Reptile House"},
		{"penguin", "Pip", 3, "Penguin Pool"},
		{"penguin", "Waddles", 4, "Penguin Pool"},
	}
	for _, f := range founders {
		if !mgr.AddAnimalToZoo(f.typeKey, f.name, f.age, f.enclosure) {
			slog.Error("founder animal failed", "name", f.name, "type", f.typeKey)
		}
	}
}
