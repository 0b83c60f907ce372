// Package config provides simulation configuration: defaults in code, YAML
// file override on top.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from YAML strings like "5s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config holds everything tunable about a simulation run.
type Config struct {
	ZooName       string  `yaml:"zoo_name"`
	Seed          int64   `yaml:"seed"`
	StartingFunds float64 `yaml:"starting_funds"`
	TicketPrice   float64 `yaml:"ticket_price"`

	// DayInterval is the wall-clock pacing of one simulated day.
	DayInterval Duration `yaml:"day_interval"`

	APIPort       int    `yaml:"api_port"`
	ChroniclePath string `yaml:"chronicle_path"`
	ExportDir     string `yaml:"export_dir"`

	// StarterEnclosures controls whether a new zoo opens with the standard
	// four starter enclosures.
	StarterEnclosures bool `yaml:"starter_enclosures"`
}

// Default returns the standard configuration.
func Default() Config {
	return Config{
		ZooName:           "OzZoo",
		Seed:              42,
		StartingFunds:     50000.0,
		TicketPrice:       25.0,
		DayInterval:       Duration(5 * time.Second),
		APIPort:           8080,
		ChroniclePath:     "data/chronicle.db",
		ExportDir:         "data/export",
		StarterEnclosures: true,
	}
}

// Load reads a YAML config file over the defaults. A missing file is not an
// error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
