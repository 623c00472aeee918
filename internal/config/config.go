// Package config loads ls-almanac settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/logging"
)

const (
	DefaultRefresh = 1 * time.Second
	MinRefresh     = 100 * time.Millisecond
	MaxRefresh     = 1 * time.Minute
)

// Observer is the site used for local sidereal time and horizontal
// coordinates.
type Observer struct {
	Name      string  `yaml:"name"`
	Latitude  float64 `yaml:"latitude"`  // degrees, north positive
	Longitude float64 `yaml:"longitude"` // degrees, east positive
}

// Astro returns the observer in the form the astro package expects.
func (o Observer) Astro() astro.Observer {
	return astro.Observer{LatDeg: o.Latitude, LonDeg: o.Longitude, Name: o.Name}
}

// Config holds all settings.
type Config struct {
	LogLevel string        `yaml:"log_level"`
	Format   string        `yaml:"format"`
	Refresh  time.Duration `yaml:"refresh"`
	Observer Observer      `yaml:"observer"`
}

// Default returns the built-in configuration: Greenwich, text output,
// one-second clock refresh.
func Default() Config {
	return Config{
		LogLevel: "info",
		Format:   "text",
		Refresh:  DefaultRefresh,
		Observer: Observer{
			Name:      "Greenwich",
			Latitude:  51.4769,
			Longitude: 0,
		},
	}
}

// Load reads the YAML file at path on top of Default. An empty path
// returns Default unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config %s: %w", path, err)
	}

	cfg.Refresh = clampRefresh(cfg.Refresh)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error

	if _, ok := logging.LookupLevel(c.LogLevel); !ok {
		errs = append(errs, fmt.Errorf("log_level %q: must be debug, info, warn or error", c.LogLevel))
	}
	if c.Format != "text" && c.Format != "json" {
		errs = append(errs, fmt.Errorf("format %q: must be text or json", c.Format))
	}
	if c.Observer.Latitude < -90 || c.Observer.Latitude > 90 {
		errs = append(errs, fmt.Errorf("observer.latitude %v: must be within [-90, 90]", c.Observer.Latitude))
	}
	if c.Observer.Longitude < -180 || c.Observer.Longitude > 180 {
		errs = append(errs, fmt.Errorf("observer.longitude %v: must be within [-180, 180]", c.Observer.Longitude))
	}

	return errors.Join(errs...)
}

func clampRefresh(d time.Duration) time.Duration {
	switch {
	case d == 0:
		return DefaultRefresh
	case d < MinRefresh:
		return MinRefresh
	case d > MaxRefresh:
		return MaxRefresh
	default:
		return d
	}
}
