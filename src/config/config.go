package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"liftctl/src/types"
)

const (
	// Penalty is added to the cost of an elevator that has to turn around to serve a hall call.
	Penalty = 100

	DefaultNumElevators    = 3
	DefaultNumFloors       = 10
	DefaultStartFloor      = 1
	DefaultCapacity        = 8
	DefaultTickInterval    = 500 * time.Millisecond
	DefaultMonitorInterval = 5 * time.Second
	DefaultBacklogAlertAge = 30 * time.Second
)

type Config struct {
	NumElevators    int           `yaml:"num_elevators"`
	NumFloors       int           `yaml:"num_floors"`
	StartFloor      int           `yaml:"start_floor"`
	Capacity        int           `yaml:"capacity"`
	TickInterval    time.Duration `yaml:"tick_interval"`
	MonitorInterval time.Duration `yaml:"monitor_interval"`
	BacklogAlertAge time.Duration `yaml:"backlog_alert_age"`
	LogLevel        string        `yaml:"log_level"`
	LogFile         string        `yaml:"log_file,omitempty"`
}

func Default() Config {
	return Config{
		NumElevators:    DefaultNumElevators,
		NumFloors:       DefaultNumFloors,
		StartFloor:      DefaultStartFloor,
		Capacity:        DefaultCapacity,
		TickInterval:    DefaultTickInterval,
		MonitorInterval: DefaultMonitorInterval,
		BacklogAlertAge: DefaultBacklogAlertAge,
		LogLevel:        "info",
	}
}

// Load reads a YAML config file on top of the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode config YAML: %w", err)
	}
	return cfg, cfg.Validate()
}

func (cfg Config) Validate() error {
	switch {
	case cfg.NumElevators < 0:
		return fmt.Errorf("%w: num_elevators %d", types.ErrInvalidConfig, cfg.NumElevators)
	case cfg.NumFloors < 1:
		return fmt.Errorf("%w: num_floors %d", types.ErrInvalidConfig, cfg.NumFloors)
	case cfg.StartFloor < 1 || cfg.StartFloor > cfg.NumFloors:
		return fmt.Errorf("%w: start_floor %d outside [1, %d]", types.ErrInvalidConfig, cfg.StartFloor, cfg.NumFloors)
	case cfg.Capacity < 1:
		return fmt.Errorf("%w: capacity %d", types.ErrInvalidConfig, cfg.Capacity)
	case cfg.TickInterval <= 0 || cfg.MonitorInterval <= 0 || cfg.BacklogAlertAge <= 0:
		return fmt.Errorf("%w: intervals must be positive", types.ErrInvalidConfig)
	}
	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", types.ErrInvalidConfig, cfg.LogLevel)
	}
	return nil
}
