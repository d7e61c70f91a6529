package simworld

import (
	"fmt"
	"os"

	yaml "github.com/goccy/go-yaml"
)

// TaskSpec describes one workload entry. Priority-driven policies use
// Priority; EDF uses Deadline and Period (a fresh instance is released
// every Period ticks with an absolute deadline Release+Deadline).
type TaskSpec struct {
	ID       uint `yaml:"id"`
	Arrival  uint `yaml:"arrival"`
	Work     uint `yaml:"work"`
	Priority uint `yaml:"priority"`
	Deadline uint `yaml:"deadline"`
	Period   uint `yaml:"period"`
}

// Config mirrors the simulator's YAML file.
type Config struct {
	TickMS    int           `yaml:"tick_ms"`    // 0 = run unpaced
	MaxTicks  uint          `yaml:"max_ticks"`  // stop even if work remains
	Quanta    map[uint]uint `yaml:"quanta"`     // priority level -> ticks
	LogLevel  string        `yaml:"log_level"`  // debug, info, warn, error
	LogFormat string        `yaml:"log_format"` // text or json
	Workload  []TaskSpec    `yaml:"workload"`
}

func defaultConfig() Config {
	return Config{
		TickMS:    0,
		MaxTicks:  1000,
		Quanta:    map[uint]uint{2: 2, 3: 1},
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads YAML and overrides defaults; an empty path returns the
// defaults only.
func Load(path string) (Config, error) {
	cfg := defaultConfig()

	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	// sanity clamps
	if cfg.TickMS < 0 {
		cfg.TickMS = 0
	}
	if cfg.MaxTicks == 0 {
		cfg.MaxTicks = 1000
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	return cfg, nil
}
