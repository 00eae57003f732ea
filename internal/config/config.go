// Package config handles scenario configuration loading for the
// gridpath commands.
package config

import (
	"errors"
	"fmt"
)

// Search modes accepted in scenario configuration.
const (
	ModeNearest = "nearest"
	ModeGoal    = "goal"
)

// Cost models accepted in scenario configuration.
const (
	CostUniform = "uniform"
	CostTerrain = "terrain"
)

// ErrNoScenarios is returned when a configuration defines nothing to run.
var ErrNoScenarios = errors.New("config: no scenarios defined")

// Config holds all command settings.
type Config struct {
	Logging   LoggingConfig `yaml:"logging"`
	Render    RenderConfig  `yaml:"render"`
	Search    SearchConfig  `yaml:"search"`
	Scenarios []Scenario    `yaml:"scenarios"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// RenderConfig holds PNG export settings.
type RenderConfig struct {
	CellSize int    `yaml:"cell_size"` // Pixels per addressable cell
	OutDir   string `yaml:"out_dir"`   // Empty disables PNG export
}

// SearchConfig holds engine-wide search settings.
type SearchConfig struct {
	Workers int `yaml:"workers"` // Sweep parallelism, 0 = NumCPU
}

// Cell names a grid coordinate in scenario configuration.
type Cell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Scenario describes one map plus the searches to run on it.
type Scenario struct {
	Name  string   `yaml:"name"`
	Grid  []string `yaml:"grid"`
	Scale int      `yaml:"scale"` // Addressable cells per logical cell, 0 = 1
	Mode  string   `yaml:"mode"`  // nearest or goal
	Cost  string   `yaml:"cost"`  // uniform or terrain
	Start *Cell    `yaml:"start,omitempty"` // Nil sweeps every free cell
	Goal  *Cell    `yaml:"goal,omitempty"`  // Required for goal mode
}

// Default returns a Config with sensible default values: one small
// nearest-target scenario on a uniform-cost floor map.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Render: RenderConfig{
			CellSize: 5,
			OutDir:   "",
		},
		Search: SearchConfig{
			Workers: 0,
		},
		Scenarios: []Scenario{
			{
				Name: "orchard",
				Grid: []string{
					"#########",
					"#.......#",
					"#.....T.#",
					"#.......#",
					"#########",
				},
				Mode: ModeNearest,
				Cost: CostUniform,
			},
		},
	}
}

// Validate checks that every scenario is runnable.
func (c *Config) Validate() error {
	if len(c.Scenarios) == 0 {
		return ErrNoScenarios
	}

	for i := range c.Scenarios {
		if err := c.Scenarios[i].validate(); err != nil {
			return fmt.Errorf("scenario %q: %w", c.Scenarios[i].name(i), err)
		}
	}

	return nil
}

func (s *Scenario) validate() error {
	if len(s.Grid) == 0 {
		return errors.New("grid is empty")
	}
	if s.Scale < 0 {
		return fmt.Errorf("scale %d is negative", s.Scale)
	}

	switch s.Mode {
	case ModeNearest, "":
	case ModeGoal:
		if s.Goal == nil {
			return errors.New("goal mode needs a goal cell")
		}
	default:
		return fmt.Errorf("unknown mode %q", s.Mode)
	}

	switch s.Cost {
	case CostUniform, CostTerrain, "":
	default:
		return fmt.Errorf("unknown cost model %q", s.Cost)
	}

	return nil
}

// name returns the scenario name, falling back to its index.
func (s *Scenario) name(i int) string {
	if s.Name != "" {
		return s.Name
	}

	return fmt.Sprintf("scenario-%d", i)
}

// DisplayName returns the scenario name used in logs and file names.
func (s *Scenario) DisplayName(i int) string {
	return s.name(i)
}
