package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if cfg.Render.CellSize != 5 {
		t.Errorf("expected cell size 5, got %d", cfg.Render.CellSize)
	}
	if cfg.Render.OutDir != "" {
		t.Errorf("expected empty out dir, got %s", cfg.Render.OutDir)
	}

	if len(cfg.Scenarios) != 1 {
		t.Fatalf("expected 1 default scenario, got %d", len(cfg.Scenarios))
	}
	sc := cfg.Scenarios[0]
	if sc.Mode != ModeNearest {
		t.Errorf("expected nearest mode, got %s", sc.Mode)
	}
	if sc.Cost != CostUniform {
		t.Errorf("expected uniform cost, got %s", sc.Cost)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "gridpath.yaml")

	yamlContent := `
logging:
  level: "debug"
  log_file: "search.log"

render:
  cell_size: 8
  out_dir: "out"

search:
  workers: 4

scenarios:
  - name: castle
    grid:
      - "#####"
      - "#...#"
      - "#####"
    scale: 10
    mode: goal
    cost: terrain
    start: {x: 1, y: 1}
    goal: {x: 3, y: 1}
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "search.log" {
		t.Errorf("expected log file 'search.log', got %s", cfg.Logging.LogFile)
	}
	if cfg.Render.CellSize != 8 {
		t.Errorf("expected cell size 8, got %d", cfg.Render.CellSize)
	}
	if cfg.Search.Workers != 4 {
		t.Errorf("expected 4 workers, got %d", cfg.Search.Workers)
	}

	// Scenarios from the file replace the defaults entirely.
	if len(cfg.Scenarios) != 1 {
		t.Fatalf("expected 1 scenario, got %d", len(cfg.Scenarios))
	}
	sc := cfg.Scenarios[0]
	if sc.Name != "castle" {
		t.Errorf("expected name 'castle', got %s", sc.Name)
	}
	if sc.Scale != 10 {
		t.Errorf("expected scale 10, got %d", sc.Scale)
	}
	if sc.Mode != ModeGoal {
		t.Errorf("expected goal mode, got %s", sc.Mode)
	}
	if sc.Goal == nil || sc.Goal.X != 3 || sc.Goal.Y != 1 {
		t.Errorf("expected goal (3,1), got %+v", sc.Goal)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
render:
  cell_size: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/gridpath.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "default is valid",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name: "no scenarios",
			mutate: func(cfg *Config) {
				cfg.Scenarios = nil
			},
			wantErr: true,
		},
		{
			name: "empty grid",
			mutate: func(cfg *Config) {
				cfg.Scenarios[0].Grid = nil
			},
			wantErr: true,
		},
		{
			name: "negative scale",
			mutate: func(cfg *Config) {
				cfg.Scenarios[0].Scale = -2
			},
			wantErr: true,
		},
		{
			name: "unknown mode",
			mutate: func(cfg *Config) {
				cfg.Scenarios[0].Mode = "teleport"
			},
			wantErr: true,
		},
		{
			name: "goal mode without goal",
			mutate: func(cfg *Config) {
				cfg.Scenarios[0].Mode = ModeGoal
				cfg.Scenarios[0].Goal = nil
			},
			wantErr: true,
		},
		{
			name: "goal mode with goal",
			mutate: func(cfg *Config) {
				cfg.Scenarios[0].Mode = ModeGoal
				cfg.Scenarios[0].Goal = &Cell{X: 6, Y: 2}
			},
			wantErr: false,
		},
		{
			name: "unknown cost model",
			mutate: func(cfg *Config) {
				cfg.Scenarios[0].Cost = "gold"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected valid config, got %v", err)
			}
		})
	}
}

func TestValidateNoScenariosSentinel(t *testing.T) {
	cfg := Default()
	cfg.Scenarios = nil

	if err := cfg.Validate(); !errors.Is(err, ErrNoScenarios) {
		t.Errorf("expected ErrNoScenarios, got %v", err)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "out flag",
			setup: func() {
				*flagOut = "renders"
			},
			verify: func(cfg *Config) {
				if cfg.Render.OutDir != "renders" {
					t.Errorf("expected out dir 'renders', got %s", cfg.Render.OutDir)
				}
			},
			teardown: func() {
				*flagOut = ""
			},
		},
		{
			name: "workers flag",
			setup: func() {
				*flagWorkers = 6
			},
			verify: func(cfg *Config) {
				if cfg.Search.Workers != 6 {
					t.Errorf("expected 6 workers, got %d", cfg.Search.Workers)
				}
			},
			teardown: func() {
				*flagWorkers = 0
			},
		},
		{
			name: "cell size flag",
			setup: func() {
				*flagCellSize = 12
			},
			verify: func(cfg *Config) {
				if cfg.Render.CellSize != 12 {
					t.Errorf("expected cell size 12, got %d", cfg.Render.CellSize)
				}
			},
			teardown: func() {
				*flagCellSize = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "gridpath.yaml")

	yamlContent := `
render:
  cell_size: 8
  out_dir: "from-file"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagOut = "from-flag"
	defer func() {
		*flagConfig = ""
		*flagOut = ""
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Out dir comes from the flag, cell size from the file.
	if cfg.Render.OutDir != "from-flag" {
		t.Errorf("expected out dir 'from-flag', got %s", cfg.Render.OutDir)
	}
	if cfg.Render.CellSize != 8 {
		t.Errorf("expected cell size 8 from file, got %d", cfg.Render.CellSize)
	}
}
