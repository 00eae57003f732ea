package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagOut      = flag.String("out", "", "Directory for PNG exports")
	flagWorkers  = flag.Int("workers", 0, "Sweep worker count (0 = NumCPU)")
	flagCellSize = flag.Int("cell-size", 0, "Pixels per cell in exports")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagOut != "" {
		cfg.Render.OutDir = *flagOut
	}
	if *flagWorkers > 0 {
		cfg.Search.Workers = *flagWorkers
	}
	if *flagCellSize > 0 {
		cfg.Render.CellSize = *flagCellSize
	}
}
