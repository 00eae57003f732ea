// Command gridpath runs configured grid-search scenarios and logs the
// results, optionally exporting each found path as a PNG.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/logger"
	"github.com/katalvlaran/gridpath/internal/render"
	"github.com/katalvlaran/gridpath/internal/scenario"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "gridpath:", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintln(os.Stderr, "gridpath:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := context.Background()
	for i := range cfg.Scenarios {
		if err := runScenario(ctx, cfg, i); err != nil {
			logger.Fatal("scenario failed",
				zap.String("scenario", cfg.Scenarios[i].DisplayName(i)),
				zap.Error(err))
		}
	}
}

// runScenario executes one scenario, logs every result, and exports the
// best path as PNG when an output directory is configured.
func runScenario(ctx context.Context, cfg *config.Config, i int) error {
	sc := &cfg.Scenarios[i]
	name := sc.DisplayName(i)

	logger.Info("running scenario",
		zap.String("scenario", name),
		zap.String("mode", sc.Mode),
		zap.String("cost", sc.Cost),
		zap.Int("rows", len(sc.Grid)))

	g, results, err := scenario.Run(ctx, sc, cfg.Search.Workers)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		logger.Warn("no path found", zap.String("scenario", name))

		return nil
	}

	best := results[0]
	for _, r := range results {
		logger.Debug("path found",
			zap.Int("start_x", r.Start.X),
			zap.Int("start_y", r.Start.Y),
			zap.Int64("cost", r.Cost),
			zap.Int("cells", len(r.Path)))
		if r.Cost < best.Cost {
			best = r
		}
	}

	end := best.Path[len(best.Path)-1]
	logger.Info("scenario done",
		zap.String("scenario", name),
		zap.Int("paths", len(results)),
		zap.Int64("best_cost", best.Cost),
		zap.Int("best_start_x", best.Start.X),
		zap.Int("best_start_y", best.Start.Y),
		zap.Int("end_x", end.X),
		zap.Int("end_y", end.Y))

	if cfg.Render.OutDir == "" {
		return nil
	}

	out := filepath.Join(cfg.Render.OutDir, name+".png")
	img := render.Image(g, best.Path, cfg.Render.CellSize)
	if err := render.WritePNG(out, img); err != nil {
		return err
	}
	logger.Info("exported", zap.String("file", out))

	return nil
}
