// Command gridpathvis replays the first configured scenario in a GUI,
// stepping through each start's path. Space toggles playback, the arrow
// keys step, Home rewinds.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/unit"

	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/scenario"
	"github.com/katalvlaran/gridpath/internal/vis"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "gridpathvis:", err)
		os.Exit(1)
	}

	sc := &cfg.Scenarios[0]
	g, results, err := scenario.Run(context.Background(), sc, cfg.Search.Workers)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gridpathvis:", err)
		os.Exit(1)
	}

	probes := make([]vis.Probe, len(results))
	for i, r := range results {
		probes[i] = vis.Probe{Start: r.Start, Path: r.Path, Cost: r.Cost}
	}

	go func() {
		window := new(app.Window)
		window.Option(
			app.Title("gridpath viewer"),
			app.Size(unit.Dp(900), unit.Dp(600)),
		)

		application := vis.NewApp(g, probes)
		if err := application.Run(window); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}
