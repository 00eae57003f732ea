package pathfind_test

import (
	"context"
	"strings"
	"testing"

	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/pathfind"
)

// openArena builds an n×n wall-framed floor map with a target at the
// south-east corner.
func openArena(n int) []string {
	rows := make([]string, n)
	for y := 0; y < n; y++ {
		var b strings.Builder
		for x := 0; x < n; x++ {
			switch {
			case x == 0 || y == 0 || x == n-1 || y == n-1:
				b.WriteByte('#')
			case x == n-2 && y == n-2:
				b.WriteByte('T')
			default:
				b.WriteByte('.')
			}
		}
		rows[y] = b.String()
	}

	return rows
}

// BenchmarkNearest measures uninformed search across a 256×256 arena,
// start and target at opposite corners.
// Complexity: O(N log N)
func BenchmarkNearest(b *testing.B) {
	g, err := gridmap.Parse(openArena(256), gridmap.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}
	start := gridmap.Cell{X: 1, Y: 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := pathfind.Nearest(g, start, g.IsTarget); err != nil {
			b.Fatalf("Nearest failed: %v", err)
		}
	}
}

// BenchmarkGoal measures A* across the same arena; the Manhattan heuristic
// prunes most of the frontier relative to BenchmarkNearest.
func BenchmarkGoal(b *testing.B) {
	g, err := gridmap.Parse(openArena(256), gridmap.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}
	start := gridmap.Cell{X: 1, Y: 1}
	goal := gridmap.Cell{X: 254, Y: 254}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := pathfind.Goal(g, start, goal); err != nil {
			b.Fatalf("Goal failed: %v", err)
		}
	}
}

// BenchmarkNearestAll measures the parallel sweep over a 64×64 arena.
func BenchmarkNearestAll(b *testing.B) {
	g, err := gridmap.Parse(openArena(64), gridmap.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pathfind.NearestAll(ctx, g, g.IsTarget); err != nil {
			b.Fatalf("NearestAll failed: %v", err)
		}
	}
}
