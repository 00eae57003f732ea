// Package render exports grids and search results as PNG images.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/katalvlaran/gridpath/gridmap"
)

// Overlay colors for search results.
var (
	pathColor  = color.RGBA{R: 220, G: 60, B: 60, A: 255}
	startColor = color.RGBA{R: 60, G: 90, B: 220, A: 255}
)

// colorOf maps a terrain class to its fill color.
func colorOf(t gridmap.Terrain) color.RGBA {
	switch t {
	case gridmap.Wall:
		return color.RGBA{R: 40, G: 40, B: 40, A: 255}
	case gridmap.Grass:
		return color.RGBA{R: 120, G: 200, B: 80, A: 255}
	case gridmap.Sand:
		return color.RGBA{R: 235, G: 200, B: 120, A: 255}
	case gridmap.Water:
		return color.RGBA{R: 80, G: 140, B: 235, A: 255}
	case gridmap.Target:
		return color.RGBA{R: 0, G: 155, B: 0, A: 255}
	default: // Floor
		return color.RGBA{R: 235, G: 235, B: 235, A: 255}
	}
}

// Image draws the grid with an optional path overlay, cellSize pixels per
// addressable cell. The first path cell is marked as the start.
func Image(g *gridmap.Grid, path []gridmap.Cell, cellSize int) *image.RGBA {
	if cellSize < 1 {
		cellSize = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, g.Width()*cellSize, g.Height()*cellSize))

	// 1) Terrain layer, one block per addressable cell.
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			fillCell(img, x, y, cellSize, 0, colorOf(g.Classify(gridmap.Cell{X: x, Y: y})))
		}
	}

	// 2) Path overlay, inset so the terrain stays visible underneath.
	inset := cellSize / 4
	for i, c := range path {
		fill := pathColor
		if i == 0 {
			fill = startColor
		}
		fillCell(img, c.X, c.Y, cellSize, inset, fill)
	}

	return img
}

// fillCell paints one cell block, shrunk by inset pixels on each side.
func fillCell(img *image.RGBA, cx, cy, cellSize, inset int, fill color.RGBA) {
	x0, y0 := cx*cellSize+inset, cy*cellSize+inset
	x1, y1 := (cx+1)*cellSize-inset, (cy+1)*cellSize-inset
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetRGBA(x, y, fill)
		}
	}
}

// WritePNG encodes the image to the given file, creating parent
// directories as needed.
func WritePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("render: creating %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: creating %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("render: encoding %s: %w", path, err)
	}

	return nil
}
