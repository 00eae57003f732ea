// Package gridmap parses ASCII maps into immutable rectangular grids and
// supplies the cost models consumed by package pathfind.
//
// What:
//
//   - Grid wraps a rectangular []string map with terrain classification.
//   - Symbols: '#' wall, '.' floor, 'T' target, '1' grass, '2' sand, '3' water.
//   - Neighbors returns 4-connected candidates in a fixed left/right/up/down order.
//   - UniformCost and TerrainCost build the per-edge cost functions.
//   - Optional Scale turns each logical cell into Scale×Scale addressable cells.
//
// Why:
//
//   - Game maps: walls, marked targets, terrain that slows movement.
//   - Robotics/grid worlds: occupancy grids with per-cell traversal cost.
//   - Teaching: the classic "closest tree" and "path to the castle" maps.
//
// Complexity:
//
//   - Parse:                  O(W×H), Memory: O(W×H).
//   - Classify/IsBlocked/...: O(1).
//   - FreeCells/TargetCells:  O(W×H).
//
// Options:
//
//   - GridOptions.Scale: coordinate scale factor (default 1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownSymbol: a rune outside the map alphabet.
//   - ErrBadScale: scale factor below 1.
//
// Concurrency:
//
//   - A Grid is immutable once built; share it freely across goroutines.
package gridmap
