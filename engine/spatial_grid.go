package engine

import (
	"math"

	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/vmath"
)

// GridEntry is one body registered in a cell with its collision radius
type GridEntry struct {
	Body   component.Body
	Radius float64
}

// SpatialGrid is a uniform broad-phase grid over the toroidal arena
// Rebuilt from scratch once per tick: Clear, then Insert every threat collider
type SpatialGrid struct {
	CellSize float64
	Cols     int
	Rows     int
	Cells    [][]GridEntry // index = row*Cols + col

	// Query scratch, reused across calls
	seen   map[component.Body]struct{}
	result []GridEntry
}

// NewSpatialGrid creates a grid covering width x height with square cells
func NewSpatialGrid(width, height, cellSize float64) *SpatialGrid {
	if cellSize <= 0 {
		cellSize = 1
	}
	cols := max(1, int(math.Ceil(width/cellSize)))
	rows := max(1, int(math.Ceil(height/cellSize)))
	return &SpatialGrid{
		CellSize: cellSize,
		Cols:     cols,
		Rows:     rows,
		Cells:    make([][]GridEntry, cols*rows),
		seen:     make(map[component.Body]struct{}),
	}
}

// Clear empties all cells, keeping their backing arrays
func (g *SpatialGrid) Clear() {
	for i := range g.Cells {
		g.Cells[i] = g.Cells[i][:0]
	}
}

// cellCoord maps an arena coordinate to an unwrapped cell coordinate
func (g *SpatialGrid) cellCoord(v float64) int {
	return int(math.Floor(v / g.CellSize))
}

// Insert registers b in every cell its bounding circle overlaps, wrapping cell coordinates
func (g *SpatialGrid) Insert(b component.Body, radius float64) {
	x, y := b.Pos()
	minCol, maxCol := g.cellCoord(x-radius), g.cellCoord(x+radius)
	minRow, maxRow := g.cellCoord(y-radius), g.cellCoord(y+radius)

	// A circle wider than the arena would visit the same wrapped cell repeatedly
	if maxCol-minCol >= g.Cols {
		minCol, maxCol = 0, g.Cols-1
	}
	if maxRow-minRow >= g.Rows {
		minRow, maxRow = 0, g.Rows-1
	}

	entry := GridEntry{Body: b, Radius: radius}
	for r := minRow; r <= maxRow; r++ {
		row := vmath.WrapIndex(r, g.Rows) * g.Cols
		for c := minCol; c <= maxCol; c++ {
			idx := row + vmath.WrapIndex(c, g.Cols)
			g.Cells[idx] = append(g.Cells[idx], entry)
		}
	}
}

// Query returns distinct entries near b, excluding b itself by identity
// Scans the 3x3 neighborhood of b's cell, widened when radius exceeds one cell
// The returned slice is reused by the next Query call
func (g *SpatialGrid) Query(b component.Body, radius float64) []GridEntry {
	x, y := b.Pos()
	col := g.cellCoord(x)
	row := g.cellCoord(y)

	span := 1
	if radius > g.CellSize {
		span = int(math.Ceil(radius / g.CellSize))
	}

	clear(g.seen)
	g.result = g.result[:0]

	for dr := -span; dr <= span; dr++ {
		rowBase := vmath.WrapIndex(row+dr, g.Rows) * g.Cols
		for dc := -span; dc <= span; dc++ {
			for _, e := range g.Cells[rowBase+vmath.WrapIndex(col+dc, g.Cols)] {
				if e.Body == b {
					continue
				}
				if _, dup := g.seen[e.Body]; dup {
					continue
				}
				g.seen[e.Body] = struct{}{}
				g.result = append(g.result, e)
			}
		}
	}
	return g.result
}

// Count returns total stored entries including multi-cell duplicates
func (g *SpatialGrid) Count() int {
	n := 0
	for i := range g.Cells {
		n += len(g.Cells[i])
	}
	return n
}
