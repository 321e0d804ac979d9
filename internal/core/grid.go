package core

import "strings"

// Grid is a sparse, unbounded map of terminal cells.
//
// It keeps a configured minimum size in cell units. The extent used for
// rendering is the larger of that minimum and the largest coordinate ever
// written, computed on demand so that Clear shrinks it back.
type Grid[T any] struct {
	cells  map[Point]T
	width  int
	height int
}

// NewGrid creates an empty grid with the given minimum size in cells.
func NewGrid[T any](width, height int) *Grid[T] {
	return &Grid[T]{
		cells:  make(map[Point]T),
		width:  width,
		height: height,
	}
}

// Size returns the configured minimum size in cells.
func (g *Grid[T]) Size() (width, height int) {
	return g.width, g.height
}

// SetSize changes the configured minimum size in cells.
func (g *Grid[T]) SetSize(width, height int) {
	g.width = width
	g.height = height
}

// Lookup returns the cell at p and whether it has been written.
func (g *Grid[T]) Lookup(p Point) (T, bool) {
	v, ok := g.cells[p]
	return v, ok
}

// Put stores v at p, replacing any previous value.
func (g *Grid[T]) Put(p Point, v T) {
	g.cells[p] = v
}

// Update replaces the cell at p with fn applied to its current value.
// An absent cell is passed as def; the result is always stored.
func (g *Grid[T]) Update(p Point, def T, fn func(T) T) {
	v, ok := g.cells[p]
	if !ok {
		v = def
	}
	g.cells[p] = fn(v)
}

// Clear removes every cell. The configured size is kept.
func (g *Grid[T]) Clear() {
	clear(g.cells)
}

// Extent returns the largest column and row to render: the configured
// size or the largest written coordinate, whichever is bigger.
func (g *Grid[T]) Extent() (maxCol, maxRow int) {
	maxCol, maxRow = g.width, g.height
	for p := range g.cells {
		maxCol = Max(maxCol, p.X)
		maxRow = Max(maxRow, p.Y)
	}
	return maxCol, maxRow
}

// Rows renders rows 0..maxRow, each holding cells 0..maxCol.
// encode appends one cell to the row; absent cells are passed as def.
// suffix is appended to every row.
func (g *Grid[T]) Rows(def T, encode func(sb *strings.Builder, v T), suffix string) []string {
	maxCol, maxRow := g.Extent()

	rows := make([]string, 0, maxRow+1)
	var sb strings.Builder
	for y := 0; y <= maxRow; y++ {
		sb.Reset()
		for x := 0; x <= maxCol; x++ {
			v, ok := g.cells[Point{X: x, Y: y}]
			if !ok {
				v = def
			}
			encode(&sb, v)
		}
		sb.WriteString(suffix)
		rows = append(rows, sb.String())
	}
	return rows
}
