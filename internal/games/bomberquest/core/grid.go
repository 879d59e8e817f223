// Package core implements the BomberQuest tile simulation: the map grid,
// level construction from spawn records, bombs and blast propagation,
// enemies and the fixed-order tick loop.
// This package is UI-agnostic and deterministic for a given RNG seed.
package core

// CellKind is the static content of a map tile.
type CellKind uint8

const (
	Floor CellKind = iota
	WallIndestructible
	WallDestructible
)

// String returns the string representation of a cell kind.
func (k CellKind) String() string {
	switch k {
	case Floor:
		return "Floor"
	case WallIndestructible:
		return "WallIndestructible"
	case WallDestructible:
		return "WallDestructible"
	default:
		return "Unknown"
	}
}

// Blocking reports whether the kind stops movement.
func (k CellKind) Blocking() bool {
	return k == WallIndestructible || k == WallDestructible
}

// Grid is the fixed-size tile map.
// Cells are stored in row-major order: index = y*W + x.
type Grid struct {
	W     int
	H     int
	cells []CellKind
}

// NewGrid creates a grid of the given size with every cell set to Floor.
func NewGrid(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid{
		W:     w,
		H:     h,
		cells: make([]CellKind, w*h),
	}
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// KindAt returns the kind of the tile at c.
// Coordinates outside the grid read as WallIndestructible.
func (g *Grid) KindAt(c Coord) CellKind {
	if !g.InBounds(c) {
		return WallIndestructible
	}
	return g.cells[g.index(c)]
}

// IsBlocking reports whether c is a wall or outside the grid.
func (g *Grid) IsBlocking(c Coord) bool {
	return g.KindAt(c).Blocking()
}

// Destroy turns a destructible wall at c into floor.
// Returns true only if a destructible wall was there.
func (g *Grid) Destroy(c Coord) bool {
	if g.KindAt(c) != WallDestructible {
		return false
	}
	g.cells[g.index(c)] = Floor
	return true
}

// Set writes a cell kind. Used during level construction only;
// out-of-bounds writes are ignored.
func (g *Grid) Set(c Coord, k CellKind) {
	if g.InBounds(c) {
		g.cells[g.index(c)] = k
	}
}

// Count returns the number of cells of the given kind.
func (g *Grid) Count(k CellKind) int {
	n := 0
	for _, cell := range g.cells {
		if cell == k {
			n++
		}
	}
	return n
}

// Coords returns every coordinate holding kind k in row-major order.
func (g *Grid) Coords(k CellKind) []Coord {
	var out []Coord
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.cells[y*g.W+x] == k {
				out = append(out, C(x, y))
			}
		}
	}
	return out
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]CellKind, len(g.cells))
	copy(cells, g.cells)
	return &Grid{W: g.W, H: g.H, cells: cells}
}

// Cells returns a copy of the row-major cell slice.
func (g *Grid) Cells() []CellKind {
	cells := make([]CellKind, len(g.cells))
	copy(cells, g.cells)
	return cells
}
