package stealth

import (
	"fmt"
	"strings"

	"github.com/tmelnyk/shadowstep/internal/core"
)

// Grid is the static level geometry: a rectangular matrix of cells,
// immutable after parsing. Coordinates are 1-indexed; the valid range is
// [1,W]×[1,H] with (1,1) at the top left.
type Grid struct {
	w     int
	h     int
	cells []Cell // Row-major, length w*h
}

// ParseGrid builds a grid from level text rows.
// Rows must be non-empty, equal length, and use only the level alphabet;
// anything else fails with ErrInvalidLevelFormat.
func ParseGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidLevelFormat)
	}

	width := len([]rune(rows[0]))
	if width == 0 {
		return nil, fmt.Errorf("%w: empty first row", ErrInvalidLevelFormat)
	}

	g := &Grid{
		w:     width,
		h:     len(rows),
		cells: make([]Cell, 0, width*len(rows)),
	}

	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("%w: row %d has length %d, expected %d",
				ErrInvalidLevelFormat, y+1, len(runes), width)
		}
		for x, r := range runes {
			cell, ok := ParseCell(r)
			if !ok {
				return nil, fmt.Errorf("%w: unknown cell %q at (%d,%d)",
					ErrInvalidLevelFormat, r, x+1, y+1)
			}
			g.cells = append(g.cells, cell)
		}
	}

	return g, nil
}

// Width returns the grid width in cells.
func (g *Grid) Width() int {
	return g.w
}

// Height returns the grid height in cells.
func (g *Grid) Height() int {
	return g.h
}

// InBounds returns true if the position is within [1,W]×[1,H].
func (g *Grid) InBounds(p core.Position) bool {
	return p.X >= 1 && p.X <= g.w && p.Y >= 1 && p.Y <= g.h
}

// CellAt returns the cell at a 1-indexed position.
// Out-of-bounds positions read as walls.
func (g *Grid) CellAt(p core.Position) Cell {
	if !g.InBounds(p) {
		return CellWall
	}
	return g.cells[(p.Y-1)*g.w+(p.X-1)]
}

// Passable reports whether the player may stand on the given position.
// The bounds check comes first; inside the grid only walls block.
func (g *Grid) Passable(p core.Position) bool {
	if !g.InBounds(p) {
		return false
	}
	return g.CellAt(p).Passable()
}

// FindMarker returns the first position holding the given cell,
// scanning rows top to bottom, left to right.
func (g *Grid) FindMarker(c Cell) (core.Position, bool) {
	for i, cell := range g.cells {
		if cell == c {
			return core.At(i%g.w+1, i/g.w+1), true
		}
	}
	return core.Position{}, false
}

// String renders the grid back to level text, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.w*g.h + g.h)
	for y := 0; y < g.h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < g.w; x++ {
			sb.WriteRune(g.cells[y*g.w+x].Rune())
		}
	}
	return sb.String()
}
