// Package stealth implements the turn-based stealth puzzle:
// the player plans up to a fixed number of moves per turn, confirms them,
// and guards then advance one step each along fixed back-and-forth routes.
// This package is UI-agnostic and deterministic.
package stealth

// Cell is one square of a level grid.
type Cell uint8

const (
	CellFloor Cell = iota
	CellWall
	CellStart
	CellGoal
)

// ParseCell maps a level-text rune to a cell.
// The level alphabet is '.' floor, '#' wall, 'P' player start, 'G' goal.
func ParseCell(r rune) (Cell, bool) {
	switch r {
	case '.':
		return CellFloor, true
	case '#':
		return CellWall, true
	case 'P':
		return CellStart, true
	case 'G':
		return CellGoal, true
	default:
		return CellFloor, false
	}
}

// Rune returns the level-text rune for a cell.
func (c Cell) Rune() rune {
	switch c {
	case CellFloor:
		return '.'
	case CellWall:
		return '#'
	case CellStart:
		return 'P'
	case CellGoal:
		return 'G'
	default:
		return '?'
	}
}

// Passable returns true for every cell except walls.
// Start and Goal cells are walkable floor.
func (c Cell) Passable() bool {
	return c != CellWall
}

// String returns a human-readable cell name.
func (c Cell) String() string {
	switch c {
	case CellFloor:
		return "floor"
	case CellWall:
		return "wall"
	case CellStart:
		return "start"
	case CellGoal:
		return "goal"
	default:
		return "unknown"
	}
}
