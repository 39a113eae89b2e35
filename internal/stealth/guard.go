package stealth

import "github.com/tmelnyk/shadowstep/internal/core"

// Guard is an enemy patrolling a fixed two-step route. Every turn the guard
// attempts one step along the first route entry, then the two entries swap,
// so the guard alternates direction each turn whether or not it moved.
type Guard struct {
	Pos   core.Position
	Route [2]core.Direction
}

// NewGuard creates a guard at the given position with a two-step route.
func NewGuard(pos core.Position, first, second core.Direction) Guard {
	return Guard{Pos: pos, Route: [2]core.Direction{first, second}}
}

// Heading returns the direction the guard will attempt next turn.
func (g *Guard) Heading() core.Direction {
	return g.Route[0]
}

// Advance moves the guard one step along its route, then toggles the route.
// The step is skipped when it would leave the grid bounds. Guards do not
// consult walls, so a route through a wall overlaps it; level authors must
// keep patrol routes clear.
func (g *Guard) Advance(grid *Grid) {
	next := g.Pos.Step(g.Route[0])
	if grid.InBounds(next) {
		g.Pos = next
	}
	// Route toggles even for a blocked, no-op step.
	g.Route[0], g.Route[1] = g.Route[1], g.Route[0]
}

// GuardSpawn is the level-authored initial placement of a guard.
type GuardSpawn struct {
	Pos   core.Position
	Route [2]core.Direction
}

// DefaultGuardSpawns returns the historical guard layout used by levels
// that do not declare their own guard list: two guards patrolling
// horizontally near the middle and lower part of a 10×10 grid.
func DefaultGuardSpawns() []GuardSpawn {
	return []GuardSpawn{
		{Pos: core.At(5, 4), Route: [2]core.Direction{core.DirRight, core.DirLeft}},
		{Pos: core.At(8, 7), Route: [2]core.Direction{core.DirLeft, core.DirRight}},
	}
}
