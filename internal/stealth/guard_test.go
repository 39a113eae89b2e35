package stealth

import (
	"testing"

	"github.com/tmelnyk/shadowstep/internal/core"
)

func mustGrid(t *testing.T, rows []string) *Grid {
	t.Helper()
	g, err := ParseGrid(rows)
	if err != nil {
		t.Fatalf("ParseGrid() failed: %v", err)
	}
	return g
}

func TestGuardAdvanceMovesAndToggles(t *testing.T) {
	grid := mustGrid(t, []string{
		"P....",
		".....",
		"....G",
	})

	g := NewGuard(core.At(2, 2), core.DirRight, core.DirLeft)
	g.Advance(grid)

	if !g.Pos.Equal(core.At(3, 2)) {
		t.Errorf("position after advance = %v, expected (3,2)", g.Pos)
	}
	if g.Heading() != core.DirLeft {
		t.Errorf("heading after advance = %v, expected left", g.Heading())
	}
}

func TestGuardBlockedStepStillToggles(t *testing.T) {
	grid := mustGrid(t, []string{
		"P....",
		".....",
		"....G",
	})

	// Guard at the right edge heading right: the step is clamped.
	g := NewGuard(core.At(5, 2), core.DirRight, core.DirLeft)
	g.Advance(grid)

	if !g.Pos.Equal(core.At(5, 2)) {
		t.Errorf("blocked guard moved to %v, expected to stay at (5,2)", g.Pos)
	}
	if g.Heading() != core.DirLeft {
		t.Error("route must toggle even when the step was blocked")
	}
}

func TestGuardRouteTogglesEveryTurn(t *testing.T) {
	grid := mustGrid(t, []string{
		"P.........",
		"..........",
		".........G",
	})

	g := NewGuard(core.At(5, 2), core.DirRight, core.DirLeft)
	initial := g.Route

	for n := 1; n <= 7; n++ {
		g.Advance(grid)
		expectFlipped := n%2 == 1
		flipped := g.Route[0] == initial[1] && g.Route[1] == initial[0]
		if flipped != expectFlipped {
			t.Fatalf("after %d turns route = %v, flipped = %v, expected flipped = %v",
				n, g.Route, flipped, expectFlipped)
		}
	}
}

func TestGuardIgnoresWalls(t *testing.T) {
	// Known limitation: guards step onto wall cells because they only
	// bounds-check.
	grid := mustGrid(t, []string{
		"P....",
		"..#..",
		"....G",
	})

	g := NewGuard(core.At(2, 2), core.DirRight, core.DirLeft)
	g.Advance(grid)

	if !g.Pos.Equal(core.At(3, 2)) {
		t.Errorf("guard position = %v, expected to overlap the wall at (3,2)", g.Pos)
	}
}

func TestDefaultGuardSpawns(t *testing.T) {
	spawns := DefaultGuardSpawns()
	if len(spawns) != 2 {
		t.Fatalf("expected 2 default guards, got %d", len(spawns))
	}
	for i, sp := range spawns {
		if sp.Route[0] == sp.Route[1] {
			t.Errorf("guard %d route is not a two-direction cycle: %v", i, sp.Route)
		}
	}
}
