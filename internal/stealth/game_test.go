package stealth

import (
	"strings"
	"testing"

	"github.com/tmelnyk/shadowstep/internal/core"
)

func testLevelSetup(t *testing.T) Setup {
	t.Helper()
	grid := mustGrid(t, []string{
		"P.........",
		"..........",
		".........G",
	})
	return Setup{Grid: grid, Guards: []GuardSpawn{
		{Pos: core.At(6, 2), Route: [2]core.Direction{core.DirLeft, core.DirRight}},
	}}
}

func TestGameStepPlansAndConfirms(t *testing.T) {
	SetLevel(testLevelSetup(t), "test", "Test Level")
	SetRules(DefaultRules())

	g := New()
	g.Reset(core.DefaultConfig())

	input := core.NewInputFrame()
	input.Set(core.ActionMoveRight)
	g.Step(input)
	input.Clear()
	input.Set(core.ActionMoveRight)
	g.Step(input)
	input.Clear()
	input.Set(core.ActionConfirm)
	g.Step(input)

	snap := g.Snapshot()
	if !snap.Player.Equal(core.At(3, 1)) {
		t.Errorf("player = %v, expected (3,1)", snap.Player)
	}
	if snap.Turn != 1 {
		t.Errorf("turn = %d, expected 1", snap.Turn)
	}
	if len(snap.Queued) != 0 {
		t.Errorf("queue = %v, expected empty after confirm", snap.Queued)
	}
}

func TestGameResetActionRestoresLevel(t *testing.T) {
	SetLevel(testLevelSetup(t), "test", "Test Level")
	SetRules(DefaultRules())

	g := New()
	g.Reset(core.DefaultConfig())

	input := core.NewInputFrame()
	input.Set(core.ActionMoveDown)
	g.Step(input)
	input.Clear()
	input.Set(core.ActionConfirm)
	g.Step(input)

	input.Clear()
	input.Set(core.ActionReset)
	g.Step(input)

	snap := g.Snapshot()
	if !snap.Player.Equal(core.At(1, 1)) {
		t.Errorf("player after reset = %v, expected (1,1)", snap.Player)
	}
	if snap.Turn != 0 {
		t.Errorf("turn after reset = %d, expected 0", snap.Turn)
	}
}

func TestGameRenderShowsEntities(t *testing.T) {
	SetLevel(testLevelSetup(t), "test", "Test Level")
	SetRules(DefaultRules())

	g := New()
	g.Reset(core.DefaultConfig())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "@") {
		t.Error("render output missing player glyph")
	}
	if !strings.Contains(out, "G") {
		t.Error("render output missing goal glyph")
	}
	if !strings.Contains(out, "g") {
		t.Error("render output missing guard glyph")
	}
	if !strings.Contains(out, "Shadowstep") {
		t.Error("render output missing HUD title")
	}
}

func TestGameStateReportsOutcome(t *testing.T) {
	grid := mustGrid(t, []string{"P.G"})
	SetLevel(Setup{Grid: grid, Guards: []GuardSpawn{
		{Pos: core.At(1, 1), Route: [2]core.Direction{core.DirLeft, core.DirRight}},
	}}, "corridor", "Corridor")
	SetRules(DefaultRules())

	g := New()
	cfg := core.DefaultConfig()
	g.Reset(cfg)

	input := core.NewInputFrame()
	input.Set(core.ActionMoveRight)
	g.Step(input)
	g.Step(input)
	input.Clear()
	input.Set(core.ActionConfirm)
	res := g.Step(input)

	if !res.State.GameOver || !res.State.Won {
		t.Errorf("state = %+v, expected won game over", res.State)
	}
	if res.State.Turns != 1 {
		t.Errorf("turns = %d, expected 1", res.State.Turns)
	}
}
