package stealth

import (
	"errors"
	"testing"

	"github.com/tmelnyk/shadowstep/internal/core"
)

func newTestState(t *testing.T, rows []string, guards []GuardSpawn, rules Rules) *State {
	t.Helper()
	grid := mustGrid(t, rows)
	s, err := NewState(Setup{Grid: grid, Guards: guards}, rules)
	if err != nil {
		t.Fatalf("NewState() failed: %v", err)
	}
	return s
}

func TestNewStateMissingMarker(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"no start", []string{".....", "....G"}},
		{"no goal", []string{"P....", "....."}},
		{"neither", []string{".....", "....."}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			grid := mustGrid(t, tc.rows)
			_, err := NewState(Setup{Grid: grid}, DefaultRules())
			if !errors.Is(err, ErrMissingMarker) {
				t.Errorf("NewState() error = %v, expected ErrMissingMarker", err)
			}
		})
	}
}

func TestCorridorScenario(t *testing.T) {
	// Level row "P........G": two rights then confirm moves the player
	// from (1,1) to (3,1). Guard defaults apply; the queue empties and
	// no warning remains.
	s := newTestState(t, []string{"P........G"}, nil, DefaultRules())

	if !s.Player().Equal(core.At(1, 1)) {
		t.Fatalf("initial player = %v, expected (1,1)", s.Player())
	}

	s.Plan(core.DirRight)
	s.Plan(core.DirRight)
	if !s.Confirm() {
		t.Fatal("Confirm() rejected a non-empty plan")
	}

	if !s.Player().Equal(core.At(3, 1)) {
		t.Errorf("player = %v, expected (3,1)", s.Player())
	}
	if s.Planner().Len() != 0 {
		t.Errorf("queue length after turn = %d, expected 0", s.Planner().Len())
	}
	if s.Planner().Notice() != NoticeNone {
		t.Errorf("notice after turn = %v, expected none", s.Planner().Notice())
	}
	if s.Turns() != 1 {
		t.Errorf("turns = %d, expected 1", s.Turns())
	}
}

func TestBlockedMovesAreDroppedNotFatal(t *testing.T) {
	// Up from the top row is out of bounds and silently dropped; the
	// remaining queued moves still attempt in order.
	s := newTestState(t, []string{
		"P#.......G",
		"..........",
	}, []GuardSpawn{}, DefaultRules())

	s.Plan(core.DirUp)    // Dropped: out of bounds
	s.Plan(core.DirRight) // Dropped: wall at (2,1)
	s.Plan(core.DirDown)  // Applies: (1,2)
	s.Confirm()

	if !s.Player().Equal(core.At(1, 2)) {
		t.Errorf("player = %v, expected (1,2)", s.Player())
	}
	if s.MovesExecuted() != 1 {
		t.Errorf("MovesExecuted() = %d, expected 1", s.MovesExecuted())
	}
	if s.Planner().Len() != 0 || s.Planner().Notice() != NoticeNone {
		t.Error("queue and notice must clear even when moves were dropped")
	}
}

func TestFourthMoveRejected(t *testing.T) {
	s := newTestState(t, []string{"P........G"}, nil, DefaultRules())

	for i := 0; i < 3; i++ {
		if !s.Plan(core.DirUp) {
			t.Fatalf("Plan() #%d rejected", i+1)
		}
	}
	if s.Planner().Notice() != NoticeReady {
		t.Errorf("notice after 3rd plan = %v, expected ready", s.Planner().Notice())
	}
	if s.Plan(core.DirUp) {
		t.Error("4th Plan() accepted, expected reject")
	}
	if s.Planner().Len() != 3 {
		t.Errorf("queue length = %d, expected 3", s.Planner().Len())
	}
	if s.Planner().Notice() != NoticeQueueFull {
		t.Errorf("notice = %v, expected queue full", s.Planner().Notice())
	}
}

func TestConfirmEmptyIsNoOp(t *testing.T) {
	guards := []GuardSpawn{
		{Pos: core.At(5, 1), Route: [2]core.Direction{core.DirLeft, core.DirRight}},
	}
	s := newTestState(t, []string{"P........G"}, guards, DefaultRules())

	before := s.Snapshot()
	if s.Confirm() {
		t.Error("Confirm() on empty queue should be rejected")
	}
	after := s.Snapshot()

	if !after.Player.Equal(before.Player) {
		t.Error("player moved on empty confirm")
	}
	if !after.Guards[0].Pos.Equal(before.Guards[0].Pos) {
		t.Error("guard moved on empty confirm")
	}
	if after.Turn != before.Turn {
		t.Error("turn counter advanced on empty confirm")
	}
	if s.Planner().Notice() != NoticeNothingPlanned {
		t.Errorf("notice = %v, expected nothing planned", s.Planner().Notice())
	}
}

func TestGuardCapture(t *testing.T) {
	// The guard at (2,2) heads up into row 1 and ends the turn on the
	// player's final cell.
	guards := []GuardSpawn{
		{Pos: core.At(2, 2), Route: [2]core.Direction{core.DirUp, core.DirDown}},
	}
	s := newTestState(t, []string{
		"P........G",
		"..........",
	}, guards, DefaultRules())

	s.Plan(core.DirRight)
	s.Confirm()

	if s.Outcome() != OutcomeDefeat {
		t.Errorf("outcome = %v, expected defeat by capture", s.Outcome())
	}
}

func TestGoalVictory(t *testing.T) {
	s := newTestState(t, []string{"P.G"}, []GuardSpawn{
		{Pos: core.At(1, 1), Route: [2]core.Direction{core.DirLeft, core.DirRight}},
	}, DefaultRules())

	s.Plan(core.DirRight)
	s.Plan(core.DirRight)
	s.Confirm()

	if s.Outcome() != OutcomeVictory {
		t.Errorf("outcome = %v, expected victory", s.Outcome())
	}

	// A finished run accepts no further plans.
	if s.Plan(core.DirLeft) {
		t.Error("Plan() accepted after the run ended")
	}
}

func TestOutcomeTogglesOff(t *testing.T) {
	rules := DefaultRules()
	rules.GoalVictory = false
	rules.GuardCapture = false

	guards := []GuardSpawn{
		{Pos: core.At(2, 2), Route: [2]core.Direction{core.DirUp, core.DirDown}},
	}
	s := newTestState(t, []string{
		"PG........",
		"..........",
	}, guards, rules)

	s.Plan(core.DirRight)
	s.Confirm()

	// Player is on the goal AND shares a cell with the guard; with both
	// rules off the run simply continues.
	if s.Outcome() != OutcomePlaying {
		t.Errorf("outcome = %v, expected playing", s.Outcome())
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	guards := []GuardSpawn{
		{Pos: core.At(6, 2), Route: [2]core.Direction{core.DirRight, core.DirLeft}},
	}
	s := newTestState(t, []string{
		"P.........",
		"..........",
		".........G",
	}, guards, DefaultRules())

	s.Plan(core.DirRight)
	s.Plan(core.DirDown)
	s.Confirm()
	s.Plan(core.DirDown) // Unconfirmed plan, discarded by reset

	s.Reset()

	if !s.Player().Equal(core.At(1, 1)) {
		t.Errorf("player after reset = %v, expected (1,1)", s.Player())
	}
	g := s.Guards()[0]
	if !g.Pos.Equal(core.At(6, 2)) || g.Heading() != core.DirRight {
		t.Errorf("guard after reset = %v heading %v, expected (6,2) heading right", g.Pos, g.Heading())
	}
	if s.Planner().Len() != 0 {
		t.Errorf("queue after reset = %d entries, expected 0", s.Planner().Len())
	}
	if s.Turns() != 0 {
		t.Errorf("turns after reset = %d, expected 0", s.Turns())
	}
	if s.Outcome() != OutcomePlaying {
		t.Errorf("outcome after reset = %v, expected playing", s.Outcome())
	}
}

func TestDefaultGuardsUsedWhenLevelHasNone(t *testing.T) {
	rows := []string{
		"P.........",
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		".........G",
	}
	s := newTestState(t, rows, nil, DefaultRules())

	if len(s.Guards()) != len(DefaultGuardSpawns()) {
		t.Errorf("guard count = %d, expected the default set", len(s.Guards()))
	}
}

func TestSequentialTurns(t *testing.T) {
	rows := []string{
		"P.........",
		"..........",
		"..........",
		".........G",
	}
	s := newTestState(t, rows, []GuardSpawn{}, DefaultRules())

	// Three full turns of three downward-and-right moves walk the player
	// to the goal column.
	plans := [][]core.Direction{
		{core.DirRight, core.DirRight, core.DirRight},
		{core.DirRight, core.DirRight, core.DirRight},
		{core.DirRight, core.DirRight, core.DirRight},
	}
	for _, turn := range plans {
		for _, d := range turn {
			s.Plan(d)
		}
		s.Confirm()
	}

	if !s.Player().Equal(core.At(10, 1)) {
		t.Errorf("player = %v, expected (10,1)", s.Player())
	}
	if s.Turns() != 3 {
		t.Errorf("turns = %d, expected 3", s.Turns())
	}
	if s.MovesExecuted() != 9 {
		t.Errorf("MovesExecuted() = %d, expected 9", s.MovesExecuted())
	}
}
