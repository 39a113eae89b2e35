package stealth

import "github.com/tmelnyk/shadowstep/internal/core"

// Outcome is the status of a level attempt.
type Outcome uint8

const (
	OutcomePlaying Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

// String returns the outcome name used in storage and the HUD.
func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	default:
		return "playing"
	}
}

// Rules are the tunable gameplay parameters. Goal victory and guard capture
// are individually toggleable so sandbox play without an end condition stays
// possible.
type Rules struct {
	MaxMovesPerTurn int
	GoalVictory     bool
	GuardCapture    bool
}

// DefaultRules returns the stock rule set: three moves per turn,
// goal victory and guard capture both enabled.
func DefaultRules() Rules {
	return Rules{
		MaxMovesPerTurn: 3,
		GoalVictory:     true,
		GuardCapture:    true,
	}
}

// Setup is a compiled level ready to play: parsed geometry plus guard
// spawns. Levels without an authored guard list use DefaultGuardSpawns.
type Setup struct {
	Grid   *Grid
	Guards []GuardSpawn
}

// State owns every mutable entity of one level attempt: the player, the
// guards, the goal, and the move planner. It is the single exclusive owner;
// nothing else mutates these. All transitions happen synchronously in
// response to Plan / Confirm / Reset.
type State struct {
	grid   *Grid
	spawns []GuardSpawn
	rules  Rules

	player  core.Position
	goal    core.Position
	guards  []Guard
	planner *Planner

	turns   int
	applied int // Moves actually executed (dropped moves excluded)
	outcome Outcome
}

// NewState compiles a setup into a playable state. The grid is scanned once
// for the start and goal markers; a level missing either fails with
// ErrMissingMarker and never enters play state.
func NewState(setup Setup, rules Rules) (*State, error) {
	start, ok := setup.Grid.FindMarker(CellStart)
	if !ok {
		return nil, ErrMissingMarker
	}
	goal, ok := setup.Grid.FindMarker(CellGoal)
	if !ok {
		return nil, ErrMissingMarker
	}

	spawns := setup.Guards
	if len(spawns) == 0 {
		spawns = DefaultGuardSpawns()
	}

	s := &State{
		grid:    setup.Grid,
		spawns:  spawns,
		rules:   rules,
		player:  start,
		goal:    goal,
		planner: NewPlanner(rules.MaxMovesPerTurn),
	}
	s.resetGuards()
	return s, nil
}

// resetGuards restores the guard list to its spawn configuration.
func (s *State) resetGuards() {
	s.guards = make([]Guard, len(s.spawns))
	for i, sp := range s.spawns {
		s.guards[i] = Guard{Pos: sp.Pos, Route: sp.Route}
	}
}

// Plan queues one directional move for the current turn.
func (s *State) Plan(d core.Direction) bool {
	if s.outcome != OutcomePlaying {
		return false
	}
	return s.planner.Plan(d)
}

// Confirm executes the planned turn. Confirming with nothing planned sets
// a notice and changes no entity state.
func (s *State) Confirm() bool {
	if s.outcome != OutcomePlaying {
		return false
	}
	if !s.planner.Confirm() {
		return false
	}
	s.resolveTurn()
	return true
}

// resolveTurn drains the planner and advances the world one turn:
// all player moves apply in FIFO order first, then every guard steps once,
// then the planner clears. A move into a wall or out of bounds is silently
// dropped; the remaining queued moves still attempt to execute.
func (s *State) resolveTurn() {
	for _, d := range s.planner.Drain() {
		next := s.player.Step(d)
		if s.grid.Passable(next) {
			s.player = next
			s.applied++
		}
	}

	// Guard phase: fixed slice order, one step each, route toggles even
	// when the step was blocked.
	for i := range s.guards {
		s.guards[i].Advance(s.grid)
	}

	// Always the final step, even if every move was dropped.
	s.planner.Reset()
	s.turns++

	s.checkOutcome()
}

// checkOutcome applies the end-of-turn win/loss policy on final positions.
// Capture is checked before the goal, so a guard standing on the goal cell
// beats a player arriving there.
func (s *State) checkOutcome() {
	if s.rules.GuardCapture {
		for i := range s.guards {
			if s.guards[i].Pos.Equal(s.player) {
				s.outcome = OutcomeDefeat
				return
			}
		}
	}
	if s.rules.GoalVictory && s.player.Equal(s.goal) {
		s.outcome = OutcomeVictory
	}
}

// Reset restores the level's initial state: player back on the start
// marker, guards on their spawns, planner cleared, turn counter zeroed.
// Any unconfirmed plan is discarded.
func (s *State) Reset() {
	start, _ := s.grid.FindMarker(CellStart)
	s.player = start
	s.resetGuards()
	s.planner.Reset()
	s.turns = 0
	s.applied = 0
	s.outcome = OutcomePlaying
}

// Grid returns the immutable level geometry.
func (s *State) Grid() *Grid {
	return s.grid
}

// Player returns the player's current position.
func (s *State) Player() core.Position {
	return s.player
}

// Goal returns the goal position.
func (s *State) Goal() core.Position {
	return s.goal
}

// Guards returns the guard list in its fixed iteration order.
// The returned slice is a copy; mutating it does not affect the state.
func (s *State) Guards() []Guard {
	out := make([]Guard, len(s.guards))
	copy(out, s.guards)
	return out
}

// Planner returns the move planner for the current turn.
func (s *State) Planner() *Planner {
	return s.planner
}

// Turns returns the number of completed turns.
func (s *State) Turns() int {
	return s.turns
}

// MovesExecuted returns the number of moves that actually applied,
// excluding moves dropped against walls or bounds.
func (s *State) MovesExecuted() int {
	return s.applied
}

// Outcome returns the current attempt status.
func (s *State) Outcome() Outcome {
	return s.outcome
}
