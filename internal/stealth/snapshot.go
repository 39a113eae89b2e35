package stealth

import "github.com/tmelnyk/shadowstep/internal/core"

// GuardSnapshot is a guard's position and next heading at snapshot time.
type GuardSnapshot struct {
	Pos     core.Position
	Heading core.Direction
}

// Snapshot captures the complete observable game state for the renderer
// and for determinism tests. The renderer reads snapshots only; it never
// calls back into the core.
type Snapshot struct {
	Turn    int
	Player  core.Position
	Goal    core.Position
	Guards  []GuardSnapshot
	Queued  []core.Direction
	Notice  string
	Outcome Outcome
}

// Snapshot returns the current observable state.
func (s *State) Snapshot() Snapshot {
	guards := make([]GuardSnapshot, len(s.guards))
	for i := range s.guards {
		guards[i] = GuardSnapshot{
			Pos:     s.guards[i].Pos,
			Heading: s.guards[i].Heading(),
		}
	}

	return Snapshot{
		Turn:    s.turns,
		Player:  s.player,
		Goal:    s.goal,
		Guards:  guards,
		Queued:  s.planner.Queued(),
		Notice:  s.planner.Notice().Message(),
		Outcome: s.outcome,
	}
}
