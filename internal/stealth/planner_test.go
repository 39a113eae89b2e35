package stealth

import (
	"testing"

	"github.com/tmelnyk/shadowstep/internal/core"
)

func TestPlannerCapEnforced(t *testing.T) {
	p := NewPlanner(3)

	// First three requests queue successfully.
	for i := 0; i < 3; i++ {
		if !p.Plan(core.DirUp) {
			t.Fatalf("Plan() #%d rejected, expected accept", i+1)
		}
	}
	if p.Notice() != NoticeReady {
		t.Errorf("notice after filling queue = %v, expected NoticeReady", p.Notice())
	}

	// The fourth is rejected and leaves the queue unchanged.
	if p.Plan(core.DirUp) {
		t.Error("4th Plan() accepted, expected reject")
	}
	if p.Len() != 3 {
		t.Errorf("queue length after rejected plan = %d, expected 3", p.Len())
	}
	if p.Notice() != NoticeQueueFull {
		t.Errorf("notice after rejected plan = %v, expected NoticeQueueFull", p.Notice())
	}
}

func TestPlannerReadyOnlyAtExactCapacity(t *testing.T) {
	p := NewPlanner(3)

	p.Plan(core.DirLeft)
	if p.Notice() != NoticeNone {
		t.Errorf("notice after 1 move = %v, expected none", p.Notice())
	}
	p.Plan(core.DirLeft)
	if p.Notice() != NoticeNone {
		t.Errorf("notice after 2 moves = %v, expected none", p.Notice())
	}
	p.Plan(core.DirLeft)
	if p.Notice() != NoticeReady {
		t.Errorf("notice after 3 moves = %v, expected ready", p.Notice())
	}
}

func TestPlannerConfirmEmpty(t *testing.T) {
	p := NewPlanner(3)

	if p.Confirm() {
		t.Error("Confirm() on empty queue should be rejected")
	}
	if p.Notice() != NoticeNothingPlanned {
		t.Errorf("notice = %v, expected NoticeNothingPlanned", p.Notice())
	}
	if p.Len() != 0 {
		t.Errorf("queue length = %d, expected 0", p.Len())
	}
}

func TestPlannerDrainFIFO(t *testing.T) {
	p := NewPlanner(3)
	p.Plan(core.DirUp)
	p.Plan(core.DirLeft)
	p.Plan(core.DirDown)

	moves := p.Drain()
	expected := []core.Direction{core.DirUp, core.DirLeft, core.DirDown}
	if len(moves) != len(expected) {
		t.Fatalf("Drain() returned %d moves, expected %d", len(moves), len(expected))
	}
	for i, d := range expected {
		if moves[i] != d {
			t.Errorf("Drain()[%d] = %v, expected %v", i, moves[i], d)
		}
	}
	if p.Len() != 0 {
		t.Errorf("queue length after drain = %d, expected 0", p.Len())
	}
}

func TestPlannerReset(t *testing.T) {
	p := NewPlanner(3)
	p.Plan(core.DirUp)
	p.Plan(core.DirUp)
	p.Plan(core.DirUp)
	p.Plan(core.DirUp) // Sets the queue-full warning

	p.Reset()
	if p.Len() != 0 {
		t.Errorf("queue length after reset = %d, expected 0", p.Len())
	}
	if p.Notice() != NoticeNone {
		t.Errorf("notice after reset = %v, expected none", p.Notice())
	}
}

func TestPlannerDefaultCap(t *testing.T) {
	p := NewPlanner(0)
	if p.Cap() != 3 {
		t.Errorf("Cap() = %d, expected fallback 3", p.Cap())
	}
}

func TestPlannerQueuedIsCopy(t *testing.T) {
	p := NewPlanner(3)
	p.Plan(core.DirUp)

	q := p.Queued()
	q[0] = core.DirDown
	if p.Queued()[0] != core.DirUp {
		t.Error("mutating Queued() result leaked into the planner")
	}
}
