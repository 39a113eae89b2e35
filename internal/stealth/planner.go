package stealth

import "github.com/tmelnyk/shadowstep/internal/core"

// Notice is a user-visible advisory from the planner. Notices are soft:
// they inform the HUD and never interrupt the turn loop.
type Notice uint8

const (
	NoticeNone Notice = iota
	NoticeReady
	NoticeQueueFull
	NoticeNothingPlanned
)

// Message returns the HUD text for a notice.
func (n Notice) Message() string {
	switch n {
	case NoticeReady:
		return "moves ready, confirm to execute"
	case NoticeQueueFull:
		return "max moves reached"
	case NoticeNothingPlanned:
		return "nothing planned"
	default:
		return ""
	}
}

// Planner accumulates the player's queued moves for the current turn.
// The queue is bounded FIFO: moves execute in the order they were planned,
// and a move can only be removed by resetting the whole queue.
type Planner struct {
	cap    int
	queue  []core.Direction
	notice Notice
}

// NewPlanner creates a planner with the given per-turn move cap.
// A cap below 1 falls back to the default of 3.
func NewPlanner(cap int) *Planner {
	if cap < 1 {
		cap = 3
	}
	return &Planner{
		cap:   cap,
		queue: make([]core.Direction, 0, cap),
	}
}

// Plan queues one directional move. When the queue is already at capacity
// the request is rejected, the queue stays unchanged, and the "max moves"
// notice is set. A successful append that fills the queue exactly sets the
// "moves ready" advisory instead.
func (p *Planner) Plan(d core.Direction) bool {
	if len(p.queue) >= p.cap {
		p.notice = NoticeQueueFull
		return false
	}
	p.queue = append(p.queue, d)
	if len(p.queue) == p.cap {
		p.notice = NoticeReady
	} else {
		p.notice = NoticeNone
	}
	return true
}

// Confirm reports whether the queued moves may execute. Confirming an empty
// queue is a no-op that sets the "nothing planned" notice.
func (p *Planner) Confirm() bool {
	if len(p.queue) == 0 {
		p.notice = NoticeNothingPlanned
		return false
	}
	return true
}

// Drain removes and returns all queued moves in FIFO order.
func (p *Planner) Drain() []core.Direction {
	moves := p.queue
	p.queue = make([]core.Direction, 0, p.cap)
	return moves
}

// Reset clears the queue and any notice unconditionally.
func (p *Planner) Reset() {
	p.queue = p.queue[:0]
	p.notice = NoticeNone
}

// Len returns the number of queued moves.
func (p *Planner) Len() int {
	return len(p.queue)
}

// Cap returns the per-turn move cap.
func (p *Planner) Cap() int {
	return p.cap
}

// Queued returns a copy of the queued moves in execution order.
func (p *Planner) Queued() []core.Direction {
	out := make([]core.Direction, len(p.queue))
	copy(out, p.queue)
	return out
}

// Notice returns the current advisory.
func (p *Planner) Notice() Notice {
	return p.notice
}

// ClearNotice drops the current advisory without touching the queue.
func (p *Planner) ClearNotice() {
	p.notice = NoticeNone
}
