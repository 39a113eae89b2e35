// Package registry provides a global registry for game factories.
// The stealth game registers itself in an init() function, which keeps the
// platform free of hardcoded game dependencies and the core logic free of
// Bubble Tea.
package registry

import (
	"fmt"
	"sync"

	"github.com/tmelnyk/shadowstep/internal/core"
)

// Game is the interface the platform drives. Implementations contain pure
// logic; the platform owns input mapping, timing, and terminal display.
type Game interface {
	// ID returns a unique identifier for this game, used for CLI commands
	// and run storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state. Called once at start and
	// again when the player restarts the level.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one tick. Input is abstracted to
	// platform-level actions (plan a move, confirm, reset).
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (turns, game over, won).
	State() core.GameState
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry. Typically called from a
// game's init() function. Panics on duplicate IDs.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

