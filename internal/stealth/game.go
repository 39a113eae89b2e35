package stealth

import (
	"fmt"
	"strings"

	"github.com/tmelnyk/shadowstep/internal/core"
	"github.com/tmelnyk/shadowstep/internal/registry"
)

// fallbackRows is the level used when the platform has not selected one.
// Keeps `play` working even without level files on disk.
var fallbackRows = []string{
	"P.........",
	"..####....",
	"..........",
	"....#.....",
	"....#.....",
	"..........",
	"..####....",
	"..........",
	"..........",
	".........G",
}

// Package-level selection, set by the CLI before the game is created
// (same pattern the platform uses for every game).
var (
	selectedSetup *Setup
	selectedID    string
	selectedName  string
	selectedRules = DefaultRules()
)

// SetLevel selects the level the next created game will play.
func SetLevel(setup Setup, id, name string) {
	selectedSetup = &setup
	selectedID = id
	selectedName = name
}

// SetRules overrides the rule set for subsequently created games.
func SetRules(r Rules) {
	if r.MaxMovesPerTurn < 1 {
		r.MaxMovesPerTurn = 3
	}
	selectedRules = r
}

// Game adapts the stealth core to the platform's game interface:
// it owns a State, maps actions to planner calls, and renders snapshots
// into the screen buffer.
type Game struct {
	state     *State
	loadErr   error
	rules     Rules
	levelID   string
	levelName string

	screenW    int
	screenH    int
	hudHeight  int
	mapOffsetX int
	mapOffsetY int
	tooSmall   bool
}

// New creates a stealth game for the currently selected level.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("shadowstep", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "shadowstep"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Shadowstep"
}

// LevelID returns the identifier of the loaded level.
func (g *Game) LevelID() string {
	return g.levelID
}

// MovesExecuted returns how many planned moves were actually applied.
func (g *Game) MovesExecuted() int {
	if g.state == nil {
		return 0
	}
	return g.state.MovesExecuted()
}

// Reset loads the selected level and restores its initial state.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2
	g.rules = selectedRules

	setup := selectedSetup
	g.levelID = selectedID
	g.levelName = selectedName
	if setup == nil {
		grid, err := ParseGrid(fallbackRows)
		if err != nil {
			g.loadErr = err
			return
		}
		setup = &Setup{Grid: grid}
		g.levelID = "builtin"
		g.levelName = "Training Yard"
	}

	state, err := NewState(*setup, g.rules)
	if err != nil {
		g.loadErr = err
		g.state = nil
		return
	}
	g.loadErr = nil
	g.state = state

	g.layout()
}

// layout centers the map under the HUD and flags undersized terminals.
func (g *Game) layout() {
	if g.state == nil {
		return
	}
	w := g.state.Grid().Width()
	h := g.state.Grid().Height()

	requiredW := w + 2
	requiredH := h + g.hudHeight + 2
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false
	g.mapOffsetX = (g.screenW - w) / 2
	g.mapOffsetY = g.hudHeight
}

// Step processes one tick of input. The game is turn-driven: nothing moves
// except in response to plan, confirm, and reset actions.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.state == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionReset) {
		g.state.Reset()
		return core.StepResult{State: g.State()}
	}

	// Fixed action order keeps multi-key frames deterministic.
	for _, a := range [...]core.Action{
		core.ActionMoveUp, core.ActionMoveDown,
		core.ActionMoveLeft, core.ActionMoveRight,
	} {
		if input.Has(a) {
			if d, ok := a.Direction(); ok {
				g.state.Plan(d)
			}
		}
	}

	if input.Has(core.ActionConfirm) {
		g.state.Confirm()
	}

	return core.StepResult{State: g.State()}
}

// State returns the platform-level game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{GameOver: true}
	}
	out := g.state.Outcome()
	return core.GameState{
		Turns:    g.state.Turns(),
		GameOver: out != OutcomePlaying,
		Won:      out == OutcomeVictory,
	}
}

// Snapshot exposes the observable core state for the platform and tests.
func (g *Game) Snapshot() Snapshot {
	if g.state == nil {
		return Snapshot{}
	}
	return g.state.Snapshot()
}

// Render draws the HUD, the level map, and any end-of-run overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.loadErr != nil {
		g.renderOverlay(dst, "Level failed to load", g.loadErr.Error())
		return
	}
	if g.state == nil {
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderMap(dst)
	g.renderNotice(dst)

	switch g.state.Outcome() {
	case OutcomeVictory:
		g.renderOverlay(dst, "Level clear!", fmt.Sprintf("Turns: %d, press R to replay", g.state.Turns()))
	case OutcomeDefeat:
		g.renderOverlay(dst, "Spotted!", "Press R to retry")
	}
}

// renderHUD draws the top status bar with the plan queue.
func (g *Game) renderHUD(dst *core.Screen) {
	snap := g.state.Snapshot()

	var plan strings.Builder
	for _, d := range snap.Queued {
		plan.WriteRune(d.Arrow())
	}

	name := g.levelName
	if name == "" {
		name = g.levelID
	}
	hud := fmt.Sprintf(" Shadowstep | %s  Turn: %d  Plan: %-3s (%d/%d)",
		name, snap.Turn, plan.String(), len(snap.Queued), g.state.Planner().Cap())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderMap draws the grid and entities. The player is drawn last so it
// stays visible when sharing a cell with the goal or a guard.
func (g *Game) renderMap(dst *core.Screen) {
	grid := g.state.Grid()
	for y := 1; y <= grid.Height(); y++ {
		for x := 1; x <= grid.Width(); x++ {
			sx := g.mapOffsetX + x - 1
			sy := g.mapOffsetY + y - 1
			switch grid.CellAt(core.At(x, y)) {
			case CellWall:
				dst.SetColored(sx, sy, '#', core.ColorGray)
			case CellGoal:
				dst.SetColored(sx, sy, 'G', core.ColorBrightGreen)
			default:
				dst.SetColored(sx, sy, '.', core.ColorGray)
			}
		}
	}

	for _, gd := range g.state.Guards() {
		sx := g.mapOffsetX + gd.Pos.X - 1
		sy := g.mapOffsetY + gd.Pos.Y - 1
		dst.SetColored(sx, sy, 'g', core.ColorBrightRed)
	}

	p := g.state.Player()
	dst.SetColored(g.mapOffsetX+p.X-1, g.mapOffsetY+p.Y-1, '@', core.ColorBrightWhite)
}

// renderNotice draws the planner advisory on the bottom line.
func (g *Game) renderNotice(dst *core.Screen) {
	msg := g.state.Planner().Notice().Message()
	if msg == "" {
		return
	}
	dst.DrawTextColored(1, dst.Height()-1, msg, core.ColorBrightYellow)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := core.Max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isEdgeY := y == boxY || y == boxY+boxH-1
			isEdgeX := x == boxX || x == boxX+boxW-1
			switch {
			case isEdgeY && isEdgeX:
				dst.Set(x, y, '+')
			case isEdgeY:
				dst.Set(x, y, '-')
			case isEdgeX:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
