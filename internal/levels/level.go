// Package levels provides level loading for the stealth game.
// This package depends on stealth but stealth does not depend on levels.
package levels

import (
	"fmt"

	"github.com/tmelnyk/shadowstep/internal/core"
	"github.com/tmelnyk/shadowstep/internal/levels/formats"
	"github.com/tmelnyk/shadowstep/internal/stealth"
)

// Level is a complete level definition as authored on disk.
type Level struct {
	ID       string
	Name     string
	Rows     []string
	Guards   []formats.YAMLGuard
	FilePath string
}

// Compile validates the level and produces a playable setup.
// Grid problems surface as ErrInvalidLevelFormat; Compile does not check
// markers, that happens when the setup enters play state.
func (l *Level) Compile() (stealth.Setup, error) {
	grid, err := stealth.ParseGrid(l.Rows)
	if err != nil {
		return stealth.Setup{}, fmt.Errorf("level %s: %w", l.ID, err)
	}

	spawns := make([]stealth.GuardSpawn, 0, len(l.Guards))
	for i, g := range l.Guards {
		if len(g.Route) != 2 {
			return stealth.Setup{}, fmt.Errorf("%w: level %s guard %d route has %d entries, expected 2",
				stealth.ErrInvalidLevelFormat, l.ID, i+1, len(g.Route))
		}
		first, ok := core.ParseDirection(g.Route[0])
		if !ok {
			return stealth.Setup{}, fmt.Errorf("%w: level %s guard %d has unknown direction %q",
				stealth.ErrInvalidLevelFormat, l.ID, i+1, g.Route[0])
		}
		second, ok := core.ParseDirection(g.Route[1])
		if !ok {
			return stealth.Setup{}, fmt.Errorf("%w: level %s guard %d has unknown direction %q",
				stealth.ErrInvalidLevelFormat, l.ID, i+1, g.Route[1])
		}
		pos := core.At(g.X, g.Y)
		if !grid.InBounds(pos) {
			return stealth.Setup{}, fmt.Errorf("%w: level %s guard %d spawn %v is out of bounds",
				stealth.ErrInvalidLevelFormat, l.ID, i+1, pos)
		}
		spawns = append(spawns, stealth.GuardSpawn{
			Pos:   pos,
			Route: [2]core.Direction{first, second},
		})
	}

	return stealth.Setup{Grid: grid, Guards: spawns}, nil
}

// Validate compiles the level and checks the start and goal markers,
// the full load-time contract. Used by the validate command.
func (l *Level) Validate() error {
	setup, err := l.Compile()
	if err != nil {
		return err
	}
	if _, ok := setup.Grid.FindMarker(stealth.CellStart); !ok {
		return fmt.Errorf("level %s: %w: no start marker", l.ID, stealth.ErrMissingMarker)
	}
	if _, ok := setup.Grid.FindMarker(stealth.CellGoal); !ok {
		return fmt.Errorf("level %s: %w: no goal marker", l.ID, stealth.ErrMissingMarker)
	}
	return nil
}
