package config

import (
	_ "embed"
)

//go:embed defaults/shadowstep.yaml
var defaultStealthYAML []byte

// DefaultStealthConfig returns the default game configuration.
func DefaultStealthConfig() StealthConfig {
	return StealthConfig{
		Rules: RulesConfig{
			MaxMovesPerTurn: 3,
			GoalVictory:     true,
			GuardCapture:    true,
		},
		Display: DisplayConfig{
			TickRate: 30,
		},
	}
}
