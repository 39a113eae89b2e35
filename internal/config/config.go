// Package config provides YAML-based configuration loading for the
// stealth game platform.
package config

// StealthConfig contains all tunable configuration for the game.
type StealthConfig struct {
	Rules   RulesConfig   `yaml:"rules"`
	Display DisplayConfig `yaml:"display"`
}

// RulesConfig defines gameplay parameters. Goal victory and guard capture
// can each be switched off for sandbox play with no end condition.
type RulesConfig struct {
	MaxMovesPerTurn int  `yaml:"max_moves_per_turn"`
	GoalVictory     bool `yaml:"goal_victory"`
	GuardCapture    bool `yaml:"guard_capture"`
}

// DisplayConfig defines presentation parameters.
type DisplayConfig struct {
	TickRate int `yaml:"tick_rate"` // Redraw ticks per second
}
