package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := `rules:
  max_moves_per_turn: 5
  goal_victory: true
  guard_capture: false
display:
  tick_rate: 60
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Rules.MaxMovesPerTurn != 5 {
		t.Errorf("MaxMovesPerTurn = %d, expected 5", cfg.Rules.MaxMovesPerTurn)
	}
	if cfg.Rules.GuardCapture {
		t.Error("GuardCapture should be disabled")
	}
	if cfg.Display.TickRate != 60 {
		t.Errorf("TickRate = %d, expected 60", cfg.Display.TickRate)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("Load() with a missing custom path should fail")
	}
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")
	content := `rules:
  max_moves_per_turn: 4
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Rules.MaxMovesPerTurn != 4 {
		t.Errorf("MaxMovesPerTurn = %d, expected 4", cfg.Rules.MaxMovesPerTurn)
	}
	// Keys the file never mentions stay at their defaults.
	if !cfg.Rules.GoalVictory {
		t.Error("GoalVictory silently disabled by a config that never mentions it")
	}
	if !cfg.Rules.GuardCapture {
		t.Error("GuardCapture silently disabled by a config that never mentions it")
	}
	if cfg.Display.TickRate != 30 {
		t.Errorf("TickRate = %d, expected default 30", cfg.Display.TickRate)
	}
}

func TestLoadNormalizesBadValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	content := `rules:
  max_moves_per_turn: 0
display:
  tick_rate: -5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Rules.MaxMovesPerTurn != 3 {
		t.Errorf("MaxMovesPerTurn = %d, expected normalized 3", cfg.Rules.MaxMovesPerTurn)
	}
	if cfg.Display.TickRate != 30 {
		t.Errorf("TickRate = %d, expected normalized 30", cfg.Display.TickRate)
	}
}

func TestDefaultsMatchEmbedded(t *testing.T) {
	def := DefaultStealthConfig()
	if def.Rules.MaxMovesPerTurn != 3 {
		t.Errorf("default MaxMovesPerTurn = %d, expected 3", def.Rules.MaxMovesPerTurn)
	}
	if !def.Rules.GoalVictory || !def.Rules.GuardCapture {
		t.Error("default outcome rules should be enabled")
	}
}
