// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel is the on-disk YAML structure for a level file.
// Rows are the bit-exact text grid: equal-length strings over the alphabet
// '.' floor, '#' wall, 'P' player start, 'G' goal. Guards are optional;
// levels without them fall back to the stock guard layout.
type YAMLLevel struct {
	ID     string      `yaml:"id"`
	Name   string      `yaml:"name"`
	Rows   []string    `yaml:"rows"`
	Guards []YAMLGuard `yaml:"guards,omitempty"`
}

// YAMLGuard is a guard spawn in YAML form. Coordinates are 1-indexed.
type YAMLGuard struct {
	X     int      `yaml:"x"`
	Y     int      `yaml:"y"`
	Route []string `yaml:"route"`
}

// Level is a parsed level, not yet validated against the grid rules.
type Level struct {
	ID     string
	Name   string
	Rows   []string
	Guards []YAMLGuard
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	return Level{
		ID:     yl.ID,
		Name:   yl.Name,
		Rows:   yl.Rows,
		Guards: yl.Guards,
	}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
