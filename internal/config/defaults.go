package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
// It mirrors defaults/snake.yaml and is used if the embedded file fails to parse.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  30,
			Height: 20,
		},
		Speed: SpeedConfig{
			InitialDelayMs: 200,
			StepMs:         5,
			MinDelayMs:     80,
		},
		Display: DisplayConfig{
			CellWidth: 2,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
