// Package config provides YAML-based game configuration loading, validation
// and difficulty presets for the snake game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Speed   SpeedConfig   `yaml:"speed"`
	Display DisplayConfig `yaml:"display"`
}

// GridConfig defines the playfield dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig defines the move delay ramp in milliseconds.
type SpeedConfig struct {
	InitialDelayMs int `yaml:"initial_delay_ms"`
	StepMs         int `yaml:"step_ms"`      // Subtracted per food eaten
	MinDelayMs     int `yaml:"min_delay_ms"` // Floor for the delay
}

// DisplayConfig defines how the grid is scaled onto the terminal.
type DisplayConfig struct {
	CellWidth int `yaml:"cell_width"` // Terminal columns per grid cell
}

// Validate checks that the configuration describes a playable game.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Grid.Width < 2 || c.Grid.Height < 2:
		return fmt.Errorf("%w: grid must be at least 2x2, got %dx%d",
			ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	case c.Speed.InitialDelayMs <= 0:
		return fmt.Errorf("%w: initial_delay_ms must be positive, got %d",
			ErrInvalidConfig, c.Speed.InitialDelayMs)
	case c.Speed.MinDelayMs <= 0:
		return fmt.Errorf("%w: min_delay_ms must be positive, got %d",
			ErrInvalidConfig, c.Speed.MinDelayMs)
	case c.Speed.MinDelayMs > c.Speed.InitialDelayMs:
		return fmt.Errorf("%w: min_delay_ms (%d) exceeds initial_delay_ms (%d)",
			ErrInvalidConfig, c.Speed.MinDelayMs, c.Speed.InitialDelayMs)
	case c.Speed.StepMs < 0:
		return fmt.Errorf("%w: step_ms must not be negative, got %d",
			ErrInvalidConfig, c.Speed.StepMs)
	case c.Display.CellWidth < 1:
		return fmt.Errorf("%w: cell_width must be at least 1, got %d",
			ErrInvalidConfig, c.Display.CellWidth)
	}
	return nil
}
