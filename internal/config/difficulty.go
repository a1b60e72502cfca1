package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the known presets in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset converts a flag value into a preset.
// An empty string yields DifficultyNormal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// delayScale returns the percentage applied to the configured delays.
func (p DifficultyPreset) delayScale() int {
	switch p {
	case DifficultyEasy:
		return 125
	case DifficultyHard:
		return 75
	default:
		return 100
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
// Easy and hard scale both the starting delay and the floor, fixed keeps the
// configured starting delay but disables the ramp.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Speed.StepMs = 0
		return
	}

	scale := preset.delayScale()
	cfg.Speed.InitialDelayMs = max(1, cfg.Speed.InitialDelayMs*scale/100)
	cfg.Speed.MinDelayMs = max(1, cfg.Speed.MinDelayMs*scale/100)
}
