package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the hardcoded configuration, used when the
// embedded YAML cannot be parsed.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: TetrisBoard{
			Width:         10,
			VisibleHeight: 20,
			HiddenRows:    4,
		},
		Timing: TetrisTiming{
			GravityMS:    500,
			MinGravityMS: 80,
			RepeatMS:     250,
		},
		Rules: TetrisRules{
			NextQueue:     4,
			KickAttempts:  3,
			PointsPerLine: 1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 150,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 4.0,
			},
		},
	}
}
