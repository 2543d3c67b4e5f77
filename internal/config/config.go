// Package config provides YAML-based game configuration loading and
// difficulty management for the games.
package config

import "errors"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// TetrisConfig contains all configuration for the falling-block game.
type TetrisConfig struct {
	Board      TetrisBoard      `yaml:"board"`
	Timing     TetrisTiming     `yaml:"timing"`
	Rules      TetrisRules      `yaml:"rules"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TetrisBoard defines playfield dimensions.
type TetrisBoard struct {
	Width         int `yaml:"width"`
	VisibleHeight int `yaml:"visible_height"`
	HiddenRows    int `yaml:"hidden_rows"` // Spawn buffer above the visible field
}

// TetrisTiming defines timer intervals in milliseconds.
type TetrisTiming struct {
	GravityMS    int `yaml:"gravity_ms"`     // Auto-fall interval at difficulty 0
	MinGravityMS int `yaml:"min_gravity_ms"` // Fastest fall interval difficulty may reach
	RepeatMS     int `yaml:"repeat_ms"`      // Held-key repeat interval
}

// TetrisRules defines queue, rotation and scoring parameters.
type TetrisRules struct {
	NextQueue     int `yaml:"next_queue"`
	KickAttempts  int `yaml:"kick_attempts"`
	PointsPerLine int `yaml:"points_per_line"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Gravity speed-up factor at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
