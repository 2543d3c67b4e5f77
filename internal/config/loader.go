package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTetris loads the game configuration and validates it.
// Search order: customPath -> ~/.arcade/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
// Fields missing from a file keep their hardcoded defaults.
func LoadTetris(customPath string) (TetrisConfig, error) {
	cfg, err := readTetris(customPath)
	if err != nil {
		return DefaultTetrisConfig(), err
	}
	if err := cfg.Validate(); err != nil {
		return DefaultTetrisConfig(), fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func readTetris(customPath string) (TetrisConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TetrisConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := decodeTetris(data)
		if err != nil {
			return TetrisConfig{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Then the user and local config directories; unreadable or broken
	// files are skipped.
	for _, path := range []string{userConfigPath("tetris.yaml"), filepath.Join("configs", "tetris.yaml")} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := decodeTetris(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := decodeTetris(defaultTetrisYAML)
	if err != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeTetris parses YAML on top of the hardcoded defaults.
func decodeTetris(data []byte) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TetrisConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate checks that the configuration describes a playable game.
func (c TetrisConfig) Validate() error {
	switch {
	case c.Board.Width < 4:
		return fmt.Errorf("%w: board.width %d is narrower than a piece", ErrInvalidConfig, c.Board.Width)
	case c.Board.VisibleHeight < 4:
		return fmt.Errorf("%w: board.visible_height %d is shorter than a piece", ErrInvalidConfig, c.Board.VisibleHeight)
	case c.Board.HiddenRows < 0:
		return fmt.Errorf("%w: board.hidden_rows must not be negative", ErrInvalidConfig)
	case c.Timing.GravityMS <= 0:
		return fmt.Errorf("%w: timing.gravity_ms must be positive", ErrInvalidConfig)
	case c.Timing.RepeatMS <= 0:
		return fmt.Errorf("%w: timing.repeat_ms must be positive", ErrInvalidConfig)
	case c.Timing.MinGravityMS < 0 || c.Timing.MinGravityMS > c.Timing.GravityMS:
		return fmt.Errorf("%w: timing.min_gravity_ms must be in [0, gravity_ms]", ErrInvalidConfig)
	case c.Rules.NextQueue < 1:
		return fmt.Errorf("%w: rules.next_queue must be at least 1", ErrInvalidConfig)
	case c.Rules.KickAttempts < 0:
		return fmt.Errorf("%w: rules.kick_attempts must not be negative", ErrInvalidConfig)
	case c.Rules.PointsPerLine < 0:
		return fmt.Errorf("%w: rules.points_per_line must not be negative", ErrInvalidConfig)
	}
	return nil
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Timing.GravityMS = 700
	case DifficultyHard:
		cfg.Timing.GravityMS = 350
		cfg.Timing.RepeatMS = 150
	}
	if cfg.Timing.MinGravityMS > cfg.Timing.GravityMS {
		cfg.Timing.MinGravityMS = cfg.Timing.GravityMS
	}
}
