package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decodeTetris(defaultTetrisYAML)
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultTetrisConfig() {
		t.Errorf("embedded defaults drifted from DefaultTetrisConfig:\n got %+v\nwant %+v", cfg, DefaultTetrisConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadTetrisCustomPath(t *testing.T) {
	path := writeFile(t, t.TempDir(), "custom.yaml", `
board:
  hidden_rows: 0
timing:
  gravity_ms: 300
`)

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris: %v", err)
	}
	if cfg.Board.HiddenRows != 0 {
		t.Errorf("HiddenRows = %d, expected 0", cfg.Board.HiddenRows)
	}
	if cfg.Timing.GravityMS != 300 {
		t.Errorf("GravityMS = %d, expected 300", cfg.Timing.GravityMS)
	}
	// Unset fields keep their defaults
	if cfg.Board.Width != 10 || cfg.Rules.NextQueue != 4 {
		t.Errorf("missing fields should keep defaults, got %+v", cfg)
	}
}

func TestLoadTetrisErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		invalid bool
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), false},
		{"malformed yaml", writeFile(t, dir, "bad.yaml", "board: [1, 2"), false},
		{"narrow board", writeFile(t, dir, "narrow.yaml", "board:\n  width: 3\n"), true},
		{"zero gravity", writeFile(t, dir, "grav.yaml", "timing:\n  gravity_ms: 0\n"), true},
		{"empty queue", writeFile(t, dir, "queue.yaml", "rules:\n  next_queue: 0\n"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadTetris(tt.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tt.invalid {
				t.Errorf("errors.Is(err, ErrInvalidConfig) = %v, want %v (err: %v)", got, tt.invalid, err)
			}
			if cfg != DefaultTetrisConfig() {
				t.Error("a failed load should return the defaults")
			}
		})
	}
}

func TestLoadTetrisLocalDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "configs"), "tetris.yaml", "rules:\n  points_per_line: 10\n")

	t.Setenv("HOME", t.TempDir()) // no user config
	t.Chdir(dir)

	cfg, err := LoadTetris("")
	if err != nil {
		t.Fatalf("LoadTetris: %v", err)
	}
	if cfg.Rules.PointsPerLine != 10 {
		t.Errorf("PointsPerLine = %d, expected 10 from ./configs", cfg.Rules.PointsPerLine)
	}
}

func TestApplyTetrisPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		enabled     bool
		gravityMS   int
		initialLevel float64
	}{
		{DifficultyEasy, true, 700, 0.0},
		{DifficultyNormal, true, 500, 0.3},
		{DifficultyHard, true, 350, 0.7},
		{DifficultyFixed, false, 500, 0.0},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			ApplyTetrisPreset(&cfg, tt.preset)

			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("Enabled = %v, want %v", cfg.Difficulty.Enabled, tt.enabled)
			}
			if cfg.Timing.GravityMS != tt.gravityMS {
				t.Errorf("GravityMS = %d, want %d", cfg.Timing.GravityMS, tt.gravityMS)
			}
			if cfg.Difficulty.InitialLevel != tt.initialLevel {
				t.Errorf("InitialLevel = %v, want %v", cfg.Difficulty.InitialLevel, tt.initialLevel)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should parse to empty")
	}
}

func TestDifficultyInterval(t *testing.T) {
	base := 500 * time.Millisecond
	floor := 80 * time.Millisecond

	fixed := NewDifficultyManager(DifficultyConfig{Enabled: false})
	if fixed.IsEnabled() {
		t.Error("disabled config should not progress")
	}
	if got := fixed.Interval(base, floor, 1000, 0); got != base {
		t.Errorf("disabled progression: Interval = %v, want %v", got, base)
	}

	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	})
	if !dm.IsEnabled() {
		t.Error("score progression should be enabled")
	}

	if got := dm.Interval(base, floor, 0, 0); got != base {
		t.Errorf("score 0: Interval = %v, want %v", got, base)
	}
	if got := dm.Interval(base, floor, 100, 0); got != 250*time.Millisecond {
		t.Errorf("max score: Interval = %v, want 250ms", got)
	}

	steep := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 50},
	})
	if got := steep.Interval(base, floor, 10, 0); got != floor {
		t.Errorf("steep scaling should clamp to floor, got %v", got)
	}
}

func TestDifficultyLevel(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
	})

	tests := []struct {
		ticks int
		want  float64
	}{
		{0, 0.5},
		{50, 0.75},
		{100, 1.0},
		{1000, 1.0},
	}
	for _, tt := range tests {
		if got := dm.Level(0, tt.ticks); got != tt.want {
			t.Errorf("Level(ticks=%d) = %v, want %v", tt.ticks, got, tt.want)
		}
	}
}
