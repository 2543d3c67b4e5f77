// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris list              - List available modes
//	tetris play [mode]       - Play a mode (default: tetris)
//	tetris menu              - Start menu to pick modes interactively
//	tetris serve             - Start SSH server for remote play
//	tetris scores [mode]     - Show high scores and recent games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--debug               - Write a debug log to ~/.arcade/tetris.log
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal",
	Long: `A falling-block puzzle game for the terminal.

Available commands:
  list     - Show all game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores and recent games

Examples:
  tetris play
  tetris play tetris_classic --difficulty hard
  tetris menu
  tetris serve --ssh :2222
  tetris scores`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if flagFPS <= 0 {
			return fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
			return fmt.Errorf("unknown difficulty %q (easy, normal, hard, fixed)", flagDifficulty)
		}
		tetris.SetConfigPath(flagConfig)
		tetris.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write a debug log to "+tui.DefaultLogPath)

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openLogger returns the play logger; the close func is always safe to call.
func openLogger() (*log.Logger, func() error) {
	logger, closeLog, err := tui.NewLogger(flagDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: debug log disabled: %v\n", err)
		logger, closeLog, _ = tui.NewLogger(false)
	}
	return logger, closeLog
}
