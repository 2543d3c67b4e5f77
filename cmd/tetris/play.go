package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the given mode (default: tetris).

Controls:
  Left/Right, A/D  - Shift
  Down, S          - Soft drop
  Up, X            - Rotate clockwise
  Z                - Rotate counter-clockwise
  Space            - Hard drop
  C                - Hold
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slow gravity, speeds up as you score
  normal - Starts at 30% speed-up, progresses to max
  hard   - Fast gravity, starts at 70% speed-up
  fixed  - No progression

Examples:
  tetris play
  tetris play tetris_classic
  tetris play --difficulty hard --seed 42
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := tetris.ModeStandard
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tetris list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := openLogger()
	defer closeLog() //nolint:errcheck // Best-effort close

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, runtimeConfig(), logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog() //nolint:errcheck // os.Exit skips defers
		os.Exit(1)
	}
}
