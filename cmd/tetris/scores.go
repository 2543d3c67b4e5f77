package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var flagRecent int

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 high scores and the most recent games for a mode
(default: tetris).

Examples:
  tetris scores
  tetris scores tetris_classic --recent 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 5, "Number of recent games to list (0 to hide)")
}

func runScores(cmd *cobra.Command, args []string) {
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
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tetris play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Games: %d  Best: %d  Average: %.1f  Lines: %d  Time played: %s\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.TotalLines,
			stats.PlayTime.Round(time.Second))
	}

	if flagRecent <= 0 {
		return
	}
	recent, err := store.RecentSessions(gameID, flagRecent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving recent games: %v\n", err)
		return
	}
	if len(recent) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent games")
	fmt.Printf("  %-16s  %-6s  %-6s  %-6s  %s\n", "Date", "Score", "Lines", "Pieces", "Time")
	for _, rec := range recent {
		fmt.Printf("  %-16s  %-6d  %-6d  %-6d  %s\n",
			rec.PlayedAt.Local().Format("2006-01-02 15:04"),
			rec.Score, rec.Lines, rec.Pieces, rec.Duration.Round(time.Second))
	}
}
