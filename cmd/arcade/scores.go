package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-arcade/internal/registry"
	"github.com/vovakirdan/tile-arcade/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top runs and overall statistics for the specified game.

Examples:
  arcade scores platformer
  arcade scores snake --limit 25`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := printScores(store, gameID, game.Title()); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

func printScores(store *storage.Store, gameID, title string) error {
	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}
	stats, err := store.GameStats(gameID)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-9s  %-3s  %s\n", "Rank", "Score", "Time", "Won", "Date")
	fmt.Printf("  %-4s  %-8s  %-9s  %-3s  %s\n", "----", "-----", "----", "---", "----")

	for i, e := range scores {
		won := ""
		if e.Won {
			won = "yes"
		}
		fmt.Printf("  %-4d  %-8d  %-9s  %-3s  %s\n",
			i+1, e.Score, ticksToDuration(e.Ticks), won, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Runs: %d  Wins: %d  Best: %d  Average: %.1f\n",
		stats.GamesCount, stats.Wins, stats.HighScore, stats.AvgScore)
	if stats.FastestWin > 0 {
		fmt.Printf("Fastest win: %s\n", ticksToDuration(stats.FastestWin))
	}
	return nil
}

// ticksToDuration converts a tick count at the --fps rate to wall time.
func ticksToDuration(ticks int) time.Duration {
	fps := max(flagFPS, 1)
	d := time.Duration(ticks) * time.Second / time.Duration(fps)
	return d.Round(100 * time.Millisecond)
}
