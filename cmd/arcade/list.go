package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-arcade/internal/registry"
	"github.com/vovakirdan/tile-arcade/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game with its best recorded score.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	// The list is still useful without scores, so a broken database only
	// drops the Best column.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		store = nil
	} else {
		defer store.Close()
	}

	writeGameList(os.Stdout, registry.List(), store)
}

// writeGameList prints games as a table. With a store, each row also shows
// the game's high score.
func writeGameList(w io.Writer, games []registry.GameInfo, store *storage.Store) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No games available.")
		return
	}

	fmt.Fprintln(w, "Available games:")
	fmt.Fprintln(w)

	idW, titleW := len("ID"), len("Title")
	for _, g := range games {
		idW = max(idW, len(g.ID))
		titleW = max(titleW, len(g.Title))
	}

	if store == nil {
		fmt.Fprintf(w, "  %-*s  %s\n", idW, "ID", "Title")
		fmt.Fprintf(w, "  %-*s  %s\n", idW, "--", "-----")
		for _, g := range games {
			fmt.Fprintf(w, "  %-*s  %s\n", idW, g.ID, g.Title)
		}
	} else {
		fmt.Fprintf(w, "  %-*s  %-*s  %s\n", idW, "ID", titleW, "Title", "Best")
		fmt.Fprintf(w, "  %-*s  %-*s  %s\n", idW, "--", titleW, "-----", "----")
		for _, g := range games {
			best := "-"
			if hs, err := store.HighScore(g.ID); err == nil && hs > 0 {
				best = fmt.Sprintf("%d", hs)
			}
			fmt.Fprintf(w, "  %-*s  %-*s  %s\n", idW, g.ID, titleW, g.Title, best)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'arcade play <id>' to play a game, or 'arcade menu' to pick one.")
}
