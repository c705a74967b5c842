package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodge/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the top 10 high scores",
	Long: `Display the top 10 high scores and a few totals.

Examples:
  dodge scores
  dodge scores --db ./game.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	records, err := store.Top(storage.DefaultTop)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	best, err := store.HighScore()
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving high score: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Top 10 High Scores - Dodge me Not")
	fmt.Printf("Best: %d\n", best)
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dodge' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-20s  %-5s  %-8s  %s\n", "Rank", "Player", "Level", "Score", "Date")
	fmt.Printf("  %-4s  %-20s  %-5s  %-8s  %s\n", "----", "------", "-----", "-----", "----")
	for i, r := range records {
		fmt.Printf("  %-4d  %-20s  %-5d  %-8d  %s\n", i+1, r.PlayerName, r.Level, r.Score, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Games: %d  Best level: %d  Average: %.0f\n",
		stats.Games, stats.BestLevel, stats.AvgScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
