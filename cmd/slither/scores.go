package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slither/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best score and recent runs",
	Long: `Display the all-time best score, the top runs and aggregate stats.

Examples:
  slither scores
  slither scores --limit 25
  slither scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the run history (keeps the best score)")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing run history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	best, err := store.BestScore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving best score: %v\n", err)
		os.Exit(1)
	}

	runs, err := store.TopRuns(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Slither - High Scores")
	fmt.Println()
	fmt.Printf("Best: %d\n", best)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'slither play' to set the first score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-8s  %-10s  %s\n", "Rank", "Score", "Length", "Duration", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-10s  %s\n", "----", "-----", "------", "--------", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		durStr := fmt.Sprintf("%dm%02ds", entry.Duration/60, entry.Duration%60)
		fmt.Printf("  %-4d  %-8d  %-8d  %-10s  %s\n", i+1, entry.Score, entry.SnakeLen, durStr, dateStr)
	}

	stats, err := store.Stats()
	if err == nil && stats.RunsCount > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d   Avg score: %.1f   Last played: %s\n",
			stats.RunsCount, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
