package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mathbird/internal/registry"
	"github.com/vovakirdan/mathbird/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [ride]",
	Short: "Show best runs for a ride",
	Long: `Display the top 10 runs for the specified ride. Without an argument
the math ride is shown.

The math ride shows full run summaries (points, passes, streaks and
accuracy); the classic ride shows plain pass counts.

Examples:
  mathbird scores
  mathbird scores mathbird_classic
  mathbird scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all recorded runs for the ride")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := "mathbird"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if ride exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown ride %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'mathbird list' to see available rides.")
		os.Exit(1)
	}

	// Get ride title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating ride: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if clearErr := store.ClearScores(gameID); clearErr != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", clearErr)
			os.Exit(1)
		}
		fmt.Printf("Cleared all recorded runs for %s.\n", title)
		return
	}

	if strings.HasSuffix(gameID, "_classic") {
		printClassicScores(store, gameID, title)
		return
	}
	printSessionScores(store, gameID, title)
}

// printSessionScores shows full run summaries for the math ride.
func printSessionScores(store *storage.Store, gameID, title string) {
	sessions, err := store.TopSessions(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'mathbird play %s' to get on the board!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %-10s  %s\n", "Rank", "Points", "Passed", "Streak", "Accuracy", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %-10s  %s\n", "----", "------", "------", "------", "--------", "----")

	// Print runs
	for i, s := range sessions {
		dateStr := s.CreatedAt.Format("2006-01-02 15:04")
		accuracy := fmt.Sprintf("%.1f%%", s.Accuracy)
		fmt.Printf("  %-4d  %-8d  %-8d  %-8d  %-10s  %s\n", i+1, s.Points, s.PassScore, s.BestStreak, accuracy, dateStr)
	}

	// Show aggregate stats
	stats, err := store.GetSessionStats(gameID)
	if err != nil {
		return
	}

	fmt.Println()
	fmt.Printf("Runs: %d   Best: %d pts   Best streak: %d   Avg accuracy: %.1f%%\n",
		stats.Runs, stats.BestPoints, stats.BestStreak, stats.AvgAccuracy)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}

// printClassicScores shows plain pass counts for the classic ride.
func printClassicScores(store *storage.Store, gameID, title string) {
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'mathbird play %s' to get on the board!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Passed", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "------", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	// Show aggregate stats
	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return
	}

	fmt.Println()
	fmt.Printf("Runs: %d   Best: %d   Avg: %.1f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
