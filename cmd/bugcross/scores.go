package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avoronov/bugcross/internal/platform/tui"
	"github.com/avoronov/bugcross/internal/storage"
)

var flagScoresPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the recorded runs, best first.

By default the run database is in-memory, so this command is only
useful with --db pointing at a file the play sessions also used.

Examples:
  bugcross scores --db ~/.bugcross/runs.db
  bugcross scores --db ./runs.db --plain`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print a plain table instead of the interactive view")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		printScores(store)
		return
	}

	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width, height = 80, 24
	}

	if _, err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes the top runs as a plain text table.
func printScores(store *storage.Store) {
	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Bug Crossing - Best Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'bugcross play --db <path>' to record the first run.")
		return
	}

	fmt.Printf("  %-4s  %-14s  %-8s  %-6s  %s\n", "Rank", "Avatar", "Score", "Gems", "Date")
	fmt.Printf("  %-4s  %-14s  %-8s  %-6s  %s\n", "----", "------", "-----", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-14s  %-8d  %-6d  %s\n",
			i+1, r.Avatar, r.Score, r.Gems, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err != nil || stats == nil {
		return
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Avg: %.1f  Gems: %d\n",
		stats.RunsCount, stats.HighScore, stats.AvgScore, stats.TotalGems)
}
