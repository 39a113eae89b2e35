package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tmelnyk/shadowstep/internal/platform/tui"
	"github.com/tmelnyk/shadowstep/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsTUI   bool
	flagRunsClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [level]",
	Short: "Show run history",
	Long: `Display recent runs. With a level ID only that level's history is
shown, together with its aggregate stats.

With --tui an interactive history browser opens instead of the plain
listing. With --clear the named level's history is deleted.

Examples:
  shadowstep runs
  shadowstep runs --tui
  shadowstep runs courtyard
  shadowstep runs courtyard --limit 25
  shadowstep runs courtyard --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Maximum runs to show")
	runsCmd.Flags().BoolVar(&flagRunsTUI, "tui", false, "Browse history interactively")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete the given level's history")
}

func runRuns(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	levelID := ""
	if len(args) == 1 {
		levelID = args[0]
	}

	if flagRunsClear {
		if levelID == "" {
			fmt.Fprintln(os.Stderr, "Error: --clear requires a level ID")
			os.Exit(1)
		}
		if err := store.ClearRuns(levelID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared run history for %s\n", levelID)
		return
	}

	if flagRunsTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, err := tui.RunHistory(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.RecentRuns(levelID, flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if levelID != "" {
		fmt.Printf("Run history - %s\n", levelID)
	} else {
		fmt.Println("Run history")
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'shadowstep play' to record the first run!")
		return
	}

	// Print header
	fmt.Printf("  %-14s  %-8s  %-6s  %-6s  %s\n", "Level", "Outcome", "Turns", "Moves", "Date")
	fmt.Printf("  %-14s  %-8s  %-6s  %-6s  %s\n", "-----", "-------", "-----", "-----", "----")

	// Print runs
	for _, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-14s  %-8s  %-6d  %-6d  %s\n", r.LevelID, r.Outcome, r.Turns, r.Moves, dateStr)
	}

	if levelID != "" {
		stats, err := store.Stats(levelID)
		if err == nil && stats.Attempts > 0 {
			fmt.Println()
			fmt.Printf("Attempts: %d  Victories: %d", stats.Attempts, stats.Victories)
			if stats.BestTurns > 0 {
				fmt.Printf("  Best: %d turns", stats.BestTurns)
			}
			fmt.Println()
		}
	}
}
