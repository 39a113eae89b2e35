package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmelnyk/shadowstep/internal/levels"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long: `Shows the levels that can be played: the builtin set, or the
contents of the directory given with --levels.`,
	Run: runList,
}

func runList(cmd *cobra.Command, args []string) {
	lvls, err := levels.Available(flagLevelsRoot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	if len(lvls) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range lvls {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-22s  %s\n", maxIDLen, "ID", "Name", "Size")
	fmt.Printf("  %-*s  %-22s  %s\n", maxIDLen, "--", "----", "----")

	// Print levels
	for _, l := range lvls {
		size := "?"
		if len(l.Rows) > 0 {
			size = fmt.Sprintf("%dx%d", len(l.Rows[0]), len(l.Rows))
		}
		fmt.Printf("  %-*s  %-22s  %s\n", maxIDLen, l.ID, l.Name, size)
	}

	fmt.Println()
	fmt.Println("Run 'shadowstep play <id>' to play a level.")
}
