// shadowstep is a turn-based stealth puzzle played in the terminal.
//
// Usage:
//
//	shadowstep play [level]   - Play a level (picker when omitted)
//	shadowstep list           - List available levels
//	shadowstep runs [level]   - Show run history
//	shadowstep validate       - Check level files for errors
//	shadowstep serve          - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>      - Set redraw rate (default: 30)
//	--db <path>       - Set database path (default: ~/.shadowstep/runs.db)
//	--levels <dir>    - Load levels from a directory instead of the builtin set
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/tmelnyk/shadowstep/internal/stealth"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagLevelsRoot string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shadowstep",
	Short: "Shadowstep - A turn-based stealth puzzle in your terminal",
	Long: `Shadowstep is a terminal stealth puzzle. Plan up to three moves,
confirm the turn, and watch the guards patrol. Reach the goal without
sharing a cell with a guard.

Available commands:
  play      - Play a level
  list      - Show all available levels
  runs      - View run history
  validate  - Check level files for errors
  serve     - Start SSH server for remote play

Examples:
  shadowstep play
  shadowstep play courtyard
  shadowstep list --levels ./my-levels
  shadowstep runs courtyard
  shadowstep serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Redraw rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.shadowstep/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLevelsRoot, "levels", "", "Directory with level files (builtin levels when empty)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
}
