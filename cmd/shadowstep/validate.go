package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmelnyk/shadowstep/internal/levels"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check level files for errors",
	Long: `Parse and validate every level file under the --levels directory,
or the builtin set when none is given. Reports malformed grids, bad
guard definitions, and missing start or goal markers.

Examples:
  shadowstep validate
  shadowstep validate --levels ./my-levels`,
	Run: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) {
	failed := 0

	if flagLevelsRoot == "" {
		lvls, err := levels.Builtin()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading builtin levels: %v\n", err)
			os.Exit(1)
		}
		for i := range lvls {
			failed += reportValidation(lvls[i].ID, lvls[i].Validate())
		}
	} else {
		loader := levels.NewLoader(flagLevelsRoot)
		paths, err := loader.Paths()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error scanning %s: %v\n", flagLevelsRoot, err)
			os.Exit(1)
		}
		if len(paths) == 0 {
			fmt.Printf("No level files found under %s\n", flagLevelsRoot)
			return
		}
		for _, path := range paths {
			lvl, err := loader.LoadFile(path)
			if err != nil {
				failed += reportValidation(path, err)
				continue
			}
			failed += reportValidation(path, lvl.Validate())
		}
	}

	fmt.Println()
	if failed > 0 {
		fmt.Printf("%d level(s) failed validation.\n", failed)
		os.Exit(1)
	}
	fmt.Println("All levels valid.")
}

// reportValidation prints one result line and returns 1 on failure.
func reportValidation(name string, err error) int {
	if err != nil {
		fmt.Printf("  FAIL  %s\n        %v\n", name, err)
		return 1
	}
	fmt.Printf("  ok    %s\n", name)
	return 0
}
