package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tmelnyk/shadowstep/internal/config"
	"github.com/tmelnyk/shadowstep/internal/core"
	"github.com/tmelnyk/shadowstep/internal/levels"
	"github.com/tmelnyk/shadowstep/internal/platform/tui"
	"github.com/tmelnyk/shadowstep/internal/registry"
	"github.com/tmelnyk/shadowstep/internal/stealth"
	"github.com/tmelnyk/shadowstep/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing. With a level ID the level loads directly; without
one an interactive picker opens.

Controls:
  W/A/S/D, Arrows - Queue a move
  Enter           - Confirm the planned turn
  R               - Restart the level
  B/Esc           - Back to the picker
  Q/Ctrl+C        - Quit

Examples:
  shadowstep play
  shadowstep play courtyard
  shadowstep play courtyard --levels ./my-levels
  shadowstep play --config ./my-rules.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rules config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early for picker and game
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	tickRate := flagFPS
	if !cmd.Flags().Changed("fps") && gameCfg.Display.TickRate > 0 {
		tickRate = gameCfg.Display.TickRate
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	rules := stealth.Rules{
		MaxMovesPerTurn: gameCfg.Rules.MaxMovesPerTurn,
		GoalVictory:     gameCfg.Rules.GoalVictory,
		GuardCapture:    gameCfg.Rules.GuardCapture,
	}
	stealth.SetRules(rules)

	for {
		var level levels.Level
		if len(args) == 1 {
			level, err = levels.FindByID(flagLevelsRoot, args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				fmt.Fprintln(os.Stderr, "Run 'shadowstep list' to see available levels.")
				os.Exit(1)
			}
		} else {
			available, listErr := levels.Playable(flagLevelsRoot)
			if listErr != nil {
				fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", listErr)
				os.Exit(1)
			}
			picked, pickErr := tui.RunLevelSelect(available, store, width, height)
			if pickErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", pickErr)
				os.Exit(1)
			}
			if picked == nil {
				return
			}
			level = *picked
		}

		setup, err := level.Compile()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		stealth.SetLevel(setup, level.ID, level.Name)

		game, err := registry.Create("shadowstep")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			os.Exit(1)
		}

		goBack, runErr := tui.Run(game, store, cfg)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			os.Exit(1)
		}

		// Back returns to the picker only when one was shown
		if !goBack || len(args) == 1 {
			return
		}
	}
}
