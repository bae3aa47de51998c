package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkraev/tui-crawler/internal/core"
	"github.com/mkraev/tui-crawler/internal/games/crawl"
	"github.com/mkraev/tui-crawler/internal/platform/tui"
	"github.com/mkraev/tui-crawler/internal/registry"
	"github.com/mkraev/tui-crawler/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the crawler with a mode picker menu",
	Long: `Start the crawler in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode and a
difficulty. After a run ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Run history
  Q            - Quit

Examples:
  crawler menu
  crawler menu --fps 30
  crawler menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		// Check if user quit
		if menuResult.Quit {
			break
		}

		// Check if user wants the run history
		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from run history
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		// Apply the selected difficulty before creation
		crawl.SetDifficultyPreset(menuResult.Difficulty)

		// Create and run the game
		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// New seed for each run from the menu
		runCfg := cfg
		runCfg.Seed = flagSeed

		if err := tui.Run(game, store, runCfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			break
		}
	}
}
