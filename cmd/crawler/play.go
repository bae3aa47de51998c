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

var (
	flagConfig     string
	flagDifficulty string
	flagResume     bool
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  W/A/S/D    - Move
  Arrows     - Aim (auto-targets nearest enemy when idle)
  Space      - Attack
  E/F        - Power shot (costs mana)
  X          - Dash
  1 / 2      - Health / mana potion
  P/Esc      - Pause
  Ctrl+S     - Save run
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Weaker enemies, shorter campaign
  normal - The intended experience
  hard   - Tougher enemies, longer campaign

Examples:
  crawler play crawl
  crawler play crawl --difficulty easy
  crawler play crawl_endless --difficulty hard
  crawler play crawl --resume
  crawler play crawl --config ./my-crawl.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagResume, "resume", false, "Resume the last saved run for this mode")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'crawler list' to see available modes.")
		os.Exit(1)
	}

	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
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

	// Set config path and difficulty before creation
	crawl.SetConfigPath(flagConfig)
	crawl.SetDifficultyPreset(flagDifficulty)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Load the saved snapshot when resuming
	var saveData []byte
	if flagResume {
		saveData = loadSavedRun(game, gameID)
	}

	// Run the game
	runErr := tui.RunWithSave(game, store, cfg, saveData)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// loadSavedRun reads the saved snapshot for the mode, if one exists.
func loadSavedRun(game registry.Game, gameID string) []byte {
	if _, ok := game.(registry.Saver); !ok {
		return nil
	}

	path := tui.SavePath(gameID)
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: no saved run at %s, starting fresh\n", path)
		return nil
	}
	return data
}
