// crawler is a TUI dungeon crawler played in the terminal.
//
// Usage:
//
//	crawler list              - List available modes
//	crawler play <mode>       - Play a mode
//	crawler menu              - Start menu to pick modes interactively
//	crawler serve             - Start SSH server for remote play
//	crawler scores <mode>     - Show high scores for a mode
//	crawler runs              - Show recent run history
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.crawler/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game variants to register them
	_ "github.com/mkraev/tui-crawler/internal/games/crawl"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crawler",
	Short: "TUI Crawler - A dungeon crawler in your terminal",
	Long: `TUI Crawler is a terminal dungeon crawler: descend through
procedurally carved depths, fight waves of enemies and elite packs,
collect loot, and face the boss guarding the final stairs.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  runs     - View run history

Examples:
  crawler list
  crawler play crawl
  crawler play crawl_endless --difficulty hard
  crawler menu
  crawler serve --ssh :2222
  crawler scores crawl
  crawler runs`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (simulation ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.crawler/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(runsCmd)
}
