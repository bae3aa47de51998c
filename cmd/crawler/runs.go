package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkraev/tui-crawler/internal/registry"
	"github.com/mkraev/tui-crawler/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsMode  string
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show run history",
	Long: `Display recent dungeon runs: how deep each one got, what it
killed, and what ended it.

Examples:
  crawler runs
  crawler runs --limit 25
  crawler runs --mode crawl_endless`,
	Run: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().StringVar(&flagRunsMode, "mode", "", "Show best runs for a specific mode instead of recent runs")
}

func runRuns(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var runs []storage.RunRecord
	if flagRunsMode != "" {
		if !registry.Exists(flagRunsMode) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", flagRunsMode)
			os.Exit(1)
		}
		runs, err = store.BestRuns(flagRunsMode, flagRunsLimit)
	} else {
		runs, err = store.RecentRuns(flagRunsLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'crawler play crawl' to start your first run!")
		return
	}

	if flagRunsMode != "" {
		fmt.Printf("Best runs - %s\n", flagRunsMode)
	} else {
		fmt.Println("Recent runs")
	}
	fmt.Println()

	// Print header
	fmt.Printf("  %-14s  %-7s  %-5s  %-4s  %-5s  %-4s  %-22s  %s\n",
		"Mode", "Score", "Depth", "Wave", "Kills", "Lvl", "Death", "Date")
	fmt.Printf("  %-14s  %-7s  %-5s  %-4s  %-5s  %-4s  %-22s  %s\n",
		"----", "-----", "-----", "----", "-----", "---", "-----", "----")

	for _, r := range runs {
		death := r.DeathCause
		if r.BossKilled {
			death += " *"
		}
		fmt.Printf("  %-14s  %-7d  %-5d  %-4d  %-5d  %-4d  %-22s  %s\n",
			r.GameID, r.Score, r.Depth, r.Wave, r.Kills, r.HeroLevel,
			death, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("* boss defeated")
}
