package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

var (
	flagPlain  bool
	flagRecent bool
	flagLimit  int
	flagClear  bool
	flagRunID  string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display high scores and recent runs.

In a terminal this opens an interactive table (tab switches between top
scores and recent runs). With --plain, or when output is not a terminal,
it prints a plain text list instead.

Examples:
  dodge scores
  dodge scores --plain
  dodge scores --plain --recent --limit 20
  dodge scores --run 1b4e28ba-2fa1-11d2-883f-0016d3cca427
  dodge scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain text list")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List recent runs instead of top scores (plain mode)")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to list (plain mode)")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show a single run by its ID")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(dodge.GameID); err != nil {
			return err
		}
		fmt.Println("All runs deleted.")
		return nil
	}

	if flagRunID != "" {
		run, err := store.RunByID(flagRunID)
		if err != nil {
			return err
		}
		if run == nil {
			return fmt.Errorf("no run with ID %q", flagRunID)
		}
		printRun(cmd.OutOrStdout(), run)
		return nil
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, err := term.GetSize(fd); err == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	return printScores(store)
}

func printScores(store *storage.Store) error {
	var (
		runs  []storage.RunRecord
		err   error
		title = "High Scores"
	)
	if flagRecent {
		title = "Recent Runs"
		runs, err = store.RecentRuns(dodge.GameID, flagLimit)
	} else {
		runs, err = store.TopScores(dodge.GameID, flagLimit)
	}
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Printf("%s - Dodge\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dodge' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %-6s  %-6s  %s\n", "Rank", "Score", "Time", "Grazes", "Dashes", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-6s  %-6s  %s\n", "----", "-----", "----", "------", "------", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-10.1f  %-8s  %-6d  %-6d  %s\n",
			i+1, r.Score, fmt.Sprintf("%.1fs", r.Duration), r.Grazes, r.Dashes,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(dodge.GameID); err == nil {
		fmt.Printf("Best: %.1f   Runs: %d   Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}

	// The best file is authoritative for the in-game best
	if best, err := storage.NewBestFile(flagBestPath); err == nil {
		if v, err := best.LoadBest(); err == nil && v > 0 {
			fmt.Printf("Best (saved): %.1f\n", v)
		}
	}
	return nil
}

// printRun writes the details of a single run.
func printRun(w io.Writer, r *storage.RunRecord) {
	fmt.Fprintf(w, "Run      %s\n", r.RunID)
	fmt.Fprintf(w, "Score    %.1f\n", r.Score)
	fmt.Fprintf(w, "Time     %.1fs\n", r.Duration)
	fmt.Fprintf(w, "Grazes   %d\n", r.Grazes)
	fmt.Fprintf(w, "Dashes   %d\n", r.Dashes)
	fmt.Fprintf(w, "Seed     %d\n", r.Seed)
	if !r.CreatedAt.IsZero() {
		fmt.Fprintf(w, "Played   %s\n", r.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintf(w, "\nReplay the same obstacles with: dodge play --seed %d\n", r.Seed)
}
