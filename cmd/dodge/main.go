// dodge is a terminal arcade game: slide along the bottom lane and dodge
// falling boxes. Grazing a box without touching it builds a score multiplier.
//
// Usage:
//
//	dodge                    - Play (same as "dodge play")
//	dodge play               - Play
//	dodge scores             - Show high scores and run history
//	dodge config             - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.arcade/scores.db)
//	--best <path>      - Set best score file (default: ~/.arcade/dodge_best.json)
//	--config <path>    - Use a custom config YAML
//	--difficulty <p>   - Difficulty preset: easy, normal, hard, fixed
//	--debug            - Write a debug log to ~/.arcade/dodge.log
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagBestPath   string
	flagConfig     string
	flagDifficulty string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodge",
	Short: "Dodge - a falling-box arcade game for your terminal",
	Long: `Dodge is a real-time arcade game. Slide along the bottom lane and
avoid the boxes falling from above. You score one point per second survived,
plus a bonus for every box you graze without touching.

Available commands:
  play     - Play the game (default)
  scores   - View high scores and recent runs
  config   - Print the effective configuration

Examples:
  dodge
  dodge play --difficulty hard
  dodge play --seed 42
  dodge scores --plain
  dodge config > ~/.arcade/configs/dodge.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagBestPath, "best", storage.DefaultBestPath, "Path to best score file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write a debug log to ~/.arcade/dodge.log")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
