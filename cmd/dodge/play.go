package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing.

Controls:
  Left/A, Right/D  - Move (hold)
  Down/S           - Stop
  Space            - Dash (1.25s cooldown)
  Enter            - Start / back to menu after game over
  P                - Pause
  R                - Restart
  Esc/B            - Menu (from pause or game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Base spawn rate and fall speed, wider graze zone
  normal - 30% head start on spawn rate and fall speed
  hard   - 70% head start, tighter graze zone, slower dash recharge
  fixed  - No progression, the rate and speed never grow

Examples:
  dodge play
  dodge play --difficulty easy
  dodge play --seed 1234
  dodge play --config ./my-dodge.yaml
  dodge play --hold 450ms   # for terminals with a slow key repeat`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var (
	flagHoldInitial time.Duration
	flagHoldRepeat  time.Duration
)

func init() {
	for _, cmd := range []*cobra.Command{rootCmd, playCmd} {
		cmd.Flags().DurationVar(&flagHoldInitial, "hold", 0, "How long a direction stays held after a key press (default 300ms)")
		cmd.Flags().DurationVar(&flagHoldRepeat, "hold-repeat", 0, "How far each key repeat extends a hold (default 120ms)")
	}
}

// difficultyPreset parses --difficulty. Empty means keep the config's own.
func difficultyPreset() (config.DifficultyPreset, error) {
	if flagDifficulty == "" {
		return "", nil
	}
	preset := config.ParsePreset(flagDifficulty)
	if preset == "" {
		return "", fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
	}
	return preset, nil
}

// loadConfig resolves the effective config from --config and --difficulty.
func loadConfig() (config.DodgeConfig, error) {
	cfg, err := config.LoadDodge(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := difficultyPreset()
	if err != nil {
		return cfg, err
	}
	config.ApplyDodgePreset(&cfg, preset)
	return config.Normalize(cfg), nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()

	gameCfg, err := config.LoadDodge(flagConfig)
	if err != nil {
		return err
	}
	preset, err := difficultyPreset()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game := dodge.New(gameCfg, openBestStore(flagBestPath, logger))
	game.SetLogger(logger)
	game.SetDifficulty(preset)

	// Continue without storage - game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	logger.Info("starting", "fps", cfg.TickRate, "seed", cfg.Seed, "difficulty", game.Difficulty(),
		"size", fmt.Sprintf("%dx%d", width, height))

	opts := tui.Options{HoldInitial: flagHoldInitial, HoldRepeat: flagHoldRepeat}
	runID, runErr := tui.Run(game, store, cfg, opts, logger)

	if store != nil {
		if err := store.Close(); err != nil {
			logger.Warn("closing scores database", "error", err)
		}
	}

	if runErr != nil {
		logger.Error("game loop failed", "error", runErr)
		return fmt.Errorf("error running game: %w", runErr)
	}

	logger.Info("exiting", "best", game.Best(), "last_run", runID)
	if runID != "" {
		fmt.Printf("Last run saved as %s (dodge scores --run %s)\n", runID, runID)
	}
	return nil
}

// openBestStore returns the best score file at path, or nil when it cannot be
// used. Without a store the best score only lives for this session.
func openBestStore(path string, logger *log.Logger) dodge.BestStore {
	best, err := storage.NewBestFile(path)
	if err != nil {
		logger.Warn("could not use best score file", "path", path, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: best score will not be saved: %v\n", err)
		return nil
	}
	return best
}
