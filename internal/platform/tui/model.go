package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

// Options holds platform settings the game never sees.
type Options struct {
	HoldInitial time.Duration // Zero keeps DefaultHoldInitial
	HoldRepeat  time.Duration // Zero keeps DefaultHoldRepeat
}

// Model is the Bubble Tea model for running the dodge game.
type Model struct {
	game       *dodge.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	logger     *log.Logger
	quitting   bool
	scoreSaved bool   // Whether the current game over has been written to the store
	runID      string // Run ID saved for the current game over
	lastRunID  string // Run ID of the last saved run
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game *dodge.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := NewKeyMapper()
	if opts.HoldInitial > 0 || opts.HoldRepeat > 0 {
		initial, repeat := DefaultHoldInitial, DefaultHoldRepeat
		if opts.HoldInitial > 0 {
			initial = opts.HoldInitial
		}
		if opts.HoldRepeat > 0 {
			repeat = opts.HoldRepeat
		}
		keys.SetHoldWindow(initial, repeat)
		logger.Debug("key hold window", "initial", initial, "repeat", repeat)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       keys,
		inputFrame: core.NewInputFrame(),
		logger:     logger,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game initialized", "seed", m.config.Seed, "fps", m.config.TickRate)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.Press(msg, time.Now(), &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
// The playfield is resolution independent, so a resize never resets the run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)

	return m, nil
}

// handleTick runs one frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.keys.ApplyHeld(now, &m.inputFrame)

	result := m.game.Frame(now, m.inputFrame)
	m.gameState = result.State

	if m.gameState.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	// Save the run on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}
	if !m.gameState.GameOver {
		m.scoreSaved = false
		m.runID = ""
	}

	// Clear one-shot actions for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRun writes the finished run to the store.
func (m *Model) saveRun() {
	if m.store == nil {
		return
	}
	run := m.game.Run()
	id, err := m.store.SaveRun(storage.RunRecord{
		GameID:   m.game.ID(),
		Score:    run.Final,
		Grazes:   run.Score.Grazes,
		Dashes:   run.Dashes,
		Duration: run.Score.Elapsed,
		Seed:     m.config.Seed,
	})
	if err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("failed to save run", "error", err)
		return
	}
	m.runID = id
	m.lastRunID = id
	m.logger.Debug("run saved", "run_id", id, "score", run.Final)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.gameState.GameOver && m.runID != "" {
		m.drawRunID()
	}

	return RenderScreen(m.screen)
}

// drawRunID labels the game over screen with the saved run's short ID.
func (m Model) drawRunID() {
	label := fmt.Sprintf(" run %s ", shortRunID(m.runID))
	x := m.screen.Width() - len(label) - 1
	y := m.screen.Height() - 1
	if x < 0 || y < 1 {
		return
	}
	m.screen.DrawTextColored(x, y, label, core.ColorMuted)
}

// Run starts the Bubble Tea program with the given game.
// Returns the ID of the last run saved to the store, or "".
func Run(game *dodge.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options, logger *log.Logger) (string, error) {
	model := NewModel(game, store, cfg, opts, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return "", err
	}
	if fm, ok := final.(Model); ok {
		return fm.LastRunID(), nil
	}
	return "", nil
}

// LastRunID returns the ID of the most recently saved run, or "".
func (m Model) LastRunID() string {
	return m.lastRunID
}
