// Package dodge implements a real-time dodging game.
// The player slides along a lane at the bottom of the field while boxes fall
// from the top. Surviving earns one point per second; passing close to a box
// without touching it (a graze) earns a bonus scaled by a decaying multiplier.
//
// The package holds no terminal or wall-clock dependencies beyond Frame, which
// converts timestamps into bounded steps. All randomness comes from an RNG
// seeded through Reset, so identical seeds and inputs replay identically.
package dodge

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// GameID is the identifier used for score storage.
const GameID = "dodge"

// Mode is the top-level state of the game.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModePaused
	ModeGameOver
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Run holds everything that is rebuilt when a new run starts.
type Run struct {
	Player  Player
	Spawner *Spawner
	Field   *Field
	Score   Score
	Popups  []Popup
	Dashes  int
	Final   float64 // Set once when the run ends
	NewBest bool
}

func newRun(cfg config.DodgeConfig, diff *config.DifficultyManager, rng *rand.Rand) *Run {
	return &Run{
		Player:  NewPlayer(cfg.Player, cfg.Dash, cfg.Field.Width),
		Spawner: NewSpawner(cfg, diff, rng),
		Field:   NewField(cfg),
		Score:   NewScore(cfg.Scoring),
		Popups:  make([]Popup, 0, 8),
	}
}

// Game implements the dodge game logic.
type Game struct {
	cfg     config.DodgeConfig
	base    config.DodgeConfig // Tunables before any difficulty preset
	preset  config.DifficultyPreset
	diff    *config.DifficultyManager
	runtime core.RuntimeConfig

	mode    Mode
	run     *Run
	runs    int
	stepper *Stepper
	best    *BestTracker
	stars   *Starfield
	rng     *rand.Rand
	quit    bool

	store  BestStore
	logger *log.Logger
}

// New creates a game with the given tunables. store may be nil.
func New(cfg config.DodgeConfig, store BestStore) *Game {
	cfg = config.Normalize(cfg)
	g := &Game{
		cfg:    cfg,
		base:   cfg,
		diff:   config.NewDifficultyManager(cfg.Difficulty),
		store:  store,
		logger: log.New(io.Discard),
	}
	g.Reset(core.DefaultConfig())
	return g
}

// SetLogger replaces the logger. Call before Reset to log the best score load.
func (g *Game) SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g.logger = logger
	if g.best != nil {
		g.best.logger = logger
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dodge"
}

// SetDifficulty applies preset on top of the tunables passed to New.
// An empty preset restores them. The current run keeps its settings unless
// the game is in the menu; later runs use the new ones.
func (g *Game) SetDifficulty(preset config.DifficultyPreset) {
	cfg := g.base
	config.ApplyDodgePreset(&cfg, preset)
	g.cfg = config.Normalize(cfg)
	g.preset = preset

	g.diff.SetEnabled(g.cfg.Difficulty.Enabled)
	g.diff.SetInitialLevel(g.cfg.Difficulty.InitialLevel)
	if g.mode == ModeMenu {
		g.run = newRun(g.cfg, g.diff, g.rng)
	}
	g.logger.Debug("difficulty set", "preset", preset, "level", g.diff.Level(), "ramp", g.diff.IsEnabled())
}

// Difficulty returns the active preset, or "" when the config's own
// difficulty settings are in use.
func (g *Game) Difficulty() config.DifficultyPreset {
	return g.preset
}

// Config returns the normalized tunables in use.
func (g *Game) Config() config.DodgeConfig {
	return g.cfg
}

// Reset returns to the menu with a fresh run and reseeds all randomness.
// The best score is reloaded from the store.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.stars = NewStarfield(g.cfg.Field.Width, g.cfg.Field.Height, rt.Seed^0x5bd1e995)
	g.stepper = NewStepper(g.cfg.Field.MaxDT)
	g.best = NewBestTracker(g.store, g.logger)
	g.mode = ModeMenu
	g.quit = false
	g.runs = 0
	g.run = newRun(g.cfg, g.diff, g.rng)
}

// Resize updates the screen dimensions used by Render.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
}

// Frame advances the game to wall-clock time now.
// The stepper runs in every mode, so leaving the pause menu never produces
// a catch-up step.
func (g *Game) Frame(now time.Time, in core.InputFrame) core.StepResult {
	return g.Step(g.stepper.Tick(now), in)
}

// Step advances the game by dt seconds of simulated time.
// Frames that change the mode do not simulate.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	if dt < 0 {
		dt = 0
	}

	g.stars.Update(dt)

	if in.Has(core.ActionQuit) {
		g.quit = true
		return core.StepResult{State: g.State()}
	}

	if g.handleTransition(in) {
		return core.StepResult{State: g.State()}
	}

	if g.mode == ModePlaying {
		g.simulate(dt, in)
	}

	return core.StepResult{State: g.State()}
}

// handleTransition applies mode changes requested by in.
// Returns true if the mode changed.
func (g *Game) handleTransition(in core.InputFrame) bool {
	switch g.mode {
	case ModeMenu:
		if in.Has(core.ActionConfirm) {
			g.startRun()
			return true
		}
	case ModePlaying:
		if in.Has(core.ActionRestart) {
			g.startRun()
			return true
		}
		if in.Has(core.ActionPause) {
			g.mode = ModePaused
			return true
		}
	case ModePaused:
		if in.Has(core.ActionRestart) {
			g.startRun()
			return true
		}
		if in.Has(core.ActionPause) {
			g.mode = ModePlaying
			return true
		}
		if in.Has(core.ActionBack) {
			g.toMenu()
			return true
		}
	case ModeGameOver:
		if in.Has(core.ActionRestart) {
			g.startRun()
			return true
		}
		if in.Has(core.ActionConfirm) || in.Has(core.ActionBack) {
			g.toMenu()
			return true
		}
	}
	return false
}

func (g *Game) startRun() {
	g.run = newRun(g.cfg, g.diff, g.rng)
	g.runs++
	g.mode = ModePlaying
	g.logger.Debug("run started", "run", g.runs, "rate", g.run.Spawner.Rate, "level", g.diff.Level())
}

func (g *Game) toMenu() {
	g.run = newRun(g.cfg, g.diff, g.rng)
	g.mode = ModeMenu
}

// simulate runs one frame of a live run.
func (g *Game) simulate(dt float64, in core.InputFrame) {
	r := g.run

	r.Score.Tick(dt)
	now := r.Score.Elapsed
	dir := in.Direction()

	if in.Has(core.ActionDash) && r.Player.TryDash(dir, now, g.rng) {
		r.Dashes++
		r.Popups = append(r.Popups, dashPopup(&r.Player))
	}
	r.Player.Advance(dt, dir, now)

	r.Field.Add(r.Spawner.Step(dt, now)...)

	// Grazes ahead of the fatal obstacle still count toward the final score.
	res := r.Field.Step(dt, r.Player.Rect())
	for _, o := range res.Grazes {
		bonus := r.Score.OnGraze()
		r.Popups = append(r.Popups, grazePopup(o, bonus))
	}
	if res.Collided {
		g.endRun(res.Hit)
		return
	}

	r.Popups = agePopups(r.Popups, dt)
}

func (g *Game) endRun(hit ObstacleID) {
	r := g.run
	r.Final = r.Score.Finalize()
	r.NewBest = g.best.Record(r.Final)
	g.mode = ModeGameOver

	g.logger.Info("run over",
		"run", g.runs,
		"score", r.Final,
		"elapsed", r.Score.Elapsed,
		"grazes", r.Score.Grazes,
		"dashes", r.Dashes,
		"obstacle", hit,
		"best", r.NewBest,
	)
}

// Mode returns the current mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Run returns the current run. It is replaced when a new run starts.
func (g *Game) Run() *Run {
	return g.run
}

// Best returns the best score seen so far.
func (g *Game) Best() float64 {
	return g.best.Best()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := g.run.Score.Value()
	if g.mode == ModeGameOver {
		score = g.run.Final
	}
	return core.GameState{
		Score:    score,
		GameOver: g.mode == ModeGameOver,
		Paused:   g.mode == ModePaused,
		Quit:     g.quit,
	}
}
