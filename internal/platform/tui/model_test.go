package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
)

func newTestModel() Model {
	game := dodge.New(config.DefaultDodgeConfig(), nil)
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
	m := NewModel(game, nil, cfg, Options{}, nil)
	m.Init()
	return m
}

func TestModelQuitKey(t *testing.T) {
	m := newTestModel()
	updated, cmd := m.Update(runeKey('q'))
	m = updated.(Model)
	if !m.quitting || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelStartsRunOnEnter(t *testing.T) {
	m := newTestModel()
	start := time.Unix(100, 0)

	updated, _ := m.Update(TickMsg(start))
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	updated, _ = m.Update(TickMsg(start.Add(16 * time.Millisecond)))
	m = updated.(Model)

	if m.game.Mode() != dodge.ModePlaying {
		t.Errorf("Mode() = %v, expected playing", m.game.Mode())
	}
	if m.inputFrame.Has(core.ActionConfirm) {
		t.Error("one-shot actions should be cleared after the tick")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m := newTestModel()
	m.Update(TickMsg(time.Unix(0, 0)))
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	updated, _ = m.Update(TickMsg(time.Unix(0, int64(16*time.Millisecond))))
	m = updated.(Model)

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)
	if m.game.Mode() != dodge.ModePlaying {
		t.Error("resize should not reset the run")
	}
	if !strings.Contains(m.View(), "SCORE") {
		t.Error("view should draw the HUD")
	}
}

func TestModelHoldOptions(t *testing.T) {
	game := dodge.New(config.DefaultDodgeConfig(), nil)
	m := NewModel(game, nil, core.DefaultConfig(), Options{HoldInitial: 500 * time.Millisecond}, nil)

	frame := core.NewInputFrame()
	start := time.Unix(0, 0)
	m.keys.Press(tea.KeyMsg{Type: tea.KeyLeft}, start, &frame)
	if !m.keys.IsHeld(core.ActionLeft, start.Add(450*time.Millisecond)) {
		t.Error("custom initial hold should outlast the default")
	}
	if m.keys.repeat != DefaultHoldRepeat {
		t.Errorf("repeat = %v, expected default", m.keys.repeat)
	}
}

func TestModelShowsSavedRunID(t *testing.T) {
	m := newTestModel()
	m.gameState.GameOver = true
	m.runID = "1b4e28ba-2fa1-11d2-883f-0016d3cca427"

	if !strings.Contains(m.View(), "run 1b4e28ba") {
		t.Error("game over view should show the saved run ID")
	}
}
