package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty scoreboard should show the placeholder")
	}
}

func TestScoreboardToggleView(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, s := range []float64{5, 50, 20} {
		if _, err := store.SaveRun(storage.RunRecord{GameID: dodge.GameID, Score: s}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	if len(m.runs) != 3 || m.runs[0].Score != 50 {
		t.Fatalf("top view = %v, expected best first", m.runs)
	}
	if m.stats == nil || m.stats.GamesCount != 3 {
		t.Errorf("stats = %+v, expected 3 runs", m.stats)
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(ScoreboardModel)
	if m.view != ViewRecent || m.runs[0].Score != 20 {
		t.Errorf("recent view = %v, expected newest first", m.runs)
	}
	if !strings.Contains(m.View(), "RECENT RUNS") {
		t.Error("title should name the recent view")
	}
}

func TestScoreboardBack(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(ScoreboardModel)
	if !m.IsGoingBack() || cmd == nil {
		t.Error("esc should leave the scoreboard")
	}
}

func TestShortRunID(t *testing.T) {
	if got := shortRunID("1b4e28ba-2fa1-11d2-883f-0016d3cca427"); got != "1b4e28ba" {
		t.Errorf("shortRunID() = %q", got)
	}
	if got := shortRunID("plain"); got != "plain" {
		t.Errorf("shortRunID() = %q", got)
	}
}
