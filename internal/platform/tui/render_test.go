package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColored(0, 0, "SCORE", core.ColorHUD)
	s.DrawTextColored(6, 0, "x1.00", core.ColorAccent)
	s.SetColored(3, 1, '█', core.ColorObstacleSmall)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	for _, want := range []string{"SCORE", "x1.00"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("row 0 missing %q: %q", want, lines[0])
		}
	}
	if !strings.Contains(lines[1], "█") {
		t.Errorf("row 1 missing obstacle cell: %q", lines[1])
	}
}

func TestRenderScreenBlankRowIsPlain(t *testing.T) {
	s := core.NewScreen(6, 1)
	if got := RenderScreen(s); got != "      " {
		t.Errorf("RenderScreen() = %q, expected six spaces", got)
	}
}

func TestEveryRoleHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorStarNear; c++ {
		if _, ok := roleStyles[c]; !ok {
			t.Errorf("role %d has no style", c)
		}
	}
}
