package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// fg returns a style with an adaptive foreground for light and dark terminals.
func fg(light, dark string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: light, Dark: dark})
}

// roleStyles maps cell roles to lipgloss styles.
var roleStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorText:    fg("236", "252"),
	core.ColorMuted:   fg("247", "242"),
	core.ColorHUD:     fg("232", "231").Bold(true),
	core.ColorBest:    fg("30", "80"),
	core.ColorTitle:   fg("28", "120").Bold(true),
	core.ColorWarning: fg("136", "220").Bold(true),
	core.ColorDanger:  fg("160", "203").Bold(true),

	core.ColorPlayer:     fg("28", "84"),
	core.ColorPlayerDash: fg("31", "87"),
	core.ColorPlayerHit:  fg("124", "196"),

	core.ColorObstacleSmall:  fg("160", "203"),
	core.ColorObstacleMedium: fg("166", "208"),
	core.ColorObstacleLarge:  fg("127", "170"),
	core.ColorGrazed:         fg("172", "179"),

	core.ColorAccent:    fg("136", "227").Bold(true),
	core.ColorDash:      fg("25", "69"),
	core.ColorDashReady: fg("26", "75").Bold(true),

	core.ColorStarFar:  fg("252", "238"),
	core.ColorStarMid:  fg("248", "244"),
	core.ColorStarNear: fg("244", "153"),
}

// styleFor returns the style of a role, falling back to plain text.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := roleStyles[c]; ok {
		return style
	}
	return roleStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same role share one styled span; blank spans are
// written unstyled since the playfield is mostly empty.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var span strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			role := s.GetCell(x, y).Color
			blank := true

			span.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != role {
					break
				}
				if cell.Rune != ' ' {
					blank = false
				}
				span.WriteRune(cell.Rune)
			}

			if blank {
				sb.WriteString(span.String())
				continue
			}
			sb.WriteString(styleFor(role).Render(span.String()))
		}
	}
	return sb.String()
}
