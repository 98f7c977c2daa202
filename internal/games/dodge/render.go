package dodge

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Minimum screen size for a playable view.
const (
	MinScreenW = 32
	MinScreenH = 12
)

// Visual characters for rendering
const (
	PlayerChar    = '▀'
	ObstacleChar  = '█'
	GrazedChar    = '▓'
	dashBarFull   = '█'
	dashBarEmpty  = '░'
	dashBarLength = 10
)

var starChars = [...]rune{'·', '∙', '•'}
var starColors = [...]core.Color{core.ColorStarFar, core.ColorStarMid, core.ColorStarNear}

// Render draws the current frame to dst.
// Playfield units are scaled to fill the screen below the one-line HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		g.renderTooSmall(dst)
		return
	}

	snap := g.Snapshot()
	v := newViewport(dst, snap.FieldW, snap.FieldH)

	g.renderStars(dst, v, snap)
	if snap.Mode != ModeMenu {
		g.renderObstacles(dst, v, snap)
		g.renderPlayer(dst, v, snap)
		g.renderPopups(dst, v, snap)
	}
	g.renderHUD(dst, snap)

	switch snap.Mode {
	case ModeMenu:
		g.drawCenteredMessage(dst, "D O D G E", core.ColorTitle,
			"←/→ or A/D move   SPACE dash",
			"Graze boxes to build the multiplier",
			fmt.Sprintf("Best: %.1f   %s", snap.Best, difficultyLabel(snap)),
			"",
			"ENTER start   Q quit",
		)
	case ModePaused:
		g.drawCenteredMessage(dst, "PAUSED", core.ColorWarning,
			"P resume   R restart   B menu",
		)
	case ModeGameOver:
		lines := []string{
			fmt.Sprintf("Score: %.1f   Best: %.1f", snap.Score, snap.Best),
			fmt.Sprintf("Time %.1fs   Grazes %d   Dashes %d", snap.Elapsed, snap.Grazes, snap.Dashes),
		}
		if snap.NewBest {
			lines = append(lines, "NEW BEST!")
		}
		lines = append(lines, "", "R restart   ENTER menu")
		g.drawCenteredMessage(dst, "GAME OVER", core.ColorDanger, lines...)
	}
}

func difficultyLabel(snap Snapshot) string {
	if !snap.Ramping {
		return fmt.Sprintf("Level %.1f fixed", snap.Level)
	}
	return fmt.Sprintf("Level %.1f", snap.Level)
}

// viewport maps playfield units to screen cells.
type viewport struct {
	top    int
	sx, sy float64
}

func newViewport(dst *core.Screen, fieldW, fieldH float64) viewport {
	top := 1
	return viewport{
		top: top,
		sx:  float64(dst.Width()) / fieldW,
		sy:  float64(dst.Height()-top) / fieldH,
	}
}

// cells converts a playfield rect into a screen rect at least one cell in size.
func (v viewport) cells(r core.RectF) core.Rect {
	x0 := int(math.Floor(r.X * v.sx))
	y0 := v.top + int(math.Floor(r.Y*v.sy))
	x1 := int(math.Ceil(r.Right() * v.sx))
	y1 := v.top + int(math.Ceil(r.Bottom()*v.sy))
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

func (v viewport) point(x, y float64) (int, int) {
	return int(x * v.sx), v.top + int(y*v.sy)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorWarning)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", MinScreenW, MinScreenH), core.ColorMuted)
}

func (g *Game) renderStars(dst *core.Screen, v viewport, snap Snapshot) {
	for _, s := range snap.Stars {
		x, y := v.point(s.X, s.Y)
		if y < v.top {
			continue
		}
		dst.SetColored(x, y, starChars[s.Layer], starColors[s.Layer])
	}
}

func (g *Game) renderObstacles(dst *core.Screen, v viewport, snap Snapshot) {
	for _, o := range snap.Obstacles {
		r := v.cells(o.Rect)
		if r.Bottom() <= v.top {
			continue
		}
		if r.Y < v.top {
			r.H -= v.top - r.Y
			r.Y = v.top
		}
		ch, c := ObstacleChar, obstacleColor(o.Class)
		if o.Grazed {
			ch, c = GrazedChar, core.ColorGrazed
		}
		dst.DrawRect(r, ch, c)
	}
}

// obstacleColor picks a color by size class so sizes read at a glance.
func obstacleColor(class float64) core.Color {
	switch {
	case class <= 32:
		return core.ColorObstacleSmall
	case class <= 48:
		return core.ColorObstacleMedium
	default:
		return core.ColorObstacleLarge
	}
}

func (g *Game) renderPlayer(dst *core.Screen, v viewport, snap Snapshot) {
	c := core.ColorPlayer
	if snap.Dashing {
		c = core.ColorPlayerDash
	}
	if snap.Mode == ModeGameOver {
		c = core.ColorPlayerHit
	}
	dst.DrawRect(v.cells(snap.Player), PlayerChar, c)
}

func (g *Game) renderPopups(dst *core.Screen, v viewport, snap Snapshot) {
	for _, p := range snap.Popups {
		x, y := v.point(p.X, p.Y)
		x -= len([]rune(p.Text)) / 2
		if y < v.top {
			continue
		}
		c := p.Color
		if p.Fade() < 0.3 {
			c = core.ColorMuted
		}
		dst.DrawTextColored(x, y, p.Text, c)
	}
}

// renderHUD draws score, multiplier, best and the dash meter on row 0.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)

	left := fmt.Sprintf(" SCORE %.1f ", snap.Score)
	dst.DrawTextColored(0, 0, left, core.ColorHUD)
	x := len(left)

	mult := fmt.Sprintf(" x%.2f ", snap.Mult)
	multColor := core.ColorMuted
	if snap.Mult > 1.0 {
		multColor = core.ColorAccent
	}
	dst.DrawTextColored(x, 0, mult, multColor)
	x += len(mult)

	best := fmt.Sprintf(" BEST %.1f ", snap.Best)
	dst.DrawTextColored(x, 0, best, core.ColorBest)
	x += len(best)

	if snap.Mode != ModeMenu {
		count := fmt.Sprintf(" OBJ %d ", len(snap.Obstacles))
		dst.DrawTextColored(x, 0, count, core.ColorMuted)
	}

	bar := dashBar(snap.DashReady)
	dst.DrawTextColored(dst.Width()-len([]rune(bar))-1, 0, bar, dashColor(snap.DashReady))
}

func dashBar(ready float64) string {
	if ready >= 1.0 {
		return "DASH READY"
	}
	filled := int(ready * dashBarLength)
	return "DASH " + strings.Repeat(string(dashBarFull), filled) +
		strings.Repeat(string(dashBarEmpty), dashBarLength-filled)
}

func dashColor(ready float64) core.Color {
	if ready >= 1.0 {
		return core.ColorDashReady
	}
	return core.ColorDash
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title string, titleColor core.Color, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	width := len([]rune(title))
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}

	boxW := core.Min(width+4, w)
	boxH := len(lines) + 4
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorMuted)

	dst.DrawTextCentered(boxY+1, title, titleColor)
	for i, l := range lines {
		dst.DrawTextCentered(boxY+3+i, l, core.ColorText)
	}
}
