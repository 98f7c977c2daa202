package dodge

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Popup timing.
const (
	GrazePopupTTL = 0.8
	DashPopupTTL  = 0.35
	PopupDrift    = -45.0 // Vertical speed, units/second
)

// Popup is a short-lived floating label in playfield coordinates.
type Popup struct {
	Text  string
	Color core.Color
	X, Y  float64
	TTL   float64
	Age   float64
}

// Alive reports whether the popup should still be drawn.
func (p Popup) Alive() bool {
	return p.Age < p.TTL
}

// Fade returns the remaining life in [0, 1].
func (p Popup) Fade() float64 {
	if p.TTL <= 0 {
		return 0
	}
	return core.ClampF(1-p.Age/p.TTL, 0, 1)
}

func grazePopup(o Obstacle, bonus float64) Popup {
	return Popup{
		Text:  fmt.Sprintf("+%d", int(math.Round(bonus))),
		Color: core.ColorAccent,
		X:     o.X + o.W/2,
		Y:     o.Y + o.H/2,
		TTL:   GrazePopupTTL,
	}
}

func dashPopup(p *Player) Popup {
	return Popup{
		Text:  "SPRINT",
		Color: core.ColorDash,
		X:     p.X,
		Y:     p.Y - 10,
		TTL:   DashPopupTTL,
	}
}

// agePopups moves popups along and drops expired ones in place.
func agePopups(popups []Popup, dt float64) []Popup {
	alive := popups[:0]
	for _, p := range popups {
		p.Age += dt
		p.Y += PopupDrift * dt
		if p.Alive() {
			alive = append(alive, p)
		}
	}
	return alive
}
