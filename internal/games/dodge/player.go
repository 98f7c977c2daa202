package dodge

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Player is the actor on the bottom lane.
// X is the horizontal center; Y is the top of the hitbox and never changes.
type Player struct {
	X, Y float64
	VX   float64
	W, H float64

	DashReadyAt     float64 // Earliest run time a new dash may trigger
	DashActiveUntil float64 // Run time at which the dash velocity override ends

	move   config.PlayerConfig
	dash   config.DashConfig
	fieldW float64
}

// NewPlayer places a player at the center of the lane, at rest.
func NewPlayer(move config.PlayerConfig, dash config.DashConfig, fieldW float64) Player {
	p := Player{
		Y:      move.Y,
		W:      move.Width,
		H:      move.Height,
		move:   move,
		dash:   dash,
		fieldW: fieldW,
	}
	lo, hi := p.Bounds()
	p.X = core.ClampF(fieldW/2, lo, hi)
	return p
}

// Bounds returns the allowed range for X.
func (p *Player) Bounds() (lo, hi float64) {
	half := p.W / 2
	return half + p.move.Margin, p.fieldW - half - p.move.Margin
}

// Rect returns the player's hitbox.
func (p *Player) Rect() core.RectF {
	return core.NewRectF(p.X-p.W/2, p.Y, p.W, p.H)
}

// DashActive reports whether the dash override is in effect at now.
func (p *Player) DashActive(now float64) bool {
	return now < p.DashActiveUntil
}

// DashReadyFraction returns cooldown progress in [0, 1]; 1 means ready.
func (p *Player) DashReadyFraction(now float64) float64 {
	if now >= p.DashReadyAt || p.dash.Cooldown <= 0 {
		return 1.0
	}
	return core.ClampF(1.0-(p.DashReadyAt-now)/p.dash.Cooldown, 0.0, 1.0)
}

// TryDash starts a dash if the cooldown has elapsed.
//
// The direction is the held input if any, else the sign of the current
// velocity, else a coin flip from rng. Returns false and changes nothing
// while the cooldown is running.
func (p *Player) TryDash(dir int, now float64, rng *rand.Rand) bool {
	if now < p.DashReadyAt {
		return false
	}

	if dir == 0 {
		switch {
		case p.VX < 0:
			dir = -1
		case p.VX > 0:
			dir = 1
		case rng.Intn(2) == 0:
			dir = -1
		default:
			dir = 1
		}
	}

	p.VX = float64(dir) * p.dash.Speed
	p.DashActiveUntil = now + p.dash.Duration
	p.DashReadyAt = now + p.dash.Cooldown
	return true
}

// Advance integrates one frame of horizontal movement.
// dir is -1, 0 or +1 (see core.InputFrame.Direction).
func (p *Player) Advance(dt float64, dir int, now float64) {
	if dt < 0 {
		dt = 0
	}

	if !p.DashActive(now) {
		target := float64(dir) * p.move.MaxSpeed
		if target != 0 {
			if p.VX < target {
				p.VX = math.Min(target, p.VX+p.move.Accel*dt)
			} else if p.VX > target {
				p.VX = math.Max(target, p.VX-p.move.Accel*dt)
			}
		} else {
			if p.VX > 0 {
				p.VX = math.Max(0, p.VX-p.move.Friction*dt)
			} else if p.VX < 0 {
				p.VX = math.Min(0, p.VX+p.move.Friction*dt)
			}
		}
	}

	// Clamping keeps velocity so the player can push off a wall right away
	lo, hi := p.Bounds()
	p.X = core.ClampF(p.X+p.VX*dt, lo, hi)
}
