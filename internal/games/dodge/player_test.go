package dodge

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-dodge/internal/config"
)

func testPlayer() Player {
	cfg := config.DefaultDodgeConfig()
	return NewPlayer(cfg.Player, cfg.Dash, cfg.Field.Width)
}

func TestPlayerStartsCentered(t *testing.T) {
	p := testPlayer()
	if p.X != 360 {
		t.Errorf("X = %v, expected 360", p.X)
	}
	if p.VX != 0 {
		t.Errorf("VX = %v, expected 0", p.VX)
	}
	r := p.Rect()
	if r.X != 320 || r.Y != 355 || r.W != 80 || r.H != 20 {
		t.Errorf("Rect() = %+v, expected {320 355 80 20}", r)
	}
}

func TestPlayerAcceleratesToMaxSpeed(t *testing.T) {
	p := testPlayer()

	p.Advance(0.1, 1, 0.1)
	if math.Abs(p.VX-240) > 1e-9 {
		t.Errorf("VX after 0.1s = %v, expected 240", p.VX)
	}

	now := 0.1
	for i := 0; i < 10; i++ {
		now += 0.05
		p.Advance(0.05, 1, now)
	}
	if p.VX != 520 {
		t.Errorf("VX = %v, expected cap 520", p.VX)
	}
}

func TestPlayerFrictionStops(t *testing.T) {
	p := testPlayer()
	p.VX = 320

	p.Advance(0.05, 0, 1)
	if math.Abs(p.VX-160) > 1e-9 {
		t.Errorf("VX = %v, expected 160", p.VX)
	}
	p.Advance(0.05, 0, 1.05)
	p.Advance(0.05, 0, 1.1)
	if p.VX != 0 {
		t.Errorf("VX = %v, expected friction to stop at 0", p.VX)
	}
}

func TestPlayerStaysInBounds(t *testing.T) {
	p := testPlayer()
	rng := rand.New(rand.NewSource(7))
	lo, hi := p.Bounds()

	now := 0.0
	for i := 0; i < 5000; i++ {
		dt := rng.Float64() * 0.05
		now += dt
		dir := rng.Intn(3) - 1
		if rng.Intn(20) == 0 {
			p.TryDash(dir, now, rng)
		}
		p.Advance(dt, dir, now)

		if p.X < lo || p.X > hi {
			t.Fatalf("step %d: X = %v outside [%v, %v]", i, p.X, lo, hi)
		}
	}
}

func TestPlayerDashCooldown(t *testing.T) {
	p := testPlayer()
	rng := rand.New(rand.NewSource(1))

	if !p.TryDash(1, 1.0, rng) {
		t.Fatal("first dash should succeed")
	}
	if p.VX != 1150 {
		t.Errorf("VX = %v, expected dash speed 1150", p.VX)
	}
	if p.DashReadyAt != 2.25 {
		t.Errorf("DashReadyAt = %v, expected 2.25", p.DashReadyAt)
	}

	before := p
	if p.TryDash(-1, 2.0, rng) {
		t.Error("dash during cooldown should be rejected")
	}
	if p.VX != before.VX || p.DashReadyAt != before.DashReadyAt || p.DashActiveUntil != before.DashActiveUntil {
		t.Error("rejected dash should not change state")
	}

	if !p.TryDash(-1, p.DashReadyAt, rng) {
		t.Error("dash exactly at DashReadyAt should succeed")
	}
	if p.VX != -1150 {
		t.Errorf("VX = %v, expected -1150", p.VX)
	}
}

func TestPlayerDashHoldsVelocity(t *testing.T) {
	p := testPlayer()
	rng := rand.New(rand.NewSource(1))

	p.TryDash(1, 1.0, rng)
	// Opposite input during the dash does not slow it down
	p.Advance(0.05, -1, 1.05)
	if p.VX != 1150 {
		t.Errorf("VX during dash = %v, expected 1150", p.VX)
	}

	p.Advance(0.05, -1, 1.1)
	if p.VX >= 1150 {
		t.Errorf("VX after dash = %v, expected steering to resume", p.VX)
	}
}

func TestPlayerDashDirection(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	p := testPlayer()
	p.VX = -100
	p.TryDash(0, 1, rng)
	if p.VX != -1150 {
		t.Errorf("dash with no input should follow velocity, VX = %v", p.VX)
	}

	p = testPlayer()
	p.VX = -100
	p.TryDash(1, 1, rng)
	if p.VX != 1150 {
		t.Errorf("held input should win over velocity, VX = %v", p.VX)
	}

	p = testPlayer()
	p.TryDash(0, 1, rng)
	if math.Abs(p.VX) != 1150 {
		t.Errorf("dash from rest should pick a side, VX = %v", p.VX)
	}
}

func TestPlayerDashReadyFraction(t *testing.T) {
	p := testPlayer()
	rng := rand.New(rand.NewSource(1))

	if p.DashReadyFraction(0) != 1 {
		t.Error("fresh player should be ready")
	}
	p.TryDash(1, 0, rng)
	if got := p.DashReadyFraction(0); got != 0 {
		t.Errorf("fraction right after dash = %v, expected 0", got)
	}
	if got := p.DashReadyFraction(0.625); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("fraction halfway = %v, expected 0.5", got)
	}
	if p.DashReadyFraction(1.25) != 1 {
		t.Error("should be ready at DashReadyAt")
	}
}
