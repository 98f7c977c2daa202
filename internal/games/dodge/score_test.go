package dodge

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-dodge/internal/config"
)

func testScoring() config.ScoringConfig {
	return config.DefaultDodgeConfig().Scoring
}

func TestScoreSurvivalOnly(t *testing.T) {
	s := NewScore(testScoring())
	for i := 0; i < 300; i++ {
		s.Tick(1.0 / 60.0)
	}

	if got := s.Finalize(); math.Abs(got-5.0) > 1e-9 {
		t.Errorf("Finalize() = %v, expected 5.0", got)
	}
}

func TestScoreFirstGraze(t *testing.T) {
	s := NewScore(testScoring())

	bonus := s.OnGraze()
	if bonus != 12 {
		t.Errorf("bonus = %v, expected 12", bonus)
	}
	if math.Abs(s.Mult-1.22) > 1e-9 {
		t.Errorf("Mult = %v, expected 1.22", s.Mult)
	}
	if s.Points != 12 {
		t.Errorf("Points = %v, expected 12", s.Points)
	}
	if s.Grazes != 1 {
		t.Errorf("Grazes = %d, expected 1", s.Grazes)
	}
}

func TestScoreBonusUsesPreIncrementMult(t *testing.T) {
	s := NewScore(testScoring())
	s.OnGraze()

	bonus := s.OnGraze()
	if math.Abs(bonus-12*1.22) > 1e-9 {
		t.Errorf("second bonus = %v, expected %v", bonus, 12*1.22)
	}
}

func TestScoreMultBounds(t *testing.T) {
	s := NewScore(testScoring())
	for i := 0; i < 100; i++ {
		s.OnGraze()
		if s.Mult > 6.0 {
			t.Fatalf("Mult = %v exceeds cap", s.Mult)
		}
	}
	if s.Mult != 6.0 {
		t.Errorf("Mult = %v, expected cap 6.0", s.Mult)
	}

	prev := s.Mult
	for i := 0; i < 400; i++ {
		s.Tick(0.05)
		if s.Mult < 1.0 {
			t.Fatalf("Mult = %v below floor", s.Mult)
		}
		if s.Mult > prev {
			t.Fatalf("Mult grew during decay: %v -> %v", prev, s.Mult)
		}
		prev = s.Mult
	}
	if s.Mult != 1.0 {
		t.Errorf("Mult = %v, expected decay to 1.0", s.Mult)
	}
}

func TestScoreDecayRate(t *testing.T) {
	s := NewScore(testScoring())
	s.Mult = 3.0
	s.Tick(1.0)
	if math.Abs(s.Mult-2.65) > 1e-9 {
		t.Errorf("Mult = %v, expected 2.65 after 1s", s.Mult)
	}
}

func TestScoreFinalizeIsPure(t *testing.T) {
	s := NewScore(testScoring())
	s.Tick(2.5)
	s.OnGraze()

	first := s.Finalize()
	second := s.Finalize()
	if first != second {
		t.Errorf("Finalize() not idempotent: %v then %v", first, second)
	}
	if math.Abs(first-14.5) > 1e-9 {
		t.Errorf("Finalize() = %v, expected 14.5", first)
	}
}

func TestScoreIgnoresNonPositiveDT(t *testing.T) {
	s := NewScore(testScoring())
	s.Mult = 2
	s.Tick(0)
	s.Tick(-1)
	if s.Elapsed != 0 || s.Mult != 2 {
		t.Errorf("state changed on non-positive dt: elapsed=%v mult=%v", s.Elapsed, s.Mult)
	}
}
