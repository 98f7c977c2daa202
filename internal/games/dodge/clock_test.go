package dodge

import (
	"testing"
	"time"
)

func TestStepperFirstTickIsZero(t *testing.T) {
	s := NewStepper(0.05)
	if dt := s.Tick(time.Unix(100, 0)); dt != 0 {
		t.Errorf("first Tick() = %v, expected 0", dt)
	}
}

func TestStepperClamp(t *testing.T) {
	base := time.Unix(100, 0)

	tests := []struct {
		name     string
		gap      time.Duration
		expected float64
	}{
		{"normal frame", 16 * time.Millisecond, 0.016},
		{"exact clamp", 50 * time.Millisecond, 0.05},
		{"long stall", 3 * time.Second, 0.05},
		{"clock went backwards", -time.Second, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewStepper(0.05)
			s.Tick(base)
			dt := s.Tick(base.Add(tc.gap))
			if diff := dt - tc.expected; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Tick() = %v, expected %v", dt, tc.expected)
			}
		})
	}
}

func TestStepperNeverExceedsMax(t *testing.T) {
	s := NewStepper(0.05)
	now := time.Unix(0, 0)
	s.Tick(now)
	for i := 0; i < 100; i++ {
		now = now.Add(time.Duration(i*7) * time.Millisecond)
		if dt := s.Tick(now); dt < 0 || dt > 0.05 {
			t.Fatalf("Tick() = %v, outside [0, 0.05]", dt)
		}
	}
}

func TestStepperReset(t *testing.T) {
	s := NewStepper(0.05)
	s.Tick(time.Unix(0, 0))
	s.Reset()
	if dt := s.Tick(time.Unix(10, 0)); dt != 0 {
		t.Errorf("Tick() after Reset = %v, expected 0", dt)
	}
}

func TestStepperDefaultMax(t *testing.T) {
	if got := NewStepper(0).MaxDT(); got != DefaultMaxDT {
		t.Errorf("MaxDT() = %v, expected %v", got, DefaultMaxDT)
	}
}
