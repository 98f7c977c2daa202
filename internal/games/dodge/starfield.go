package dodge

import "math/rand"

// starLayer describes one parallax layer of the background.
type starLayer struct {
	count int
	speed float64
}

var starLayers = []starLayer{
	{count: 38, speed: 35},
	{count: 26, speed: 90},
	{count: 18, speed: 145},
}

// Star is a background dot. Layer 0 is farthest and slowest.
type Star struct {
	X, Y  float64
	Layer int
}

// Starfield is purely decorative and keeps scrolling in every mode.
// It owns its RNG so it never perturbs gameplay randomness.
type Starfield struct {
	stars []Star
	w, h  float64
	rng   *rand.Rand
}

// NewStarfield scatters stars over a w x h field.
func NewStarfield(w, h float64, seed int64) *Starfield {
	sf := &Starfield{w: w, h: h, rng: rand.New(rand.NewSource(seed))}
	for layer, l := range starLayers {
		for i := 0; i < l.count; i++ {
			sf.stars = append(sf.stars, Star{
				X:     sf.rng.Float64() * w,
				Y:     sf.rng.Float64() * h,
				Layer: layer,
			})
		}
	}
	return sf
}

// Update scrolls stars down, wrapping them to a random column at the top.
func (sf *Starfield) Update(dt float64) {
	if dt <= 0 {
		return
	}
	for i := range sf.stars {
		s := &sf.stars[i]
		s.Y += starLayers[s.Layer].speed * dt
		if s.Y > sf.h {
			s.Y -= sf.h
			s.X = sf.rng.Float64() * sf.w
		}
	}
}

// Stars returns the stars. The slice is owned by the starfield.
func (sf *Starfield) Stars() []Star {
	return sf.stars
}
