package fx

import "math/rand"

// Star is one point of the scrolling background
type Star struct {
	X, Y  float64
	Speed float64 // pixels per tick
	Size  float64
}

// Starfield scrolls stars down the screen, wrapping them back to the top.
// Faster stars are drawn larger for a simple parallax effect.
type Starfield struct {
	Stars  []Star
	width  float64
	height float64
	rng    *rand.Rand
}

// NewStarfield scatters count stars over a width x height area
func NewStarfield(rng *rand.Rand, count int, width, height float64) *Starfield {
	s := &Starfield{
		Stars:  make([]Star, count),
		width:  width,
		height: height,
		rng:    rng,
	}
	for i := range s.Stars {
		speed := 0.3 + rng.Float64()*1.7
		s.Stars[i] = Star{
			X:     rng.Float64() * width,
			Y:     rng.Float64() * height,
			Speed: speed,
			Size:  0.5 + speed*0.6,
		}
	}
	return s
}

// Update moves every star one tick
func (s *Starfield) Update() {
	for i := range s.Stars {
		star := &s.Stars[i]
		star.Y += star.Speed
		if star.Y > s.height {
			star.Y -= s.height
			star.X = s.rng.Float64() * s.width
		}
	}
}
