package sensor

import (
	"math"
	"math/rand"

	"sonarguard/internal/config"
)

// Sim generates fake distance readings for demo mode: a slow sinusoidal
// approach and retreat through the attention zone, with per-reading noise
// and occasional echo dropouts, so every alarm state gets exercised without
// hardware attached.
type Sim struct {
	center    float64 // midpoint of the excursion (mm)
	amplitude float64 // half the excursion (mm)
	step      float64 // phase advance per reading (radians)
	t         float64
}

// NewSim creates a simulated rangefinder sweeping across both zone
// boundaries.
func NewSim() *Sim {
	mid := float64(config.NearDistanceMM+config.FarDistanceMM) / 2
	return &Sim{
		center:    mid,
		amplitude: float64(config.FarDistanceMM) - mid + 400,
		step:      0.02,
		t:         rand.Float64() * 2 * math.Pi,
	}
}

// Measure returns the next simulated reading, or Invalid for a simulated
// dropout (~3% of readings).
func (s *Sim) Measure() int {
	s.t += s.step

	if rand.Float64() < 0.03 {
		return Invalid
	}

	mm := s.center + s.amplitude*math.Sin(s.t) + (rand.Float64()-0.5)*30
	if mm < 20 {
		mm = 20 // sensor dead zone, never negative
	}
	return Bounded(int(math.Round(mm)), config.MaxDistanceMM)
}
