package sensor

import (
	"math"
	"time"
)

// Invalid marks a failed measurement: no echo before the timeout, or a
// converted distance outside the sane range.
const Invalid = -1

// Speed of sound in mm/µs at sea level, ~21°C.
const speedOfSound = 0.343

// Rangefinder produces one distance measurement per call.
type Rangefinder interface {
	// Measure returns a distance in whole millimeters, or Invalid.
	Measure() int
}

// TimeToMillimeters converts an echo round-trip time to a one-way distance.
// Formula: d = elapsed × speedOfSound / 2, rounded to the nearest millimeter.
func TimeToMillimeters(elapsed time.Duration) int {
	us := float64(elapsed.Nanoseconds()) / 1000.0
	return int(math.Round(us * speedOfSound / 2))
}

// Bounded clamps a converted distance to the valid range, returning Invalid
// for readings that cannot correspond to a real target.
func Bounded(mm, maxMM int) int {
	if mm < 0 || mm > maxMM {
		return Invalid
	}
	return mm
}
