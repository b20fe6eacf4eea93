package alarm

import "math"

// Cadence holds the timing and pitch parameters for one alarm cycle.
// Invariant: OnMS + OffMS == PeriodMS.
type Cadence struct {
	PeriodMS int
	ToneHz   int
	OnMS     int
	OffMS    int
}

// Mapper converts a smoothed distance into cadence parameters. Proximity is
// normalized between the Far and Near boundaries and shaped with cubic
// easing before interpolating period and tone.
type Mapper struct {
	FarMM       int
	NearMM      int
	MaxPeriodMS int
	MinPeriodMS int
	ToneMinHz   int
	ToneMaxHz   int
	OnFraction  float64
}

// Compute maps a smoothed distance and the in-zone decision to a cadence.
// Out of the zone it returns inert defaults (slowest period, lowest tone);
// the driver never applies these to the outputs. The caller guarantees
// inRange is false whenever mm is invalid, so the in-zone branch only ever
// sees real distances.
func (m Mapper) Compute(mm int, inRange bool) Cadence {
	if !inRange {
		return m.split(m.MaxPeriodMS, m.ToneMinHz)
	}

	ease := m.Ease(mm)
	period := int(math.Round(float64(m.MaxPeriodMS) + ease*float64(m.MinPeriodMS-m.MaxPeriodMS)))
	tone := int(math.Round(float64(m.ToneMinHz) + ease*float64(m.ToneMaxHz-m.ToneMinHz)))
	return m.split(period, tone)
}

// Ease returns the cubic-eased proximity for a distance: 0 at the Far
// boundary, 1 at Near or closer. The cube keeps the cadence nearly flat
// through most of the approach and ramps steeply over the last stretch,
// so the alarm builds tension instead of scaling linearly.
func (m Mapper) Ease(mm int) float64 {
	norm := float64(m.FarMM-mm) / float64(m.FarMM-m.NearMM)
	if norm < 0 {
		norm = 0
	}
	if norm > 1 {
		norm = 1
	}
	return norm * norm * norm
}

func (m Mapper) split(period, tone int) Cadence {
	on := int(math.Round(float64(period) * m.OnFraction))
	return Cadence{
		PeriodMS: period,
		ToneHz:   tone,
		OnMS:     on,
		OffMS:    period - on,
	}
}
