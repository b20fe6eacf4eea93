package alarm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testMapper() Mapper {
	return Mapper{
		FarMM:       1500,
		NearMM:      150,
		MaxPeriodMS: 1000,
		MinPeriodMS: 100,
		ToneMinHz:   220,
		ToneMaxHz:   1760,
		OnFraction:  0.30,
	}
}

func TestComputeAtFarBoundary(t *testing.T) {
	m := testMapper()
	cad := m.Compute(m.FarMM, true)

	assert.Equal(t, m.MaxPeriodMS, cad.PeriodMS)
	assert.Equal(t, m.ToneMinHz, cad.ToneHz)
}

func TestComputeAtNearBoundaryAndCloser(t *testing.T) {
	m := testMapper()

	for _, mm := range []int{m.NearMM, 100, 0} {
		cad := m.Compute(mm, true)
		assert.Equal(t, m.MinPeriodMS, cad.PeriodMS, "mm=%d", mm)
		assert.Equal(t, m.ToneMaxHz, cad.ToneHz, "mm=%d", mm)
	}
}

func TestComputeMonotonicRamp(t *testing.T) {
	m := testMapper()

	prev := m.Compute(m.FarMM, true)
	for mm := m.FarMM - 1; mm >= m.NearMM; mm-- {
		cad := m.Compute(mm, true)
		assert.LessOrEqual(t, cad.PeriodMS, prev.PeriodMS, "period must not rise as target closes (mm=%d)", mm)
		assert.GreaterOrEqual(t, cad.ToneHz, prev.ToneHz, "tone must not fall as target closes (mm=%d)", mm)
		prev = cad
	}
}

func TestComputeOnOffSumsToPeriod(t *testing.T) {
	m := testMapper()

	for mm := 0; mm <= 2000; mm += 7 {
		cad := m.Compute(mm, true)
		assert.Equal(t, cad.PeriodMS, cad.OnMS+cad.OffMS, "mm=%d", mm)
		assert.Equal(t, cad.OnMS, roundFraction(cad.PeriodMS, m.OnFraction), "mm=%d", mm)
	}
}

func TestComputeRoundingSplit(t *testing.T) {
	// period=111 with on-fraction 0.30 must split 33/78.
	m := testMapper()
	m.MaxPeriodMS = 111
	m.MinPeriodMS = 111

	cad := m.Compute(700, true)
	assert.Equal(t, 111, cad.PeriodMS)
	assert.Equal(t, 33, cad.OnMS)
	assert.Equal(t, 78, cad.OffMS)
}

func TestComputeOutOfZoneInertDefaults(t *testing.T) {
	m := testMapper()
	cad := m.Compute(2000, false)

	assert.Equal(t, m.MaxPeriodMS, cad.PeriodMS)
	assert.Equal(t, m.ToneMinHz, cad.ToneHz)
	assert.Equal(t, cad.PeriodMS, cad.OnMS+cad.OffMS)
}

func TestEaseShape(t *testing.T) {
	m := testMapper()

	assert.Equal(t, 0.0, m.Ease(m.FarMM))
	assert.Equal(t, 1.0, m.Ease(m.NearMM))
	assert.Equal(t, 0.0, m.Ease(m.FarMM+500), "clamped beyond FAR")
	assert.Equal(t, 1.0, m.Ease(0), "clamped inside NEAR")

	// Cubic easing: the midpoint sits well below linear.
	mid := m.Ease((m.FarMM + m.NearMM) / 2)
	assert.InDelta(t, 0.125, mid, 0.01)
}

func roundFraction(period int, frac float64) int {
	return int(float64(period)*frac + 0.5)
}
