package alarm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testCadence(on, off, tone int) Cadence {
	return Cadence{PeriodMS: on + off, ToneHz: tone, OnMS: on, OffMS: off}
}

func newTestDriver() (*Driver, *Panel) {
	p := NewPanel()
	return NewDriver(p.Ready(), p.Alarm(), p.Tone()), p
}

func TestDriverStartsReady(t *testing.T) {
	_, panel := newTestDriver()

	ready, alarmOn, toneHz := panel.State()
	assert.True(t, ready)
	assert.False(t, alarmOn)
	assert.Zero(t, toneHz)
}

func TestDriverEntersFreshOnPhase(t *testing.T) {
	d, panel := newTestDriver()
	t0 := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	d.Tick(t0, true, testCadence(30, 70, 440))

	ready, alarmOn, toneHz := panel.State()
	assert.False(t, ready)
	assert.True(t, alarmOn)
	assert.Equal(t, 440, toneHz)

	on, active := d.Phase()
	assert.True(t, on)
	assert.True(t, active)
}

func TestDriverOnBoundaryIsInclusive(t *testing.T) {
	d, panel := newTestDriver()
	t0 := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	cad := testCadence(30, 70, 440)

	d.Tick(t0, true, cad)
	d.Tick(t0.Add(29*time.Millisecond), true, cad)
	_, alarmOn, _ := panel.State()
	assert.True(t, alarmOn, "one ms short of the boundary")

	d.Tick(t0.Add(30*time.Millisecond), true, cad)
	_, alarmOn, toneHz := panel.State()
	assert.False(t, alarmOn, "elapsed == on-duration must flip to OFF")
	assert.Zero(t, toneHz)
}

func TestDriverOffToOnUsesCurrentTickCadence(t *testing.T) {
	d, panel := newTestDriver()
	t0 := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	d.Tick(t0, true, testCadence(30, 70, 440))
	tOff := t0.Add(30 * time.Millisecond)
	d.Tick(tOff, true, testCadence(30, 70, 440))

	// The target moved closer while the outputs were dark; the next ON
	// phase sounds at the newer, higher pitch.
	d.Tick(tOff.Add(70*time.Millisecond), true, testCadence(20, 40, 880))

	_, alarmOn, toneHz := panel.State()
	assert.True(t, alarmOn)
	assert.Equal(t, 880, toneHz)
}

func TestDriverPhaseDurationIsLatched(t *testing.T) {
	d, panel := newTestDriver()
	t0 := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	d.Tick(t0, true, testCadence(100, 100, 440))

	// A mid-phase cadence change must not shorten the running ON phase.
	d.Tick(t0.Add(50*time.Millisecond), true, testCadence(10, 10, 880))
	_, alarmOn, _ := panel.State()
	assert.True(t, alarmOn, "latched 100ms ON phase still running")

	d.Tick(t0.Add(100*time.Millisecond), true, testCadence(10, 10, 880))
	_, alarmOn, _ = panel.State()
	assert.False(t, alarmOn)
}

func TestDriverHardResetOnLeavingZone(t *testing.T) {
	d, panel := newTestDriver()
	t0 := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	cad := testCadence(30, 70, 440)

	// Run into the OFF phase, then leave the zone.
	d.Tick(t0, true, cad)
	d.Tick(t0.Add(30*time.Millisecond), true, cad)
	d.Tick(t0.Add(40*time.Millisecond), false, cad)

	ready, alarmOn, toneHz := panel.State()
	assert.True(t, ready)
	assert.False(t, alarmOn)
	assert.Zero(t, toneHz)

	_, active := d.Phase()
	assert.False(t, active)

	// Re-entering always starts a fresh ON phase, never resumes mid-OFF.
	d.Tick(t0.Add(50*time.Millisecond), true, cad)
	_, alarmOn, _ = panel.State()
	assert.True(t, alarmOn)
	on, active := d.Phase()
	assert.True(t, on)
	assert.True(t, active)
}
