package alarm

import "time"

// Driver is the two-phase output state machine. Out of the attention zone it
// shows a steady ready lamp; in the zone it alternates ON (alarm lamp lit,
// tone sounding) and OFF phases timed against the wall clock, independent of
// the loop period.
type Driver struct {
	ready Indicator
	alarm Indicator
	tone  Tone

	// Phase state. A zero phaseStart means no cycle is running; re-entering
	// the zone always begins a fresh ON phase rather than resuming a stale
	// one. phaseDur is latched when the phase begins, so cadence changes
	// between ticks only take effect at the next phase boundary.
	phaseStart time.Time
	phaseOn    bool
	phaseDur   time.Duration
}

// NewDriver creates a driver over the given outputs, starting in READY.
func NewDriver(ready, alarm Indicator, tone Tone) *Driver {
	d := &Driver{ready: ready, alarm: alarm, tone: tone}
	d.reset()
	return d
}

// Tick evaluates one transition given the current wall-clock time, the
// in-zone decision, and the cadence computed for this tick. Total over all
// (inRange, phase) combinations; there is no error path.
func (d *Driver) Tick(now time.Time, inRange bool, cad Cadence) {
	if !inRange {
		d.reset()
		return
	}

	if d.phaseStart.IsZero() {
		d.ready.Set(false)
		d.enterOn(now, cad)
		return
	}

	if now.Sub(d.phaseStart) < d.phaseDur {
		return
	}

	if d.phaseOn {
		d.enterOff(now, cad)
	} else {
		d.enterOn(now, cad)
	}
}

// Phase reports the current phase: active is false in READY.
func (d *Driver) Phase() (on, active bool) {
	return d.phaseOn, !d.phaseStart.IsZero()
}

func (d *Driver) reset() {
	d.phaseStart = time.Time{}
	d.phaseOn = false
	d.phaseDur = 0
	d.alarm.Set(false)
	d.tone.Stop()
	d.ready.Set(true)
}

func (d *Driver) enterOn(now time.Time, cad Cadence) {
	d.phaseStart = now
	d.phaseOn = true
	d.phaseDur = time.Duration(cad.OnMS) * time.Millisecond
	d.alarm.Set(true)
	d.tone.Start(cad.ToneHz)
}

func (d *Driver) enterOff(now time.Time, cad Cadence) {
	d.phaseStart = now
	d.phaseOn = false
	d.phaseDur = time.Duration(cad.OffMS) * time.Millisecond
	d.alarm.Set(false)
	d.tone.Stop()
}
