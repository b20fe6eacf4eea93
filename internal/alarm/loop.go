package alarm

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"sonarguard/internal/config"
	"sonarguard/internal/sensor"
)

// Status is the observable output of one loop tick. Field order and labels
// in the line format are a contract for any tooling that parses the stream.
type Status struct {
	DistanceMM int // smoothed distance, sensor.Invalid when unknown
	InRange    bool
	PeriodMS   int
	ToneHz     int
}

// String renders the status line: mm=<int|-1>  inRange=<0|1>  periodMs=<int>  toneHz=<int>
func (s Status) String() string {
	inRange := 0
	if s.InRange {
		inRange = 1
	}
	return fmt.Sprintf("mm=%d  inRange=%d  periodMs=%d  toneHz=%d",
		s.DistanceMM, inRange, s.PeriodMS, s.ToneHz)
}

// Loop runs the sense-smooth-map-drive cycle: one measurement per tick,
// smoothed through the window, mapped to a cadence, applied by the driver,
// then reported. Phase timing uses wall-clock deltas, so extra per-tick
// latency never skews the alarm cadence.
type Loop struct {
	rangefinder sensor.Rangefinder
	window      *sensor.Window
	mapper      Mapper
	driver      *Driver

	out      io.Writer    // status stream, nil to disable
	notify   func(Status) // optional push to an observer, nil to disable
	interval time.Duration

	disarmed atomic.Bool
}

// NewLoop wires a control loop. out receives one status line per tick and
// may be nil.
func NewLoop(rf sensor.Rangefinder, window *sensor.Window, mapper Mapper, driver *Driver, out io.Writer) *Loop {
	return &Loop{
		rangefinder: rf,
		window:      window,
		mapper:      mapper,
		driver:      driver,
		out:         out,
		interval:    config.TickInterval,
	}
}

// Notify registers an observer that receives each tick's status in addition
// to the stream writer. Must be set before Run.
func (l *Loop) Notify(fn func(Status)) {
	l.notify = fn
}

// Arm enables or disables the alarm. While disarmed, measurement and
// reporting continue but the out-of-zone path is forced, holding the driver
// in READY.
func (l *Loop) Arm(on bool) {
	l.disarmed.Store(!on)
}

// Armed reports whether the alarm is armed.
func (l *Loop) Armed() bool {
	return !l.disarmed.Load()
}

// Tick runs one cycle at the given wall-clock time and returns its status.
func (l *Loop) Tick(now time.Time) Status {
	smoothed := l.window.Push(l.rangefinder.Measure())

	inRange := smoothed >= 0 && smoothed <= l.mapper.FarMM && !l.disarmed.Load()
	cad := l.mapper.Compute(smoothed, inRange)
	l.driver.Tick(now, inRange, cad)

	st := Status{
		DistanceMM: smoothed,
		InRange:    inRange,
		PeriodMS:   cad.PeriodMS,
		ToneHz:     cad.ToneHz,
	}

	if l.out != nil {
		fmt.Fprintln(l.out, st)
	}
	if l.notify != nil {
		l.notify(st)
	}
	return st
}

// Run ticks until ctx is cancelled. The inter-tick delay is a reporting
// cadence, not part of phase timing.
func (l *Loop) Run(ctx context.Context) {
	for {
		l.Tick(time.Now())

		select {
		case <-ctx.Done():
			return
		case <-time.After(l.interval):
		}
	}
}
