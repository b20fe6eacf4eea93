package alarm

import "sync"

// Indicator is a binary on/off output such as an LED.
type Indicator interface {
	Set(on bool)
}

// Tone is an audio output with a settable pitch.
type Tone interface {
	Start(hz int)
	Stop()
}

// Panel is an in-memory output set used in demo mode and tests. The
// dashboard reads it to draw the virtual lamps and tone readout; the driver
// goroutine writes it, so access is guarded.
type Panel struct {
	mu     sync.Mutex
	ready  bool
	alarm  bool
	toneHz int // 0 when silent
}

// NewPanel creates a panel with everything off.
func NewPanel() *Panel {
	return &Panel{}
}

// Ready is the ready-lamp indicator.
func (p *Panel) Ready() Indicator { return readyLamp{p} }

// Alarm is the alarm-lamp indicator.
func (p *Panel) Alarm() Indicator { return alarmLamp{p} }

// Tone is the virtual buzzer.
func (p *Panel) Tone() Tone { return panelTone{p} }

// State returns a consistent snapshot of the panel.
func (p *Panel) State() (ready, alarm bool, toneHz int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready, p.alarm, p.toneHz
}

type readyLamp struct{ p *Panel }

func (l readyLamp) Set(on bool) {
	l.p.mu.Lock()
	l.p.ready = on
	l.p.mu.Unlock()
}

type alarmLamp struct{ p *Panel }

func (l alarmLamp) Set(on bool) {
	l.p.mu.Lock()
	l.p.alarm = on
	l.p.mu.Unlock()
}

// TeeIndicator fans writes out to several indicators, so the dashboard's
// virtual lamps can mirror the real GPIO outputs.
func TeeIndicator(outs ...Indicator) Indicator { return multiIndicator(outs) }

// TeeTone fans writes out to several tone outputs.
func TeeTone(outs ...Tone) Tone { return multiTone(outs) }

type multiIndicator []Indicator

func (m multiIndicator) Set(on bool) {
	for _, o := range m {
		o.Set(on)
	}
}

type multiTone []Tone

func (m multiTone) Start(hz int) {
	for _, o := range m {
		o.Start(hz)
	}
}

func (m multiTone) Stop() {
	for _, o := range m {
		o.Stop()
	}
}

type panelTone struct{ p *Panel }

func (t panelTone) Start(hz int) {
	t.p.mu.Lock()
	t.p.toneHz = hz
	t.p.mu.Unlock()
}

func (t panelTone) Stop() {
	t.p.mu.Lock()
	t.p.toneHz = 0
	t.p.mu.Unlock()
}
