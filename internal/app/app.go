package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"sonarguard/internal/alarm"
	"sonarguard/internal/config"
	"sonarguard/internal/sensor"
	"sonarguard/internal/ui"
)

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	loop   *alarm.Loop
	panel  *alarm.Panel
	window *sensor.Window
	cancel context.CancelFunc
}

// Model is the root Bubble Tea model for the dashboard.
type Model struct {
	width  int
	height int

	source string // sensor source label for the menu bar
	mapper alarm.Mapper
	shared *shared

	// Latest tick snapshot
	last    alarm.Status
	ticks   int
	log     []string
	history []int
}

// New creates a dashboard model over an already-wired loop. source labels
// the sensor in the menu bar ("hc-sr04", "demo", "replay").
func New(loop *alarm.Loop, panel *alarm.Panel, window *sensor.Window, mapper alarm.Mapper, source string) Model {
	return Model{
		source: source,
		mapper: mapper,
		shared: &shared{
			loop:   loop,
			panel:  panel,
			window: window,
		},
		last: alarm.Status{DistanceMM: sensor.Invalid, PeriodMS: mapper.MaxPeriodMS, ToneHz: mapper.ToneMinHz},
	}
}

// StartLoop connects the control loop's status feed to the program and
// launches the loop. Must be called before p.Run().
func (m *Model) StartLoop(p *tea.Program) {
	m.shared.loop.Notify(func(st alarm.Status) {
		p.Send(StatusMsg(st))
	})

	ctx, cancel := context.WithCancel(context.Background())
	m.shared.cancel = cancel
	go m.shared.loop.Run(ctx)
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m, tickCmd()

	case StatusMsg:
		m.last = alarm.Status(msg)
		m.ticks++
		m.log = append(m.log, m.last.String())
		if len(m.log) > config.LogLines {
			m.log = m.log[len(m.log)-config.LogLines:]
		}
		m.history = append(m.history, m.last.DistanceMM)
		if len(m.history) > config.SparkSlots {
			m.history = m.history[len(m.history)-config.SparkSlots:]
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		if m.shared.cancel != nil {
			m.shared.cancel()
		}
		return m, tea.Quit

	case "a", "A":
		m.shared.loop.Arm(!m.shared.loop.Armed())
	}

	return m, nil
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing sonarguard..."
	}

	menuH := 1
	statusH := 1
	bodyH := m.height - menuH - statusH
	if bodyH < 5 {
		bodyH = 5
	}

	gaugeW := m.width * 3 / 5
	if gaugeW < 34 {
		gaugeW = 34
	}
	detailW := m.width - gaugeW
	if detailW < 24 {
		detailW = 24
		gaugeW = m.width - detailW
	}

	armed := m.shared.loop.Armed()
	ready, alarmOn, toneHz := m.shared.panel.State()

	ease := 0.0
	if m.last.InRange {
		ease = m.mapper.Ease(m.last.DistanceMM)
	}
	cad := m.mapper.Compute(m.last.DistanceMM, m.last.InRange)

	menuBar := ui.RenderMenuBar(m.width, m.source, armed)
	gaugePanel := ui.RenderGaugePanel(gaugeW, bodyH, m.last, ease, ready, alarmOn, toneHz,
		m.mapper.FarMM, m.mapper.NearMM)
	detailPanel := ui.RenderDetailPanel(detailW, bodyH, cad, m.shared.window.Values(), m.history, m.log)
	statusBar := ui.RenderStatusBar(m.width, armed, m.ticks, m.mapper.FarMM, m.mapper.NearMM)

	return ui.ComposeLayout(menuBar, gaugePanel, detailPanel, statusBar, m.width)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(config.TargetFPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
