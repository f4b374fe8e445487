package meterui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultInterval is the refresh period of the meter view.
const DefaultInterval = 50 * time.Millisecond

// Actions are invoked when the user toggles a control.
type Actions struct {
	Mute   func(muted bool)
	Ducker func(enabled bool)
}

type tickMsg time.Time

// Model is the Bubbletea model for the live meter view.
type Model struct {
	meter    *Meter
	actions  Actions
	interval time.Duration

	Levels  Levels
	Muted   bool
	Ducking bool
	Width   int

	// Title is shown above the meters.
	Title string
}

// NewModel creates a model polling meter. ducking is the initial ducker
// state shown in the footer.
func NewModel(meter *Meter, actions Actions, ducking bool) Model {
	return Model{
		meter:    meter,
		actions:  actions,
		interval: DefaultInterval,
		Levels:   meter.Load(),
		Ducking:  ducking,
		Width:    60,
		Title:    "micagc",
	}
}

// Init starts the refresh ticker.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles key presses, resizes and refresh ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "m":
			m.Muted = !m.Muted
			if m.actions.Mute != nil {
				m.actions.Mute(m.Muted)
			}
		case "d":
			m.Ducking = !m.Ducking
			if m.actions.Ducker != nil {
				m.actions.Ducker(m.Ducking)
			}
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width

	case tickMsg:
		m.Levels = m.meter.Load()
		return m, m.tick()
	}

	return m, nil
}

// View renders the meters.
func (m Model) View() string {
	return renderView(m)
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
