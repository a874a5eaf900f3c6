// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package tui renders the live bandwidth dashboard. It owns the terminal;
// all engine state arrives as a Snapshot once per tick.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"grimm.is/wiretop/internal/engine"
)

// Backend produces one aggregated snapshot per tick. The engine (wrapped
// with whatever side publishers main wires in) satisfies this.
type Backend interface {
	Tick() engine.Snapshot
}

// TickMsg drives the consumer pass.
type TickMsg time.Time

// Model is the main application state.
type Model struct {
	Backend   Backend
	Interface string

	Dashboard DashboardModel

	tick   time.Duration
	Width  int
	Height int
}

// NewModel creates the initial model. interval is the consumer tick.
func NewModel(backend Backend, iface string, interval time.Duration) Model {
	return Model{
		Backend:   backend,
		Interface: iface,
		Dashboard: NewDashboardModel(iface),
		tick:      interval,
	}
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Init schedules the first tick.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		snap := m.Backend.Tick()
		m.Dashboard = m.Dashboard.SetSnapshot(snap, time.Time(msg))
		return m, m.tickCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Dashboard = m.Dashboard.SetSize(msg.Width, msg.Height)
	}

	var cmd tea.Cmd
	m.Dashboard, cmd = m.Dashboard.Update(msg)
	return m, cmd
}

// View renders the application.
func (m Model) View() string {
	return StyleApp.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.Dashboard.View(),
		StyleSubtitle.Render("q: quit"),
	))
}
