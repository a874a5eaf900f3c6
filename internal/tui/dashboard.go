// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"grimm.is/wiretop/internal/engine"
	"grimm.is/wiretop/internal/netutil"
)

const (
	chartHeight = 4
	maxTalkers  = 20
)

// DashboardModel is the single-screen HUD: rx/tx charts, totals, and the
// top-talkers table.
type DashboardModel struct {
	Interface   string
	Snapshot    *engine.Snapshot
	Table       table.Model
	LastUpdated time.Time
	Width       int
	Height      int
}

func NewDashboardModel(iface string) DashboardModel {
	columns := []table.Column{
		{Title: "IP Address", Width: 18},
		{Title: "Avg Bandwidth (60s)", Width: 22},
		{Title: "Activity", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorDeep).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(ColorIce).
		Background(ColorDeep).
		Bold(false)
	t.SetStyles(s)

	return DashboardModel{
		Interface: iface,
		Table:     t,
	}
}

// SetSnapshot stores the tick's snapshot and rebuilds the talker rows.
func (m DashboardModel) SetSnapshot(snap engine.Snapshot, at time.Time) DashboardModel {
	m.Snapshot = &snap
	m.LastUpdated = at

	talkers := snap.Talkers
	if len(talkers) > maxTalkers {
		talkers = talkers[:maxTalkers]
	}
	rows := make([]table.Row, len(talkers))
	for i, tk := range talkers {
		rows[i] = table.Row{
			tk.Addr.String(),
			netutil.FormatBits(tk.Rate),
			activityClass(tk.Rate),
		}
	}
	m.Table.SetRows(rows)
	return m
}

// SetSize adapts the chart width and table height to the terminal.
func (m DashboardModel) SetSize(w, h int) DashboardModel {
	m.Width = w
	m.Height = h

	tableHeight := h - 2*(chartHeight+4) - 4
	if tableHeight < 4 {
		tableHeight = 4
	}
	if tableHeight > maxTalkers+1 {
		tableHeight = maxTalkers + 1
	}
	m.Table.SetHeight(tableHeight)
	return m
}

func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	var cmd tea.Cmd
	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m DashboardModel) View() string {
	header := StyleTopBar.Render(fmt.Sprintf(" wiretop  net [%s] ", m.Interface))

	if m.Snapshot == nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			header,
			StyleSubtitle.Render("Waiting for first sample..."),
		)
	}
	s := m.Snapshot

	chartWidth := m.Width - 32
	if chartWidth < 20 {
		chartWidth = 20
	}

	// Short terminals get one-line sparklines instead of full charts.
	if m.Height > 0 && m.Height < 18 {
		rxLine := fmt.Sprintf("%s %s %s",
			StyleRx.Render("▼"), StyleRx.Render(sparkline(s.RxHistory, chartWidth)),
			StyleValue.Render(netutil.FormatBits(s.RxRate)))
		txLine := fmt.Sprintf("%s %s %s",
			StyleTx.Render("▲"), StyleTx.Render(sparkline(s.TxHistory, chartWidth)),
			StyleValue.Render(netutil.FormatBits(s.TxRate)))
		return lipgloss.JoinVertical(lipgloss.Left,
			header,
			StyleCard.Render(lipgloss.JoinVertical(lipgloss.Left, rxLine, txLine)),
			m.Table.View(),
		)
	}

	rxPanel := lipgloss.JoinHorizontal(lipgloss.Top,
		StyleRx.Render(chart(s.RxHistory, chartWidth, chartHeight)),
		"  ",
		statsColumn("▼ Download", s.RxRate, s.PeakRxRate, s.TotalRx, StyleRx),
	)
	txPanel := lipgloss.JoinHorizontal(lipgloss.Top,
		StyleTx.Render(chart(s.TxHistory, chartWidth, chartHeight)),
		"  ",
		statsColumn("▲ Upload", s.TxRate, s.PeakTxRate, s.TotalTx, StyleTx),
	)

	netBlock := StyleCard.Render(lipgloss.JoinVertical(lipgloss.Left, rxPanel, "", txPanel))

	talkersBlock := StyleCard.Render(lipgloss.JoinVertical(lipgloss.Left,
		StyleTitle.Render("Local Network Users"),
		m.Table.View(),
	))

	footer := StyleSubtitle.Render(fmt.Sprintf("Last updated: %s", m.LastUpdated.Format("15:04:05")))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		netBlock,
		talkersBlock,
		footer,
	)
}

func statsColumn(title string, rate, peak float64, total uint64, style lipgloss.Style) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		style.Render(title),
		StyleValue.Render(netutil.FormatBits(rate)),
		StyleSubtitle.Render("Top: ")+netutil.FormatBits(peak),
		StyleSubtitle.Render("Tot: ")+netutil.FormatBytes(total),
	)
}

// activityClass buckets a smoothed rate the way the table colors it.
func activityClass(bytesPerSec float64) string {
	switch {
	case bytesPerSec > 1_000_000:
		return StyleStatusBad.Render("high")
	case bytesPerSec > 10_000:
		return StyleStatusWarn.Render("medium")
	default:
		return StyleStatusGood.Render("low")
	}
}

// chart renders per-tick samples as vertical block columns, newest at the
// right edge, Y axis scaled to the window maximum.
func chart(data []uint64, width, height int) string {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	// Show the most recent samples that fit.
	if len(data) > width {
		data = data[len(data)-width:]
	}

	var max uint64 = 1
	for _, v := range data {
		if v > max {
			max = v
		}
	}

	// Each column is height cells of 8 sub-steps each.
	steps := height * 8
	ramp := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇'}

	rows := make([]strings.Builder, height)
	for _, v := range data {
		filled := int(float64(v) / float64(max) * float64(steps))
		for row := 0; row < height; row++ {
			// Row 0 is the top of the chart.
			cellFloor := (height - 1 - row) * 8
			switch {
			case filled >= cellFloor+8:
				rows[row].WriteRune('█')
			case filled > cellFloor:
				rows[row].WriteRune(ramp[filled-cellFloor])
			default:
				rows[row].WriteRune(' ')
			}
		}
	}

	lines := make([]string, height)
	for i := range rows {
		lines[i] = rows[i].String()
	}
	return strings.Join(lines, "\n")
}

// sparkline is the compact single-row variant used where a full chart
// does not fit.
func sparkline(data []uint64, width int) string {
	if len(data) == 0 {
		return ""
	}
	if len(data) > width {
		data = data[len(data)-width:]
	}
	chars := []rune{' ', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	var max uint64 = 1
	for _, v := range data {
		if v > max {
			max = v
		}
	}
	var sb strings.Builder
	for _, v := range data {
		idx := int(float64(v) / float64(max) * float64(len(chars)-1))
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}
