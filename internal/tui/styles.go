// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	ColorIce  = lipgloss.Color("45")
	ColorDeep = lipgloss.Color("24")
	ColorRx   = lipgloss.Color("203")
	ColorTx   = lipgloss.Color("75")
	ColorDim  = lipgloss.Color("240")

	StyleApp = lipgloss.NewStyle().Padding(0, 1)

	StyleTopBar = lipgloss.NewStyle().
			Foreground(ColorIce).
			Bold(true)

	StyleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDeep).
			Padding(0, 1)

	StyleTitle = lipgloss.NewStyle().
			Foreground(ColorIce).
			Bold(true)

	StyleSubtitle = lipgloss.NewStyle().
			Foreground(ColorDim)

	StyleRx = lipgloss.NewStyle().Foreground(ColorRx)
	StyleTx = lipgloss.NewStyle().Foreground(ColorTx)

	StyleValue = lipgloss.NewStyle().Bold(true)

	StyleStatusGood = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	StyleStatusWarn = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	StyleStatusBad  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)
