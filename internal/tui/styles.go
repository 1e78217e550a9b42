package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("39")
	colorAccent  = lipgloss.Color("212")
	colorMuted   = lipgloss.Color("241")
	colorGood    = lipgloss.Color("42")
	colorBad     = lipgloss.Color("203")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(22)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 2).
			MarginRight(2)

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	goodStyle = lipgloss.NewStyle().Foreground(colorGood)
	badStyle  = lipgloss.NewStyle().Foreground(colorBad)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)

	chartBarStyle = lipgloss.NewStyle().Foreground(colorPrimary)
)
