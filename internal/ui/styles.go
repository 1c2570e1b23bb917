package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	colorPrimary = lipgloss.Color("#00BFFF") // Deep sky blue
	colorDanger  = lipgloss.Color("#FF5555") // Terminal-change highlight
	colorSuccess = lipgloss.Color("#50FA7B") // Berth-change highlight
	colorShift   = lipgloss.Color("#FFB86C") // Orange for schedule shifts
	colorMuted   = lipgloss.Color("#6C757D") // Gray
	colorBorder  = lipgloss.Color("#4A90E2") // Border blue
	colorLink    = lipgloss.Color("#0088FF") // Blue transshipment links

	// Title styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	activeTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(colorPrimary)

	// Pane styles
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1).
			MarginRight(1)

	activePaneStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1).
			MarginRight(1)

	// Content styles
	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorBorder).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	shiftStyle = lipgloss.NewStyle().
			Foreground(colorShift)

	// Master-log "to" column highlights
	berthChangeStyle = lipgloss.NewStyle().
				Foreground(colorSuccess).
				Bold(true)

	terminalChangeStyle = lipgloss.NewStyle().
				Foreground(colorDanger).
				Bold(true)

	// Copy-role badges
	firstBadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorDanger).
			Bold(true)

	secondBadgeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(colorLink).
				Bold(true)

	// Transshipment link colors
	linkGreenStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	linkBlueStyle  = lipgloss.NewStyle().Foreground(colorLink).Bold(true)
	linkRedStyle   = lipgloss.NewStyle().Foreground(colorDanger).Bold(true)

	// Help text style
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 0)
)
