package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// Colors
var (
	ColorPrimary   = lipgloss.Color("#0D9488")
	ColorAccent    = lipgloss.Color("#BE185D")
	ColorSuccess   = lipgloss.Color("#10B981")
	ColorDanger    = lipgloss.Color("#EF4444")
	ColorInfo      = lipgloss.Color("#81E6D9")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorBorder    = lipgloss.Color("#374151")
	ColorDarkText  = lipgloss.Color("#111827")
	ColorLightText = lipgloss.Color("#F9FAFB")
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1).
			MarginLeft(2)

	TabStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	ActiveTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorLightText).
			Background(ColorPrimary).
			Padding(0, 1)

	AxisStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	MetricLabelStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	MetricValueStyle    = lipgloss.NewStyle().Bold(true)
	MetricPositiveStyle = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	MetricNegativeStyle = lipgloss.NewStyle().Foreground(ColorDanger).Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDanger).
			Padding(1, 2)
)

// DeltaStyle colors a marriage delta: green for a bonus, red for a penalty
func DeltaStyle(d decimal.Decimal) lipgloss.Style {
	switch d.Sign() {
	case 1:
		return MetricPositiveStyle
	case -1:
		return MetricNegativeStyle
	}
	return MetricValueStyle
}

// CellStyle paints one heatmap cell with a background from the palette and
// a foreground that stays readable on it
func CellStyle(bg string, light bool) lipgloss.Style {
	fg := ColorLightText
	if light {
		fg = ColorDarkText
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(bg)).Foreground(fg)
}
