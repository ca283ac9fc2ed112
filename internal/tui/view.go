package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/marriagecalc/internal/calculation"
	"github.com/rgehrsitz/marriagecalc/internal/compare"
	"github.com/rgehrsitz/marriagecalc/internal/heatmap"
)

// labelWidth is the width of the spouse-income axis column
const labelWidth = 7

// View renders the current state of the application
func (m Model) View() string {
	if m.err != nil {
		return m.renderApp(m.renderError())
	}

	var content string
	switch m.currentScene {
	case SceneHeatmap:
		content = m.renderHeatmap()
	case SceneCompare:
		content = m.renderCompare()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}
	return m.renderApp(content)
}

// renderApp wraps content with title bar and status bar
func (m Model) renderApp(content string) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		content,
		m.renderStatusBar(),
	)
}

// renderTitleBar renders the application title and breadcrumb
func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("Marriage Calculator")
	if m.loading() {
		title += " " + m.spinner.View() + SubtitleStyle.Render("calculating...")
	}

	crumb := m.currentScene.String()
	if m.scenario != nil && m.scenario.Name != "" {
		crumb = fmt.Sprintf("%s / %s", crumb, m.scenario.Name)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, SubtitleStyle.Render(crumb))
}

// renderStatusBar renders the key bindings
func (m Model) renderStatusBar() string {
	return StatusBarStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}

// renderError renders an error message
func (m Model) renderError() string {
	return ErrorStyle.Render(fmt.Sprintf("Error: %s\n\nPress esc to dismiss, r to retry.", m.err))
}

// renderHeatmap renders the tab bar, the colored grid and the cell panel
func (m Model) renderHeatmap() string {
	if m.sweep == nil {
		return BorderStyle.Render("Waiting for the income sweep...")
	}

	tab := m.currentTab()
	grid := m.sweep.Grids[tab]
	tabs := m.renderTabs()

	if heatmap.IsZero(grid) {
		return lipgloss.JoinVertical(lipgloss.Left, tabs,
			BorderStyle.Render(fmt.Sprintf("No changes in the %s data.", tab)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		tabs,
		lipgloss.JoinHorizontal(lipgloss.Top, m.renderGrid(grid), m.renderCellPanel()),
	)
}

func (m Model) renderTabs() string {
	parts := make([]string, len(m.sweep.Tabs))
	for i, t := range m.sweep.Tabs {
		if i == m.tab {
			parts[i] = ActiveTabStyle.Render(t)
		} else {
			parts[i] = TabStyle.Render(t)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// renderGrid draws the grid with the partner's income rising upwards and
// yours rising to the right. Each cell is two columns wide.
func (m Model) renderGrid(grid [][]float64) string {
	count := len(grid)
	absMax := heatmap.AbsMax(grid)
	symbol := m.currencySymbol()
	userHead, userSpouse := m.userCell()

	var sb strings.Builder
	for s := count - 1; s >= 0; s-- {
		label := ""
		if s%4 == 0 {
			label = compare.FormatShort(decimal.NewFromFloat(m.sweep.IncomeAt(s)), symbol)
		}
		sb.WriteString(AxisStyle.Render(fmt.Sprintf("%*s ", labelWidth-1, label)))

		for h, v := range grid[s] {
			c := m.palette.Color(heatmap.Normalize(v, absMax))
			glyph := "  "
			switch {
			case h == m.headIdx && s == m.spouseIdx:
				glyph = "[]"
			case h == userHead && s == userSpouse:
				glyph = "<>"
			}
			sb.WriteString(CellStyle(c.Hex(), heatmap.IsLight(c)).Render(glyph))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(strings.Repeat(" ", labelWidth))
	for h := 0; h < count; h += 4 {
		label := compare.FormatShort(decimal.NewFromFloat(m.sweep.IncomeAt(h)), symbol)
		sb.WriteString(AxisStyle.Render(fmt.Sprintf("%-8s", label)))
	}
	sb.WriteString("\n")
	sb.WriteString(AxisStyle.Render(fmt.Sprintf("%*s%s  (color range ±%s)", labelWidth, "", "your income →",
		compare.FormatCurrency(decimal.NewFromFloat(absMax), symbol))))
	return sb.String()
}

// renderCellPanel shows the summary comparison for the cursor cell
func (m Model) renderCellPanel() string {
	symbol := m.currencySymbol()
	countryID := m.countryID()

	cmp, err := calculation.CellFromSweep(countryID, m.sweep, m.headIdx, m.spouseIdx)
	if err != nil {
		return PanelStyle.Render(err.Error())
	}
	_, cat, _ := calculation.Resolve(countryID)
	summary := compare.NewTableBuilder(cat).Build(cmp, compare.TabSummary)
	verdict := compare.NewVerdict(cmp)

	money := func(v float64) string {
		return compare.FormatCurrency(decimal.NewFromFloat(v), symbol)
	}

	var sb strings.Builder
	sb.WriteString(MetricLabelStyle.Render("You") + "      " + MetricValueStyle.Render(money(m.sweep.IncomeAt(m.headIdx))) + "\n")
	sb.WriteString(MetricLabelStyle.Render("Partner") + "  " + MetricValueStyle.Render(money(m.sweep.IncomeAt(m.spouseIdx))) + "\n")

	cell := decimal.NewFromFloat(m.sweep.Grids[m.currentTab()][m.spouseIdx][m.headIdx])
	sb.WriteString(MetricLabelStyle.Render(m.currentTab()) + "\n")
	sb.WriteString(DeltaStyle(cell).Render(compare.FormatCurrency(cell, symbol)) + "\n\n")

	for _, row := range summary.Rows {
		sb.WriteString(MetricLabelStyle.Render(row.Program) + "\n")
		sb.WriteString(fmt.Sprintf("  %s → %s  ",
			compare.FormatCurrency(row.NotMarried, symbol),
			compare.FormatCurrency(row.Married, symbol)))
		sb.WriteString(DeltaStyle(row.Delta).Render(compare.FormatCurrency(row.Delta, symbol)) + "\n")
	}

	sb.WriteString("\n" + DeltaStyle(verdict.Amount).Render(verdict.Headline()))
	return PanelStyle.Width(44).Render(sb.String())
}

// renderCompare renders the point comparison tables
func (m Model) renderCompare() string {
	if m.report == nil {
		return BorderStyle.Render("Waiting for the comparison...")
	}
	return m.viewport.View()
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	helpText := `
Marriage Calculator - marriage bonus and penalty explorer

The heatmap shows how the marriage delta changes as your income (left to
right) and your partner's income (bottom to top) vary. Positive cells are a
bonus for filing together; negative cells are a penalty. For tax views a
reduction counts as a bonus.

  []   cursor cell, detailed in the side panel
  <>   the cell nearest to your scenario's incomes
`
	return BorderStyle.Render(helpText + "\n" + m.help.FullHelpView(m.keys.FullHelp()))
}

func (m Model) currencySymbol() string {
	if m.report != nil {
		return m.report.CurrencySymbol
	}
	if p, _, err := calculation.Resolve(m.countryID()); err == nil {
		return p.CurrencySymbol
	}
	return "$"
}

func (m Model) countryID() string {
	if m.scenario == nil {
		return ""
	}
	return m.scenario.Country
}
