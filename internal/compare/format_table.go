package compare

import (
	"fmt"
	"strings"
)

// TableFormatter formats comparison reports as console tables
type TableFormatter struct {
	ShowDescriptions bool
}

// Format generates the verdict followed by one table per tab
func (tf *TableFormatter) Format(report *Report) string {
	var sb strings.Builder
	sym := report.CurrencySymbol

	// Header
	sb.WriteString("MARRIAGE INCENTIVE COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	if report.ScenarioName != "" {
		sb.WriteString(fmt.Sprintf("Scenario: %s\n", report.ScenarioName))
	}
	sb.WriteString(fmt.Sprintf("Country:  %s   Region: %s   Year: %s\n",
		strings.ToUpper(report.Country), report.Household.Region, report.Household.Year))
	sb.WriteString(tf.householdLine(report))
	sb.WriteString("\n")

	// Verdict
	sb.WriteString(report.Verdict.Headline() + "\n")
	sb.WriteString(report.Verdict.Sentence(sym) + "\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")

	nameWidth := 24
	numWidth := 10

	for _, table := range report.Tables {
		sb.WriteString(fmt.Sprintf("\n%s\n", strings.ToUpper(table.Tab)))
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s %*s %*s\n",
			nameWidth, "Program",
			numWidth, "You",
			numWidth, "Partner",
			numWidth, "Separate",
			numWidth, "Married",
			numWidth, "Change",
			6, "%"))

		if len(table.Rows) == 0 {
			sb.WriteString("  (no non-zero programs)\n")
			continue
		}
		for _, row := range table.Rows {
			sb.WriteString(tf.formatRow(row, sym, nameWidth, numWidth))
			if tf.ShowDescriptions && row.Description != "" {
				sb.WriteString(fmt.Sprintf("    %s\n", row.Description))
			}
		}
	}

	if len(report.Audit) > 0 {
		sb.WriteString("\nRECONCILIATION\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, c := range report.Audit {
			sb.WriteString("  " + c.String() + "\n")
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")
	return sb.String()
}

func (tf *TableFormatter) householdLine(report *Report) string {
	h := report.Household
	sym := report.CurrencySymbol
	line := fmt.Sprintf("You: %s", FormatCurrency(decimalOf(h.Head.Income), sym))
	if h.Spouse != nil {
		line += fmt.Sprintf("   Partner: %s", FormatCurrency(decimalOf(h.Spouse.Income), sym))
	}
	if n := len(h.Children); n > 0 {
		line += fmt.Sprintf("   Children: %d", n)
	}
	return line + "\n"
}

// formatRow formats a single program row
func (tf *TableFormatter) formatRow(row Row, sym string, nameWidth, numWidth int) string {
	return fmt.Sprintf("%-*s %*s %*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(row.Program, nameWidth),
		numWidth, FormatCurrency(row.HeadSingle, sym),
		numWidth, FormatCurrency(row.SpouseSingle, sym),
		numWidth, FormatCurrency(row.NotMarried, sym),
		numWidth, FormatCurrency(row.Married, sym),
		numWidth, FormatCurrency(row.Delta, sym),
		6, FormatPercent(row.DeltaPct))
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a single-line verdict summary
func (tf *TableFormatter) FormatCompact(report *Report) string {
	v := report.Verdict
	return fmt.Sprintf("%s: %s %s (%s)", report.ScenarioName, v.Kind,
		FormatCurrency(v.Amount, report.CurrencySymbol), FormatPercent(v.Percent))
}
