package compare

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/marriagecalc/internal/domain"
)

// GridFormatter prints one heatmap tab as a text grid. Rows are spouse
// income from high to low, columns head income; Stride thins both axes.
type GridFormatter struct {
	Stride         int
	CurrencySymbol string
}

// Format renders a tab of a sweep, bracketing the cell nearest the
// household's own incomes
func (gf *GridFormatter) Format(sweep *domain.HeatmapSweep, tab string, headIncome, spouseIncome float64) (string, error) {
	grid, ok := sweep.Grids[tab]
	if !ok {
		return "", fmt.Errorf("unknown heatmap tab %q (have %s)", tab, strings.Join(sweep.Tabs, ", "))
	}
	stride := gf.Stride
	if stride < 1 {
		stride = 1
	}
	sym := gf.CurrencySymbol
	if sym == "" {
		sym = "$"
	}
	userHead := sweep.IndexFor(headIncome)
	userSpouse := sweep.IndexFor(spouseIncome)

	cellWidth := 8
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s: married minus separate (rows: partner income, columns: your income)\n", strings.ToUpper(tab)))
	sb.WriteString(strings.Repeat("=", 80) + "\n")

	indices := gf.axis(sweep.Count, stride, userHead)
	rows := gf.axis(sweep.Count, stride, userSpouse)

	sb.WriteString(fmt.Sprintf("%*s |", cellWidth, ""))
	for _, h := range indices {
		sb.WriteString(fmt.Sprintf("%*s", cellWidth, FormatShort(decimalOf(sweep.IncomeAt(h)), sym)))
	}
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", cellWidth+2+cellWidth*len(indices)) + "\n")

	for i := len(rows) - 1; i >= 0; i-- {
		s := rows[i]
		sb.WriteString(fmt.Sprintf("%*s |", cellWidth, FormatShort(decimalOf(sweep.IncomeAt(s)), sym)))
		for _, h := range indices {
			v := 0.0
			if s < len(grid) && h < len(grid[s]) {
				v = grid[s][h]
			}
			cell := FormatShort(decimalOf(v), sym)
			if h == userHead && s == userSpouse {
				cell = "[" + cell + "]"
			}
			sb.WriteString(fmt.Sprintf("%*s", cellWidth, cell))
		}
		sb.WriteString("\n")
	}

	if userSpouse < len(grid) && userHead < len(grid[userSpouse]) {
		sb.WriteString(fmt.Sprintf("\nYour cell (you %s, partner %s): %s\n",
			FormatCurrency(decimalOf(sweep.IncomeAt(userHead)), sym),
			FormatCurrency(decimalOf(sweep.IncomeAt(userSpouse)), sym),
			FormatCurrency(decimalOf(grid[userSpouse][userHead]), sym)))
	}
	return sb.String(), nil
}

// axis picks every stride-th index plus the last one and the user's own
func (gf *GridFormatter) axis(count, stride, user int) []int {
	var out []int
	for i := 0; i < count; i++ {
		if i%stride == 0 || i == count-1 || i == user {
			out = append(out, i)
		}
	}
	return out
}
