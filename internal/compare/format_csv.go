package compare

import (
	"encoding/csv"
	"strings"

	"github.com/shopspring/decimal"
)

// CSVFormatter formats comparison reports as CSV, one line per table row
type CSVFormatter struct{}

// Format generates CSV output for a report
func (cf *CSVFormatter) Format(report *Report) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	// Write header
	header := []string{
		"Tab",
		"Program",
		"Head Single",
		"Spouse Single",
		"Not Married",
		"Married",
		"Delta",
		"Delta %",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for _, table := range report.Tables {
		for _, row := range table.Rows {
			if err := writer.Write(cf.formatRow(table.Tab, row)); err != nil {
				return "", err
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a table row as a CSV record
func (cf *CSVFormatter) formatRow(tab string, row Row) []string {
	return []string{
		tab,
		row.Program,
		row.HeadSingle.StringFixed(2),
		row.SpouseSingle.StringFixed(2),
		row.NotMarried.StringFixed(2),
		row.Married.StringFixed(2),
		row.Delta.StringFixed(2),
		row.DeltaPct.Mul(decimal.NewFromInt(100)).StringFixed(2),
	}
}

// FormatGrid writes a delta grid as CSV: a header of head incomes, then one
// line per spouse income
func (cf *CSVFormatter) FormatGrid(grid [][]float64, step float64) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	count := len(grid)
	header := make([]string, 0, count+1)
	header = append(header, "spouse\\head")
	for i := 0; i < count; i++ {
		header = append(header, decimalOf(float64(i)*step).StringFixed(0))
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for s, row := range grid {
		record := make([]string, 0, len(row)+1)
		record = append(record, decimalOf(float64(s)*step).StringFixed(0))
		for _, v := range row {
			record = append(record, decimalOf(v).StringFixed(2))
		}
		if err := writer.Write(record); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func decimalOf(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}
