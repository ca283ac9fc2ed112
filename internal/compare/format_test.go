package compare

import (
	"strings"
	"testing"

	"github.com/rgehrsitz/marriagecalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1234, "$1,234"},
		{-5678, "-$5,678"},
		{0, "$0"},
		{1234.7, "$1,235"},
		{-99.4, "-$99"},
		{-0.4, "$0"},
		{1234567, "$1,234,567"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDollars(tt.in), "%v", tt.in)
	}
	assert.Equal(t, "£12,000", FormatCurrency(decimal.NewFromInt(12000), "£"))
}

func TestFormatShort(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{10000, "$10k"},
		{-5000, "-$5k"},
		{500, "$500"},
		{0, "$0"},
		{7500, "$8k"},
		{999, "$999"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatShort(decimal.NewFromInt(tt.in), "$"), "%d", tt.in)
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "12.5%", FormatPercent(decimal.NewFromFloat(0.125)))
	assert.Equal(t, "-3.3%", FormatPercent(decimal.NewFromFloat(-0.0333)))
	assert.Equal(t, "0.0%", FormatPercent(decimal.Zero))
}

func TestFormatProgramName(t *testing.T) {
	tests := map[string]string{
		"eitc":                                 "EITC",
		"per_capita_chip":                      "CHIP",
		"refundable_ctc":                       "Refundable CTC",
		"state_cdcc":                           "State CDCC",
		"income_tax_before_refundable_credits": "Income Tax Before Refundable Credits",
		"free_school_meals":                    "Free School Meals",
		"California EITC":                      "California EITC",
		"":                                     "",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatProgramName(in), in)
	}
	assert.NotEmpty(t, Describe("SNAP"))
	assert.NotEmpty(t, Describe(OtherTaxes))
	assert.Empty(t, Describe("Unknown Program"))
}

func sampleReport(t *testing.T) *Report {
	t.Helper()
	cmp := sampleComparison()
	return &Report{
		ScenarioName:   "Dual earners",
		Country:        "us",
		CurrencySymbol: "$",
		Household: domain.Household{
			Region: "CA", Year: "2026",
			Head:     domain.Adult{Income: 45000},
			Spouse:   &domain.Adult{Income: 45000},
			Children: []domain.Child{{Age: 5}},
		},
		Verdict: NewVerdict(cmp),
		Tables:  NewTableBuilder(usCatalog(t)).BuildAll(cmp, []string{TabSummary, TabBenefits}),
	}
}

func TestTableFormatter_Format(t *testing.T) {
	formatter := &TableFormatter{ShowDescriptions: true}
	result := formatter.Format(sampleReport(t))

	assert.Contains(t, result, "MARRIAGE INCENTIVE COMPARISON")
	assert.Contains(t, result, "Scenario: Dual earners")
	assert.Contains(t, result, "You: $45,000   Partner: $45,000   Children: 1")
	assert.Contains(t, result, "You face a marriage PENALTY.")
	assert.Contains(t, result, "SUMMARY")
	assert.Contains(t, result, "BENEFITS")
	assert.Contains(t, result, "Net Income")
	assert.Contains(t, result, "SNAP")
	assert.Contains(t, result, Describe("SNAP"))
	assert.NotContains(t, result, "RECONCILIATION")
}

func TestTableFormatter_FormatCompact(t *testing.T) {
	formatter := &TableFormatter{}
	assert.Equal(t, "Dual earners: penalty -$1,500 (-2.0%)", formatter.FormatCompact(sampleReport(t)))
}

func TestCSVFormatter_Format(t *testing.T) {
	formatter := &CSVFormatter{}
	out, err := formatter.Format(sampleReport(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "Tab,Program,Head Single,Spouse Single,Not Married,Married,Delta,Delta %", lines[0])
	assert.Equal(t, "summary,Net Income,40000.00,36500.00,76500.00,75000.00,-1500.00,-1.96", lines[1])
}

func TestCSVFormatter_FormatGrid(t *testing.T) {
	formatter := &CSVFormatter{}
	out, err := formatter.FormatGrid([][]float64{{0, 100}, {-50, 25.5}}, 2500)
	require.NoError(t, err)
	assert.Equal(t, "spouse\\head,0,2500\n0,0.00,100.00\n2500,-50.00,25.50\n", out)
}

func TestJSONFormatter_Format(t *testing.T) {
	report := sampleReport(t)

	compact, err := (&JSONFormatter{}).Format(report)
	require.NoError(t, err)
	assert.Contains(t, compact, `"scenarioName":"Dual earners"`)
	assert.Contains(t, compact, `"kind":"penalty"`)

	pretty, err := (&JSONFormatter{Pretty: true}).Format(report)
	require.NoError(t, err)
	assert.Contains(t, pretty, "\n  \"scenarioName\": \"Dual earners\"")
}

func TestGridFormatter_Format(t *testing.T) {
	count := 3
	sweep := &domain.HeatmapSweep{
		Grids: map[string][][]float64{
			"net income": {{0, 1000, 2000}, {-500, 0, 500}, {-3000, -1000, 0}},
		},
		Tabs:  []string{"net income"},
		Step:  40000,
		Count: count,
	}

	out, err := (&GridFormatter{}).Format(sweep, "net income", 40000, 80000)
	require.NoError(t, err)
	assert.Contains(t, out, "[-$1k]")
	assert.Contains(t, out, "Your cell (you $40,000, partner $80,000): -$1,000")

	lines := strings.Split(out, "\n")
	// highest spouse income is printed first
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[4]), "$80k"), lines[4])

	_, err = (&GridFormatter{}).Format(sweep, "benefits", 0, 0)
	assert.Error(t, err)
}
