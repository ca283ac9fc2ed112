package compare

import (
	"testing"

	"github.com/rgehrsitz/marriagecalc/internal/country"
	"github.com/rgehrsitz/marriagecalc/internal/domain"
	"github.com/rgehrsitz/marriagecalc/internal/metadata"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usCatalog(t *testing.T) *metadata.Catalog {
	t.Helper()
	cat, err := metadata.Load("us")
	require.NoError(t, err)
	return cat
}

func bundle(aggregates map[string]float64) domain.Bundle {
	b := domain.NewBundle()
	for k, v := range aggregates {
		b.Aggregates[k] = v
	}
	return b
}

// sampleComparison is a dual-earner household that loses SNAP on marriage
func sampleComparison() domain.Comparison {
	married := bundle(map[string]float64{
		country.AggNetIncome:         75000,
		country.AggHealthcareValue:   0,
		country.AggBenefits:          0,
		country.AggRefundableCredits: 2000,
		country.AggTaxBeforeCredits:  17000,
	})
	married.Benefits["snap"] = 0
	married.Benefits["tanf"] = 0
	married.Credits["eitc"] = 0
	married.Credits["refundable_ctc"] = 2000
	married.Taxes["employee_payroll_tax"] = 6885
	married.Taxes["income_tax_before_refundable_credits"] = 10115

	head := bundle(map[string]float64{
		country.AggNetIncome:         40000,
		country.AggHealthcareValue:   1200,
		country.AggBenefits:          1500,
		country.AggRefundableCredits: 2500,
		country.AggTaxBeforeCredits:  9000,
	})
	head.Benefits["snap"] = 1000
	head.Benefits["tanf"] = 0
	head.Health["medicaid_cost"] = 1200
	head.Credits["eitc"] = 500
	head.Credits["refundable_ctc"] = 2000
	head.Taxes["employee_payroll_tax"] = 3442.5
	head.Taxes["income_tax_before_refundable_credits"] = 5557.5

	spouse := bundle(map[string]float64{
		country.AggNetIncome:         36500,
		country.AggBenefits:          0,
		country.AggRefundableCredits: 0,
		country.AggTaxBeforeCredits:  8500,
	})
	spouse.Benefits["snap"] = 0
	spouse.Taxes["employee_payroll_tax"] = 3442.5
	spouse.Taxes["income_tax_before_refundable_credits"] = 0

	return domain.Comparison{Married: married, HeadSingle: head, SpouseSingle: spouse}
}

func TestTabsFor(t *testing.T) {
	assert.Equal(t, AllTabs, TabsFor(country.US))
	assert.Equal(t, []string{TabSummary, TabBenefits, TabTaxes}, TabsFor(country.UK))
}

func TestTableBuilder_Summary(t *testing.T) {
	table := NewTableBuilder(usCatalog(t)).Build(sampleComparison(), TabSummary)

	require.Len(t, table.Rows, 5)
	labels := make([]string, 0, 5)
	for _, r := range table.Rows {
		labels = append(labels, r.Program)
	}
	assert.Equal(t, []string{"Net Income", "Healthcare Benefits", "Benefits", "Refundable Tax Credits", "Taxes Before Refundable Credits"}, labels)

	net := table.Rows[0]
	assert.True(t, net.NotMarried.Equal(decimal.NewFromInt(76500)))
	assert.True(t, net.Delta.Equal(decimal.NewFromInt(-1500)))
	assert.Equal(t, "-2.0%", FormatPercent(net.DeltaPct))
	assert.NotEmpty(t, net.Description)

	// summary rows are kept even when zero, and a zero separate value gives 0%
	health := table.Rows[1]
	assert.True(t, health.Married.IsZero())
	assert.True(t, health.Delta.Equal(decimal.NewFromInt(-1200)))

	zero := newRow("x", 10, 0, 0)
	assert.True(t, zero.DeltaPct.IsZero())
}

func TestTableBuilder_BenefitsFiltersZerosAndAddsOther(t *testing.T) {
	table := NewTableBuilder(usCatalog(t)).Build(sampleComparison(), TabBenefits)

	require.Len(t, table.Rows, 2)
	assert.Equal(t, "SNAP", table.Rows[0].Program)
	assert.True(t, table.Rows[0].HeadSingle.Equal(decimal.NewFromInt(1000)))

	other := table.Rows[1]
	assert.Equal(t, OtherBenefits, other.Program)
	assert.True(t, other.HeadSingle.Equal(decimal.NewFromInt(500)))
	assert.True(t, other.Married.IsZero())
	assert.True(t, other.Delta.Equal(decimal.NewFromInt(-500)))
}

func TestTableBuilder_OtherRowThreshold(t *testing.T) {
	cmp := sampleComparison()
	cmp.HeadSingle.Aggregates[country.AggBenefits] = 1000.6
	cmp.Married.Aggregates[country.AggBenefits] = 0.4

	table := NewTableBuilder(usCatalog(t)).Build(cmp, TabBenefits)
	require.Len(t, table.Rows, 1, "a residual under one unit is dropped")
	assert.Equal(t, "SNAP", table.Rows[0].Program)
}

func TestTableBuilder_TaxesKeepsAlwaysShownRows(t *testing.T) {
	cmp := sampleComparison()
	for _, b := range []domain.Bundle{cmp.Married, cmp.HeadSingle, cmp.SpouseSingle} {
		b.Taxes["income_tax_before_refundable_credits"] = 0
		b.Taxes["flat_tax"] = 0
	}
	cmp.Married.Aggregates[country.AggTaxBeforeCredits] = 6885
	cmp.HeadSingle.Aggregates[country.AggTaxBeforeCredits] = 3442.5
	cmp.SpouseSingle.Aggregates[country.AggTaxBeforeCredits] = 3442.5

	table := NewTableBuilder(usCatalog(t)).Build(cmp, TabTaxes)

	var programs []string
	for _, r := range table.Rows {
		programs = append(programs, r.Program)
	}
	assert.Equal(t, []string{"Employee Payroll Tax", "Income Tax Before Refundable Credits"}, programs)
}

func TestTableBuilder_StateMergesCreditsAndTaxes(t *testing.T) {
	cmp := sampleComparison()
	for i, b := range []domain.Bundle{cmp.Married, cmp.HeadSingle, cmp.SpouseSingle} {
		b.StateCredits["state_eitc"] = float64(100 * i)
		b.StateCredits["state_refundable_credits"] = 999
		b.StateCredits["California EITC"] = float64(50 * i)
		b.StateTaxes["state_income_tax_before_refundable_credits"] = 1000
	}

	table := NewTableBuilder(usCatalog(t)).Build(cmp, TabState)

	var programs []string
	for _, r := range table.Rows {
		programs = append(programs, r.Program)
	}
	assert.Equal(t, []string{"State EITC", "State Income Tax Before Refundable Credits", "California EITC"}, programs)

	assert.True(t, table.Rows[1].Delta.Equal(decimal.NewFromInt(-1000)), "one state tax for married versus two separately")
}

func TestTableBuilder_BuildAll(t *testing.T) {
	tb := NewTableBuilder(usCatalog(t))

	tables := tb.BuildAll(sampleComparison(), []string{TabSummary, "bogus", TabCredits})
	require.Len(t, tables, 2)
	assert.Equal(t, TabSummary, tables[0].Tab)
	assert.Equal(t, TabCredits, tables[1].Tab)

	assert.Empty(t, tb.Build(sampleComparison(), "bogus").Rows)
}

func TestOrderedKeys(t *testing.T) {
	order := []metadata.Descriptor{{Variable: "b"}, {Variable: "a"}, {Variable: "z"}}
	keys := orderedKeys(order, []string{"always"},
		map[string]float64{"a": 1, "y": 2},
		map[string]float64{"b": 1, "x": 0})
	assert.Equal(t, []string{"b", "a", "always", "x", "y"}, keys)
}

func TestVerdict(t *testing.T) {
	cmp := sampleComparison()
	v := NewVerdict(cmp)
	assert.Equal(t, Penalty, v.Kind)
	assert.True(t, v.Amount.Equal(decimal.NewFromInt(-1500)))
	assert.Equal(t, "You face a marriage PENALTY.", v.Headline())
	assert.Equal(t, "If you file separately, your combined net income will be $1,500 more (2.0%) than if you file together.", v.Sentence("$"))

	cmp.Married.Aggregates[country.AggNetIncome] = 80000
	v = NewVerdict(cmp)
	assert.Equal(t, Bonus, v.Kind)
	assert.Contains(t, v.Sentence("$"), "$3,500 less")

	cmp.Married.Aggregates[country.AggNetIncome] = 76500
	assert.Equal(t, Neutral, NewVerdict(cmp).Kind)
	assert.Equal(t, "You face no marriage penalty or bonus.", NewVerdict(cmp).Headline())

	empty := NewVerdict(domain.Comparison{})
	assert.Equal(t, Neutral, empty.Kind)
	assert.True(t, empty.Percent.IsZero())
}
