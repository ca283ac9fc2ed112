package compare

import (
	"sort"

	"github.com/rgehrsitz/marriagecalc/internal/country"
	"github.com/rgehrsitz/marriagecalc/internal/domain"
	"github.com/rgehrsitz/marriagecalc/internal/metadata"
	"github.com/shopspring/decimal"
)

// stateRefundableCredits is the state credit total; it is reconciled against
// the credits aggregate and left out of the state tab
const stateRefundableCredits = "state_refundable_credits"

// alwaysShownTaxes appear in the taxes tab even when zero in every leg
var alwaysShownTaxes = []string{"income_tax_before_refundable_credits", "state_income_tax_before_refundable_credits"}

type summaryLine struct {
	label string
	key   string
}

var summaryLines = []summaryLine{
	{"Net Income", country.AggNetIncome},
	{"Healthcare Benefits", country.AggHealthcareValue},
	{"Benefits", country.AggBenefits},
	{"Refundable Tax Credits", country.AggRefundableCredits},
	{"Taxes Before Refundable Credits", country.AggTaxBeforeCredits},
}

// TabsFor returns the comparison tabs that carry data for a country
func TabsFor(p country.Profile) []string {
	tabs := []string{TabSummary, TabBenefits}
	if p.AggregateVariable(country.AggHealthcareValue) != "" {
		tabs = append(tabs, TabHealthcare)
	}
	if p.HasCredits {
		tabs = append(tabs, TabCredits)
	}
	tabs = append(tabs, TabTaxes)
	if p.HasStateCredits {
		tabs = append(tabs, TabState)
	}
	return tabs
}

// TableBuilder turns a comparison into per-tab row tables. Breakdown rows
// follow catalog order; keys the catalog does not know (region credit
// labels) follow in name order.
type TableBuilder struct {
	Catalog *metadata.Catalog
}

// NewTableBuilder creates a builder over a country catalog
func NewTableBuilder(cat *metadata.Catalog) *TableBuilder {
	return &TableBuilder{Catalog: cat}
}

// BuildAll builds the tables for the given tabs, skipping unknown tab names
func (tb *TableBuilder) BuildAll(cmp domain.Comparison, tabs []string) []Table {
	tables := make([]Table, 0, len(tabs))
	for _, tab := range tabs {
		if rows, ok := tb.rows(cmp, tab); ok {
			tables = append(tables, Table{Tab: tab, Rows: rows})
		}
	}
	return tables
}

// Build builds a single tab. Unknown tabs yield an empty table.
func (tb *TableBuilder) Build(cmp domain.Comparison, tab string) Table {
	rows, _ := tb.rows(cmp, tab)
	return Table{Tab: tab, Rows: rows}
}

func (tb *TableBuilder) rows(cmp domain.Comparison, tab string) ([]Row, bool) {
	m, h, s := cmp.Married, cmp.HeadSingle, cmp.SpouseSingle

	switch tab {
	case TabSummary:
		rows := make([]Row, 0, len(summaryLines))
		for _, line := range summaryLines {
			rows = append(rows, newRow(line.label,
				m.Aggregates[line.key], h.Aggregates[line.key], s.Aggregates[line.key]))
		}
		return rows, true

	case TabBenefits:
		rows := tb.breakdown(tb.Catalog.Benefits, nil, m.Benefits, h.Benefits, s.Benefits)
		return addOther(rows, OtherBenefits, cmp, country.AggBenefits, m.Benefits, h.Benefits, s.Benefits), true

	case TabHealthcare:
		rows := tb.breakdown(tb.Catalog.Healthcare, nil, m.Health, h.Health, s.Health)
		return addOther(rows, OtherHealthcare, cmp, country.AggHealthcareValue, m.Health, h.Health, s.Health), true

	case TabCredits:
		rows := tb.breakdown(tb.Catalog.Credits, nil, m.Credits, h.Credits, s.Credits)
		return addOther(rows, OtherCredits, cmp, country.AggRefundableCredits, m.Credits, h.Credits, s.Credits), true

	case TabTaxes:
		var always []string
		for _, v := range alwaysShownTaxes {
			if containsVariable(tb.Catalog.Taxes, v) {
				always = append(always, v)
			}
		}
		rows := tb.breakdown(tb.Catalog.Taxes, always, m.Taxes, h.Taxes, s.Taxes)
		return addOther(rows, OtherTaxes, cmp, country.AggTaxBeforeCredits, m.Taxes, h.Taxes, s.Taxes), true

	case TabState:
		order := append(append([]metadata.Descriptor{}, tb.Catalog.StateCredits...), tb.Catalog.StateTaxes...)
		return tb.breakdown(order, nil, stateDict(m), stateDict(h), stateDict(s)), true
	}
	return nil, false
}

// stateDict merges state credits, minus the state credit total, with state taxes
func stateDict(b domain.Bundle) map[string]float64 {
	out := make(map[string]float64, len(b.StateCredits)+len(b.StateTaxes))
	for k, v := range b.StateCredits {
		if k == stateRefundableCredits {
			continue
		}
		out[k] = v
	}
	for k, v := range b.StateTaxes {
		out[k] = v
	}
	return out
}

// breakdown builds one row per key present in any leg, skipping keys that
// are zero in all three legs unless they are always shown
func (tb *TableBuilder) breakdown(order []metadata.Descriptor, always []string, married, head, spouse map[string]float64) []Row {
	show := make(map[string]bool, len(always))
	for _, k := range always {
		show[k] = true
	}

	var rows []Row
	for _, key := range orderedKeys(order, always, married, head, spouse) {
		mv, hv, sv := married[key], head[key], spouse[key]
		if mv == 0 && hv == 0 && sv == 0 && !show[key] {
			continue
		}
		rows = append(rows, newRow(FormatProgramName(key), mv, hv, sv))
	}
	return rows
}

// orderedKeys lists the union of the dict keys (plus always-shown keys):
// catalog order first, then the rest sorted
func orderedKeys(order []metadata.Descriptor, always []string, dicts ...map[string]float64) []string {
	present := make(map[string]bool)
	for _, d := range dicts {
		for k := range d {
			present[k] = true
		}
	}
	for _, k := range always {
		present[k] = true
	}

	keys := make([]string, 0, len(present))
	for _, d := range order {
		if present[d.Variable] {
			keys = append(keys, d.Variable)
			delete(present, d.Variable)
		}
	}
	rest := make([]string, 0, len(present))
	for k := range present {
		rest = append(rest, k)
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

// addOther appends the residual of an aggregate over its tracked breakdown
// when it is at least one currency unit in either the married or the
// separate column
func addOther(rows []Row, label string, cmp domain.Comparison, aggKey string, married, head, spouse map[string]float64) []Row {
	otherM := cmp.Married.Aggregates[aggKey] - sum(married)
	otherH := cmp.HeadSingle.Aggregates[aggKey] - sum(head)
	otherS := cmp.SpouseSingle.Aggregates[aggKey] - sum(spouse)

	row := newRow(label, otherM, otherH, otherS)
	one := decimal.NewFromInt(1)
	if row.Married.Abs().LessThan(one) && row.NotMarried.Abs().LessThan(one) {
		return rows
	}
	return append(rows, row)
}

func newRow(program string, married, head, spouse float64) Row {
	m := decimal.NewFromFloat(married)
	h := decimal.NewFromFloat(head)
	s := decimal.NewFromFloat(spouse)
	separate := h.Add(s)
	delta := m.Sub(separate)

	pct := decimal.Zero
	if !separate.IsZero() {
		pct = delta.Div(separate)
	}
	return Row{
		Program:      program,
		HeadSingle:   h,
		SpouseSingle: s,
		NotMarried:   separate,
		Married:      m,
		Delta:        delta,
		DeltaPct:     pct,
		Description:  Describe(program),
	}
}

func sum(dict map[string]float64) float64 {
	var total float64
	for _, v := range dict {
		total += v
	}
	return total
}

func containsVariable(list []metadata.Descriptor, variable string) bool {
	for _, d := range list {
		if d.Variable == variable {
			return true
		}
	}
	return false
}
