package compare

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/marriagecalc/internal/calculation"
	"github.com/rgehrsitz/marriagecalc/internal/domain"
)

// ComparisonSource produces the three-leg comparison for a household
type ComparisonSource interface {
	GetCategorizedPrograms(ctx context.Context, countryID string, h domain.Household) (domain.Comparison, error)
}

// CompareEngine turns a scenario into a comparison report
type CompareEngine struct {
	Source ComparisonSource
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(source ComparisonSource) *CompareEngine {
	return &CompareEngine{Source: source}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	Tabs       []string // tables to build; empty means every tab the country supports
	Audit      bool     // run the breakdown reconciliation
	IncludeRaw bool     // attach the raw comparison bundles
}

// Compare runs one scenario and builds its report
func (ce *CompareEngine) Compare(ctx context.Context, scenario *domain.Scenario, options CompareOptions) (*Report, error) {
	p, cat, err := calculation.Resolve(scenario.Country)
	if err != nil {
		return nil, err
	}

	cmp, err := ce.Source.GetCategorizedPrograms(ctx, p.ID, scenario.Household)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate scenario %s: %w", scenario.Name, err)
	}

	tabs := options.Tabs
	if len(tabs) == 0 {
		tabs = TabsFor(p)
	}

	report := &Report{
		ScenarioName:   scenario.Name,
		Country:        p.ID,
		CurrencySymbol: p.CurrencySymbol,
		Household:      scenario.Household,
		Verdict:        NewVerdict(cmp),
		Tables:         NewTableBuilder(cat).BuildAll(cmp, tabs),
	}
	if options.Audit {
		report.Audit = ReconcileComparison(p, cmp)
	}
	if options.IncludeRaw {
		report.Comparison = &cmp
	}
	return report, nil
}
