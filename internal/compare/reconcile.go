package compare

import (
	"fmt"

	"github.com/rgehrsitz/marriagecalc/internal/country"
	"github.com/rgehrsitz/marriagecalc/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	// MinTolerance is the absolute floor of the reconciliation tolerance
	MinTolerance = decimal.NewFromInt(2)
	// RelTolerance is the relative reconciliation tolerance
	RelTolerance = decimal.NewFromFloat(0.02)
)

// Check is one breakdown-versus-aggregate comparison
type Check struct {
	Leg       string          `json:"leg"`
	Category  string          `json:"category"`
	Breakdown decimal.Decimal `json:"breakdown"`
	Aggregate decimal.Decimal `json:"aggregate"`
	Diff      decimal.Decimal `json:"diff"`
	Tolerance decimal.Decimal `json:"tolerance"`
	OK        bool            `json:"ok"`
}

func (c Check) String() string {
	status := "ok"
	if !c.OK {
		status = "MISMATCH"
	}
	return fmt.Sprintf("%s %s: breakdown %s aggregate %s diff %s (tolerance %s) %s",
		c.Leg, c.Category, c.Breakdown.StringFixed(2), c.Aggregate.StringFixed(2),
		c.Diff.StringFixed(2), c.Tolerance.StringFixed(2), status)
}

// Tolerance returns max(MinTolerance, RelTolerance*|aggregate|)
func Tolerance(aggregate decimal.Decimal) decimal.Decimal {
	return decimal.Max(MinTolerance, aggregate.Abs().Mul(RelTolerance))
}

// Reconcile checks that each breakdown of a bundle sums to its aggregate.
// Credits are reconciled as federal credits plus the state credit total.
// Aggregates the country does not model are skipped.
func Reconcile(p country.Profile, leg string, b domain.Bundle) []Check {
	type pair struct {
		category  string
		aggKey    string
		breakdown float64
	}
	pairs := []pair{
		{TabBenefits, country.AggBenefits, sum(b.Benefits)},
		{TabCredits, country.AggRefundableCredits, sum(b.Credits) + b.StateCredits[stateRefundableCredits]},
		{TabTaxes, country.AggTaxBeforeCredits, sum(b.Taxes)},
		{TabHealthcare, country.AggHealthcareValue, sum(b.Health)},
	}

	checks := make([]Check, 0, len(pairs))
	for _, pr := range pairs {
		if p.AggregateVariable(pr.aggKey) == "" {
			continue
		}
		checks = append(checks, newCheck(leg, pr.category, pr.breakdown, b.Aggregates[pr.aggKey]))
	}
	return checks
}

// ReconcileComparison runs Reconcile over all three legs
func ReconcileComparison(p country.Profile, cmp domain.Comparison) []Check {
	var checks []Check
	checks = append(checks, Reconcile(p, "married", cmp.Married)...)
	checks = append(checks, Reconcile(p, "head single", cmp.HeadSingle)...)
	checks = append(checks, Reconcile(p, "spouse single", cmp.SpouseSingle)...)
	return checks
}

// AllOK reports whether every check passed
func AllOK(checks []Check) bool {
	for _, c := range checks {
		if !c.OK {
			return false
		}
	}
	return true
}

func newCheck(leg, category string, breakdown, aggregate float64) Check {
	bd := decimal.NewFromFloat(breakdown)
	agg := decimal.NewFromFloat(aggregate)
	diff := bd.Sub(agg)
	tol := Tolerance(agg)
	return Check{
		Leg:       leg,
		Category:  category,
		Breakdown: bd,
		Aggregate: agg,
		Diff:      diff,
		Tolerance: tol,
		OK:        diff.Abs().LessThanOrEqual(tol),
	}
}
