package compare

import (
	"fmt"

	"github.com/rgehrsitz/marriagecalc/internal/country"
	"github.com/rgehrsitz/marriagecalc/internal/domain"
	"github.com/shopspring/decimal"
)

// VerdictKind classifies the net income effect of marriage
type VerdictKind string

const (
	Bonus   VerdictKind = "bonus"
	Penalty VerdictKind = "penalty"
	Neutral VerdictKind = "none"
)

// Verdict summarises married versus separate net income. Percent is the
// bonus as a ratio of married net income.
type Verdict struct {
	Kind     VerdictKind     `json:"kind"`
	Married  decimal.Decimal `json:"married"`
	Separate decimal.Decimal `json:"separate"`
	Amount   decimal.Decimal `json:"amount"`
	Percent  decimal.Decimal `json:"percent"`
}

// NewVerdict computes the marriage bonus or penalty on net income
func NewVerdict(cmp domain.Comparison) Verdict {
	married := decimal.NewFromFloat(cmp.Married.Aggregates[country.AggNetIncome])
	separate := decimal.NewFromFloat(cmp.HeadSingle.Aggregates[country.AggNetIncome]).
		Add(decimal.NewFromFloat(cmp.SpouseSingle.Aggregates[country.AggNetIncome]))
	amount := married.Sub(separate)

	v := Verdict{
		Kind:     Neutral,
		Married:  married,
		Separate: separate,
		Amount:   amount,
	}
	if !married.IsZero() {
		v.Percent = amount.Div(married)
	}
	switch {
	case amount.IsPositive():
		v.Kind = Bonus
	case amount.IsNegative():
		v.Kind = Penalty
	}
	return v
}

// Headline is the one-line verdict
func (v Verdict) Headline() string {
	switch v.Kind {
	case Bonus:
		return "You face a marriage BONUS."
	case Penalty:
		return "You face a marriage PENALTY."
	}
	return "You face no marriage penalty or bonus."
}

// Sentence explains the verdict in terms of filing separately
func (v Verdict) Sentence(symbol string) string {
	direction := "more"
	if v.Amount.IsPositive() {
		direction = "less"
	}
	return fmt.Sprintf("If you file separately, your combined net income will be %s %s (%s) than if you file together.",
		FormatCurrency(v.Amount.Abs(), symbol), direction, FormatPercent(v.Percent.Abs()))
}
