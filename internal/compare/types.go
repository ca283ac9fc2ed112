package compare

import (
	"github.com/rgehrsitz/marriagecalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Tab names of the comparison tables
const (
	TabSummary    = "summary"
	TabBenefits   = "benefits"
	TabHealthcare = "healthcare"
	TabCredits    = "credits"
	TabTaxes      = "taxes"
	TabState      = "state"
)

// AllTabs lists every comparison table in display order
var AllTabs = []string{TabSummary, TabBenefits, TabHealthcare, TabCredits, TabTaxes, TabState}

// Residual row labels
const (
	OtherBenefits   = "Other Benefits"
	OtherHealthcare = "Other Healthcare"
	OtherCredits    = "Other Credits"
	OtherTaxes      = "Other Taxes"
)

// Row is one program line of a comparison table. NotMarried is head plus
// spouse; DeltaPct is Delta/NotMarried as a ratio, 0 when NotMarried is 0.
type Row struct {
	Program      string          `json:"program"`
	HeadSingle   decimal.Decimal `json:"headSingle"`
	SpouseSingle decimal.Decimal `json:"spouseSingle"`
	NotMarried   decimal.Decimal `json:"notMarried"`
	Married      decimal.Decimal `json:"married"`
	Delta        decimal.Decimal `json:"delta"`
	DeltaPct     decimal.Decimal `json:"deltaPct"`
	Description  string          `json:"description,omitempty"`
}

// Table is the set of rows for one tab
type Table struct {
	Tab  string `json:"tab"`
	Rows []Row  `json:"rows"`
}

// Report is the full output of a point comparison
type Report struct {
	ScenarioName   string             `json:"scenarioName"`
	Country        string             `json:"country"`
	CurrencySymbol string             `json:"currencySymbol"`
	Household      domain.Household   `json:"household"`
	Verdict        Verdict            `json:"verdict"`
	Tables         []Table            `json:"tables"`
	Audit          []Check            `json:"audit,omitempty"`
	Comparison     *domain.Comparison `json:"comparison,omitempty"`
}

// Table returns the table for a tab, if the report has it
func (r *Report) Table(tab string) (Table, bool) {
	for _, t := range r.Tables {
		if t.Tab == tab {
			return t, true
		}
	}
	return Table{}, false
}
