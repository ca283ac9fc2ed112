package compare

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// acronyms override title-casing for whole names and for single words
var acronyms = map[string]string{
	"eitc":            "EITC",
	"snap":            "SNAP",
	"tanf":            "TANF",
	"wic":             "WIC",
	"ssi":             "SSI",
	"acp":             "ACP",
	"ctc":             "CTC",
	"cdcc":            "CDCC",
	"chip":            "CHIP",
	"per_capita_chip": "CHIP",
}

// FormatProgramName turns an engine variable name into a display name:
// "refundable_ctc" -> "Refundable CTC". Labels that are already formatted
// (region credits) pass through unchanged.
func FormatProgramName(name string) string {
	if a, ok := acronyms[name]; ok {
		return a
	}
	words := strings.Split(name, "_")
	for i, w := range words {
		if a, ok := acronyms[w]; ok {
			words[i] = a
			continue
		}
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return w
	}
	return string(unicode.ToUpper(r)) + w[size:]
}

// Descriptions explains the rows of the comparison tables, keyed by display name
var Descriptions = map[string]string{
	// summary
	"Net Income":                      "Total income after taxes, credits, and benefits. Does not include the value of healthcare coverage.",
	"Healthcare Benefits":             "Cash equivalent value of healthcare coverage (Medicaid, CHIP, ACA premium subsidies). Not included in net income.",
	"Benefits":                        "Government assistance programs like SNAP, TANF, and Head Start. Eligibility often depends on combined household income.",
	"Refundable Tax Credits":          "Tax credits that can result in a payment even if you owe no tax. Includes EITC and CTC.",
	"Taxes Before Refundable Credits": "Federal income tax, Social Security, and Medicare taxes before any refundable credits are applied.",

	// benefits
	"SNAP":                       "Supplemental Nutrition Assistance Program. Benefits are based on household size and income; marriage combines both incomes.",
	"TANF":                       "Temporary Assistance for Needy Families. Cash assistance with income limits that change when households merge.",
	"WIC":                        "Special Supplemental Nutrition Program for Women, Infants, and Children. Eligibility based on household income.",
	"SSI":                        "Supplemental Security Income. Married couples receive less than two individuals would separately.",
	"Social Security":            "Social Security benefits including retirement, disability, and survivors benefits.",
	"Head Start":                 "Federal preschool program for children ages 3-5 from low-income families.",
	"Early Head Start":           "Federal program for infants and toddlers (0-3) from low-income families. Includes childcare and development services.",
	"Free School Meals":          "National School Lunch Program free meals. Eligibility based on household income relative to the poverty line.",
	"Reduced Price School Meals": "National School Lunch Program reduced-price meals. Based on household income between 130% and 185% of poverty.",
	"Lifeline":                   "FCC program providing discounted phone or internet service to low-income households.",
	"ACP":                        "Affordable Connectivity Program. Broadband subsidy based on household income or program participation.",
	OtherBenefits:                "Additional government benefits not individually listed, as computed by the engine.",

	// healthcare
	"Medicaid":           "Health coverage with income thresholds based on household size. Marriage can change eligibility.",
	"CHIP":               "Children's Health Insurance Program. Provides health coverage for children in families with incomes too high for Medicaid.",
	"Premium Tax Credit": "ACA marketplace health insurance subsidy. Based on household income relative to the poverty line.",
	OtherHealthcare:      "Additional healthcare benefits not individually listed, as computed by the engine.",

	// credits
	"EITC":        "Earned Income Tax Credit. Phase-out thresholds are higher for married filers, but combined income can still reduce the credit.",
	"CTC":         "Child Tax Credit. Income phase-outs differ by filing status; marriage can push income above thresholds.",
	"CDCC":        "Child and Dependent Care Credit. Available to working parents; marriage changes eligible expenses and income limits.",
	OtherCredits: "Additional refundable tax credits not individually listed, as computed by the engine.",

	// taxes
	"Income Tax Before Refundable Credits": "Federal income tax calculated on combined income. Tax brackets for married filers are not exactly double single brackets.",
	"Self Employment Tax":                  "Social Security and Medicare taxes on self-employment income. Calculated per person, unaffected by marriage.",
	"Employee Social Security Tax":         "6.2% tax on wages up to the annual cap. Calculated per worker, generally unaffected by marital status.",
	"Employee Medicare Tax":                "1.45% tax on all wages (plus 0.9% above $200k/$250k married). The additional Medicare tax threshold changes with marriage.",
	OtherTaxes:                             "Additional taxes not individually listed, as computed by the engine.",

	// state
	"State EITC":               "State-level Earned Income Tax Credit. Many states offer their own EITC as a percentage of the federal credit.",
	"State CTC":                "State-level Child Tax Credit. Some states provide additional child tax credits beyond the federal CTC.",
	"State CDCC":               "State-level Child and Dependent Care Credit. State version of the federal dependent care credit.",
	"State Refundable Credits": "Total state refundable tax credits. Includes state EITC, CTC, and other refundable credits.",
	"State Income Tax Before Refundable Credits": "State income tax liability before applying state refundable credits.",
}

// Describe returns the glossary entry for a display name, or ""
func Describe(program string) string {
	return Descriptions[program]
}
