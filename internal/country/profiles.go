package country

import "github.com/rgehrsitz/marriagecalc/internal/metadata"

var defaultYears = []string{"2024", "2025", "2026", "2027", "2028"}

// US is the United States profile
var US = Profile{
	ID:             "us",
	Name:           "United States",
	CurrencySymbol: "$",
	APIPath:        "/us/calculate",
	DefaultYear:    "2026",
	AvailableYears: defaultYears,
	DefaultAge:     40,
	DefaultRegion:  "CA",
	Regions:        USRegions,
	RegionLabel:    "State",
	RegionVariable: "state_name",
	Containers: map[metadata.EntityKind]Container{
		metadata.EntityHousehold: {Key: "households", Name: "your household"},
		metadata.EntityTaxUnit:   {Key: "tax_units", Name: "your tax unit"},
		metadata.EntitySPMUnit:   {Key: "spm_units", Name: "your spm_unit"},
	},
	GroupEntities: []GroupEntity{
		{Key: "families", Name: "your family"},
		{Key: "marital_units", Name: "your marital unit", Couple: true, ChildUnits: true},
		{Key: "tax_units", Name: "your tax unit"},
		{Key: "spm_units", Name: "your spm_unit"},
		{Key: "households", Name: "your household"},
	},
	Tabs:            []string{"summary", "taxes", "benefits", "credits"},
	HasCredits:      true,
	HasStateCredits: true,
	HasDisability:   true,
	HasPregnancy:    true,
	HasESI:          true,
	HasNYC:          true,
	AggregateMap: []AggregateKey{
		{Key: AggNetIncome, Variable: "household_net_income"},
		{Key: AggNetIncomeWithHealth, Variable: "household_net_income_including_health_benefits"},
		{Key: AggBenefits, Variable: "household_benefits"},
		{Key: AggRefundableCredits, Variable: "household_refundable_tax_credits"},
		{Key: AggTaxBeforeCredits, Variable: "household_tax_before_refundable_credits"},
		{Key: AggHealthcareValue, Variable: "healthcare_benefit_value"},
		{Key: AggStateCredits, Variable: "household_refundable_state_tax_credits"},
	},
	GridConfig: []GridVariable{
		{Variable: "household_net_income", Tab: "net income"},
		{Variable: "household_net_income_including_health_benefits", Tab: "net income (with healthcare)"},
		{Variable: "household_benefits", Tab: "benefits"},
		{Variable: "household_refundable_tax_credits", Tab: "refundable tax credits"},
		{Variable: "household_tax_before_refundable_credits", Tab: "tax before refundable credits", InvertDelta: true},
		{Variable: "healthcare_benefit_value", Tab: "healthcare benefits"},
		{Variable: "household_refundable_state_tax_credits", Tab: "state credits"},
	},
	FederalCredits: &DerivedGrid{
		Tab:        "federal credits",
		Minuend:    "refundable tax credits",
		Subtrahend: "state credits",
	},
}

// UK is the United Kingdom profile
var UK = Profile{
	ID:             "uk",
	Name:           "United Kingdom",
	CurrencySymbol: "£",
	APIPath:        "/uk/calculate",
	DefaultYear:    "2025",
	AvailableYears: defaultYears,
	DefaultAge:     35,
	DefaultRegion:  "ENGLAND",
	Regions:        UKRegions,
	RegionLabel:    "Country",
	RegionVariable: "country",
	Containers: map[metadata.EntityKind]Container{
		metadata.EntityHousehold: {Key: "households", Name: "your household"},
		metadata.EntityBenUnit:   {Key: "benunits", Name: "your benefit unit"},
	},
	GroupEntities: []GroupEntity{
		{Key: "benunits", Name: "your benefit unit", Couple: true},
		{Key: "households", Name: "your household"},
	},
	Tabs: []string{"summary", "taxes", "benefits"},
	AggregateMap: []AggregateKey{
		{Key: AggNetIncome, Variable: "household_net_income"},
		// no separate health metric in the UK model
		{Key: AggNetIncomeWithHealth, Variable: "household_net_income"},
		{Key: AggBenefits, Variable: "household_benefits"},
		{Key: AggRefundableCredits},
		{Key: AggTaxBeforeCredits, Variable: "household_tax"},
		{Key: AggHealthcareValue},
		{Key: AggStateCredits},
	},
	GridConfig: []GridVariable{
		{Variable: "household_net_income", Tab: "net income"},
		{Variable: "household_benefits", Tab: "benefits"},
		{Variable: "household_tax", Tab: "tax", InvertDelta: true},
	},
}

// USRegions lists the states, DC and the NYC pseudo-region
var USRegions = []Region{
	{"AL", "Alabama"}, {"AK", "Alaska"},
	{"AZ", "Arizona"}, {"AR", "Arkansas"},
	{"CA", "California"}, {"CO", "Colorado"},
	{"CT", "Connecticut"}, {"DE", "Delaware"},
	{"DC", "District of Columbia"}, {"FL", "Florida"},
	{"GA", "Georgia"}, {"HI", "Hawaii"},
	{"ID", "Idaho"}, {"IL", "Illinois"},
	{"IN", "Indiana"}, {"IA", "Iowa"},
	{"KS", "Kansas"}, {"KY", "Kentucky"},
	{"LA", "Louisiana"}, {"ME", "Maine"},
	{"MD", "Maryland"}, {"MA", "Massachusetts"},
	{"MI", "Michigan"}, {"MN", "Minnesota"},
	{"MS", "Mississippi"}, {"MO", "Missouri"},
	{"MT", "Montana"}, {"NE", "Nebraska"},
	{"NV", "Nevada"}, {"NH", "New Hampshire"},
	{"NJ", "New Jersey"}, {"NM", "New Mexico"},
	{"NY", "New York"}, {"NYC", "New York City"},
	{"NC", "North Carolina"}, {"ND", "North Dakota"},
	{"OH", "Ohio"}, {"OK", "Oklahoma"},
	{"OR", "Oregon"}, {"PA", "Pennsylvania"},
	{"RI", "Rhode Island"}, {"SC", "South Carolina"},
	{"SD", "South Dakota"}, {"TN", "Tennessee"},
	{"TX", "Texas"}, {"UT", "Utah"},
	{"VT", "Vermont"}, {"VA", "Virginia"},
	{"WA", "Washington"}, {"WV", "West Virginia"},
	{"WI", "Wisconsin"}, {"WY", "Wyoming"},
}

// UKRegions lists the four UK nations
var UKRegions = []Region{
	{"ENGLAND", "England"},
	{"SCOTLAND", "Scotland"},
	{"WALES", "Wales"},
	{"NORTHERN_IRELAND", "Northern Ireland"},
}
