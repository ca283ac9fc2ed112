package domain

// Adult describes the head or spouse of a household
type Adult struct {
	Income   float64 `yaml:"income" json:"income"`
	Age      int     `yaml:"age,omitempty" json:"age,omitempty"` // 0 means the country default
	Disabled bool    `yaml:"disabled,omitempty" json:"disabled,omitempty"`
	Pregnant bool    `yaml:"pregnant,omitempty" json:"pregnant,omitempty"`
	HasESI   bool    `yaml:"has_esi,omitempty" json:"hasESI,omitempty"` // employer-sponsored insurance
}

// Child describes a dependent. Children have no income.
type Child struct {
	Age      int  `yaml:"age" json:"age"`
	Disabled bool `yaml:"disabled,omitempty" json:"disabled,omitempty"`
}

// Household is the user-entered scenario input. A nil Spouse models a
// single filer.
type Household struct {
	Region   string  `yaml:"region" json:"region"`
	Year     string  `yaml:"year" json:"year"`
	Head     Adult   `yaml:"head" json:"head"`
	Spouse   *Adult  `yaml:"spouse,omitempty" json:"spouse,omitempty"`
	Children []Child `yaml:"children,omitempty" json:"children,omitempty"`
	InNYC    bool    `yaml:"in_nyc,omitempty" json:"inNYC,omitempty"`
}

// IsMarried reports whether the household includes a spouse
func (h Household) IsMarried() bool {
	return h.Spouse != nil
}

// HeadAlone returns the head-as-single-filer decomposition. Children stay
// with the head.
func (h Household) HeadAlone() Household {
	out := h
	out.Spouse = nil
	out.Children = append([]Child(nil), h.Children...)
	return out
}

// SpouseAlone returns the spouse-as-single-filer decomposition: the spouse's
// attributes are promoted to the head slot and no children are attached.
// Without a spouse the result is a zero-income default adult.
func (h Household) SpouseAlone() Household {
	out := h
	out.Head = Adult{}
	if h.Spouse != nil {
		out.Head = *h.Spouse
	}
	out.Spouse = nil
	out.Children = nil
	return out
}

// SpouseIncome returns the spouse's income, or 0 for a single filer
func (h Household) SpouseIncome() float64 {
	if h.Spouse == nil {
		return 0
	}
	return h.Spouse.Income
}

// Scenario is a named household run against one country
type Scenario struct {
	Name        string    `yaml:"name" json:"name"`
	Description string    `yaml:"description,omitempty" json:"description,omitempty"`
	Country     string    `yaml:"country" json:"country"`
	Household   Household `yaml:"household" json:"household"`
}
