// Package country holds the per-country configuration records consumed by the
// otherwise country-agnostic situation, extraction and heatmap code.
package country

import (
	"sort"
	"strings"

	"github.com/rgehrsitz/marriagecalc/internal/metadata"
)

// Region is a selectable state or nation within a country
type Region struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

// Container names the situation container that hosts an entity kind
type Container struct {
	Key  string `json:"key"`  // e.g. "tax_units"
	Name string `json:"name"` // e.g. "your tax unit"
}

// GroupEntity is one grouping container created by the situation builder.
//
// Exactly one group per country is the couple unit: the head and spouse join it
// together. When ChildUnits is set, each child gets its own one-member instance
// of the couple container instead of joining the adults (US marital units).
// Every other group lists every person.
type GroupEntity struct {
	Key        string `json:"key"`
	Name       string `json:"name"`
	Couple     bool   `json:"couple,omitempty"`
	ChildUnits bool   `json:"childUnits,omitempty"`
}

// AggregateKey maps a stable bundle key to the engine variable that feeds it.
// An empty Variable means the country does not report that aggregate.
type AggregateKey struct {
	Key      string `json:"key"`
	Variable string `json:"variable,omitempty"`
}

// Standard aggregate keys shared by every country
const (
	AggNetIncome           = "householdNetIncome"
	AggNetIncomeWithHealth = "householdNetIncomeWithHealth"
	AggBenefits            = "householdBenefits"
	AggRefundableCredits   = "householdRefundableCredits"
	AggTaxBeforeCredits    = "householdTaxBeforeCredits"
	AggHealthcareValue     = "healthcareBenefitValue"
	AggStateCredits        = "householdRefundableStateCredits"
)

// GridVariable declares one heatmap tab
type GridVariable struct {
	Variable    string `json:"variable"`
	Tab         string `json:"tab"`
	InvertDelta bool   `json:"invertDelta,omitempty"`
}

// DerivedGrid describes a composite tab computed as Minuend − Subtrahend,
// both referring to other GridConfig tabs.
type DerivedGrid struct {
	Tab        string `json:"tab"`
	Minuend    string `json:"minuend"`
	Subtrahend string `json:"subtrahend"`
}

// Profile is the full configuration record for one country
type Profile struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	CurrencySymbol string   `json:"currencySymbol"`
	APIPath        string   `json:"apiPath"`
	DefaultYear    string   `json:"defaultYear"`
	AvailableYears []string `json:"availableYears"`
	DefaultAge     int      `json:"defaultAge"`
	DefaultRegion  string   `json:"defaultRegion"`
	Regions        []Region `json:"regions"`
	RegionLabel    string   `json:"regionLabel"`
	RegionVariable string   `json:"regionVariable"`

	Containers    map[metadata.EntityKind]Container `json:"entityContainers"`
	GroupEntities []GroupEntity                     `json:"groupEntities"`
	Tabs          []string                          `json:"tabs"`

	HasCredits      bool `json:"hasCredits"`
	HasStateCredits bool `json:"hasStateCredits"`
	HasDisability   bool `json:"hasDisability"`
	HasPregnancy    bool `json:"hasPregnancy"`
	HasESI          bool `json:"hasESI"`
	HasNYC          bool `json:"hasNYC"`

	AggregateMap   []AggregateKey `json:"aggregateMap"`
	GridConfig     []GridVariable `json:"gridConfig"`
	FederalCredits *DerivedGrid   `json:"federalCredits,omitempty"`
}

var profiles = map[string]Profile{
	US.ID: US,
	UK.ID: UK,
}

// Get returns the profile for id, falling back to the US profile for
// unknown ids
func Get(id string) Profile {
	if p, ok := Lookup(id); ok {
		return p
	}
	return US
}

// Lookup returns the profile for id and whether it exists
func Lookup(id string) (Profile, bool) {
	p, ok := profiles[strings.ToLower(id)]
	return p, ok
}

// All returns every profile ordered by id
func All() []Profile {
	ids := make([]string, 0, len(profiles))
	for id := range profiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]Profile, 0, len(ids))
	for _, id := range ids {
		out = append(out, profiles[id])
	}
	return out
}

// CoupleUnit returns the group entity the head and spouse share
func (p Profile) CoupleUnit() (GroupEntity, bool) {
	for _, g := range p.GroupEntities {
		if g.Couple {
			return g, true
		}
	}
	return GroupEntity{}, false
}

// ContainerFor returns the container hosting an entity kind, if the country has one
func (p Profile) ContainerFor(kind metadata.EntityKind) (Container, bool) {
	c, ok := p.Containers[kind]
	return c, ok
}

// AggregateVariable returns the engine variable behind an aggregate key
func (p Profile) AggregateVariable(key string) string {
	for _, a := range p.AggregateMap {
		if a.Key == key {
			return a.Variable
		}
	}
	return ""
}

// HasRegion reports whether code is one of the country's regions
func (p Profile) HasRegion(code string) bool {
	for _, r := range p.Regions {
		if r.Code == code {
			return true
		}
	}
	return false
}

// HasYear reports whether year is one the country supports
func (p Profile) HasYear(year string) bool {
	for _, y := range p.AvailableYears {
		if y == year {
			return true
		}
	}
	return false
}

// ResolveRegion maps a selected region to the value sent to the engine and
// the city flag. The pseudo-region NYC is New York with the city flag set.
func (p Profile) ResolveRegion(code string, inNYC bool) (string, bool) {
	if !p.HasNYC {
		return code, false
	}
	if code == "NYC" {
		return "NY", true
	}
	return code, inNYC && code == "NY"
}

// GridTabs returns the heatmap tab names in display order, including the
// derived federal credits tab when the country has one
func (p Profile) GridTabs() []string {
	tabs := make([]string, 0, len(p.GridConfig)+1)
	for _, g := range p.GridConfig {
		tabs = append(tabs, g.Tab)
	}
	if p.FederalCredits != nil {
		tabs = append(tabs, p.FederalCredits.Tab)
	}
	return tabs
}
