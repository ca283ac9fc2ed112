package metadata

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// EntityKind names the engine entity that owns a variable
type EntityKind string

const (
	EntityHousehold EntityKind = "household"
	EntityTaxUnit   EntityKind = "tax_unit"
	EntitySPMUnit   EntityKind = "spm_unit"
	EntityBenUnit   EntityKind = "benunit"
	EntityPerson    EntityKind = "person"
)

// Known reports whether the kind is one the calculator knows how to place and read
func (k EntityKind) Known() bool {
	switch k {
	case EntityHousehold, EntityTaxUnit, EntitySPMUnit, EntityBenUnit, EntityPerson:
		return true
	}
	return false
}

// Descriptor identifies a variable and where it lives in a situation
type Descriptor struct {
	Variable string     `yaml:"variable" json:"variable"`
	Entity   EntityKind `yaml:"entity" json:"entity"`
	Label    string     `yaml:"label" json:"label"`
}

// RegionCredits lists the refundable credits of one region. Nested holds
// sub-region lists (NYC under NY) that are always pulled in with the parent.
type RegionCredits struct {
	Credits []Descriptor            `yaml:"credits" json:"credits"`
	Nested  map[string][]Descriptor `yaml:"nested,omitempty" json:"nested,omitempty"`
}

// Category is a named group of descriptors in catalog order
type Category struct {
	Name        string
	Descriptors []Descriptor
}

// Category names, in the order they appear in a comparison bundle
const (
	CategoryBenefits     = "benefits"
	CategoryCredits      = "credits"
	CategoryTaxes        = "taxes"
	CategoryHealthcare   = "healthcare"
	CategoryStateCredits = "stateCredits"
	CategoryStateTaxes   = "stateTaxes"
	CategoryAggregates   = "aggregates"
)

// Catalog is the static per-country table of variables the calculator requests
type Catalog struct {
	Benefits            []Descriptor             `yaml:"benefits" json:"benefits"`
	Credits             []Descriptor             `yaml:"credits" json:"credits"`
	Taxes               []Descriptor             `yaml:"taxes" json:"taxes"`
	Healthcare          []Descriptor             `yaml:"healthcare" json:"healthcare"`
	StateCredits        []Descriptor             `yaml:"state_credits" json:"stateCredits"`
	StateTaxes          []Descriptor             `yaml:"state_taxes" json:"stateTaxes"`
	Aggregates          []Descriptor             `yaml:"aggregates" json:"aggregates"`
	StateCreditsByState map[string]RegionCredits `yaml:"state_credits_by_state" json:"stateCreditsByState"`

	// derived once by Parse, read-only afterwards
	categories    []Category
	all           []Descriptor
	byEntity      map[EntityKind][]Descriptor
	byVariable    map[string]Descriptor
	regionCredits map[string][]Descriptor
}

// Parse decodes a YAML catalog and builds its derived lookup structures
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("catalog validation failed: %w", err)
	}
	c.derive()
	return &c, nil
}

func (c *Catalog) validate() error {
	check := func(where string, list []Descriptor) error {
		for i, d := range list {
			if d.Variable == "" {
				return fmt.Errorf("%s[%d]: variable is required", where, i)
			}
			if d.Entity == "" {
				return fmt.Errorf("%s[%d] (%s): entity is required", where, i, d.Variable)
			}
		}
		return nil
	}

	for _, cat := range c.rawCategories() {
		if err := check(cat.Name, cat.Descriptors); err != nil {
			return err
		}
	}
	for region, rc := range c.StateCreditsByState {
		if err := check("stateCreditsByState."+region, rc.Credits); err != nil {
			return err
		}
		for sub, list := range rc.Nested {
			if err := check("stateCreditsByState."+region+"."+sub, list); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Catalog) rawCategories() []Category {
	return []Category{
		{Name: CategoryBenefits, Descriptors: c.Benefits},
		{Name: CategoryCredits, Descriptors: c.Credits},
		{Name: CategoryTaxes, Descriptors: c.Taxes},
		{Name: CategoryHealthcare, Descriptors: c.Healthcare},
		{Name: CategoryStateCredits, Descriptors: c.StateCredits},
		{Name: CategoryStateTaxes, Descriptors: c.StateTaxes},
		{Name: CategoryAggregates, Descriptors: c.Aggregates},
	}
}

func (c *Catalog) derive() {
	c.categories = c.rawCategories()
	c.byEntity = make(map[EntityKind][]Descriptor)
	c.byVariable = make(map[string]Descriptor)

	for _, cat := range c.categories {
		for _, d := range cat.Descriptors {
			if _, seen := c.byVariable[d.Variable]; seen {
				continue
			}
			c.byVariable[d.Variable] = d
			c.all = append(c.all, d)
			c.byEntity[d.Entity] = append(c.byEntity[d.Entity], d)
		}
	}

	c.regionCredits = make(map[string][]Descriptor, len(c.StateCreditsByState))
	for region, rc := range c.StateCreditsByState {
		c.regionCredits[region] = flattenRegion(rc)
	}
}

// flattenRegion merges a region's own credits with its nested lists,
// keeping the first occurrence of each variable.
func flattenRegion(rc RegionCredits) []Descriptor {
	seen := make(map[string]bool)
	var out []Descriptor
	add := func(list []Descriptor) {
		for _, d := range list {
			if seen[d.Variable] {
				continue
			}
			seen[d.Variable] = true
			out = append(out, d)
		}
	}

	add(rc.Credits)

	subs := make([]string, 0, len(rc.Nested))
	for sub := range rc.Nested {
		subs = append(subs, sub)
	}
	sort.Strings(subs)
	for _, sub := range subs {
		add(rc.Nested[sub])
	}
	return out
}

// Categories returns every category in bundle order
func (c *Catalog) Categories() []Category {
	return c.categories
}

// AllDescriptors returns every catalog variable once, in category order
func (c *Catalog) AllDescriptors() []Descriptor {
	return c.all
}

// DescriptorsByEntity groups the catalog variables by owning entity
func (c *Catalog) DescriptorsByEntity() map[EntityKind][]Descriptor {
	return c.byEntity
}

// Lookup finds a catalog variable by name
func (c *Catalog) Lookup(variable string) (Descriptor, bool) {
	d, ok := c.byVariable[variable]
	return d, ok
}

// ForRegion returns the per-region credit entries for a region code,
// including nested sub-region credits. Unknown regions yield nil.
func (c *Catalog) ForRegion(region string) []Descriptor {
	return c.regionCredits[region]
}
