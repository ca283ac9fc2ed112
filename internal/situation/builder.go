package situation

import (
	"fmt"

	"github.com/rgehrsitz/marriagecalc/internal/country"
	"github.com/rgehrsitz/marriagecalc/internal/domain"
	"github.com/rgehrsitz/marriagecalc/internal/metadata"
)

// Person names used in every situation
const (
	HeadName   = "you"
	SpouseName = "your partner"
)

// ChildName returns the person name of the n-th child (1-based)
func ChildName(n int) string {
	return fmt.Sprintf("child_%d", n)
}

// Build constructs the request situation for a household. Country
// differences come only from the profile: its group entities and the
// attributes it models. Inputs are not validated beyond applying defaults.
func Build(p country.Profile, h domain.Household) *Situation {
	year := YearOrDefault(p, h.Year)
	s := New()

	addAdult(s, p, HeadName, h.Head, year)
	adults := []string{HeadName}
	if h.Spouse != nil {
		addAdult(s, p, SpouseName, *h.Spouse, year)
		adults = append(adults, SpouseName)
	}

	children := make([]string, 0, len(h.Children))
	for i, c := range h.Children {
		name := ChildName(i + 1)
		child := s.People.Add(name, NewEntity())
		child.Set("age", year, c.Age)
		child.Set("employment_income", year, 0.0)
		if p.HasDisability {
			child.Set("is_disabled", year, c.Disabled)
		}
		children = append(children, name)
	}

	everyone := append(append([]string(nil), adults...), children...)
	household, _ := p.ContainerFor(metadata.EntityHousehold)

	for _, g := range p.GroupEntities {
		c := s.AddContainer(g.Key)
		switch {
		case g.Couple && g.ChildUnits:
			c.Add(g.Name, NewEntity(adults...))
			for i, name := range children {
				unit := c.Add(name+" "+unitSuffix(g.Name), NewEntity(name))
				unit.Set("marital_unit_id", year, i+1)
			}
		default:
			c.Add(g.Name, NewEntity(everyone...))
		}
	}

	if hh, ok := s.Entity(household.Key, household.Name); ok {
		region, nyc := p.ResolveRegion(RegionOrDefault(p, h.Region), h.InNYC)
		hh.Set(p.RegionVariable, year, region)
		if nyc {
			hh.Set("in_nyc", year, true)
		}
	}

	return s
}

func addAdult(s *Situation, p country.Profile, name string, a domain.Adult, year string) {
	person := s.People.Add(name, NewEntity())
	person.Set("age", year, AgeOrDefault(p, a.Age))
	person.Set("employment_income", year, a.Income)
	if p.HasDisability {
		person.Set("is_disabled", year, a.Disabled)
	}
	if p.HasPregnancy {
		person.Set("is_pregnant", year, a.Pregnant)
	}
	if p.HasESI {
		person.Set("has_esi", year, a.HasESI)
	}
}

// unitSuffix turns "your marital unit" into "marital unit"
func unitSuffix(coupleName string) string {
	const prefix = "your "
	if len(coupleName) > len(prefix) && coupleName[:len(prefix)] == prefix {
		return coupleName[len(prefix):]
	}
	return coupleName
}

// YearOrDefault returns year, or the country's default year when empty
func YearOrDefault(p country.Profile, year string) string {
	if year == "" {
		return p.DefaultYear
	}
	return year
}

// RegionOrDefault returns region, or the country's default region when empty
func RegionOrDefault(p country.Profile, region string) string {
	if region == "" {
		return p.DefaultRegion
	}
	return region
}

// AgeOrDefault returns age, or the country's default adult age when zero
func AgeOrDefault(p country.Profile, age int) int {
	if age <= 0 {
		return p.DefaultAge
	}
	return age
}
