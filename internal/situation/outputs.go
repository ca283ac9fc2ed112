package situation

import (
	"github.com/rgehrsitz/marriagecalc/internal/country"
	"github.com/rgehrsitz/marriagecalc/internal/metadata"
)

// AddOutputVariables requests every catalog variable from the engine by
// inserting Compute placeholders in the container matching each variable's
// entity. Aggregates go to the household; person-level variables go to every
// person; variables whose entity the country lacks are skipped. When the
// country models state credits, the region's extra credits (NY including the
// nested NYC list) are requested too. The situation is mutated and returned.
func AddOutputVariables(p country.Profile, cat *metadata.Catalog, s *Situation, year, region string) *Situation {
	if hh, ok := hostEntity(p, s, metadata.EntityHousehold); ok {
		for _, d := range cat.Aggregates {
			hh.Request(d.Variable, year)
		}
	}

	for _, category := range cat.Categories() {
		if category.Name == metadata.CategoryAggregates {
			continue
		}
		for _, d := range category.Descriptors {
			place(p, s, d, year)
		}
	}

	if p.HasStateCredits {
		code, _ := p.ResolveRegion(region, false)
		for _, d := range cat.ForRegion(code) {
			place(p, s, d, year)
		}
	}

	return s
}

func place(p country.Profile, s *Situation, d metadata.Descriptor, year string) {
	if d.Entity == metadata.EntityPerson {
		for _, name := range s.People.Names() {
			person, _ := s.People.Get(name)
			person.Request(d.Variable, year)
		}
		return
	}
	if e, ok := hostEntity(p, s, d.Entity); ok {
		e.Request(d.Variable, year)
	}
}

// hostEntity finds the single named instance that hosts a group-level entity
// kind, if the country has that container
func hostEntity(p country.Profile, s *Situation, kind metadata.EntityKind) (*Entity, bool) {
	c, ok := p.ContainerFor(kind)
	if !ok {
		return nil, false
	}
	return s.Entity(c.Key, c.Name)
}
