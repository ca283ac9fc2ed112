package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rgehrsitz/marriagecalc/internal/country"
	"github.com/rgehrsitz/marriagecalc/internal/domain"
	"gopkg.in/yaml.v3"
)

const (
	maxAdultAge = 120
	maxChildAge = 25
)

// InputParser handles parsing of household scenario files
type InputParser struct {
	// DefaultCountry is used when a scenario does not name one
	DefaultCountry string
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{DefaultCountry: country.US.ID}
}

// LoadFromFile loads a scenario from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a scenario document. Missing country, region
// and year are filled from the country defaults before validation.
func (ip *InputParser) Parse(data []byte) (*domain.Scenario, error) {
	var scenario domain.Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.applyDefaults(&scenario)

	if err := ip.ValidateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("scenario validation failed: %w", err)
	}
	return &scenario, nil
}

func (ip *InputParser) applyDefaults(s *domain.Scenario) {
	if s.Country == "" {
		s.Country = ip.DefaultCountry
	}
	s.Country = strings.ToLower(s.Country)
	p, ok := country.Lookup(s.Country)
	if !ok {
		return
	}
	if s.Household.Region == "" {
		s.Household.Region = p.DefaultRegion
	}
	s.Household.Region = strings.ToUpper(s.Household.Region)
	if s.Household.Year == "" {
		s.Household.Year = p.DefaultYear
	}
}

// ValidateScenario validates a scenario against its country profile
func (ip *InputParser) ValidateScenario(s *domain.Scenario) error {
	p, ok := country.Lookup(s.Country)
	if !ok {
		return fmt.Errorf("unknown country %q", s.Country)
	}
	if err := ip.ValidateHousehold(p, &s.Household); err != nil {
		return fmt.Errorf("household validation failed: %w", err)
	}
	return nil
}

// ValidateHousehold validates a household for a country
func (ip *InputParser) ValidateHousehold(p country.Profile, h *domain.Household) error {
	if h.Region != "" && !p.HasRegion(h.Region) {
		return fmt.Errorf("unknown %s %q for %s", strings.ToLower(p.RegionLabel), h.Region, p.Name)
	}
	if h.Year != "" && !p.HasYear(h.Year) {
		return fmt.Errorf("year %s is not available (have %s)", h.Year, strings.Join(p.AvailableYears, ", "))
	}
	if h.InNYC && !p.HasNYC {
		return fmt.Errorf("in_nyc is not supported for %s", p.Name)
	}
	if h.InNYC && h.Region != "NY" && h.Region != "NYC" {
		return fmt.Errorf("in_nyc requires region NY, got %q", h.Region)
	}

	if err := ip.validateAdult(p, &h.Head); err != nil {
		return fmt.Errorf("head validation failed: %w", err)
	}
	if h.Spouse != nil {
		if err := ip.validateAdult(p, h.Spouse); err != nil {
			return fmt.Errorf("spouse validation failed: %w", err)
		}
	}
	for i, c := range h.Children {
		if err := ip.validateChild(p, &c); err != nil {
			return fmt.Errorf("child %d validation failed: %w", i+1, err)
		}
	}
	return nil
}

// validateAdult validates the head or spouse
func (ip *InputParser) validateAdult(p country.Profile, a *domain.Adult) error {
	if a.Income < 0 {
		return fmt.Errorf("income cannot be negative")
	}
	if a.Age < 0 || a.Age > maxAdultAge {
		return fmt.Errorf("age must be between 0 and %d", maxAdultAge)
	}
	if a.Disabled && !p.HasDisability {
		return fmt.Errorf("disability is not modelled for %s", p.Name)
	}
	if a.Pregnant && !p.HasPregnancy {
		return fmt.Errorf("pregnancy is not modelled for %s", p.Name)
	}
	if a.HasESI && !p.HasESI {
		return fmt.Errorf("employer-sponsored insurance is not modelled for %s", p.Name)
	}
	return nil
}

// validateChild validates a dependent
func (ip *InputParser) validateChild(p country.Profile, c *domain.Child) error {
	if c.Age < 0 || c.Age > maxChildAge {
		return fmt.Errorf("age must be between 0 and %d", maxChildAge)
	}
	if c.Disabled && !p.HasDisability {
		return fmt.Errorf("disability is not modelled for %s", p.Name)
	}
	return nil
}
