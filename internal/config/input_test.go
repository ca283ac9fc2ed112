package config

import (
	"testing"

	"github.com/rgehrsitz/marriagecalc/internal/country"
	"github.com/rgehrsitz/marriagecalc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile(t *testing.T) {
	parser := NewInputParser()

	scenario, err := parser.LoadFromFile("testdata/married_ca.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Dual earners in California", scenario.Name)
	assert.Equal(t, "us", scenario.Country)
	h := scenario.Household
	assert.Equal(t, "CA", h.Region, "region is upper-cased")
	assert.Equal(t, "2026", h.Year)
	assert.Equal(t, 45000.0, h.Head.Income)
	assert.Equal(t, 34, h.Head.Age)
	require.NotNil(t, h.Spouse)
	assert.True(t, h.Spouse.Pregnant)
	assert.Equal(t, []domain.Child{{Age: 3}}, h.Children)
}

func TestLoadFromFile_AppliesCountryDefaults(t *testing.T) {
	scenario, err := NewInputParser().LoadFromFile("testdata/uk_single.yaml")
	require.NoError(t, err)

	assert.Equal(t, "uk", scenario.Country)
	assert.Equal(t, "SCOTLAND", scenario.Household.Region)
	assert.Equal(t, country.UK.DefaultYear, scenario.Household.Year)
	assert.False(t, scenario.Household.IsMarried())
}

func TestLoadFromFile_Errors(t *testing.T) {
	parser := NewInputParser()

	_, err := parser.LoadFromFile("testdata/missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")

	_, err = parser.LoadFromFile("testdata/invalid.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParse_DefaultCountry(t *testing.T) {
	parser := &InputParser{DefaultCountry: "uk"}
	scenario, err := parser.Parse([]byte("household:\n  head:\n    income: 10000\n"))
	require.NoError(t, err)
	assert.Equal(t, "uk", scenario.Country)
	assert.Equal(t, "ENGLAND", scenario.Household.Region)
}

func TestValidateHousehold(t *testing.T) {
	parser := NewInputParser()

	tests := []struct {
		name    string
		p       country.Profile
		h       domain.Household
		wantErr string
	}{
		{
			name: "valid married US",
			p:    country.US,
			h:    domain.Household{Region: "TX", Year: "2026", Head: domain.Adult{Income: 1}, Spouse: &domain.Adult{HasESI: true}},
		},
		{
			name:    "unknown state",
			p:       country.US,
			h:       domain.Household{Region: "ZZ"},
			wantErr: `unknown state "ZZ" for United States`,
		},
		{
			name:    "unavailable year",
			p:       country.US,
			h:       domain.Household{Region: "CA", Year: "1999"},
			wantErr: "year 1999 is not available",
		},
		{
			name:    "negative income",
			p:       country.US,
			h:       domain.Household{Head: domain.Adult{Income: -1}},
			wantErr: "head validation failed: income cannot be negative",
		},
		{
			name:    "spouse too old",
			p:       country.US,
			h:       domain.Household{Spouse: &domain.Adult{Age: 121}},
			wantErr: "spouse validation failed: age must be between 0 and 120",
		},
		{
			name:    "child too old",
			p:       country.US,
			h:       domain.Household{Children: []domain.Child{{Age: 4}, {Age: 26}}},
			wantErr: "child 2 validation failed: age must be between 0 and 25",
		},
		{
			name:    "pregnancy not modelled in the UK",
			p:       country.UK,
			h:       domain.Household{Region: "WALES", Head: domain.Adult{Pregnant: true}},
			wantErr: "pregnancy is not modelled for United Kingdom",
		},
		{
			name:    "ESI not modelled in the UK",
			p:       country.UK,
			h:       domain.Household{Spouse: &domain.Adult{HasESI: true}},
			wantErr: "employer-sponsored insurance is not modelled",
		},
		{
			name:    "disabled child in the UK",
			p:       country.UK,
			h:       domain.Household{Children: []domain.Child{{Age: 3, Disabled: true}}},
			wantErr: "child 1 validation failed: disability is not modelled",
		},
		{
			name:    "NYC flag outside New York",
			p:       country.US,
			h:       domain.Household{Region: "NJ", InNYC: true},
			wantErr: `in_nyc requires region NY, got "NJ"`,
		},
		{
			name:    "NYC flag in the UK",
			p:       country.UK,
			h:       domain.Household{InNYC: true},
			wantErr: "in_nyc is not supported",
		},
		{
			name: "NYC pseudo-region",
			p:    country.US,
			h:    domain.Household{Region: "NYC", InNYC: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parser.ValidateHousehold(tt.p, &tt.h)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateScenario_UnknownCountry(t *testing.T) {
	err := NewInputParser().ValidateScenario(&domain.Scenario{Country: "fr"})
	require.Error(t, err)
	assert.Equal(t, `unknown country "fr"`, err.Error())
}
