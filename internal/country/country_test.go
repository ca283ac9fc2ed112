package country

import (
	"testing"

	"github.com/rgehrsitz/marriagecalc/internal/metadata"
	"github.com/stretchr/testify/assert"
)

func TestGet_FallsBackToUS(t *testing.T) {
	assert.Equal(t, "uk", Get("uk").ID)
	assert.Equal(t, "us", Get("us").ID)
	assert.Equal(t, "us", Get("xx").ID)

	_, ok := Lookup("xx")
	assert.False(t, ok)
}

func TestProfiles_Defaults(t *testing.T) {
	assert.Equal(t, "2026", US.DefaultYear)
	assert.Equal(t, 40, US.DefaultAge)
	assert.Equal(t, "CA", US.DefaultRegion)
	assert.Equal(t, "2025", UK.DefaultYear)
	assert.Equal(t, 35, UK.DefaultAge)
	assert.Equal(t, "ENGLAND", UK.DefaultRegion)

	for _, p := range All() {
		assert.True(t, p.HasRegion(p.DefaultRegion), p.ID)
		assert.True(t, p.HasYear(p.DefaultYear), p.ID)

		couple, ok := p.CoupleUnit()
		assert.True(t, ok, p.ID)
		assert.NotEmpty(t, couple.Name, p.ID)

		_, ok = p.ContainerFor(metadata.EntityHousehold)
		assert.True(t, ok, p.ID)
	}
}

func TestProfile_AggregateVariable(t *testing.T) {
	assert.Equal(t, "household_tax", UK.AggregateVariable(AggTaxBeforeCredits))
	assert.Equal(t, "household_net_income", UK.AggregateVariable(AggNetIncomeWithHealth))
	assert.Equal(t, "", UK.AggregateVariable(AggHealthcareValue))
	assert.Equal(t, "healthcare_benefit_value", US.AggregateVariable(AggHealthcareValue))
}

func TestProfile_ResolveRegion(t *testing.T) {
	tests := []struct {
		name     string
		p        Profile
		code     string
		inNYC    bool
		wantCode string
		wantNYC  bool
	}{
		{"NYC pseudo-region", US, "NYC", false, "NY", true},
		{"NY with city flag", US, "NY", true, "NY", true},
		{"NY without city flag", US, "NY", false, "NY", false},
		{"flag ignored outside NY", US, "CA", true, "CA", false},
		{"flag ignored outside US", UK, "ENGLAND", true, "ENGLAND", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, nyc := tt.p.ResolveRegion(tt.code, tt.inNYC)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantNYC, nyc)
		})
	}
}

func TestProfile_GridTabs(t *testing.T) {
	tabs := US.GridTabs()
	assert.Len(t, tabs, 8)
	assert.Equal(t, "net income", tabs[0])
	assert.Equal(t, "federal credits", tabs[7])

	assert.Equal(t, []string{"net income", "benefits", "tax"}, UK.GridTabs())
}
