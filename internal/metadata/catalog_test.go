package metadata

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalogYAML = `
benefits:
  - {variable: snap, entity: spm_unit, label: SNAP}
  - {variable: wic, entity: person, label: WIC}
credits:
  - {variable: eitc, entity: tax_unit, label: EITC}
taxes:
  - {variable: employee_payroll_tax, entity: person, label: Payroll tax}
healthcare:
  - {variable: medicaid_cost, entity: person, label: Medicaid}
state_credits:
  - {variable: state_eitc, entity: tax_unit, label: State EITC}
state_taxes: []
aggregates:
  - {variable: household_net_income, entity: household, label: Net income}
  - {variable: household_benefits, entity: household, label: Benefits}
state_credits_by_state:
  NY:
    credits:
      - {variable: ny_eitc, entity: tax_unit, label: NY EITC}
      - {variable: ny_ctc, entity: tax_unit, label: Empire State Child Credit}
    nested:
      NYC:
        - {variable: nyc_eitc, entity: tax_unit, label: NYC EITC}
        - {variable: ny_eitc, entity: tax_unit, label: NY EITC}
  CA:
    credits:
      - {variable: ca_eitc, entity: tax_unit, label: CalEITC}
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(testCatalogYAML))
	require.NoError(t, err)

	assert.Len(t, c.Benefits, 2)
	assert.Len(t, c.Categories(), 7)
	assert.Equal(t, CategoryBenefits, c.Categories()[0].Name)
	assert.Equal(t, CategoryAggregates, c.Categories()[6].Name)

	all := c.AllDescriptors()
	require.Len(t, all, 8)
	assert.Equal(t, "snap", all[0].Variable)
	assert.Equal(t, "household_benefits", all[7].Variable)

	byEntity := c.DescriptorsByEntity()
	assert.Len(t, byEntity[EntityPerson], 3)
	assert.Len(t, byEntity[EntityTaxUnit], 2)
	assert.Len(t, byEntity[EntityHousehold], 2)

	d, ok := c.Lookup("eitc")
	require.True(t, ok)
	assert.Equal(t, EntityTaxUnit, d.Entity)
	_, ok = c.Lookup("missing")
	assert.False(t, ok)
}

func TestStateCredits_NestedRegionIsDeduplicated(t *testing.T) {
	c, err := Parse([]byte(testCatalogYAML))
	require.NoError(t, err)

	ny := c.ForRegion("NY")
	vars := make([]string, len(ny))
	for i, d := range ny {
		vars[i] = d.Variable
	}
	assert.Equal(t, []string{"ny_eitc", "ny_ctc", "nyc_eitc"}, vars)

	assert.Len(t, c.ForRegion("CA"), 1)
	assert.Nil(t, c.ForRegion("TX"))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad yaml", "benefits: [", "failed to parse catalog YAML"},
		{"missing variable", "benefits:\n  - {entity: person, label: X}\n", "variable is required"},
		{"missing entity", "taxes:\n  - {variable: income_tax, label: X}\n", "entity is required"},
		{
			"missing nested entity",
			"state_credits_by_state:\n  NY:\n    nested:\n      NYC:\n        - {variable: nyc_eitc}\n",
			"stateCreditsByState.NY.NYC",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestEntityKind_Known(t *testing.T) {
	assert.True(t, EntityBenUnit.Known())
	assert.True(t, EntityPerson.Known())
	assert.False(t, EntityKind("family").Known())
}

func TestLoad_EmbeddedCatalogs(t *testing.T) {
	for _, id := range []string{"us", "uk"} {
		c, err := Load(id)
		require.NoError(t, err, id)
		assert.NotEmpty(t, c.Aggregates, id)
		for _, d := range c.AllDescriptors() {
			assert.True(t, d.Entity.Known(), "%s: %s has entity %q", id, d.Variable, d.Entity)
		}
	}

	us, err := Load("us")
	require.NoError(t, err)
	assert.Empty(t, us.ForRegion("TX"))

	// NY pulls in the NYC credits once each
	seen := map[string]int{}
	for _, d := range us.ForRegion("NY") {
		seen[d.Variable]++
	}
	assert.Equal(t, 1, seen["nyc_eitc"])
	for v, n := range seen {
		assert.Equal(t, 1, n, v)
	}

	assert.ElementsMatch(t, []string{"uk", "us"}, Available())
}

func TestLoad_UnknownCountry(t *testing.T) {
	_, err := Load("fr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"fr"`)
}

func TestLoad_CachedResultsAreIdentical(t *testing.T) {
	first, err := Load("us")
	require.NoError(t, err)
	second, err := Load("us")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Same(t, &first.AllDescriptors()[0], &second.AllDescriptors()[0])

	ny1 := first.ForRegion("NY")
	ny2 := second.ForRegion("NY")
	require.NotEmpty(t, ny1)
	assert.Same(t, &ny1[0], &ny2[0])
}

func TestLoad_ConcurrentFirstAccess(t *testing.T) {
	cacheMu.Lock()
	delete(cache, "uk")
	cacheMu.Unlock()

	const workers = 16
	results := make([]*Catalog, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := Load("uk")
			if err == nil {
				results[i] = c
			}
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		assert.Same(t, results[0], results[i])
	}
}
