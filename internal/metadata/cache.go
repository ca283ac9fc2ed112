package metadata

import (
	"embed"
	"fmt"
	"sync"
)

//go:embed catalogs/*.yaml
var catalogFS embed.FS

// The cache is filled at most once per country and never invalidated:
// catalogs are compiled into the binary. Parsing happens under the lock so
// concurrent first calls for the same country never build two catalogs.
var (
	cacheMu sync.Mutex
	cache   = make(map[string]*Catalog)
)

// Load returns the catalog for a country id, parsing it on first use
func Load(countryID string) (*Catalog, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if c, ok := cache[countryID]; ok {
		return c, nil
	}

	data, err := catalogFS.ReadFile("catalogs/" + countryID + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("no metadata catalog for country %q: %w", countryID, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", countryID, err)
	}

	cache[countryID] = c
	return c, nil
}

// Available lists the country ids with an embedded catalog
func Available() []string {
	entries, err := catalogFS.ReadDir("catalogs")
	if err != nil {
		return nil
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		ids = append(ids, name[:len(name)-len(".yaml")])
	}
	return ids
}
