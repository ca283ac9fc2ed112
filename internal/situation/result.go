package situation

// Result is the decoded engine response, shaped like the request with values
// resolved: result[containerKey][instanceName][variable][year]. Leaves are
// float64, nil, echoed inputs (bool, string) or, in sweep mode, []any of
// numbers in row-major axis order.
type Result map[string]any

// Value walks the four-level path and reports whether a non-nil value is
// present. Any structural mismatch is a miss.
func (r Result) Value(containerKey, instance, variable, year string) (any, bool) {
	container, ok := r[containerKey].(map[string]any)
	if !ok {
		return nil, false
	}
	entity, ok := container[instance].(map[string]any)
	if !ok {
		return nil, false
	}
	tl, ok := entity[variable].(map[string]any)
	if !ok {
		return nil, false
	}
	v, ok := tl[year]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Instances lists the entity instances of a container. Order follows Go map
// iteration and must not be relied on.
func (r Result) Instances(containerKey string) map[string]map[string]any {
	container, ok := r[containerKey].(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]map[string]any, len(container))
	for name, raw := range container {
		if e, ok := raw.(map[string]any); ok {
			out[name] = e
		}
	}
	return out
}
