package situation

// Axis is one swept variable in the engine's axes extension. Index selects
// which person's variable is swept when several people share the name.
type Axis struct {
	Name   string  `json:"name"`
	Count  int     `json:"count"`
	Index  *int    `json:"index,omitempty"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Period string  `json:"period"`
}

// AttachAxes sets the sweep specification: one inner slice per independent
// dimension
func AttachAxes(s *Situation, axes [][]Axis) *Situation {
	s.Axes = axes
	return s
}

// IncomeAxes sweeps employment income from 0 to maxIncome in count points.
// With two earners the result has two dimensions, head (index 0) first, so
// the engine flattens results as headIdx*count + spouseIdx. A single earner
// gets one dimension without an index.
func IncomeAxes(count int, maxIncome float64, year string, earners int) [][]Axis {
	axis := func(index *int) []Axis {
		return []Axis{{
			Name:   "employment_income",
			Count:  count,
			Index:  index,
			Min:    0,
			Max:    maxIncome,
			Period: year,
		}}
	}
	if earners < 2 {
		return [][]Axis{axis(nil)}
	}
	head, spouse := 0, 1
	return [][]Axis{axis(&head), axis(&spouse)}
}
