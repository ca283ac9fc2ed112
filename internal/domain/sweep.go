package domain

import "github.com/rgehrsitz/marriagecalc/internal/metadata"

// ProgramSeries holds the flattened sweep values of one variable for the
// three legs. Married has Count*Count entries indexed headIdx*Count+spouseIdx;
// Head and Spouse have Count entries each.
type ProgramSeries struct {
	Married []float64 `json:"married"`
	Head    []float64 `json:"head"`
	Spouse  []float64 `json:"spouse"`
}

// HeatmapSweep is the output of a 2-D income sweep
type HeatmapSweep struct {
	// Grids maps a tab name to a Count×Count delta grid addressed
	// grid[spouseIdx][headIdx]
	Grids     map[string][][]float64 `json:"grids"`
	Tabs      []string               `json:"tabs"`
	MaxIncome float64                `json:"maxIncome"`
	Step      float64                `json:"step"`
	Count     int                    `json:"count"`

	ProgramData map[string]ProgramSeries `json:"programData"`

	// Single-filer baselines per tab, indexed by the head or spouse axis
	HeadLines   map[string][]float64 `json:"headLines"`
	SpouseLines map[string][]float64 `json:"spouseLines"`

	StateCreditEntries []metadata.Descriptor `json:"stateCreditEntries,omitempty"`
}

// IncomeAt converts a grid index to the swept income
func (s *HeatmapSweep) IncomeAt(idx int) float64 {
	return float64(idx) * s.Step
}

// IndexFor returns the grid index nearest to an income, clamped to the grid
func (s *HeatmapSweep) IndexFor(income float64) int {
	if s.Step <= 0 || income <= 0 {
		return 0
	}
	idx := int(income/s.Step + 0.5)
	if idx >= s.Count {
		idx = s.Count - 1
	}
	return idx
}
