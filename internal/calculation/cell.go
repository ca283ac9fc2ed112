package calculation

import (
	"github.com/rgehrsitz/marriagecalc/internal/country"
	"github.com/rgehrsitz/marriagecalc/internal/domain"
	"github.com/rgehrsitz/marriagecalc/internal/metadata"
)

// MaxCellCount bounds the grid side accepted by BuildCellResults so the
// flat married index cannot overflow
const MaxCellCount = 1 << 15

// BuildCellResults rebuilds the three-leg comparison for one sweep cell from
// the stored series, without any network call. The married value is
// programData[v].Married[headIdx*count+spouseIdx]; the single values are
// Head[headIdx] and Spouse[spouseIdx]. Out-of-range indices and missing
// series read as 0, as does a count above MaxCellCount.
func BuildCellResults(
	p country.Profile,
	cat *metadata.Catalog,
	programData map[string]domain.ProgramSeries,
	headIdx, spouseIdx, count int,
	stateCreditEntries []metadata.Descriptor,
) domain.Comparison {
	inRange := count <= MaxCellCount &&
		headIdx >= 0 && headIdx < count && spouseIdx >= 0 && spouseIdx < count
	flat := 0
	if inRange {
		flat = headIdx*count + spouseIdx
	}

	lookup := func(pick func(domain.ProgramSeries) ([]float64, int)) func(metadata.Descriptor) float64 {
		return func(d metadata.Descriptor) float64 {
			if !inRange {
				return 0
			}
			series, ok := programData[d.Variable]
			if !ok {
				return 0
			}
			values, idx := pick(series)
			if idx < 0 || idx >= len(values) {
				return 0
			}
			return values[idx]
		}
	}

	return domain.Comparison{
		Married: assembleBundle(p, cat, stateCreditEntries, lookup(func(s domain.ProgramSeries) ([]float64, int) {
			return s.Married, flat
		})),
		HeadSingle: assembleBundle(p, cat, stateCreditEntries, lookup(func(s domain.ProgramSeries) ([]float64, int) {
			return s.Head, headIdx
		})),
		SpouseSingle: assembleBundle(p, cat, stateCreditEntries, lookup(func(s domain.ProgramSeries) ([]float64, int) {
			return s.Spouse, spouseIdx
		})),
	}
}

// CellFromSweep is BuildCellResults over a sweep produced by GetHeatmapData
func CellFromSweep(countryID string, sweep *domain.HeatmapSweep, headIdx, spouseIdx int) (domain.Comparison, error) {
	p, cat, err := Resolve(countryID)
	if err != nil {
		return domain.Comparison{}, err
	}
	return BuildCellResults(p, cat, sweep.ProgramData, headIdx, spouseIdx, sweep.Count, sweep.StateCreditEntries), nil
}
