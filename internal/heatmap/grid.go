// Package heatmap holds the pure grid arithmetic behind the income sweep.
package heatmap

import "math"

const (
	// Count is the number of sweep points per axis, zero included
	Count = 33
	// MinCeiling is the smallest income ceiling a sweep covers
	MinCeiling = 80000.0
	// Granularity is the rounding unit of the sweep step
	Granularity = 2500.0
)

// Ceiling describes the sweep range: Count points from 0 to MaxIncome in
// steps of Step
type Ceiling struct {
	MaxIncome float64
	Step      float64
	Count     int
}

// SweepCeiling picks a range that covers at least MinCeiling and both
// incomes, with a step that is a multiple of Granularity
func SweepCeiling(headIncome, spouseIncome float64) Ceiling {
	rawMax := math.Max(MinCeiling, math.Max(headIncome, spouseIncome))
	intervals := float64(Count - 1)
	step := math.Ceil(rawMax/intervals/Granularity) * Granularity
	return Ceiling{
		MaxIncome: step * intervals,
		Step:      step,
		Count:     Count,
	}
}

// ReshapeAndDelta turns the married leg's flat sweep (head-major:
// married[headIdx*count+spouseIdx]) into a delta grid against the two
// single-filer lines and transposes it, so the result is addressed
// grid[spouseIdx][headIdx]. Missing entries read as 0.
func ReshapeAndDelta(married, head, spouse []float64, count int) [][]float64 {
	grid := make([][]float64, count)
	for spouseIdx := range grid {
		row := make([]float64, count)
		for headIdx := range row {
			m := at(married, headIdx*count+spouseIdx)
			row[headIdx] = m - (at(head, headIdx) + at(spouse, spouseIdx))
		}
		grid[spouseIdx] = row
	}
	return grid
}

// ApplySignConvention negates every cell when invert is set, so that for
// cost-like variables a reduction reads as a positive bonus. The input is
// not modified.
func ApplySignConvention(grid [][]float64, invert bool) [][]float64 {
	out := make([][]float64, len(grid))
	for i, row := range grid {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			if invert {
				v = -v
			}
			out[i][j] = v
		}
	}
	return out
}

// Subtract returns a − b cell by cell over the shape of a
func Subtract(a, b [][]float64) [][]float64 {
	out := make([][]float64, len(a))
	for i, row := range a {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			var w float64
			if i < len(b) {
				w = at(b[i], j)
			}
			out[i][j] = v - w
		}
	}
	return out
}

// SubtractLines returns a − b element-wise over the length of a
func SubtractLines(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i, v := range a {
		out[i] = v - at(b, i)
	}
	return out
}

// Negate returns a copy of line with every element negated
func Negate(line []float64) []float64 {
	out := make([]float64, len(line))
	for i, v := range line {
		out[i] = -v
	}
	return out
}

// Range reports the smallest and largest cell, for colour scaling
func Range(grid [][]float64) (lo, hi float64) {
	first := true
	for _, row := range grid {
		for _, v := range row {
			if first {
				lo, hi = v, v
				first = false
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	return lo, hi
}

func at(s []float64, i int) float64 {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i]
}
