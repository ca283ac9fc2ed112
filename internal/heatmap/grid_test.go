package heatmap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepCeiling(t *testing.T) {
	tests := []struct {
		name          string
		head, spouse  float64
		wantStep      float64
		wantMaxIncome float64
	}{
		{"floor applies", 45000, 45000, 2500, 80000},
		{"zero incomes", 0, 0, 2500, 80000},
		{"head above floor", 100000, 0, 5000, 160000},
		{"spouse above floor", 10000, 81000, 5000, 160000},
		{"exact multiple", 0, 160000, 5000, 160000},
		{"large income", 1000000, 250000, 32500, 1040000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := SweepCeiling(tt.head, tt.spouse)
			assert.Equal(t, 33, c.Count)
			assert.Equal(t, tt.wantStep, c.Step)
			assert.Equal(t, tt.wantMaxIncome, c.MaxIncome)
		})
	}
}

func TestSweepCeiling_Invariants(t *testing.T) {
	for head := 0.0; head <= 600000; head += 7919 {
		for _, spouse := range []float64{0, 12345, 80001, 333333} {
			c := SweepCeiling(head, spouse)
			require.GreaterOrEqual(t, c.MaxIncome, MinCeiling)
			require.GreaterOrEqual(t, c.MaxIncome, math.Max(head, spouse))
			require.Zero(t, math.Mod(c.Step, Granularity), "step %v", c.Step)
			require.Equal(t, c.Step*float64(c.Count-1), c.MaxIncome)
			require.Equal(t, 1, c.Count%2, "count is odd")
		}
	}
}

// sweep builds flat arrays where every value encodes its own index so
// orientation mistakes show up as wrong numbers
func sweep(count int) (married, head, spouse []float64) {
	married = make([]float64, count*count)
	for h := 0; h < count; h++ {
		for s := 0; s < count; s++ {
			married[h*count+s] = float64(100000 + h*1000 + s)
		}
	}
	head = make([]float64, count)
	spouse = make([]float64, count)
	for i := 0; i < count; i++ {
		head[i] = float64(i * 10)
		spouse[i] = float64(i * 3)
	}
	return married, head, spouse
}

func TestReshapeAndDelta_IndexConvention(t *testing.T) {
	married, head, spouse := sweep(Count)
	grid := ReshapeAndDelta(married, head, spouse, Count)

	require.Len(t, grid, Count)
	for spouseIdx := 0; spouseIdx < Count; spouseIdx++ {
		require.Len(t, grid[spouseIdx], Count)
		for headIdx := 0; headIdx < Count; headIdx++ {
			want := married[headIdx*Count+spouseIdx] - (head[headIdx] + spouse[spouseIdx])
			assert.Equal(t, want, grid[spouseIdx][headIdx], "cell [%d][%d]", spouseIdx, headIdx)
		}
	}

	// a non-symmetric corner makes the transpose explicit
	assert.Equal(t, float64(100000+1000*2+0)-(20+0), grid[0][2])
	assert.Equal(t, float64(100000+0+2)-(0+6), grid[2][0])
}

func TestReshapeAndDelta_ShortInputsReadAsZero(t *testing.T) {
	grid := ReshapeAndDelta([]float64{5}, nil, []float64{1}, 2)
	assert.Equal(t, [][]float64{{4, -1}, {0, 0}}, grid)
}

func TestApplySignConvention(t *testing.T) {
	married, head, spouse := sweep(3)
	grid := ReshapeAndDelta(married, head, spouse, 3)

	same := ApplySignConvention(grid, false)
	assert.Equal(t, grid, same)

	flipped := ApplySignConvention(grid, true)
	for i := range grid {
		for j := range grid[i] {
			assert.Equal(t, -grid[i][j], flipped[i][j])
		}
	}
	// input untouched so flipping is never applied twice by accident
	assert.Equal(t, ReshapeAndDelta(married, head, spouse, 3), grid)
	assert.Equal(t, grid, ApplySignConvention(flipped, true))
}

func TestSubtract(t *testing.T) {
	a := [][]float64{{10, 20}, {30, 40}}
	b := [][]float64{{1, 2}, {3}}
	assert.Equal(t, [][]float64{{9, 18}, {27, 40}}, Subtract(a, b))
	assert.Equal(t, []float64{9, 18, 30}, SubtractLines([]float64{10, 20, 30}, []float64{1, 2}))
	assert.Equal(t, []float64{-1, 2}, Negate([]float64{1, -2}))
}

func TestRange(t *testing.T) {
	lo, hi := Range([][]float64{{3, -7}, {12, 0}})
	assert.Equal(t, -7.0, lo)
	assert.Equal(t, 12.0, hi)

	lo, hi = Range(nil)
	assert.Zero(t, lo)
	assert.Zero(t, hi)
}
