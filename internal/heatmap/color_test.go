package heatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScale_Hex(t *testing.T) {
	tests := []struct {
		name  string
		scale Scale
		t     float64
		want  string
	}{
		{"teal low end", Teal, 0, "#1f2937"},
		{"teal neutral", Teal, 0.5, "#d1d5db"},
		{"teal neutral band", Teal, 0.52, "#d1d5db"},
		{"teal high end", Teal, 1, "#0d9488"},
		{"valentine high end", Valentine, 1, "#be185d"},
		{"valentine bonus stop", Valentine, 0.65, "#f9a8d4"},
		{"clamped below", Teal, -3, "#1f2937"},
		{"clamped above", Valentine, 7, "#be185d"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.scale.Hex(tt.t))
		})
	}
}

func TestScale_Empty(t *testing.T) {
	assert.Equal(t, "#000000", Scale{}.Hex(0.3))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, 0.5, Normalize(0, 1000))
	assert.Equal(t, 0.0, Normalize(-1000, 1000))
	assert.Equal(t, 1.0, Normalize(1000, 1000))
	assert.Equal(t, 0.75, Normalize(500, 1000))
	assert.Equal(t, 0.5, Normalize(42, 0), "flat grids sit at the neutral point")
}

func TestAbsMaxAndIsZero(t *testing.T) {
	grid := [][]float64{{0, 250}, {-900, 10}}
	assert.Equal(t, 900.0, AbsMax(grid))
	assert.False(t, IsZero(grid))

	assert.True(t, IsZero([][]float64{{0, 0}, {0, 0}}))
	assert.True(t, IsZero(nil))
	assert.Equal(t, 0.0, AbsMax(nil))
}

func TestIsLight(t *testing.T) {
	light := Teal.Color(0.5)
	dark := Teal.Color(0)
	assert.True(t, IsLight(light))
	assert.False(t, IsLight(dark))
}
