// Package extract reads values out of engine responses. Every function is
// total: a missing path, a null, or a value of the wrong shape reads as 0 or
// an empty slice, never as an error.
package extract

import (
	"github.com/rgehrsitz/marriagecalc/internal/country"
	"github.com/rgehrsitz/marriagecalc/internal/logging"
	"github.com/rgehrsitz/marriagecalc/internal/metadata"
	"github.com/rgehrsitz/marriagecalc/internal/situation"
)

// Extractor reads one year of one country's responses
type Extractor struct {
	Profile country.Profile
	Year    string
	Logger  logging.Logger
}

// New creates an extractor. A nil logger discards diagnostics.
func New(p country.Profile, year string, logger logging.Logger) *Extractor {
	return &Extractor{Profile: p, Year: year, Logger: logging.OrNop(logger)}
}

// Scalar returns the value at container/instance/variable for the year.
// Sweep-shaped values outside a sweep yield their first element; more than
// one element is reported as a warning since it means the response does not
// match the request.
func (x *Extractor) Scalar(r situation.Result, containerKey, instance, variable string) float64 {
	v, ok := r.Value(containerKey, instance, variable, x.Year)
	if !ok {
		return 0
	}
	if arr, isArr := v.([]any); isArr {
		if len(arr) == 0 {
			return 0
		}
		if len(arr) > 1 {
			x.logger().Warnf("%s/%s/%s: expected a scalar, got %d values; using the first",
				containerKey, instance, variable, len(arr))
		}
		return toFloat(arr[0])
	}
	return toFloat(v)
}

// Array returns the sweep values at a path. A scalar becomes a one-element
// slice and a miss is an empty slice.
func (x *Extractor) Array(r situation.Result, containerKey, instance, variable string) []float64 {
	v, ok := r.Value(containerKey, instance, variable, x.Year)
	if !ok {
		return []float64{}
	}
	return toFloats(v)
}

// SumAcrossPeople adds a person-level variable over every person in the
// response. People without the variable contribute nothing.
func (x *Extractor) SumAcrossPeople(r situation.Result, variable string) float64 {
	var total float64
	for name := range r.Instances(situation.PeopleKey) {
		total += x.Scalar(r, situation.PeopleKey, name, variable)
	}
	return total
}

// SumArrayAcrossPeople adds a person-level sweep variable element-wise over
// every person. The result has length n, zero-filled; when n is 0 the
// longest person array sets the length.
func (x *Extractor) SumArrayAcrossPeople(r situation.Result, variable string, n int) []float64 {
	people := r.Instances(situation.PeopleKey)
	arrays := make([][]float64, 0, len(people))
	longest := 0
	for name := range people {
		arr := x.Array(r, situation.PeopleKey, name, variable)
		longest = max(longest, len(arr))
		arrays = append(arrays, arr)
	}
	if n <= 0 {
		n = longest
	}

	sum := make([]float64, n)
	for _, arr := range arrays {
		for i := 0; i < len(arr) && i < n; i++ {
			sum[i] += arr[i]
		}
	}
	return sum
}

// ForDescriptor reads a scalar from wherever the descriptor's entity lives
func (x *Extractor) ForDescriptor(r situation.Result, d metadata.Descriptor) float64 {
	if d.Entity == metadata.EntityPerson {
		return x.SumAcrossPeople(r, d.Variable)
	}
	c, ok := x.container(d)
	if !ok {
		return 0
	}
	return x.Scalar(r, c.Key, c.Name, d.Variable)
}

// ArrayForDescriptor reads sweep values from wherever the descriptor's entity
// lives. n is the expected length for person-level sums (see
// SumArrayAcrossPeople).
func (x *Extractor) ArrayForDescriptor(r situation.Result, d metadata.Descriptor, n int) []float64 {
	if d.Entity == metadata.EntityPerson {
		return x.SumArrayAcrossPeople(r, d.Variable, n)
	}
	c, ok := x.container(d)
	if !ok {
		return []float64{}
	}
	return x.Array(r, c.Key, c.Name, d.Variable)
}

func (x *Extractor) container(d metadata.Descriptor) (country.Container, bool) {
	if !d.Entity.Known() {
		x.logger().Debugf("variable %s has unknown entity %q", d.Variable, d.Entity)
		return country.Container{}, false
	}
	return x.Profile.ContainerFor(d.Entity)
}

func (x *Extractor) logger() logging.Logger {
	return logging.OrNop(x.Logger)
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case interface{ Float64() (float64, error) }:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

func toFloats(v any) []float64 {
	switch arr := v.(type) {
	case []any:
		out := make([]float64, len(arr))
		for i, e := range arr {
			out[i] = toFloat(e)
		}
		return out
	case []float64:
		return append([]float64(nil), arr...)
	}
	return []float64{toFloat(v)}
}
