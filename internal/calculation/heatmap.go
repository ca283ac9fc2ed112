package calculation

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/marriagecalc/internal/country"
	"github.com/rgehrsitz/marriagecalc/internal/domain"
	"github.com/rgehrsitz/marriagecalc/internal/extract"
	"github.com/rgehrsitz/marriagecalc/internal/heatmap"
	"github.com/rgehrsitz/marriagecalc/internal/metadata"
	"github.com/rgehrsitz/marriagecalc/internal/situation"
	"golang.org/x/sync/errgroup"
)

// GetHeatmapData sweeps head and spouse income over a 33×33 grid in three
// concurrent calls (married 2-D, head-alone and spouse-alone 1-D) and builds
// the per-tab delta grids plus the raw per-variable series needed to rebuild
// any single cell.
func (e *Engine) GetHeatmapData(ctx context.Context, countryID string, h domain.Household) (*domain.HeatmapSweep, error) {
	p, cat, err := Resolve(countryID)
	if err != nil {
		return nil, err
	}

	year := situation.YearOrDefault(p, h.Year)
	region := situation.RegionOrDefault(p, h.Region)
	ceiling := heatmap.SweepCeiling(h.Head.Income, h.SpouseIncome())
	count := ceiling.Count

	e.logger().Infof("heatmap %s region=%s max=%.0f step=%.0f count=%d",
		p.ID, region, ceiling.MaxIncome, ceiling.Step, count)

	// incomes come from the axes; the scalar inputs are zeroed so they
	// cannot leak into the request
	married := h
	spouse := domain.Adult{}
	if h.Spouse != nil {
		spouse = *h.Spouse
	}
	spouse.Income = 0
	married.Spouse = &spouse
	married.Head.Income = 0

	build := func(hh domain.Household, earners int) *situation.Situation {
		s := situation.Build(p, hh)
		situation.AddOutputVariables(p, cat, s, year, region)
		return situation.AttachAxes(s, situation.IncomeAxes(count, ceiling.MaxIncome, year, earners))
	}
	situations := [3]*situation.Situation{
		build(married, 2),
		build(married.HeadAlone(), 1),
		build(married.SpouseAlone(), 1),
	}
	names := [3]string{"married sweep", "head single sweep", "spouse single sweep"}

	var results [3]situation.Result
	g, gctx := errgroup.WithContext(ctx)
	for i := range situations {
		i := i // per-iteration copy; go.mod targets go1.21 loop semantics
		g.Go(func() error {
			r, err := e.Client.Calculate(gctx, p, situations[i])
			if err != nil {
				return fmt.Errorf("%s: %w", names[i], err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	regionCredits := RegionCredits(p, cat, region)
	x := extract.New(p, year, e.logger())
	programData := collectSeries(x, cat, regionCredits, results, count)

	sweep := &domain.HeatmapSweep{
		Grids:              make(map[string][][]float64),
		Tabs:               p.GridTabs(),
		MaxIncome:          ceiling.MaxIncome,
		Step:               ceiling.Step,
		Count:              count,
		ProgramData:        programData,
		HeadLines:          make(map[string][]float64),
		SpouseLines:        make(map[string][]float64),
		StateCreditEntries: regionCredits,
	}

	for _, gv := range p.GridConfig {
		series, ok := programData[gv.Variable]
		if !ok {
			d := metadata.Descriptor{Variable: gv.Variable, Entity: metadata.EntityHousehold}
			series = seriesFor(x, d, results, count)
			programData[gv.Variable] = series
		}
		delta := heatmap.ReshapeAndDelta(series.Married, series.Head, series.Spouse, count)
		sweep.Grids[gv.Tab] = heatmap.ApplySignConvention(delta, gv.InvertDelta)
		sweep.HeadLines[gv.Tab] = series.Head
		sweep.SpouseLines[gv.Tab] = series.Spouse
	}

	if fc := p.FederalCredits; fc != nil {
		addDerivedGrid(sweep, fc)
	}

	return sweep, nil
}

// addDerivedGrid computes a composite tab from two already-built tabs
func addDerivedGrid(sweep *domain.HeatmapSweep, dg *country.DerivedGrid) {
	sweep.Grids[dg.Tab] = heatmap.Subtract(sweep.Grids[dg.Minuend], sweep.Grids[dg.Subtrahend])
	sweep.HeadLines[dg.Tab] = heatmap.SubtractLines(sweep.HeadLines[dg.Minuend], sweep.HeadLines[dg.Subtrahend])
	sweep.SpouseLines[dg.Tab] = heatmap.SubtractLines(sweep.SpouseLines[dg.Minuend], sweep.SpouseLines[dg.Subtrahend])
}

// collectSeries extracts every catalog variable and region credit from the
// three sweep responses
func collectSeries(x *extract.Extractor, cat *metadata.Catalog, regionCredits []metadata.Descriptor, results [3]situation.Result, count int) map[string]domain.ProgramSeries {
	data := make(map[string]domain.ProgramSeries)
	descriptors := append(append([]metadata.Descriptor{}, cat.AllDescriptors()...), regionCredits...)
	for _, d := range descriptors {
		if _, done := data[d.Variable]; done {
			continue
		}
		data[d.Variable] = seriesFor(x, d, results, count)
	}
	return data
}

func seriesFor(x *extract.Extractor, d metadata.Descriptor, results [3]situation.Result, count int) domain.ProgramSeries {
	return domain.ProgramSeries{
		Married: fit(x.ArrayForDescriptor(results[0], d, count*count), count*count),
		Head:    fit(x.ArrayForDescriptor(results[1], d, count), count),
		Spouse:  fit(x.ArrayForDescriptor(results[2], d, count), count),
	}
}

// fit pads with zeros or truncates to exactly n values
func fit(values []float64, n int) []float64 {
	out := make([]float64, n)
	copy(out, values)
	return out
}
