package calculation

import (
	"context"
	"errors"
	"fmt"

	"github.com/rgehrsitz/marriagecalc/internal/country"
	"github.com/rgehrsitz/marriagecalc/internal/domain"
	"github.com/rgehrsitz/marriagecalc/internal/extract"
	"github.com/rgehrsitz/marriagecalc/internal/logging"
	"github.com/rgehrsitz/marriagecalc/internal/metadata"
	"github.com/rgehrsitz/marriagecalc/internal/situation"
	"golang.org/x/sync/errgroup"
)

// ErrUnknownCountry is returned for country ids without a profile
var ErrUnknownCountry = errors.New("unknown country")

// Logger receives engine diagnostics
type Logger = logging.Logger

// NopLogger discards engine diagnostics
type NopLogger = logging.NopLogger

// Calculator performs one remote calculation
type Calculator interface {
	Calculate(ctx context.Context, p country.Profile, s *situation.Situation) (situation.Result, error)
}

// Engine orchestrates scenario and sweep calculations against a Calculator
type Engine struct {
	Client Calculator
	Logger Logger
}

// NewEngine creates an engine around a calculator
func NewEngine(client Calculator) *Engine {
	return &Engine{
		Client: client,
		Logger: NopLogger{},
	}
}

// SetLogger sets the engine logger; nil restores the no-op logger
func (e *Engine) SetLogger(l Logger) {
	e.Logger = logging.OrNop(l)
}

// Resolve returns the profile and catalog for a country id
func Resolve(countryID string) (country.Profile, *metadata.Catalog, error) {
	p, ok := country.Lookup(countryID)
	if !ok {
		return country.Profile{}, nil, fmt.Errorf("%w: %q", ErrUnknownCountry, countryID)
	}
	cat, err := metadata.Load(p.ID)
	if err != nil {
		return country.Profile{}, nil, err
	}
	return p, cat, nil
}

// RegionCredits returns the extra per-region credits requested for a
// household, or nil when the country has none
func RegionCredits(p country.Profile, cat *metadata.Catalog, region string) []metadata.Descriptor {
	if !p.HasStateCredits {
		return nil
	}
	code, _ := p.ResolveRegion(situation.RegionOrDefault(p, region), false)
	return cat.ForRegion(code)
}

// GetPrograms runs one calculation for a household and assembles its bundle
func (e *Engine) GetPrograms(ctx context.Context, countryID string, h domain.Household) (domain.Bundle, error) {
	p, cat, err := Resolve(countryID)
	if err != nil {
		return domain.Bundle{}, err
	}
	return e.programs(ctx, p, cat, h)
}

func (e *Engine) programs(ctx context.Context, p country.Profile, cat *metadata.Catalog, h domain.Household) (domain.Bundle, error) {
	year := situation.YearOrDefault(p, h.Year)
	region := situation.RegionOrDefault(p, h.Region)

	s := situation.Build(p, h)
	situation.AddOutputVariables(p, cat, s, year, region)

	result, err := e.Client.Calculate(ctx, p, s)
	if err != nil {
		return domain.Bundle{}, err
	}

	x := extract.New(p, year, e.logger())
	read := func(d metadata.Descriptor) float64 {
		return x.ForDescriptor(result, d)
	}
	return assembleBundle(p, cat, RegionCredits(p, cat, region), read), nil
}

// GetCategorizedPrograms runs the married, head-alone and spouse-alone legs
// concurrently. The first failing leg cancels the others and fails the whole
// comparison.
func (e *Engine) GetCategorizedPrograms(ctx context.Context, countryID string, h domain.Household) (domain.Comparison, error) {
	p, cat, err := Resolve(countryID)
	if err != nil {
		return domain.Comparison{}, err
	}

	e.logger().Debugf("comparison %s region=%s head=%.0f spouse=%.0f children=%d",
		p.ID, h.Region, h.Head.Income, h.SpouseIncome(), len(h.Children))

	var out domain.Comparison
	g, gctx := errgroup.WithContext(ctx)
	legs := []struct {
		name string
		h    domain.Household
		dst  *domain.Bundle
	}{
		{"married scenario", h, &out.Married},
		{"head single scenario", h.HeadAlone(), &out.HeadSingle},
		{"spouse single scenario", h.SpouseAlone(), &out.SpouseSingle},
	}
	for _, leg := range legs {
		leg := leg // per-iteration copy; go.mod targets go1.21 loop semantics
		g.Go(func() error {
			b, err := e.programs(gctx, p, cat, leg.h)
			if err != nil {
				return fmt.Errorf("%s: %w", leg.name, err)
			}
			*leg.dst = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.Comparison{}, err
	}
	return out, nil
}

func (e *Engine) logger() Logger {
	return logging.OrNop(e.Logger)
}

// assembleBundle builds a bundle from a value reader. Both the live path and
// the sweep cell path go through here so the two produce the same shape.
func assembleBundle(p country.Profile, cat *metadata.Catalog, regionCredits []metadata.Descriptor, read func(metadata.Descriptor) float64) domain.Bundle {
	b := domain.NewBundle()

	for _, a := range p.AggregateMap {
		if a.Variable == "" {
			b.Aggregates[a.Key] = 0
			continue
		}
		d, ok := cat.Lookup(a.Variable)
		if !ok {
			d = metadata.Descriptor{Variable: a.Variable, Entity: metadata.EntityHousehold}
		}
		b.Aggregates[a.Key] = read(d)
	}

	fill := func(dst map[string]float64, list []metadata.Descriptor) {
		for _, d := range list {
			dst[d.Variable] = read(d)
		}
	}
	fill(b.Benefits, cat.Benefits)
	fill(b.Credits, cat.Credits)
	fill(b.Taxes, cat.Taxes)
	fill(b.Health, cat.Healthcare)
	fill(b.StateCredits, cat.StateCredits)
	fill(b.StateTaxes, cat.StateTaxes)

	for _, d := range regionCredits {
		b.StateCredits[d.Label] = read(d)
	}
	return b
}
