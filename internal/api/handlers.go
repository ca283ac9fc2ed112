package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rgehrsitz/marriagecalc/internal/calculation"
	"github.com/rgehrsitz/marriagecalc/internal/compare"
	"github.com/rgehrsitz/marriagecalc/internal/config"
	"github.com/rgehrsitz/marriagecalc/internal/country"
	"github.com/rgehrsitz/marriagecalc/internal/domain"
	"github.com/rgehrsitz/marriagecalc/internal/metadata"
	"github.com/rgehrsitz/marriagecalc/internal/situation"
)

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (s *Server) countries(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, country.All())
}

func (s *Server) metadata(w http.ResponseWriter, r *http.Request) {
	_, cat, err := calculation.Resolve(mux.Vars(r)["country"])
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cat)
}

// household decodes and validates the household body for the path country
func (s *Server) household(w http.ResponseWriter, r *http.Request) (country.Profile, *metadata.Catalog, domain.Household, bool) {
	p, cat, err := calculation.Resolve(mux.Vars(r)["country"])
	if err != nil {
		s.fail(w, r, err)
		return p, nil, domain.Household{}, false
	}

	var h domain.Household
	if err := decodeBody(w, r, &h); err != nil {
		s.fail(w, r, err)
		return p, nil, h, false
	}
	h.Region = strings.ToUpper(h.Region)
	if err := config.NewInputParser().ValidateHousehold(p, &h); err != nil {
		s.fail(w, r, invalid("%v", err))
		return p, nil, h, false
	}
	return p, cat, h, true
}

// situation returns the request payload for one leg: ?leg=married|head|spouse,
// with ?outputs=false to omit the requested output variables
func (s *Server) situation(w http.ResponseWriter, r *http.Request) {
	p, cat, h, ok := s.household(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	switch leg := q.Get("leg"); leg {
	case "", "married":
	case "head":
		h = h.HeadAlone()
	case "spouse":
		h = h.SpouseAlone()
	default:
		s.fail(w, r, invalid("unknown leg %q", leg))
		return
	}

	sit := situation.Build(p, h)
	if q.Get("outputs") != "false" {
		situation.AddOutputVariables(p, cat, sit,
			situation.YearOrDefault(p, h.Year), situation.RegionOrDefault(p, h.Region))
	}
	writeJSON(w, http.StatusOK, sit)
}

func (s *Server) programs(w http.ResponseWriter, r *http.Request) {
	p, _, h, ok := s.household(w, r)
	if !ok {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()

	b, err := s.Service.GetPrograms(ctx, p.ID, h)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// compare returns the comparison report; ?audit=true adds the
// reconciliation checks
func (s *Server) compare(w http.ResponseWriter, r *http.Request) {
	p, _, h, ok := s.household(w, r)
	if !ok {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()

	audit, _ := strconv.ParseBool(r.URL.Query().Get("audit"))
	report, err := compare.NewCompareEngine(s.Service).Compare(ctx,
		&domain.Scenario{Country: p.ID, Household: h},
		compare.CompareOptions{Audit: audit, IncludeRaw: true})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) heatmap(w http.ResponseWriter, r *http.Request) {
	p, _, h, ok := s.household(w, r)
	if !ok {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()

	sweep, err := s.Service.GetHeatmapData(ctx, p.ID, h)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sweep)
}

type cellRequest struct {
	ProgramData        map[string]domain.ProgramSeries `json:"programData"`
	HeadIdx            int                             `json:"headIdx"`
	SpouseIdx          int                             `json:"spouseIdx"`
	Count              int                             `json:"count"`
	Region             string                          `json:"region"`
	StateCreditEntries []metadata.Descriptor           `json:"stateCreditEntries"`
}

// cell rebuilds the comparison for one sweep cell without calling the engine
func (s *Server) cell(w http.ResponseWriter, r *http.Request) {
	p, cat, err := calculation.Resolve(mux.Vars(r)["country"])
	if err != nil {
		s.fail(w, r, err)
		return
	}

	var req cellRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	if req.Count <= 0 || req.Count > calculation.MaxCellCount {
		s.fail(w, r, invalid("count must be between 1 and %d", calculation.MaxCellCount))
		return
	}
	entries := req.StateCreditEntries
	if entries == nil {
		entries = calculation.RegionCredits(p, cat, strings.ToUpper(req.Region))
	}

	cmp := calculation.BuildCellResults(p, cat, req.ProgramData, req.HeadIdx, req.SpouseIdx, req.Count, entries)
	writeJSON(w, http.StatusOK, cmp)
}
