package calculation

import (
	"hash/fnv"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/rgehrsitz/marriagecalc/internal/simclient"
)

// fakeEngine answers calculation requests with deterministic integer values
// derived from the request itself, so a scalar request and the matching
// cell of a sweep request always agree exactly.
//
// Group-level variables: base(v) + 3*totalIncome/2500 + 1000*[two adults] + 7*people.
// Person-level variables: base(v)%100 + income/2500 for that person.
type fakeEngine struct {
	t *testing.T

	mu       sync.Mutex
	requests []map[string]any

	// fail, when set, decides per request whether to answer with an error
	fail func(household map[string]any) (status int, body string, failed bool)
}

func newFakeEngine(t *testing.T) (*fakeEngine, *httptest.Server) {
	fe := &fakeEngine{t: t}
	srv := httptest.NewServer(http.HandlerFunc(fe.serve))
	t.Cleanup(srv.Close)
	return fe, srv
}

func (fe *fakeEngine) client(srv *httptest.Server) *simclient.Client {
	return simclient.New(srv.URL, nil)
}

func (fe *fakeEngine) serve(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var req map[string]any
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	household, _ := req["household"].(map[string]any)

	fe.mu.Lock()
	fe.requests = append(fe.requests, household)
	fe.mu.Unlock()

	if fe.fail != nil {
		if status, msg, failed := fe.fail(household); failed {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(msg))
			return
		}
	}

	resolveHousehold(household)
	out, _ := json.Marshal(map[string]any{"status": "ok", "result": household})
	_, _ = w.Write(out)
}

func (fe *fakeEngine) requestCount() int {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return len(fe.requests)
}

func base(variable string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(variable))
	return int(h.Sum32() % 5000)
}

type sweepSpec struct {
	points int     // number of flat entries
	count  int     // points per axis
	step   float64 // income step
	dims   int
}

func readSweep(household map[string]any) *sweepSpec {
	axes, ok := household["axes"].([]any)
	if !ok || len(axes) == 0 {
		return nil
	}
	first := axes[0].([]any)[0].(map[string]any)
	count := int(first["count"].(float64))
	maxIncome := first["max"].(float64)
	spec := &sweepSpec{count: count, step: maxIncome / float64(count-1), dims: len(axes)}
	spec.points = count
	if spec.dims == 2 {
		spec.points = count * count
	}
	return spec
}

// incomesAt returns the employment income of each person at a flat sweep
// index; k < 0 means scalar mode
func incomesAt(people map[string]any, order []string, spec *sweepSpec, k int) map[string]float64 {
	incomes := make(map[string]float64, len(order))
	for _, name := range order {
		person := people[name].(map[string]any)
		if tl, ok := person["employment_income"].(map[string]any); ok {
			for _, v := range tl {
				if f, ok := v.(float64); ok {
					incomes[name] = f
				}
			}
		}
	}
	if spec == nil || k < 0 {
		return incomes
	}
	if spec.dims == 2 {
		incomes["you"] = float64(k/spec.count) * spec.step
		incomes["your partner"] = float64(k%spec.count) * spec.step
	} else {
		incomes["you"] = float64(k) * spec.step
	}
	return incomes
}

func resolveHousehold(household map[string]any) {
	people, _ := household["people"].(map[string]any)
	order := make([]string, 0, len(people))
	adults := 0
	for name := range people {
		order = append(order, name)
		if !strings.HasPrefix(name, "child_") {
			adults++
		}
	}
	spec := readSweep(household)

	groupValue := func(variable string, incomes map[string]float64) float64 {
		var total float64
		for _, v := range incomes {
			total += v
		}
		married := 0
		if adults == 2 {
			married = 1
		}
		return float64(base(variable)) + 3*total/2500 + float64(1000*married) + float64(7*len(people))
	}
	personValue := func(variable, person string, incomes map[string]float64) float64 {
		return float64(base(variable)%100) + incomes[person]/2500
	}

	valueOf := func(compute func(incomes map[string]float64) float64) any {
		if spec == nil {
			return compute(incomesAt(people, order, nil, -1))
		}
		arr := make([]any, spec.points)
		for k := range arr {
			arr[k] = compute(incomesAt(people, order, spec, k))
		}
		return arr
	}

	for key, rawContainer := range household {
		if key == "axes" {
			continue
		}
		container, ok := rawContainer.(map[string]any)
		if !ok {
			continue
		}
		for instance, rawEntity := range container {
			entity := rawEntity.(map[string]any)
			for variable, rawTL := range entity {
				tl, ok := rawTL.(map[string]any)
				if !ok {
					continue
				}
				for year, v := range tl {
					if v != nil {
						continue
					}
					if key == "people" {
						person := instance
						tl[year] = valueOf(func(in map[string]float64) float64 { return personValue(variable, person, in) })
					} else {
						tl[year] = valueOf(func(in map[string]float64) float64 { return groupValue(variable, in) })
					}
				}
			}
		}
	}
}
