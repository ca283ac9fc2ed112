package domain

// Bundle is the result of one scenario leg: household aggregates keyed by
// the country's aggregate keys plus per-category program breakdowns keyed by
// engine variable. Region-specific credits are keyed by display label.
type Bundle struct {
	Aggregates   map[string]float64 `json:"aggregates"`
	Benefits     map[string]float64 `json:"benefits"`
	Credits      map[string]float64 `json:"credits"`
	Taxes        map[string]float64 `json:"taxes"`
	Health       map[string]float64 `json:"health"`
	StateCredits map[string]float64 `json:"stateCredits"`
	StateTaxes   map[string]float64 `json:"stateTaxes"`
}

// NewBundle returns a bundle with every map allocated
func NewBundle() Bundle {
	return Bundle{
		Aggregates:   make(map[string]float64),
		Benefits:     make(map[string]float64),
		Credits:      make(map[string]float64),
		Taxes:        make(map[string]float64),
		Health:       make(map[string]float64),
		StateCredits: make(map[string]float64),
		StateTaxes:   make(map[string]float64),
	}
}

// Comparison holds the married leg and the two single-filer legs
type Comparison struct {
	Married      Bundle `json:"married"`
	HeadSingle   Bundle `json:"headSingle"`
	SpouseSingle Bundle `json:"spouseSingle"`
}

// Separate returns head-single plus spouse-single for an aggregate key
func (c Comparison) Separate(key string) float64 {
	return c.HeadSingle.Aggregates[key] + c.SpouseSingle.Aggregates[key]
}

// Delta returns married minus separate for an aggregate key
func (c Comparison) Delta(key string) float64 {
	return c.Married.Aggregates[key] - c.Separate(key)
}
