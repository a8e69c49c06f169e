// Package survfit holds the pre-computed survival results this module plots:
// cumulative incidence curves from a competing-risks estimator and state
// occupation probabilities from a multi-state fit. No estimation happens
// here; values arrive fully computed and are treated as read-only.
package survfit

// Fit is the closed set of plottable result kinds. The render dispatcher
// type-switches on it; anything else is rejected up front.
type Fit interface {
	fit()
}

// TestsSeriesName marks the hypothesis-test summary entry some estimators
// attach alongside the curves. It carries no curve data and is skipped
// during reshaping.
const TestsSeriesName = "Tests"

// CurvePoint is one observation on a cumulative incidence curve. Variance
// is carried through parsing but never plotted.
type CurvePoint struct {
	Time     float64 `json:"time"`
	Estimate float64 `json:"estimate"`
	Variance float64 `json:"variance,omitempty"`
}

// CurveSeries is one group×event curve. Name is the composite
// "<group><sep><event>" label assigned by the estimator.
type CurveSeries struct {
	Name   string
	Points []CurvePoint
}

// CompetingRisksResult is the output of a competing-risks estimator: one
// series per group×event combination, in the estimator's own order. Order
// matters — explicit display names supplied at plot time align positionally.
type CompetingRisksResult struct {
	Series []CurveSeries
}

func (*CompetingRisksResult) fit() {}

// Stratum assigns a contiguous block of time rows to a named stratum.
// Blocks are consumed in slice order, which is why this is not a map.
type Stratum struct {
	Label string `json:"label"`
	Rows  int    `json:"rows"`
}

// MultiStateResult is the output of a multi-state survival fit: state
// occupation probabilities over time, optionally partitioned into strata.
// Probs has one row per entry in Time and one column per entry in States.
type MultiStateResult struct {
	Time   []float64
	States []string
	Probs  [][]float64
	Strata []Stratum
}

func (*MultiStateResult) fit() {}

// Validate checks the row/column geometry the reshaper relies on: the time
// vector and probability matrix must have the same length, every row must
// have one cell per state, and strata counts (when present) must sum to the
// row count. Misaligned inputs would otherwise silently attach wrong labels.
func (m *MultiStateResult) Validate() error {
	if len(m.Probs) != len(m.Time) {
		return &ShapeError{Reason: "probability rows != time points",
			Want: len(m.Time), Got: len(m.Probs)}
	}
	for i, row := range m.Probs {
		if len(row) != len(m.States) {
			return &ShapeError{Reason: "probability row width != state count",
				Want: len(m.States), Got: len(row), Row: i}
		}
	}
	if len(m.Strata) > 0 {
		total := 0
		for _, s := range m.Strata {
			if s.Rows < 0 {
				return &ShapeError{Reason: "negative stratum row count", Got: s.Rows}
			}
			total += s.Rows
		}
		if total != len(m.Time) {
			return &ShapeError{Reason: "strata counts do not sum to time points",
				Want: len(m.Time), Got: total}
		}
	}
	return nil
}
