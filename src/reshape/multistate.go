package reshape

import "github.com/for8ver3/survminer/src/survfit"

// DefaultStratumLabel is attached to every row when the fit carries no
// strata specification.
const DefaultStratumLabel = "all"

// StateRow is one state-occupation observation in long form.
type StateRow struct {
	Time        float64
	Probability float64
	State       string
	Stratum     string
}

// MultiState flattens a multi-state result from wide form (one column per
// state) into one row per (stratum, time, state) tuple. Stratum labels are
// expanded by run length: each stratum claims its declared count of
// contiguous time rows, in the order the strata are given. The fit is
// validated first so a bad shape fails instead of misaligning rows.
func MultiState(fit *survfit.MultiStateResult) ([]StateRow, error) {
	if err := fit.Validate(); err != nil {
		return nil, err
	}
	labels := make([]string, len(fit.Time))
	if len(fit.Strata) == 0 {
		for i := range labels {
			labels[i] = DefaultStratumLabel
		}
	} else {
		i := 0
		for _, s := range fit.Strata {
			for r := 0; r < s.Rows; r++ {
				labels[i] = s.Label
				i++
			}
		}
	}
	rows := make([]StateRow, 0, len(fit.Time)*len(fit.States))
	for ri, t := range fit.Time {
		for ci, st := range fit.States {
			rows = append(rows, StateRow{
				Time:        t,
				Probability: fit.Probs[ri][ci],
				State:       st,
				Stratum:     labels[ri],
			})
		}
	}
	return rows, nil
}

// Strata returns the distinct stratum labels in first-seen order.
func Strata(rows []StateRow) []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range rows {
		if !seen[r.Stratum] {
			seen[r.Stratum] = true
			out = append(out, r.Stratum)
		}
	}
	return out
}
