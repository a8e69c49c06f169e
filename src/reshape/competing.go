// Package reshape flattens survival results into the long-form tables the
// renderer consumes. Both builders are pure: the table is built once from
// the input and never mutated afterwards.
package reshape

import (
	"strings"

	"github.com/for8ver3/survminer/src/survfit"
)

// CurveRow is one cumulative-incidence observation in long form.
type CurveRow struct {
	Time     float64
	Estimate float64
	Event    string
	Group    string
}

// CompetingRisks flattens a competing-risks result into one row per
// (group, event, time) observation.
//
// The "Tests" entry, when present, is a hypothesis-test summary and is
// dropped. Only time and estimate are projected from each point; variance
// and anything else the estimator recorded stay behind. Display names come
// from groupNames when supplied (aligned positionally with the surviving
// series — order is trusted, length is not) and from the series names
// otherwise. Each display name must split into exactly group and event on
// sep; anything else is a MalformedNameError rather than a garbled label.
func CompetingRisks(fit *survfit.CompetingRisksResult, groupNames []string, sep string) ([]CurveRow, error) {
	curves := make([]survfit.CurveSeries, 0, len(fit.Series))
	for _, s := range fit.Series {
		if s.Name == survfit.TestsSeriesName {
			continue
		}
		curves = append(curves, s)
	}
	if groupNames != nil && len(groupNames) != len(curves) {
		return nil, &survfit.ShapeError{Reason: "group names do not match curve count",
			Want: len(curves), Got: len(groupNames)}
	}
	var rows []CurveRow
	for i, s := range curves {
		name := s.Name
		if groupNames != nil {
			name = groupNames[i]
		}
		parts := strings.Split(name, sep)
		if len(parts) != 2 {
			return nil, &survfit.MalformedNameError{Name: name, Separator: sep}
		}
		group, event := parts[0], parts[1]
		for _, p := range s.Points {
			rows = append(rows, CurveRow{Time: p.Time, Estimate: p.Estimate, Event: event, Group: group})
		}
	}
	return rows, nil
}

// Groups returns the distinct group labels in first-seen order.
func Groups(rows []CurveRow) []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range rows {
		if !seen[r.Group] {
			seen[r.Group] = true
			out = append(out, r.Group)
		}
	}
	return out
}

// Events returns the distinct event labels in first-seen order.
func Events(rows []CurveRow) []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range rows {
		if !seen[r.Event] {
			seen[r.Event] = true
			out = append(out, r.Event)
		}
	}
	return out
}
