package reshape

import (
	"errors"
	"testing"

	"github.com/for8ver3/survminer/src/survfit"
)

func twoArmFit() *survfit.CompetingRisksResult {
	return &survfit.CompetingRisksResult{Series: []survfit.CurveSeries{
		{Name: "A death", Points: []survfit.CurvePoint{{Time: 1, Estimate: 0.1}, {Time: 2, Estimate: 0.2}}},
		{Name: "A progression", Points: []survfit.CurvePoint{{Time: 1, Estimate: 0.05}, {Time: 2, Estimate: 0.1}}},
		{Name: "B death", Points: []survfit.CurvePoint{{Time: 1, Estimate: 0.15}, {Time: 2, Estimate: 0.3}}},
	}}
}

func TestCompetingRisksRowCount(t *testing.T) {
	rows, err := CompetingRisks(twoArmFit(), nil, " ")
	if err != nil {
		t.Fatalf("reshape: %v", err)
	}
	// One row per (group, event, time) observation: 3 series x 2 points.
	if len(rows) != 6 {
		t.Fatalf("row count: got %d want 6", len(rows))
	}
	if g := Groups(rows); len(g) != 2 || g[0] != "A" || g[1] != "B" {
		t.Fatalf("groups: %v", g)
	}
	if e := Events(rows); len(e) != 2 || e[0] != "death" || e[1] != "progression" {
		t.Fatalf("events: %v", e)
	}
}

func TestCompetingRisksSplitsGroupAndEvent(t *testing.T) {
	fit := &survfit.CompetingRisksResult{Series: []survfit.CurveSeries{
		{Name: "BRCA progression", Points: []survfit.CurvePoint{{Time: 1, Estimate: 0.1}}},
	}}
	rows, err := CompetingRisks(fit, nil, " ")
	if err != nil {
		t.Fatalf("reshape: %v", err)
	}
	if rows[0].Group != "BRCA" || rows[0].Event != "progression" {
		t.Fatalf("split: group=%q event=%q", rows[0].Group, rows[0].Event)
	}
}

func TestCompetingRisksStripsTests(t *testing.T) {
	fit := twoArmFit()
	fit.Series = append(fit.Series, survfit.CurveSeries{
		Name:   survfit.TestsSeriesName,
		Points: []survfit.CurvePoint{{Time: 0, Estimate: 12.7}},
	})
	rows, err := CompetingRisks(fit, nil, " ")
	if err != nil {
		t.Fatalf("reshape: %v", err)
	}
	if len(rows) != 6 {
		t.Fatalf("Tests entry leaked into table: %d rows", len(rows))
	}
}

func TestCompetingRisksTestsOnlyIsEmpty(t *testing.T) {
	fit := &survfit.CompetingRisksResult{Series: []survfit.CurveSeries{
		{Name: survfit.TestsSeriesName, Points: []survfit.CurvePoint{{Time: 0, Estimate: 3.2}}},
	}}
	rows, err := CompetingRisks(fit, nil, " ")
	if err != nil {
		t.Fatalf("reshape: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty table, got %d rows", len(rows))
	}
}

func TestCompetingRisksGroupNames(t *testing.T) {
	fit := &survfit.CompetingRisksResult{Series: []survfit.CurveSeries{
		{Name: "1 1", Points: []survfit.CurvePoint{{Time: 1, Estimate: 0.1}}},
		{Name: "1 2", Points: []survfit.CurvePoint{{Time: 1, Estimate: 0.2}}},
	}}
	rows, err := CompetingRisks(fit, []string{"male death", "male relapse"}, " ")
	if err != nil {
		t.Fatalf("reshape: %v", err)
	}
	if rows[0].Group != "male" || rows[0].Event != "death" {
		t.Fatalf("names not applied positionally: %+v", rows[0])
	}
	if rows[1].Event != "relapse" {
		t.Fatalf("second name not applied: %+v", rows[1])
	}
}

func TestCompetingRisksGroupNamesLengthMismatch(t *testing.T) {
	_, err := CompetingRisks(twoArmFit(), []string{"only one"}, " ")
	var se *survfit.ShapeError
	if !errors.As(err, &se) {
		t.Fatalf("expected ShapeError, got %v", err)
	}
}

func TestCompetingRisksMalformedName(t *testing.T) {
	cases := []string{"nodelimiter", "too many parts here"}
	for _, name := range cases {
		fit := &survfit.CompetingRisksResult{Series: []survfit.CurveSeries{
			{Name: name, Points: []survfit.CurvePoint{{Time: 1, Estimate: 0.1}}},
		}}
		_, err := CompetingRisks(fit, nil, " ")
		var me *survfit.MalformedNameError
		if !errors.As(err, &me) {
			t.Fatalf("%q: expected MalformedNameError, got %v", name, err)
		}
		if me.Name != name {
			t.Fatalf("error names wrong series: %q", me.Name)
		}
	}
}

func TestCompetingRisksCustomSeparator(t *testing.T) {
	fit := &survfit.CompetingRisksResult{Series: []survfit.CurveSeries{
		{Name: "stage II;local relapse", Points: []survfit.CurvePoint{{Time: 1, Estimate: 0.1}}},
	}}
	rows, err := CompetingRisks(fit, nil, ";")
	if err != nil {
		t.Fatalf("reshape: %v", err)
	}
	if rows[0].Group != "stage II" || rows[0].Event != "local relapse" {
		t.Fatalf("split on custom separator: %+v", rows[0])
	}
}

func TestCompetingRisksEmptyFit(t *testing.T) {
	rows, err := CompetingRisks(&survfit.CompetingRisksResult{}, nil, " ")
	if err != nil {
		t.Fatalf("empty fit should not error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}
