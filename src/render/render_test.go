package render

import (
	"bytes"
	"errors"
	"image/png"
	"sort"
	"strings"
	"testing"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/for8ver3/survminer/src/survfit"
)

func twoArmFit() *survfit.CompetingRisksResult {
	return &survfit.CompetingRisksResult{Series: []survfit.CurveSeries{
		{Name: "A death", Points: []survfit.CurvePoint{{Time: 1, Estimate: 0.1}, {Time: 2, Estimate: 0.2}}},
		{Name: "A progression", Points: []survfit.CurvePoint{{Time: 1, Estimate: 0.05}, {Time: 2, Estimate: 0.1}}},
		{Name: "B death", Points: []survfit.CurvePoint{{Time: 1, Estimate: 0.15}, {Time: 2, Estimate: 0.3}}},
	}}
}

func TestRenderRejectsUnknownKind(t *testing.T) {
	_, err := Render(nil)
	if !errors.Is(err, survfit.ErrUnsupportedInputKind) {
		t.Fatalf("expected ErrUnsupportedInputKind, got %v", err)
	}
}

func TestRenderFacetsByGroup(t *testing.T) {
	ch, err := Render(twoArmFit())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if ch.Title != ChartTitle {
		t.Fatalf("title: %q", ch.Title)
	}
	if len(ch.Panels) != 2 {
		t.Fatalf("panel count: got %d want 2", len(ch.Panels))
	}
	if ch.Panels[0].Label != "A" || ch.Panels[1].Label != "B" {
		t.Fatalf("facet labels: %q, %q", ch.Panels[0].Label, ch.Panels[1].Label)
	}
	// Facet A carries both events, colored differently.
	a := ch.Panels[0].Chart
	if len(a.Series) != 2 {
		t.Fatalf("facet A series: got %d want 2", len(a.Series))
	}
	s0 := a.Series[0].(chart.ContinuousSeries)
	s1 := a.Series[1].(chart.ContinuousSeries)
	if s0.Name != "death" || s1.Name != "progression" {
		t.Fatalf("facet A series names: %q, %q", s0.Name, s1.Name)
	}
	if s0.Style.StrokeColor == s1.Style.StrokeColor {
		t.Fatalf("events share a color")
	}
	// Facet B only observed death.
	if len(ch.Panels[1].Chart.Series) != 1 {
		t.Fatalf("facet B series: got %d want 1", len(ch.Panels[1].Chart.Series))
	}
}

func TestRenderSinglePanelLayout(t *testing.T) {
	ch, err := Render(twoArmFit(), WithSinglePanel())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(ch.Panels) != 1 {
		t.Fatalf("panel count: got %d want 1", len(ch.Panels))
	}
	series := ch.Panels[0].Chart.Series
	if len(series) != 3 {
		t.Fatalf("series count: got %d want 3", len(series))
	}
	// Group B gets a dash pattern, group A stays solid.
	var sawDashed bool
	for _, s := range series {
		cs := s.(chart.ContinuousSeries)
		if strings.HasPrefix(cs.Name, "B ") && len(cs.Style.StrokeDashArray) > 0 {
			sawDashed = true
		}
		if strings.HasPrefix(cs.Name, "A ") && len(cs.Style.StrokeDashArray) > 0 {
			t.Fatalf("first group should be solid: %q", cs.Name)
		}
	}
	if !sawDashed {
		t.Fatalf("second group missing dash pattern")
	}
}

// The panel-layout toggle changes geometry only; the underlying rows must
// be identical across both layouts.
func TestPanelToggleSameData(t *testing.T) {
	type obs struct {
		group, event string
		x, y         float64
	}
	collect := func(c *Chart) []obs {
		var out []obs
		for _, p := range c.Panels {
			for _, s := range p.Chart.Series {
				cs := s.(chart.ContinuousSeries)
				group, event := p.Label, cs.Name
				if group == "" {
					group, event, _ = strings.Cut(cs.Name, " ")
				}
				for i := range cs.XValues {
					out = append(out, obs{group, event, cs.XValues[i], cs.YValues[i]})
				}
			}
		}
		sort.Slice(out, func(i, j int) bool {
			a, b := out[i], out[j]
			if a.group != b.group {
				return a.group < b.group
			}
			if a.event != b.event {
				return a.event < b.event
			}
			return a.x < b.x
		})
		return out
	}

	multi, err := Render(twoArmFit())
	if err != nil {
		t.Fatalf("render multi: %v", err)
	}
	single, err := Render(twoArmFit(), WithSinglePanel())
	if err != nil {
		t.Fatalf("render single: %v", err)
	}
	m, s := collect(multi), collect(single)
	if len(m) != len(s) {
		t.Fatalf("row counts differ: %d vs %d", len(m), len(s))
	}
	for i := range m {
		if m[i] != s[i] {
			t.Fatalf("row %d differs: %+v vs %+v", i, m[i], s[i])
		}
	}
}

func TestRenderDecoration(t *testing.T) {
	th := DarkTheme()
	ch, err := Render(twoArmFit(), WithTheme(th), WithSize(400, 300))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for i, p := range ch.Panels {
		if p.Chart.XAxis.Name != XAxisTitle {
			t.Fatalf("panel %d x-axis title: %q", i, p.Chart.XAxis.Name)
		}
		if p.Chart.YAxis.Name != YAxisTitle {
			t.Fatalf("panel %d y-axis title: %q", i, p.Chart.YAxis.Name)
		}
		if p.Chart.Width != 400 || p.Chart.Height != 300 {
			t.Fatalf("panel %d size: %dx%d", i, p.Chart.Width, p.Chart.Height)
		}
		if p.Chart.Background.FillColor != th.Background {
			t.Fatalf("panel %d background not themed", i)
		}
		if len(p.Chart.Elements) == 0 {
			t.Fatalf("panel %d missing legend", i)
		}
	}
}

func TestRenderStylePassThrough(t *testing.T) {
	ch, err := Render(twoArmFit(), WithStyle(func(c *chart.Chart) {
		c.Width = 777
		c.Elements = nil
	}))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for i, p := range ch.Panels {
		if p.Chart.Width != 777 {
			t.Fatalf("panel %d: style hook not applied after decoration", i)
		}
		if p.Chart.Elements != nil {
			t.Fatalf("panel %d: style hook could not override decoration", i)
		}
	}
}

func TestRenderEmptyFit(t *testing.T) {
	ch, err := Render(&survfit.CompetingRisksResult{})
	if err != nil {
		t.Fatalf("empty fit should render: %v", err)
	}
	if len(ch.Panels) != 1 || len(ch.Panels[0].Chart.Series) != 0 {
		t.Fatalf("expected one empty panel, got %+v", ch.Panels)
	}
	var buf bytes.Buffer
	if err := ch.RenderPNG(&buf); err != nil {
		t.Fatalf("blank render: %v", err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Fatalf("blank output not PNG: %v", err)
	}
}

func TestRenderPNGEndToEnd(t *testing.T) {
	ch, err := Render(twoArmFit(), WithSize(320, 240))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	var buf bytes.Buffer
	if err := ch.RenderPNG(&buf); err != nil {
		t.Fatalf("rasterize: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output not PNG: %v", err)
	}
	if img.Bounds().Dx() < 2*320 {
		t.Fatalf("stitched width %d, want at least both panels", img.Bounds().Dx())
	}
}

func TestRenderMultiStateStack(t *testing.T) {
	fit := &survfit.MultiStateResult{
		Time:   []float64{1, 2},
		States: []string{"healthy", "ill", "dead"},
		Probs: [][]float64{
			{0.5, 0.25, 0.25},
			{0.5, 0.375, 0.125},
		},
	}
	ch, err := Render(fit)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(ch.Panels) != 1 || ch.Panels[0].Label != "all" {
		t.Fatalf("expected single 'all' facet, got %+v", ch.Panels)
	}
	series := ch.Panels[0].Chart.Series
	if len(series) != 3 {
		t.Fatalf("series count: got %d want 3", len(series))
	}
	// Bands paint top-down: the first series is the full stack, the last is
	// the bottom state alone.
	top := series[0].(chart.ContinuousSeries)
	bottom := series[2].(chart.ContinuousSeries)
	if top.Name != "dead" || bottom.Name != "healthy" {
		t.Fatalf("paint order: top=%q bottom=%q", top.Name, bottom.Name)
	}
	if got := top.YValues[0]; got != 1.0 {
		t.Fatalf("stack total at t=1: got %v want 1.0", got)
	}
	if got := bottom.YValues[1]; got != 0.5 {
		t.Fatalf("bottom band at t=2: got %v want 0.5", got)
	}
	if top.Style.FillColor.IsZero() {
		t.Fatalf("area band missing fill")
	}
}

func TestRenderMultiStateStrataFacets(t *testing.T) {
	fit := &survfit.MultiStateResult{
		Time:   []float64{1, 2, 3, 4, 5},
		States: []string{"alive", "dead"},
		Probs: [][]float64{
			{1, 0}, {0.9, 0.1}, {0.8, 0.2}, {1, 0}, {0.7, 0.3},
		},
		Strata: []survfit.Stratum{{Label: "A", Rows: 3}, {Label: "B", Rows: 2}},
	}
	ch, err := Render(fit)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(ch.Panels) != 2 {
		t.Fatalf("panel count: got %d want 2", len(ch.Panels))
	}
	if ch.Panels[0].Label != "A" || ch.Panels[1].Label != "B" {
		t.Fatalf("facet labels: %q, %q", ch.Panels[0].Label, ch.Panels[1].Label)
	}
	// Stratum A holds the first three time points, B the remaining two.
	aTop := ch.Panels[0].Chart.Series[0].(chart.ContinuousSeries)
	bTop := ch.Panels[1].Chart.Series[0].(chart.ContinuousSeries)
	if len(aTop.XValues) != 3 || aTop.XValues[0] != 1 {
		t.Fatalf("stratum A times: %v", aTop.XValues)
	}
	if len(bTop.XValues) != 2 || bTop.XValues[0] != 4 {
		t.Fatalf("stratum B times: %v", bTop.XValues)
	}
}

func TestRenderMultiStateShapeError(t *testing.T) {
	fit := &survfit.MultiStateResult{
		Time:   []float64{1, 2},
		States: []string{"a"},
		Probs:  [][]float64{{0.1}},
	}
	_, err := Render(fit)
	var se *survfit.ShapeError
	if !errors.As(err, &se) {
		t.Fatalf("expected ShapeError, got %v", err)
	}
}
