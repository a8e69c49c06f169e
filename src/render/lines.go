package render

import (
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/for8ver3/survminer/src/reshape"
)

// Dash patterns cycled per group in single-panel layout. The first group
// keeps a solid stroke.
var groupDashes = [][]float64{nil, {5, 5}, {2, 2}, {8, 3, 2, 3}}

// competingPanels maps a competing-risks table onto line geometry: one
// polyline per group×event, colored by event. Multi-panel facets by group;
// single-panel distinguishes groups by dash pattern instead. Point order is
// taken from the input as-is.
func competingPanels(rows []reshape.CurveRow, o *options) []Panel {
	if len(rows) == 0 {
		// Zero curves is not an error; the composer blanks this panel.
		return []Panel{{}}
	}

	events := reshape.Events(rows)
	groups := reshape.Groups(rows)
	eventIdx := make(map[string]int, len(events))
	for i, e := range events {
		eventIdx[e] = i
	}

	minT, maxT := rows[0].Time, rows[0].Time
	maxY := 0.0
	for _, r := range rows {
		if r.Time < minT {
			minT = r.Time
		}
		if r.Time > maxT {
			maxT = r.Time
		}
		if r.Estimate > maxY {
			maxY = r.Estimate
		}
	}

	curveSeries := func(name string, group, event string, st chart.Style) (chart.ContinuousSeries, bool) {
		var xs, ys []float64
		for _, r := range rows {
			if r.Group == group && r.Event == event {
				xs = append(xs, r.Time)
				ys = append(ys, r.Estimate)
			}
		}
		if len(xs) == 0 {
			return chart.ContinuousSeries{}, false
		}
		// Pad to at least two X values for go-chart
		if len(xs) == 1 {
			xs = append(xs, xs[0]+1)
			ys = append(ys, ys[0])
		}
		return chart.ContinuousSeries{Name: name, XValues: xs, YValues: ys, Style: st}, true
	}

	axes := func() (chart.XAxis, chart.YAxis) {
		xr, xticks := timeAxis(minT, maxT)
		yr, yticks := probabilityAxis(maxY)
		return chart.XAxis{Range: xr, Ticks: xticks}, chart.YAxis{Range: yr, Ticks: yticks}
	}

	if o.multiPanel {
		panels := make([]Panel, 0, len(groups))
		for _, g := range groups {
			var series []chart.Series
			for _, e := range events {
				st := chart.Style{StrokeColor: o.theme.color(eventIdx[e]), StrokeWidth: 2.0}
				if s, ok := curveSeries(e, g, e, st); ok {
					series = append(series, s)
				}
			}
			xa, ya := axes()
			panels = append(panels, Panel{
				Label: g,
				Chart: chart.Chart{XAxis: xa, YAxis: ya, Series: series},
			})
		}
		return panels
	}

	var series []chart.Series
	for gi, g := range groups {
		for _, e := range events {
			st := chart.Style{
				StrokeColor:     o.theme.color(eventIdx[e]),
				StrokeWidth:     2.0,
				StrokeDashArray: groupDashes[gi%len(groupDashes)],
			}
			if s, ok := curveSeries(g+o.sep+e, g, e, st); ok {
				series = append(series, s)
			}
		}
	}
	xa, ya := axes()
	return []Panel{{Chart: chart.Chart{XAxis: xa, YAxis: ya, Series: series}}}
}
