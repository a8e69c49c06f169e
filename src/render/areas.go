package render

import (
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/for8ver3/survminer/src/reshape"
)

// multiStatePanels maps a multi-state table onto stacked-area geometry, one
// panel per stratum. Each state's band is drawn as a filled series at the
// running total through that state; bands paint top-down so every lower
// band overlays the ones above it, leaving each state's slice visible.
func multiStatePanels(rows []reshape.StateRow, o *options) []Panel {
	if len(rows) == 0 {
		return []Panel{{}}
	}

	strata := reshape.Strata(rows)
	var states []string
	seen := map[string]bool{}
	for _, r := range rows {
		if !seen[r.State] {
			seen[r.State] = true
			states = append(states, r.State)
		}
	}

	panels := make([]Panel, 0, len(strata))
	for _, stratum := range strata {
		var times []float64
		probs := make(map[string][]float64, len(states))
		for _, r := range rows {
			if r.Stratum != stratum {
				continue
			}
			// Rows arrive state-major within each time point; collect times
			// once, on the first state.
			if r.State == states[0] {
				times = append(times, r.Time)
			}
			probs[r.State] = append(probs[r.State], r.Probability)
		}

		// Running totals per time point, one layer per state.
		totals := make([][]float64, len(states))
		cum := make([]float64, len(times))
		maxY := 0.0
		for si, st := range states {
			layer := make([]float64, len(times))
			for ti := range times {
				cum[ti] += probs[st][ti]
				layer[ti] = cum[ti]
				if cum[ti] > maxY {
					maxY = cum[ti]
				}
			}
			totals[si] = layer
		}

		minT, maxT := times[0], times[0]
		for _, t := range times[1:] {
			if t < minT {
				minT = t
			}
			if t > maxT {
				maxT = t
			}
		}

		var series []chart.Series
		for si := len(states) - 1; si >= 0; si-- {
			xs := times
			ys := totals[si]
			if len(xs) == 1 {
				xs = []float64{xs[0], xs[0] + 1}
				ys = []float64{ys[0], ys[0]}
			}
			col := o.theme.color(si)
			series = append(series, chart.ContinuousSeries{
				Name:    states[si],
				XValues: xs,
				YValues: ys,
				Style:   chart.Style{StrokeColor: col, StrokeWidth: 1.0, FillColor: col},
			})
		}

		xr, xticks := timeAxis(minT, maxT)
		yr, yticks := probabilityAxis(maxY)
		panels = append(panels, Panel{
			Label: stratum,
			Chart: chart.Chart{
				XAxis:  chart.XAxis{Range: xr, Ticks: xticks},
				YAxis:  chart.YAxis{Range: yr, Ticks: yticks},
				Series: series,
			},
		})
	}
	return panels
}
