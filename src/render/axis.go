package render

import (
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
)

// niceAxisBounds pads [min,max] by 5% and rounds outward to increments
// matching the span's order of magnitude.
func niceAxisBounds(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return min, max
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	pad := span * 0.05
	if pad <= 0 {
		pad = 1
	}
	a := min - pad
	b := max + pad
	mag := math.Pow(10, math.Floor(math.Log10(span)))
	if !math.IsInf(mag, 0) && mag > 0 {
		a = math.Floor(a/mag) * mag
		b = math.Ceil(b/mag) * mag
	}
	return a, b
}

// niceTicks generates up to n tick marks between [min, max] using nice
// increments (1, 2, 2.5, 5, 10 scaled by powers of ten).
func niceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil((max - min) / step)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	ticks := []chart.Tick{}
	for v := start; v <= end+bestStep/2; v += bestStep {
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
		if len(ticks) > n+2 {
			break
		}
	}
	return ticks
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 1000:
		return fmt.Sprintf("%.0f", v)
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

// probabilityAxis returns the y-axis range and ticks for probability data:
// anchored at zero with a nice rounded max at or above dataMax.
func probabilityAxis(dataMax float64) (*chart.ContinuousRange, []chart.Tick) {
	if math.IsNaN(dataMax) || dataMax <= 0 {
		dataMax = 1
	}
	_, nMax := niceAxisBounds(0, dataMax)
	// Probabilities cap at 1; only stacked totals with rounding slop go past.
	if dataMax <= 1 && nMax > 1 {
		nMax = 1
	}
	return &chart.ContinuousRange{Min: 0, Max: nMax}, niceTicks(0, nMax, 6)
}

// timeAxis returns the x-axis range and ticks spanning the observed times.
// A single time point gets a padded range so the engine still has width.
func timeAxis(minT, maxT float64) (*chart.ContinuousRange, []chart.Tick) {
	if maxT <= minT {
		maxT = minT + 1
	}
	return &chart.ContinuousRange{Min: minT, Max: maxT}, niceTicks(minT, maxT, 6)
}
