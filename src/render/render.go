// Package render turns reshaped survival tables into charts. The chart
// engine is go-chart; this package only builds panel specifications (data,
// geometry, aesthetic mappings) and composes the rendered panels into one
// faceted image.
package render

import (
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/for8ver3/survminer/src/reshape"
	"github.com/for8ver3/survminer/src/survfit"
)

// Decoration applied to every chart regardless of result kind.
const (
	ChartTitle = "Cumulative incidence functions"
	XAxisTitle = "Time"
	YAxisTitle = "Probability of an event"
)

// DefaultGroupSeparator splits composite "group event" series names.
const DefaultGroupSeparator = " "

const (
	defaultPanelWidth  = 560
	defaultPanelHeight = 420
)

type options struct {
	groupNames []string
	sep        string
	multiPanel bool
	theme      Theme
	width      int
	height     int
	styles     []func(*chart.Chart)
}

// Option adjusts how a fit is rendered.
type Option func(*options)

// WithGroupNames overrides the display names of the competing-risks curves.
// Names align positionally with the fit's own series order (the "Tests"
// entry excluded); only the count is checked.
func WithGroupNames(names ...string) Option {
	return func(o *options) { o.groupNames = names }
}

// WithGroupSeparator sets the token that splits a display name into group
// and event. Default is a single space.
func WithGroupSeparator(sep string) Option {
	return func(o *options) { o.sep = sep }
}

// WithSinglePanel collapses the competing-risks layout into one panel:
// curves keep their event color and gain a per-group dash pattern. The
// default is one panel per group.
func WithSinglePanel() Option {
	return func(o *options) { o.multiPanel = false }
}

// WithTheme replaces the default theme.
func WithTheme(t Theme) Option {
	return func(o *options) { o.theme = t }
}

// WithSize sets the per-panel pixel size.
func WithSize(width, height int) Option {
	return func(o *options) {
		if width > 0 {
			o.width = width
		}
		if height > 0 {
			o.height = height
		}
	}
}

// WithStyle registers a free-form styling hook run against every engine
// chart after decoration. The hook receives the engine's own chart value;
// nothing about it is inspected or validated here.
func WithStyle(fn func(*chart.Chart)) Option {
	return func(o *options) {
		if fn != nil {
			o.styles = append(o.styles, fn)
		}
	}
}

// Render is the single entry point: it dispatches on the fit's kind,
// reshapes, builds panels, then applies the shared decoration (theme, axis
// titles, chart title) and the caller's styling hooks. A nil or unknown fit
// is ErrUnsupportedInputKind.
func Render(fit survfit.Fit, opts ...Option) (*Chart, error) {
	o := options{
		sep:        DefaultGroupSeparator,
		multiPanel: true,
		theme:      DefaultTheme(),
		width:      defaultPanelWidth,
		height:     defaultPanelHeight,
	}
	for _, fn := range opts {
		fn(&o)
	}

	var panels []Panel
	switch f := fit.(type) {
	case *survfit.CompetingRisksResult:
		rows, err := reshape.CompetingRisks(f, o.groupNames, o.sep)
		if err != nil {
			return nil, err
		}
		panels = competingPanels(rows, &o)
	case *survfit.MultiStateResult:
		rows, err := reshape.MultiState(f)
		if err != nil {
			return nil, err
		}
		panels = multiStatePanels(rows, &o)
	default:
		return nil, survfit.ErrUnsupportedInputKind
	}

	for i := range panels {
		decorate(&panels[i].Chart, &o)
		for _, style := range o.styles {
			style(&panels[i].Chart)
		}
	}
	return &Chart{Title: ChartTitle, Panels: panels, theme: o.theme}, nil
}

// decorate applies the unconditional cosmetics: panel size, theme fills,
// axis titles, grid, and a legend when there is anything to list.
func decorate(ch *chart.Chart, o *options) {
	ch.Width = o.width
	ch.Height = o.height
	ch.Background = chart.Style{
		FillColor: o.theme.Background,
		Padding:   chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28},
	}
	ch.Canvas = chart.Style{FillColor: o.theme.Canvas}

	ch.XAxis.Name = XAxisTitle
	ch.XAxis.Style.FontColor = o.theme.Text
	ch.XAxis.NameStyle.FontColor = o.theme.Text
	ch.XAxis.GridMajorStyle = chart.Style{StrokeColor: o.theme.Grid, StrokeWidth: 1.0}

	ch.YAxis.Name = YAxisTitle
	ch.YAxis.Style.FontColor = o.theme.Text
	ch.YAxis.NameStyle.FontColor = o.theme.Text
	ch.YAxis.GridMajorStyle = chart.Style{StrokeColor: o.theme.Grid, StrokeWidth: 1.0}

	if len(ch.Series) > 0 {
		ch.Elements = []chart.Renderable{chart.Legend(ch)}
	}
}
