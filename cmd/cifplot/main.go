// cifplot renders cumulative incidence charts from pre-computed survival
// results.
//
// Input is a .json/.jsonc results file produced by an external estimator:
// either competing-risks cumulative incidence curves or multi-state state
// occupation probabilities (the kind is detected from the file's shape).
// Output is a PNG. Styling beyond the built-in themes comes from an
// optional YAML style file whose contents are handed to the chart engine
// verbatim.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gopkg.in/yaml.v3"

	"github.com/for8ver3/survminer/src/render"
	"github.com/for8ver3/survminer/src/survfit"
)

// styleConfig is the free-form YAML style surface. Every field maps
// directly onto a chart-engine setting; nothing is validated here beyond
// YAML syntax and hex color parsing.
type styleConfig struct {
	Palette     []string `yaml:"palette"`
	StrokeWidth float64  `yaml:"stroke_width"`
	Legend      *bool    `yaml:"legend"`
	XMin        *float64 `yaml:"x_min"`
	XMax        *float64 `yaml:"x_max"`
	YMax        *float64 `yaml:"y_max"`
}

func loadStyle(path string) (*styleConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg styleConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse style file %s: %w", path, err)
	}
	return &cfg, nil
}

// parsePalette turns "#rrggbb" strings into engine colors.
func parsePalette(hexes []string) ([]drawing.Color, error) {
	out := make([]drawing.Color, 0, len(hexes))
	for _, h := range hexes {
		h = strings.TrimPrefix(strings.TrimSpace(h), "#")
		if len(h) != 6 {
			return nil, fmt.Errorf("bad palette color %q", h)
		}
		out = append(out, drawing.ColorFromHex(h))
	}
	return out, nil
}

// styleOptions translates the YAML config into render options: palette
// overrides land in the theme, everything else becomes pass-through hooks
// over the engine chart.
func styleOptions(cfg *styleConfig, theme render.Theme) ([]render.Option, error) {
	var opts []render.Option
	if len(cfg.Palette) > 0 {
		pal, err := parsePalette(cfg.Palette)
		if err != nil {
			return nil, err
		}
		theme.Palette = pal
	}
	opts = append(opts, render.WithTheme(theme))
	if cfg.StrokeWidth > 0 {
		w := cfg.StrokeWidth
		opts = append(opts, render.WithStyle(func(ch *chart.Chart) {
			for i, s := range ch.Series {
				if cs, ok := s.(chart.ContinuousSeries); ok {
					cs.Style.StrokeWidth = w
					ch.Series[i] = cs
				}
			}
		}))
	}
	if cfg.Legend != nil && !*cfg.Legend {
		opts = append(opts, render.WithStyle(func(ch *chart.Chart) {
			ch.Elements = nil
		}))
	}
	if cfg.XMin != nil || cfg.XMax != nil {
		min, max := cfg.XMin, cfg.XMax
		opts = append(opts, render.WithStyle(func(ch *chart.Chart) {
			r, ok := ch.XAxis.Range.(*chart.ContinuousRange)
			if !ok {
				r = &chart.ContinuousRange{}
				ch.XAxis.Range = r
			}
			if min != nil {
				r.Min = *min
			}
			if max != nil {
				r.Max = *max
			}
		}))
	}
	if cfg.YMax != nil {
		max := *cfg.YMax
		opts = append(opts, render.WithStyle(func(ch *chart.Chart) {
			ch.YAxis.Range = &chart.ContinuousRange{Min: 0, Max: max}
		}))
	}
	return opts, nil
}

func main() {
	var (
		input       string
		out         string
		singlePanel bool
		groupNames  string
		sep         string
		themeName   string
		width       int
		height      int
		stylePath   string
		logLevel    string
	)
	flag.StringVar(&input, "input", "", "results file (.json or .jsonc)")
	flag.StringVar(&out, "out", "cif.png", "output PNG path")
	flag.BoolVar(&singlePanel, "single-panel", false, "collapse groups into one panel (dash per group)")
	flag.StringVar(&groupNames, "group-names", "", "comma-separated display names overriding the curve names")
	flag.StringVar(&sep, "sep", render.DefaultGroupSeparator, "separator splitting names into group and event")
	flag.StringVar(&themeName, "theme", "default", "theme: default, gray, dark")
	flag.IntVar(&width, "width", 0, "panel width in pixels")
	flag.IntVar(&height, "height", 0, "panel height in pixels")
	flag.StringVar(&stylePath, "style", "", "optional YAML style file")
	flag.StringVar(&logLevel, "loglevel", "info", "log level: debug, info, warn, error")
	flag.Parse()

	render.SetLogLevel(logLevel)
	if input == "" {
		fmt.Fprintln(os.Stderr, "cifplot: -input is required")
		flag.Usage()
		os.Exit(2)
	}

	start := time.Now()
	fit, err := survfit.LoadFile(input)
	if err != nil {
		render.Errorf("load %s: %v", input, err)
		os.Exit(1)
	}

	theme, known := render.ThemeByName(themeName)
	if !known {
		render.Warnf("unknown theme %q, using default", themeName)
	}
	opts := []render.Option{render.WithSize(width, height)}
	if singlePanel {
		opts = append(opts, render.WithSinglePanel())
	}
	if sep != render.DefaultGroupSeparator {
		opts = append(opts, render.WithGroupSeparator(sep))
	}
	if groupNames != "" {
		opts = append(opts, render.WithGroupNames(strings.Split(groupNames, ",")...))
	}
	if stylePath != "" {
		cfg, err := loadStyle(stylePath)
		if err != nil {
			render.Errorf("%v", err)
			os.Exit(1)
		}
		styleOpts, err := styleOptions(cfg, theme)
		if err != nil {
			render.Errorf("%v", err)
			os.Exit(1)
		}
		opts = append(opts, styleOpts...)
	} else {
		opts = append(opts, render.WithTheme(theme))
	}

	ch, err := render.Render(fit, opts...)
	if err != nil {
		render.Errorf("render: %v", err)
		os.Exit(1)
	}

	f, err := os.Create(out)
	if err != nil {
		render.Errorf("create %s: %v", out, err)
		os.Exit(1)
	}
	defer f.Close()
	if err := ch.RenderPNG(f); err != nil {
		render.Errorf("write %s: %v", out, err)
		os.Exit(1)
	}
	render.Infof("wrote %s (%d panels) in %s", out, len(ch.Panels), time.Since(start).Round(time.Millisecond))
}
