package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Panel is one facet: a label (group or stratum value, empty when the
// layout is unfaceted) and the engine chart that draws it.
type Panel struct {
	Label string
	Chart chart.Chart
}

// Chart is the rendered-but-not-yet-rasterized result of Render: the shared
// title plus the ordered facet panels. Callers may restyle the panels
// further before rasterizing.
type Chart struct {
	Title  string
	Panels []Panel

	theme Theme
}

const (
	titleBand = 26
	labelBand = 20
)

// Image rasterizes every panel and stitches them horizontally under a title
// band, with each panel's facet label centered above it. A panel with no
// series rasterizes as a blank plate rather than failing.
func (c *Chart) Image() (image.Image, error) {
	if len(c.Panels) == 0 {
		return blank(defaultPanelWidth, defaultPanelHeight, c.theme), nil
	}

	imgs := make([]image.Image, len(c.Panels))
	totalW, maxH := 0, 0
	for i := range c.Panels {
		p := &c.Panels[i]
		w, h := p.Chart.Width, p.Chart.Height
		if w <= 0 {
			w = defaultPanelWidth
		}
		if h <= 0 {
			h = defaultPanelHeight
		}
		if len(p.Chart.Series) == 0 {
			imgs[i] = blank(w, h, c.theme)
		} else {
			var buf bytes.Buffer
			if err := p.Chart.Render(chart.PNG, &buf); err != nil {
				return nil, fmt.Errorf("render panel %q: %w", p.Label, err)
			}
			img, err := png.Decode(&buf)
			if err != nil {
				return nil, fmt.Errorf("decode panel %q: %w", p.Label, err)
			}
			imgs[i] = img
		}
		totalW += imgs[i].Bounds().Dx()
		if hh := imgs[i].Bounds().Dy(); hh > maxH {
			maxH = hh
		}
	}

	showLabels := len(c.Panels) > 1
	for _, p := range c.Panels {
		if p.Label != "" {
			showLabels = true
		}
	}
	top := titleBand
	if showLabels {
		top += labelBand
	}

	out := image.NewRGBA(image.Rect(0, 0, totalW, top+maxH))
	draw.Draw(out, out.Bounds(), image.NewUniform(rgba(c.theme.Background)), image.Point{}, draw.Src)

	x := 0
	for i, img := range imgs {
		b := img.Bounds()
		draw.Draw(out, image.Rect(x, top, x+b.Dx(), top+b.Dy()), img, b.Min, draw.Src)
		if showLabels && c.Panels[i].Label != "" {
			drawCenteredText(out, c.Panels[i].Label, x+b.Dx()/2, titleBand+labelBand-6, rgba(c.theme.Text))
		}
		x += b.Dx()
	}
	if c.Title != "" {
		drawCenteredText(out, c.Title, totalW/2, titleBand-8, rgba(c.theme.Text))
	}
	return out, nil
}

// RenderPNG rasterizes the chart and writes it as PNG.
func (c *Chart) RenderPNG(w io.Writer) error {
	img, err := c.Image()
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

func blank(w, h int, t Theme) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(rgba(t.Background)), image.Point{}, draw.Src)
	return img
}

func drawCenteredText(dst *image.RGBA, text string, cx, baselineY int, col color.Color) {
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: face}
	tw := d.MeasureString(text).Ceil()
	d.Dot = fixed.Point26_6{X: fixed.I(cx - tw/2), Y: fixed.I(baselineY)}
	d.DrawString(text)
}

func rgba(c drawing.Color) color.Color {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
