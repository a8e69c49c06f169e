// cifviewer is a small desktop viewer for cumulative incidence results.
//
// It opens the same .json/.jsonc results files as cifplot, renders them with
// the render package, and shows the stitched chart in a window with toggles
// for theme and panel layout. The last file, theme, and layout choice are
// persisted via fyne preferences.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/for8ver3/survminer/cmd/cifviewer/viewhelpers"
	"github.com/for8ver3/survminer/src/render"
	"github.com/for8ver3/survminer/src/survfit"
)

type uiState struct {
	app      fyne.App
	window   fyne.Window
	filePath string

	themeName   string
	singlePanel bool
	fit         survfit.Fit

	imgCanvas *canvas.Image
	fileLabel *widget.Label
	status    *widget.Label
}

// dark theme wrapper
type darkTheme struct{}

func (d *darkTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}
func (d *darkTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (d *darkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (d *darkTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

func main() {
	var fileFlag string
	flag.StringVar(&fileFlag, "file", "", "Path to a results .json/.jsonc file")
	flag.Parse()

	a := app.NewWithID("com.survminer.cifviewer")
	a.Settings().SetTheme(&darkTheme{})
	w := a.NewWindow("CIF Viewer")
	w.Resize(fyne.NewSize(1000, 700))

	state := &uiState{
		app:         a,
		window:      w,
		filePath:    fileFlag,
		themeName:   a.Preferences().StringWithFallback("theme", "dark"),
		singlePanel: a.Preferences().BoolWithFallback("singlePanel", false),
	}
	if state.filePath == "" {
		state.filePath = a.Preferences().String("lastFile")
	}

	state.fileLabel = widget.NewLabel(viewhelpers.TruncatePath(state.filePath, 60))
	state.status = widget.NewLabel("")

	state.imgCanvas = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 100, 60)))
	state.imgCanvas.FillMode = canvas.ImageFillContain
	state.imgCanvas.SetMinSize(fyne.NewSize(900, 500))

	themeSelect := widget.NewSelect([]string{"default", "gray", "dark"}, func(v string) {
		state.themeName = v
		savePrefs(state)
		redraw(state)
	})
	themeSelect.Selected = state.themeName

	panelChk := widget.NewCheck("Single panel", func(v bool) {
		state.singlePanel = v
		savePrefs(state)
		redraw(state)
	})
	panelChk.SetChecked(state.singlePanel)

	top := container.NewHBox(
		widget.NewButton("Open…", func() { openFileDialog(state) }),
		widget.NewButton("Reload", func() { loadAndDraw(state) }),
		widget.NewLabel("Theme:"), themeSelect,
		panelChk,
		widget.NewButton("Export PNG", func() { exportPNG(state) }),
		widget.NewLabel("File:"), state.fileLabel,
	)
	w.SetContent(container.NewBorder(top, state.status, nil, nil,
		container.NewVScroll(state.imgCanvas)))

	if state.filePath != "" {
		loadAndDraw(state)
	}
	w.ShowAndRun()
}

func openFileDialog(state *uiState) {
	dialog.ShowFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil || r == nil {
			return
		}
		defer r.Close()
		state.filePath = r.URI().Path()
		state.fileLabel.SetText(viewhelpers.TruncatePath(state.filePath, 60))
		savePrefs(state)
		loadAndDraw(state)
	}, state.window)
}

func loadAndDraw(state *uiState) {
	if state.filePath == "" {
		return
	}
	fit, err := survfit.LoadFile(state.filePath)
	if err != nil {
		state.status.SetText(fmt.Sprintf("load error: %v", err))
		return
	}
	state.fit = fit
	redraw(state)
}

func redraw(state *uiState) {
	if state.fit == nil {
		return
	}
	img, err := renderImage(state)
	if err != nil {
		state.status.SetText(fmt.Sprintf("render error: %v", err))
		return
	}
	state.imgCanvas.Image = img
	state.imgCanvas.Refresh()
	state.status.SetText("")
}

func renderImage(state *uiState) (image.Image, error) {
	th, _ := render.ThemeByName(state.themeName)
	totalW, totalH := viewhelpers.ComputeChartDimensions(int(state.window.Canvas().Size().Width))
	panels := panelCount(state.fit, state.singlePanel)
	pw, ph := viewhelpers.ComputePanelSize(totalW, totalH, panels)
	opts := []render.Option{render.WithTheme(th), render.WithSize(pw, ph)}
	if state.singlePanel {
		opts = append(opts, render.WithSinglePanel())
	}
	ch, err := render.Render(state.fit, opts...)
	if err != nil {
		return nil, err
	}
	return ch.Image()
}

// panelCount predicts the facet count so the per-panel size can be chosen
// before rendering.
func panelCount(fit survfit.Fit, singlePanel bool) int {
	switch f := fit.(type) {
	case *survfit.CompetingRisksResult:
		if singlePanel {
			return 1
		}
		seen := map[string]bool{}
		for _, s := range f.Series {
			if s.Name == survfit.TestsSeriesName {
				continue
			}
			group, _, _ := strings.Cut(s.Name, render.DefaultGroupSeparator)
			seen[group] = true
		}
		if len(seen) == 0 {
			return 1
		}
		return len(seen)
	case *survfit.MultiStateResult:
		if len(f.Strata) > 1 {
			return len(f.Strata)
		}
		return 1
	}
	return 1
}

func exportPNG(state *uiState) {
	if state.imgCanvas.Image == nil {
		return
	}
	dialog.ShowFileSave(func(wr fyne.URIWriteCloser, err error) {
		if err != nil || wr == nil {
			return
		}
		defer wr.Close()
		var buf bytes.Buffer
		if err := png.Encode(&buf, state.imgCanvas.Image); err != nil {
			state.status.SetText(fmt.Sprintf("export error: %v", err))
			return
		}
		if _, err := wr.Write(buf.Bytes()); err != nil {
			state.status.SetText(fmt.Sprintf("export error: %v", err))
		}
	}, state.window)
}

func savePrefs(state *uiState) {
	p := state.app.Preferences()
	p.SetString("theme", state.themeName)
	p.SetBool("singlePanel", state.singlePanel)
	p.SetString("lastFile", state.filePath)
}
