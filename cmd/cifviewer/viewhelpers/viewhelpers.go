package viewhelpers

// ComputeChartDimensions applies the width/height clamp rules used for the
// stitched chart image. Input: desired raw width (e.g. canvas width).
// Returns clamped width & height.
func ComputeChartDimensions(rawW int) (int, int) {
	w := rawW
	if w < 800 {
		w = 800
	}
	h := int(float32(w) * 0.5)
	if h < 320 {
		h = 320
	}
	if h > 640 {
		h = 640
	}
	return w, h
}

// ComputePanelSize splits a stitched-image budget evenly across panels,
// keeping every panel wide enough for its axis labels.
func ComputePanelSize(totalW, totalH, panels int) (int, int) {
	if panels < 1 {
		panels = 1
	}
	w := totalW / panels
	if w < 320 {
		w = 320
	}
	return w, totalH
}

// TruncatePath shortens a file path for the window's top bar, keeping the
// tail which is the interesting part.
func TruncatePath(p string, n int) string {
	if len(p) <= n {
		return p
	}
	if n <= 1 {
		return "…"
	}
	return "…" + p[len(p)-n+1:]
}
