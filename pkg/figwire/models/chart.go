// Package models defines the decoded figure data structures.
package models

// ChartSpec is the fully decoded, renderer-agnostic description of one
// figure. It is immutable once decoding completes.
type ChartSpec struct {
	// SavePath is the save location relative to the render output
	// directory. Empty means the figure is not saved.
	SavePath string `json:"save_path"`
	// Width is the figure width in inches.
	Width float64 `json:"width"`
	// Height is the figure height in inches.
	Height float64 `json:"height"`
	// XLabel is the x axis label (empty if none).
	XLabel string `json:"x_label,omitempty"`
	// YLabel is the y axis label (empty if none).
	YLabel string `json:"y_label,omitempty"`
	// Title is the figure title (empty if none).
	Title string `json:"title,omitempty"`
	// Series lists the plotted datasets in stream order. Render order is
	// insertion order.
	Series []Series `json:"series"`
}

// Labeled reports whether any series carries a non-empty label. A legend is
// only worth drawing when this is true.
func (c *ChartSpec) Labeled() bool {
	for _, s := range c.Series {
		if s.Label != "" {
			return true
		}
	}
	return false
}
