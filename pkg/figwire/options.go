// Package figwire decodes the binary figure streams written by the
// Lightning logging library and renders them to image files or Excel
// workbooks.
package figwire

import (
	"github.com/lightplot/figwire-go/pkg/figwire/render"
)

// Format selects the rendering backend.
type Format string

const (
	// FormatImage renders a raster or vector image via gonum/plot; the
	// concrete format follows the save path extension.
	FormatImage Format = "image"
	// FormatExcel renders an xlsx workbook containing the series data and
	// a native chart.
	FormatExcel Format = "excel"
)

// Options configures rendering behavior.
type Options struct {
	// Format selects the rendering backend (image, excel).
	Format Format
	// Legend forces the legend on or off. If nil, the legend is shown
	// exactly when at least one series carries a label.
	Legend *bool
}

// DefaultOptions returns default rendering options.
func DefaultOptions() Options {
	return Options{
		Format: FormatImage,
	}
}

// backend returns the rendering backend for the selected format.
func (o Options) backend() render.Backend {
	if o.Format == FormatExcel {
		return render.NewExcelBackend()
	}
	return render.NewGonumBackend()
}
