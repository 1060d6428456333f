// Package render drives a decoded chart through a rendering backend.
package render

import (
	"fmt"

	"github.com/lightplot/figwire-go/pkg/figwire/models"
)

// Backend is the drawing surface the driver issues calls against. Backends
// interpret whichever drawing options they understand and ignore the rest.
type Backend interface {
	// NewFigure starts a fresh figure with the given size in inches.
	NewFigure(width, height float64)
	// SetXLabel sets the x axis label.
	SetXLabel(text string)
	// SetYLabel sets the y axis label.
	SetYLabel(text string)
	// SetTitle sets the figure title.
	SetTitle(text string)
	// DrawLine draws a connected line series.
	DrawLine(x, y []float64, label string, opts models.OptionSet) error
	// DrawScatter draws a scatter series.
	DrawScatter(x, y []float64, label string, opts models.OptionSet) error
	// DrawErrorBar draws a line series with per-point y error bars.
	DrawErrorBar(x, y, yerr []float64, label string, opts models.OptionSet) error
	// ShowLegend asks the backend to include a legend for labeled series.
	ShowLegend()
	// SaveTo persists the figure at path. Backends choose the output
	// format from the path extension.
	SaveTo(path string) error
}

// Error reports a backend or save failure during rendering.
type Error struct {
	// Op names the failing operation ("line", "scatter", "errorbar",
	// "mkdir", "save").
	Op string
	// Err is the underlying failure.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("render error (%s): %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
