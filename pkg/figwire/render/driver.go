package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lightplot/figwire-go/pkg/figwire/models"
)

// Params configures one Render call.
type Params struct {
	// OutDir is the directory the chart's save path resolves against.
	OutDir string
	// Legend forces the legend on or off. If nil, the legend is shown
	// exactly when at least one series carries a label.
	Legend *bool
}

// Render draws spec on backend and, when the spec names a save path,
// persists the figure under p.OutDir (creating parent directories on
// demand). It reports whether a file was saved; a spec with an empty save
// path renders without saving and is not an error.
func Render(spec *models.ChartSpec, backend Backend, p Params) (bool, error) {
	backend.NewFigure(spec.Width, spec.Height)
	if spec.XLabel != "" {
		backend.SetXLabel(spec.XLabel)
	}
	if spec.YLabel != "" {
		backend.SetYLabel(spec.YLabel)
	}
	if spec.Title != "" {
		backend.SetTitle(spec.Title)
	}

	for _, s := range spec.Series {
		var err error
		switch s.Kind {
		case models.SeriesLine:
			err = backend.DrawLine(s.X, s.Y, s.Label, s.Options)
		case models.SeriesScatter:
			err = backend.DrawScatter(s.X, s.Y, s.Label, s.Options)
		case models.SeriesErrorBar:
			err = backend.DrawErrorBar(s.X, s.Y, s.YErr, s.Label, s.Options)
		default:
			err = fmt.Errorf("unknown series kind %q", s.Kind)
		}
		if err != nil {
			return false, &Error{Op: string(s.Kind), Err: err}
		}
	}

	if wantLegend(spec, p.Legend) {
		backend.ShowLegend()
	}

	if spec.SavePath == "" {
		return false, nil
	}
	path := filepath.Join(p.OutDir, filepath.FromSlash(spec.SavePath))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, &Error{Op: "mkdir", Err: err}
	}
	if err := backend.SaveTo(path); err != nil {
		return false, &Error{Op: "save", Err: err}
	}
	return true, nil
}

func wantLegend(spec *models.ChartSpec, force *bool) bool {
	if force != nil {
		return *force
	}
	return spec.Labeled()
}
