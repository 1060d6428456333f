package render

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/lightplot/figwire-go/pkg/figwire/models"
)

// fakeBackend records the driver's calls in order.
type fakeBackend struct {
	calls    []string
	savePath string
	drawErr  error
	saveErr  error
}

func (f *fakeBackend) NewFigure(width, height float64) {
	f.calls = append(f.calls, fmt.Sprintf("figure %g %g", width, height))
}

func (f *fakeBackend) SetXLabel(text string) { f.calls = append(f.calls, "xlabel "+text) }

func (f *fakeBackend) SetYLabel(text string) { f.calls = append(f.calls, "ylabel "+text) }

func (f *fakeBackend) SetTitle(text string) { f.calls = append(f.calls, "title "+text) }

func (f *fakeBackend) DrawLine(x, y []float64, label string, opts models.OptionSet) error {
	f.calls = append(f.calls, "line "+label)
	return f.drawErr
}

func (f *fakeBackend) DrawScatter(x, y []float64, label string, opts models.OptionSet) error {
	f.calls = append(f.calls, "scatter "+label)
	return f.drawErr
}

func (f *fakeBackend) DrawErrorBar(x, y, yerr []float64, label string, opts models.OptionSet) error {
	f.calls = append(f.calls, "errorbar "+label)
	return f.drawErr
}

func (f *fakeBackend) ShowLegend() { f.calls = append(f.calls, "legend") }

func (f *fakeBackend) SaveTo(path string) error {
	f.calls = append(f.calls, "save")
	f.savePath = path
	return f.saveErr
}

func labeledSpec() *models.ChartSpec {
	return &models.ChartSpec{
		SavePath: "out/plot.png",
		Width:    4,
		Height:   3,
		XLabel:   "time",
		Title:    "demo",
		Series: []models.Series{
			{Kind: models.SeriesLine, X: []float64{0, 1}, Y: []float64{0, 1}, Label: "sq"},
			{Kind: models.SeriesScatter, X: []float64{0}, Y: []float64{1}},
			{Kind: models.SeriesErrorBar, X: []float64{0}, Y: []float64{1}, YErr: []float64{0.1}},
		},
	}
}

func TestRenderCallOrder(t *testing.T) {
	backend := &fakeBackend{}
	dir := t.TempDir()

	saved, err := Render(labeledSpec(), backend, Params{OutDir: dir})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !saved {
		t.Error("expected saved = true")
	}

	want := []string{
		"figure 4 3",
		"xlabel time",
		"title demo",
		"line sq",
		"scatter ",
		"errorbar ",
		"legend",
		"save",
	}
	if !reflect.DeepEqual(backend.calls, want) {
		t.Errorf("calls = %v, expected %v", backend.calls, want)
	}
	if wantPath := filepath.Join(dir, "out", "plot.png"); backend.savePath != wantPath {
		t.Errorf("save path = %q, expected %q", backend.savePath, wantPath)
	}
}

func TestRenderEmptySavePath(t *testing.T) {
	backend := &fakeBackend{}
	spec := labeledSpec()
	spec.SavePath = ""

	saved, err := Render(spec, backend, Params{OutDir: t.TempDir()})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if saved {
		t.Error("expected saved = false for empty save path")
	}
	for _, call := range backend.calls {
		if call == "save" {
			t.Error("backend save was called despite empty save path")
		}
	}
}

func TestRenderLegendGate(t *testing.T) {
	on := true
	off := false
	tests := []struct {
		name     string
		labeled  bool
		force    *bool
		expected bool
	}{
		{"auto with labels", true, nil, true},
		{"auto without labels", false, nil, false},
		{"forced on without labels", false, &on, true},
		{"forced off with labels", true, &off, false},
	}

	for _, tt := range tests {
		spec := labeledSpec()
		if !tt.labeled {
			for i := range spec.Series {
				spec.Series[i].Label = ""
			}
		}
		backend := &fakeBackend{}
		if _, err := Render(spec, backend, Params{OutDir: t.TempDir(), Legend: tt.force}); err != nil {
			t.Fatalf("%s: Render failed: %v", tt.name, err)
		}
		got := false
		for _, call := range backend.calls {
			if call == "legend" {
				got = true
			}
		}
		if got != tt.expected {
			t.Errorf("%s: legend shown = %v, expected %v", tt.name, got, tt.expected)
		}
	}
}

func TestRenderBackendFailure(t *testing.T) {
	drawFail := errors.New("draw exploded")
	backend := &fakeBackend{drawErr: drawFail}

	saved, err := Render(labeledSpec(), backend, Params{OutDir: t.TempDir()})
	if saved {
		t.Error("expected saved = false on backend failure")
	}
	var rerr *Error
	if !errors.As(err, &rerr) {
		t.Fatalf("error %v is not a *render.Error", err)
	}
	if rerr.Op != "line" {
		t.Errorf("Op = %q, expected %q", rerr.Op, "line")
	}
	if !errors.Is(err, drawFail) {
		t.Errorf("error %v does not wrap the backend failure", err)
	}

	saveFail := errors.New("disk full")
	backend = &fakeBackend{saveErr: saveFail}
	if _, err := Render(labeledSpec(), backend, Params{OutDir: t.TempDir()}); !errors.Is(err, saveFail) {
		t.Errorf("error %v does not wrap the save failure", err)
	}
}

func TestRenderUnknownKind(t *testing.T) {
	spec := labeledSpec()
	spec.Series[0].Kind = "pie"

	_, err := Render(spec, &fakeBackend{}, Params{OutDir: t.TempDir()})
	if err == nil {
		t.Error("expected error for unknown series kind")
	}
}
