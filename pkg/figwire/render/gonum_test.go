package render

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/lightplot/figwire-go/pkg/figwire/models"
)

func TestGonumBackendSavesImage(t *testing.T) {
	spec := &models.ChartSpec{
		SavePath: "out/plot.png",
		Width:    4,
		Height:   3,
		XLabel:   "x",
		YLabel:   "y",
		Title:    "squares",
		Series: []models.Series{
			{
				Kind:    models.SeriesLine,
				X:       []float64{0, 1, 2},
				Y:       []float64{0, 1, 4},
				Label:   "sq",
				Options: models.OptionSet{"color": "red", "linewidth": 2.0, "linestyle": "--"},
			},
			{
				Kind:    models.SeriesScatter,
				X:       []float64{0, 1, 2},
				Y:       []float64{4, 1, 0},
				Options: models.OptionSet{"markersize": int32(3)},
			},
			{
				Kind: models.SeriesErrorBar,
				X:    []float64{0, 1, 2},
				Y:    []float64{2, 2, 2},
				YErr: []float64{0.5, 0.25, 0.5},
			},
		},
	}

	dir := t.TempDir()
	saved, err := Render(spec, NewGonumBackend(), Params{OutDir: dir})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !saved {
		t.Fatal("expected saved = true")
	}

	info, err := os.Stat(filepath.Join(dir, "out", "plot.png"))
	if err != nil {
		t.Fatalf("image missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("image file is empty")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input    string
		expected color.RGBA
		ok       bool
	}{
		{"red", color.RGBA{R: 255, A: 255}, true},
		{"k", color.RGBA{A: 255}, true},
		{"#ff8000", color.RGBA{R: 255, G: 128, A: 255}, true},
		{"#FF8000", color.RGBA{R: 255, G: 128, A: 255}, true},
		{"#zzzzzz", color.RGBA{}, false},
		{"chartreuse-ish", color.RGBA{}, false},
		{"", color.RGBA{}, false},
	}

	for _, tt := range tests {
		got, ok := parseColor(tt.input)
		if ok != tt.ok || got != tt.expected {
			t.Errorf("parseColor(%q) = %v, %v, expected %v, %v", tt.input, got, ok, tt.expected, tt.ok)
		}
	}
}

func TestOptColorAlpha(t *testing.T) {
	opts := models.OptionSet{"color": "blue", "alpha": 0.5}
	c, ok := optColor(opts)
	if !ok {
		t.Fatal("expected a color")
	}
	rgba, ok := c.(color.RGBA)
	if !ok {
		t.Fatalf("expected color.RGBA, got %T", c)
	}
	if rgba.A != 127 {
		t.Errorf("alpha = %d, expected 127", rgba.A)
	}
}

func TestDashes(t *testing.T) {
	if d := dashes("-"); d != nil {
		t.Errorf("solid style produced dashes: %v", d)
	}
	if d := dashes("--"); len(d) != 2 {
		t.Errorf("dashed style = %v, expected 2 lengths", d)
	}
	if d := dashes("-."); len(d) != 4 {
		t.Errorf("dashdot style = %v, expected 4 lengths", d)
	}
}
