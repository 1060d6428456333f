package render

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/lightplot/figwire-go/pkg/figwire/models"
)

// GonumBackend renders figures with gonum.org/v1/plot. The output format is
// chosen by the save path extension (png, svg, pdf, ...).
//
// Recognized drawing options: "color" (name or #rrggbb string), "linewidth"
// and "markersize" (points, numeric), "alpha" (0..1) and "linestyle" ("-",
// "--", ":", "-."). Unrecognized options are ignored.
type GonumBackend struct {
	plot    *plot.Plot
	width   float64
	height  float64
	entries []legendEntry
}

type legendEntry struct {
	label string
	thumb plot.Thumbnailer
}

// NewGonumBackend returns an image rendering backend.
func NewGonumBackend() *GonumBackend {
	return &GonumBackend{}
}

func (g *GonumBackend) NewFigure(width, height float64) {
	g.plot = plot.New()
	g.width = width
	g.height = height
	g.entries = nil
}

func (g *GonumBackend) SetXLabel(text string) { g.plot.X.Label.Text = text }

func (g *GonumBackend) SetYLabel(text string) { g.plot.Y.Label.Text = text }

func (g *GonumBackend) SetTitle(text string) { g.plot.Title.Text = text }

func (g *GonumBackend) DrawLine(x, y []float64, label string, opts models.OptionSet) error {
	line, err := plotter.NewLine(xyPoints(x, y))
	if err != nil {
		return err
	}
	styleLine(&line.LineStyle, opts)
	g.plot.Add(line)
	g.addEntry(label, line)
	return nil
}

func (g *GonumBackend) DrawScatter(x, y []float64, label string, opts models.OptionSet) error {
	scatter, err := plotter.NewScatter(xyPoints(x, y))
	if err != nil {
		return err
	}
	if c, ok := optColor(opts); ok {
		scatter.GlyphStyle.Color = c
	}
	if r, ok := opts.Float("markersize"); ok {
		scatter.GlyphStyle.Radius = vg.Points(r)
	}
	g.plot.Add(scatter)
	g.addEntry(label, scatter)
	return nil
}

func (g *GonumBackend) DrawErrorBar(x, y, yerr []float64, label string, opts models.OptionSet) error {
	pts := xyPoints(x, y)
	errs := make(plotter.YErrors, len(yerr))
	for i, e := range yerr {
		errs[i].Low = e
		errs[i].High = e
	}
	bars, err := plotter.NewYErrorBars(struct {
		plotter.XYs
		plotter.YErrors
	}{pts, errs})
	if err != nil {
		return err
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	styleLine(&line.LineStyle, opts)
	bars.LineStyle.Color = line.LineStyle.Color
	g.plot.Add(line, bars)
	g.addEntry(label, line)
	return nil
}

// ShowLegend attaches the legend entries collected while drawing.
func (g *GonumBackend) ShowLegend() {
	for _, e := range g.entries {
		g.plot.Legend.Add(e.label, e.thumb)
	}
	g.plot.Legend.Top = true
}

func (g *GonumBackend) SaveTo(path string) error {
	w := vg.Length(g.width) * vg.Inch
	h := vg.Length(g.height) * vg.Inch
	return g.plot.Save(w, h, path)
}

func (g *GonumBackend) addEntry(label string, thumb plot.Thumbnailer) {
	if label != "" {
		g.entries = append(g.entries, legendEntry{label: label, thumb: thumb})
	}
}

func xyPoints(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range pts {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}

func styleLine(st *draw.LineStyle, opts models.OptionSet) {
	if c, ok := optColor(opts); ok {
		st.Color = c
	}
	if w, ok := opts.Float("linewidth"); ok {
		st.Width = vg.Points(w)
	}
	if s, ok := opts.String("linestyle"); ok {
		st.Dashes = dashes(s)
	}
}

// dashes maps matplotlib-style line style strings to dash patterns.
func dashes(style string) []vg.Length {
	switch style {
	case "--", "dashed":
		return []vg.Length{vg.Points(6), vg.Points(3)}
	case ":", "dotted":
		return []vg.Length{vg.Points(2), vg.Points(2)}
	case "-.", "dashdot":
		return []vg.Length{vg.Points(6), vg.Points(2), vg.Points(2), vg.Points(2)}
	default:
		return nil
	}
}

// palette maps common matplotlib color names and single-letter codes to
// concrete colors.
var palette = map[string]color.RGBA{
	"b": {B: 255, A: 255}, "blue": {B: 255, A: 255},
	"g": {G: 128, A: 255}, "green": {G: 128, A: 255},
	"r": {R: 255, A: 255}, "red": {R: 255, A: 255},
	"c": {G: 192, B: 192, A: 255}, "cyan": {G: 192, B: 192, A: 255},
	"m": {R: 192, B: 192, A: 255}, "magenta": {R: 192, B: 192, A: 255},
	"y": {R: 192, G: 192, A: 255}, "yellow": {R: 192, G: 192, A: 255},
	"k": {A: 255}, "black": {A: 255},
	"w": {R: 255, G: 255, B: 255, A: 255}, "white": {R: 255, G: 255, B: 255, A: 255},
	"gray":   {R: 128, G: 128, B: 128, A: 255},
	"orange": {R: 255, G: 165, A: 255},
	"purple": {R: 128, B: 128, A: 255},
}

// optColor resolves the "color" option, applying "alpha" when present.
func optColor(opts models.OptionSet) (color.Color, bool) {
	name, ok := opts.String("color")
	if !ok {
		return nil, false
	}
	c, ok := parseColor(name)
	if !ok {
		return nil, false
	}
	if a, ok := opts.Float("alpha"); ok && a >= 0 && a < 1 {
		c.A = uint8(a * 255)
	}
	return c, true
}

func parseColor(name string) (color.RGBA, bool) {
	if c, ok := palette[name]; ok {
		return c, true
	}
	if len(name) == 7 && name[0] == '#' {
		var c color.RGBA
		c.A = 255
		for i, dst := range []*uint8{&c.R, &c.G, &c.B} {
			hi, ok1 := hexDigit(name[1+2*i])
			lo, ok2 := hexDigit(name[2+2*i])
			if !ok1 || !ok2 {
				return color.RGBA{}, false
			}
			*dst = hi<<4 | lo
		}
		return c, true
	}
	return color.RGBA{}, false
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case '0' <= b && b <= '9':
		return b - '0', true
	case 'a' <= b && b <= 'f':
		return b - 'a' + 10, true
	case 'A' <= b && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
