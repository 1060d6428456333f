package render

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/lightplot/figwire-go/pkg/figwire/models"
)

// pixelsPerInch converts figure dimensions to chart pixels. Excel renders
// charts at 96 DPI.
const pixelsPerInch = 96

// dataSheet is the worksheet the series data is written to.
const dataSheet = "Data"

// ExcelBackend renders the decoded chart into an Excel workbook: each
// series' coordinates are written as columns on a data sheet and a native
// chart referencing those columns is embedded next to them.
//
// excelize has no error-bar channel on embedded charts, so error-bar series
// chart as lines; their yerr column is still written to the sheet. The
// "linewidth" option maps to the series line width; other options are
// ignored.
type ExcelBackend struct {
	width  float64
	height float64
	xLabel string
	yLabel string
	title  string
	series []excelSeries
	legend bool
}

type excelSeries struct {
	kind  models.SeriesKind
	label string
	x     []float64
	y     []float64
	yerr  []float64
	opts  models.OptionSet
}

// NewExcelBackend returns a workbook rendering backend.
func NewExcelBackend() *ExcelBackend {
	return &ExcelBackend{}
}

func (e *ExcelBackend) NewFigure(width, height float64) {
	e.width = width
	e.height = height
	e.xLabel = ""
	e.yLabel = ""
	e.title = ""
	e.series = nil
	e.legend = false
}

func (e *ExcelBackend) SetXLabel(text string) { e.xLabel = text }

func (e *ExcelBackend) SetYLabel(text string) { e.yLabel = text }

func (e *ExcelBackend) SetTitle(text string) { e.title = text }

func (e *ExcelBackend) DrawLine(x, y []float64, label string, opts models.OptionSet) error {
	e.series = append(e.series, excelSeries{kind: models.SeriesLine, label: label, x: x, y: y, opts: opts})
	return nil
}

func (e *ExcelBackend) DrawScatter(x, y []float64, label string, opts models.OptionSet) error {
	e.series = append(e.series, excelSeries{kind: models.SeriesScatter, label: label, x: x, y: y, opts: opts})
	return nil
}

func (e *ExcelBackend) DrawErrorBar(x, y, yerr []float64, label string, opts models.OptionSet) error {
	e.series = append(e.series, excelSeries{kind: models.SeriesErrorBar, label: label, x: x, y: y, yerr: yerr, opts: opts})
	return nil
}

func (e *ExcelBackend) ShowLegend() {
	e.legend = true
}

// SaveTo writes the workbook. The path keeps its directory but always gets
// an .xlsx extension, whatever the stream's save path named.
func (e *ExcelBackend) SaveTo(path string) error {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", dataSheet); err != nil {
		return err
	}

	col := 1
	var chartSeries []excelize.ChartSeries
	for i, s := range e.series {
		ref, err := e.writeSeries(f, col, i+1, s)
		if err != nil {
			return err
		}
		chartSeries = append(chartSeries, ref)
		col += 2
		if s.yerr != nil {
			col++
		}
	}

	chart := &excelize.Chart{
		Type:      chartType(e.series),
		Series:    chartSeries,
		Dimension: excelize.ChartDimension{Width: uint(e.width * pixelsPerInch), Height: uint(e.height * pixelsPerInch)},
		Legend:    excelize.ChartLegend{Position: "none"},
	}
	if e.legend {
		chart.Legend.Position = "right"
	}
	if e.title != "" {
		chart.Title = []excelize.RichTextRun{{Text: e.title}}
	}
	if e.xLabel != "" {
		chart.XAxis.Title = []excelize.RichTextRun{{Text: e.xLabel}}
	}
	if e.yLabel != "" {
		chart.YAxis.Title = []excelize.RichTextRun{{Text: e.yLabel}}
	}

	anchor, err := excelize.CoordinatesToCellName(col+1, 2)
	if err != nil {
		return err
	}
	if err := f.AddChart(dataSheet, anchor, chart); err != nil {
		return err
	}
	return f.SaveAs(xlsxPath(path))
}

// writeSeries writes one series' columns starting at col and returns the
// chart series referencing them.
func (e *ExcelBackend) writeSeries(f *excelize.File, col, idx int, s excelSeries) (excelize.ChartSeries, error) {
	blocks := []struct {
		name string
		data []float64
	}{
		{fmt.Sprintf("x%d", idx), s.x},
		{fmt.Sprintf("y%d", idx), s.y},
	}
	if s.yerr != nil {
		blocks = append(blocks, struct {
			name string
			data []float64
		}{fmt.Sprintf("yerr%d", idx), s.yerr})
	}

	for b, block := range blocks {
		cell, err := excelize.CoordinatesToCellName(col+b, 1)
		if err != nil {
			return excelize.ChartSeries{}, err
		}
		if err := f.SetCellValue(dataSheet, cell, block.name); err != nil {
			return excelize.ChartSeries{}, err
		}
		for r, v := range block.data {
			cell, err := excelize.CoordinatesToCellName(col+b, r+2)
			if err != nil {
				return excelize.ChartSeries{}, err
			}
			if err := f.SetCellValue(dataSheet, cell, v); err != nil {
				return excelize.ChartSeries{}, err
			}
		}
	}

	xRange, err := columnRange(col, len(s.x))
	if err != nil {
		return excelize.ChartSeries{}, err
	}
	yRange, err := columnRange(col+1, len(s.y))
	if err != nil {
		return excelize.ChartSeries{}, err
	}
	ref := excelize.ChartSeries{
		Name:       s.label,
		Categories: xRange,
		Values:     yRange,
	}
	if w, ok := s.opts.Float("linewidth"); ok {
		ref.Line.Width = w
	}
	return ref, nil
}

// columnRange returns the absolute range reference for n data rows of the
// given column (header in row 1, data from row 2).
func columnRange(col, n int) (string, error) {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s!$%s$2:$%s$%d", dataSheet, name, name, n+1), nil
}

// chartType picks the embedded chart type: scatter only when every series
// is a scatter series, lines otherwise. Embedded charts have a single type,
// so mixed specs fall back to lines.
func chartType(series []excelSeries) excelize.ChartType {
	for _, s := range series {
		if s.kind != models.SeriesScatter {
			return excelize.Line
		}
	}
	if len(series) == 0 {
		return excelize.Line
	}
	return excelize.Scatter
}

func xlsxPath(path string) string {
	ext := filepath.Ext(path)
	if ext == ".xlsx" {
		return path
	}
	return strings.TrimSuffix(path, ext) + ".xlsx"
}
