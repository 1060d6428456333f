package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// ErrLengthMismatch indicates a series whose coordinate slices differ in
// length.
var ErrLengthMismatch = errors.New("series length mismatch")

// Figure builds one figure stream on the producer side of the format. Plot
// calls capture the drawing options added since the last ResetOptions, in
// call order, exactly as the stream's consumer will replay them.
//
// The zero value is not usable; construct with NewFigure.
type Figure struct {
	width  float64
	height float64
	xLabel string
	yLabel string
	title  string
	body   bytes.Buffer
}

// NewFigure returns a figure with the given dimensions in inches.
func NewFigure(width, height float64) *Figure {
	return &Figure{width: width, height: height}
}

// Width returns the figure width in inches.
func (f *Figure) Width() float64 { return f.width }

// Height returns the figure height in inches.
func (f *Figure) Height() float64 { return f.height }

// SetXLabel sets the x axis label.
func (f *Figure) SetXLabel(text string) { f.xLabel = text }

// SetYLabel sets the y axis label.
func (f *Figure) SetYLabel(text string) { f.yLabel = text }

// SetTitle sets the figure title.
func (f *Figure) SetTitle(text string) { f.title = text }

// Plot appends a line series.
func (f *Figure) Plot(x, y []float64, label string) error {
	return f.series(tagLine, label, x, y)
}

// Scatter appends a scatter series.
func (f *Figure) Scatter(x, y []float64, label string) error {
	return f.series(tagScatter, label, x, y)
}

// ErrorBar appends a line series with y error bars.
func (f *Figure) ErrorBar(x, y, yerr []float64, label string) error {
	return f.series(tagErrorBar, label, x, y, yerr)
}

// AddStringOption adds a string-valued drawing option for subsequent series.
func (f *Figure) AddStringOption(name, value string) {
	f.body.WriteByte(tagOption)
	writeCString(&f.body, name)
	f.body.WriteByte(optString)
	writeCString(&f.body, value)
}

// AddIntOption adds an integer-valued drawing option for subsequent series.
func (f *Figure) AddIntOption(name string, value int32) {
	f.body.WriteByte(tagOption)
	writeCString(&f.body, name)
	f.body.WriteByte(optInt)
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(value))
	f.body.Write(buf[:])
}

// AddFloatOption adds a float-valued drawing option for subsequent series.
func (f *Figure) AddFloatOption(name string, value float64) {
	f.body.WriteByte(tagOption)
	writeCString(&f.body, name)
	f.body.WriteByte(optFloat)
	writeFloat64(&f.body, value)
}

// ResetOptions clears the pending drawing options.
func (f *Figure) ResetOptions() {
	f.body.WriteByte(tagReset)
}

// Encode writes the complete stream for this figure to w. savePath is the
// save location the consumer should use, relative to its output directory;
// empty means the consumer decodes without saving.
func (f *Figure) Encode(w io.Writer, savePath string) error {
	var buf bytes.Buffer
	buf.WriteByte(tagSavePath)
	writeCString(&buf, savePath)
	buf.WriteByte(tagDimensions)
	writeFloat64(&buf, f.width)
	writeFloat64(&buf, f.height)
	if f.xLabel != "" {
		buf.WriteByte(tagXLabel)
		writeCString(&buf, f.xLabel)
	}
	if f.yLabel != "" {
		buf.WriteByte(tagYLabel)
		writeCString(&buf, f.yLabel)
	}
	if f.title != "" {
		buf.WriteByte(tagTitle)
		writeCString(&buf, f.title)
	}
	buf.Write(f.body.Bytes())
	_, err := w.Write(buf.Bytes())
	return err
}

// SaveFigure writes the stream to a data file under dir, named after
// localPath with dots replaced by underscores plus an ".img" suffix, the
// same naming the original producer uses. It returns the written path.
func (f *Figure) SaveFigure(dir, localPath string) (string, error) {
	name := strings.ReplaceAll(localPath, ".", "_") + ".img"
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := f.Encode(out, localPath); err != nil {
		out.Close()
		return "", err
	}
	return path, out.Close()
}

func (f *Figure) series(tag byte, label string, blocks ...[]float64) error {
	n := len(blocks[0])
	for _, b := range blocks[1:] {
		if len(b) != n {
			return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, n, len(b))
		}
	}
	f.body.WriteByte(tag)
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(n))
	f.body.Write(buf[:])
	for _, b := range blocks {
		for _, v := range b {
			writeFloat64(&f.body, v)
		}
	}
	writeCString(&f.body, label)
	return nil
}

func writeCString(buf *bytes.Buffer, s string) {
	buf.WriteString(s)
	buf.WriteByte(0)
}

func writeFloat64(buf *bytes.Buffer, v float64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
	buf.Write(b[:])
}
