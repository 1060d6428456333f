package wire

import (
	"io"

	"github.com/lightplot/figwire-go/pkg/figwire/models"
)

// Tag bytes of the figure stream grammar.
const (
	tagSavePath   = 's'
	tagDimensions = 'D'
	tagXLabel     = 'X'
	tagYLabel     = 'Y'
	tagTitle      = 'T'
	tagLine       = 'P'
	tagScatter    = 'S'
	tagErrorBar   = 'E'
	tagOption     = 'O'
	tagReset      = 'R'
)

// Option payload type bytes.
const (
	optString = 'S'
	optInt    = 'I'
	optFloat  = 'D'
)

// state tracks which part of the grammar the decoder is in.
type state int

const (
	stateHeader state = iota
	stateLabels
	statePlotting
	stateDone
)

// decoder consumes one tag record per step. It owns a single mutable option
// accumulator that is extended by 'O' records, cleared by 'R', and
// snapshotted into each series as that series is emitted.
type decoder struct {
	r     *reader
	state state
	spec  models.ChartSpec
	opts  models.OptionSet
}

// Decode reads one complete figure stream and returns the decoded chart.
// Any grammar violation aborts the decode with a DecodeError; read failures
// other than end-of-stream are returned unchanged. No partial ChartSpec is
// ever returned.
func Decode(r io.Reader) (*models.ChartSpec, error) {
	d := &decoder{r: newReader(r), opts: models.OptionSet{}}
	if err := d.run(); err != nil {
		return nil, err
	}
	return &d.spec, nil
}

func (d *decoder) run() error {
	if err := d.header(); err != nil {
		return err
	}
	d.state = stateLabels
	for {
		off := d.r.offset()
		tag, ok, err := d.r.readTag()
		if err != nil {
			return err
		}
		if !ok {
			// Clean end of stream at a tag boundary.
			d.state = stateDone
			return nil
		}
		if d.state == stateLabels {
			handled, err := d.labelRecord(tag)
			if err != nil {
				return err
			}
			if handled {
				continue
			}
			// The first non-label tag ends the label phase for good and
			// is re-dispatched as a plotting tag.
			d.state = statePlotting
		}
		if err := d.plotRecord(off, tag); err != nil {
			return err
		}
	}
}

// header reads the mandatory save-path and dimensions records. The very
// first byte must be 's', immediately followed by 'D'.
func (d *decoder) header() error {
	off := d.r.offset()
	tag, ok, err := d.r.readTag()
	if err != nil {
		return err
	}
	if !ok {
		return &DecodeError{Offset: off, Err: ErrMissingHeader}
	}
	if tag != tagSavePath {
		return &DecodeError{Offset: off, Tag: tag, Err: ErrUnexpectedTag}
	}
	if d.spec.SavePath, err = d.r.readCString(); err != nil {
		return err
	}

	off = d.r.offset()
	tag, ok, err = d.r.readTag()
	if err != nil {
		return err
	}
	if !ok {
		return &DecodeError{Offset: off, Err: ErrMissingHeader}
	}
	if tag != tagDimensions {
		return &DecodeError{Offset: off, Tag: tag, Err: ErrUnexpectedTag}
	}
	if d.spec.Width, err = d.r.readFloat64(); err != nil {
		return err
	}
	if d.spec.Height, err = d.r.readFloat64(); err != nil {
		return err
	}
	return nil
}

// labelRecord consumes an axis-label or title record. Label tags may repeat
// before the first plotting tag; each repeat overwrites. Empty payloads are
// treated as absent and do not overwrite.
func (d *decoder) labelRecord(tag byte) (bool, error) {
	var dst *string
	switch tag {
	case tagXLabel:
		dst = &d.spec.XLabel
	case tagYLabel:
		dst = &d.spec.YLabel
	case tagTitle:
		dst = &d.spec.Title
	default:
		return false, nil
	}
	text, err := d.r.readCString()
	if err != nil {
		return false, err
	}
	if text != "" {
		*dst = text
	}
	return true, nil
}

func (d *decoder) plotRecord(off int64, tag byte) error {
	switch tag {
	case tagLine:
		return d.series(models.SeriesLine)
	case tagScatter:
		return d.series(models.SeriesScatter)
	case tagErrorBar:
		return d.series(models.SeriesErrorBar)
	case tagOption:
		return d.option()
	case tagReset:
		d.opts = models.OptionSet{}
		return nil
	default:
		return &DecodeError{Offset: off, Tag: tag, Err: ErrUnknownTag}
	}
}

// series reads one data series record: a shared uint64 element count, the
// coordinate blocks, and a label. The option accumulator is snapshotted
// into the emitted series.
func (d *decoder) series(kind models.SeriesKind) error {
	n, err := d.r.readUint64()
	if err != nil {
		return err
	}
	x, err := d.r.readFloats(n)
	if err != nil {
		return err
	}
	y, err := d.r.readFloats(n)
	if err != nil {
		return err
	}
	var yerr []float64
	if kind == models.SeriesErrorBar {
		if yerr, err = d.r.readFloats(n); err != nil {
			return err
		}
	}
	label, err := d.r.readCString()
	if err != nil {
		return err
	}
	d.spec.Series = append(d.spec.Series, models.Series{
		Kind:    kind,
		X:       x,
		Y:       y,
		YErr:    yerr,
		Label:   label,
		Options: d.opts.Clone(),
	})
	return nil
}

// option reads one typed option record into the accumulator.
func (d *decoder) option() error {
	name, err := d.r.readCString()
	if err != nil {
		return err
	}
	off := d.r.offset()
	typ, err := d.r.readByte()
	if err != nil {
		return err
	}
	switch typ {
	case optString:
		v, err := d.r.readCString()
		if err != nil {
			return err
		}
		d.opts.SetString(name, v)
	case optInt:
		// The producer writes a C int: 4 bytes, little-endian, signed.
		v, err := d.r.readInt32()
		if err != nil {
			return err
		}
		d.opts.SetInt(name, v)
	case optFloat:
		v, err := d.r.readFloat64()
		if err != nil {
			return err
		}
		d.opts.SetFloat(name, v)
	default:
		return &DecodeError{Offset: off, Tag: typ, Err: ErrUnknownOptionType}
	}
	return nil
}
