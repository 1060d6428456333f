package models

import (
	"github.com/tiendc/go-deepcopy"
)

// OptionSet maps option names to typed values. Values are restricted to
// string, int32 and float64, matching the three typed payloads of the wire
// format. Keys are unique; the last write for a name wins.
type OptionSet map[string]interface{}

// SetString sets a string-valued option.
func (o OptionSet) SetString(name, value string) {
	o[name] = value
}

// SetInt sets an integer-valued option.
func (o OptionSet) SetInt(name string, value int32) {
	o[name] = value
}

// SetFloat sets a float-valued option.
func (o OptionSet) SetFloat(name string, value float64) {
	o[name] = value
}

// String returns the named option if it is present with a string value.
func (o OptionSet) String(name string) (string, bool) {
	v, ok := o[name].(string)
	return v, ok
}

// Int returns the named option if it is present with an integer value.
func (o OptionSet) Int(name string) (int32, bool) {
	v, ok := o[name].(int32)
	return v, ok
}

// Float returns the named option if it is present with a numeric value.
// Integer values are widened to float64, since producers are free to write
// numeric options with either payload type.
func (o OptionSet) Float(name string) (float64, bool) {
	switch v := o[name].(type) {
	case float64:
		return v, true
	case int32:
		return float64(v), true
	}
	return 0, false
}

// Clone returns an independent copy of the set. The decoder snapshots its
// option accumulator into each series with Clone, so later accumulator
// mutation never reaches an already emitted series.
func (o OptionSet) Clone() OptionSet {
	dst := make(OptionSet, len(o))
	if err := deepcopy.Copy(&dst, o); err != nil {
		// Values are scalars, so the deep copy cannot fail; fall back to
		// a plain copy regardless.
		for k, v := range o {
			dst[k] = v
		}
	}
	return dst
}
