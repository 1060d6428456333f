package models

// SeriesKind identifies how a series is drawn.
type SeriesKind string

const (
	// SeriesLine is a connected line plot.
	SeriesLine SeriesKind = "line"
	// SeriesScatter is a scatter plot.
	SeriesScatter SeriesKind = "scatter"
	// SeriesErrorBar is a line plot with per-point y error bars.
	SeriesErrorBar SeriesKind = "errorbar"
)

// Series is one plotted dataset. X and Y always have equal length; YErr is
// set only for SeriesErrorBar and shares that length.
type Series struct {
	// Kind is the series type (line, scatter, errorbar).
	Kind SeriesKind `json:"kind"`
	// X holds the x coordinates.
	X []float64 `json:"x"`
	// Y holds the y coordinates.
	Y []float64 `json:"y"`
	// YErr holds the y error magnitudes (SeriesErrorBar only).
	YErr []float64 `json:"y_err,omitempty"`
	// Label is the legend label (empty if none).
	Label string `json:"label,omitempty"`
	// Options holds the drawing options captured when the series was
	// emitted.
	Options OptionSet `json:"options,omitempty"`
}

// Len returns the number of points in the series.
func (s *Series) Len() int {
	return len(s.X)
}
