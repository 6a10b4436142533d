package signalplot

import (
	"path/filepath"
	"strings"
)

// Sample is one (x, y) row of a data file. The raw text of both cells is kept
// so the x-axis kind can be decided from what was actually written.
type Sample struct {
	X float64
	Y float64

	RawX string
	RawY string
}

// SeriesFile is one parsed data file. Column names from the header row are
// kept for logging only; values are always accessed positionally.
type SeriesFile struct {
	Name    string
	Path    string
	Header  []string
	Samples []Sample
}

// SeriesName derives the chart identifier from a data file path: the base name
// with its extension removed.
func SeriesName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// XValues returns the x column in file order.
func (s *SeriesFile) XValues() []float64 {
	xs := make([]float64, len(s.Samples))
	for i, sample := range s.Samples {
		xs[i] = sample.X
	}
	return xs
}

// YValues returns the y column in file order.
func (s *SeriesFile) YValues() []float64 {
	ys := make([]float64, len(s.Samples))
	for i, sample := range s.Samples {
		ys[i] = sample.Y
	}
	return ys
}

// Cell returns the raw text at the given data row and column (0 is x, 1 is y).
func (s *SeriesFile) Cell(row, column int) (string, bool) {
	if row < 0 || row >= len(s.Samples) {
		return "", false
	}

	switch column {
	case 0:
		return s.Samples[row].RawX, true
	case 1:
		return s.Samples[row].RawY, true
	default:
		return "", false
	}
}

// AxisKind says whether the x values are sample indices or times.
type AxisKind int

const (
	AxisTime AxisKind = iota
	AxisSampleIndex
)

// Label is the x-axis label drawn on the chart.
func (k AxisKind) Label() string {
	if k == AxisSampleIndex {
		return "Sample"
	}
	return "Time"
}

func (k AxisKind) String() string {
	return k.Label()
}

// RenderedChart describes a chart file written by SignalPlotter.Run.
type RenderedChart struct {
	Name     string
	Path     string
	AxisKind AxisKind
	Points   int
}
