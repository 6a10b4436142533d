package signalplot

import (
	"strconv"

	"github.com/sirupsen/logrus"
	"gitlab.com/tozd/go/errors"
)

type InferenceStrategy string

const (
	// InferFromCell decides the axis kind from a single cell.
	InferFromCell InferenceStrategy = "cell"

	// InferFromColumn requires every cell of the inspected column to be
	// integral before labelling the axis as a sample index.
	InferFromColumn InferenceStrategy = "column"
)

// Inspector decides the x-axis kind of a series.
type Inspector struct {
	Strategy InferenceStrategy

	// Row is the 0-based data row (the header does not count) that is
	// inspected, Column the 0-based column.
	Row    int
	Column int
}

// DefaultInspector looks at the second data row of the second column.
func DefaultInspector() Inspector {
	return Inspector{Strategy: InferFromCell, Row: 1, Column: 1}
}

// IsIntegral reports whether a raw cell is written as an integer. "2" is
// integral, "2.0" and "2e3" are not.
func IsIntegral(raw string) bool {
	_, err := strconv.ParseInt(raw, 10, 64)
	return err == nil
}

// InferAxisKind classifies the series' x-axis. A series that does not reach
// the inspected row is rejected with ErrTooFewRows regardless of strategy.
func (in Inspector) InferAxisKind(series *SeriesFile) (AxisKind, error) {
	cell, ok := series.Cell(in.Row, in.Column)
	if !ok {
		return AxisTime, parseError(series.Path, len(series.Samples)+1, 0,
			errors.Errorf("%w: need at least %d data rows, got %d", ErrTooFewRows, in.Row+1, len(series.Samples)))
	}

	kind := AxisTime
	switch in.Strategy {
	case InferFromColumn:
		kind = AxisSampleIndex
		for row := range series.Samples {
			raw, _ := series.Cell(row, in.Column)
			if !IsIntegral(raw) {
				kind = AxisTime
				break
			}
		}
	default:
		if IsIntegral(cell) {
			kind = AxisSampleIndex
		}
	}

	logrus.WithFields(logrus.Fields{
		"tag":      "InferAxisKind",
		"series":   series.Name,
		"strategy": in.Strategy,
		"cell":     cell,
		"axis":     kind,
	}).Debug("inferred axis kind")

	return kind, nil
}
