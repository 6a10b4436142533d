package signalplot

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/sirupsen/logrus"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gitlab.com/tozd/go/errors"
)

// Renderer draws a chart and encodes it into w.
type Renderer interface {
	Render(spec ChartSpec, w io.Writer) error
}

// Matplotlib's default line color, so charts look like the ones the original
// python tooling produced.
var defaultLineColor = drawing.ColorFromHex("1f77b4")

// Minimal padding around the plot area; there is no legend or caption to make
// room for.
var tightPadding = chart.Box{Top: 16, Left: 16, Right: 16, Bottom: 16}

// GoChartRenderer renders PNG charts with go-chart. A new chart.Chart is built
// for every call so no state carries over from one chart to the next.
type GoChartRenderer struct {
	logger logrus.FieldLogger
}

func NewGoChartRenderer() *GoChartRenderer {
	return &GoChartRenderer{
		logger: logrus.WithField("tag", "GoChartRenderer"),
	}
}

func (r *GoChartRenderer) Render(spec ChartSpec, w io.Writer) error {
	if len(spec.XValues) != len(spec.YValues) {
		return errors.Errorf("x and y length differ: %d != %d", len(spec.XValues), len(spec.YValues))
	}

	xRange, err := paddedRange(spec.XValues)
	if err != nil {
		return err
	}

	yRange, err := paddedRange(spec.YValues)
	if err != nil {
		return err
	}

	ch := chart.Chart{
		Title:      spec.Title,
		Width:      spec.Options.Width,
		Height:     spec.Options.Height,
		DPI:        spec.Options.DPI,
		Background: chart.Style{Padding: tightPadding},
		XAxis:      chart.XAxis{Name: spec.XLabel, Range: xRange, ValueFormatter: tickFormatter(xRange)},
		YAxis:      chart.YAxis{Range: yRange, ValueFormatter: tickFormatter(yRange)},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    spec.Title,
				XValues: spec.XValues,
				YValues: spec.YValues,
				Style: chart.Style{
					StrokeColor: defaultLineColor,
					StrokeWidth: spec.Options.LineWidth,
				},
			},
		},
	}

	if err := ch.Render(chart.PNG, w); err != nil {
		r.logger.WithError(err).WithField("title", spec.Title).Error("failed to render chart")
		return errors.Errorf("rendering chart %q: %w", spec.Title, err)
	}

	return nil
}

// maxTickDecimals caps tick label precision for extremely narrow ranges.
const maxTickDecimals = 10

// tickDecimals is the number of decimals that keeps labels distinct for ticks
// as close as a hundredth of the range apart.
func tickDecimals(rng *chart.ContinuousRange) int {
	step := (rng.Max - rng.Min) / 100
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return 0
	}

	decimals := int(math.Ceil(-math.Log10(step)))
	return Min(Max(decimals, 0), maxTickDecimals)
}

// tickFormatter formats axis ticks with enough precision for the range.
// go-chart's default of two decimals repeats labels on narrow ranges.
func tickFormatter(rng *chart.ContinuousRange) chart.ValueFormatter {
	decimals := tickDecimals(rng)

	return func(v interface{}) string {
		switch value := v.(type) {
		case float64:
			return strconv.FormatFloat(value, 'f', decimals, 64)
		case int:
			return strconv.Itoa(value)
		default:
			return fmt.Sprintf("%v", v)
		}
	}
}

// paddedRange returns the axis range for values. go-chart refuses to draw an
// axis whose range is zero, so a constant series gets a margin on both sides.
func paddedRange(values []float64) (*chart.ContinuousRange, error) {
	lo, hi, ok := Bounds(values)
	if !ok {
		return nil, errors.New("no values to plot")
	}

	if lo == hi {
		margin := math.Abs(lo) * 0.05
		if margin == 0 {
			margin = 1
		}
		lo, hi = lo-margin, hi+margin
	}

	return &chart.ContinuousRange{Min: lo, Max: hi}, nil
}
