package signalplot

// ChartOptions are the rendering settings shared by every chart of a run.
type ChartOptions struct {
	DPI       float64 `yaml:"dpi"`
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	LineWidth float64 `yaml:"line_width"`
}

// ChartSpec is everything a Renderer needs to draw one chart.
type ChartSpec struct {
	Title   string
	XLabel  string
	XValues []float64
	YValues []float64

	Options ChartOptions
}

// NewChartSpec builds the chart for a series with the inferred axis kind.
func NewChartSpec(series *SeriesFile, kind AxisKind, options ChartOptions) ChartSpec {
	return ChartSpec{
		Title:   series.Name,
		XLabel:  kind.Label(),
		XValues: series.XValues(),
		YValues: series.YValues(),
		Options: options,
	}
}
