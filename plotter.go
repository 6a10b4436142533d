package signalplot

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gitlab.com/tozd/go/errors"
)

// SignalPlotter turns every data file of a directory into a PNG chart.
//
// Files are handled one at a time: each file is read, classified and rendered,
// and its handles closed, before the next one is opened.
type SignalPlotter struct {
	config   Config
	renderer Renderer

	// Confirmation lines ("Saved to <path>") are written here.
	out io.Writer

	logger logrus.FieldLogger
}

func NewSignalPlotter(config Config, renderer Renderer, out io.Writer) *SignalPlotter {
	if renderer == nil {
		renderer = NewGoChartRenderer()
	}

	if out == nil {
		out = io.Discard
	}

	return &SignalPlotter{
		config:   config,
		renderer: renderer,
		out:      out,
		logger:   logrus.WithField("tag", "SignalPlotter"),
	}
}

// Run writes one <name>.png into outputDir for every allow-listed data file in
// inputDir and returns the charts written.
//
// Unless KeepGoing is set, the first failing file ends the run. Charts written
// before the failure are left in place. With KeepGoing, every failure is
// collected and returned together after the last file.
func (p *SignalPlotter) Run(ctx context.Context, inputDir string, outputDir string) ([]RenderedChart, error) {
	if err := p.config.Validate(); err != nil {
		return nil, err
	}

	if err := requireDir(inputDir); err != nil {
		return nil, err
	}

	if err := requireDir(outputDir); err != nil {
		return nil, err
	}

	names, err := EnumerateDataFiles(os.DirFS(inputDir), p.config.Extensions)
	if err != nil {
		return nil, err
	}

	p.logger.WithFields(logrus.Fields{
		"inputDir":  inputDir,
		"outputDir": outputDir,
		"files":     len(names),
	}).Info("plotting data files")

	charts := make([]RenderedChart, 0, len(names))
	var failures []error

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return charts, err
		}

		rendered, err := p.plotFile(ctx, inputDir, name, outputDir)
		if err != nil {
			logger := p.logger.WithError(err).WithField("file", name)
			if !p.config.KeepGoing {
				logger.Error("failed to plot file, stopping")
				return charts, err
			}

			logger.Warn("failed to plot file, continuing with the next one")
			failures = append(failures, err)
			continue
		}

		charts = append(charts, rendered)
	}

	if len(failures) > 0 {
		return charts, errors.Errorf("%d of %d files failed: %w", len(failures), len(names), errors.Join(failures...))
	}

	return charts, nil
}

func (p *SignalPlotter) plotFile(ctx context.Context, inputDir string, name string, outputDir string) (RenderedChart, error) {
	inputPath := filepath.Join(inputDir, name)

	series, err := p.readSeries(ctx, inputPath)
	if err != nil {
		return RenderedChart{}, err
	}

	kind, err := p.config.Inspector().InferAxisKind(series)
	if err != nil {
		return RenderedChart{}, err
	}

	outputPath := filepath.Join(outputDir, series.Name+".png")
	spec := NewChartSpec(series, kind, p.config.Chart)

	if err := p.writeChart(spec, outputPath); err != nil {
		return RenderedChart{}, err
	}

	fmt.Fprintf(p.out, "Saved to %s\n", outputPath)

	p.logger.WithFields(logrus.Fields{
		"file":   name,
		"output": outputPath,
		"axis":   kind,
		"points": len(series.Samples),
	}).Info("chart saved")

	return RenderedChart{
		Name:     series.Name,
		Path:     outputPath,
		AxisKind: kind,
		Points:   len(series.Samples),
	}, nil
}

func (p *SignalPlotter) readSeries(ctx context.Context, path string) (*SeriesFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioError("open", path, err)
	}
	defer f.Close()

	return ReadSeriesFile(ctx, f, path, p.config.Relaxed)
}

// writeChart renders into outputPath. A chart that fails to render or flush is
// removed so no truncated image is left behind.
func (p *SignalPlotter) writeChart(spec ChartSpec, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return ioError("create", outputPath, err)
	}

	renderErr := p.renderer.Render(spec, f)
	closeErr := f.Close()

	if renderErr == nil && closeErr == nil {
		return nil
	}

	if err := os.Remove(outputPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		p.logger.WithError(err).WithField("output", outputPath).Warn("failed to remove incomplete chart")
	}

	if renderErr != nil {
		return renderErr
	}

	return ioError("close", outputPath, closeErr)
}

func requireDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return ioError("stat", path, err)
	}

	if !info.IsDir() {
		return ioError("stat", path, errors.New("not a directory"))
	}

	return nil
}
