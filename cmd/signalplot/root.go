package main

import (
	"io"

	"github.com/cactusdynamics/signalplot"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

type rootFlags struct {
	configFile    string
	dpi           float64
	width         int
	height        int
	extensions    []string
	relaxed       bool
	axisInference string
	keepGoing     bool
	logLevel      string
	logFormat     string
}

func exactlyTwoDirs(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		cmd.PrintErrln(cmd.UsageString())
		return errors.Errorf("%w (got %d arguments)", signalplot.ErrUsage, len(args))
	}
	return nil
}

func newRootCmd(stdout io.Writer, stderr io.Writer) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "signalplot <dataDir> <outputDir>",
		Short: "Plot every CSV signal file in a directory to PNG",
		Long: `signalplot reads two-column signal files (x, sample) from dataDir and saves
one PNG chart per file into outputDir, named after the input file.

The x-axis is labelled "Sample" when the inspected cell is an integer and
"Time" otherwise.`,
		Args:          exactlyTwoDirs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := signalplot.ConfigureLogging(stderr, flags.logLevel, flags.logFormat); err != nil {
				return err
			}

			cfg, err := flags.config(cmd)
			if err != nil {
				return err
			}

			plotter := signalplot.NewSignalPlotter(cfg, signalplot.NewGoChartRenderer(), stdout)
			_, err = plotter.Run(cmd.Context(), args[0], args[1])
			return err
		},
	}

	cmd.SetErr(stderr)

	defaults := signalplot.DefaultConfig()
	f := cmd.Flags()
	f.StringVarP(&flags.configFile, "config", "c", "", "YAML config file")
	f.Float64Var(&flags.dpi, "dpi", defaults.Chart.DPI, "chart resolution in dots per inch")
	f.IntVar(&flags.width, "width", defaults.Chart.Width, "chart width in pixels")
	f.IntVar(&flags.height, "height", defaults.Chart.Height, "chart height in pixels")
	f.StringSliceVar(&flags.extensions, "ext", defaults.Extensions, "data file extensions to plot")
	f.BoolVar(&flags.relaxed, "relaxed", false, "split rows on commas or whitespace instead of strict CSV")
	f.StringVar(&flags.axisInference, "axis-inference", string(defaults.AxisInference), "x-axis inference: cell or column")
	f.BoolVar(&flags.keepGoing, "keep-going", false, "keep plotting the remaining files after one fails")
	f.StringVar(&flags.logLevel, "log-level", "warning", "log level (debug, info, warning, error)")
	f.StringVar(&flags.logFormat, "log-format", "text", "log format: text or json")

	return cmd
}

// config layers explicitly set flags over the config file over the defaults.
func (r *rootFlags) config(cmd *cobra.Command) (signalplot.Config, error) {
	cfg := signalplot.DefaultConfig()
	if r.configFile != "" {
		loaded, err := signalplot.LoadConfig(r.configFile)
		if err != nil {
			return signalplot.Config{}, err
		}
		cfg = loaded
	}

	f := cmd.Flags()
	if f.Changed("dpi") {
		cfg.Chart.DPI = r.dpi
	}
	if f.Changed("width") {
		cfg.Chart.Width = r.width
	}
	if f.Changed("height") {
		cfg.Chart.Height = r.height
	}
	if f.Changed("ext") {
		cfg.Extensions = r.extensions
	}
	if f.Changed("relaxed") {
		cfg.Relaxed = r.relaxed
	}
	if f.Changed("axis-inference") {
		cfg.AxisInference = signalplot.InferenceStrategy(r.axisInference)
	}
	if f.Changed("keep-going") {
		cfg.KeepGoing = r.keepGoing
	}

	if err := cfg.Validate(); err != nil {
		return signalplot.Config{}, errors.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
