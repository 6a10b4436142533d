package signalplot

import (
	"bytes"
	"io"
	"os"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// Config controls a SignalPlotter run. The zero value is not usable; start from
// DefaultConfig.
type Config struct {
	// Extensions is the allow-list of data file extensions.
	Extensions []string `yaml:"extensions"`

	// Relaxed splits rows on commas or runs of whitespace instead of strict CSV.
	Relaxed bool `yaml:"relaxed"`

	AxisInference InferenceStrategy `yaml:"axis_inference"`
	InspectRow    int               `yaml:"inspect_row"`
	InspectColumn int               `yaml:"inspect_column"`

	// KeepGoing keeps processing the remaining files after one fails. By
	// default the first failure ends the run.
	KeepGoing bool `yaml:"keep_going"`

	Chart ChartOptions `yaml:",inline"`
}

func DefaultConfig() Config {
	inspector := DefaultInspector()

	return Config{
		Extensions:    []string{".csv"},
		AxisInference: inspector.Strategy,
		InspectRow:    inspector.Row,
		InspectColumn: inspector.Column,
		Chart: ChartOptions{
			DPI:       300,
			Width:     1920,
			Height:    1440,
			LineWidth: 1.5,
		},
	}
}

// LoadConfig reads a YAML config on top of DefaultConfig. Unknown keys are
// rejected.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, ioError("open config", path, err)
	}
	defer f.Close()

	cfg, err := DecodeConfig(f)
	if err != nil {
		return Config{}, errors.Errorf("loading config %s: %w", path, err)
	}

	return cfg, nil
}

func DecodeConfig(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, errors.Errorf("decoding config: %w", err)
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if len(NormalizeExtensions(c.Extensions)) == 0 {
		return errors.Errorf("at least one data file extension is required, got %q", c.Extensions)
	}

	switch c.AxisInference {
	case InferFromCell, InferFromColumn:
	default:
		return errors.Errorf("unknown axis inference strategy %q", c.AxisInference)
	}

	if c.InspectRow < 0 {
		return errors.Errorf("inspect_row must not be negative, got %d", c.InspectRow)
	}

	if c.InspectColumn != 0 && c.InspectColumn != 1 {
		return errors.Errorf("inspect_column must be 0 or 1, got %d", c.InspectColumn)
	}

	if c.Chart.DPI <= 0 {
		return errors.Errorf("dpi must be positive, got %v", c.Chart.DPI)
	}

	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return errors.Errorf("chart size must be positive, got %dx%d", c.Chart.Width, c.Chart.Height)
	}

	if c.Chart.LineWidth <= 0 {
		return errors.Errorf("line_width must be positive, got %v", c.Chart.LineWidth)
	}

	return nil
}

func (c Config) Inspector() Inspector {
	return Inspector{Strategy: c.AxisInference, Row: c.InspectRow, Column: c.InspectColumn}
}
