package signalplot

import (
	"bufio"
	"context"
	"encoding/csv"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gitlab.com/tozd/go/errors"
)

// A data file is read in two stages: a StringReader splits the text into
// string fields per line, then a SampleReader converts each row into a
// numeric Sample. ReadSeriesFile drives both for a whole file.

// When Read is called, return an array of strings which are the columns.
type StringReader interface {
	Read(context.Context) ([]string, error)

	// Line is the 1-based line number of the row last returned by Read.
	Line() int
}

// This implements a StringReader and reads an io.Reader using the Golang
// csv module. This means the input data must strictly conform to CSV data. If
// the input data is not exactly CSV (for example separated by one or more
// spaces), use the RelaxedStringReader.
type CsvStringReader struct {
	path      string
	csvReader *csv.Reader

	lineCount int
}

func NewCsvStringReader(input io.Reader, path string) *CsvStringReader {
	csvReader := csv.NewReader(input)
	// Column count is checked by SampleReader so every layout error reads the same.
	csvReader.FieldsPerRecord = -1
	csvReader.TrimLeadingSpace = true

	return &CsvStringReader{
		path:      path,
		csvReader: csvReader,
		lineCount: 0,
	}
}

func (r *CsvStringReader) Read(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	line, err := r.csvReader.Read()
	if err == io.EOF {
		return nil, io.EOF
	}

	if err != nil {
		logger := logrus.WithFields(logrus.Fields{
			"tag":  "CsvString",
			"path": r.path,
		})

		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			r.lineCount = parseErr.Line
			logger.WithError(err).Debug("unable to parse CSV")
			return nil, parseError(r.path, parseErr.Line, parseErr.Column, parseErr.Err)
		}

		logger.WithError(err).Error("unable to read CSV")
		return nil, ioError("read", r.path, err)
	}

	r.lineCount, _ = r.csvReader.FieldPos(0)

	return line, nil
}

func (r *CsvStringReader) Line() int {
	return r.lineCount
}

// This is a more relaxed reader that can split on spaces or commas. However, it does not
// follow strict CSV formatting. Blank lines are skipped.
type RelaxedStringReader struct {
	path    string
	scanner *bufio.Scanner

	lineCount int
}

func NewRelaxedStringReader(input io.Reader, path string) *RelaxedStringReader {
	return &RelaxedStringReader{
		path:    path,
		scanner: bufio.NewScanner(input),

		lineCount: 0,
	}
}

// Split on either comma or any number of spaces or tabs
var relaxedSplitter = regexp.MustCompile("[ \t]+|,")

func (r *RelaxedStringReader) Read(ctx context.Context) ([]string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				logrus.WithFields(logrus.Fields{"tag": "RelaxedString", "path": r.path}).WithError(err).Error("unable to read line")
				return nil, ioError("read", r.path, err)
			}
			return nil, io.EOF
		}

		r.lineCount++

		// Return only non-empty fields
		splittedLine := Filter(relaxedSplitter.Split(r.scanner.Text(), -1), func(value string) bool {
			return len(value) > 0
		})

		if len(splittedLine) > 0 {
			return splittedLine, nil
		}
	}
}

func (r *RelaxedStringReader) Line() int {
	return r.lineCount
}

// SampleReader converts string rows of a two-column data file into Samples.
// Unlike a live plot, a batch run must not silently drop rows: any row that is
// not exactly two numbers is a ParseError.
type SampleReader struct {
	Input StringReader

	// Path is only used in errors and log fields.
	Path string
}

func (r *SampleReader) Read(ctx context.Context) (Sample, error) {
	line, err := r.Input.Read(ctx)
	if err != nil {
		return Sample{}, err
	}

	lineNum := r.Input.Line()

	if len(line) != 2 {
		logrus.WithFields(logrus.Fields{
			"tag":     "SampleReader",
			"path":    r.Path,
			"line":    line,
			"lineNum": lineNum,
		}).Debug("unexpected column count")

		return Sample{}, parseError(r.Path, lineNum, 0, errors.Errorf("expected 2 columns, got %d", len(line)))
	}

	sample := Sample{
		RawX: strings.TrimSpace(line[0]),
		RawY: strings.TrimSpace(line[1]),
	}

	sample.X, err = strconv.ParseFloat(sample.RawX, 64)
	if err != nil {
		return Sample{}, parseError(r.Path, lineNum, 1, err)
	}

	sample.Y, err = strconv.ParseFloat(sample.RawY, 64)
	if err != nil {
		return Sample{}, parseError(r.Path, lineNum, 2, err)
	}

	if !isFinite(sample.X) {
		return Sample{}, parseError(r.Path, lineNum, 1, errors.Errorf("non-finite value %q", sample.RawX))
	}
	if !isFinite(sample.Y) {
		return Sample{}, parseError(r.Path, lineNum, 2, errors.Errorf("non-finite value %q", sample.RawY))
	}

	return sample, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ReadSeriesFile reads a whole data file. The first row is the header and is
// never interpreted as data.
func ReadSeriesFile(ctx context.Context, input io.Reader, path string, relaxed bool) (*SeriesFile, error) {
	var rows StringReader
	if relaxed {
		rows = NewRelaxedStringReader(input, path)
	} else {
		rows = NewCsvStringReader(input, path)
	}

	series := &SeriesFile{
		Name: SeriesName(path),
		Path: path,
	}

	header, err := rows.Read(ctx)
	if err == io.EOF {
		return nil, parseError(path, 1, 0, errors.Errorf("%w: missing header row", ErrTooFewRows))
	}
	if err != nil {
		return nil, err
	}
	series.Header = header

	reader := &SampleReader{Input: rows, Path: path}
	for {
		sample, err := reader.Read(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		series.Samples = append(series.Samples, sample)
	}

	logrus.WithFields(logrus.Fields{
		"tag":     "ReadSeriesFile",
		"path":    path,
		"header":  series.Header,
		"samples": len(series.Samples),
	}).Debug("read series file")

	return series, nil
}
