package signalplot

import (
	"io"

	"github.com/sirupsen/logrus"
	"gitlab.com/tozd/go/errors"
)

// ConfigureLogging sets up the standard logrus logger used by every component.
// format is "text" or "json".
func ConfigureLogging(out io.Writer, level string, format string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Errorf("parsing log level: %w", err)
	}

	switch format {
	case "", "text":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return errors.Errorf("unknown log format %q", format)
	}

	logrus.SetOutput(out)
	logrus.SetLevel(lvl)

	return nil
}
