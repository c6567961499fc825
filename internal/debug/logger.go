package debug

import (
	"io"

	"github.com/sirupsen/logrus"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
		DisableColors:   true,
	})
	l.SetLevel(logrus.DebugLevel)
	return l
}

// SetOutput sets the debug output destination
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetLevel parses a logrus level name and applies it
func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logger.SetLevel(lvl)
	return nil
}

// Log writes a debug message
func Log(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// WithFields returns an entry carrying structured fields
func WithFields(fields logrus.Fields) *logrus.Entry {
	return logger.WithFields(fields)
}

// Enabled returns true if debug logging is enabled
func Enabled() bool {
	return logger.Out != io.Discard && logger.IsLevelEnabled(logrus.DebugLevel)
}
