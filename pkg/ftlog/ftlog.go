package ftlog

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var openFile = func(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

// New creates the process logger. The screen is in raw mode while the
// explorer runs, so without a path the output is discarded.
func New(path string, debug bool) (*logrus.Logger, func() error, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	logger.SetLevel(logrus.InfoLevel)
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	if path == "" {
		logger.SetOutput(io.Discard)
		return logger, func() error { return nil }, nil
	}
	out, err := openFile(path)
	if err != nil {
		return nil, nil, err
	}
	logger.SetOutput(out)
	return logger, out.Close, nil
}

// Discard returns a logger that drops everything.
func Discard() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
