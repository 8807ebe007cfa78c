package interfaces

import (
	"io"

	"github.com/sirupsen/logrus"
)

type Logger struct {
	*logrus.Logger
	// files opened for this logger, released by Close
	closers []io.Closer
}

func NewLogger(l *logrus.Logger, closers ...io.Closer) *Logger {
	return &Logger{Logger: l, closers: closers}
}

// Close releases the files behind the logger. Safe to call more than once.
func (l *Logger) Close() error {
	var firstErr error
	for _, c := range l.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	l.closers = nil
	return firstErr
}
