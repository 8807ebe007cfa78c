package log

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/bililive-go/douyin-params/src/configs"
	"github.com/bililive-go/douyin-params/src/instance"
	"github.com/bililive-go/douyin-params/src/interfaces"
)

const lastLogFileName = "douyin-params-last.log"

// New builds the logger described by the instance config and stores it on the instance.
// The package-level logrus logger gets the same level and output.
// Callers Close the returned logger on shutdown to release the last log file.
func New(ctx context.Context) *interfaces.Logger {
	inst := instance.GetInstance(ctx)
	var cfg *configs.Config
	if inst != nil {
		cfg = inst.Config
	}
	if cfg == nil {
		cfg = configs.NewConfig()
	}

	var writers []io.Writer
	var closers []io.Closer
	writers = append(writers, os.Stderr)
	if cfg.Log.SaveLastLog {
		file := filepath.Join(cfg.Log.OutPutFolder, lastLogFileName)
		if f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644); err == nil {
			writers = append(writers, f)
			closers = append(closers, f)
		} else {
			logrus.WithError(err).Warnf("failed to open log file %s", file)
		}
	}

	level := logrus.InfoLevel
	if cfg.Debug {
		level = logrus.DebugLevel
	}
	formatter := &logrus.TextFormatter{
		DisableColors:   true,
		DisableQuote:    true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	}
	out := io.MultiWriter(writers...)

	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(formatter)
	l.SetLevel(level)
	logger := interfaces.NewLogger(l, closers...)
	logrus.SetOutput(out)
	logrus.SetFormatter(formatter)
	logrus.SetLevel(level)

	if inst != nil {
		inst.Logger = logger
	}
	return logger
}
