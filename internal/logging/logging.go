package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/blackwell-systems/bookctl/internal/config"
	"github.com/sirupsen/logrus"
)

// New builds the application logger from cfg. Output goes to the log file
// so the terminal stays free for the UI. The returned closer releases the
// file.
func New(cfg config.LogConfig, version string) (*logrus.Entry, io.Closer, error) {
	l := logrus.New()

	if cfg.Format == "json" {
		l.Formatter = &logrus.JSONFormatter{}
	} else {
		l.Formatter = &logrus.TextFormatter{DisableColors: true, FullTimestamp: true}
	}

	level := logrus.InfoLevel
	if cfg.Level != "" {
		parsed, err := logrus.ParseLevel(cfg.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("log.level: %w", err)
		}
		level = parsed
	}
	l.Level = level

	var closer io.Closer = nopCloser{}
	switch cfg.File {
	case "":
		l.Out = io.Discard
	case "-":
		l.Out = os.Stderr
	default:
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			return nil, nil, fmt.Errorf("creating log dir: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		l.Out = f
		closer = f
	}

	return l.WithField("version", version), closer, nil
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Entry {
	l := logrus.New()
	l.Out = io.Discard
	return logrus.NewEntry(l)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
