// Package iologger opens the log destination and sets up the default
// slog logger.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/gningest/pkg/config"
	"github.com/gnames/gningest/pkg/logger"
)

// LogFileName is the name of the log file inside the log directory.
const LogFileName = "gningest.log"

// Init creates a logger for the given configuration, sets it as the
// slog default and returns it with a closer of its destination. Closing
// stdout or stderr destinations does nothing.
// Creates log file in logDir if destination is "file".
// If append is true, appends to existing log file; otherwise creates fresh file.
func Init(
	logDir string,
	cfg config.LogConfig,
	append bool,
) (*slog.Logger, io.Closer, error) {
	writer, err := openWriter(logDir, cfg.Destination, append)
	if err != nil {
		return nil, nil, err
	}

	res := logger.New(cfg, writer)
	slog.SetDefault(res)
	return res, writer, nil
}

type stdWriter struct {
	io.Writer
}

func (stdWriter) Close() error { return nil }

func openWriter(logDir, destination string, append bool) (io.WriteCloser, error) {
	switch destination {
	case "stdout":
		return stdWriter{os.Stdout}, nil
	case "file":
		logPath := filepath.Join(logDir, LogFileName)
		flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
		if append {
			flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
		}
		file, err := os.OpenFile(logPath, flags, 0644)
		if err != nil {
			return nil, CreateLogFileError(logPath, err)
		}
		return file, nil
	default:
		return stdWriter{os.Stderr}, nil
	}
}
