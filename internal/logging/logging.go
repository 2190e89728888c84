// Package logging builds the charmbracelet loggers used by both frontends.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

const (
	logFileName = "bigmonkey.log"
	maxLogSize  = 10 << 20
	prefix      = "bigmonkey"
)

// New returns a logger writing to w at info level, or debug level if debug
// is set.
func New(w io.Writer, debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      time.StampMilli,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// OpenFile is for frontends that own the terminal and cannot log to it.
// Without debug it returns a discarding logger and a nil file. With debug it
// appends to dir/bigmonkey.log, rotating the old file away first if it has
// grown past 10 MiB. The caller closes the file.
func OpenFile(dir string, debug bool) (*log.Logger, *os.File, error) {
	if !debug {
		return Discard(), nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, logFileName)
	if err := rotate(path); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, true), f, nil
}

func rotate(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat log file: %w", err)
	}
	if info.Size() <= maxLogSize {
		return nil
	}

	ext := filepath.Ext(path)
	stamp := time.Now().Format("20060102-150405")
	rotated := fmt.Sprintf("%s-%s%s", path[:len(path)-len(ext)], stamp, ext)
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	return nil
}
