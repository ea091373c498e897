package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// L is the global logger instance. It's initialized to discard all output by default.
// Call Init() to enable logging.
var L *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

const (
	logPrefix     = "nibctl-"
	logSuffix     = ".log"
	retentionDays = 30
)

// out is the log file opened by Init, if any.
var out *os.File

// Options configures the logger initialization.
type Options struct {
	// Path is a log file, or a directory that receives one dated file per
	// day. Empty disables file logging.
	Path string
	// Verbose sends text logs to stderr when Path is empty.
	Verbose bool
	// Level is the minimum log level. Default: LevelInfo, or LevelDebug
	// for Verbose.
	Level slog.Level
}

// Init configures logging. Call before any log calls.
// With neither Path nor Verbose set, all log output is discarded.
func Init(opts Options) error {
	Close()

	level := opts.Level
	if level == 0 && opts.Verbose {
		level = slog.LevelDebug
	}

	if opts.Path == "" {
		if opts.Verbose {
			L = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		} else {
			L = slog.New(slog.NewTextHandler(io.Discard, nil))
		}
		return nil
	}

	filename := opts.Path
	if st, err := os.Stat(opts.Path); err == nil && st.IsDir() {
		// Clean up old logs (best-effort, ignore errors)
		cleanOldLogs(opts.Path)
		filename = filepath.Join(opts.Path, logPrefix+time.Now().Format("2006-01-02")+logSuffix)
	} else if err := os.MkdirAll(filepath.Dir(opts.Path), 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	out = f

	L = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	return nil
}

// Close releases the log file, if any, and goes back to discarding.
func Close() {
	if out != nil {
		_ = out.Close()
		out = nil
	}
	L = slog.New(slog.NewTextHandler(io.Discard, nil))
}

// cleanOldLogs removes log files older than retentionDays.
func cleanOldLogs(logDir string) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, logPrefix) || !strings.HasSuffix(name, logSuffix) {
			continue
		}

		// Parse date from filename: nibctl-2024-01-05.log
		dateStr := strings.TrimPrefix(strings.TrimSuffix(name, logSuffix), logPrefix)
		logDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			continue
		}

		if logDate.Before(cutoff) {
			os.Remove(filepath.Join(logDir, name))
		}
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
