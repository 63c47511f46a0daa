// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmgilman/go/errors"
)

// DefaultLevel keeps the command line quiet unless something goes wrong.
const DefaultLevel = slog.LevelWarn

// ParseLevel maps a level name (DEBUG, INFO, WARN, ERROR) to a slog.Level.
// Names are case-insensitive and an empty name selects DefaultLevel.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "":
		return DefaultLevel, nil
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	}
	return DefaultLevel, errors.Newf(errors.CodeInvalidConfig, "unknown log level %q", level)
}

// New creates a text logger writing records at or above level to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Discard returns a logger which drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Open creates a logger appending to the file at logFilePath, creating its
// directory if needed. When logFilePath is empty the logger writes to fallback.
// The returned close function must be called once the logger is no longer used.
func Open(logFilePath string, level slog.Level, fallback io.Writer) (*slog.Logger, func() error, error) {
	if logFilePath == "" {
		return New(fallback, level), func() error { return nil }, nil
	}

	logDir := filepath.Dir(logFilePath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, nil, errors.Wrapf(err, errors.CodeInvalidConfig, "failed to create log directory %q", logDir)
	}

	f, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, errors.CodeInvalidConfig, "failed to open log file %q", logFilePath)
	}

	l := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	}))
	return l, f.Close, nil
}
