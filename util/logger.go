// Package util provides low-level helpers shared by all other packages.
package util

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"gosnake/internal/retry"
)

// LogLevel controls output verbosity.
type LogLevel int

const (
	LogQuiet   LogLevel = 0
	LogNormal  LogLevel = 1
	LogVerbose LogLevel = 2
	LogDebug   LogLevel = 3
)

// logrus has no "verbose" level, so the ladder is shifted down by one:
// Verbose maps to logrus Debug and Debug maps to logrus Trace.
var levelMap = map[LogLevel]logrus.Level{
	LogQuiet:   logrus.ErrorLevel,
	LogNormal:  logrus.InfoLevel,
	LogVerbose: logrus.DebugLevel,
	LogDebug:   logrus.TraceLevel,
}

var levelTags = map[logrus.Level]string{
	logrus.PanicLevel: "ERR",
	logrus.FatalLevel: "ERR",
	logrus.ErrorLevel: "ERR",
	logrus.WarnLevel:  "WRN",
	logrus.InfoLevel:  "INF",
	logrus.DebugLevel: "VRB",
	logrus.TraceLevel: "DBG",
}

// Logger writes levelled messages through logrus.  The game owns the
// terminal, so in normal use the output is the session log file rather
// than stderr.
type Logger struct {
	level  LogLevel
	log    *logrus.Logger
	format *lineFormatter
}

// NewLogger returns a Logger that prints messages at or below the given
// verbosity (0 = quiet, 1 = normal, 2 = verbose, 3 = debug).
func NewLogger(verbosity int) *Logger {
	if verbosity < int(LogQuiet) {
		verbosity = int(LogQuiet)
	}
	if verbosity > int(LogDebug) {
		verbosity = int(LogDebug)
	}
	f := &lineFormatter{timestamps: true}
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(f)
	l.SetLevel(levelMap[LogLevel(verbosity)])
	return &Logger{level: LogLevel(verbosity), log: l, format: f}
}

// SetTimestamps enables or disables the [hh:mm:ss] prefix.  Call before
// the logger is shared.
func (l *Logger) SetTimestamps(on bool) { l.format.timestamps = on }

// SetOutput overrides the output writer (default: os.Stderr).
func (l *Logger) SetOutput(w io.Writer) { l.log.SetOutput(w) }

// Level returns the current log level.
func (l *Logger) Level() LogLevel { return l.level }

// Info prints when verbosity ≥ 1.  Prefixed with [INF].
func (l *Logger) Info(format string, args ...interface{}) {
	l.log.Infof(format, args...)
}

// Warn prints when verbosity ≥ 1.  Prefixed with [WRN].
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log.Warnf(format, args...)
}

// Verbose prints when verbosity ≥ 2.  Prefixed with [VRB].
func (l *Logger) Verbose(format string, args ...interface{}) {
	l.log.Debugf(format, args...)
}

// Debug prints when verbosity ≥ 3.  Prefixed with [DBG].
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log.Tracef(format, args...)
}

// Error always prints regardless of verbosity.  Prefixed with [ERR].
func (l *Logger) Error(format string, args ...interface{}) {
	l.log.Errorf(format, args...)
}

// lineFormatter renders "[15:04:05] [INF] message".
type lineFormatter struct {
	timestamps bool
}

func (f *lineFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	if f.timestamps {
		b.WriteString(e.Time.Format("[15:04:05] "))
	}
	fmt.Fprintf(&b, "[%s] %s", levelTags[e.Level], e.Message)
	if b.Len() == 0 || b.Bytes()[b.Len()-1] != '\n' {
		b.WriteByte('\n')
	}
	return b.Bytes(), nil
}

// ── Log sinks ────────────────────────────────────────────────────────

// SafeWriter forwards to an underlying writer but never reports failure.
// After repeated write errors the breaker opens and writes are dropped
// until it cools down.
type SafeWriter struct {
	w  io.Writer
	cb *retry.CircuitBreaker
}

// NewSafeWriter wraps w.
func NewSafeWriter(w io.Writer) *SafeWriter {
	return &SafeWriter{w: w, cb: retry.NewCircuitBreaker(3, 30*time.Second)}
}

// Write always reports success.
func (s *SafeWriter) Write(p []byte) (int, error) {
	s.cb.Execute(func() error { //nolint:errcheck
		_, err := s.w.Write(p)
		return err
	})
	return len(p), nil
}

// Tripped reports whether writes are currently being dropped.
func (s *SafeWriter) Tripped() bool {
	return s.cb.CurrentState() == retry.StateOpen
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// OpenLogFile resolves the --log-file setting: "" discards, "-" is
// stderr, anything else is created or truncated.
func OpenLogFile(path string) (io.WriteCloser, error) {
	switch path {
	case "":
		return nopCloser{io.Discard}, nil
	case "-":
		return nopCloser{os.Stderr}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}
