// SPDX-License-Identifier: GPL-3.0-or-later

// Package logger is a thin slog wrapper with printf-style helpers and a
// colored handler when stderr is a terminal.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
)

func newLogger() *Logger {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		// skip 2 slog pkg calls, 3 this pkg calls
		return &Logger{sl: slog.New(withCallDepth(5, newTerminalHandler()))}
	}
	return &Logger{sl: slog.New(withCallDepth(5, newTextHandler()))}
}

// New returns a logger writing to stderr at the package Level.
func New() *Logger {
	return newLogger()
}

var base = newLogger()

// Logger is safe to use with a nil receiver, falling back to the package
// default. That keeps embedded loggers usable before initialization.
type Logger struct {
	sl *slog.Logger
}

func (l *Logger) Error(a ...any)   { l.print(slog.LevelError, a...) }
func (l *Logger) Warning(a ...any) { l.print(slog.LevelWarn, a...) }
func (l *Logger) Info(a ...any)    { l.print(slog.LevelInfo, a...) }
func (l *Logger) Debug(a ...any)   { l.print(slog.LevelDebug, a...) }

func (l *Logger) Errorf(format string, a ...any)   { l.print(slog.LevelError, fmt.Sprintf(format, a...)) }
func (l *Logger) Warningf(format string, a ...any) { l.print(slog.LevelWarn, fmt.Sprintf(format, a...)) }
func (l *Logger) Infof(format string, a ...any)    { l.print(slog.LevelInfo, fmt.Sprintf(format, a...)) }
func (l *Logger) Debugf(format string, a ...any)   { l.print(slog.LevelDebug, fmt.Sprintf(format, a...)) }

func (l *Logger) With(args ...any) *Logger {
	if l.isNil() {
		return &Logger{sl: base.sl.With(args...)}
	}
	return &Logger{sl: l.sl.With(args...)}
}

func (l *Logger) print(level slog.Level, a ...any) {
	if l.isNil() {
		base.sl.Log(context.Background(), level, fmt.Sprint(a...))
		return
	}
	l.sl.Log(context.Background(), level, fmt.Sprint(a...))
}

func (l *Logger) isNil() bool { return l == nil || l.sl == nil }

func Error(a ...any)                   { base.Error(a...) }
func Warning(a ...any)                 { base.Warning(a...) }
func Info(a ...any)                    { base.Info(a...) }
func Debug(a ...any)                   { base.Debug(a...) }
func Errorf(format string, a ...any)   { base.Errorf(format, a...) }
func Warningf(format string, a ...any) { base.Warningf(format, a...) }
func Infof(format string, a ...any)    { base.Infof(format, a...) }
func Debugf(format string, a ...any)   { base.Debugf(format, a...) }
