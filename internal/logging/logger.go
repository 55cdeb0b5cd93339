// Package logging provides the Logger interface CLI commands and the
// calibration driver log through, in the shape nomasters-haystack's
// logger.Logger takes, backed by zerolog.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is an interface to make swapping out loggers simple.
type Logger interface {
	Panicln(v ...any)
	Panicf(format string, v ...any)
	Fatalln(v ...any)
	Fatalf(format string, v ...any)
	Errorln(v ...any)
	Errorf(format string, v ...any)
	Warnln(v ...any)
	Warnf(format string, v ...any)
	Infoln(v ...any)
	Infof(format string, v ...any)
	Debugln(v ...any)
	Debugf(format string, v ...any)
	Traceln(v ...any)
	Tracef(format string, v ...any)
}

// zlog adapts a zerolog.Logger to the Logger interface.
type zlog struct {
	l zerolog.Logger
}

// New returns a Logger that writes human-readable, colorized output to
// stderr via zerolog's console writer.
func New() Logger {
	return NewWithWriter(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
}

// NewWithWriter returns a Logger writing to an arbitrary io.Writer, e.g. a
// plain JSON writer for machine-consumed log output.
func NewWithWriter(w io.Writer) Logger {
	return &zlog{l: zerolog.New(w).With().Timestamp().Logger()}
}

func (z *zlog) Panicln(v ...any)                  { z.l.Panic().Msg(sprintln(v...)) }
func (z *zlog) Panicf(format string, v ...any)     { z.l.Panic().Msgf(format, v...) }
func (z *zlog) Fatalln(v ...any)                  { z.l.Fatal().Msg(sprintln(v...)) }
func (z *zlog) Fatalf(format string, v ...any)     { z.l.Fatal().Msgf(format, v...) }
func (z *zlog) Errorln(v ...any)                  { z.l.Error().Msg(sprintln(v...)) }
func (z *zlog) Errorf(format string, v ...any)     { z.l.Error().Msgf(format, v...) }
func (z *zlog) Warnln(v ...any)                   { z.l.Warn().Msg(sprintln(v...)) }
func (z *zlog) Warnf(format string, v ...any)      { z.l.Warn().Msgf(format, v...) }
func (z *zlog) Infoln(v ...any)                   { z.l.Info().Msg(sprintln(v...)) }
func (z *zlog) Infof(format string, v ...any)      { z.l.Info().Msgf(format, v...) }
func (z *zlog) Debugln(v ...any)                  { z.l.Debug().Msg(sprintln(v...)) }
func (z *zlog) Debugf(format string, v ...any)     { z.l.Debug().Msgf(format, v...) }
func (z *zlog) Traceln(v ...any)                  { z.l.Trace().Msg(sprintln(v...)) }
func (z *zlog) Tracef(format string, v ...any)     { z.l.Trace().Msgf(format, v...) }

func sprintln(v ...any) string {
	return strings.TrimSuffix(fmt.Sprintln(v...), "\n")
}

// noop discards everything; used in tests and under -quiet.
type noop struct{}

// NewNoOp returns a Logger that discards all output.
func NewNoOp() Logger { return noop{} }

func (noop) Panicln(v ...any)              {}
func (noop) Panicf(format string, v ...any) {}
func (noop) Fatalln(v ...any)              {}
func (noop) Fatalf(format string, v ...any) {}
func (noop) Errorln(v ...any)              {}
func (noop) Errorf(format string, v ...any) {}
func (noop) Warnln(v ...any)               {}
func (noop) Warnf(format string, v ...any)  {}
func (noop) Infoln(v ...any)               {}
func (noop) Infof(format string, v ...any)  {}
func (noop) Debugln(v ...any)              {}
func (noop) Debugf(format string, v ...any) {}
func (noop) Traceln(v ...any)              {}
func (noop) Tracef(format string, v ...any) {}
