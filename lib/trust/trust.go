// Package trust is a small leveled logger. Messages below the current mask
// are dropped before formatting.
package trust

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

type MaskLevel int

const (
	Nothing   MaskLevel = 0x0
	ErrorMask MaskLevel = 0x1
	WarnMask  MaskLevel = 0x2
	InfoMask  MaskLevel = 0x4
	DebugMask MaskLevel = 0x8
)

// Cumulative masks: each level includes the ones above it.
const (
	LevelError = ErrorMask
	LevelWarn  = LevelError | WarnMask
	LevelInfo  = LevelWarn | InfoMask
	LevelDebug = LevelInfo | DebugMask
)

func (m MaskLevel) String() string {
	var parts []string
	if m&ErrorMask != 0 {
		parts = append(parts, "error")
	}
	if m&WarnMask != 0 {
		parts = append(parts, "warn")
	}
	if m&InfoMask != 0 {
		parts = append(parts, "info")
	}
	if m&DebugMask != 0 {
		parts = append(parts, "debug")
	}
	if len(parts) == 0 {
		return "nothing"
	}
	return strings.Join(parts, " ")
}

// Logger writes masked, prefixed lines through a std log.Logger.
type Logger struct {
	out   *log.Logger
	level atomic.Int32
}

// New returns a logger writing to w with the given prefix at LevelInfo.
func New(w io.Writer, prefix string) *Logger {
	l := &Logger{out: log.New(w, prefix, 0)}
	l.level.Store(int32(LevelInfo))
	return l
}

// Default writes to stderr with timestamps, like the std log package.
func Default(prefix string) *Logger {
	l := &Logger{out: log.New(os.Stderr, prefix, log.LstdFlags)}
	l.level.Store(int32(LevelInfo))
	return l
}

// Discard drops everything.
func Discard() *Logger {
	l := New(io.Discard, "")
	l.SetLevel(Nothing)
	return l
}

// SetLevel sets the mask directly (for example ErrorMask|DebugMask) and
// returns the previous one.
func (l *Logger) SetLevel(mask MaskLevel) MaskLevel {
	return MaskLevel(l.level.Swap(int32(mask)))
}

func (l *Logger) Level() MaskLevel {
	return MaskLevel(l.level.Load())
}

func (l *Logger) Enabled(m MaskLevel) bool {
	return l.Level()&m != 0
}

func (l *Logger) logf(m MaskLevel, tag string, format string, params ...interface{}) {
	if !l.Enabled(m) {
		return
	}
	l.out.Output(3, tag+fmt.Sprintf(format, params...))
}

//Errorf logs at ErrorMask.
func (l *Logger) Errorf(format string, params ...interface{}) {
	l.logf(ErrorMask, "ERROR: ", format, params...)
}

//Warnf logs at WarnMask.
func (l *Logger) Warnf(format string, params ...interface{}) {
	l.logf(WarnMask, " WARN: ", format, params...)
}

//Infof logs at InfoMask.
func (l *Logger) Infof(format string, params ...interface{}) {
	l.logf(InfoMask, " INFO: ", format, params...)
}

//Debugf logs at DebugMask.
func (l *Logger) Debugf(format string, params ...interface{}) {
	l.logf(DebugMask, "DEBUG: ", format, params...)
}

// Fatalf logs regardless of mask and exits with exitCode.
func (l *Logger) Fatalf(exitCode int, format string, params ...interface{}) {
	l.out.Output(2, "FATAL: "+fmt.Sprintf(format, params...))
	os.Exit(exitCode)
}
