// Package logger provides the leveled printf-style logger used across the
// relay server. Levels above the configured threshold are dropped.
package logger

import (
	"log"
	"os"
	"sync/atomic"
)

// Level controls logger verbosity.
type Level int32

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

var current atomic.Int32

var std = log.New(os.Stderr, "", log.LstdFlags|log.Lmicroseconds)

func init() {
	current.Store(int32(LevelInfo))
}

// SetLevel sets the global logging threshold.
func SetLevel(l Level) {
	current.Store(int32(l))
}

func enabled(l Level) bool {
	return Level(current.Load()) >= l
}

func Errorf(format string, args ...any) {
	if enabled(LevelError) {
		std.Printf("ERROR "+format, args...)
	}
}

func Warnf(format string, args ...any) {
	if enabled(LevelWarn) {
		std.Printf("WARN  "+format, args...)
	}
}

func Infof(format string, args ...any) {
	if enabled(LevelInfo) {
		std.Printf("INFO  "+format, args...)
	}
}

func Debugf(format string, args ...any) {
	if enabled(LevelDebug) {
		std.Printf("DEBUG "+format, args...)
	}
}

func Tracef(format string, args ...any) {
	if enabled(LevelTrace) {
		std.Printf("TRACE "+format, args...)
	}
}
