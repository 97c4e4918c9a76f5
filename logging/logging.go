// Package logging is a package-level leveled logger shared by gateway
// and rest: a single global level gate backed by logrus, formatted as
// one line per event the way the teacher's own logging layer does it.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
	easy "github.com/t-tomalak/logrus-easy-formatter"
)

// Level gates which calls reach the underlying logger. Lower values
// are more severe; None silences everything.
type Level int

const (
	LevelNone Level = iota
	LevelFatal
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

// LogPrefix tags every line this module emits, distinguishing it from
// an application's own log output when both share a writer.
const LogPrefix = "[RIVE]"

var log = logrus.Logger{
	Out: os.Stderr,
	Formatter: &easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05",
		LogFormat:       LogPrefix + " [%lvl%]: %msg%\n",
	},
	ReportCaller: false,
}

// LogLevel is the active gate; Info by default, matching the
// teacher's non-Windows default.
var LogLevel = LevelInfo

func init() {
	log.SetLevel(logrus.TraceLevel)
}

// Traceln logs at Trace level.
func Traceln(args ...interface{}) {
	if LogLevel >= LevelTrace {
		log.Traceln(args...)
	}
}

// Tracef logs at Trace level with formatting.
func Tracef(format string, args ...interface{}) {
	if LogLevel >= LevelTrace {
		log.Tracef(format, args...)
	}
}

// Debugln logs at Debug level.
func Debugln(args ...interface{}) {
	if LogLevel >= LevelDebug {
		log.Debugln(args...)
	}
}

// Debugf logs at Debug level with formatting.
func Debugf(format string, args ...interface{}) {
	if LogLevel >= LevelDebug {
		log.Debugf(format, args...)
	}
}

// Infoln logs at Info level.
func Infoln(args ...interface{}) {
	if LogLevel >= LevelInfo {
		log.Infoln(args...)
	}
}

// Infof logs at Info level with formatting.
func Infof(format string, args ...interface{}) {
	if LogLevel >= LevelInfo {
		log.Infof(format, args...)
	}
}

// Warnln logs at Warn level.
func Warnln(args ...interface{}) {
	if LogLevel >= LevelWarn {
		log.Warningln(args...)
	}
}

// Warnf logs at Warn level with formatting.
func Warnf(format string, args ...interface{}) {
	if LogLevel >= LevelWarn {
		log.Warnf(format, args...)
	}
}

// Errorln logs at Error level.
func Errorln(args ...interface{}) {
	if LogLevel >= LevelError {
		log.Errorln(args...)
	}
}

// Errorf logs at Error level with formatting.
func Errorf(format string, args ...interface{}) {
	if LogLevel >= LevelError {
		log.Errorf(format, args...)
	}
}

// Fatalln logs at Fatal level. It does not terminate the process;
// callers decide whether a fatal-level condition is actually fatal to
// them, per spec.md's "no panics on input-originated failures" rule.
func Fatalln(args ...interface{}) {
	if LogLevel >= LevelFatal {
		log.Errorln(args...)
	}
}
