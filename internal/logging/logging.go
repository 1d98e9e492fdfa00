package logging

import (
	"fmt"
	"strings"
	"sync/atomic"
)

const LogTag = "SUN4I PowerHAL"

// Priority values line up with android_LogPriority so the liblog sink can
// pass them through unchanged.
type Priority int32

const (
	PriorityUnknown Priority = iota
	PriorityDefault
	PriorityVerbose
	PriorityDebug
	PriorityInfo
	PriorityWarn
	PriorityError
	PriorityFatal
	PrioritySilent
)

var (
	debug   atomic.Bool
	verbose atomic.Bool

	//Swapped out by tests
	sink = logMsg
)

func SetDebug(on bool)   { debug.Store(on) }
func SetVerbose(on bool) { verbose.Store(on) }
func DebugEnabled() bool { return debug.Load() }

func parseMsg(prio Priority, format string, replacements ...any) {
	if len(replacements) < 1 {
		replacements = []any{format}
		format = "%v"
	}
	msg := strings.TrimRight(fmt.Sprintf(format, replacements...), "\r\n")
	if msg == "" {
		return
	}
	switch prio {
	case PriorityVerbose:
		if !verbose.Load() {
			return
		}
	case PriorityDebug:
		if !debug.Load() {
			return
		}
	case PrioritySilent:
		return
	}
	sink(prio, msg)
}

func Info(format string, replacements ...any) {
	parseMsg(PriorityInfo, format, replacements...)
}
func Warn(format string, replacements ...any) {
	parseMsg(PriorityWarn, format, replacements...)
}
func Error(format string, replacements ...any) {
	parseMsg(PriorityError, format, replacements...)
}
func Fatal(format string, replacements ...any) {
	parseMsg(PriorityFatal, format, replacements...)
}
func Verbose(format string, replacements ...any) {
	parseMsg(PriorityVerbose, format, replacements...)
}
func Debug(format string, replacements ...any) {
	parseMsg(PriorityDebug, format, replacements...)
}
