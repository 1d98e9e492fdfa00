//go:build !android

package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = newLogger()

func newLogger() *zap.Logger {
	encoder := zap.NewDevelopmentEncoderConfig()
	encoder.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoder), zapcore.Lock(os.Stderr), zapcore.DebugLevel)
	return zap.New(core).Named(LogTag)
}

func logMsg(prio Priority, msg string) {
	switch prio {
	case PriorityVerbose, PriorityDebug:
		logger.Debug(msg)
	case PriorityWarn:
		logger.Warn(msg)
	case PriorityError:
		logger.Error(msg)
	case PriorityFatal:
		logger.Fatal(msg)
	default:
		logger.Info(msg)
	}
}

// Sync flushes buffered log entries, call before the process exits.
func Sync() {
	_ = logger.Sync()
}
