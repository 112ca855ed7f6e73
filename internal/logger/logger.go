// Package logger builds the zap-backed logr.Logger used by the command line
// tool.
package logger

import (
	"errors"
	"io"
	"strings"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	TimeStampKey = "timestamp"
	MessageKey   = "message"
)

// New returns a logger writing console-encoded entries to w, and a function
// that flushes it. Verbosity 0 logs Info and above; each increment enables
// one more logr V-level.
func New(w io.Writer, verbosity int) (logr.Logger, func()) {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.TimeKey = TimeStampKey
	encoderCfg.MessageKey = MessageKey

	// zapr maps logr V(n) to zap level -n.
	level := zapcore.Level(-verbosity)

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(level),
	)
	zl := zap.New(core)
	return zapr.NewLogger(zl), func() {
		if err := zl.Sync(); err != nil && !isIgnorableSyncError(err) {
			_, _ = io.WriteString(w, "failed to sync logger: "+err.Error()+"\n")
		}
	}
}

// isIgnorableSyncError reports the errors Sync returns on pipes and
// terminals.
func isIgnorableSyncError(err error) bool {
	if errors.Is(err, syscall.ENOTTY) || errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.EIO) || errors.Is(err, syscall.EBADF) {
		return true
	}
	return strings.Contains(err.Error(), "The handle is invalid")
}
