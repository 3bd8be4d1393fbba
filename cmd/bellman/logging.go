package main

import (
	"io"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a zap logger writing to w and wraps it as a logr.Logger.
// logr verbosity V(n) maps to zap level -n, so "debug" enables the V(1)
// records emitted by the solvers.
func newLogger(level, format string, w io.Writer) (logr.Logger, func(), error) {
	var lvl zapcore.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = zap.DebugLevel
	case "info":
		lvl = zap.InfoLevel
	case "warn", "warning":
		lvl = zap.WarnLevel
	case "error":
		lvl = zap.ErrorLevel
	default:
		return logr.Discard(), nil, errors.Errorf("unknown log level %q", level)
	}

	var enc zapcore.Encoder
	switch strings.ToLower(format) {
	case "json":
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	case "console":
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	default:
		return logr.Discard(), nil, errors.Errorf("unknown log format %q", format)
	}

	sink := zapcore.AddSync(w)
	zlog := zap.New(zapcore.NewCore(enc, sink, zap.NewAtomicLevelAt(lvl)),
		zap.AddStacktrace(zap.ErrorLevel),
		zap.ErrorOutput(sink),
	)

	return zapr.NewLogger(zlog).WithName("bellman"), func() { _ = zlog.Sync() }, nil
}
