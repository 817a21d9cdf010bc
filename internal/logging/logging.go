package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// OpenLogFile opens path for appending, creating it and its parent
// directory when missing. An empty path disables file logging.
func OpenLogFile(path string) (*os.File, error) {
	if path == "" {
		return nil, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return file, nil
}

func Level(debug bool) zapcore.Level {
	if debug {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}

// Tee returns base with an extra JSON core writing to sink.
func Tee(base *zap.Logger, sink zapcore.WriteSyncer, level zapcore.Level) *zap.Logger {
	if sink == nil {
		return base
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	sinkCore := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), sink, level)
	return base.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, sinkCore)
	}))
}
