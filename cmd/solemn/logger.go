package main

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger writes warnings as JSON, or debug records in console form when verbose
func newLogger(writer io.Writer, verbose bool) *zap.Logger {
	if verbose {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(writer), zapcore.DebugLevel)
		return zap.New(core, zap.Development())
	}
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(writer), zapcore.WarnLevel)
	return zap.New(core)
}
