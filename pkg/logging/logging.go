// Package logging builds the zap loggers used by lineal.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options select the level, encoding and destinations of a logger.
type Options struct {
	Level       string   // debug, info, warn, error
	Encoding    string   // json or console
	OutputPaths []string // defaults to stderr
}

// New builds a logger. Caller information is left out and sampling is off,
// since evaluation traces are short and bursty.
func New(o Options) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(o.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	switch o.Encoding {
	case "json":
	case "console":
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	default:
		return nil, fmt.Errorf("logging: unknown encoding %q", o.Encoding)
	}

	outputs := o.OutputPaths
	if len(outputs) == 0 {
		outputs = []string{"stderr"}
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      false,
		Encoding:         o.Encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      outputs,
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	return config.Build()
}

// Must is New for program start-up, where a bad logging setup is fatal.
func Must(o Options) *zap.Logger {
	l, err := New(o)
	if err != nil {
		panic(err)
	}
	return l
}
