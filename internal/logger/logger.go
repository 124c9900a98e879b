// Package logger builds the structured logger of the moneywords command.
package logger

import (
	"fmt"

	"github.com/blendle/zapdriver"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options select the encoder and level of the logger.
type Options struct {
	Verbose     bool
	Stackdriver bool
	// OutputPaths defaults to stderr, so that log lines never mix with the
	// words printed on stdout.
	OutputPaths []string
	// Output, when set, takes precedence over OutputPaths.
	Output zapcore.WriteSyncer
}

// New returns a new *zap.Logger.
// Logging is enabled at DebugLevel and above when Verbose is set and at
// WarnLevel and above otherwise.
// With Stackdriver set, entries are encoded for Google Stackdriver's
// structured logging.
func New(service string, opts Options) (*zap.Logger, error) {
	var cfg zap.Config

	switch {
	case opts.Stackdriver && opts.Verbose:
		cfg = zapdriver.NewDevelopmentConfig()
	case opts.Stackdriver:
		cfg = zapdriver.NewProductionConfig()
	case opts.Verbose:
		cfg = zap.NewDevelopmentConfig()
	default:
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "console"
	}

	if !opts.Verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if opts.Output != nil {
		return newLoggerFromCore(cfg, service, opts.Output), nil
	}
	return newLoggerFromConfig(cfg, service, opts.OutputPaths)
}

func newLoggerFromCore(cfg zap.Config, service string, out zapcore.WriteSyncer) *zap.Logger {
	enc := zapcore.NewJSONEncoder(cfg.EncoderConfig)
	if cfg.Encoding == "console" {
		enc = zapcore.NewConsoleEncoder(cfg.EncoderConfig)
	}
	core := zapcore.NewCore(enc, out, cfg.Level)

	return zap.New(core, zap.AddCaller(), zap.Fields(zap.String("service", service)))
}

func newLoggerFromConfig(cfg zap.Config, service string, outputPaths []string) (*zap.Logger, error) {
	cfg.OutputPaths = []string{"stderr"}
	if len(outputPaths) > 0 {
		cfg.OutputPaths = outputPaths
	}
	cfg.InitialFields = map[string]interface{}{
		"service": service,
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("config build: %w", err)
	}

	return log, nil
}
