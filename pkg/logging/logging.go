// Package logging builds the module's structured logger: console
// output in development, JSON in production, mirroring the teacher
// pack's pkg/logger pattern.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// New builds a *zap.SugaredLogger. env selects the zap base config;
// anything other than EnvProduction is treated as development.
func New(env, level string) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if env == EnvProduction {
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "json"
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.Encoding = "console"
	}

	if level != "" {
		if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		}
	}

	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// SolverAdapter adapts a *zap.SugaredLogger to solver.Logger so the
// core solver package never imports zap directly.
type SolverAdapter struct {
	Sugar *zap.SugaredLogger
}

func (a SolverAdapter) Debugf(format string, args ...interface{}) { a.Sugar.Debugf(format, args...) }
func (a SolverAdapter) Infof(format string, args ...interface{})  { a.Sugar.Infof(format, args...) }
