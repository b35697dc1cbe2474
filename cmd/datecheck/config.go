package main

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/datecheck/pkg/httpserver"
	"github.com/dmitrymomot/datecheck/pkg/logger"
	"github.com/dmitrymomot/datecheck/pkg/requestid"
	"github.com/dmitrymomot/datecheck/pkg/temporal"
)

type appConfig struct {
	LogLevel  slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string     `env:"LOG_FORMAT" envDefault:"text"`
	Schema    string     `env:"DATECHECK_SCHEMA"`

	HTTP     httpserver.Config
	Temporal temporal.Config
}

func newLogger(cfg appConfig) (*slog.Logger, error) {
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("LOG_FORMAT: %w", err)
	}
	return logger.New(
		logger.WithLevel(cfg.LogLevel),
		logger.WithFormat(format),
		logger.WithService("datecheck"),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	), nil
}
