package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/datecheck/pkg/config"
	"github.com/dmitrymomot/datecheck/pkg/logger"
	"github.com/dmitrymomot/datecheck/pkg/model"
	"github.com/dmitrymomot/datecheck/pkg/schema"
	"github.com/dmitrymomot/datecheck/pkg/temporal"
)

type app struct {
	cfg    appConfig
	logger *slog.Logger
}

func main() {
	a := &app{}
	if err := a.command().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "datecheck:", err)
		os.Exit(1)
	}
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:  "datecheck",
		Usage: "parse and validate dates and times typed by people",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "env-file",
				Usage: "load variables from .env files before reading the configuration",
			},
			&cli.BoolFlag{
				Name:  "us",
				Usage: "read numeric dates as month/day/year",
			},
			&cli.IntFlag{
				Name:  "pivot",
				Usage: "two-digit years below this are 20xx, others 19xx",
			},
		},
		Before: a.load,
		Commands: []*cli.Command{
			a.parseCommand(),
			a.validateCommand(),
			a.serveCommand(),
		},
	}
}

// load reads the environment configuration; flags given on the command line win.
func (a *app) load(ctx context.Context, c *cli.Command) (context.Context, error) {
	if files := c.StringSlice("env-file"); len(files) > 0 {
		if err := config.LoadEnv(files...); err != nil {
			return ctx, err
		}
	}
	if err := config.Load(&a.cfg); err != nil {
		return ctx, err
	}
	if c.IsSet("us") {
		a.cfg.Temporal.USDateFormat = c.Bool("us")
	}
	if c.IsSet("pivot") {
		a.cfg.Temporal.TwoDigitYearPivot = int(c.Int("pivot"))
	}

	log, err := newLogger(a.cfg)
	if err != nil {
		return ctx, err
	}
	a.logger = log
	return ctx, nil
}

func (a *app) parser() (*temporal.Parser, error) {
	return temporal.NewFromConfig(a.cfg.Temporal)
}

// schema builds the model described by path, falling back to DATECHECK_SCHEMA.
func (a *app) schema(path string) (*model.Schema, error) {
	if path == "" {
		path = a.cfg.Schema
	}
	if path == "" {
		return nil, fmt.Errorf("no schema file: use --schema or DATECHECK_SCHEMA")
	}

	p, err := a.parser()
	if err != nil {
		return nil, err
	}
	def, err := schema.LoadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := schema.Build(def, schema.WithParser(p), schema.WithLogger(a.logger))
	if err != nil {
		return nil, err
	}
	a.logger.Debug("schema loaded",
		logger.Component("cli"),
		slog.String("path", path),
		slog.Int("fields", len(s.Attributes())),
	)
	return s, nil
}
