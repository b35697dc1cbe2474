package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/datecheck/pkg/httpapi"
	"github.com/dmitrymomot/datecheck/pkg/httpserver"
)

func (a *app) serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve the schema over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "schema",
				Usage: "YAML schema file",
			},
			&cli.StringFlag{
				Name:  "addr",
				Usage: "listen address, overrides HTTP_ADDR",
			},
		},
		Action: a.runServe,
	}
}

func (a *app) runServe(ctx context.Context, c *cli.Command) error {
	s, err := a.schema(c.String("schema"))
	if err != nil {
		return err
	}

	opts := []httpserver.Option{
		httpserver.WithConfig(a.cfg.HTTP),
		httpserver.WithLogger(a.logger),
	}
	if addr := c.String("addr"); addr != "" {
		opts = append(opts, httpserver.WithAddr(addr))
	}

	srv := httpserver.New(opts...)
	return srv.Run(ctx, httpapi.NewHandler(s, a.logger).Router())
}
