package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/datecheck/pkg/logger"
	"github.com/dmitrymomot/datecheck/pkg/temporal"
)

func (a *app) parseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "print the canonical form of each value",
		ArgsUsage: "VALUE...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "mode",
				Value: "date",
				Usage: "date, time or datetime",
			},
		},
		Action: a.runParse,
	}
}

func (a *app) runParse(ctx context.Context, c *cli.Command) error {
	mode, err := temporal.ParseMode(c.String("mode"))
	if err != nil {
		return err
	}
	p, err := a.parser()
	if err != nil {
		return err
	}

	values := c.Args().Slice()
	if len(values) == 0 {
		return fmt.Errorf("nothing to parse")
	}

	out, errOut := c.Root().Writer, c.Root().ErrWriter
	failed := 0
	for _, raw := range values {
		v, err := p.Parse(raw, mode)
		if err != nil {
			failed++
			a.logger.DebugContext(ctx, "parse failed", logger.Mode(mode), logger.Input(raw), logger.Error(err))
			fmt.Fprintf(errOut, "%q: %v\n", raw, err)
			continue
		}
		fmt.Fprintln(out, v.String())
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d value(s) could not be parsed", failed, len(values))
	}
	return nil
}
