package main

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/datecheck/pkg/i18n"
	"github.com/dmitrymomot/datecheck/pkg/model"
	"github.com/dmitrymomot/datecheck/pkg/multiparam"
	"github.com/dmitrymomot/datecheck/pkg/validator"
)

func (a *app) validateCommand() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "assign values to a record of the schema and validate it",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "schema",
				Usage: "YAML schema file",
			},
			&cli.StringSliceFlag{
				Name:  "set",
				Usage: "assign an attribute, name=value",
			},
			&cli.StringFlag{
				Name:  "form",
				Usage: "url-encoded form, e.g. 'date_of_birth(1i)=2006&date_of_birth(2i)=1'",
			},
			&cli.StringFlag{
				Name:    "lang",
				Usage:   "language of error messages, Accept-Language syntax (en, de, fr)",
				Sources: cli.EnvVars("DATECHECK_LANG"),
			},
		},
		Action: a.runValidate,
	}
}

func (a *app) runValidate(ctx context.Context, c *cli.Command) error {
	s, err := a.schema(c.String("schema"))
	if err != nil {
		return err
	}
	rec := s.New()

	for _, pair := range c.StringSlice("set") {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("--set %q: expected name=value", pair)
		}
		if err := rec.Set(strings.TrimSpace(name), value); err != nil {
			return err
		}
	}

	if form := c.String("form"); form != "" {
		values, err := url.ParseQuery(form)
		if err != nil {
			return fmt.Errorf("--form: %w", err)
		}
		if err := multiparam.AssignForm(rec, values); err != nil {
			var batch *multiparam.AssignmentErrors
			if errors.As(err, &batch) {
				fmt.Fprintln(c.Root().ErrWriter, batch.Detail())
			}
			return err
		}
	}

	err = rec.Save()
	printRecord(c, rec)
	if err != nil {
		tr := i18n.Default()
		printErrors(c, tr.Localize(tr.Negotiate(c.String("lang")), validator.ExtractValidationErrors(err)))
		return model.ErrInvalidRecord
	}
	return nil
}

func printRecord(c *cli.Command, rec *model.Record) {
	values := rec.Values()
	for _, name := range slices.Sorted(maps.Keys(values)) {
		fmt.Fprintf(c.Root().Writer, "%s = %s\n", name, values[name])
	}
}

func printErrors(c *cli.Command, errs validator.ValidationErrors) {
	for _, e := range errs {
		fmt.Fprintf(c.Root().ErrWriter, "%s %s\n", e.Field, e.Message)
	}
}
