package schema

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/datecheck/pkg/model"
	"github.com/dmitrymomot/datecheck/pkg/temporal"
	"github.com/dmitrymomot/datecheck/pkg/validator"
)

var funcs = map[string]func(clock func() time.Time) validator.Source{
	"today": validator.Today,
	"now":   validator.Now,
}

// Option configures Build.
type Option func(*builder)

type builder struct {
	clock  func() time.Time
	parser *temporal.Parser
	logger *slog.Logger
}

// WithClock sets the clock behind the today and now functions.
func WithClock(clock func() time.Time) Option {
	return func(b *builder) { b.clock = clock }
}

// WithParser sets the parser of the built schema.
func WithParser(p *temporal.Parser) Option {
	return func(b *builder) { b.parser = p }
}

// WithLogger sets the logger of the built schema.
func WithLogger(l *slog.Logger) Option {
	return func(b *builder) { b.logger = l }
}

// Build turns a checked definition into a model schema.
func Build(def *Definition, opts ...Option) (*model.Schema, error) {
	if def == nil {
		return nil, fmt.Errorf("%w: nil definition", ErrInvalidDefinition)
	}
	if err := def.Check(); err != nil {
		return nil, err
	}

	b := &builder{clock: time.Now}
	for _, opt := range opts {
		opt(b)
	}

	s := model.NewSchema(def.Name, model.WithParser(b.parser), model.WithLogger(b.logger))
	for _, f := range def.Fields {
		if err := b.field(s, f); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (b *builder) field(s *model.Schema, f FieldDef) error {
	if !f.validated() {
		var attr model.Attribute
		switch f.Type {
		case TypeDate:
			attr = model.Date(f.Name)
		case TypeTime:
			attr = model.Time(f.Name)
		case TypeDateTime:
			attr = model.DateTime(f.Name)
		default:
			attr = model.String(f.Name)
		}
		return s.Define(attr)
	}

	opts := []validator.FieldOption{
		validator.Before(b.sources(f.Before)...),
		validator.After(b.sources(f.After)...),
	}
	if f.AllowBlank {
		opts = append(opts, validator.AllowBlank())
	}
	if f.Message != "" {
		opts = append(opts, validator.WithMessage(f.Message))
	}
	if f.BeforeMessage != "" {
		opts = append(opts, validator.WithBeforeMessage(f.BeforeMessage))
	}
	if f.AfterMessage != "" {
		opts = append(opts, validator.WithAfterMessage(f.AfterMessage))
	}

	switch f.Type {
	case TypeTime:
		return s.ValidatesTime(f.Name, opts...)
	case TypeDateTime:
		return s.ValidatesDateTime(f.Name, opts...)
	default:
		return s.ValidatesDate(f.Name, opts...)
	}
}

func (b *builder) sources(defs []SourceDef) []validator.Source {
	out := make([]validator.Source, 0, len(defs))
	for _, d := range defs {
		switch {
		case d.Field != "":
			out = append(out, validator.Field(d.Field))
		case d.Func != "":
			out = append(out, funcs[d.Func](b.clock))
		default:
			out = append(out, validator.Value(d.Value))
		}
	}
	return out
}
