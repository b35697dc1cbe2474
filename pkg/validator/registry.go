package validator

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/dmitrymomot/datecheck/pkg/logger"
	"github.com/dmitrymomot/datecheck/pkg/temporal"
)

// FieldOption configures a field registered through ValidatesDate,
// ValidatesTime or ValidatesDateTime.
type FieldOption func(*FieldConfig)

// Before adds "must be before" bounds, checked in the given order.
func Before(sources ...Source) FieldOption {
	return func(c *FieldConfig) {
		for _, src := range sources {
			c.Before = append(c.Before, NewRestriction(src, c.Mode))
		}
	}
}

// After adds "must be after" bounds, checked in the given order.
func After(sources ...Source) FieldOption {
	return func(c *FieldConfig) {
		for _, src := range sources {
			c.After = append(c.After, NewRestriction(src, c.Mode))
		}
	}
}

// AllowBlank accepts an empty raw value without error.
func AllowBlank() FieldOption {
	return func(c *FieldConfig) { c.AllowBlank = true }
}

func WithMessage(msg string) FieldOption {
	return func(c *FieldConfig) { c.Message = msg }
}

func WithBeforeMessage(template string) FieldOption {
	return func(c *FieldConfig) { c.BeforeMessage = template }
}

func WithAfterMessage(template string) FieldOption {
	return func(c *FieldConfig) { c.AfterMessage = template }
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithParser sets the parser used for restriction bounds.
func WithParser(p *temporal.Parser) RegistryOption {
	return func(r *Registry) {
		if p != nil {
			r.validator = New(p)
		}
	}
}

// WithLogger sets the logger used to report failed validations at debug level.
func WithLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

type registeredField struct {
	attribute string
	config    FieldConfig
}

// Registry holds the temporal rules declared for a model and runs all of them
// on every validation pass. Fields are registered at definition time and then
// only read, so a Registry can be shared between goroutines.
type Registry struct {
	mu        sync.RWMutex
	validator *Validator
	logger    *slog.Logger
	fields    []registeredField
	index     map[string]int
}

func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		validator: New(nil),
		logger:    logger.Nop(),
		index:     make(map[string]int),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ValidatesDate registers a date attribute.
func (r *Registry) ValidatesDate(attribute string, opts ...FieldOption) error {
	return r.Register(attribute, buildConfig(temporal.ModeDate, opts))
}

// ValidatesTime registers a time-of-day attribute.
func (r *Registry) ValidatesTime(attribute string, opts ...FieldOption) error {
	return r.Register(attribute, buildConfig(temporal.ModeTime, opts))
}

// ValidatesDateTime registers a date-time attribute.
func (r *Registry) ValidatesDateTime(attribute string, opts ...FieldOption) error {
	return r.Register(attribute, buildConfig(temporal.ModeDateTime, opts))
}

// Register attaches cfg to attribute.
//
// Literal bounds are parsed here: a literal that cannot be parsed is a
// configuration defect and is reported as ErrInvalidRestriction instead of
// being skipped on every record.
func (r *Registry) Register(attribute string, cfg FieldConfig) error {
	if strings.TrimSpace(attribute) == "" {
		return fmt.Errorf("%w: empty attribute name", ErrInvalidField)
	}
	if !cfg.Mode.Valid() {
		return fmt.Errorf("%w: %s: unknown mode %s", ErrInvalidField, attribute, cfg.Mode)
	}

	cfg = normalizeConfig(cfg)
	p := r.validator.Parser()
	for i, res := range cfg.Before {
		if err := res.check(p); err != nil {
			return fmt.Errorf("%w: %s before[%d]: %w", ErrInvalidRestriction, attribute, i, err)
		}
	}
	for i, res := range cfg.After {
		if err := res.check(p); err != nil {
			return fmt.Errorf("%w: %s after[%d]: %w", ErrInvalidRestriction, attribute, i, err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.index[attribute]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateField, attribute)
	}
	r.index[attribute] = len(r.fields)
	r.fields = append(r.fields, registeredField{attribute: attribute, config: cfg})
	return nil
}

// MustRegister works like Register but panics on configuration errors.
func (r *Registry) MustRegister(attribute string, cfg FieldConfig) {
	if err := r.Register(attribute, cfg); err != nil {
		panic(fmt.Sprintf("Failed to register field %q: %v", attribute, err))
	}
}

// Fields returns the registered attribute names in registration order.
func (r *Registry) Fields() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.fields))
	for _, f := range r.fields {
		names = append(names, f.attribute)
	}
	return names
}

// Config returns the configuration registered for attribute.
func (r *Registry) Config(attribute string) (FieldConfig, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[attribute]
	if !ok {
		return FieldConfig{}, false
	}
	return r.fields[i].config, true
}

// Validate runs every registered field against rec, records each failure with
// rec.AddError and returns them as ValidationErrors. It returns nil when rec is valid.
func (r *Registry) Validate(rec Record) error {
	r.mu.RLock()
	fields := r.fields
	r.mu.RUnlock()

	var all ValidationErrors
	for _, f := range fields {
		errs := r.validator.Validate(rec, f.attribute, f.config)
		for _, e := range errs {
			if detailed, ok := rec.(DetailedRecord); ok {
				detailed.AddValidationError(e)
			} else {
				rec.AddError(e.Field, e.Kind, e.Message)
			}
			r.logger.Debug("field failed validation",
				logger.Component("validator"),
				logger.Field(e.Field),
				slog.String("kind", string(e.Kind)),
				slog.String("message", e.Message),
			)
		}
		all = append(all, errs...)
	}

	if all.IsEmpty() {
		return nil
	}
	return all
}

func buildConfig(mode temporal.Mode, opts []FieldOption) FieldConfig {
	cfg := FieldConfig{Mode: mode}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func normalizeConfig(cfg FieldConfig) FieldConfig {
	cfg.Message = messageOr(cfg.Message, DefaultMessage(cfg.Mode))
	cfg.BeforeMessage = messageOr(cfg.BeforeMessage, DefaultBeforeMessage)
	cfg.AfterMessage = messageOr(cfg.AfterMessage, DefaultAfterMessage)

	// copy so later changes to the caller's slices do not leak into the registry
	cfg.Before = withMode(cfg.Before, cfg.Mode)
	cfg.After = withMode(cfg.After, cfg.Mode)
	return cfg
}

func withMode(rs []Restriction, mode temporal.Mode) []Restriction {
	if len(rs) == 0 {
		return nil
	}
	out := make([]Restriction, len(rs))
	for i, res := range rs {
		out[i] = res.withDefaultMode(mode)
	}
	return out
}
