package model

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/dmitrymomot/datecheck/pkg/temporal"
	"github.com/dmitrymomot/datecheck/pkg/validator"
)

// Kind is the type of an attribute.
type Kind int

const (
	KindString Kind = iota + 1
	KindDate
	KindTime
	KindDateTime
	KindComposite
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindDate:
		return "date"
	case KindTime:
		return "time"
	case KindDateTime:
		return "datetime"
	case KindComposite:
		return "composite"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Mode returns the temporal mode of a temporal kind, or zero.
func (k Kind) Mode() temporal.Mode {
	switch k {
	case KindDate:
		return temporal.ModeDate
	case KindTime:
		return temporal.ModeTime
	case KindDateTime:
		return temporal.ModeDateTime
	default:
		return 0
	}
}

// Attribute declares one field of a schema.
type Attribute struct {
	Name    string
	Kind    Kind
	Compose func(values []string) (any, error)
}

func String(name string) Attribute   { return Attribute{Name: name, Kind: KindString} }
func Date(name string) Attribute     { return Attribute{Name: name, Kind: KindDate} }
func Time(name string) Attribute     { return Attribute{Name: name, Kind: KindTime} }
func DateTime(name string) Attribute { return Attribute{Name: name, Kind: KindDateTime} }

// Composite declares an attribute built from split form input by fn.
func Composite(name string, fn func(values []string) (any, error)) Attribute {
	return Attribute{Name: name, Kind: KindComposite, Compose: fn}
}

// Option configures a Schema.
type Option func(*Schema)

// WithParser sets the parser used for assignments and restriction literals.
func WithParser(p *temporal.Parser) Option {
	return func(s *Schema) {
		if p != nil {
			s.parser = p
		}
	}
}

// WithLogger sets the logger handed to the validation registry.
func WithLogger(l *slog.Logger) Option {
	return func(s *Schema) {
		if l != nil {
			s.logger = l
		}
	}
}

// Schema is the definition shared by all records of one model. It is built
// once and then only read.
type Schema struct {
	name     string
	parser   *temporal.Parser
	logger   *slog.Logger
	registry *validator.Registry

	mu    sync.RWMutex
	attrs []Attribute
	index map[string]int
}

func NewSchema(name string, opts ...Option) *Schema {
	s := &Schema{
		name:   name,
		parser: temporal.New(),
		index:  make(map[string]int),
	}
	for _, opt := range opts {
		opt(s)
	}

	regOpts := []validator.RegistryOption{validator.WithParser(s.parser)}
	if s.logger != nil {
		regOpts = append(regOpts, validator.WithLogger(s.logger))
	}
	s.registry = validator.NewRegistry(regOpts...)
	return s
}

func (s *Schema) Name() string                  { return s.name }
func (s *Schema) Parser() *temporal.Parser      { return s.parser }
func (s *Schema) Registry() *validator.Registry { return s.registry }

// Define declares attributes. It stops at the first invalid or duplicate one.
func (s *Schema) Define(attrs ...Attribute) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range attrs {
		if err := s.define(a); err != nil {
			return err
		}
	}
	return nil
}

// MustDefine works like Define but panics on error.
func (s *Schema) MustDefine(attrs ...Attribute) {
	if err := s.Define(attrs...); err != nil {
		panic(fmt.Sprintf("Failed to define %s attributes: %v", s.name, err))
	}
}

func (s *Schema) define(a Attribute) error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAttribute)
	}
	if a.Kind < KindString || a.Kind > KindComposite {
		return fmt.Errorf("%w: %s: unknown kind %s", ErrInvalidAttribute, a.Name, a.Kind)
	}
	if a.Kind == KindComposite && a.Compose == nil {
		return fmt.Errorf("%w: %s: composite without composer", ErrInvalidAttribute, a.Name)
	}
	if _, exists := s.index[a.Name]; exists {
		return fmt.Errorf("%w: %s.%s", ErrDuplicateAttribute, s.name, a.Name)
	}
	s.index[a.Name] = len(s.attrs)
	s.attrs = append(s.attrs, a)
	return nil
}

// Attribute returns the declaration of name.
func (s *Schema) Attribute(name string) (Attribute, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[name]
	if !ok {
		return Attribute{}, false
	}
	return s.attrs[i], true
}

// Attributes returns all declarations in declaration order.
func (s *Schema) Attributes() []Attribute {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Attribute, len(s.attrs))
	copy(out, s.attrs)
	return out
}

// ValidatesDate declares name as a date attribute if needed and registers its rules.
func (s *Schema) ValidatesDate(name string, opts ...validator.FieldOption) error {
	return s.validates(name, KindDate, s.registry.ValidatesDate, opts)
}

// ValidatesTime declares name as a time attribute if needed and registers its rules.
func (s *Schema) ValidatesTime(name string, opts ...validator.FieldOption) error {
	return s.validates(name, KindTime, s.registry.ValidatesTime, opts)
}

// ValidatesDateTime declares name as a date-time attribute if needed and registers its rules.
func (s *Schema) ValidatesDateTime(name string, opts ...validator.FieldOption) error {
	return s.validates(name, KindDateTime, s.registry.ValidatesDateTime, opts)
}

// MustValidatesDate works like ValidatesDate but panics on error.
func (s *Schema) MustValidatesDate(name string, opts ...validator.FieldOption) {
	if err := s.ValidatesDate(name, opts...); err != nil {
		panic(fmt.Sprintf("Failed to register %s.%s: %v", s.name, name, err))
	}
}

// validates declares name when needed and registers its rules. A declaration
// made here is withdrawn again if registration fails.
func (s *Schema) validates(name string, kind Kind, register func(string, ...validator.FieldOption) error, opts []validator.FieldOption) error {
	created, err := s.ensure(name, kind)
	if err != nil {
		return err
	}
	if err := register(name, opts...); err != nil {
		if created {
			s.undefine(name)
		}
		return err
	}
	return nil
}

func (s *Schema) ensure(name string, kind Kind) (created bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i, ok := s.index[name]; ok {
		if got := s.attrs[i].Kind; got != kind {
			return false, fmt.Errorf("%w: %s.%s is %s, not %s", ErrKindMismatch, s.name, name, got, kind)
		}
		return false, nil
	}
	if err := s.define(Attribute{Name: name, Kind: kind}); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Schema) undefine(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[name]
	if !ok {
		return
	}
	s.attrs = append(s.attrs[:i], s.attrs[i+1:]...)
	delete(s.index, name)
	for j := i; j < len(s.attrs); j++ {
		s.index[s.attrs[j].Name] = j
	}
}

// New returns an empty record of this schema.
func (s *Schema) New() *Record {
	return &Record{
		schema: s,
		raw:    make(map[string]any),
		typed:  make(map[string]any),
	}
}
