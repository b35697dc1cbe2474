package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Definition is the YAML form of a model.
type Definition struct {
	Name   string     `yaml:"name"`
	Fields []FieldDef `yaml:"fields"`
}

// FieldDef is one attribute and its rules.
type FieldDef struct {
	Name          string      `yaml:"name"`
	Type          string      `yaml:"type"`
	Validate      *bool       `yaml:"validate,omitempty"`
	AllowBlank    bool        `yaml:"allow_blank,omitempty"`
	Message       string      `yaml:"message,omitempty"`
	Before        []SourceDef `yaml:"before,omitempty"`
	BeforeMessage string      `yaml:"before_message,omitempty"`
	After         []SourceDef `yaml:"after,omitempty"`
	AfterMessage  string      `yaml:"after_message,omitempty"`
}

// SourceDef is a restriction bound. Exactly one field is set.
type SourceDef struct {
	Value string `yaml:"value,omitempty"`
	Field string `yaml:"field,omitempty"`
	Func  string `yaml:"func,omitempty"`
}

const (
	TypeString   = "string"
	TypeDate     = "date"
	TypeTime     = "time"
	TypeDateTime = "datetime"
)

// Load decodes and checks a definition. Unknown keys are rejected.
func Load(r io.Reader) (*Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDefinition)
		}
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	if err := def.Check(); err != nil {
		return nil, err
	}
	return &def, nil
}

// LoadFile reads a definition from path.
func LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema %s: %w", path, err)
	}
	return Load(bytes.NewReader(data))
}

// Check reports structural problems without building anything.
func (d *Definition) Check() error {
	if len(d.Fields) == 0 {
		return fmt.Errorf("%w: no fields", ErrInvalidDefinition)
	}

	seen := make(map[string]bool, len(d.Fields))
	for i, f := range d.Fields {
		if strings.TrimSpace(f.Name) == "" {
			return fmt.Errorf("%w: fields[%d]: missing name", ErrInvalidDefinition, i)
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: %s: declared twice", ErrInvalidDefinition, f.Name)
		}
		seen[f.Name] = true

		switch f.Type {
		case TypeString:
			if f.validated() || len(f.Before) > 0 || len(f.After) > 0 {
				return fmt.Errorf("%w: %s: string fields take no rules", ErrInvalidDefinition, f.Name)
			}
		case TypeDate, TypeTime, TypeDateTime:
		default:
			return fmt.Errorf("%w: %s: unknown type %q", ErrInvalidDefinition, f.Name, f.Type)
		}

		for j, s := range f.Before {
			if err := s.check(); err != nil {
				return fmt.Errorf("%w: %s before[%d]: %v", ErrInvalidDefinition, f.Name, j, err)
			}
		}
		for j, s := range f.After {
			if err := s.check(); err != nil {
				return fmt.Errorf("%w: %s after[%d]: %v", ErrInvalidDefinition, f.Name, j, err)
			}
		}
	}
	return nil
}

// validated reports whether rules are registered for the field. String
// fields are only validated when asked to, which Check rejects.
func (f FieldDef) validated() bool {
	if f.Validate != nil {
		return *f.Validate
	}
	return f.Type != TypeString
}

func (s SourceDef) check() error {
	set := 0
	for _, v := range []string{s.Value, s.Field, s.Func} {
		if v != "" {
			set++
		}
	}
	if set != 1 {
		return errors.New("exactly one of value, field or func is required")
	}
	if s.Func != "" {
		if _, ok := funcs[s.Func]; !ok {
			return fmt.Errorf("unknown func %q", s.Func)
		}
	}
	return nil
}
