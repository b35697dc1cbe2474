package model

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/dmitrymomot/datecheck/pkg/multiparam"
	"github.com/dmitrymomot/datecheck/pkg/temporal"
	"github.com/dmitrymomot/datecheck/pkg/validator"
)

// Record holds the values of one model instance. It is not safe for
// concurrent use.
type Record struct {
	schema *Schema
	raw    map[string]any
	typed  map[string]any
	errors validator.ValidationErrors
}

func (r *Record) Schema() *Schema { return r.schema }

// Set assigns v to name. Temporal attributes are parsed immediately; input
// that does not parse leaves the attribute without a typed value and is
// reported by the next validation pass. A nil v clears the attribute.
func (r *Record) Set(name string, v any) error {
	attr, ok := r.schema.Attribute(name)
	if !ok {
		return fmt.Errorf("%w: %s.%s", ErrUnknownAttribute, r.schema.name, name)
	}

	r.raw[name] = v
	delete(r.typed, name)
	if v == nil {
		return nil
	}

	switch attr.Kind {
	case KindDate, KindTime, KindDateTime:
		if parsed, err := r.schema.parser.Parse(v, attr.Kind.Mode()); err == nil {
			r.typed[name] = parsed
		}
	case KindString:
		if s, ok := v.(string); ok {
			r.typed[name] = s
		} else {
			r.typed[name] = fmt.Sprint(v)
		}
	default:
		r.typed[name] = v
	}
	return nil
}

// SetAll assigns values in name order and stops at the first unknown attribute.
func (r *Record) SetAll(values map[string]any) error {
	for _, name := range slices.Sorted(maps.Keys(values)) {
		if err := r.Set(name, values[name]); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the typed value of name, or nil.
func (r *Record) Get(name string) any { return r.typed[name] }

// Temporal returns the parsed value of a temporal attribute.
func (r *Record) Temporal(name string) (temporal.Value, bool) {
	v, ok := r.typed[name].(temporal.Value)
	return v, ok
}

// Values renders every typed value: temporal values in canonical form,
// everything else with fmt. Unset attributes are omitted.
func (r *Record) Values() map[string]string {
	out := make(map[string]string, len(r.typed))
	for name, v := range r.typed {
		out[name] = fmt.Sprint(v)
	}
	return out
}

// RawValue implements validator.Record.
func (r *Record) RawValue(attribute string) any { return r.raw[attribute] }

// TypedValue implements validator.Record.
func (r *Record) TypedValue(attribute string) (temporal.Value, bool) {
	return r.Temporal(attribute)
}

// FieldValue implements validator.Record. Only typed values are visible.
func (r *Record) FieldValue(name string) any {
	v, ok := r.typed[name]
	if !ok {
		return nil
	}
	return v
}

// AddError implements validator.Record.
func (r *Record) AddError(attribute string, kind validator.ErrorKind, message string) {
	r.errors.Add(validator.ValidationError{Field: attribute, Kind: kind, Message: message})
}

// AddValidationError implements validator.DetailedRecord so that translation
// keys survive on the record.
func (r *Record) AddValidationError(err validator.ValidationError) {
	r.errors.Add(err)
}

// MultiparameterField implements multiparam.Target.
func (r *Record) MultiparameterField(name string) (multiparam.Field, error) {
	attr, ok := r.schema.Attribute(name)
	if !ok {
		return multiparam.Field{}, fmt.Errorf("%w: %s.%s", multiparam.ErrUnknownAttribute, r.schema.name, name)
	}
	return multiparam.Field{Mode: attr.Kind.Mode(), Compose: attr.Compose}, nil
}

// Assign implements multiparam.Target.
func (r *Record) Assign(name string, value any) error { return r.Set(name, value) }

// Valid discards earlier errors and runs every registered rule again.
func (r *Record) Valid() bool {
	r.errors = nil
	_ = r.schema.registry.Validate(r)
	return r.errors.IsEmpty()
}

// Errors returns the errors of the last validation pass.
func (r *Record) Errors() validator.ValidationErrors { return r.errors }

// Save validates the record. An invalid record is reported as
// ErrInvalidRecord joined with its validation errors.
func (r *Record) Save() error {
	if r.Valid() {
		return nil
	}
	return errors.Join(ErrInvalidRecord, r.errors)
}

// Update assigns values and saves.
func (r *Record) Update(values map[string]any) error {
	if err := r.SetAll(values); err != nil {
		return err
	}
	return r.Save()
}
