package validator_test

import (
	"github.com/dmitrymomot/datecheck/pkg/temporal"
	"github.com/dmitrymomot/datecheck/pkg/validator"
)

type recordedError struct {
	attribute string
	kind      validator.ErrorKind
	message   string
}

// fakeRecord mimics a host model: it keeps the raw assignment and the value
// the parser managed to extract from it.
type fakeRecord struct {
	raw    map[string]any
	typed  map[string]temporal.Value
	errors []recordedError
}

func newRecord() *fakeRecord {
	return &fakeRecord{
		raw:   make(map[string]any),
		typed: make(map[string]temporal.Value),
	}
}

func (r *fakeRecord) set(attribute string, mode temporal.Mode, value any) *fakeRecord {
	r.raw[attribute] = value
	if v, err := temporal.Parse(value, mode); err == nil {
		r.typed[attribute] = v
	} else {
		delete(r.typed, attribute)
	}
	return r
}

func (r *fakeRecord) RawValue(attribute string) any { return r.raw[attribute] }

func (r *fakeRecord) TypedValue(attribute string) (temporal.Value, bool) {
	v, ok := r.typed[attribute]
	return v, ok
}

func (r *fakeRecord) FieldValue(name string) any {
	if v, ok := r.typed[name]; ok {
		return v
	}
	return nil
}

func (r *fakeRecord) AddError(attribute string, kind validator.ErrorKind, message string) {
	r.errors = append(r.errors, recordedError{attribute: attribute, kind: kind, message: message})
}

func mustDate(year, month, day int) temporal.Value {
	v, err := temporal.Date(year, month, day)
	if err != nil {
		panic(err)
	}
	return v
}
