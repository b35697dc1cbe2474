package multiparam_test

import (
	"fmt"

	"github.com/dmitrymomot/datecheck/pkg/multiparam"
)

type fakeTarget struct {
	fields   map[string]multiparam.Field
	assigned map[string]any
	failOn   map[string]error
}

func newTarget(fields map[string]multiparam.Field) *fakeTarget {
	return &fakeTarget{
		fields:   fields,
		assigned: make(map[string]any),
		failOn:   make(map[string]error),
	}
}

func (f *fakeTarget) MultiparameterField(name string) (multiparam.Field, error) {
	field, ok := f.fields[name]
	if !ok {
		return multiparam.Field{}, fmt.Errorf("%w: %s", multiparam.ErrUnknownAttribute, name)
	}
	return field, nil
}

func (f *fakeTarget) Assign(name string, value any) error {
	if err := f.failOn[name]; err != nil {
		return err
	}
	f.assigned[name] = value
	return nil
}
