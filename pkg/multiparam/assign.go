package multiparam

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/datecheck/pkg/temporal"
)

// Field describes how a target attribute accepts multiparameter input.
// Temporal attributes set Mode; other attributes set Compose.
type Field struct {
	Mode    temporal.Mode
	Compose func(values []string) (any, error)
}

// Target is the record receiving the assembled values.
type Target interface {
	// MultiparameterField returns the description of attribute name, or an
	// error wrapping ErrUnknownAttribute.
	MultiparameterField(name string) (Field, error)
	// Assign stores value; nil clears the attribute.
	Assign(name string, value any) error
}

// AssignmentError is the failure of one group within a batch.
type AssignmentError struct {
	Field  string
	Values []string
	Err    error
}

func (e *AssignmentError) Error() string {
	return fmt.Sprintf("error on assignment %q to %s: %v", e.Values, e.Field, e.Err)
}

func (e *AssignmentError) Unwrap() error { return e.Err }

// AssignmentErrors is returned when one or more groups of a batch fail.
type AssignmentErrors struct {
	Errors []*AssignmentError
}

func (e *AssignmentErrors) Error() string {
	return fmt.Sprintf("%d error(s) on assignment of multiparameter attributes", len(e.Errors))
}

func (e *AssignmentErrors) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, err := range e.Errors {
		errs[i] = err
	}
	return errs
}

// Fields returns the names of the failed attributes in batch order.
func (e *AssignmentErrors) Fields() []string {
	names := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		names[i] = err.Field
	}
	return names
}

// Detail lists every failure, one per line.
func (e *AssignmentErrors) Detail() string {
	lines := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		lines[i] = err.Error()
	}
	return strings.Join(lines, "\n")
}

// AssignBatch assembles every group and assigns it to t. All groups are
// attempted; failures are returned together as *AssignmentErrors.
func AssignBatch(t Target, groups []Group) error {
	batch := &AssignmentErrors{}
	for _, g := range groups {
		if err := assignGroup(t, g); err != nil {
			batch.Errors = append(batch.Errors, &AssignmentError{
				Field:  g.Name,
				Values: g.Components(),
				Err:    err,
			})
		}
	}
	if len(batch.Errors) == 0 {
		return nil
	}
	return batch
}

func assignGroup(t Target, g Group) error {
	field, err := t.MultiparameterField(g.Name)
	if err != nil {
		return err
	}

	values := g.Components()
	if len(values) == 0 {
		return t.Assign(g.Name, nil)
	}

	if field.Mode.Valid() {
		g.Mode = field.Mode
		s, _ := Assemble(g)
		return t.Assign(g.Name, s)
	}

	if field.Compose == nil {
		return ErrNotComposite
	}
	v, err := compose(field.Compose, values)
	if err != nil {
		return err
	}
	return t.Assign(g.Name, v)
}

func compose(fn func([]string) (any, error), values []string) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrComposePanic, r)
		}
	}()
	return fn(values)
}
