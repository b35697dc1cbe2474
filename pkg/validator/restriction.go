package validator

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/datecheck/pkg/temporal"
)

// Source is where a restriction takes its bound from.
// It is one of Literal, FieldRef or Computed.
type Source interface {
	source()
}

// Literal is a fixed bound: a string in any accepted format, a temporal.Value or a time.Time.
type Literal struct {
	Value any
}

// FieldRef bounds a value by another field of the same record.
type FieldRef struct {
	Name string
}

// Computed bounds a value by the result of Fn, evaluated on every validation pass.
// Fn must not modify the record.
type Computed struct {
	Label string
	Fn    func(rec Record) any
}

func (Literal) source()  {}
func (FieldRef) source() {}
func (Computed) source() {}

// Value returns a literal source.
func Value(v any) Source { return Literal{Value: v} }

// Field returns a source reading the typed value of another field.
func Field(name string) Source { return FieldRef{Name: name} }

// Func returns a computed source. The label is shown in messages when the
// computation yields nothing.
func Func(label string, fn func(rec Record) any) Source {
	return Computed{Label: label, Fn: fn}
}

// Today is a computed source returning the current date. A nil clock means time.Now.
func Today(clock func() time.Time) Source {
	if clock == nil {
		clock = time.Now
	}
	return Func("today", func(Record) any { return clock() })
}

// Now is a computed source returning the current instant. A nil clock means time.Now.
func Now(clock func() time.Time) Source {
	if clock == nil {
		clock = time.Now
	}
	return Func("now", func(Record) any { return clock() })
}

// Restriction is an immutable bound together with the mode its source is parsed in.
type Restriction struct {
	source Source
	mode   temporal.Mode
}

func NewRestriction(src Source, mode temporal.Mode) Restriction {
	return Restriction{source: src, mode: mode}
}

func (r Restriction) Source() Source      { return r.source }
func (r Restriction) Mode() temporal.Mode { return r.mode }

// Display renders the restriction for messages: the humanized field name for a
// field reference, otherwise the bound resolved in the current pass.
func (r Restriction) Display(resolved temporal.Value) string {
	switch src := r.source.(type) {
	case FieldRef:
		return humanize(src.Name)
	case Computed:
		if resolved.IsZero() {
			return src.Label
		}
	}
	return resolved.String()
}

// resolve turns the restriction into a concrete bound for rec.
// ok is false when the source yields nothing usable; the check is then skipped.
func (r Restriction) resolve(p *temporal.Parser, rec Record) (temporal.Value, bool) {
	var raw any
	switch src := r.source.(type) {
	case Literal:
		raw = src.Value
	case FieldRef:
		raw = rec.FieldValue(src.Name)
	case Computed:
		if src.Fn == nil {
			return temporal.Value{}, false
		}
		raw = src.Fn(rec)
	default:
		return temporal.Value{}, false
	}

	v, err := p.Parse(raw, r.mode)
	if err != nil {
		return temporal.Value{}, false
	}
	return v, true
}

// check reports configuration defects that can be detected without a record.
func (r Restriction) check(p *temporal.Parser) error {
	switch src := r.source.(type) {
	case Literal:
		if _, err := p.Parse(src.Value, r.mode); err != nil {
			return err
		}
	case FieldRef:
		if strings.TrimSpace(src.Name) == "" {
			return errMissing("field name")
		}
	case Computed:
		if src.Fn == nil {
			return errMissing("function")
		}
	case nil:
		return errMissing("source")
	}
	return nil
}

// humanize turns an attribute name into a label: "date_of_death" -> "Date of death".
func humanize(name string) string {
	name = strings.TrimSuffix(strings.ToLower(name), "_id")
	words := strings.Fields(strings.ReplaceAll(name, "_", " "))
	if len(words) == 0 {
		return ""
	}
	words[0] = cases.Title(language.English).String(words[0])
	return strings.Join(words, " ")
}

func errMissing(what string) error {
	return fmt.Errorf("%w: %s", ErrMissingSource, what)
}
