package validator

import (
	"errors"
	"github.com/dmitrymomot/datecheck/pkg/temporal"
)

// FieldConfig describes how one temporal attribute is validated.
type FieldConfig struct {
	// Mode is the kind of value the attribute holds. Restrictions without a
	// mode of their own are parsed in this mode.
	Mode temporal.Mode

	// Message is used when the raw value is unparseable, or blank while blanks are not allowed.
	Message string

	// Before bounds are checked in order; the first violated one is reported.
	Before []Restriction
	// BeforeMessage is a template with one %s for the restriction's display form.
	BeforeMessage string

	// After bounds are checked in order; the first violated one is reported.
	After []Restriction
	// AfterMessage is a template with one %s for the restriction's display form.
	AfterMessage string

	// AllowBlank accepts an absent or blank raw value.
	AllowBlank bool
}

// DefaultMessage returns the format error message for a mode.
func DefaultMessage(mode temporal.Mode) string {
	switch mode {
	case temporal.ModeTime:
		return "is an invalid time"
	case temporal.ModeDateTime:
		return "is an invalid date time"
	default:
		return "is an invalid date"
	}
}

func formatTranslationKey(mode temporal.Mode) string {
	switch mode {
	case temporal.ModeTime:
		return "validation.invalid_time"
	case temporal.ModeDateTime:
		return "validation.invalid_date_time"
	default:
		return "validation.invalid_date"
	}
}

// Validator evaluates field configurations against records.
// It holds no per-record state and is safe for concurrent use.
type Validator struct {
	parser *temporal.Parser
}

// New returns a Validator that parses restriction bounds with p.
// A nil parser falls back to temporal.New().
func New(p *temporal.Parser) *Validator {
	if p == nil {
		p = temporal.New()
	}
	return &Validator{parser: p}
}

// Parser returns the parser used for restriction bounds.
func (v *Validator) Parser() *temporal.Parser { return v.parser }

// Resolve turns r into a concrete bound for rec. It returns false when the
// source yields nothing, e.g. a referenced field that is still unset.
func (v *Validator) Resolve(r Restriction, rec Record) (temporal.Value, bool) {
	return r.resolve(v.parser, rec)
}

// blank reports whether raw counts as nothing entered. The parser decides, so
// blankness and ErrEmpty always agree.
func (v *Validator) blank(raw any, mode temporal.Mode) bool {
	if !mode.Valid() {
		mode = temporal.ModeDate
	}
	_, err := v.parser.Parse(raw, mode)
	return errors.Is(err, temporal.ErrEmpty)
}

// Validate checks one attribute of rec against cfg.
//
// A format error suppresses the ordering checks. Otherwise at most one before
// and one after violation is reported. A bound equal to the candidate counts
// as a violation on both sides.
func (v *Validator) Validate(rec Record, attribute string, cfg FieldConfig) ValidationErrors {
	raw := rec.RawValue(attribute)
	typed, parsed := rec.TypedValue(attribute)
	blank := v.blank(raw, cfg.Mode)

	if (!blank && !parsed) || (blank && !cfg.AllowBlank) {
		return ValidationErrors{formatError(attribute, cfg)}
	}
	if blank || !parsed {
		return nil
	}

	candidate := typed
	if cfg.Mode.Valid() {
		candidate = typed.In(cfg.Mode)
	}

	var errs ValidationErrors
	for _, r := range cfg.Before {
		r = r.withDefaultMode(cfg.Mode)
		bound, ok := v.Resolve(r, rec)
		if !ok {
			continue
		}
		rule := beforeRule(attribute, candidate, bound, r.Display(bound), messageOr(cfg.BeforeMessage, DefaultBeforeMessage))
		if !rule.Check() {
			errs.Add(rule.Error)
			break
		}
	}

	for _, r := range cfg.After {
		r = r.withDefaultMode(cfg.Mode)
		bound, ok := v.Resolve(r, rec)
		if !ok {
			continue
		}
		rule := afterRule(attribute, candidate, bound, r.Display(bound), messageOr(cfg.AfterMessage, DefaultAfterMessage))
		if !rule.Check() {
			errs.Add(rule.Error)
			break
		}
	}

	return errs
}

// formatError builds the format failure. Custom messages carry no translation key.
func formatError(attribute string, cfg FieldConfig) ValidationError {
	e := ValidationError{
		Field:   attribute,
		Kind:    KindFormat,
		Message: messageOr(cfg.Message, DefaultMessage(cfg.Mode)),
		TranslationValues: map[string]any{
			"field": attribute,
		},
	}
	if e.Message == DefaultMessage(cfg.Mode) {
		e.TranslationKey = formatTranslationKey(cfg.Mode)
	}
	return e
}

func (r Restriction) withDefaultMode(mode temporal.Mode) Restriction {
	if !r.mode.Valid() && mode.Valid() {
		r.mode = mode
	}
	return r
}

func messageOr(msg, fallback string) string {
	if msg == "" {
		return fallback
	}
	return msg
}
