package validator

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/datecheck/pkg/temporal"
)

const (
	DefaultBeforeMessage = "must be before %s"
	DefaultAfterMessage  = "must be after %s"
)

// DateBefore validates that value is strictly before the bound.
// The bound itself is rejected.
func DateBefore(field string, value temporal.Value, before temporal.Value) Rule {
	return beforeRule(field, value, before, before.String(), DefaultBeforeMessage)
}

// DateAfter validates that value is strictly after the bound.
// The bound itself is rejected.
func DateAfter(field string, value temporal.Value, after temporal.Value) Rule {
	return afterRule(field, value, after, after.String(), DefaultAfterMessage)
}

// DateBetween validates that value lies within [start, end], bounds included.
func DateBetween(field string, value temporal.Value, start temporal.Value, end temporal.Value) Rule {
	return Rule{
		Check: func() bool {
			return value.Compare(start) >= 0 && value.Compare(end) <= 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be between %s and %s", start, end),
			TranslationKey: "validation.between",
			TranslationValues: map[string]any{
				"field": field,
				"start": start.String(),
				"end":   end.String(),
			},
		},
	}
}

func beforeRule(field string, value, bound temporal.Value, display, template string) Rule {
	return Rule{
		Check: func() bool {
			return value.Before(bound)
		},
		Error: ValidationError{
			Field:          field,
			Kind:           KindBefore,
			Message:        formatMessage(template, display),
			TranslationKey: translationKey(template, DefaultBeforeMessage, "validation.before"),
			TranslationValues: map[string]any{
				"field":       field,
				"restriction": display,
			},
		},
	}
}

func afterRule(field string, value, bound temporal.Value, display, template string) Rule {
	return Rule{
		Check: func() bool {
			return value.After(bound)
		},
		Error: ValidationError{
			Field:          field,
			Kind:           KindAfter,
			Message:        formatMessage(template, display),
			TranslationKey: translationKey(template, DefaultAfterMessage, "validation.after"),
			TranslationValues: map[string]any{
				"field":       field,
				"restriction": display,
			},
		},
	}
}

// formatMessage substitutes display into a "%s" template; templates without a
// placeholder are used verbatim.
func formatMessage(template, display string) string {
	if !strings.Contains(template, "%s") {
		return template
	}
	return fmt.Sprintf(template, display)
}

// translationKey returns key only for the default template; custom templates
// are not translated.
func translationKey(template, defaultTemplate, key string) string {
	if template != defaultTemplate {
		return ""
	}
	return key
}
