// Package i18n translates validation messages.
//
// Translations are YAML documents keyed by language, with nested keys
// flattened into dot paths:
//
//	de:
//	  validation:
//	    before: "muss vor %{restriction} liegen"
//
// Placeholders of the form %{name} are filled from the error's translation
// values. English, German and French messages are built in.
//
// # Usage
//
//	tr := i18n.Default()
//	lang := tr.Negotiate(r.Header.Get("Accept-Language"))
//	errs = tr.Localize(lang, errs)
//
// Errors without a translation key, such as those with custom messages, keep
// their message. Missing translations fall back to the fallback language and
// then to the original message.
package i18n
