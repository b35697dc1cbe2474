// Package schema reads model definitions with temporal rules from YAML and
// builds them into model.Schema values.
//
//	name: person
//	fields:
//	  - name: date_of_birth
//	    type: date
//	    allow_blank: true
//	    before:
//	      - field: date_of_death
//	      - func: today
//	    after:
//	      - value: 1 Jan 1900
//	  - name: date_of_death
//	    type: date
//	    validate: false
//
// Field types are string, date, time and datetime. Temporal fields are
// validated unless validate is false. A bound names exactly one of value,
// field or func; the functions are today and now.
//
// # Error Handling
//
// Malformed YAML is reported as ErrFailedToParseYAML, structural problems as
// ErrInvalidDefinition. Build also returns the registration errors of the
// validator, such as validator.ErrInvalidRestriction for a literal bound
// that does not parse.
package schema
