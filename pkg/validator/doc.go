// Package validator checks temporal attributes of a record: that the value the
// user typed parses, and that it respects "before" and "after" bounds.
//
// Bounds are Restrictions. A restriction takes its value from one of three
// sources:
//
//   - Value(v)       – a literal ("1 Jan 1900", a temporal.Value, a time.Time)
//   - Field(name)    – another field of the same record, read as a typed value
//   - Func(label, f) – a computation run on every pass (Today, Now)
//
// Every source is resolved again on every validation pass; nothing is cached
// between records.
//
// # Usage
//
//	reg := validator.NewRegistry(validator.WithParser(parser))
//	err := reg.ValidatesDate("date_of_birth",
//	    validator.After(validator.Value("1 Jan 1900")),
//	    validator.Before(validator.Field("date_of_death"), validator.Today(nil)),
//	)
//	// err is non-nil only for configuration defects such as an unparseable literal.
//
//	if err := reg.Validate(record); err != nil {
//	    for _, e := range validator.ExtractValidationErrors(err) {
//	        fmt.Println(e.Field, e.Kind, e.Message)
//	    }
//	}
//
// # Rules
//
// For one attribute:
//
//  1. A present raw value that the host could not parse, or a blank value
//     without AllowBlank, is a KindFormat error and nothing else is checked.
//  2. A blank value with AllowBlank passes.
//  3. Before bounds are checked in order; the first bound the value is not
//     strictly before is reported as KindBefore.
//  4. After bounds likewise, reported as KindAfter.
//
// A bound that resolves to nothing (an unset sibling field) is skipped.
// Equality with a bound is a violation on both sides.
//
// # Error Handling
//
// ValidationErrors implements error, so Registry.Validate can be returned
// straight from a save path and unpacked with ExtractValidationErrors. Each
// failure is also pushed to the record through Record.AddError.
// Registration errors wrap ErrInvalidRestriction, ErrInvalidField or
// ErrDuplicateField.
package validator
