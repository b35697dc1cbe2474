// Package model is a small record host for the validator: a Schema declares
// typed attributes and their temporal rules, and a Record holds one set of
// values, casting temporal input through the schema's parser on assignment.
//
// # Usage
//
//	people := model.NewSchema("person")
//	people.MustDefine(model.String("name"), model.Date("date_of_death"))
//	people.MustValidatesDate("date_of_birth", validator.AllowBlank(),
//	    validator.Before(validator.Field("date_of_death")))
//
//	p := people.New()
//	_ = p.Set("date_of_birth", "16 Mar 60")
//	if err := p.Save(); err != nil {
//	    fmt.Println(p.Errors())
//	}
//
// Records also accept split form input through multiparam.AssignForm.
//
// # Error Handling
//
// Set fails only for undeclared attributes; unparseable temporal input is kept
// as the raw value and reported by validation. Save returns ErrInvalidRecord
// joined with the validator.ValidationErrors of the failed pass.
package model
