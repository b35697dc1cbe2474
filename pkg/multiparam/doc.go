// Package multiparam rebuilds single attribute values from forms that split
// them over several inputs, such as the three selects of a date picker.
//
// Inputs follow the name(N) convention, where N is the 1-based position of
// the component, optionally suffixed with a type hint that is ignored here:
//
//	date_of_birth(1i)=2006  date_of_birth(2i)=1  date_of_birth(3i)=11
//
// For a date attribute the group above assembles to "2006-01-11". Time groups
// use their last three components and date-time groups split after the third.
// Attributes that are not temporal are built by a composer the target supplies.
//
// # Usage
//
//	groups := multiparam.FromForm(r.PostForm)
//	if err := multiparam.AssignBatch(record, groups); err != nil {
//	    var batch *multiparam.AssignmentErrors
//	    if errors.As(err, &batch) {
//	        for _, e := range batch.Errors {
//	            log.Println(e.Field, e.Err)
//	        }
//	    }
//	}
//
// # Error Handling
//
// Assembly never fails on its own: malformed parts flow through as a string
// and are rejected later by the parser during validation. Failures that do
// happen while assigning (unknown attributes, composer errors or panics,
// errors from Target.Assign) are collected across the whole batch and
// returned once as *AssignmentErrors.
package multiparam
