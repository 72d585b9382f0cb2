package validator

// Validator validates structs and named field values.
type Validator interface {
	// Validate validates a struct using its `validate` tags.
	Validate(data any) error
	// Check evaluates values against the constraint set.
	Check(values map[string]string, set ConstraintSet) Result
}
