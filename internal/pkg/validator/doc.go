// Package validator evaluates field constraints for request and payload
// shapes.
//
// Constraints are plain data: a ConstraintSet lists fields in a fixed order,
// each with an ordered list of rules. Check walks the set and reports at most
// one violation per field, the first rule that fails. Struct validation with
// go-playground tags is still available through Validate for settings and
// other shapes that are not part of the email constraint tables.
package validator
