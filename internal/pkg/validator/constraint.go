package validator

import (
	"strconv"

	"github.com/samber/lo"
)

// RuleKind identifies the check a Rule performs.
type RuleKind int

const (
	// RuleRequired fails on a missing or blank value.
	RuleRequired RuleKind = iota + 1
	// RuleEmail fails on a value that is not a valid email address.
	RuleEmail
	// RuleMaxLength fails on a value longer than the limit, counted in characters.
	RuleMaxLength
)

// String returns the rule name used in logs and translations.
func (k RuleKind) String() string {
	switch k {
	case RuleRequired:
		return "required"
	case RuleEmail:
		return "email"
	case RuleMaxLength:
		return "max"
	default:
		return "unknown"
	}
}

// Rule is a single constraint applied to one field.
type Rule struct {
	kind    RuleKind
	limit   int
	message string
}

// Required builds a rule rejecting missing or blank values.
func Required() Rule {
	return Rule{kind: RuleRequired}
}

// Email builds a rule rejecting malformed email addresses.
func Email() Rule {
	return Rule{kind: RuleEmail}
}

// MaxLength builds a rule rejecting values longer than n characters.
func MaxLength(n int) Rule {
	return Rule{kind: RuleMaxLength, limit: n}
}

// WithMessage returns a copy of the rule reporting msg instead of the
// translated default.
func (r Rule) WithMessage(msg string) Rule {
	r.message = msg
	return r
}

// Kind returns the rule kind.
func (r Rule) Kind() RuleKind {
	return r.kind
}

// Limit returns the length limit of a RuleMaxLength rule, zero otherwise.
func (r Rule) Limit() int {
	return r.limit
}

// tag is the go-playground tag for rules checked through Validate.Var.
func (r Rule) tag() string {
	switch r.kind {
	case RuleEmail:
		return "email"
	case RuleMaxLength:
		return "max=" + strconv.Itoa(r.limit)
	default:
		return ""
	}
}

// FieldConstraint binds an ordered rule list to a field name.
type FieldConstraint struct {
	Field string
	Rules []Rule
}

// Field is a shorthand for building a FieldConstraint.
func Field(name string, rules ...Rule) FieldConstraint {
	return FieldConstraint{Field: name, Rules: rules}
}

// ConstraintSet lists the constrained fields of a shape. Field order is the
// order violations are reported in.
type ConstraintSet []FieldConstraint

// Fields returns the constrained field names in declaration order.
func (cs ConstraintSet) Fields() []string {
	return lo.Map(cs, func(fc FieldConstraint, _ int) string { return fc.Field })
}

// Violation is one failed rule on one field.
type Violation struct {
	Field   string
	Message string
}

// Result is the outcome of Check. The zero value is valid.
type Result struct {
	violations []Violation
}

// Valid reports whether no rule failed.
func (r Result) Valid() bool {
	return len(r.violations) == 0
}

// Violations returns the violations in constraint set order.
func (r Result) Violations() []Violation {
	return r.violations
}

// Messages returns the violation messages in constraint set order.
func (r Result) Messages() []string {
	return lo.Map(r.violations, func(v Violation, _ int) string { return v.Message })
}

// Pairs flattens the violations into field/message pairs.
func (r Result) Pairs() []string {
	return lo.FlatMap(r.violations, func(v Violation, _ int) []string { return []string{v.Field, v.Message} })
}
