package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/samber/lo"
)

// ErrTranslatorNotFound indicates the requested translator is unavailable.
var ErrTranslatorNotFound = errors.New("translator not found")

const (
	keyRequired  = "constraint.required"
	keyEmail     = "constraint.email"
	keyMaxLength = "constraint.max"
)

// V10Validator implements Validator using go-playground/validator v10.
//
// It is safe for concurrent use once constructed.
type V10Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// V10ValidationError is a field-to-message map returned when struct validation fails.
//
// Keys are field names in snake_case to match typical config and JSON conventions.
type V10ValidationError map[string]string

// Error implements the error interface.
func (vs V10ValidationError) Error() string {
	if len(vs) == 0 {
		return "validation error"
	}

	b, err := json.Marshal(vs)
	if err != nil {
		return fmt.Sprintf("validation error (failed to marshal: %v)", err)
	}
	return string(b)
}

// Values returns the field error map.
func (vs V10ValidationError) Values() map[string]string {
	return vs
}

// NewV10Validator constructs a V10Validator with English translations.
func NewV10Validator() (*V10Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	enTrans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}

	if err := enTranslations.RegisterDefaultTranslations(validate, enTrans); err != nil {
		return nil, err
	}

	if err := registerConstraintTranslations(enTrans); err != nil {
		return nil, err
	}

	return &V10Validator{
		validate:   validate,
		translator: enTrans,
	}, nil
}

// Validate validates a struct and returns a V10ValidationError on failure.
func (v *V10Validator) Validate(data any) error {
	if err := v.validate.Struct(data); err != nil {
		var validateErrs validator.ValidationErrors
		if !errors.As(err, &validateErrs) {
			return err
		}

		errV10 := make(V10ValidationError)
		for _, fe := range validateErrs {
			errV10[lo.SnakeCase(fe.Field())] = fe.Translate(v.translator)
		}

		return errV10
	}

	return nil
}

// Check evaluates values against set and reports the first failing rule of
// each field. Rules other than RuleRequired are skipped for an empty value.
func (v *V10Validator) Check(values map[string]string, set ConstraintSet) Result {
	var violations []Violation

	for _, fc := range set {
		value := values[fc.Field]
		for _, rule := range fc.Rules {
			if v.satisfies(rule, value) {
				continue
			}

			violations = append(violations, Violation{Field: fc.Field, Message: v.message(fc.Field, rule)})
			break
		}
	}

	return Result{violations: violations}
}

func (v *V10Validator) satisfies(rule Rule, value string) bool {
	if rule.kind == RuleRequired {
		return strings.TrimSpace(value) != ""
	}

	if value == "" {
		return true
	}

	tag := rule.tag()
	if tag == "" {
		slog.Warn("validator: rule without tag treated as failed", "rule", rule.kind.String())
		return false
	}

	return v.validate.Var(value, tag) == nil
}

func (v *V10Validator) message(field string, rule Rule) string {
	if rule.message != "" {
		return rule.message
	}

	var (
		msg string
		err error
	)
	switch rule.kind {
	case RuleRequired:
		msg, err = v.translator.T(keyRequired, field)
	case RuleEmail:
		msg, err = v.translator.T(keyEmail, field)
	case RuleMaxLength:
		msg, err = v.translator.T(keyMaxLength, field, strconv.Itoa(rule.limit))
	default:
		return field + " is invalid"
	}
	if err != nil {
		slog.Warn("warning: error translating", "field", field, "rule", rule.kind.String(), "error", err)
		return field + " is invalid"
	}

	return msg
}

func registerConstraintTranslations(trans ut.Translator) error {
	translations := []struct {
		key  string
		text string
	}{
		{key: keyRequired, text: "{0} is a required field"},
		{key: keyEmail, text: "{0} must be a valid email address"},
		{key: keyMaxLength, text: "{0} must be a maximum of {1} characters in length"},
	}

	for _, t := range translations {
		if err := trans.Add(t.key, t.text, false); err != nil {
			return err
		}
	}

	return nil
}
