package goerror

import (
	"errors"
	"fmt"
	"net/http"
)

// Type classifies errors into high-level buckets used by the application.
type Type int

const (
	// TypeServer represents unexpected server-side failures.
	TypeServer Type = iota
	// TypeBusiness represents business rule violations, such as an unsupported provider.
	TypeBusiness
	// TypeValidation represents input or payload validation failures.
	TypeValidation
)

// String returns the string representation of the error type.
func (t Type) String() string {
	switch t {
	case TypeValidation:
		return "ERROR_TYPE_VALIDATION"
	case TypeBusiness:
		return "ERROR_TYPE_BUSINESS"
	case TypeServer:
		return "ERROR_TYPE_SERVER"
	default:
		return "ERROR_TYPE_UNKNOWN"
	}
}

// Code is a stable identifier used for mapping errors to HTTP status codes.
type Code int

const (
	// CodeInternal represents an internal or unspecified error.
	CodeInternal Code = iota
	// CodeInvalidFormat indicates a request body that could not be decoded.
	CodeInvalidFormat
	// CodeInvalidInput indicates one or more constraint violations.
	CodeInvalidInput
	// CodeUnknownProvider indicates an integration identifier that matches no provider.
	CodeUnknownProvider
)

// String returns the string representation of the error code.
func (c Code) String() string {
	switch c {
	case CodeInvalidFormat:
		return "ERROR_CODE_INVALID_FORMAT"
	case CodeInvalidInput:
		return "ERROR_CODE_INVALID_INPUT"
	case CodeUnknownProvider:
		return "ERROR_CODE_UNKNOWN_PROVIDER"
	default:
		return "ERROR_CODE_INTERNAL"
	}
}

// Error is a structured error used across the application.
//
// It can wrap an underlying error while also carrying a user-facing message,
// a high-level type, a stable code and, for validation failures, the ordered
// list of violation messages plus a field to message map.
type Error struct {
	err     error
	msg     string
	errType Type
	code    Code
	details []string
	fields  map[string]string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.err != nil {
		return e.err.Error()
	}

	if e.msg != "" {
		return e.msg
	}

	switch e.errType {
	case TypeValidation:
		return "Validation violation"
	case TypeBusiness:
		return "Logical business not meet with requirement"
	case TypeServer:
		return "Internal error"
	default:
		return "Unknown error"
	}
}

// String returns a verbose representation of the error for debugging/logging.
func (e *Error) String() string {
	return fmt.Sprintf(
		"Error Type: %s, Code: %s, Message: %s, Details: %v, Underlying Error: %v",
		e.errType.String(),
		e.code.String(),
		e.msg,
		e.details,
		e.err,
	)
}

// Msg returns the user-facing error message, if set.
func (e *Error) Msg() string {
	return e.msg
}

// Type returns the high-level error type.
func (e *Error) Type() Type {
	return e.errType
}

// Code returns the stable error code.
func (e *Error) Code() Code {
	return e.code
}

// Details returns the violation messages in the order they were reported.
func (e *Error) Details() []string {
	return e.details
}

// Fields returns the violation message keyed by field name, if any.
func (e *Error) Fields() map[string]string {
	return e.fields
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// StatusCode maps the error code to an HTTP status code.
func (e *Error) StatusCode() int {
	switch e.code {
	case CodeInvalidFormat, CodeInvalidInput, CodeUnknownProvider:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func new(err error, msg string, et Type, code Code) *Error {
	return &Error{err: err, msg: msg, errType: et, code: code}
}

// NewServer creates a server-type error with the provided error.
//
// The underlying error is kept for logs only; callers see a generic message.
func NewServer(err error) error {
	return new(err, "Internal server error", TypeServer, CodeInternal)
}

// NewBusiness creates a business-type error with the specified message and code.
// err may be nil; when set it stays reachable through errors.Is and errors.As.
func NewBusiness(err error, msg string, code Code) error {
	gerr := new(err, msg, TypeBusiness, code)
	gerr.details = []string{msg}
	return gerr
}

// NewInvalidInput creates a validation error from ordered field/message pairs.
//
// A trailing key without a message is ignored.
func NewInvalidInput(msg string, kv ...string) error {
	if msg == "" {
		msg = "Validation error"
	}

	gerr := new(nil, msg, TypeValidation, CodeInvalidInput)
	gerr.details = make([]string, 0, len(kv)/2)
	gerr.fields = make(map[string]string, len(kv)/2)

	for i := 0; i+1 < len(kv); i += 2 {
		gerr.details = append(gerr.details, kv[i+1])
		if _, exists := gerr.fields[kv[i]]; !exists {
			gerr.fields[kv[i]] = kv[i+1]
		}
	}

	return gerr
}

// NewInvalidFormat creates a validation error for an invalid request body format.
func NewInvalidFormat(msgs ...string) error {
	if len(msgs) == 0 {
		return new(nil, "Invalid request body", TypeValidation, CodeInvalidFormat)
	}
	gerr := new(nil, msgs[0], TypeValidation, CodeInvalidFormat)
	gerr.details = []string{msgs[0]}
	return gerr
}

// Is reports whether err is a goerror.Error of the given type.
func Is(err error, t Type) bool {
	var gerr *Error
	return errors.As(err, &gerr) && gerr.errType == t
}
