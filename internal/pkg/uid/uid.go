// Package uid generates identifiers: string ids for request correlation and
// numeric ids for dispatched messages.
package uid

// StringID generates string identifiers.
type StringID interface {
	Generate() string
}

// NumberID generates numeric identifiers.
type NumberID interface {
	Generate() int64
}
