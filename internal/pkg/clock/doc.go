// Package clock provides a tiny time abstraction so response timestamps and
// dispatch envelopes can be asserted in tests.
package clock
