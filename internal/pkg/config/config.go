package config

import (
	"io"
	"time"
)

// Config defines the read-only view of the service configuration.
//
// Implementations must tolerate missing keys by returning the zero value.
type Config interface {
	io.Closer

	// GetBool retrieves the value associated with key as a bool.
	GetBool(key string) bool

	// GetString retrieves the value associated with key as a string.
	GetString(key string) string

	// GetInt retrieves the value associated with key as an int.
	GetInt(key string) int

	// GetFloat64 retrieves the value associated with key as a float64.
	GetFloat64(key string) float64

	// GetSecond retrieves the value associated with key as a number of seconds.
	GetSecond(key string) time.Duration

	// GetArray retrieves the value associated with key as a slice of strings.
	// The value may be a YAML list or a string with format <element1>,<element2>,...
	// Blank elements are dropped.
	GetArray(key string) []string

	// OnChange registers fn to run after the configuration source is reloaded.
	OnChange(fn func())
}
