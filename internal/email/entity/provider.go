package entity

import (
	"errors"
	"strings"
)

// ErrUnknownProvider is wrapped by failures caused by an unsupported integration.
var ErrUnknownProvider = errors.New("unknown integration provider")

type Provider int8

const (
	ProviderUnknown Provider = 0
	ProviderAWS     Provider = 1
	ProviderOCI     Provider = 2
)

// Providers lists the supported providers in a stable order.
func Providers() []Provider {
	return []Provider{ProviderAWS, ProviderOCI}
}

// ProviderFromString matches raw case-insensitively. Surrounding whitespace is
// not trimmed, so " AWS" is unknown.
func ProviderFromString(raw string) Provider {
	switch strings.ToUpper(raw) {
	case "AWS":
		return ProviderAWS
	case "OCI":
		return ProviderOCI
	default:
		return ProviderUnknown
	}
}

func (p Provider) String() string {
	switch p {
	case ProviderAWS:
		return "AWS"
	case ProviderOCI:
		return "OCI"
	default:
		return "UNKNOWN"
	}
}

// ProviderField describes one field of a provider payload.
type ProviderField struct {
	Name      string
	Source    string
	Required  bool
	Email     bool
	MaxLength int
}

// ProviderSchema describes the payload shape a provider accepts.
type ProviderSchema struct {
	Provider Provider
	Fields   []ProviderField
}
