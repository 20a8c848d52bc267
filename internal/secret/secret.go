// Package secret provides a type to carry sensitive values around
// without leaking them in logs.
package secret

import (
	"encoding/json"
	"log/slog"
)

const redacted = "[REDACTED]"

// Secret holds a sensitive string. The value can only be accessed
// through Get; every other representation is redacted.
type Secret struct {
	value string
}

// New returns a Secret holding v.
func New(v string) Secret {
	return Secret{value: v}
}

// Get returns the value in plain text.
func (s Secret) Get() string {
	return s.value
}

// IsEmpty returns true if the secret doesn't hold any value.
func (s Secret) IsEmpty() bool {
	return s.value == ""
}

// String implements fmt.Stringer.
func (s Secret) String() string {
	return redacted
}

// GoString implements fmt.GoStringer.
func (s Secret) GoString() string {
	return redacted
}

// LogValue implements slog.LogValuer.
func (s Secret) LogValue() slog.Value {
	return slog.StringValue(redacted)
}

// MarshalJSON implements json.Marshaler.
func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(redacted)
}

// UnmarshalText implements encoding.TextUnmarshaler.
// This is what envconfig and encoding/json use to populate the value.
func (s *Secret) UnmarshalText(text []byte) error {
	s.value = string(text)
	return nil
}
