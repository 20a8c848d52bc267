// Package reporter forwards webhook events to a log ingestion endpoint.
package reporter

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/Nivl/gc-reporter/internal/secret"
)

// LogType is the log type attached to every envelope.
const LogType = "SOME_LOG"

var (
	// ErrConfigMissing is returned when a required setting is absent
	// or unusable.
	ErrConfigMissing = errors.New("missing configuration")
	// ErrInvalidBody is returned when the body of an event is not a
	// valid JSON document.
	ErrInvalidBody = errors.New("invalid body")
	// ErrDeliveryFailed is returned when the envelope could not be sent
	// to the ingestion endpoint.
	ErrDeliveryFailed = errors.New("delivery failed")
)

// Config contains the configuration needed by the Reporter
type Config struct {
	CustomerKey secret.Secret `env:"CUSTOMER_KEY,required"`
	URL         string        `env:"GC_URL,required"`
}

// Validate makes sure the configuration can be used to deliver
// envelopes.
func (cfg Config) Validate() error {
	if cfg.CustomerKey.IsEmpty() {
		return fmt.Errorf("%w: CUSTOMER_KEY is empty", ErrConfigMissing)
	}
	if cfg.URL == "" {
		return fmt.Errorf("%w: GC_URL is empty", ErrConfigMissing)
	}
	u, err := url.ParseRequestURI(cfg.URL)
	if err != nil {
		return fmt.Errorf("%w: parse GC_URL: %w", ErrConfigMissing, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: GC_URL must be an absolute http(s) URL, got %q", ErrConfigMissing, cfg.URL)
	}
	return nil
}
