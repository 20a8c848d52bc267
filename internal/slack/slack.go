// Package slack provides a client for sending messages to Slack.
package slack

import (
	"context"
	"log/slog"

	"github.com/ashwanthkumar/slack-go-webhook"
)

// Config contains the configuration needed for Slack
type Config struct {
	WebhookURLs []string `env:"WEBHOOKS"`
}

// Client is a Slack client for sending messages.
type Client struct {
	webhookURLs []string
	Username    string
	IconEmoji   string
}

// NewClient creates a new Slack client.
// Returns nil if no webhooks are configured.
func NewClient(cfg Config) *Client {
	if len(cfg.WebhookURLs) == 0 {
		return nil
	}
	return &Client{
		webhookURLs: cfg.WebhookURLs,
		Username:    "gc-reporter",
		IconEmoji:   ":satellite_antenna:",
	}
}

// SendMessage sends a message to the registered Slack channels.
// Noop if the client is nil.
func (c *Client) SendMessage(ctx context.Context, msg string) {
	if c == nil {
		return
	}

	for _, wh := range c.webhookURLs {
		payload := slack.Payload{
			Text:      msg,
			Username:  c.Username,
			IconEmoji: c.IconEmoji,
		}
		if errs := slack.Send(wh, "", payload); len(errs) > 0 {
			slog.ErrorContext(ctx, "failed sending slack message", "errors", errs, "webhookURL", wh)
		}
	}
}
