// Package o11y provides observability utilities.
package o11y

import "context"

//go:generate mockgen -destination=../mocks/notifier.go -package=mocks github.com/Nivl/gc-reporter/internal/o11y Notifier

// Notifier is an interface for sending messages to an observability
// backend.
type Notifier interface {
	SendMessage(ctx context.Context, msg string)
}
