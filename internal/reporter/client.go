package reporter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/Nivl/gc-reporter/internal/errutil"
	"github.com/Nivl/gc-reporter/internal/o11y"
	"github.com/Nivl/gc-reporter/internal/secret"
	"github.com/aws/aws-lambda-go/events"
)

//go:generate mockgen -destination=../mocks/doer.go -package=mocks github.com/Nivl/gc-reporter/internal/reporter Doer
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Reporter wraps incoming events into an Envelope and posts them to
// the ingestion endpoint.
// A Reporter is immutable and safe for concurrent use.
type Reporter struct {
	customerKey secret.Secret
	url         string
	http        Doer
	notifier    o11y.Notifier
}

// New returns a Reporter using the default HTTP client.
// No timeout is set on the client; the deadline of the invocation
// is the only bound.
func New(cfg Config, notifier o11y.Notifier) (*Reporter, error) {
	return NewWithDoer(cfg, notifier, &http.Client{})
}

// NewWithDoer returns a Reporter that sends its requests using doer.
// notifier is optional and is told about failed deliveries.
func NewWithDoer(cfg Config, notifier o11y.Notifier, doer Doer) (*Reporter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Reporter{
		customerKey: cfg.CustomerKey,
		url:         cfg.URL,
		http:        doer,
		notifier:    notifier,
	}, nil
}

// Handle forwards the body of event to the ingestion endpoint.
//
// The response of the endpoint is not inspected: on success Handle
// always returns a 200, whatever the endpoint answered. Errors are
// meant to be surfaced by the Lambda runtime as invocation failures.
func (r *Reporter) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger := o11y.Logger(ctx, slog.Default())

	entry, err := ParseBody(event)
	if err != nil {
		logger.WarnContext(ctx, "rejected event", "error", err.Error())
		return events.APIGatewayProxyResponse{}, err
	}

	payload, err := json.Marshal(NewEnvelope(r.customerKey.Get(), entry))
	if err != nil {
		return events.APIGatewayProxyResponse{}, fmt.Errorf("%w: marshal envelope: %w", ErrInvalidBody, err)
	}

	status, err := r.send(ctx, payload)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
		logger.ErrorContext(ctx, "could not forward event", "error", err.Error())
		if r.notifier != nil {
			r.notifier.SendMessage(ctx, "gc-reporter: could not forward event. Error: "+err.Error())
		}
		return events.APIGatewayProxyResponse{}, err
	}
	logger.DebugContext(ctx, "event forwarded", "status", status, "size", len(payload))

	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK}, nil
}

// send posts payload to the ingestion endpoint and returns the status
// code of the response. The response body is drained and discarded.
func (r *Reporter) send(ctx context.Context, payload []byte) (status int, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}

	resp, err := r.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("send request: %w", err)
	}
	defer errutil.RunAndSetError(resp.Body.Close, &err, "close response body")
	defer errutil.RunAndSetError(func() error {
		_, e := io.Copy(io.Discard, resp.Body)
		return e
	}, &err, "empty response body")

	return resp.StatusCode, nil
}
