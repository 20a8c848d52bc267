package reporter

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
)

// Envelope is the payload sent to the ingestion endpoint.
type Envelope struct {
	CustomerID string            `json:"customer_id"`
	LogType    string            `json:"log_type"`
	Entries    []json.RawMessage `json:"entries"`
}

// NewEnvelope wraps a single entry for the given customer.
func NewEnvelope(customerID string, entry json.RawMessage) *Envelope {
	return &Envelope{
		CustomerID: customerID,
		LogType:    LogType,
		Entries:    []json.RawMessage{entry},
	}
}

// ParseBody extracts the JSON document carried by the event.
// The document is kept as-is so numbers don't go through a float64.
func ParseBody(event events.APIGatewayProxyRequest) (json.RawMessage, error) {
	body := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: decode base64: %w", ErrInvalidBody, err)
		}
		body = decoded
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: not a JSON document", ErrInvalidBody)
	}
	return json.RawMessage(body), nil
}
