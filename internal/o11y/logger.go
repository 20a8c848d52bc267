package o11y

import (
	"context"
	"log/slog"

	"github.com/aws/aws-lambda-go/lambdacontext"
)

// Logger returns l decorated with the attributes of the current
// Lambda invocation, if ctx carries one.
func Logger(ctx context.Context, l *slog.Logger) *slog.Logger {
	lc, ok := lambdacontext.FromContext(ctx)
	if !ok || lc.AwsRequestID == "" {
		return l
	}
	return l.With("request_id", lc.AwsRequestID)
}
