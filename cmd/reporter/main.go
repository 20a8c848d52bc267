// Package main contains the entrypoint of the Lambda function that
// forwards webhook events to the log ingestion endpoint
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/Nivl/gc-reporter/internal/reporter"
	"github.com/Nivl/gc-reporter/internal/slack"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/sethvargo/go-envconfig"
)

type appConfig struct {
	Reporter reporter.Config
	Slack    slack.Config `env:",prefix=SLACK_"`
	LogLevel slog.Level   `env:"LOG_LEVEL,default=info"`
}

func main() {
	ctx := context.Background()
	if err := run(ctx); err != nil {
		slog.ErrorContext(ctx, "something went wrong", "error", err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context) (err error) {
	var cfg appConfig
	if err = envconfig.Process(ctx, &cfg); err != nil {
		return fmt.Errorf("%w: parse the env: %w", reporter.ErrConfigMissing, err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	})))

	r, err := reporter.New(cfg.Reporter, slack.NewClient(cfg.Slack))
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	slog.InfoContext(ctx, "gc-reporter: starting", "url", cfg.Reporter.URL)
	lambda.StartWithOptions(r.Handle, lambda.WithContext(ctx))
	return nil
}
