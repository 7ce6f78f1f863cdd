package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/kompox/asgdns/adapters/event"
	"github.com/kompox/asgdns/config/asgdnscfg"
	"github.com/kompox/asgdns/internal/logging"
	"github.com/kompox/asgdns/usecase/dns"
	"github.com/spf13/cobra"
)

func newCmdLambda() *cobra.Command {
	return &cobra.Command{
		Use:                "lambda",
		Short:              "Serve Auto Scaling events as an AWS Lambda function",
		Long:               "Serve Auto Scaling events delivered by EventBridge as an AWS Lambda function. Each invocation runs one reconciliation.",
		Args:               cobra.NoArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			h := &lambdaHandler{
				cfg:    configFromContext(ctx),
				logger: logging.FromContext(ctx),
				getenv: os.Getenv,
			}
			lambda.StartWithOptions(h.Handle, lambda.WithContext(ctx))
			return nil
		},
	}
}

// lambdaHandler runs one reconciliation per invocation.
type lambdaHandler struct {
	cfg    *asgdnscfg.Root
	logger logging.Logger
	getenv func(string) string
}

// Handle decodes ev and reconciles the group it names. Returned errors fail
// the invocation.
func (h *lambdaHandler) Handle(ctx context.Context, ev events.CloudWatchEvent) (out *dns.ReconcileOutput, err error) {
	ctx = logging.WithLogger(ctx, h.logger)
	var kv []any
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		kv = append(kv, "requestId", lc.AwsRequestID)
	}
	ctx, runID := withRunID(ctx, kv...)

	se, err := event.FromCloudWatchEvent(ev)
	resourceID := ev.ID
	if se != nil {
		resourceID = se.GroupName
	}
	ctx, cleanup := withCmdRunLogger(ctx, "lambda.reconcile", resourceID)
	defer func() { cleanup(err) }()
	if err != nil {
		return nil, err
	}

	uc, err := buildDNSUseCase(ctx, h.cfg, se.Region, h.getenv)
	if err != nil {
		return nil, err
	}
	return uc.Reconcile(ctx, &dns.ReconcileInput{Event: *se, RunID: runID})
}
