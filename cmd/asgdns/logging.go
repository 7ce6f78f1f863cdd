package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kompox/asgdns/internal/logging"
)

// withRunID attaches a fresh runId to the context logger. Every reconciliation,
// whether a CLI run or a Lambda invocation, gets its own.
func withRunID(ctx context.Context, kv ...any) (context.Context, string) {
	runID := uuid.NewString()
	logger := logging.FromContext(ctx).With(append([]any{"runId", runID}, kv...)...)
	return logging.WithLogger(ctx, logger), runID
}

// withCmdRunLogger implements the Span pattern for CLI command logging.
// It emits a start log line and returns a context with logger attributes attached,
// plus a cleanup function to emit the success or failure log line.
//
// Usage:
//
//	ctx, cleanup := withCmdRunLogger(ctx, "reconcile", groupName)
//	defer func() { cleanup(err) }()
//
// Log message format:
// - Start:   CMD:<operation>/S (with resourceId in logger attributes)
// - Success: CMD:<operation>/EOK (with err, elapsed in logger attributes)
// - Failure: CMD:<operation>/EFAIL (with err, elapsed in logger attributes)
//
// All logs use INFO level (mechanical recording).
// The runId is inherited from the context logger (set by withRunID).
func withCmdRunLogger(ctx context.Context, operation, resourceID string) (context.Context, func(err error)) {
	startAt := time.Now()

	// Attach resourceId to logger and return new context
	logger := logging.FromContext(ctx).With("resourceId", resourceID)
	ctx = logging.WithLogger(ctx, logger)

	// Emit start log line
	logger.Info(ctx, "CMD:"+operation+"/S")

	cleanup := func(err error) {
		elapsed := time.Since(startAt).Seconds()
		if err == nil {
			logger.Info(ctx, "CMD:"+operation+"/EOK", "err", "", "elapsed", elapsed)
			return
		}
		logger.Info(ctx, "CMD:"+operation+"/EFAIL", "err", logging.TruncateErr(err), "elapsed", elapsed)
	}

	return ctx, cleanup
}
