package logging

import (
	"context"
	"time"
)

// maxSpanErrLen bounds the err attribute on span end lines.
const maxSpanErrLen = 32

// Span emits a start line for an operation and returns a context carrying the
// derived logger plus a cleanup function that emits the matching end line.
//
// Usage:
//
//	ctx, cleanup := logging.Span(ctx, "AWS:ZoneFind", "driver", "AWS.ZoneFind")
//	defer func() { cleanup(err) }()
//
// Log message format:
//   - START:  <prefix>:START
//   - END:    <prefix>:END:OK or <prefix>:END:FAILED (with err, elapsed)
//
// Failures are logged at WARN; the caller decides whether they are fatal.
func Span(ctx context.Context, prefix string, kv ...any) (context.Context, func(err error)) {
	startAt := time.Now()

	logger := FromContext(ctx)
	if len(kv) > 0 {
		logger = logger.With(kv...)
	}
	ctx = WithLogger(ctx, logger)

	logger.Info(ctx, prefix+":START")

	cleanup := func(err error) {
		elapsed := time.Since(startAt).Seconds()
		if err == nil {
			logger.Info(ctx, prefix+":END:OK", "err", "", "elapsed", elapsed)
			return
		}
		logger.Warn(ctx, prefix+":END:FAILED", "err", TruncateErr(err), "elapsed", elapsed)
	}

	return ctx, cleanup
}

// TruncateErr shortens an error message for single-line span output.
func TruncateErr(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if len(msg) > maxSpanErrLen {
		return msg[:maxSpanErrLen] + "..."
	}
	return msg
}
