package aws

import (
	"context"

	"github.com/kompox/asgdns/internal/logging"
)

// withMethodLogger implements the Span pattern for AWS driver logging.
//
// Usage:
//
//	ctx, cleanup := d.withMethodLogger(ctx, "ZoneFind")
//	defer func() { cleanup(err) }()
//
// Log message format:
//   - START:  AWS:<method>:START (with driver, region in logger attributes)
//   - END:    AWS:<method>:END:OK or AWS:<method>:END:FAILED (with err, elapsed)
func (d *driver) withMethodLogger(ctx context.Context, method string) (context.Context, func(err error)) {
	return logging.Span(ctx, "AWS:"+method, "driver", "AWS."+method, "region", d.region)
}
