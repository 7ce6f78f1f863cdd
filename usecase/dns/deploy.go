package dns

import (
	"context"
	"fmt"
	"strings"

	"github.com/kompox/asgdns/domain/model"
	"github.com/kompox/asgdns/internal/logging"
)

// recordResult describes the outcome of the record set step.
type recordResult struct {
	Action  string
	Message string
}

// deploy writes rset with UPSERT semantics. The provider replaces the whole
// value list, so concurrent invocations converge on the last writer.
func (u *UseCase) deploy(ctx context.Context, zone *resolvedZone, rset model.DNSRecordSet, dryRun bool) (*recordResult, error) {
	log := logging.FromContext(ctx)
	values := strings.Join(rset.RData, ",")

	if dryRun {
		return &recordResult{
			Action:  ActionPlanned,
			Message: fmt.Sprintf("would create/update %s %s -> %s", rset.Type, rset.FQDN, values),
		}, nil
	}

	if err := u.DNS.RecordSetUpsert(ctx, zone.ID, rset); err != nil {
		return nil, fmt.Errorf("upsert record set %s: %w", rset.FQDN, err)
	}
	log.Info(ctx, "record set created/updated", "type", rset.Type, "ttl", rset.TTL, "rdata", rset.RData)

	return &recordResult{
		Action:  ActionUpserted,
		Message: fmt.Sprintf("%s -> %s", rset.Type, values),
	}, nil
}
