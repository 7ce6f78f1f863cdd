package dns

import (
	"context"
	"errors"
	"fmt"

	"github.com/kompox/asgdns/domain/model"
	"github.com/kompox/asgdns/internal/logging"
)

// destroy removes the record set if present. A record set that is already
// gone, including one removed by a concurrent invocation, is not an error.
func (u *UseCase) destroy(ctx context.Context, zone *resolvedZone, fqdn string, rtype model.DNSRecordType, dryRun bool) (*recordResult, error) {
	log := logging.FromContext(ctx)

	// A zone that does not exist yet, or was created just now, cannot hold the record.
	if zone == nil || zone.created {
		return &recordResult{Action: ActionAbsent, Message: "zone is new; no record set to remove"}, nil
	}

	if dryRun {
		return &recordResult{
			Action:  ActionPlanned,
			Message: fmt.Sprintf("would delete %s record set %s if present", rtype, fqdn),
		}, nil
	}

	err := u.DNS.RecordSetDelete(ctx, zone.ID, fqdn, rtype)
	if errors.Is(err, model.ErrRecordSetNotFound) {
		log.Info(ctx, "record set was already removed", "type", rtype)
		return &recordResult{Action: ActionAbsent, Message: "record set already removed"}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("delete record set %s: %w", fqdn, err)
	}
	log.Info(ctx, "record set removed", "type", rtype)

	return &recordResult{Action: ActionDeleted, Message: fmt.Sprintf("%s record set deleted", rtype)}, nil
}
