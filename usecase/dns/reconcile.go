package dns

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"slices"
	"strings"

	"github.com/kompox/asgdns/domain/model"
	"github.com/kompox/asgdns/internal/logging"
	"github.com/kompox/asgdns/internal/naming"
)

// Reconcile makes the record set <group>.<domain> match the current
// in-service, running members of the event's group.
//
// Flow:
//
//	ResolveScope -> {FindZone | CreateZone} -> ListMembers -> {Upsert | Delete}
//
// It aborts without cleanup when the subnet cannot be resolved (error) or
// when zone creation loses a race (ActionAborted, nil error).
func (u *UseCase) Reconcile(ctx context.Context, in *ReconcileInput) (*ReconcileOutput, error) {
	if in == nil {
		return nil, fmt.Errorf("input is nil")
	}
	if u.Network == nil || u.Groups == nil || u.DNS == nil {
		return nil, fmt.Errorf("usecase is not fully wired")
	}
	if err := in.Event.Validate(); err != nil {
		return nil, err
	}

	s := u.Settings.withDefaults()
	ev := in.Event
	fqdn := naming.RecordSetName(ev.GroupName, s.Domain)
	if err := naming.ValidateRecordSetName(fqdn); err != nil {
		return nil, fmt.Errorf("group %s: %w", ev.GroupName, err)
	}

	log := logging.FromContext(ctx).With("group", ev.GroupName, "fqdn", fqdn)
	ctx = logging.WithLogger(ctx, log)
	if reasons := naming.HostnameWarnings(fqdn); len(reasons) > 0 {
		log.Warn(ctx, "record set name is not a valid hostname", "reasons", reasons)
	}

	out := &ReconcileOutput{
		RunID:     in.RunID,
		GroupName: ev.GroupName,
		FQDN:      fqdn,
	}

	// Resolve network scope. Fatal on failure: nothing else is attempted.
	networkID, err := u.Network.SubnetNetwork(ctx, ev.SubnetID)
	if err != nil {
		return nil, fmt.Errorf("resolve network scope of subnet %s: %w", ev.SubnetID, err)
	}
	out.NetworkID = networkID
	log.Info(ctx, "scale event received",
		"description", ev.Description,
		"vpc", networkID,
		"region", ev.Region,
		"detail_type", ev.DetailType,
	)

	zone, err := u.ensureZone(ctx, s, ev.Region, networkID, in.DryRun)
	if errors.Is(err, model.ErrZoneConflict) {
		log.Info(ctx, "hosted zone was already created by another invocation - aborting",
			"domain", s.Domain, "vpc", networkID, "region", ev.Region)
		out.Action = ActionAborted
		out.Message = "zone created concurrently by another invocation"
		return out, nil
	}
	if err != nil {
		return nil, err
	}
	if zone != nil {
		out.ZoneID = zone.ID
		out.ZoneCreated = zone.created
	}

	addrs, err := u.Groups.GroupMemberAddresses(ctx, ev.GroupName)
	if err != nil {
		return nil, fmt.Errorf("list members of group %s: %w", ev.GroupName, err)
	}
	out.Addresses = normalizeAddresses(addrs)

	var res *recordResult
	if len(out.Addresses) > 0 {
		res, err = u.deploy(ctx, zone, model.DNSRecordSet{
			FQDN:  fqdn,
			Type:  s.RecordType,
			TTL:   s.TTL,
			RData: out.Addresses,
		}, in.DryRun)
	} else {
		log.Info(ctx, "group does not exist or has no active instances - removing record set")
		res, err = u.destroy(ctx, zone, fqdn, s.RecordType, in.DryRun)
	}
	if err != nil {
		return nil, err
	}
	out.Action = res.Action
	out.Message = res.Message
	return out, nil
}

// resolvedZone is a zone plus whether this invocation created it. A nil
// *resolvedZone only happens on dry runs where the zone does not exist yet.
type resolvedZone struct {
	model.Zone
	created bool
}

func (u *UseCase) ensureZone(ctx context.Context, s Settings, region, networkID string, dryRun bool) (*resolvedZone, error) {
	log := logging.FromContext(ctx)

	zone, found, err := u.DNS.ZoneFind(ctx, s.Domain, networkID)
	if err != nil {
		return nil, fmt.Errorf("find zone %s for vpc %s: %w", s.Domain, networkID, err)
	}
	if found {
		log.Info(ctx, "hosted zone exists", "domain", s.Domain, "vpc", networkID, "region", region, "zone_id", zone.ID)
		return &resolvedZone{Zone: *zone}, nil
	}

	if dryRun {
		log.Info(ctx, "would create hosted zone", "domain", s.Domain, "vpc", networkID, "region", region)
		return nil, nil
	}

	log.Info(ctx, "hosted zone does not exist - creating", "domain", s.Domain, "vpc", networkID, "region", region)
	comment := s.ZoneComment
	if comment == "" {
		comment = fmt.Sprintf("Created by asgdns for VPC %s in region %s", networkID, region)
	}
	zone, err = u.DNS.ZoneCreate(ctx, model.ZoneSpec{
		Name:            s.Domain,
		NetworkID:       networkID,
		Region:          region,
		Comment:         comment,
		CallerReference: u.callerReference(),
	})
	if err != nil {
		if errors.Is(err, model.ErrZoneConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("create zone %s for vpc %s: %w", s.Domain, networkID, err)
	}
	log.Info(ctx, "hosted zone created", "domain", s.Domain, "vpc", networkID, "region", region, "zone_id", zone.ID)
	return &resolvedZone{Zone: *zone, created: true}, nil
}

// normalizeAddresses drops blanks and duplicates and sorts the result so equal
// membership always produces an identical record set.
func normalizeAddresses(addrs []string) []string {
	out := make([]string, 0, len(addrs))
	for _, a := range addrs {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		out = append(out, a)
	}
	slices.SortFunc(out, compareAddr)
	return slices.Compact(out)
}

// compareAddr orders parseable IPs numerically and anything else lexically after them.
func compareAddr(a, b string) int {
	pa, errA := netip.ParseAddr(a)
	pb, errB := netip.ParseAddr(b)
	switch {
	case errA == nil && errB == nil:
		return pa.Compare(pb)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}
