package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	r53types "github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/google/uuid"
	"github.com/kompox/asgdns/domain/model"
	"github.com/kompox/asgdns/internal/logging"
	"github.com/kompox/asgdns/internal/naming"
)

// changeComment is attached to every change batch asgdns submits.
const changeComment = "asgdns: sync auto scaling group members"

// ZoneFind scans all hosted zones for a private zone named domain that is
// associated with networkID.
func (d *driver) ZoneFind(ctx context.Context, domain, networkID string) (zone *model.Zone, found bool, err error) {
	ctx, cleanup := d.withMethodLogger(ctx, "ZoneFind")
	defer func() { cleanup(err) }()
	log := logging.FromContext(ctx)

	p := route53.NewListHostedZonesPaginator(d.route53, &route53.ListHostedZonesInput{})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, false, fmt.Errorf("list hosted zones: %w", err)
		}
		for _, hz := range page.HostedZones {
			if !naming.EqualFQDN(aws.ToString(hz.Name), domain) || hz.Config == nil || !hz.Config.PrivateZone {
				continue
			}
			got, err := d.route53.GetHostedZone(ctx, &route53.GetHostedZoneInput{Id: hz.Id})
			if err != nil {
				return nil, false, fmt.Errorf("get hosted zone %s: %w", aws.ToString(hz.Id), err)
			}
			for _, vpc := range got.VPCs {
				if aws.ToString(vpc.VPCId) != networkID {
					continue
				}
				log.Debug(ctx, "hosted zone matched", "zone_id", aws.ToString(hz.Id), "vpc", networkID)
				return &model.Zone{
					ID:        naming.HostedZoneID(aws.ToString(hz.Id)),
					Name:      naming.CanonicalFQDN(aws.ToString(hz.Name)),
					NetworkID: networkID,
					Region:    string(vpc.VPCRegion),
					Private:   true,
				}, true, nil
			}
		}
	}
	return nil, false, nil
}

// ZoneCreate creates a private hosted zone associated with spec.NetworkID.
func (d *driver) ZoneCreate(ctx context.Context, spec model.ZoneSpec) (zone *model.Zone, err error) {
	ctx, cleanup := d.withMethodLogger(ctx, "ZoneCreate")
	defer func() { cleanup(err) }()

	ref := spec.CallerReference
	if ref == "" {
		ref = uuid.NewString()
	}
	name := naming.CanonicalFQDN(spec.Name)

	logging.FromContext(ctx).Info(ctx, "creating Route 53 private hosted zone",
		"name", name,
		"vpc", spec.NetworkID,
		"vpc_region", spec.Region,
		"caller_reference", ref,
	)

	out, err := d.route53.CreateHostedZone(ctx, &route53.CreateHostedZoneInput{
		Name:            aws.String(name),
		CallerReference: aws.String(ref),
		VPC: &r53types.VPC{
			VPCId:     aws.String(spec.NetworkID),
			VPCRegion: r53types.VPCRegion(spec.Region),
		},
		HostedZoneConfig: &r53types.HostedZoneConfig{
			Comment:     aws.String(spec.Comment),
			PrivateZone: true,
		},
	})
	if err != nil {
		if isZoneConflict(err) {
			return nil, fmt.Errorf("%w: %w", model.ErrZoneConflict, err)
		}
		return nil, fmt.Errorf("create hosted zone %s: %w", name, err)
	}
	if out.HostedZone == nil || aws.ToString(out.HostedZone.Id) == "" {
		return nil, fmt.Errorf("create hosted zone %s: response carries no zone ID", name)
	}

	return &model.Zone{
		ID:        naming.HostedZoneID(aws.ToString(out.HostedZone.Id)),
		Name:      name,
		NetworkID: spec.NetworkID,
		Region:    spec.Region,
		Private:   true,
	}, nil
}

// RecordSetUpsert writes rset with a single UPSERT change.
func (d *driver) RecordSetUpsert(ctx context.Context, zoneID string, rset model.DNSRecordSet) (err error) {
	ctx, cleanup := d.withMethodLogger(ctx, "RecordSetUpsert")
	defer func() { cleanup(err) }()

	if len(rset.RData) == 0 {
		return fmt.Errorf("record set %s has no values", rset.FQDN)
	}
	records := make([]r53types.ResourceRecord, 0, len(rset.RData))
	for _, v := range rset.RData {
		records = append(records, r53types.ResourceRecord{Value: aws.String(v)})
	}
	name := naming.CanonicalFQDN(rset.FQDN)

	logging.FromContext(ctx).Info(ctx, "upserting Route 53 record set",
		"zone_id", zoneID,
		"name", name,
		"type", rset.Type,
		"ttl", rset.TTL,
		"rdata", rset.RData,
	)

	_, err = d.route53.ChangeResourceRecordSets(ctx, &route53.ChangeResourceRecordSetsInput{
		HostedZoneId: aws.String(zoneID),
		ChangeBatch: &r53types.ChangeBatch{
			Comment: aws.String(changeComment),
			Changes: []r53types.Change{{
				Action: r53types.ChangeActionUpsert,
				ResourceRecordSet: &r53types.ResourceRecordSet{
					Name:            aws.String(name),
					Type:            r53types.RRType(rset.Type),
					TTL:             aws.Int64(int64(rset.TTL)),
					ResourceRecords: records,
				},
			}},
		},
	})
	if err != nil {
		return fmt.Errorf("upsert record set %s: %w", name, err)
	}
	return nil
}

// RecordSetDelete deletes the record set named fqdn of type rtype. The DELETE
// change carries the record set exactly as listed, which Route 53 requires.
func (d *driver) RecordSetDelete(ctx context.Context, zoneID, fqdn string, rtype model.DNSRecordType) (err error) {
	ctx, cleanup := d.withMethodLogger(ctx, "RecordSetDelete")
	defer func() { cleanup(err) }()

	name := naming.CanonicalFQDN(fqdn)
	rs, found, err := d.findRecordSet(ctx, zoneID, name, rtype)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: %s %s", model.ErrRecordSetNotFound, rtype, name)
	}

	logging.FromContext(ctx).Info(ctx, "deleting Route 53 record set",
		"zone_id", zoneID,
		"name", name,
		"type", rtype,
	)

	_, err = d.route53.ChangeResourceRecordSets(ctx, &route53.ChangeResourceRecordSetsInput{
		HostedZoneId: aws.String(zoneID),
		ChangeBatch: &r53types.ChangeBatch{
			Comment: aws.String(changeComment),
			Changes: []r53types.Change{{
				Action:            r53types.ChangeActionDelete,
				ResourceRecordSet: rs,
			}},
		},
	})
	if err != nil {
		if isRecordSetGone(err) {
			return fmt.Errorf("%w: %s %s: %w", model.ErrRecordSetNotFound, rtype, name, err)
		}
		return fmt.Errorf("delete record set %s: %w", name, err)
	}
	return nil
}

// findRecordSet lists record sets starting at (name, rtype). Route 53 returns
// record sets in order, so the first differing name ends the search.
func (d *driver) findRecordSet(ctx context.Context, zoneID, name string, rtype model.DNSRecordType) (*r53types.ResourceRecordSet, bool, error) {
	in := &route53.ListResourceRecordSetsInput{
		HostedZoneId:    aws.String(zoneID),
		StartRecordName: aws.String(name),
		StartRecordType: r53types.RRType(rtype),
	}
	for {
		page, err := d.route53.ListResourceRecordSets(ctx, in)
		if err != nil {
			return nil, false, fmt.Errorf("list record sets of zone %s: %w", zoneID, err)
		}
		for i := range page.ResourceRecordSets {
			rs := page.ResourceRecordSets[i]
			if !naming.EqualFQDN(aws.ToString(rs.Name), name) {
				return nil, false, nil
			}
			if string(rs.Type) == string(rtype) {
				return &rs, true, nil
			}
		}
		if !page.IsTruncated {
			return nil, false, nil
		}
		in.StartRecordName = page.NextRecordName
		in.StartRecordType = page.NextRecordType
		in.StartRecordIdentifier = page.NextRecordIdentifier
	}
}
