package aws

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	r53types "github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/aws/smithy-go"
	"github.com/kompox/asgdns/domain/model"
)

func hostedZone(id, name string, private bool) r53types.HostedZone {
	return r53types.HostedZone{
		Id:     aws.String("/hostedzone/" + id),
		Name:   aws.String(name),
		Config: &r53types.HostedZoneConfig{PrivateZone: private},
	}
}

func TestZoneFind(t *testing.T) {
	ctx := context.Background()

	vpcs := map[string][]r53types.VPC{
		"/hostedzone/ZOTHERVPC": {{VPCId: aws.String("vpc-other"), VPCRegion: r53types.VPCRegionEuWest1}},
		"/hostedzone/ZMATCH":    {{VPCId: aws.String("vpc-x"), VPCRegion: r53types.VPCRegionEuWest1}, {VPCId: aws.String("vpc-1"), VPCRegion: r53types.VPCRegionEuWest1}},
	}
	var getCalls []string
	r53 := &mockRoute53{
		listHostedZonesFunc: func(ctx context.Context, in *route53.ListHostedZonesInput) (*route53.ListHostedZonesOutput, error) {
			if in.Marker == nil {
				return &route53.ListHostedZonesOutput{
					HostedZones: []r53types.HostedZone{
						hostedZone("ZPUBLIC", "alteon.internal.", false),
						hostedZone("ZOTHERNAME", "example.com.", true),
						hostedZone("ZOTHERVPC", "alteon.internal.", true),
					},
					IsTruncated: true,
					NextMarker:  aws.String("m2"),
				}, nil
			}
			if aws.ToString(in.Marker) != "m2" {
				t.Errorf("Marker = %q", aws.ToString(in.Marker))
			}
			return &route53.ListHostedZonesOutput{
				HostedZones: []r53types.HostedZone{hostedZone("ZMATCH", "Alteon.Internal.", true)},
			}, nil
		},
		getHostedZoneFunc: func(ctx context.Context, in *route53.GetHostedZoneInput) (*route53.GetHostedZoneOutput, error) {
			id := aws.ToString(in.Id)
			getCalls = append(getCalls, id)
			return &route53.GetHostedZoneOutput{VPCs: vpcs[id]}, nil
		},
	}
	d := &driver{route53: r53}

	zone, found, err := d.ZoneFind(ctx, "alteon.internal.", "vpc-1")
	if err != nil {
		t.Fatalf("ZoneFind() error = %v", err)
	}
	if !found {
		t.Fatal("ZoneFind() found = false")
	}
	if zone.ID != "ZMATCH" || zone.Name != "alteon.internal." || zone.NetworkID != "vpc-1" || zone.Region != "eu-west-1" || !zone.Private {
		t.Errorf("unexpected zone: %+v", zone)
	}
	if want := []string{"/hostedzone/ZOTHERVPC", "/hostedzone/ZMATCH"}; !slices.Equal(getCalls, want) {
		t.Errorf("GetHostedZone calls = %v, want %v (public or differently named zones must be skipped)", getCalls, want)
	}

	getCalls = nil
	_, found, err = d.ZoneFind(ctx, "alteon.internal.", "vpc-none")
	if err != nil || found {
		t.Errorf("ZoneFind() for unknown vpc = found %v, err %v", found, err)
	}
}

func TestZoneFind_Error(t *testing.T) {
	d := &driver{route53: &mockRoute53{
		listHostedZonesFunc: func(ctx context.Context, in *route53.ListHostedZonesInput) (*route53.ListHostedZonesOutput, error) {
			return nil, &smithy.GenericAPIError{Code: "AccessDenied", Message: "no"}
		},
	}}
	if _, _, err := d.ZoneFind(context.Background(), "alteon.internal.", "vpc-1"); err == nil {
		t.Error("expected error")
	}
}

func TestZoneCreate(t *testing.T) {
	ctx := context.Background()
	spec := model.ZoneSpec{
		Name:            "alteon.internal",
		NetworkID:       "vpc-1",
		Region:          "eu-west-1",
		Comment:         "Created by asgdns",
		CallerReference: "ref-1",
	}

	t.Run("created", func(t *testing.T) {
		d := &driver{route53: &mockRoute53{
			createHostedZoneFunc: func(ctx context.Context, in *route53.CreateHostedZoneInput) (*route53.CreateHostedZoneOutput, error) {
				if aws.ToString(in.Name) != "alteon.internal." {
					t.Errorf("Name = %q", aws.ToString(in.Name))
				}
				if aws.ToString(in.CallerReference) != "ref-1" {
					t.Errorf("CallerReference = %q", aws.ToString(in.CallerReference))
				}
				if in.VPC == nil || aws.ToString(in.VPC.VPCId) != "vpc-1" || in.VPC.VPCRegion != r53types.VPCRegionEuWest1 {
					t.Errorf("VPC = %+v", in.VPC)
				}
				if in.HostedZoneConfig == nil || !in.HostedZoneConfig.PrivateZone || aws.ToString(in.HostedZoneConfig.Comment) != "Created by asgdns" {
					t.Errorf("HostedZoneConfig = %+v", in.HostedZoneConfig)
				}
				return &route53.CreateHostedZoneOutput{HostedZone: &r53types.HostedZone{Id: aws.String("/hostedzone/ZNEW")}}, nil
			},
		}}
		zone, err := d.ZoneCreate(ctx, spec)
		if err != nil {
			t.Fatalf("ZoneCreate() error = %v", err)
		}
		if zone.ID != "ZNEW" || zone.NetworkID != "vpc-1" {
			t.Errorf("unexpected zone: %+v", zone)
		}
	})

	t.Run("generated caller reference", func(t *testing.T) {
		d := &driver{route53: &mockRoute53{
			createHostedZoneFunc: func(ctx context.Context, in *route53.CreateHostedZoneInput) (*route53.CreateHostedZoneOutput, error) {
				if aws.ToString(in.CallerReference) == "" {
					t.Error("CallerReference must not be empty")
				}
				return &route53.CreateHostedZoneOutput{HostedZone: &r53types.HostedZone{Id: aws.String("/hostedzone/ZNEW")}}, nil
			},
		}}
		s := spec
		s.CallerReference = ""
		if _, err := d.ZoneCreate(ctx, s); err != nil {
			t.Fatalf("ZoneCreate() error = %v", err)
		}
	})

	tests := []struct {
		name         string
		err          error
		wantConflict bool
	}{
		{name: "already exists", err: &r53types.HostedZoneAlreadyExists{Message: aws.String("exists")}, wantConflict: true},
		{name: "conflicting domain", err: &r53types.ConflictingDomainExists{Message: aws.String("conflict")}, wantConflict: true},
		{name: "access denied", err: &smithy.GenericAPIError{Code: "AccessDenied", Message: "no"}},
		{name: "invalid vpc", err: &r53types.InvalidVPCId{Message: aws.String("bad vpc")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &driver{route53: &mockRoute53{
				createHostedZoneFunc: func(ctx context.Context, in *route53.CreateHostedZoneInput) (*route53.CreateHostedZoneOutput, error) {
					return nil, tt.err
				},
			}}
			_, err := d.ZoneCreate(ctx, spec)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, model.ErrZoneConflict); got != tt.wantConflict {
				t.Errorf("ErrZoneConflict = %v, want %v (err %v)", got, tt.wantConflict, err)
			}
		})
	}
}

func TestRecordSetUpsert(t *testing.T) {
	ctx := context.Background()

	var got *route53.ChangeResourceRecordSetsInput
	d := &driver{route53: &mockRoute53{
		changeRecordSetsFunc: func(ctx context.Context, in *route53.ChangeResourceRecordSetsInput) (*route53.ChangeResourceRecordSetsOutput, error) {
			got = in
			return &route53.ChangeResourceRecordSetsOutput{}, nil
		},
	}}

	err := d.RecordSetUpsert(ctx, "Z1", model.DNSRecordSet{
		FQDN:  "web.alteon.internal",
		Type:  model.DNSRecordTypeA,
		TTL:   60,
		RData: []string{"10.0.0.1", "10.0.0.2"},
	})
	if err != nil {
		t.Fatalf("RecordSetUpsert() error = %v", err)
	}
	if aws.ToString(got.HostedZoneId) != "Z1" {
		t.Errorf("HostedZoneId = %q", aws.ToString(got.HostedZoneId))
	}
	if len(got.ChangeBatch.Changes) != 1 {
		t.Fatalf("changes = %d, want 1", len(got.ChangeBatch.Changes))
	}
	ch := got.ChangeBatch.Changes[0]
	if ch.Action != r53types.ChangeActionUpsert {
		t.Errorf("Action = %v", ch.Action)
	}
	rs := ch.ResourceRecordSet
	if aws.ToString(rs.Name) != "web.alteon.internal." || rs.Type != r53types.RRTypeA || aws.ToInt64(rs.TTL) != 60 {
		t.Errorf("unexpected record set: name=%q type=%v ttl=%d", aws.ToString(rs.Name), rs.Type, aws.ToInt64(rs.TTL))
	}
	var values []string
	for _, r := range rs.ResourceRecords {
		values = append(values, aws.ToString(r.Value))
	}
	if want := []string{"10.0.0.1", "10.0.0.2"}; !slices.Equal(values, want) {
		t.Errorf("values = %v, want %v", values, want)
	}

	if err := d.RecordSetUpsert(ctx, "Z1", model.DNSRecordSet{FQDN: "web.alteon.internal.", Type: model.DNSRecordTypeA, TTL: 60}); err == nil {
		t.Error("expected error for empty RData")
	}
}

func TestRecordSetDelete(t *testing.T) {
	ctx := context.Background()

	existing := r53types.ResourceRecordSet{
		Name:            aws.String("web.alteon.internal."),
		Type:            r53types.RRTypeA,
		TTL:             aws.Int64(60),
		ResourceRecords: []r53types.ResourceRecord{{Value: aws.String("10.0.0.1")}},
	}

	listing := func(sets ...r53types.ResourceRecordSet) func(ctx context.Context, in *route53.ListResourceRecordSetsInput) (*route53.ListResourceRecordSetsOutput, error) {
		return func(ctx context.Context, in *route53.ListResourceRecordSetsInput) (*route53.ListResourceRecordSetsOutput, error) {
			if aws.ToString(in.StartRecordName) != "web.alteon.internal." || in.StartRecordType != r53types.RRTypeA {
				t.Errorf("listing starts at %q %v", aws.ToString(in.StartRecordName), in.StartRecordType)
			}
			return &route53.ListResourceRecordSetsOutput{ResourceRecordSets: sets}, nil
		}
	}

	t.Run("deleted", func(t *testing.T) {
		var change *r53types.Change
		d := &driver{route53: &mockRoute53{
			listRecordSetsFunc: listing(existing),
			changeRecordSetsFunc: func(ctx context.Context, in *route53.ChangeResourceRecordSetsInput) (*route53.ChangeResourceRecordSetsOutput, error) {
				change = &in.ChangeBatch.Changes[0]
				return &route53.ChangeResourceRecordSetsOutput{}, nil
			},
		}}
		if err := d.RecordSetDelete(ctx, "Z1", "WEB.alteon.internal", model.DNSRecordTypeA); err != nil {
			t.Fatalf("RecordSetDelete() error = %v", err)
		}
		if change == nil || change.Action != r53types.ChangeActionDelete {
			t.Fatalf("unexpected change: %+v", change)
		}
		if aws.ToInt64(change.ResourceRecordSet.TTL) != 60 || len(change.ResourceRecordSet.ResourceRecords) != 1 {
			t.Errorf("DELETE must carry the listed record set, got %+v", change.ResourceRecordSet)
		}
	})

	t.Run("absent", func(t *testing.T) {
		changed := false
		d := &driver{route53: &mockRoute53{
			listRecordSetsFunc: listing(r53types.ResourceRecordSet{Name: aws.String("x.alteon.internal."), Type: r53types.RRTypeA}),
			changeRecordSetsFunc: func(ctx context.Context, in *route53.ChangeResourceRecordSetsInput) (*route53.ChangeResourceRecordSetsOutput, error) {
				changed = true
				return &route53.ChangeResourceRecordSetsOutput{}, nil
			},
		}}
		err := d.RecordSetDelete(ctx, "Z1", "web.alteon.internal.", model.DNSRecordTypeA)
		if !errors.Is(err, model.ErrRecordSetNotFound) {
			t.Errorf("error = %v, want ErrRecordSetNotFound", err)
		}
		if changed {
			t.Error("ChangeResourceRecordSets called for absent record set")
		}
	})

	t.Run("same name other type", func(t *testing.T) {
		d := &driver{route53: &mockRoute53{
			listRecordSetsFunc: listing(r53types.ResourceRecordSet{Name: aws.String("web.alteon.internal."), Type: r53types.RRTypeTxt}),
		}}
		err := d.RecordSetDelete(ctx, "Z1", "web.alteon.internal.", model.DNSRecordTypeA)
		if !errors.Is(err, model.ErrRecordSetNotFound) {
			t.Errorf("error = %v, want ErrRecordSetNotFound", err)
		}
	})

	t.Run("removed concurrently", func(t *testing.T) {
		d := &driver{route53: &mockRoute53{
			listRecordSetsFunc: listing(existing),
			changeRecordSetsFunc: func(ctx context.Context, in *route53.ChangeResourceRecordSetsInput) (*route53.ChangeResourceRecordSetsOutput, error) {
				return nil, &r53types.InvalidChangeBatch{Message: aws.String("Tried to delete resource record set [name='web.alteon.internal.', type='A'] but it was not found")}
			},
		}}
		err := d.RecordSetDelete(ctx, "Z1", "web.alteon.internal.", model.DNSRecordTypeA)
		if !errors.Is(err, model.ErrRecordSetNotFound) {
			t.Errorf("error = %v, want ErrRecordSetNotFound", err)
		}
	})

	t.Run("other error", func(t *testing.T) {
		d := &driver{route53: &mockRoute53{
			listRecordSetsFunc: listing(existing),
			changeRecordSetsFunc: func(ctx context.Context, in *route53.ChangeResourceRecordSetsInput) (*route53.ChangeResourceRecordSetsOutput, error) {
				return nil, &r53types.PriorRequestNotComplete{Message: aws.String("busy")}
			},
		}}
		err := d.RecordSetDelete(ctx, "Z1", "web.alteon.internal.", model.DNSRecordTypeA)
		if err == nil || errors.Is(err, model.ErrRecordSetNotFound) {
			t.Errorf("error = %v, want a non-benign error", err)
		}
	})
}

func TestFindRecordSet_Pagination(t *testing.T) {
	calls := 0
	d := &driver{route53: &mockRoute53{
		listRecordSetsFunc: func(ctx context.Context, in *route53.ListResourceRecordSetsInput) (*route53.ListResourceRecordSetsOutput, error) {
			calls++
			if calls == 1 {
				return &route53.ListResourceRecordSetsOutput{
					ResourceRecordSets: []r53types.ResourceRecordSet{
						{Name: aws.String("web.alteon.internal."), Type: r53types.RRTypeA, SetIdentifier: aws.String("other")},
					},
					IsTruncated:          true,
					NextRecordName:       aws.String("web.alteon.internal."),
					NextRecordType:       r53types.RRTypeA,
					NextRecordIdentifier: aws.String("next"),
				}, nil
			}
			if aws.ToString(in.StartRecordIdentifier) != "next" {
				t.Errorf("StartRecordIdentifier = %q", aws.ToString(in.StartRecordIdentifier))
			}
			return &route53.ListResourceRecordSetsOutput{}, nil
		},
	}}

	rs, found, err := d.findRecordSet(context.Background(), "Z1", "web.alteon.internal.", model.DNSRecordTypeA)
	if err != nil || !found || rs == nil {
		t.Fatalf("findRecordSet() = %v, %v, %v", rs, found, err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (match on first page)", calls)
	}
}
