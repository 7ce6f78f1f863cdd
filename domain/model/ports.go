package model

import "context"

// NetworkPort resolves network scopes.
type NetworkPort interface {
	// SubnetNetwork returns the VPC ID owning subnetID, or ErrSubnetNotFound.
	SubnetNetwork(ctx context.Context, subnetID string) (string, error)
}

// GroupPort resolves Auto Scaling group membership.
type GroupPort interface {
	// GroupMemberAddresses returns the private addresses of in-service, running
	// members of the named group. A missing group yields an empty list.
	GroupMemberAddresses(ctx context.Context, groupName string) ([]string, error)
}

// DNSPort is an interface (domain port) for private zone and record set operations.
type DNSPort interface {
	// ZoneFind looks for a private zone named domain associated with networkID.
	ZoneFind(ctx context.Context, domain, networkID string) (*Zone, bool, error)
	// ZoneCreate creates a private zone. It returns ErrZoneConflict when the
	// provider reports the zone already exists.
	ZoneCreate(ctx context.Context, spec ZoneSpec) (*Zone, error)
	// RecordSetUpsert creates or replaces a record set in one atomic change.
	RecordSetUpsert(ctx context.Context, zoneID string, rset DNSRecordSet) error
	// RecordSetDelete deletes the record set with the given name and type. It
	// returns ErrRecordSetNotFound when there is nothing to delete.
	RecordSetDelete(ctx context.Context, zoneID, fqdn string, rtype DNSRecordType) error
}
