package dns

import (
	"github.com/google/uuid"
	"github.com/kompox/asgdns/domain/model"
)

const (
	// DefaultDomain is the private zone every group record lives in.
	DefaultDomain = "alteon.internal."
	// DefaultTTL is the record set TTL in seconds.
	DefaultTTL uint32 = 60
)

// Settings holds the fixed parameters of a reconciliation.
type Settings struct {
	Domain      string
	TTL         uint32
	RecordType  model.DNSRecordType
	ZoneComment string // Comment for created zones. Empty means a generated one.
}

func (s Settings) withDefaults() Settings {
	if s.Domain == "" {
		s.Domain = DefaultDomain
	}
	if s.TTL == 0 {
		s.TTL = DefaultTTL
	}
	if s.RecordType == "" {
		s.RecordType = model.DNSRecordTypeA
	}
	return s
}

// UseCase provides application logic for keeping group records in sync.
type UseCase struct {
	Network  model.NetworkPort
	Groups   model.GroupPort
	DNS      model.DNSPort
	Settings Settings
	// NewCallerReference returns the idempotency token for zone creation.
	// Defaults to a random UUID.
	NewCallerReference func() string
}

func (u *UseCase) callerReference() string {
	if u.NewCallerReference != nil {
		return u.NewCallerReference()
	}
	return uuid.NewString()
}

// Action values reported in ReconcileOutput.
const (
	ActionUpserted = "upserted" // record set written with current members
	ActionDeleted  = "deleted"  // record set removed
	ActionAbsent   = "absent"   // no members and no record set; nothing to do
	ActionAborted  = "aborted"  // zone creation lost a race; invocation ended early
	ActionPlanned  = "planned"  // dry run
)

// ReconcileInput holds parameters for one reconciliation.
type ReconcileInput struct {
	Event  model.ScaleEvent `json:"event"`
	DryRun bool             `json:"dry_run,omitempty"`
	RunID  string           `json:"run_id,omitempty"`
}

// ReconcileOutput describes what a reconciliation did.
type ReconcileOutput struct {
	RunID       string   `json:"run_id,omitempty"`
	GroupName   string   `json:"group_name"`
	NetworkID   string   `json:"network_id,omitempty"`
	ZoneID      string   `json:"zone_id,omitempty"`
	ZoneCreated bool     `json:"zone_created,omitempty"`
	FQDN        string   `json:"fqdn"`
	Action      string   `json:"action"`
	Addresses   []string `json:"addresses,omitempty"`
	Message     string   `json:"message,omitempty"`
}
