package model

// DNSRecordType represents provider-agnostic DNS record types.
type DNSRecordType string

const (
	DNSRecordTypeA    DNSRecordType = "A"
	DNSRecordTypeAAAA DNSRecordType = "AAAA"
)

// DNSRecordSet describes a single DNS record set identified by FQDN and type.
// Writing a record set replaces its whole value list and TTL.
type DNSRecordSet struct {
	FQDN  string // Absolute FQDN. Trailing dot is optional.
	Type  DNSRecordType
	TTL   uint32   // TTL in seconds.
	RData []string // Presentation-format RDATA, e.g. IPv4 addresses for A.
}

// Zone is a private hosted zone bound to a network scope (VPC).
type Zone struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	NetworkID string `json:"networkId"`
	Region    string `json:"region"`
	Private   bool   `json:"private"`
}

// ZoneSpec carries everything needed to create a private zone.
type ZoneSpec struct {
	Name      string // Domain name, e.g. "alteon.internal."
	NetworkID string // VPC to associate
	Region    string // Region of the VPC
	Comment   string
	// CallerReference is the idempotency token for the create request.
	CallerReference string
}
