package naming

import (
	"fmt"
	"strings"

	utilvalidation "k8s.io/apimachinery/pkg/util/validation"
)

const (
	// maxNameLength is the Route 53 limit for a record name in presentation form.
	maxNameLength  = 255
	maxLabelLength = 63
)

// ValidateRecordSetName rejects names Route 53 cannot store: empty names,
// empty labels, labels over 63 octets and names over 255 octets.
func ValidateRecordSetName(fqdn string) error {
	name := strings.TrimSuffix(CanonicalFQDN(fqdn), ".")
	if name == "" {
		return fmt.Errorf("record set name must not be empty")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("record set name exceeds %d characters", maxNameLength)
	}
	for _, label := range strings.Split(name, ".") {
		if label == "" {
			return fmt.Errorf("record set name %q contains an empty label", fqdn)
		}
		if len(label) > maxLabelLength {
			return fmt.Errorf("record set name %q has a label exceeding %d characters", fqdn, maxLabelLength)
		}
	}
	return nil
}

// HostnameWarnings lists reasons why fqdn, although storable, is not a valid
// RFC 1123 hostname. Auto Scaling group names allow characters such as '_'
// or spaces that some resolvers and clients refuse.
func HostnameWarnings(fqdn string) []string {
	name := strings.TrimSuffix(CanonicalFQDN(fqdn), ".")
	if name == "" {
		return nil
	}
	return utilvalidation.IsDNS1123Subdomain(name)
}
