// Package naming builds and compares the DNS names asgdns manages.
//
// Route 53 returns names in canonical form: lowercase, absolute (trailing
// dot) and with characters outside [a-z0-9-_.] escaped as \ooo octal
// sequences. Everything here normalizes to that form so names coming from
// events, configuration and the provider compare equal.
package naming

import (
	"strconv"
	"strings"
)

// hostedZoneIDPrefix is the path prefix Route 53 puts on hosted zone IDs.
const hostedZoneIDPrefix = "/hostedzone/"

// RecordSetName returns the absolute record set name for an Auto Scaling group:
//
//	<group>.<domain>
//
// e.g. RecordSetName("web", "alteon.internal.") == "web.alteon.internal."
func RecordSetName(group, domain string) string {
	group = strings.TrimSuffix(strings.TrimSpace(group), ".")
	return CanonicalFQDN(group + "." + strings.TrimPrefix(CanonicalFQDN(domain), "."))
}

// CanonicalFQDN lowercases name, decodes Route 53 octal escapes and ensures a
// single trailing dot. An empty name stays empty.
func CanonicalFQDN(name string) string {
	name = strings.TrimSpace(name)
	if name == "" || name == "." {
		return name
	}
	name = strings.ToLower(unescapeOctal(name))
	return strings.TrimRight(name, ".") + "."
}

// EqualFQDN reports whether a and b name the same DNS node.
func EqualFQDN(a, b string) bool {
	return CanonicalFQDN(a) == CanonicalFQDN(b)
}

// HostedZoneID strips the /hostedzone/ prefix from a Route 53 hosted zone ID.
func HostedZoneID(id string) string {
	return strings.TrimPrefix(id, hostedZoneIDPrefix)
}

// unescapeOctal decodes \ooo sequences (e.g. \052 -> '*'). Malformed
// sequences are kept verbatim.
func unescapeOctal(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+3 < len(s) && isOctal(s[i+1:i+4]) {
			v, err := strconv.ParseUint(s[i+1:i+4], 8, 8)
			if err == nil {
				b.WriteByte(byte(v))
				i += 3
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isOctal(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '7' {
			return false
		}
	}
	return true
}
