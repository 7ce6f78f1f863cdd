package asgdnscfg

import (
	"fmt"
	"strings"

	"github.com/kompox/asgdns/internal/logging"
	"github.com/kompox/asgdns/internal/naming"
	"go.uber.org/multierr"
)

// maxTTL is the largest TTL Route 53 accepts (2^31-1).
const maxTTL = 2147483647

// Validate performs semantic validation on the configuration tree and reports
// every problem found.
func (r *Root) Validate() error {
	var err error
	if r.Version != Version {
		err = multierr.Append(err, fmt.Errorf("version: unsupported version %q, must be %q", r.Version, Version))
	}
	if e := r.DNS.validate(); e != nil {
		err = multierr.Append(err, fmt.Errorf("dns: %w", e))
	}
	if strings.TrimSpace(r.Provider.Driver) == "" {
		err = multierr.Append(err, fmt.Errorf("provider.driver: required"))
	}
	if e := r.Logging.validate(); e != nil {
		err = multierr.Append(err, fmt.Errorf("logging: %w", e))
	}
	return err
}

func (d *DNS) validate() error {
	var err error
	if e := naming.ValidateRecordSetName(naming.CanonicalFQDN(d.Domain)); e != nil {
		err = multierr.Append(err, fmt.Errorf("domain: %w", e))
	}
	if d.TTL == 0 || d.TTL > maxTTL {
		err = multierr.Append(err, fmt.Errorf("ttl: must be between 1 and %d, got %d", maxTTL, d.TTL))
	}
	return err
}

func (l *Logging) validate() error {
	var err error
	switch strings.ToLower(l.Format) {
	case "", "json", "text", "human":
	default:
		err = multierr.Append(err, fmt.Errorf("format: unsupported format %q", l.Format))
	}
	if _, e := logging.ParseLevel(l.Level); e != nil {
		err = multierr.Append(err, fmt.Errorf("level: %w", e))
	}
	return err
}
