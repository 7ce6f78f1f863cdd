package asgdnscfg

import (
	"fmt"
	"strconv"
	"strings"
)

// ApplyEnv overrides fields from ASGDNS_* environment variables. Empty
// variables are ignored.
func (r *Root) ApplyEnv(getenv func(string) string) error {
	if v := strings.TrimSpace(getenv(LogFormatEnvKey)); v != "" {
		r.Logging.Format = v
	}
	if v := strings.TrimSpace(getenv(LogLevelEnvKey)); v != "" {
		r.Logging.Level = v
	}
	if v := strings.TrimSpace(getenv(DomainEnvKey)); v != "" {
		r.DNS.Domain = v
	}
	if v := strings.TrimSpace(getenv(TTLEnvKey)); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return fmt.Errorf("%s: invalid TTL %q: %w", TTLEnvKey, v, err)
		}
		r.DNS.TTL = uint32(n)
	}
	return nil
}
