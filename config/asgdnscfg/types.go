// Package asgdnscfg defines the configuration schema (structs) for asgdns.yml.
// All sections are optional; an absent file yields Default().
package asgdnscfg

// Environment variable names
const (
	ConfigEnvKey    = "ASGDNS_CONFIG"
	LogFormatEnvKey = "ASGDNS_LOG_FORMAT"
	LogLevelEnvKey  = "ASGDNS_LOG_LEVEL"
	DomainEnvKey    = "ASGDNS_DOMAIN"
	TTLEnvKey       = "ASGDNS_TTL"
)

// Version is the only supported schema version.
const Version = "v1"

// Root is the root structure of asgdns.yml.
type Root struct {
	Version  string   `yaml:"version"`
	DNS      DNS      `yaml:"dns"`
	Provider Provider `yaml:"provider"`
	Logging  Logging  `yaml:"logging"`
}

// DNS holds the private zone and record set parameters.
type DNS struct {
	Domain      string `yaml:"domain"`                // zone name, e.g. "alteon.internal."
	TTL         uint32 `yaml:"ttl"`                   // record set TTL in seconds
	ZoneComment string `yaml:"zoneComment,omitempty"` // comment on zones created by asgdns
}

// Provider selects the provider driver.
type Provider struct {
	Driver   string            `yaml:"driver"`   // e.g., "aws"
	Settings map[string]string `yaml:"settings"` // driver-specific settings, e.g. AWS_REGION
}

// Logging represents the logging configuration.
type Logging struct {
	Format string `yaml:"format,omitempty"` // Log format: json (default), text, human
	Level  string `yaml:"level,omitempty"`  // Log level: DEBUG, INFO (default), WARN, ERROR
}
