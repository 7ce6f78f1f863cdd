package asgdnscfg

// Defaults matching the fixed values the reconciler was first deployed with.
const (
	DefaultDomain    = "alteon.internal."
	DefaultTTL       = uint32(60)
	DefaultDriver    = "aws"
	DefaultLogFormat = "json"
	DefaultLogLevel  = "INFO"
)

// Default returns a configuration with every field at its default.
func Default() *Root {
	r := &Root{}
	r.applyDefaults()
	return r
}

// applyDefaults fills zero-valued fields.
func (r *Root) applyDefaults() {
	if r.Version == "" {
		r.Version = Version
	}
	if r.DNS.Domain == "" {
		r.DNS.Domain = DefaultDomain
	}
	if r.DNS.TTL == 0 {
		r.DNS.TTL = DefaultTTL
	}
	if r.Provider.Driver == "" {
		r.Provider.Driver = DefaultDriver
	}
	if r.Provider.Settings == nil {
		r.Provider.Settings = map[string]string{}
	}
	if r.Logging.Format == "" {
		r.Logging.Format = DefaultLogFormat
	}
	if r.Logging.Level == "" {
		r.Logging.Level = DefaultLogLevel
	}
}
