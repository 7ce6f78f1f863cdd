package main

import (
	"context"
	"maps"
	"strings"

	providerdrv "github.com/kompox/asgdns/adapters/drivers/provider"
	awsdrv "github.com/kompox/asgdns/adapters/drivers/provider/aws"
	"github.com/kompox/asgdns/config/asgdnscfg"
	"github.com/kompox/asgdns/internal/logging"
	"github.com/kompox/asgdns/usecase/dns"
)

// newDriver is replaced in tests.
var newDriver = providerdrv.New

// driverSettings returns the provider settings for a run. When no region is
// configured by settings or environment, the event region is used.
func driverSettings(cfg *asgdnscfg.Root, eventRegion string, getenv func(string) string) map[string]string {
	settings := maps.Clone(cfg.Provider.Settings)
	if settings == nil {
		settings = map[string]string{}
	}
	if strings.TrimSpace(settings[awsdrv.SettingRegion]) == "" &&
		getenv("AWS_REGION") == "" && getenv("AWS_DEFAULT_REGION") == "" && eventRegion != "" {
		settings[awsdrv.SettingRegion] = eventRegion
	}
	return settings
}

// buildDNSUseCase creates the dns use case with ports from a driver built for
// this run only.
func buildDNSUseCase(ctx context.Context, cfg *asgdnscfg.Root, eventRegion string, getenv func(string) string) (*dns.UseCase, error) {
	settings := driverSettings(cfg, eventRegion, getenv)
	drv, err := newDriver(ctx, cfg.Provider.Driver, settings)
	if err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Debug(ctx, "provider driver ready", "driver", drv.ID(), "region", settings[awsdrv.SettingRegion])
	return &dns.UseCase{
		Network: drv,
		Groups:  drv,
		DNS:     drv,
		Settings: dns.Settings{
			Domain:      cfg.DNS.Domain,
			TTL:         cfg.DNS.TTL,
			ZoneComment: cfg.DNS.ZoneComment,
		},
	}, nil
}
