package providerdrv

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/kompox/asgdns/domain/model"
)

// Driver abstracts provider-specific behavior behind the domain ports.
// Implementations live under adapters/drivers/provider/<name> and should return a
// provider identifier such as "aws" via ID().
type Driver interface {
	// ID returns the provider identifier (e.g., "aws").
	ID() string

	model.NetworkPort
	model.GroupPort
	model.DNSPort
}

// DriverFactory is a constructor function for a provider driver. Settings are
// provider-specific key/value pairs (e.g. AWS_REGION).
type DriverFactory func(ctx context.Context, settings map[string]string) (Driver, error)

// registry holds registered drivers by name.
var registry = map[string]DriverFactory{}

// Register makes a driver available by the given name. Drivers should call
// this from their init() function.
func Register(name string, factory DriverFactory) {
	registry[name] = factory
}

// GetDriverFactory returns the driver factory function for the given name.
func GetDriverFactory(name string) (DriverFactory, bool) {
	factory, exists := registry[name]
	return factory, exists
}

// Names returns registered driver names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named driver with settings.
func New(ctx context.Context, name string, settings map[string]string) (Driver, error) {
	factory, ok := GetDriverFactory(name)
	if !ok {
		return nil, fmt.Errorf("unknown provider driver: %s (available: %s)", name, strings.Join(Names(), ", "))
	}
	drv, err := factory(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create driver %s: %w", name, err)
	}
	return drv, nil
}
