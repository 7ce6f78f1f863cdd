package asgdnscfg

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML file from the given path and returns a deserialized Root
// with defaults applied. It performs no validation beyond YAML decoding.
func Load(path string) (*Root, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	var cfg Root
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// Resolve loads the configuration for a run. The path comes from the path
// argument, then ASGDNS_CONFIG. An explicit path must exist; with no path the
// defaults are used. Environment overrides are applied last.
func Resolve(path string, getenv func(string) string) (*Root, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	if path == "" {
		path = getenv(ConfigEnvKey)
	}

	cfg := Default()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("config file not found: %s", path)
			}
			return nil, err
		}
		cfg = loaded
	}

	if err := cfg.ApplyEnv(getenv); err != nil {
		return nil, err
	}
	return cfg, nil
}
