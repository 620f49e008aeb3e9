package config

import (
	"net/url"
	"strings"
)

// Validate checks a loaded config for values that would fail later in
// confusing ways.
func Validate(cfg Config) error {
	u, err := url.Parse(cfg.Server.URL)
	if err != nil {
		return &ConfigError{Message: "invalid server url: " + err.Error()}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &ConfigError{Message: "server url must be http or https, got " + cfg.Server.URL}
	}
	if u.Host == "" {
		return &ConfigError{Message: "server url has no host: " + cfg.Server.URL}
	}
	if cfg.Server.Retries < 0 {
		return &ConfigError{Message: "server retries cannot be negative"}
	}
	if strings.TrimSpace(cfg.Agent) == "" {
		return &ConfigError{Message: "agent name cannot be empty"}
	}
	for name, provider := range cfg.OAuth {
		if strings.TrimSpace(provider.ClientID) == "" {
			return &ConfigError{Message: "oauth provider " + name + " has no clientId"}
		}
	}
	return nil
}
