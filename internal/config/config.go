// Package config loads and validates the CLI configuration.
package config

import "fmt"

// ConfigError represents a configuration error.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s", e.Message)
}

// Config is the root configuration for the agixt CLI.
type Config struct {
	Server  ServerConfig             `yaml:"server,omitempty"`
	Agent   string                   `yaml:"agent,omitempty"`
	OAuth   map[string]OAuthProvider `yaml:"oauth,omitempty"`
	Cache   CacheConfig              `yaml:"cache,omitempty"`
	Logging LoggingConfig            `yaml:"logging,omitempty"`
}

// ServerConfig identifies the AGiXT server and how to talk to it.
type ServerConfig struct {
	URL            string `yaml:"url,omitempty"`
	APIKey         string `yaml:"apiKey,omitempty"`
	TimeoutSeconds int    `yaml:"timeoutSeconds,omitempty"`
	Retries        int    `yaml:"retries,omitempty"`
}

// OAuthProvider configures one third-party login provider for
// `agixt login --oauth`.
type OAuthProvider struct {
	ClientID    string   `yaml:"clientId"`
	Scopes      []string `yaml:"scopes,omitempty"`
	RedirectURL string   `yaml:"redirectUrl,omitempty"`
}

// CacheConfig controls the local conversation transcript cache.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled,omitempty"`
	Path    string `yaml:"path,omitempty"` // defaults to <base>/data/transcripts.db
}

// LoggingConfig controls CLI log output.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"`
}

// Defaults returns a Config with sensible defaults applied.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			URL:            "http://localhost:7437",
			TimeoutSeconds: 300,
		},
		Agent: "AGiXT",
		Cache: CacheConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
