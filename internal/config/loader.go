package config

import (
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

// envVarPattern matches ${VAR_NAME} patterns in strings.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnvVars replaces ${VAR} patterns with environment variable values.
// Unset variables are left unchanged.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val, ok := os.LookupEnv(varName); ok {
			return val
		}
		return match
	})
}

// expandSensitiveFields processes environment variable references in
// credential fields so API keys can be stored as ${ENV_VAR}.
func expandSensitiveFields(cfg *Config) {
	cfg.Server.APIKey = expandEnvVars(cfg.Server.APIKey)
	for name, provider := range cfg.OAuth {
		provider.ClientID = expandEnvVars(provider.ClientID)
		cfg.OAuth[name] = provider
	}
}

// applyEnvOverrides lets environment variables win over the file, so a
// one-off `AGIXT_SERVER=... agixt agent list` works without editing config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("AGIXT_SERVER"); v != "" {
		cfg.Server.URL = v
	}
	if v := os.Getenv("AGIXT_API_KEY"); v != "" {
		cfg.Server.APIKey = v
	}
	if v := os.Getenv("AGIXT_AGENT"); v != "" {
		cfg.Agent = v
	}
	if v := os.Getenv("AGIXT_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Server.TimeoutSeconds = n
		}
	}
}

func applyDefaults(cfg *Config) {
	def := Defaults()
	if cfg.Server.URL == "" {
		cfg.Server.URL = def.Server.URL
	}
	if cfg.Server.TimeoutSeconds <= 0 {
		cfg.Server.TimeoutSeconds = def.Server.TimeoutSeconds
	}
	if cfg.Agent == "" {
		cfg.Agent = def.Agent
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = def.Logging.Level
	}
}

// Load reads the config file, applies environment overrides, and returns
// a merged Config. Missing files produce defaults only.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(&cfg)
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, &ConfigError{Message: "failed to parse config: " + err.Error()}
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)
	expandSensitiveFields(&cfg)
	return cfg, nil
}

// Save writes the config back to disk with restrictive permissions; the
// file can hold an API key.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return &ConfigError{Message: "failed to encode config: " + err.Error()}
	}
	return os.WriteFile(path, data, 0o600)
}
