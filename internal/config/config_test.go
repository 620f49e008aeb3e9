package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, "http://localhost:7437", cfg.Server.URL)
	assert.Equal(t, 300, cfg.Server.TimeoutSeconds)
	assert.Equal(t, "AGiXT", cfg.Agent)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults().Server.URL, cfg.Server.URL)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  url: https://agixt.example.com
  apiKey: secret-key
agent: researcher
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://agixt.example.com", cfg.Server.URL)
	assert.Equal(t, "secret-key", cfg.Server.APIKey)
	assert.Equal(t, "researcher", cfg.Agent)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// defaults still fill unset fields
	assert.Equal(t, 300, cfg.Server.TimeoutSeconds)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("AGIXT_SERVER", "http://10.0.0.5:7437")
	t.Setenv("AGIXT_API_KEY", "env-key")
	t.Setenv("AGIXT_AGENT", "envagent")
	t.Setenv("AGIXT_TIMEOUT_SECONDS", "60")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.5:7437", cfg.Server.URL)
	assert.Equal(t, "env-key", cfg.Server.APIKey)
	assert.Equal(t, "envagent", cfg.Agent)
	assert.Equal(t, 60, cfg.Server.TimeoutSeconds)
}

func TestExpandSensitiveFields(t *testing.T) {
	t.Setenv("MY_AGIXT_KEY", "expanded-key")
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  apiKey: ${MY_AGIXT_KEY}
oauth:
  google:
    clientId: ${UNSET_VAR_XYZ}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "expanded-key", cfg.Server.APIKey)
	// unset variables are left as-is
	assert.Equal(t, "${UNSET_VAR_XYZ}", cfg.OAuth["google"].ClientID)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := Defaults()
	cfg.Server.APIKey = "saved-key"
	require.NoError(t, Save(path, cfg))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "saved-key", loaded.Server.APIKey)
}

func TestValidate(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, Validate(cfg))

	bad := cfg
	bad.Server.URL = "ftp://example.com"
	assert.Error(t, Validate(bad))

	bad = cfg
	bad.Server.URL = "http://"
	assert.Error(t, Validate(bad))

	bad = cfg
	bad.Agent = "  "
	assert.Error(t, Validate(bad))

	bad = cfg
	bad.Server.Retries = -1
	assert.Error(t, Validate(bad))

	bad = cfg
	bad.OAuth = map[string]OAuthProvider{"google": {}}
	assert.Error(t, Validate(bad))
}
