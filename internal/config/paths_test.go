package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePathsWithHomeOverride(t *testing.T) {
	base := t.TempDir()
	t.Setenv("AGIXT_HOME", base)

	paths, err := ResolvePaths()
	require.NoError(t, err)
	assert.Equal(t, base, paths.Base)
	assert.Equal(t, filepath.Join(base, "config.yaml"), paths.Config)
	assert.Equal(t, filepath.Join(base, "data"), paths.Data)
}

func TestEnsureDirs(t *testing.T) {
	base := filepath.Join(t.TempDir(), "deep", "agixt")
	t.Setenv("AGIXT_HOME", base)

	paths, err := ResolvePaths()
	require.NoError(t, err)
	require.NoError(t, paths.EnsureDirs())

	for _, d := range []string{paths.Base, paths.Data, paths.Logs} {
		info, err := os.Stat(d)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestTranscriptDB(t *testing.T) {
	t.Setenv("AGIXT_HOME", t.TempDir())
	paths, err := ResolvePaths()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(paths.Data, "transcripts.db"), paths.TranscriptDB(Config{}))

	override := Config{Cache: CacheConfig{Path: "/tmp/custom.db"}}
	assert.Equal(t, "/tmp/custom.db", paths.TranscriptDB(override))
}
