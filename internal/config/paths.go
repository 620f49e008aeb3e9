package config

import (
	"os"
	"path/filepath"
)

const defaultBaseDir = ".agixt"

// Paths holds resolved filesystem paths for CLI data.
type Paths struct {
	Base   string // ~/.agixt
	Config string // ~/.agixt/config.yaml
	Data   string // ~/.agixt/data
	Logs   string // ~/.agixt/logs
}

// ResolvePaths computes all standard paths from the home directory.
// If AGIXT_HOME is set, it overrides the default base directory.
func ResolvePaths() (Paths, error) {
	base := os.Getenv("AGIXT_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Paths{}, err
		}
		base = filepath.Join(home, defaultBaseDir)
	}

	return Paths{
		Base:   base,
		Config: filepath.Join(base, "config.yaml"),
		Data:   filepath.Join(base, "data"),
		Logs:   filepath.Join(base, "logs"),
	}, nil
}

// EnsureDirs creates all standard directories if they don't exist.
func (p Paths) EnsureDirs() error {
	for _, d := range []string{p.Base, p.Data, p.Logs} {
		if err := os.MkdirAll(d, 0o700); err != nil {
			return err
		}
	}
	return nil
}

// TranscriptDB returns the cache database path, honoring an override from
// config.
func (p Paths) TranscriptDB(cfg Config) string {
	if cfg.Cache.Path != "" {
		return cfg.Cache.Path
	}
	return filepath.Join(p.Data, "transcripts.db")
}
