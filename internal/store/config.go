package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const configFileName = "config.json"

// GlobalConfig holds cross-run preferences. It lives next to the store
// (~/.contactdesk/config.json) and is intentionally "best effort": callers
// should tolerate missing/invalid data.
type GlobalConfig struct {
	// StoreDir optionally overrides the default store directory.
	StoreDir string `json:"storeDir,omitempty"`

	// ExportDir is where CSV exports are written when no --out is given.
	ExportDir string `json:"exportDir,omitempty"`
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".contactdesk"), nil
}

func configPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

func LoadConfig() (*GlobalConfig, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &GlobalConfig{}, nil
		}
		return nil, err
	}
	var cfg GlobalConfig
	if err := json.Unmarshal(b, &cfg); err != nil {
		// Best-effort; if corrupted, treat as missing.
		return &GlobalConfig{}, nil
	}
	cfg.StoreDir = strings.TrimSpace(cfg.StoreDir)
	cfg.ExportDir = strings.TrimSpace(cfg.ExportDir)
	return &cfg, nil
}

func SaveConfig(cfg *GlobalConfig) error {
	if cfg == nil {
		return nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	path := filepath.Join(dir, configFileName)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
