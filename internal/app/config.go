package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	fyneAppID         = "se.moaburke.glosor"
	defaultConfigFile = "config.json"
)

// Config holds the user-tunable application settings persisted next to the
// binary in config.json.
type Config struct {
	// FlipDelaySeconds is how long the front face shows before the card
	// reveals its translation.
	FlipDelaySeconds int    `json:"flipDelaySeconds"`
	DataDir          string `json:"dataDir"`
	ProgressFile     string `json:"progressFile"`
	SeedFile         string `json:"seedFile"`
	FrontLanguage    string `json:"frontLanguage"`
	BackLanguage     string `json:"backLanguage"`
}

// DefaultConfig returns the out-of-the-box settings.
func DefaultConfig() Config {
	return Config{
		FlipDelaySeconds: 3,
		DataDir:          "./data",
		ProgressFile:     "./data/words_to_learn.csv",
		SeedFile:         "./data/swedish_words.csv",
		FrontLanguage:    "Swedish",
		BackLanguage:     "English",
	}
}

func sanitizeConfig(cfg Config) Config {
	def := DefaultConfig()
	if cfg.FlipDelaySeconds < 1 || cfg.FlipDelaySeconds > 30 {
		cfg.FlipDelaySeconds = def.FlipDelaySeconds
	}
	if strings.TrimSpace(cfg.ProgressFile) == "" {
		cfg.ProgressFile = def.ProgressFile
	}
	if strings.TrimSpace(cfg.SeedFile) == "" {
		cfg.SeedFile = def.SeedFile
	}
	if strings.TrimSpace(cfg.FrontLanguage) == "" {
		cfg.FrontLanguage = def.FrontLanguage
	}
	if strings.TrimSpace(cfg.BackLanguage) == "" {
		cfg.BackLanguage = def.BackLanguage
	}
	cfg.DataDir = strings.TrimSpace(cfg.DataDir)
	return cfg
}

// LoadConfig loads configuration from the given path or the default
// config.json. A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		path = defaultConfigFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("decode config: %w", err)
	}
	return sanitizeConfig(cfg), nil
}

// SaveConfig persists configuration to disk.
func SaveConfig(path string, cfg Config) error {
	if path == "" {
		path = defaultConfigFile
	}
	tmp := path + ".tmp"
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	cfg = sanitizeConfig(cfg)
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename config: %w", err)
	}
	return nil
}
