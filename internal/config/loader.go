package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variable overrides.
const (
	envPrompt   = "EDICT_PROMPT"
	envLogLevel = "EDICT_LOG_LEVEL"
	envNoColor  = "EDICT_NO_COLOR"
	envJournal  = "EDICT_JOURNAL"
)

// Load resolves the configuration: defaults, then the YAML file at
// path (if any), then EDICT_* environment overrides.
// A missing file is not an error when path is empty; an explicitly
// given path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if err := loadFile(&cfg, path, explicit); err != nil {
		return Config{}, err
	}
	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadFile merges the YAML file at path into cfg.
func loadFile(cfg *Config, path string, explicit bool) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// applyEnv applies EDICT_* environment overrides.
func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(envPrompt); ok {
		cfg.Prompt = v
	}
	if v, ok := os.LookupEnv(envLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(envNoColor); ok {
		if noColor, err := strconv.ParseBool(v); err == nil && noColor {
			cfg.Color = false
		}
	}
	if v, ok := os.LookupEnv(envJournal); ok && v != "" {
		cfg.Journal.Enabled = true
		cfg.Journal.Path = v
	}
}
