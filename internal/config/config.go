// Package config loads the optional repoinit defaults file.
//
// The file lives at $XDG_CONFIG_HOME/repoinit/config.yaml (falling back to
// ~/.config/repoinit/config.yaml). A missing file is not an error; every
// field has a working default.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Author is the fallback commit identity applied when a commit fails for
// lack of a configured identity.
type Author struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// Config holds user defaults for the provisioning wizard.
type Config struct {
	// DefaultPrivate pre-selects private visibility in the prompt.
	DefaultPrivate bool `yaml:"default_private"`
	// Author is the identity used by the missing-identity commit repair.
	Author Author `yaml:"author"`
	// CatalogURL overrides the template listing endpoint.
	CatalogURL string `yaml:"catalog_url"`
	// RawBaseURL overrides the template content base URL.
	RawBaseURL string `yaml:"raw_base_url"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Author: Author{
			Name:  "repoinit",
			Email: "repoinit@localhost",
		},
	}
}

// Path returns the location of the defaults file.
func Path() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "repoinit", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "repoinit", "config.yaml"), nil
}

// Load reads and parses a defaults file, filling unset fields from
// Default(). A nonexistent path yields the defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Author.Name == "" {
		cfg.Author.Name = Default().Author.Name
	}
	if cfg.Author.Email == "" {
		cfg.Author.Email = Default().Author.Email
	}

	return cfg, nil
}

// LoadDefault loads the defaults file from its standard location.
func LoadDefault() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return Load(path)
}
