package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/wahlandcase/topo-order-commits/internal/git"
)

type Config struct {
	Repository RepositoryConfig `toml:"repository"`
	Browse     BrowseConfig     `toml:"browse"`
	Log        LogConfig        `toml:"log"`
}

type RepositoryConfig struct {
	MetadataDir string `toml:"metadata_dir"`
	HeadsDir    string `toml:"heads_dir"`
	ObjectsDir  string `toml:"objects_dir"`
}

type BrowseConfig struct {
	Color  bool `toml:"color"`
	Banner bool `toml:"banner"`
}

type LogConfig struct {
	Verbose bool `toml:"verbose"`
}

func DefaultConfig() *Config {
	return &Config{
		Repository: RepositoryConfig{
			MetadataDir: ".git",
			HeadsDir:    "refs/heads",
			ObjectsDir:  "objects",
		},
		Browse: BrowseConfig{
			Color:  true,
			Banner: true,
		},
	}
}

// Path returns the location of topo.toml in the user config directory
func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "topo.toml"), nil
}

// Load reads the user config file. A missing file or config directory yields
// the defaults; nothing is written.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads path, falling back to defaults when it does not exist.
// Keys absent from the file keep their default values.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects layout paths that cannot address a metadata directory
func (c *Config) Validate() error {
	fields := []struct {
		key   string
		value string
	}{
		{"repository.metadata_dir", c.Repository.MetadataDir},
		{"repository.heads_dir", c.Repository.HeadsDir},
		{"repository.objects_dir", c.Repository.ObjectsDir},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%s must not be empty", f.key)
		}
		if filepath.IsAbs(f.value) {
			return fmt.Errorf("%s %q must be relative", f.key, f.value)
		}
	}
	if strings.ContainsRune(c.Repository.MetadataDir, '/') {
		return fmt.Errorf("repository.metadata_dir %q must be a single directory name", c.Repository.MetadataDir)
	}
	return nil
}

// Save writes the config to the user config directory
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Layout converts the repository section to a git.Layout
func (c *Config) Layout() git.Layout {
	return git.Layout{
		MetadataDir: c.Repository.MetadataDir,
		HeadsDir:    filepath.FromSlash(c.Repository.HeadsDir),
		ObjectsDir:  filepath.FromSlash(c.Repository.ObjectsDir),
	}
}
