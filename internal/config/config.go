// Package config loads the CLI configuration file from
// ~/.config/trpg-json/config.toml.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/kazuyasi/trpg-json/internal/errors"
)

// Config is the parsed configuration file.
type Config struct {
	Data   DataConfig    `toml:"data"`
	System *SystemConfig `toml:"system"`
}

// DataConfig names the dataset files. Each entry accepts a single
// path or a list of paths merged in order.
type DataConfig struct {
	Monsters PathList `toml:"monsters"`
	Spells   PathList `toml:"spells"`
}

// SystemConfig identifies the game system the datasets belong to.
type SystemConfig struct {
	Name string `toml:"name"`
}

// PathList accepts either a single TOML string or an array of strings.
type PathList []string

// UnmarshalTOML implements toml.Unmarshaler.
func (p *PathList) UnmarshalTOML(v interface{}) error {
	switch value := v.(type) {
	case string:
		*p = PathList{value}
		return nil
	case []interface{}:
		paths := make([]string, 0, len(value))
		for _, item := range value {
			s, ok := item.(string)
			if !ok {
				return errors.InvalidArgument("dataset paths must be strings")
			}
			paths = append(paths, s)
		}
		*p = PathList(paths)
		return nil
	default:
		return errors.InvalidArgument("dataset paths must be a string or a list of strings")
	}
}

// DefaultPath returns the conventional location of the config file.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "resolving home directory")
	}
	return filepath.Join(home, ".config", "trpg-json", "config.toml"), nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Monsters: PathList{"data/SW2.5/monsters.json"},
		},
		System: &SystemConfig{Name: "sw25"},
	}
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("config file %s not found", path)
		}
		return nil, errors.Wrap(err, "parsing "+path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate ensures the configuration names at least one monster
// dataset. Spell datasets are optional.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if len(c.Data.Monsters) == 0 {
		vb.RequiredField("data.monsters")
	}
	return vb.Build()
}

// MonsterPaths resolves the monster dataset paths. Relative paths are
// resolved against base, usually the home directory.
func (c *Config) MonsterPaths(base string) []string {
	return resolvePaths(c.Data.Monsters, base)
}

// SpellPaths resolves the spell dataset paths. Relative paths are
// resolved against base, usually the home directory.
func (c *Config) SpellPaths(base string) []string {
	return resolvePaths(c.Data.Spells, base)
}

func resolvePaths(paths PathList, base string) []string {
	resolved := make([]string, 0, len(paths))
	for _, p := range paths {
		if !filepath.IsAbs(p) && base != "" {
			p = filepath.Join(base, p)
		}
		resolved = append(resolved, p)
	}
	return resolved
}
