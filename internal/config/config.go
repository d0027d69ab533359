package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// TOML configuration file
type FileConfig struct {
	Output OutputConfig `toml:"output"`
	Quick  QuickConfig  `toml:"quick"`
}

type OutputConfig struct {
	Format  *string `toml:"format"`
	Precise *bool   `toml:"precise"`
}

type QuickConfig struct {
	ResetOnBlank *bool `toml:"reset-on-blank"`
}

// resolved settings after defaults are applied
type Settings struct {
	Format       string
	Precise      bool
	ResetOnBlank bool
}

func Defaults() Settings {
	return Settings{
		Format:       "text",
		Precise:      false,
		ResetOnBlank: true,
	}
}

// Settings applies the file values on top of the defaults.
func (c FileConfig) Settings() (Settings, error) {
	s := Defaults()
	if c.Output.Format != nil {
		s.Format = *c.Output.Format
	}
	if c.Output.Precise != nil {
		s.Precise = *c.Output.Precise
	}
	if c.Quick.ResetOnBlank != nil {
		s.ResetOnBlank = *c.Quick.ResetOnBlank
	}
	if err := ValidateFormat(s.Format); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func ValidateFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("invalid output format %q: use text or json", format)
	}
}

// Load reads a TOML config from path. A missing file is not an error.
func Load(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// XDG config home or a default fallback
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

func DefaultPath() string {
	return filepath.Join(XDGConfigHome(), "swimtime", "config.toml")
}
