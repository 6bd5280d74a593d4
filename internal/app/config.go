package app

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"docsift/internal/domain"
)

// Config holds runtime options for building the app.
type Config struct {
	Home    string        // config directory, e.g. $HOME/.docsift
	Format  domain.Format // default extraction format
	Indent  string        // indent for pretty JSON output
	Verbose bool
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig(home string) Config {
	return Config{
		Home:   home,
		Format: domain.FormatJSON,
		Indent: "  ",
	}
}

type yamlConfig struct {
	Defaults struct {
		Format string `yaml:"format"`
	} `yaml:"defaults"`
	Output struct {
		Indent string `yaml:"indent"`
	} `yaml:"output"`
}

// LoadConfig reads <home>/docsift.yaml and applies it on top of the
// defaults. A missing file means defaults.
func LoadConfig(home string) (Config, error) {
	cfg := DefaultConfig(home)

	path := filepath.Join(home, "docsift.yaml")
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, domain.E("app.loadconfig", domain.KindUnknown, path, err)
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, domain.E("app.loadconfig", domain.KindParse, path, err)
	}

	if y.Defaults.Format != "" {
		f := domain.Format(y.Defaults.Format)
		if !f.Valid() {
			return cfg, domain.E("app.loadconfig", domain.KindInvalidInput, path,
				errors.New("defaults.format must be json, yaml, or text"))
		}
		cfg.Format = f
	}
	if y.Output.Indent != "" {
		cfg.Indent = y.Output.Indent
	}
	return cfg, nil
}
