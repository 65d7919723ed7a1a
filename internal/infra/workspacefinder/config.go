package workspacefinder

import (
	"os"
	"path/filepath"

	"github.com/aalvaropc/unitix/internal/domain"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the workspace marker and configuration file.
const ConfigFile = "unitix.yaml"

// LoadConfig loads unitix.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	d := y.Unitix.Defaults
	if d.Category != "" {
		cfg.Defaults.Category = d.Category
	}
	if d.From != "" {
		cfg.Defaults.From = d.From
	}
	if d.To != "" {
		cfg.Defaults.To = d.To
	}
	if d.Value != nil {
		cfg.Defaults.Value = *d.Value
	}
	if y.Unitix.Paths.TablesDir != "" {
		cfg.Paths.TablesDir = y.Unitix.Paths.TablesDir
	}

	return cfg, nil
}

type yamlConfig struct {
	Unitix struct {
		Defaults struct {
			Category string  `yaml:"category"`
			From     string  `yaml:"from"`
			To       string  `yaml:"to"`
			Value    *string `yaml:"value"`
		} `yaml:"defaults"`

		Paths struct {
			TablesDir string `yaml:"tables_dir"`
		} `yaml:"paths"`
	} `yaml:"unitix"`
}
