package imports

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the per-project loader configuration file.
const ConfigFileName = "nacre.yaml"

// DefaultExtension is appended to import paths that carry none.
const DefaultExtension = ".ncr"

// Config is the loader configuration, read from nacre.yaml in the
// project root. All fields are optional.
type Config struct {
	// SearchPaths lists directories tried, in order, after the
	// importing file's own directory. Relative entries are resolved
	// against the project root the config was loaded from.
	SearchPaths []string `yaml:"search_paths,omitempty"`

	// Extension is the source file extension assumed for import paths
	// that have none (e.g. ".ncr").
	Extension string `yaml:"extension,omitempty"`
}

// DefaultConfig returns the configuration used when no nacre.yaml is
// present.
func DefaultConfig() Config {
	return Config{Extension: DefaultExtension}
}

// LoadConfig reads nacre.yaml from dir. A missing file is not an
// error: the defaults apply. Relative search paths are rebased onto
// dir so the loader can run from any working directory.
func LoadConfig(dir string) (Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("reading %s: %w", ConfigFileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", ConfigFileName, err)
	}

	if cfg.Extension == "" {
		cfg.Extension = DefaultExtension
	}
	for i, p := range cfg.SearchPaths {
		if !filepath.IsAbs(p) {
			cfg.SearchPaths[i] = filepath.Join(dir, p)
		}
	}
	return cfg, nil
}
