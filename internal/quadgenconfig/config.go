// Package quadgenconfig loads CLI default overrides from a TOML config
// file, so common flag values (a shared table cache path, a default grammar
// file) don't need to be retyped on every invocation.
package quadgenconfig

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/cishoon/quadtranslator/internal/quadgen/qgerrors"
)

// Config holds the subset of quadgen CLI flags that may be defaulted from
// a config file. Flags explicitly passed on the command line always win
// over these values.
type Config struct {
	CachePath   string `toml:"cache_path"`
	PrintTables bool   `toml:"print_tables"`
	PrintFirst  bool   `toml:"print_first"`
	PrintTree   bool   `toml:"print_tree"`
	LogPath     string `toml:"log_path"`
	DefaultGram string `toml:"default_grammar"`
}

// Load reads a TOML config file at path. A missing file is not an error —
// it returns the zero Config, matching pflag's own "no override" default.
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, qgerrors.WrapIOError(err, "read config file %q", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, qgerrors.WrapIOError(err, "parse config file %q", path)
	}
	return cfg, nil
}
