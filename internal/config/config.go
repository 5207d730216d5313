// Package config resolves runtime settings from defaults, an optional
// config file and VIBENOTES_* environment variables, in that order of
// precedence (later wins).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the full runtime configuration.
type Config struct {
	// DataDir holds the sqlite database. Defaults to a vibenotes
	// directory under the user config dir.
	DataDir string `mapstructure:"data_dir"`
	// LogLevel is one of DEBUG, INFO, WARN, ERROR.
	LogLevel string `mapstructure:"log_level"`
	// Theme is the fallback palette when no preference has been
	// persisted yet: "light" or "dark".
	Theme string `mapstructure:"theme"`
}

// Load resolves the configuration. configFile may be empty, in which
// case only defaults and environment variables apply; a named file that
// cannot be read is an error.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("log_level", "INFO")
	v.SetDefault("theme", "light")

	v.SetEnvPrefix("VIBENOTES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType(strings.TrimLeft(filepath.Ext(configFile), "."))
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".vibenotes"
	}
	return filepath.Join(base, "vibenotes")
}
