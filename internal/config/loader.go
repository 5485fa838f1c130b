package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const EnvPrefix = "TALLY"

// SetDefaults registers every default value with v so that a freshly
// written config file contains the full set of keys.
func SetDefaults(v *viper.Viper) {
	d := NewDefault()
	v.SetDefault("storage.path", d.Storage.Path)
	v.SetDefault("storage.key", d.Storage.Key)
	v.SetDefault("defaults.currency", d.Defaults.Currency)
	v.SetDefault("defaults.filter", d.Defaults.Filter)
	v.SetDefault("defaults.limit", d.Defaults.Limit)
	v.SetDefault("log.level", d.Log.Level)
}

// Load reads configuration from cfgFile (if set) or from config.yaml in
// searchDir, then applies TALLY_* environment overrides.
func Load(v *viper.Viper, cfgFile, searchDir string) (*Config, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(searchDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv() // allow using environment variables to override

	if err := v.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("config file error: %w", err)
		}
	}

	cfg := NewDefault()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = v.ConfigFileUsed()
	return cfg, nil
}
