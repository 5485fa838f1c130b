package config

import "github.com/hance08/tally/internal/constants"

type Config struct {
	Storage    StorageConfig  `mapstructure:"storage"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type StorageConfig struct {
	// Path of the SQLite database; empty means <app dir>/tally.db.
	Path string `mapstructure:"path"`
	// Key the ledger snapshot is stored under.
	Key string `mapstructure:"key"`
}

type DefaultsConfig struct {
	Currency string `mapstructure:"currency"`
	Filter   string `mapstructure:"filter"`
	Limit    int    `mapstructure:"limit"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func NewDefault() *Config {
	return &Config{
		Storage: StorageConfig{Path: "", Key: constants.SnapshotKey},
		Defaults: DefaultsConfig{
			Currency: constants.DefaultCurrency,
			Filter:   constants.FilterAll,
			Limit:    constants.DefaultLimit,
		},
		Log: LogConfig{Level: "info"},
	}
}
