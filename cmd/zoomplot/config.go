package main

import (
	"fmt"

	"github.com/spf13/viper"
)

// fileConfig carries render defaults loadable from an optional config file
// (yaml/toml/json, picked by extension); explicitly set flags override it.
type fileConfig struct {
	Width      int    `mapstructure:"width"`
	Height     int    `mapstructure:"height"`
	Title      string `mapstructure:"title"`
	FilterMode string `mapstructure:"filter_mode"`
	Hint       string `mapstructure:"hint"`
	LogLevel   string `mapstructure:"log_level"`
}

func loadFileConfig(path string) (*fileConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var c fileConfig
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &c, nil
}
