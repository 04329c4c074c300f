package cli

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	burnzip "github.com/burnzip/client-go"
)

// Config is the top-level configuration structure.
type Config struct {
	LinkBase string      `yaml:"link_base" mapstructure:"link_base"`
	Store    StoreConfig `yaml:"store" mapstructure:"store"`
}

// StoreConfig holds blob store connection parameters. A share whose
// package is too large to embed needs a configured store.
type StoreConfig struct {
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	Timeout int    `yaml:"timeout" mapstructure:"timeout"` // seconds
}

// setDefaults registers the default configuration values in viper.
// Must be called before viper.ReadInConfig so that defaults apply when a
// key is absent from the config file.
func setDefaults() {
	viper.SetDefault("link_base", "https://burnzip.app/")
	viper.SetDefault("store.base_url", "")
	viper.SetDefault("store.timeout", 30)
}

// loadConfig reads the active viper configuration.
func loadConfig() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return &cfg, nil
}

// buildClient assembles an SDK client from the loaded configuration.
func buildClient() (*burnzip.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	log.Debugf("Config: link_base=%s store.base_url=%s", cfg.LinkBase, cfg.Store.BaseURL)

	opts := []burnzip.Option{
		burnzip.WithLinkBase(cfg.LinkBase),
	}

	if cfg.Store.BaseURL != "" {
		var storeOpts []burnzip.StoreOption
		if cfg.Store.Timeout > 0 {
			storeOpts = append(storeOpts, burnzip.WithStoreTimeout(time.Duration(cfg.Store.Timeout)*time.Second))
		}

		store, err := burnzip.NewHTTPStore(cfg.Store.BaseURL, storeOpts...)
		if err != nil {
			return nil, err
		}
		opts = append(opts, burnzip.WithStore(store))
	}

	return burnzip.New(opts...)
}
