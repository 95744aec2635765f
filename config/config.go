// Package config loads the storefront configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"goflare.io/storefront/models/enum"
)

// Config is the full storefront configuration. Every field has a
// working default so an empty file (or no file) yields a usable setup.
type Config struct {
	Redis    RedisConfig    `yaml:"redis"`
	Postgres PostgresConfig `yaml:"postgres"`
	Storage  StorageConfig  `yaml:"storage"`
	Delivery DeliveryConfig `yaml:"delivery"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// StorageConfig names the persisted slots. The cart key is a single
// full-overwrite record; the selected-item key is the detail-page
// handoff slot.
type StorageConfig struct {
	CartKey         string `yaml:"cart_key"`
	SelectedItemKey string `yaml:"selected_item_key"`
}

// DeliveryConfig is the fixed fee table. Unknown options are charged
// the standard fee.
type DeliveryConfig struct {
	Fees map[string]float64 `yaml:"fees"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Storage: StorageConfig{
			CartKey:         "storefront:cart",
			SelectedItemKey: "storefront:selected_item",
		},
		Delivery: DeliveryConfig{
			Fees: map[string]float64{
				string(enum.DeliveryOptionStandard): 5.00,
				string(enum.DeliveryOptionExpress):  10.00,
				string(enum.DeliveryOptionEco):      7.00,
			},
		},
	}
}

// LoadFromFile reads a YAML config file and overlays it on Default.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return LoadFromYAML(data)
}

// LoadFromYAML overlays YAML data on the defaults.
func LoadFromYAML(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the pieces with no sane recovery.
func (c *Config) Validate() error {
	if c.Storage.CartKey == "" {
		return fmt.Errorf("storage.cart_key must not be empty")
	}
	if c.Storage.SelectedItemKey == "" {
		return fmt.Errorf("storage.selected_item_key must not be empty")
	}
	for opt, fee := range c.Delivery.Fees {
		if fee < 0 {
			return fmt.Errorf("delivery.fees.%s must not be negative", opt)
		}
	}
	return nil
}

// Fee looks up the delivery fee for an option, falling back to the
// standard tier for anything unrecognized.
func (c *DeliveryConfig) Fee(option enum.DeliveryOption) float64 {
	if fee, ok := c.Fees[string(option)]; ok {
		return fee
	}
	return c.Fees[string(enum.DeliveryOptionStandard)]
}
