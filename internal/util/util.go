package util

import (
	"encoding/json"
	"fmt"
	"os"
)

func Pprint(i interface{}) {
	bytes, err := json.MarshalIndent(i, "", "    ")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(bytes))
}

const (
	DefaultCorrelationWindowDays = 252
	DefaultCorrelationThreshold  = 0.3
)

type Config struct {
	ChatGPTApiKey   string `json:"gpt"`
	AlpacaApiKey    string `json:"alpacaApiKey"`
	AlpacaApiSecret string `json:"alpacaApiSecret"`
	AlpacaEndpoint  string `json:"alpacaEndpoint"`

	// PriceProvider selects the daily close source, "yahoo" or "alpaca".
	PriceProvider string `json:"priceProvider"`

	UniverseFile          string  `json:"universeFile"`
	CorrelationWindowDays int     `json:"correlationWindowDays"`
	CorrelationThreshold  float64 `json:"correlationThreshold"`
}

func (c *Config) applyDefaults() {
	if c.PriceProvider == "" {
		c.PriceProvider = "yahoo"
	}
	if c.UniverseFile == "" {
		c.UniverseFile = "universe.csv"
	}
	if c.CorrelationWindowDays <= 0 {
		c.CorrelationWindowDays = DefaultCorrelationWindowDays
	}
	if c.CorrelationThreshold <= 0 {
		c.CorrelationThreshold = DefaultCorrelationThreshold
	}
}

func DefaultConfig() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// LoadConfig reads the env-specific config file. Yahoo needs no
// credentials, so a missing file just means defaults.
func LoadConfig() (*Config, error) {
	configFile := "config.json"
	if os.Getenv("INTERMARKET_ENV") == "dev" {
		configFile = "config-dev.json"
	} else if os.Getenv("INTERMARKET_ENV") == "test" {
		configFile = "config-test.json"
	}
	f, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	} else if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", configFile, err)
	}

	config := Config{}
	err = json.Unmarshal(f, &config)
	if err != nil {
		return nil, err
	}
	config.applyDefaults()

	return &config, nil
}
