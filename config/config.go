// Package config loads the configuration of a simulation session from YAML.
package config

import (
	"time"

	"github.com/etnz/simfolio/date"
)

// Config is the root configuration.
type Config struct {
	Universe   []AssetConfig    `yaml:"universe"`
	Strategies []StrategyConfig `yaml:"strategies"`
	Scenarios  []ScenarioConfig `yaml:"scenarios"`
	Defaults   DefaultsConfig   `yaml:"defaults"`
	Provider   ProviderConfig   `yaml:"provider"`
	Session    SessionConfig    `yaml:"session"`
	Server     ServerConfig     `yaml:"server"`
}

// AssetConfig declares an asset of the universe.
type AssetConfig struct {
	Ticker      string `yaml:"ticker"`
	Description string `yaml:"description"`
}

// StrategyConfig is a named allocation. Weights are fractions of 1.
type StrategyConfig struct {
	Name    string             `yaml:"name"`
	Weights map[string]float64 `yaml:"weights"`
}

// ScenarioConfig is a stress scenario preset.
type ScenarioConfig struct {
	Name   string  `yaml:"name"`
	Impact float64 `yaml:"impact"`
}

// DefaultsConfig holds the default simulation parameters.
type DefaultsConfig struct {
	From              date.Date   `yaml:"from"`
	To                date.Date   `yaml:"to"`
	TaxRate           *float64    `yaml:"tax_rate"`
	InflationRate     *float64    `yaml:"inflation_rate"`
	InitialInvestment float64     `yaml:"initial_investment"`
	Currency          string      `yaml:"currency"`
	Strategy          string      `yaml:"strategy"`
	ConditionWindow   *date.Range `yaml:"condition_window"`
	ScenarioWindow    *date.Range `yaml:"scenario_window"`
	RiskFreeRate      *float64    `yaml:"risk_free_rate"`
}

// ProviderConfig selects the market data provider.
type ProviderConfig struct {
	Name              string        `yaml:"name"` // yahoo or eodhd
	BaseURL           string        `yaml:"base_url"`
	APIKey            string        `yaml:"api_key"`
	Exchange          string        `yaml:"exchange"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	CacheDir          string        `yaml:"cache_dir"`
	Timeout           time.Duration `yaml:"timeout"`
}

// SessionConfig bounds the in memory session.
type SessionConfig struct {
	MaxRuns int `yaml:"max_runs"`
}

// ServerConfig configures the HTTP dashboard.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}
