package config

import (
	"os"
	"time"

	"github.com/etnz/simfolio"
	"github.com/etnz/simfolio/date"
)

// Default values for optional configuration fields.
const (
	DefaultTaxRate           = 0.15
	DefaultInflationRate     = 0.02
	DefaultInitialInvestment = 10000
	DefaultCurrency          = "USD"
	DefaultStrategy          = "Balanced"
	DefaultProvider          = "yahoo"
	DefaultRequestsPerSecond = 2
	DefaultTimeout           = 30 * time.Second
	DefaultMaxRuns           = 64
	DefaultServerAddr        = "localhost:8080"
)

var (
	DefaultFrom            = date.New(2010, 1, 6)
	DefaultTo              = date.New(2023, 12, 30)
	DefaultConditionWindow = date.NewRange(date.New(2021, 1, 1), date.New(2021, 6, 30))
	DefaultScenarioWindow  = date.NewRange(date.New(2021, 1, 1), date.New(2021, 6, 30))
)

// Default returns the built-in configuration: five assets, three strategies
// and four scenario presets.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func defaultUniverse() []AssetConfig {
	return []AssetConfig{
		{"AAPL", "Apple Inc."},
		{"MSFT", "Microsoft Corporation"},
		{"AGG", "iShares Core U.S. Aggregate Bond ETF"},
		{"SPY", "SPDR S&P 500 ETF Trust"},
		{"QQQ", "Invesco QQQ Trust"},
	}
}

func defaultStrategies() []StrategyConfig {
	return []StrategyConfig{
		{"Conservative", map[string]float64{"AAPL": 0.10, "MSFT": 0.10, "AGG": 0.70, "SPY": 0.05, "QQQ": 0.05}},
		{"Balanced", map[string]float64{"AAPL": 0.15, "MSFT": 0.15, "AGG": 0.40, "SPY": 0.15, "QQQ": 0.15}},
		{"Aggressive", map[string]float64{"AAPL": 0.20, "MSFT": 0.20, "AGG": 0.20, "SPY": 0.20, "QQQ": 0.20}},
	}
}

func defaultScenarios() []ScenarioConfig {
	return []ScenarioConfig{
		{"Market Crash", 0.8},
		{"Economic Boom", 1.2},
		{"Downturn", 0.9},
		{"Growth", 1.1},
	}
}

func ptr(v float64) *float64 { return &v }

func (c *Config) applyDefaults() {
	// the built-in universe comes with its strategies.
	if len(c.Universe) == 0 {
		c.Universe = defaultUniverse()
		if len(c.Strategies) == 0 {
			c.Strategies = defaultStrategies()
		}
	}
	if c.Scenarios == nil {
		c.Scenarios = defaultScenarios()
	}

	// Defaults section
	d := &c.Defaults
	if d.From.IsZero() {
		d.From = DefaultFrom
	}
	if d.To.IsZero() {
		d.To = DefaultTo
	}
	if d.TaxRate == nil {
		d.TaxRate = ptr(DefaultTaxRate)
	}
	if d.InflationRate == nil {
		d.InflationRate = ptr(DefaultInflationRate)
	}
	if d.InitialInvestment == 0 {
		d.InitialInvestment = DefaultInitialInvestment
	}
	if d.Currency == "" {
		d.Currency = DefaultCurrency
	}
	if d.Strategy == "" && len(c.Strategies) > 0 {
		d.Strategy = DefaultStrategy
		if !c.hasStrategy(DefaultStrategy) {
			d.Strategy = c.Strategies[0].Name
		}
	}
	if d.ConditionWindow == nil {
		w := DefaultConditionWindow
		d.ConditionWindow = &w
	}
	if d.ScenarioWindow == nil {
		w := DefaultScenarioWindow
		d.ScenarioWindow = &w
	}
	if d.RiskFreeRate == nil {
		d.RiskFreeRate = ptr(simfolio.DefaultRiskFreeRate)
	}

	// Provider defaults
	if c.Provider.Name == "" {
		c.Provider.Name = DefaultProvider
	}
	if c.Provider.APIKey == "" {
		c.Provider.APIKey = os.Getenv("EODHD_API_KEY")
	}
	if c.Provider.RequestsPerSecond == 0 {
		c.Provider.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if c.Provider.Timeout == 0 {
		c.Provider.Timeout = DefaultTimeout
	}

	if c.Session.MaxRuns == 0 {
		c.Session.MaxRuns = DefaultMaxRuns
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultServerAddr
	}
}

func (c *Config) hasStrategy(name string) bool {
	for _, s := range c.Strategies {
		if s.Name == name {
			return true
		}
	}
	return false
}
