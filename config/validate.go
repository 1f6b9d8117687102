package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if len(c.Universe) == 0 {
		return errors.New("universe must declare at least one asset")
	}
	tickers := make(map[string]bool, len(c.Universe))
	for i, a := range c.Universe {
		if a.Ticker == "" {
			return fmt.Errorf("universe[%d].ticker is required", i)
		}
		if tickers[a.Ticker] {
			return fmt.Errorf("universe[%d].ticker %q is declared twice", i, a.Ticker)
		}
		tickers[a.Ticker] = true
	}

	if len(c.Strategies) == 0 {
		return errors.New("strategies must declare at least one strategy")
	}
	names := make(map[string]bool, len(c.Strategies))
	for i, s := range c.Strategies {
		prefix := fmt.Sprintf("strategies[%d]", i)
		if s.Name == "" {
			return fmt.Errorf("%s.name is required", prefix)
		}
		if names[s.Name] {
			return fmt.Errorf("%s.name %q is declared twice", prefix, s.Name)
		}
		names[s.Name] = true
		// every asset of the universe needs a weight, or simulations fail.
		for ticker := range tickers {
			if _, ok := s.Weights[ticker]; !ok {
				return fmt.Errorf("%s.weights has no weight for %q", prefix, ticker)
			}
		}
		for ticker, w := range s.Weights {
			if !tickers[ticker] {
				return fmt.Errorf("%s.weights.%s is not in the universe", prefix, ticker)
			}
			if w < 0 {
				return fmt.Errorf("%s.weights.%s must be >= 0, got %v", prefix, ticker, w)
			}
		}
	}

	for i, s := range c.Scenarios {
		if s.Name == "" {
			return fmt.Errorf("scenarios[%d].name is required", i)
		}
		if s.Impact < 0 {
			return fmt.Errorf("scenarios[%d].impact must be >= 0, got %v", i, s.Impact)
		}
	}

	if err := c.Defaults.validate("defaults"); err != nil {
		return err
	}
	if c.Defaults.Strategy != "" && !names[c.Defaults.Strategy] {
		return fmt.Errorf("defaults.strategy %q is not a declared strategy", c.Defaults.Strategy)
	}

	switch strings.ToLower(c.Provider.Name) {
	case "yahoo":
	case "eodhd":
		if c.Provider.APIKey == "" {
			return errors.New("provider.api_key is required for eodhd (or set EODHD_API_KEY)")
		}
	default:
		return fmt.Errorf("provider.name must be yahoo or eodhd, got %q", c.Provider.Name)
	}
	if c.Provider.RequestsPerSecond < 0 {
		return fmt.Errorf("provider.requests_per_second must be >= 0, got %v", c.Provider.RequestsPerSecond)
	}

	if c.Session.MaxRuns < 1 {
		return fmt.Errorf("session.max_runs must be >= 1, got %d", c.Session.MaxRuns)
	}
	return nil
}

func (d *DefaultsConfig) validate(prefix string) error {
	if d.To.Before(d.From) {
		return fmt.Errorf("%s.to %v is before %s.from %v", prefix, d.To, prefix, d.From)
	}
	if d.TaxRate != nil && (*d.TaxRate < 0 || *d.TaxRate > 1) {
		return fmt.Errorf("%s.tax_rate must be between 0 and 1, got %v", prefix, *d.TaxRate)
	}
	if d.InflationRate != nil && (*d.InflationRate < 0 || *d.InflationRate > 1) {
		return fmt.Errorf("%s.inflation_rate must be between 0 and 1, got %v", prefix, *d.InflationRate)
	}
	if d.InitialInvestment <= 0 {
		return fmt.Errorf("%s.initial_investment must be > 0, got %v", prefix, d.InitialInvestment)
	}
	return nil
}
