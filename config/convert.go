package config

import (
	"fmt"
	"strings"

	"github.com/etnz/simfolio"
	"github.com/etnz/simfolio/market"
)

// AssetUniverse returns the configured universe.
func (c *Config) AssetUniverse() (simfolio.Universe, error) {
	infos := make([]simfolio.AssetInfo, len(c.Universe))
	for i, a := range c.Universe {
		infos[i] = simfolio.AssetInfo{Asset: simfolio.Asset(a.Ticker), Description: a.Description}
	}
	return simfolio.NewUniverse(infos...)
}

// AllocationStrategies returns the configured strategies, in declaration order.
func (c *Config) AllocationStrategies() (simfolio.Strategies, error) {
	strategies := make([]simfolio.Strategy, len(c.Strategies))
	for i, s := range c.Strategies {
		alloc := make(simfolio.Allocation, len(s.Weights))
		for ticker, w := range s.Weights {
			alloc[simfolio.Asset(ticker)] = w
		}
		strategies[i] = simfolio.Strategy{Name: s.Name, Allocation: alloc}
	}
	return simfolio.NewStrategies(strategies...)
}

// Scenario returns the named scenario preset, case insensitive.
func (c *Config) Scenario(name string) (ScenarioConfig, error) {
	for _, s := range c.Scenarios {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	known := make([]string, len(c.Scenarios))
	for i, s := range c.Scenarios {
		known[i] = s.Name
	}
	return ScenarioConfig{}, fmt.Errorf("unknown scenario %q, want one of %v", name, known)
}

// MarketOptions returns the options to open the market data provider.
func (c *Config) MarketOptions() market.Options {
	p := c.Provider
	return market.Options{
		Name:              p.Name,
		BaseURL:           p.BaseURL,
		APIKey:            p.APIKey,
		Exchange:          p.Exchange,
		CacheDir:          p.CacheDir,
		Timeout:           p.Timeout,
		RequestsPerSecond: p.RequestsPerSecond,
	}
}
