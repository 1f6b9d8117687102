package market

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options select and configure a Provider.
type Options struct {
	Name              string // "yahoo" or "eodhd"
	BaseURL           string
	APIKey            string
	Exchange          string
	CacheDir          string
	Timeout           time.Duration
	RequestsPerSecond float64
}

// Open returns the guarded provider described by opts.
func Open(opts Options, log zerolog.Logger) (Provider, error) {
	client := NewClient(opts.CacheDir, opts.Timeout, log)
	var p Provider
	switch strings.ToLower(opts.Name) {
	case "", "yahoo":
		p = &Yahoo{BaseURL: opts.BaseURL, Client: client}
	case "eodhd":
		if opts.APIKey == "" {
			return nil, fmt.Errorf("eodhd provider requires an API key")
		}
		p = &EODHD{APIKey: opts.APIKey, BaseURL: opts.BaseURL, Exchange: opts.Exchange, Client: client}
	default:
		return nil, fmt.Errorf("unknown market data provider %q, want yahoo or eodhd", opts.Name)
	}
	return NewGuard(p, opts.RequestsPerSecond), nil
}
