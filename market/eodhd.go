package market

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/etnz/simfolio"
	"github.com/etnz/simfolio/date"
	"github.com/shopspring/decimal"
)

// DefaultEODHDURL is the base address of the EODHD API.
const DefaultEODHDURL = "https://eodhd.com/api"

// EODHD fetches end of day prices from eodhd.com.
type EODHD struct {
	APIKey   string
	BaseURL  string // defaults to DefaultEODHDURL
	Exchange string // EODHD exchange code appended to tickers, defaults to "US"
	Client   *http.Client
}

func (*EODHD) Name() string { return "eodhd" }

// ticker returns the EODHD ticker format "SYMBOL.EXCHANGECODE".
func (e *EODHD) ticker(asset simfolio.Asset) string {
	if strings.Contains(string(asset), ".") {
		return string(asset)
	}
	exchange := e.Exchange
	if exchange == "" {
		exchange = "US"
	}
	return string(asset) + "." + exchange
}

// Closes implements Provider.
func (e *EODHD) Closes(ctx context.Context, asset simfolio.Asset, from, to date.Date) (*date.History[float64], error) {
	// https://eodhd.com/api/eod/AAPL.US?api_token=demo&fmt=json&from=2017-01-05&to=2017-02-10
	// [
	//	{
	//		"date": "2024-02-13",
	//		"open": 185.77,
	//		"high": 186.21,
	//		"low": 183.51,
	//		"close": 185.04,
	//		"adjusted_close": 184.0349,
	//		"volume": 56529500
	//	},
	// bounds are included in the response.
	base := e.BaseURL
	if base == "" {
		base = DefaultEODHDURL
	}
	q := url.Values{}
	q.Set("fmt", "json")
	q.Set("api_token", e.APIKey)
	q.Set("from", from.String())
	q.Set("to", to.String())
	addr := fmt.Sprintf("%s/eod/%s?%s", strings.TrimSuffix(base, "/"), url.PathEscape(e.ticker(asset)), q.Encode())

	type Info struct {
		Date          date.Date       `json:"date"`
		AdjustedClose decimal.Decimal `json:"adjusted_close"`
	}
	content := make([]Info, 0)
	client := e.Client
	if client == nil {
		client = http.DefaultClient
	}
	if err := jwget(ctx, client, addr, &content); err != nil {
		return nil, err
	}

	h := date.NewHistory[float64](len(content))
	for _, info := range content {
		h.Append(info.Date, info.AdjustedClose.InexactFloat64())
	}
	return h, nil
}
