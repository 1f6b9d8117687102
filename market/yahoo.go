package market

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/simfolio"
	"github.com/etnz/simfolio/date"
)

// DefaultYahooURL is the base address of the Yahoo Finance chart API.
const DefaultYahooURL = "https://query1.finance.yahoo.com"

// Yahoo fetches daily adjusted closes from the Yahoo Finance v8 chart API.
type Yahoo struct {
	BaseURL string // defaults to DefaultYahooURL
	Client  *http.Client
}

func (*Yahoo) Name() string { return "yahoo" }

/*
	{
	  "chart": {
	    "result": [{
	      "meta": {"currency": "USD", "symbol": "AAPL", "gmtoffset": -18000, ...},
	      "timestamp": [1704205800, 1704292200],
	      "indicators": {
	        "quote": [{"close": [185.64, 184.25], ...}],
	        "adjclose": [{"adjclose": [184.29, 182.91]}]
	      }
	    }],
	    "error": null
	  }
	}
*/

// Closes implements Provider.
func (y *Yahoo) Closes(ctx context.Context, asset simfolio.Asset, from, to date.Date) (*date.History[float64], error) {
	base := y.BaseURL
	if base == "" {
		base = DefaultYahooURL
	}
	q := url.Values{}
	q.Set("period1", fmt.Sprint(from.Unix()))
	q.Set("period2", fmt.Sprint(to.Add(1).Unix())) // period2 is exclusive
	q.Set("interval", "1d")
	q.Set("events", "history")
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?%s", strings.TrimSuffix(base, "/"), url.PathEscape(string(asset)), q.Encode())

	client := y.Client
	if client == nil {
		client = http.DefaultClient
	}
	var jobj any
	if err := jwget(ctx, client, addr, &jobj); err != nil {
		return nil, err
	}

	if jerr, err := jsonpath.Get("$.chart.error", jobj); err == nil && jerr != nil {
		return nil, fmt.Errorf("yahoo error for %s: %v: %w", asset, jerr, ErrNoData)
	}
	timestamps, err := floats(jobj, "$.chart.result[0].timestamp")
	if err != nil {
		return nil, err
	}
	closes, err := floats(jobj, "$.chart.result[0].indicators.adjclose[0].adjclose")
	if err != nil {
		return nil, err
	}
	if len(timestamps) != len(closes) {
		return nil, fmt.Errorf("yahoo returned %d timestamps for %d closes", len(timestamps), len(closes))
	}
	var offset float64
	if jval, err := jsonpath.Get("$.chart.result[0].meta.gmtoffset", jobj); err == nil {
		offset, _ = jval.(float64)
	}

	h := date.NewHistory[float64](len(closes))
	for i, ts := range timestamps {
		// bars are stamped at the exchange open, shift to the exchange local day.
		on := date.Of(time.Unix(int64(ts+offset), 0).UTC())
		if on.Before(from) || on.After(to) || math.IsNaN(closes[i]) {
			continue
		}
		h.Append(on, closes[i])
	}
	return h, nil
}

// floats extracts a list of numbers at path. JSON nulls become NaN.
func floats(jobj any, path string) ([]float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing %q: %w", path, errors.Join(err, ErrNoData))
	}
	list, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("error parsing %q: not a list: %v", path, jval)
	}
	values := make([]float64, len(list))
	for i, v := range list {
		f, ok := v.(float64)
		if !ok {
			f = math.NaN()
		}
		values[i] = f
	}
	return values, nil
}
