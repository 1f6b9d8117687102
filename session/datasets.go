// Package session holds the state of a simulation session: market data
// already fetched and the runs produced so far.
//
// Nothing outlives the process.
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/etnz/simfolio"
	"github.com/etnz/simfolio/date"
	"github.com/etnz/simfolio/market"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// Datasets memoizes price series fetched from a market.Provider.
//
// Concurrent requests for the same dataset share a single fetch. Failed
// fetches are not remembered.
type Datasets struct {
	provider market.Provider
	log      zerolog.Logger

	group singleflight.Group
	mu    sync.Mutex
	cache map[string]*simfolio.PriceSeries
}

// NewDatasets returns an empty Datasets fetching from p.
func NewDatasets(p market.Provider, log zerolog.Logger) *Datasets {
	return &Datasets{provider: p, log: log, cache: make(map[string]*simfolio.PriceSeries)}
}

func datasetKey(assets []simfolio.Asset, from, to date.Date) string {
	tickers := make([]string, len(assets))
	for i, a := range assets {
		tickers[i] = string(a)
	}
	return fmt.Sprintf("%s|%s", strings.Join(tickers, ","), date.NewRange(from, to).Identifier())
}

// Prices returns the prices of assets over [from, to], fetching them on first use.
func (d *Datasets) Prices(ctx context.Context, assets []simfolio.Asset, from, to date.Date) (*simfolio.PriceSeries, error) {
	key := datasetKey(assets, from, to)
	d.mu.Lock()
	s, ok := d.cache[key]
	d.mu.Unlock()
	if ok {
		return s, nil
	}

	// The fetch is shared: it must not stop when the caller that started it
	// goes away. Each caller still gives up on its own ctx.
	fetchCtx := context.WithoutCancel(ctx)
	ch := d.group.DoChan(key, func() (interface{}, error) {
		d.mu.Lock()
		s, ok := d.cache[key]
		d.mu.Unlock()
		if ok {
			return s, nil
		}
		s, err := market.Fetch(fetchCtx, d.provider, assets, from, to)
		if err != nil {
			return nil, err
		}
		d.mu.Lock()
		d.cache[key] = s
		d.mu.Unlock()
		d.log.Info().Str("dataset", key).Int("days", s.Len()).Msg("dataset fetched")
		return s, nil
	})
	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}
	if res.Shared {
		d.log.Debug().Str("dataset", key).Msg("dataset fetch shared")
	}
	return res.Val.(*simfolio.PriceSeries), nil
}

// Returns is Prices converted to daily returns.
func (d *Datasets) Returns(ctx context.Context, assets []simfolio.Asset, from, to date.Date) (*simfolio.ReturnSeries, error) {
	s, err := d.Prices(ctx, assets, from, to)
	if err != nil {
		return nil, err
	}
	return s.Returns(), nil
}

// Len returns the number of datasets in memory.
func (d *Datasets) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.cache)
}
