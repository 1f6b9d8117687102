// Package market fetches historical adjusted closing prices for the assets of a
// simulation, and assembles them into a simfolio.PriceSeries.
package market

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/etnz/simfolio"
	"github.com/etnz/simfolio/date"
)

// ErrNoData is returned when a provider has no price for an asset over the requested range.
var ErrNoData = errors.New("no market data")

// Provider returns the daily adjusted closing prices of an asset.
type Provider interface {
	// Name of the provider, for messages.
	Name() string
	// Closes returns the adjusted closes of asset for every trading day in [from, to].
	Closes(ctx context.Context, asset simfolio.Asset, from, to date.Date) (*date.History[float64], error)
}

// Fetch retrieves the closes of every asset over [from, to] and aligns them on
// the union of their trading days. A day without a price for an asset holds NaN.
//
// Any provider error, or an asset without data, fails the whole fetch.
func Fetch(ctx context.Context, p Provider, assets []simfolio.Asset, from, to date.Date) (*simfolio.PriceSeries, error) {
	closes := make([]*date.History[float64], len(assets))
	var days []date.Date
	for j, asset := range assets {
		h, err := p.Closes(ctx, asset, from, to)
		if err != nil {
			return nil, fmt.Errorf("cannot fetch %s from %s: %w", asset, p.Name(), err)
		}
		if h.Len() == 0 {
			return nil, fmt.Errorf("cannot fetch %s from %s over %s..%s: %w", asset, p.Name(), from, to, ErrNoData)
		}
		closes[j] = h
		days = append(days, h.Days()...)
	}
	slices.SortFunc(days, date.Date.Compare)
	days = slices.Compact(days)

	rows := make([][]float64, len(days))
	for i, on := range days {
		row := make([]float64, len(assets))
		for j, h := range closes {
			v, ok := h.Get(on)
			if !ok {
				v = math.NaN()
			}
			row[j] = v
		}
		rows[i] = row
	}
	return simfolio.NewPriceSeries(assets, days, rows)
}
