package market

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/etnz/simfolio"
	"github.com/etnz/simfolio/date"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// Guard protects a Provider with a request rate limit and a circuit breaker.
//
// The breaker opens after three consecutive failures and stays open for a
// minute; missing data for an asset is not a failure.
type Guard struct {
	Provider
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
}

// NewGuard wraps p. rps is the maximum number of requests per second, zero or less means unlimited.
func NewGuard(p Provider, rps float64) *Guard {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	st := gobreaker.Settings{Name: p.Name()}
	st.Interval = 60 * time.Second
	st.Timeout = 60 * time.Second
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		return counts.ConsecutiveFailures >= 3
	}
	st.IsSuccessful = func(err error) bool {
		return err == nil || errors.Is(err, ErrNoData) || errors.Is(err, context.Canceled)
	}
	return &Guard{
		Provider: p,
		limiter:  rate.NewLimiter(limit, 1),
		breaker:  gobreaker.NewCircuitBreaker(st),
	}
}

// Closes implements Provider.
func (g *Guard) Closes(ctx context.Context, asset simfolio.Asset, from, to date.Date) (*date.History[float64], error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}
	v, err := g.breaker.Execute(func() (interface{}, error) {
		return g.Provider.Closes(ctx, asset, from, to)
	})
	if err != nil {
		return nil, err
	}
	return v.(*date.History[float64]), nil
}
