package session

import (
	"context"
	"fmt"

	"github.com/etnz/simfolio"
	"github.com/etnz/simfolio/date"
	"github.com/rs/zerolog"
)

// Session runs simulations over a universe, reusing fetched market data and
// keeping the latest runs.
type Session struct {
	Universe simfolio.Universe
	Datasets *Datasets
	Runs     *Runs
	log      zerolog.Logger
}

// New returns a Session.
func New(u simfolio.Universe, datasets *Datasets, runs *Runs, log zerolog.Logger) *Session {
	return &Session{Universe: u, Datasets: datasets, Runs: runs, log: log}
}

// returns fetches the daily returns of the universe over r. A range with
// less than two business days reads no return, adjusted or not, so it needs
// no data.
func (s *Session) returns(ctx context.Context, r date.Range) (*simfolio.ReturnSeries, error) {
	if len(r.BusinessDayList()) < 2 {
		return simfolio.NewReturnSeries(s.Universe.Assets(), nil, nil)
	}
	return s.Datasets.Returns(ctx, s.Universe.Assets(), r.From, r.To)
}

// Simulate runs a simulation and stores it in the session.
func (s *Session) Simulate(ctx context.Context, p simfolio.Params) (*simfolio.Run, error) {
	returns, err := s.returns(ctx, date.NewRange(p.From, p.To))
	if err != nil {
		return nil, err
	}
	if p.Logger == nil {
		p.Logger = &s.log
	}
	run, err := simfolio.Simulate(returns, p)
	if err != nil {
		return nil, fmt.Errorf("simulation failed: %w", err)
	}
	id, err := s.Runs.Add(run)
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Str("run", id.String()).
		Str("strategy", p.Strategy).
		Stringer("condition", p.Condition).
		Float64("terminal", run.Terminal).
		Msg("simulation stored")
	return run, nil
}

// Performance computes the yearly metrics of alloc over r.
func (s *Session) Performance(ctx context.Context, alloc simfolio.Allocation, r date.Range, riskFree float64) (simfolio.Metrics, error) {
	returns, err := s.Datasets.Returns(ctx, s.Universe.Assets(), r.From, r.To)
	if err != nil {
		return simfolio.Metrics{}, err
	}
	portfolio, err := simfolio.PortfolioReturns(returns, alloc, &s.log)
	if err != nil {
		return simfolio.Metrics{}, err
	}
	return simfolio.Performance(portfolio, riskFree)
}
