package session

import (
	"context"
	"errors"
	"math"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/etnz/simfolio"
	"github.com/etnz/simfolio/date"
	"github.com/rs/zerolog"
)

// counting serves a constant close for every asset, slowly, and counts calls.
type counting struct {
	calls atomic.Int32
	fail  atomic.Bool
}

func (*counting) Name() string { return "counting" }

func (c *counting) Closes(ctx context.Context, asset simfolio.Asset, from, to date.Date) (*date.History[float64], error) {
	c.calls.Add(1)
	time.Sleep(10 * time.Millisecond)
	if c.fail.Load() {
		return nil, errors.New("upstream down")
	}
	h := date.NewHistory[float64](2)
	h.Append(from, 100)
	h.Append(from.Add(1), 101)
	return h, nil
}

func TestDatasetsMemoizes(t *testing.T) {
	p := &counting{}
	d := NewDatasets(p, zerolog.Nop())
	from, to := date.New(2024, 1, 1), date.New(2024, 1, 31)
	assets := []simfolio.Asset{"A"}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := d.Prices(context.Background(), assets, from, to); err != nil {
				t.Errorf("Prices() error: %v", err)
			}
		}()
	}
	wg.Wait()
	r, err := d.Returns(context.Background(), assets, from, to)
	if err != nil {
		t.Fatalf("Returns() error: %v", err)
	}
	if _, row := r.At(1); math.Abs(row[0]-0.01) > 1e-12 {
		t.Errorf("Returns() = %v want 0.01", row[0])
	}
	if got := p.calls.Load(); got != 1 {
		t.Errorf("provider called %d times want 1", got)
	}
	if d.Len() != 1 {
		t.Errorf("Len() = %d want 1", d.Len())
	}

	// a different range is another dataset.
	if _, err := d.Prices(context.Background(), assets, from, to.Add(1)); err != nil {
		t.Fatalf("Prices() error: %v", err)
	}
	if got := p.calls.Load(); got != 2 {
		t.Errorf("provider called %d times want 2", got)
	}
}

func TestDatasetsDoNotCacheErrors(t *testing.T) {
	p := &counting{}
	p.fail.Store(true)
	d := NewDatasets(p, zerolog.Nop())
	from, to := date.New(2024, 1, 1), date.New(2024, 1, 31)
	assets := []simfolio.Asset{"A"}

	if _, err := d.Prices(context.Background(), assets, from, to); err == nil {
		t.Fatalf("Prices() error = nil want an error")
	}
	p.fail.Store(false)
	if _, err := d.Prices(context.Background(), assets, from, to); err != nil {
		t.Errorf("Prices() error: %v", err)
	}
	if got := p.calls.Load(); got != 2 {
		t.Errorf("provider called %d times want 2", got)
	}
}

// gated blocks every fetch until released, or until its context is done.
type gated struct {
	started chan struct{}
	release chan struct{}
	calls   atomic.Int32
}

func (*gated) Name() string { return "gated" }

func (g *gated) Closes(ctx context.Context, asset simfolio.Asset, from, to date.Date) (*date.History[float64], error) {
	if g.calls.Add(1) == 1 {
		close(g.started)
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-g.release:
	}
	h := date.NewHistory[float64](2)
	h.Append(from, 100)
	h.Append(from.Add(1), 101)
	return h, nil
}

func TestDatasetsSharedFetchSurvivesCancel(t *testing.T) {
	p := &gated{started: make(chan struct{}), release: make(chan struct{})}
	d := NewDatasets(p, zerolog.Nop())
	from, to := date.New(2024, 1, 1), date.New(2024, 1, 31)
	assets := []simfolio.Asset{"A"}

	ctx, cancel := context.WithCancel(context.Background())
	first := make(chan error, 1)
	go func() {
		_, err := d.Prices(ctx, assets, from, to)
		first <- err
	}()
	<-p.started

	second := make(chan error, 1)
	go func() {
		_, err := d.Prices(context.Background(), assets, from, to)
		second <- err
	}()
	time.Sleep(20 * time.Millisecond) // let the second caller join the fetch

	cancel()
	if err := <-first; !errors.Is(err, context.Canceled) {
		t.Errorf("Prices() with a cancelled context error = %v want context.Canceled", err)
	}
	close(p.release)
	if err := <-second; err != nil {
		t.Errorf("Prices() error = %v want nil", err)
	}
	if got := p.calls.Load(); got != 1 {
		t.Errorf("provider called %d times want 1", got)
	}
	if d.Len() != 1 {
		t.Errorf("Len() = %d want 1", d.Len())
	}
}
