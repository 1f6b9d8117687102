package simfolio

import (
	"errors"
	"math"
	"testing"

	"github.com/etnz/simfolio/date"
)

func TestProject(t *testing.T) {
	assets := []Asset{"AAPL", "MSFT", "AGG", "SPY", "QQQ"}
	conservative := Allocation{"AAPL": 0.10, "MSFT": 0.10, "AGG": 0.70, "SPY": 0.05, "QQQ": 0.05}

	got, err := conservative.Project(assets, []float64{0.01, 0.02, -0.01, 0.04, 0.02})
	if err != nil {
		t.Fatalf("Project() error: %v", err)
	}
	want := 0.10*0.01 + 0.10*0.02 + 0.70*-0.01 + 0.05*0.04 + 0.05*0.02
	if !approx(got, want) {
		t.Errorf("Project() = %v want %v", got, want)
	}
}

func TestProjectDoesNotRenormalize(t *testing.T) {
	got, err := Allocation{"A": 2}.Project([]Asset{"A"}, []float64{0.01})
	if err != nil {
		t.Fatalf("Project() error: %v", err)
	}
	if !approx(got, 0.02) {
		t.Errorf("Project() = %v want 0.02", got)
	}
}

func TestProjectMissingWeight(t *testing.T) {
	_, err := Allocation{"A": 1}.Project([]Asset{"A", "B"}, []float64{0.01, 0.02})
	if !errors.Is(err, ErrMissingWeight) {
		t.Fatalf("Project() error = %v want ErrMissingWeight", err)
	}
	var mw *MissingWeightError
	if !errors.As(err, &mw) || mw.Asset != "B" {
		t.Errorf("Project() error = %v want missing weight for B", err)
	}
}

func TestPortfolioReturns(t *testing.T) {
	s := singleAsset(t, date.New(2024, 1, 1), 0.1, nan, -0.2)
	h, err := PortfolioReturns(s, Allocation{"X": 0.5}, nil)
	if err != nil {
		t.Fatalf("PortfolioReturns() error: %v", err)
	}
	got := h.Series()
	if len(got) != 4 {
		t.Fatalf("PortfolioReturns().Len() = %v want 4", len(got))
	}
	if !math.IsNaN(got[0]) || !math.IsNaN(got[2]) {
		t.Errorf("PortfolioReturns() = %v want NaN on undefined rows", got)
	}
	if !approx(got[1], 0.05) || !approx(got[3], -0.1) {
		t.Errorf("PortfolioReturns() = %v want [NaN 0.05 NaN -0.1]", got)
	}

	if _, err := PortfolioReturns(s, Allocation{"Y": 1}, nil); !errors.Is(err, ErrMissingWeight) {
		t.Errorf("PortfolioReturns(missing) error = %v want ErrMissingWeight", err)
	}
}
