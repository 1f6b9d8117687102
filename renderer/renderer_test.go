package renderer

import (
	"bytes"
	"flag"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/etnz/simfolio"
	"github.com/etnz/simfolio/date"
)

var fixGolden = flag.Bool("fix-golden", false, "if true, update failing golden .md files with the received output")

func TestFixGoldenIsOff(t *testing.T) {
	if *fixGolden {
		t.Fatal("-fix-golden is enabled. This flag should only be used for updating test fixtures and must be disabled for regular tests.")
	}
}

// golden compares got with the content of a testdata file.
func golden(t *testing.T, file, got string) {
	t.Helper()
	want, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("cannot read golden file: %v", err)
	}
	if got == string(want) {
		return
	}
	if *fixGolden {
		if err := os.WriteFile(file, []byte(got), 0o644); err != nil {
			t.Fatalf("cannot fix golden file: %v", err)
		}
		return
	}
	t.Errorf("output mismatch for %s\n--- got ---\n%s\n--- want ---\n%s", file, got, want)
}

func TestAssetsMarkdown(t *testing.T) {
	u, err := simfolio.NewUniverse(
		simfolio.AssetInfo{Asset: "AAPL", Description: "Apple Inc."},
		simfolio.AssetInfo{Asset: "MSFT", Description: "Microsoft Corporation"},
	)
	if err != nil {
		t.Fatalf("NewUniverse() error: %v", err)
	}
	golden(t, "testdata/assets.md", AssetsMarkdown(u))
}

func TestStrategiesMarkdown(t *testing.T) {
	u, err := simfolio.NewUniverse(simfolio.AssetInfo{Asset: "A"}, simfolio.AssetInfo{Asset: "B"})
	if err != nil {
		t.Fatalf("NewUniverse() error: %v", err)
	}
	s, err := simfolio.NewStrategies(
		simfolio.Strategy{Name: "Even", Allocation: simfolio.Allocation{"A": 0.5, "B": 0.5}},
		simfolio.Strategy{Name: "Single", Allocation: simfolio.Allocation{"A": 1}},
	)
	if err != nil {
		t.Fatalf("NewStrategies() error: %v", err)
	}
	golden(t, "testdata/strategies.md", StrategiesMarkdown(u, s))
}

// testRun simulates a single asset gaining 5% on 2024-01-02.
func testRun(t *testing.T) *simfolio.Run {
	t.Helper()
	monday := date.New(2024, 1, 1)
	s, err := simfolio.NewReturnSeries([]simfolio.Asset{"X"},
		[]date.Date{monday, monday.Add(1)},
		[][]float64{{0}, {0.05}})
	if err != nil {
		t.Fatalf("NewReturnSeries() error: %v", err)
	}
	run, err := simfolio.Simulate(s, simfolio.Params{
		From:              monday,
		To:                monday.Add(1),
		InitialInvestment: 10000,
		Strategy:          "All in",
		Allocation:        simfolio.Allocation{"X": 1},
	})
	if err != nil {
		t.Fatalf("Simulate() error: %v", err)
	}
	return run
}

func TestRenderRun(t *testing.T) {
	got := RenderRun(NewRunView(testRun(t), "USD", 0))
	for _, want := range []string{
		"# Simulation ",
		"All in strategy over 2024-01-01..2024-01-02",
		"| Initial Investment | $10,000.00 |",
		"| Market Condition | None |",
		"| Scenario | None |",
		"| X | 100.00% |",
		"| Final Value | $10,500.00 |",
		"| Return | +5.00% |",
		"| Tax | $0.00 |",
		"| 2024-01-01 | $10,000.00 |",
		"| 2024-01-02 | $10,500.00 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderRun() does not contain %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "error") {
		t.Errorf("RenderRun() failed:\n%s", got)
	}
}

func TestRenderRunNonFinite(t *testing.T) {
	// a zero close followed by a positive one yields an infinite return.
	monday := date.New(2024, 1, 1)
	s, err := simfolio.NewReturnSeries([]simfolio.Asset{"X"},
		[]date.Date{monday, monday.Add(1)},
		[][]float64{{0}, {math.Inf(1)}})
	if err != nil {
		t.Fatalf("NewReturnSeries() error: %v", err)
	}
	run, err := simfolio.Simulate(s, simfolio.Params{
		From:              monday,
		To:                monday.Add(1),
		InitialInvestment: 10000,
		Allocation:        simfolio.Allocation{"X": 1},
	})
	if err != nil {
		t.Fatalf("Simulate() error: %v", err)
	}
	v := NewRunView(run, "USD", 0)
	if v.Terminal != "n/a" {
		t.Errorf("Terminal = %q want %q", v.Terminal, "n/a")
	}
	if got := RenderRun(v); !strings.Contains(got, "| Final Value | n/a |") {
		t.Errorf("RenderRun() does not show an undefined final value:\n%s", got)
	}
}

func TestRunViewLabels(t *testing.T) {
	run := testRun(t)
	w := date.NewRange(date.New(2021, 1, 1), date.New(2021, 6, 30))
	run.Params.Condition = simfolio.Bear
	run.Params.ConditionWindow = &w
	run.Params.Scenario = simfolio.Scenario{Name: "Market Crash", Impact: 0.8, Window: &w}

	v := NewRunView(run, "USD", 0)
	if want := "Bear over 2021-01-01..2021-06-30"; v.Condition != want {
		t.Errorf("Condition = %q want %q", v.Condition, want)
	}
	if want := "Market Crash ×0.8 over 2021-01-01..2021-06-30"; v.Scenario != want {
		t.Errorf("Scenario = %q want %q", v.Scenario, want)
	}
}

func TestSample(t *testing.T) {
	testCases := []struct {
		n, max int
		want   []int
	}{
		{3, 24, []int{0, 1, 2}},
		{10, 4, []int{0, 3, 6, 9}},
		{5, 1, []int{4}},
		{0, 4, []int{}},
	}
	for _, tc := range testCases {
		got := sample(tc.n, tc.max)
		if len(got) != len(tc.want) {
			t.Errorf("sample(%d, %d) = %v want %v", tc.n, tc.max, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("sample(%d, %d) = %v want %v", tc.n, tc.max, got, tc.want)
				break
			}
		}
	}
}

func TestRenderMetrics(t *testing.T) {
	h := date.NewHistory[float64](2)
	h.Append(date.New(2020, 3, 2), 0.1)
	m, err := simfolio.Performance(h, simfolio.DefaultRiskFreeRate)
	got := RenderMetrics(NewMetricsView("Balanced", date.NewRange(date.New(2020, 1, 1), date.New(2020, 12, 31)), m, err))
	for _, want := range []string{
		"# Performance of Balanced",
		"risk free rate 1.00%",
		"| 2020 | +10.00% |",
		"| Sharpe Ratio | n/a |",
		"Sharpe ratio undefined",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderMetrics() does not contain %q:\n%s", want, got)
		}
	}
}

func TestHTML(t *testing.T) {
	page, err := HTML("Run <1>", "# Title\n\n| a | b |\n|---|---|\n| 1 | 2 |\n", "/api/runs/1/chart.png")
	if err != nil {
		t.Fatalf("HTML() error: %v", err)
	}
	for _, want := range []string{"<title>Run &lt;1&gt;</title>", "<h1>Title</h1>", "<table>", "<td>1</td>", `<img src="/api/runs/1/chart.png"`} {
		if !bytes.Contains(page, []byte(want)) {
			t.Errorf("HTML() does not contain %q:\n%s", want, page)
		}
	}
}

func TestChart(t *testing.T) {
	png, err := Chart(testRun(t))
	if err != nil {
		t.Fatalf("Chart() error: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Errorf("Chart() is not a PNG image")
	}
	if _, err := Chart(&simfolio.Run{Values: date.NewHistory[float64](0)}); err == nil {
		t.Errorf("Chart(empty run) error = nil want an error")
	}
}
