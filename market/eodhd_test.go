package market

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/etnz/simfolio/date"
)

func TestEODHDCloses(t *testing.T) {
	var path, token, from, to string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		path, token, from, to = r.URL.Path, q.Get("api_token"), q.Get("from"), q.Get("to")
		w.Write([]byte(`[
			{"date": "2024-02-12", "open": 188.42, "close": 187.15, "adjusted_close": 186.1441, "volume": 41781900},
			{"date": "2024-02-13", "open": 185.77, "close": 185.04, "adjusted_close": 184.0349, "volume": 56529500}
		]`))
	}))
	defer srv.Close()

	e := &EODHD{APIKey: "demo", BaseURL: srv.URL}
	h, err := e.Closes(context.Background(), "AAPL", date.New(2024, 2, 12), date.New(2024, 2, 13))
	if err != nil {
		t.Fatalf("Closes() error: %v", err)
	}
	if path != "/eod/AAPL.US" || token != "demo" || from != "2024-02-12" || to != "2024-02-13" {
		t.Errorf("Closes() requested %s token=%s from=%s to=%s", path, token, from, to)
	}
	if got, ok := h.Get(date.New(2024, 2, 13)); !ok || got != 184.0349 {
		t.Errorf("Closes()[2024-02-13] = %v, %v want 184.0349", got, ok)
	}
	if h.Len() != 2 {
		t.Errorf("Closes() returned %d closes want 2", h.Len())
	}
}

func TestEODHDTicker(t *testing.T) {
	testCases := []struct {
		exchange, asset, want string
	}{
		{"", "AAPL", "AAPL.US"},
		{"PA", "AI", "AI.PA"},
		{"", "MC.PA", "MC.PA"},
	}
	for _, tc := range testCases {
		e := &EODHD{Exchange: tc.exchange}
		if got := e.ticker(simAsset(tc.asset)); got != tc.want {
			t.Errorf("ticker(%q) = %q want %q", tc.asset, got, tc.want)
		}
	}
}
