package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/etnz/simfolio"
	"github.com/etnz/simfolio/config"
	"github.com/etnz/simfolio/date"
	"github.com/etnz/simfolio/renderer"
)

// RunSummary is the JSON representation of a run in listings.
type RunSummary struct {
	ID       simfolio.RunID `json:"id"`
	Label    string         `json:"label"`
	Created  time.Time      `json:"created"`
	Strategy string         `json:"strategy"`
	Terminal float64        `json:"terminal"`
}

// Point is a dated value of a run.
type Point struct {
	Date  date.Date `json:"date"`
	Value float64   `json:"value"`
}

// RunDetail is the JSON representation of a run with its value series.
type RunDetail struct {
	*simfolio.Run
	Label  string  `json:"label"`
	Values []Point `json:"values"`
}

func detail(run *simfolio.Run) RunDetail {
	d := RunDetail{Run: run, Label: run.Label(), Values: make([]Point, 0, run.Values.Len())}
	for on, v := range run.Values.Values() {
		d.Values = append(d.Values, Point{on, v})
	}
	return d
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "runs": s.session.Runs.Len()})
}

func (s *Server) handleCreateRun(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req config.Request
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.metrics.observe("invalid", start)
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request: %w", err))
		return
	}
	p, err := s.cfg.Params(req)
	if err != nil {
		s.metrics.observe("invalid", start)
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	run, err := s.session.Simulate(r.Context(), p)
	switch {
	case errors.Is(err, simfolio.ErrMissingWeight):
		s.metrics.observe("error", start)
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	case err != nil:
		s.metrics.observe("error", start)
		s.log.Error().Err(err).Msg("simulation failed")
		s.writeError(w, http.StatusBadGateway, err)
		return
	}
	outcome := "ok"
	if run.Degenerate {
		outcome = "degenerate"
	}
	s.metrics.observe(outcome, start)
	w.Header().Set("Location", "/api/runs/"+run.ID.String())
	s.writeJSON(w, http.StatusCreated, detail(run))
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	runs := s.session.Runs.List()
	list := make([]RunSummary, len(runs))
	for i, run := range runs {
		list[i] = RunSummary{run.ID, run.Label(), run.Created, run.Params.Strategy, run.Terminal}
	}
	s.writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	run, status, err := s.lookup(r)
	if err != nil {
		s.writeError(w, status, err)
		return
	}
	s.writeJSON(w, http.StatusOK, detail(run))
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	run, status, err := s.lookup(r)
	if err != nil {
		s.writeError(w, status, err)
		return
	}
	png, err := renderer.Chart(run)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (s *Server) handleStrategies(w http.ResponseWriter, r *http.Request) {
	strategies, err := s.cfg.AllocationStrategies()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	out := make([]simfolio.Strategy, 0, len(strategies.Names()))
	for _, name := range strategies.Names() {
		alloc, _ := strategies.Get(name)
		out = append(out, simfolio.Strategy{Name: name, Allocation: alloc})
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) writeHTML(w http.ResponseWriter, title, markdown, chart string) {
	page, err := renderer.HTML(title, markdown, chart)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	md := renderer.RunsMarkdown(s.session.Runs.List(), s.cfg.Defaults.Currency)
	if strategies, err := s.cfg.AllocationStrategies(); err == nil {
		md += "\n" + renderer.StrategiesMarkdown(s.session.Universe, strategies)
	}
	md += "\n" + renderer.AssetsMarkdown(s.session.Universe)
	s.writeHTML(w, "Simulations", md, "")
}

func (s *Server) handleRunPage(w http.ResponseWriter, r *http.Request) {
	run, status, err := s.lookup(r)
	if err != nil {
		http.Error(w, err.Error(), status)
		return
	}
	md := renderer.RenderRun(renderer.NewRunView(run, s.cfg.Defaults.Currency, 0))
	s.writeHTML(w, "Simulation "+run.Label(), md, "/api/runs/"+run.ID.String()+"/chart.png")
}
