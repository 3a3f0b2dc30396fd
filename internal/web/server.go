// Browser UI and download API in front of the generators.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"datasynth/internal/config"
	"datasynth/internal/export"
	"datasynth/internal/generate"
	"datasynth/internal/incident"
)

//go:embed templates/index.html
var content embed.FS

var contentTypes = map[export.Format]string{
	export.FormatCSV:  "text/csv",
	export.FormatJSON: "application/json",
	export.FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	export.FormatZip:  "application/zip",
}

// Server serves the dashboard page and dataset downloads. It holds
// only immutable configuration; every request constructs its own
// generator or engine, so concurrent requests never share host state
// or random sources.
type Server struct {
	cfg *config.GeneratorConfig
	tpl *template.Template
	log *slog.Logger
}

// NewServer creates a web server over the given configuration.
func NewServer(cfg *config.GeneratorConfig, log *slog.Logger) *Server {
	tpl := template.Must(template.New("index.html").ParseFS(content, "templates/index.html"))
	return &Server{cfg: cfg, tpl: tpl, log: log}
}

func (s *Server) routes(mux *http.ServeMux) {
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/kinds", s.handleKinds)
	mux.HandleFunc("/generate", s.handleGenerate)
	mux.HandleFunc("/correlate", s.handleCorrelate)
}

// Start serves until the context is canceled.
func (s *Server) Start(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	s.routes(mux)
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	return srv.ListenAndServe()
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Kinds     []generate.Kind
		Formats   []export.Format
		Scenarios []incident.Scenario
		Hosts     []config.Host
	}{
		Kinds:   generate.Kinds(),
		Formats: export.Formats(),
		Scenarios: []incident.Scenario{
			incident.ScenarioPerformanceIssues,
			incident.ScenarioNormalOperations,
			incident.ScenarioMixed,
		},
		Hosts: s.cfg.Hosts,
	}
	if err := s.tpl.Execute(w, data); err != nil {
		s.log.Error("render index failed", "err", err)
	}
}

func (s *Server) handleKinds(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(generate.Kinds())
}

// handleGenerate streams one dataset in the requested format.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	kind, err := generate.ParseKind(r.URL.Query().Get("kind"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	format, err := export.ParseFormat(queryDefault(r, "format", string(export.FormatCSV)))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	count, err := strconv.Atoi(queryDefault(r, "count", "100"))
	if err != nil {
		http.Error(w, "invalid count", http.StatusBadRequest)
		return
	}

	gen := generate.New(s.cfg, querySeed(r))
	table, err := gen.Build(kind, count)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, generate.ErrLimitExceeded) || errors.Is(err, generate.ErrUnknownKind) || count < 1 {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	exp, err := export.For(format)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%s.%s", table.Name, exp.Ext()))
	if err := exp.Export(table, w); err != nil {
		s.log.Error("export failed", "kind", kind, "format", format, "err", err)
	}
}

// handleCorrelate returns the paired metrics and log tables as a ZIP
// bundle.
func (s *Server) handleCorrelate(w http.ResponseWriter, r *http.Request) {
	scenario, err := incident.ParseScenario(queryDefault(r, "scenario", string(incident.ScenarioNormalOperations)))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	intervals, err := strconv.Atoi(queryDefault(r, "intervals", "288"))
	if err != nil {
		http.Error(w, "invalid intervals", http.StatusBadRequest)
		return
	}

	engine := incident.NewEngine(s.cfg, newRand(querySeed(r)))
	res, err := engine.Generate(intervals, scenario)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, incident.ErrInvalidScenario) ||
			errors.Is(err, incident.ErrInvalidIntervalCount) ||
			errors.Is(err, incident.ErrLimitExceeded) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", contentTypes[export.FormatZip])
	w.Header().Set("Content-Disposition", "attachment; filename=correlated.zip")
	if err := export.WriteBundle(w, res.MetricsTable(), res.LogsTable()); err != nil {
		s.log.Error("bundle failed", "err", err)
	}
}

func queryDefault(r *http.Request, key, fallback string) string {
	if v := r.URL.Query().Get(key); v != "" {
		return v
	}
	return fallback
}

func querySeed(r *http.Request) int64 {
	seed, _ := strconv.ParseInt(r.URL.Query().Get("seed"), 10, 64)
	return seed
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		return nil // engine seeds itself
	}
	return rand.New(rand.NewSource(seed))
}
