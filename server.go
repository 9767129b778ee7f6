package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/quantfold/scatter.report/internal/config"
	"github.com/quantfold/scatter.report/internal/db"
	"github.com/quantfold/scatter.report/internal/httputil"
	"github.com/quantfold/scatter.report/internal/quantum"
	"github.com/quantfold/scatter.report/internal/report"
	"github.com/quantfold/scatter.report/internal/scatter"
	"github.com/quantfold/scatter.report/internal/security"
	"github.com/quantfold/scatter.report/internal/version"

	"golang.org/x/exp/rand"
)

// Server exposes the recorded demo runs and live chart renderings over HTTP.
type Server struct {
	store *db.DB

	mu  sync.Mutex
	cfg *config.DemoConfig
}

func NewServer(store *db.DB, cfg *config.DemoConfig) *Server {
	if cfg == nil {
		cfg = config.EmptyDemoConfig()
	}
	return &Server{store: store, cfg: cfg}
}

func (s *Server) config() *config.DemoConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// LoggingMiddleware logs method, path, status, and duration
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lrw := &loggingResponseWriter{w, http.StatusOK}
		next.ServeHTTP(lrw, r)
		log.Printf(
			"[%d] %s %s %vms",
			lrw.statusCode, r.Method, r.RequestURI,
			float64(time.Since(start).Nanoseconds())/1e6,
		)
	})
}

func (s *Server) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.homeHandler)
	mux.HandleFunc("/api/runs", s.listRuns)
	mux.HandleFunc("/api/runs/", s.runSamples)
	mux.HandleFunc("/api/params", s.handleParams)
	mux.HandleFunc("/api/demo", s.runDemoHandler)
	mux.HandleFunc("/charts/entropy", s.entropyChart)
	mux.HandleFunc("/charts/convergence", s.convergenceChart)
	mux.HandleFunc("/plots/", s.servePlot)
	return mux
}

// servePlot serves generated plot files from under the plot directory,
// rejecting traversal outside it.
func (s *Server) servePlot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}

	rel := strings.TrimPrefix(r.URL.Path, "/plots/")
	if rel == "" {
		httputil.NotFound(w, "missing plot path")
		return
	}

	plotDir := s.config().GetPlotDir()
	full := filepath.Join(plotDir, filepath.FromSlash(rel))
	if err := security.ValidatePlotPath(full, plotDir); err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}
	if _, err := os.Stat(full); err != nil {
		httputil.NotFound(w, "no such plot")
		return
	}

	w.Header().Set("Content-Disposition",
		fmt.Sprintf("inline; filename=%s", security.SanitizeFilename(filepath.Base(full))))
	http.ServeFile(w, r, full)
}

func (s *Server) homeHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		httputil.NotFound(w, "no such page")
		return
	}
	httputil.WriteJSONOK(w, map[string]interface{}{
		"service": "scatter.report",
		"version": version.Version,
		"demos":   demoKinds,
		"endpoints": []string{
			"/api/runs", "/api/runs/{id}/samples", "/api/params", "/api/demo",
			"/charts/entropy", "/charts/convergence",
		},
	})
}

func (s *Server) listRuns(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}

	limit := 50
	if l := r.URL.Query().Get("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed < 1 {
			httputil.BadRequest(w, "invalid 'limit' parameter")
			return
		}
		limit = parsed
	}

	runs, err := s.store.Runs(r.URL.Query().Get("kind"), limit)
	if err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("failed to list runs: %v", err))
		return
	}
	if runs == nil {
		runs = []db.Run{}
	}
	httputil.WriteJSONOK(w, runs)
}

// runSamples serves /api/runs/{id}/samples.
func (s *Server) runSamples(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/runs/")
	id, tail, found := strings.Cut(rest, "/")
	if !found || tail != "samples" || id == "" {
		httputil.NotFound(w, "expected /api/runs/{id}/samples")
		return
	}

	xs, ys, err := s.store.RunSamples(id)
	if err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("failed to load samples: %v", err))
		return
	}
	httputil.WriteJSONOK(w, map[string]interface{}{
		"run_id": id,
		"x":      xs,
		"y":      ys,
	})
}

func (s *Server) handleParams(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		httputil.WriteJSONOK(w, s.config())
	case http.MethodPost:
		cfg := config.EmptyDemoConfig()
		if err := json.NewDecoder(r.Body).Decode(cfg); err != nil {
			httputil.BadRequest(w, fmt.Sprintf("invalid params JSON: %v", err))
			return
		}
		if err := cfg.Validate(); err != nil {
			httputil.BadRequest(w, err.Error())
			return
		}
		s.mu.Lock()
		s.cfg = cfg
		s.mu.Unlock()
		httputil.WriteJSONOK(w, cfg)
	default:
		httputil.MethodNotAllowed(w)
	}
}

func (s *Server) runDemoHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httputil.MethodNotAllowed(w)
		return
	}

	kind := r.URL.Query().Get("kind")
	if kind == "" {
		kind = r.FormValue("kind")
	}
	if kind == "" {
		httputil.BadRequest(w, "missing 'kind' parameter")
		return
	}

	outcome, err := runDemo(kind, s.store, s.config())
	if err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("demo %q failed: %v", kind, err))
		return
	}
	httputil.WriteJSONOK(w, outcome)
}

// entropyChart renders a live entanglement entropy chart for the configured
// two-qubit Hamiltonian.
func (s *Server) entropyChart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}
	cfg := s.config()

	h := quantum.TwoQubit(cfg.GetCouplingJ(), cfg.GetFieldH())
	psi0 := quantum.Kron(quantum.Ket(1, 0), quantum.Ket(1, 0))
	entropies, err := quantum.EntropyEvolution(h, psi0, cfg.GetEvolveDt(), cfg.GetEvolveSteps())
	if err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("evolution failed: %v", err))
		return
	}

	times := make([]float64, len(entropies))
	for i := range times {
		times[i] = float64(i) * cfg.GetEvolveDt()
	}

	var buf bytes.Buffer
	title := fmt.Sprintf("J=%g h=%g", cfg.GetCouplingJ(), cfg.GetFieldH())
	if err := report.RenderEntropyChart(&buf, times, entropies, title); err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("failed to render chart: %v", err))
		return
	}
	httputil.WriteHTML(w, buf.Bytes())
}

// convergenceChart renders a live Monte Carlo convergence chart for the
// configured Yukawa potential.
func (s *Server) convergenceChart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}
	cfg := s.config()

	pot := scatter.Yukawa{V0: cfg.GetPotentialV0(), Mu: cfg.GetPotentialMu()}
	kIn := scatter.KVec(1, 0)
	kOut := scatter.KVec(1, 1.0472)

	analytic, err := scatter.BornAmplitude(pot, kIn, kOut)
	if err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("amplitude failed: %v", err))
		return
	}
	results, err := scatter.Converge(pot, kIn, kOut, cfg.GetMCConverge(), rand.NewSource(cfg.GetMCSeed()))
	if err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("convergence run failed: %v", err))
		return
	}

	var buf bytes.Buffer
	if err := report.RenderConvergenceChart(&buf, results, analytic, pot.Name()); err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("failed to render chart: %v", err))
		return
	}
	httputil.WriteHTML(w, buf.Bytes())
}
