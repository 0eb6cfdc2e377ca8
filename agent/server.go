package agent

import (
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"minimax/game/wordle"
	"minimax/searcher"
)

// Server exposes a guesser and the feedback evaluator over HTTP so another
// process can drive games against it.
type Server struct {
	r          *chi.Mux
	vocabulary []string
	guesser    Guesser
	evaluator  *wordle.Evaluator
	requests   *prometheus.CounterVec

	mu sync.Mutex // Guards guesser and evaluator
}

// NewServer registers its request counter on reg and serves reg's metrics on
// /metrics.
func NewServer(vocabulary []string, guesser Guesser, evaluator *wordle.Evaluator, reg *prometheus.Registry) *Server {
	if evaluator == nil {
		evaluator = wordle.NewEvaluator()
	}
	s := &Server{
		r:          chi.NewRouter(),
		vocabulary: vocabulary,
		guesser:    guesser,
		evaluator:  evaluator,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "minimax_http_requests_total",
			Help: "HTTP requests by route and status code",
		}, []string{"route", "code"}),
	}
	reg.MustRegister(s.requests)

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(time.Minute))
	s.r.Use(s.count)

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "words": len(s.vocabulary)})
	})
	s.r.Post("/wordle/next", s.handleNext)
	s.r.Post("/wordle/evaluate", s.handleEvaluate)
	s.r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return s
}

// Start serves on addr until the listener fails.
func (s *Server) Start(addr string) error {
	log.Info().Str("addr", addr).Msg("agent server listening")
	return http.ListenAndServe(addr, s.r)
}

func (s *Server) Handler() http.Handler { return s.r }

type nextReq struct {
	Guesses []string `json:"guesses"`
	Scores  []string `json:"scores"`
}

type nextRes struct {
	Guess   string `json:"guess"`
	Nodes   int64  `json:"nodes"`
	Elapsed string `json:"elapsed"`
}

func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	var req nextReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	scores := make([]wordle.Pattern, len(req.Scores))
	for i, score := range req.Scores {
		scores[i] = wordle.Pattern(score)
	}

	var (
		guess   string
		metrics searcher.SearchMetrics
		err     error
	)
	func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		guess, metrics, err = s.guesser.Guess(req.Guesses, scores)
	}()

	switch {
	case errors.Is(err, wordle.ErrHistoryMismatch),
		errors.Is(err, wordle.ErrUnknownSymbol),
		errors.Is(err, wordle.ErrPatternLength):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNoCandidates):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case err != nil:
		log.Error().Err(err).Msg("next guess")
		writeError(w, http.StatusInternalServerError, "search_failed")
	default:
		writeJSON(w, http.StatusOK, nextRes{Guess: guess, Nodes: metrics.Nodes, Elapsed: metrics.Duration.String()})
	}
}

type evaluateReq struct {
	Truth string `json:"truth"`
	Guess string `json:"guess"`
}

type evaluateRes struct {
	Pattern string `json:"pattern"`
	Score   int    `json:"score"`
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if !slices.Contains(s.vocabulary, req.Truth) || !slices.Contains(s.vocabulary, req.Guess) {
		writeError(w, http.StatusBadRequest, "unknown_word")
		return
	}

	var p wordle.Pattern
	func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		p = s.evaluator.Evaluate(req.Truth, req.Guess)
	}()

	writeJSON(w, http.StatusOK, evaluateRes{Pattern: string(p), Score: wordle.ScoreEvaluation(p)})
}

// count records every response under its matched route pattern.
func (s *Server) count(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		s.requests.WithLabelValues(route, strconv.Itoa(ww.Status())).Inc()
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
