package agent

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"minimax/game/wordle"
	"minimax/searcher"
)

func newTestServer(t *testing.T) (*Server, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	search := searcher.NewAlphaBeta(searcher.WithMetrics(searcher.NewMetricsCollector()))
	guesser := NewAlphaBetaGuesser(vocabulary, search, WithOpeners("abc"))
	return NewServer(vocabulary, guesser, nil, reg), reg
}

type panicGuesser struct{}

func (panicGuesser) Guess([]string, []wordle.Pattern) (string, searcher.SearchMetrics, error) {
	panic("guesser failed")
}

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServer(t *testing.T) {
	t.Run("health", func(t *testing.T) {
		s, _ := newTestServer(t)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"ok":true,"words":4}`, rec.Body.String())
	})

	t.Run("next guess", func(t *testing.T) {
		s, _ := newTestServer(t)

		rec := post(t, s.Handler(), "/wordle/next", `{"guesses":[],"scores":[]}`)
		require.Equal(t, http.StatusOK, rec.Code)
		var res nextRes
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
		require.Equal(t, "abc", res.Guess)

		rec = post(t, s.Handler(), "/wordle/next", `{"guesses":["abc"],"scores":["==."]}`)
		require.Equal(t, http.StatusOK, rec.Code)
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
		require.Equal(t, "abd", res.Guess)
	})

	t.Run("bad history", func(t *testing.T) {
		s, _ := newTestServer(t)

		rec := post(t, s.Handler(), "/wordle/next", `{"guesses":["abc"],"scores":[]}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		rec = post(t, s.Handler(), "/wordle/next", `{"guesses":["abc"],"scores":["==?"]}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		rec = post(t, s.Handler(), "/wordle/next", `{"guesses":["abc"],"scores":["---"]}`)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		rec = post(t, s.Handler(), "/wordle/next", `not json`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		rec = post(t, s.Handler(), "/wordle/next", `{"guesses":["abcd"],"scores":["...="]}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		rec = post(t, s.Handler(), "/wordle/evaluate", `{"truth":"abd","guess":"abc"}`)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("lock is released after a panic", func(t *testing.T) {
		s := NewServer(vocabulary, panicGuesser{}, nil, prometheus.NewRegistry())

		rec := post(t, s.Handler(), "/wordle/next", `{"guesses":[],"scores":[]}`)
		require.Equal(t, http.StatusInternalServerError, rec.Code)

		done := make(chan int)
		go func() {
			done <- post(t, s.Handler(), "/wordle/evaluate", `{"truth":"abd","guess":"abc"}`).Code
		}()
		select {
		case code := <-done:
			require.Equal(t, http.StatusOK, code)
		case <-time.After(2 * time.Second):
			t.Fatal("evaluate blocked on the server lock")
		}
	})

	t.Run("evaluate", func(t *testing.T) {
		s, _ := newTestServer(t)

		rec := post(t, s.Handler(), "/wordle/evaluate", `{"truth":"abd","guess":"abc"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"pattern":"==.","score":4}`, rec.Body.String())

		rec = post(t, s.Handler(), "/wordle/evaluate", `{"truth":"zzz","guess":"abc"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("requests are counted", func(t *testing.T) {
		s, reg := newTestServer(t)
		post(t, s.Handler(), "/wordle/evaluate", `{"truth":"abd","guess":"abc"}`)
		post(t, s.Handler(), "/wordle/evaluate", `{"truth":"abd","guess":"abd"}`)

		require.Equal(t, 2.0, testutil.ToFloat64(s.requests.WithLabelValues("/wordle/evaluate", "200")))

		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "minimax_http_requests_total")

		_, err := reg.Gather()
		require.NoError(t, err)
	})
}

func TestRemoteGuesser(t *testing.T) {
	s, _ := newTestServer(t)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()
	g := NewRemoteGuesser(srv.URL+"/", time.Second)

	guess, _, err := g.Guess(nil, nil)
	require.NoError(t, err)
	require.Equal(t, "abc", guess)

	guess, m, err := g.Guess([]string{"abc"}, []wordle.Pattern{"==."})
	require.NoError(t, err)
	require.Equal(t, "abd", guess)
	require.Positive(t, m.Nodes)

	_, _, err = g.Guess([]string{"abc"}, []wordle.Pattern{"---"})
	require.ErrorIs(t, err, ErrNoCandidates)

	_, _, err = g.Guess([]string{"abc"}, nil)
	require.Error(t, err)
}
