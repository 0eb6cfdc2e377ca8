package agent

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"minimax/game/wordle"
	"minimax/searcher"
)

// RemoteGuesser asks an agent Server for each guess.
type RemoteGuesser struct {
	serverURL string
	client    *http.Client
}

func NewRemoteGuesser(serverURL string, timeout time.Duration) *RemoteGuesser {
	return &RemoteGuesser{
		serverURL: strings.TrimRight(serverURL, "/"),
		client:    &http.Client{Timeout: timeout},
	}
}

func (g *RemoteGuesser) Guess(guesses []string, scores []wordle.Pattern) (string, searcher.SearchMetrics, error) {
	req := nextReq{Guesses: guesses, Scores: make([]string, len(scores))}
	if req.Guesses == nil {
		req.Guesses = []string{}
	}
	for i, s := range scores {
		req.Scores[i] = string(s)
	}
	data, err := json.Marshal(req)
	if err != nil {
		return "", searcher.SearchMetrics{}, err
	}

	resp, err := g.client.Post(g.serverURL+"/wordle/next", "application/json", bytes.NewReader(data))
	if err != nil {
		return "", searcher.SearchMetrics{}, fmt.Errorf("request next guess: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		if resp.StatusCode == http.StatusUnprocessableEntity {
			return "", searcher.SearchMetrics{}, fmt.Errorf("%s: %w", body.Error, ErrNoCandidates)
		}
		return "", searcher.SearchMetrics{}, fmt.Errorf("next guess: %s: %s", resp.Status, body.Error)
	}

	var res nextRes
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", searcher.SearchMetrics{}, fmt.Errorf("decode next guess: %w", err)
	}
	elapsed, _ := time.ParseDuration(res.Elapsed)
	return res.Guess, searcher.SearchMetrics{Nodes: res.Nodes, Duration: elapsed}, nil
}
