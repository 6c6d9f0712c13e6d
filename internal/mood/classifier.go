package mood

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/Jain-Tirth/Journalite/internal/domain"
	"github.com/Jain-Tirth/Journalite/internal/metrics"
)

// classifierMaxChars bounds the text sent to the inference endpoint;
// transformer models truncate around 512 tokens anyway.
const classifierMaxChars = 512

// classifyRequest is the inference API request body.
type classifyRequest struct {
	Inputs string `json:"inputs"`
}

// labelScore is one label of the classifier's multi-label output.
type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// HTTPClassifier calls a hosted transformer emotion model over HTTP. A
// circuit breaker shields the mood pipeline from a flapping endpoint: when
// open, Classify fails fast with ErrUnavailable and the fusion step runs
// without the signal.
type HTTPClassifier struct {
	url     string
	token   string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
}

// NewHTTPClassifier creates a classifier client for the given inference
// endpoint. token may be empty for unauthenticated endpoints.
func NewHTTPClassifier(url, token string, timeout time.Duration) *HTTPClassifier {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "emotion-classifier",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.Requests >= 5 && counts.TotalFailures*10 >= counts.Requests*6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("Classifier circuit breaker state changed", "from", from.String(), "to", to.String())
			metrics.CollaboratorBreakerState.Set(breakerStateValue(to))
		},
	})

	return &HTTPClassifier{
		url:     url,
		token:   token,
		client:  &http.Client{Timeout: timeout},
		breaker: breaker,
	}
}

func breakerStateValue(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	default:
		return 2
	}
}

// Classify posts the text to the inference endpoint and returns one
// probability per emotion label, labels lowercased.
func (c *HTTPClassifier) Classify(ctx context.Context, text string) (domain.SignalScores, error) {
	if len(text) > classifierMaxChars {
		text = text[:classifierMaxChars]
	}

	result, err := c.breaker.Execute(func() (any, error) {
		return c.call(ctx, text)
	})
	if err != nil {
		metrics.CollaboratorFailures.WithLabelValues("classifier").Inc()
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return nil, domain.ErrUnavailable
		}
		return nil, err
	}
	return result.(domain.SignalScores), nil
}

func (c *HTTPClassifier) call(ctx context.Context, text string) (domain.SignalScores, error) {
	body, err := json.Marshal(classifyRequest{Inputs: text})
	if err != nil {
		return nil, fmt.Errorf("failed to encode classify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build classify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("classify request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("classify endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	// The endpoint returns all label scores for a single input as a nested
	// array: [[{"label": "joy", "score": 0.93}, ...]].
	var nested [][]labelScore
	if err := json.NewDecoder(resp.Body).Decode(&nested); err != nil {
		return nil, fmt.Errorf("classify endpoint returned invalid JSON: %w", err)
	}
	if len(nested) == 0 {
		return domain.SignalScores{}, nil
	}

	scores := make(domain.SignalScores, len(nested[0]))
	for _, ls := range nested[0] {
		scores[strings.ToLower(ls.Label)] = ls.Score
	}
	return scores, nil
}
