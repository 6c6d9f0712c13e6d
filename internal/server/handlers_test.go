package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jain-Tirth/Journalite/internal/analytics"
	"github.com/Jain-Tirth/Journalite/internal/app"
	"github.com/Jain-Tirth/Journalite/internal/config"
	"github.com/Jain-Tirth/Journalite/internal/domain"
	"github.com/Jain-Tirth/Journalite/internal/mood"
)

// --- Test fixtures ---

type flatScorer struct{}

func (flatScorer) Score(text string) domain.SentimentBreakdown { return domain.SentimentBreakdown{} }
func (flatScorer) Polarity(text string) float64                { return 0 }

type memEntryRepo struct {
	entries []domain.Entry
}

func (m *memEntryRepo) ListByUser(ctx context.Context, userID string) ([]domain.Entry, error) {
	return m.entries, nil
}

func (m *memEntryRepo) UpdateMood(ctx context.Context, entryID string, result domain.MoodResult) error {
	return nil
}

type memPrefsRepo struct {
	prefs map[string]any
}

func (m *memPrefsRepo) Get(ctx context.Context, userID string) (map[string]any, error) {
	if m.prefs == nil {
		return map[string]any{}, nil
	}
	return m.prefs, nil
}

func (m *memPrefsRepo) Update(ctx context.Context, userID string, prefs map[string]any) error {
	m.prefs = prefs
	return nil
}

func newTestServer(entries []domain.Entry) *Server {
	detector := mood.NewDetector(flatScorer{}, nil, nil)
	engine := analytics.NewEngine(flatScorer{})
	svc := app.NewService(
		detector, engine,
		&memEntryRepo{entries: entries},
		nil, nil, &memPrefsRepo{},
		clockwork.NewFakeClock(), 2,
	)
	return NewServer(&config.Config{Port: "0", AppEnv: "test"}, svc, nil, nil)
}

func doJSON(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	return rec
}

// --- Tests ---

func TestHandleWelcome(t *testing.T) {
	srv := newTestServer(nil)

	rec := doJSON(t, srv, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "journalite-insights")
}

func TestHandleAnalyzeMood(t *testing.T) {
	srv := newTestServer(nil)

	t.Run("empty text is rejected", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/analyze-mood", `{"text":"   "}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "validation", resp["type"])
	})

	t.Run("missing body is rejected", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/analyze-mood", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("valid text returns a fused result", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/analyze-mood", `{"text":"an ordinary day"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var result domain.MoodResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, "neutral", result.PrimaryMood)
		assert.Greater(t, result.Confidence, 0.0)
	})
}

func TestHandleGenerateInsights(t *testing.T) {
	srv := newTestServer(nil)

	t.Run("missing user_id is rejected", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/generate-insights", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty history yields well-formed empty bundle", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/generate-insights", `{"user_id":"user-1"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var bundle domain.AnalyticsBundle
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bundle))
		assert.Empty(t, bundle.EmotionDistribution)
		assert.Empty(t, bundle.WordCloud)
		assert.False(t, bundle.GeneratedAt.IsZero())
	})
}

func TestAnalyticsEndpoints(t *testing.T) {
	entries := []domain.Entry{
		{Mood: "happy", Content: "a wonderful garden visit today"},
	}
	srv := newTestServer(entries)

	paths := []string{
		"/emotion-distribution",
		"/sentiment-analysis",
		"/word-cloud",
		"/writing-patterns",
		"/mood-correlations",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			rec := doJSON(t, srv, http.MethodPost, path, `{"user_id":"user-1"}`)
			assert.Equal(t, http.StatusOK, rec.Code)

			rec = doJSON(t, srv, http.MethodPost, path, `{}`)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleAutoDetectMood(t *testing.T) {
	entries := []domain.Entry{
		{ID: "e1", Content: "fresh entry"},
		{ID: "e2", Content: "done already", AutoMood: true},
	}
	srv := newTestServer(entries)

	rec := doJSON(t, srv, http.MethodPost, "/auto-detect-mood", `{"user_id":"user-1"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var result domain.BatchDetectionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 0, result.Failed)
}

func TestPreferencesEndpoints(t *testing.T) {
	srv := newTestServer(nil)

	rec := doJSON(t, srv, http.MethodGet, "/users/user-1/preferences", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodPut, "/users/user-1/preferences", `{"default_range":"30d"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/users/user-1/preferences", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "30d")
}

func TestHandleLiveness(t *testing.T) {
	srv := newTestServer(nil)

	rec := doJSON(t, srv, http.MethodGet, "/health/live", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestHandleVersion(t *testing.T) {
	srv := newTestServer(nil)

	rec := doJSON(t, srv, http.MethodGet, "/version", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_version")
}
