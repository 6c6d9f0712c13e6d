package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jain-Tirth/Journalite/internal/analytics"
	"github.com/Jain-Tirth/Journalite/internal/domain"
	"github.com/Jain-Tirth/Journalite/internal/mood"
)

// --- Mocks ---

type flatScorer struct{}

func (flatScorer) Score(text string) domain.SentimentBreakdown { return domain.SentimentBreakdown{} }
func (flatScorer) Polarity(text string) float64                { return 0 }

type mockEntryRepo struct {
	mu        sync.Mutex
	entries   []domain.Entry
	listErr   error
	updateErr error
	listCalls int
	updated   []string
}

func (m *mockEntryRepo) ListByUser(ctx context.Context, userID string) ([]domain.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	return m.entries, m.listErr
}

func (m *mockEntryRepo) UpdateMood(ctx context.Context, entryID string, result domain.MoodResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updated = append(m.updated, entryID)
	return nil
}

func (m *mockEntryRepo) getListCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listCalls
}

func (m *mockEntryRepo) getUpdated() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]string, len(m.updated))
	copy(cp, m.updated)
	return cp
}

type mockCache struct {
	mu     sync.Mutex
	bundle *domain.AnalyticsBundle
	getErr error
	setErr error
	stored *domain.AnalyticsBundle
}

func (m *mockCache) Get(ctx context.Context, userID string) (*domain.AnalyticsBundle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bundle, m.getErr
}

func (m *mockCache) Set(ctx context.Context, userID string, bundle *domain.AnalyticsBundle) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stored = bundle
	return m.setErr
}

func (m *mockCache) getStored() *domain.AnalyticsBundle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stored
}

type loggedRequest struct {
	UserID string
	Type   string
}

type mockRequestLog struct {
	mu       sync.Mutex
	requests []loggedRequest
	err      error
}

func (m *mockRequestLog) LogRequest(ctx context.Context, userID, requestType string, took time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, loggedRequest{userID, requestType})
	return m.err
}

func (m *mockRequestLog) getRequests() []loggedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]loggedRequest, len(m.requests))
	copy(cp, m.requests)
	return cp
}

type mockPrefsRepo struct {
	prefs   map[string]any
	updated map[string]any
}

func (m *mockPrefsRepo) Get(ctx context.Context, userID string) (map[string]any, error) {
	return m.prefs, nil
}

func (m *mockPrefsRepo) Update(ctx context.Context, userID string, prefs map[string]any) error {
	m.updated = prefs
	return nil
}

func newTestService(repo *mockEntryRepo, cache *mockCache, requests *mockRequestLog) *Service {
	detector := mood.NewDetector(flatScorer{}, nil, nil)
	engine := analytics.NewEngine(flatScorer{})
	var c domain.InsightsCache
	if cache != nil {
		c = cache
	}
	var r domain.RequestLogger
	if requests != nil {
		r = requests
	}
	return NewService(detector, engine, repo, c, r, &mockPrefsRepo{}, clockwork.NewFakeClock(), 2)
}

// --- Tests ---

func TestGenerateInsights(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips recomputation", func(t *testing.T) {
		cached := &domain.AnalyticsBundle{GeneratedAt: time.Now()}
		repo := &mockEntryRepo{}
		cache := &mockCache{bundle: cached}
		requests := &mockRequestLog{}
		svc := newTestService(repo, cache, requests)

		bundle, err := svc.GenerateInsights(ctx, "user-1")

		require.NoError(t, err)
		assert.Same(t, cached, bundle)
		assert.Equal(t, 0, repo.getListCalls())

		logged := requests.getRequests()
		require.Len(t, logged, 1)
		assert.Equal(t, "insights_cached", logged[0].Type)
	})

	t.Run("cache miss recomputes, stamps, and stores", func(t *testing.T) {
		repo := &mockEntryRepo{entries: []domain.Entry{
			{Mood: "happy", Content: "note", CreatedAt: time.Now()},
		}}
		cache := &mockCache{}
		requests := &mockRequestLog{}
		svc := newTestService(repo, cache, requests)

		bundle, err := svc.GenerateInsights(ctx, "user-1")

		require.NoError(t, err)
		assert.Equal(t, 1, repo.getListCalls())
		assert.False(t, bundle.GeneratedAt.IsZero())
		assert.Same(t, bundle, cache.getStored())

		logged := requests.getRequests()
		require.Len(t, logged, 1)
		assert.Equal(t, loggedRequest{"user-1", "insights"}, logged[0])
	})

	t.Run("cache read failure falls back to recompute", func(t *testing.T) {
		repo := &mockEntryRepo{}
		cache := &mockCache{getErr: errors.New("redis down")}
		svc := newTestService(repo, cache, &mockRequestLog{})

		_, err := svc.GenerateInsights(ctx, "user-1")

		require.NoError(t, err)
		assert.Equal(t, 1, repo.getListCalls())
	})

	t.Run("cache write failure does not fail the request", func(t *testing.T) {
		repo := &mockEntryRepo{}
		cache := &mockCache{setErr: errors.New("redis down")}
		svc := newTestService(repo, cache, &mockRequestLog{})

		_, err := svc.GenerateInsights(ctx, "user-1")
		assert.NoError(t, err)
	})

	t.Run("repository failure surfaces", func(t *testing.T) {
		repo := &mockEntryRepo{listErr: errors.New("db down")}
		svc := newTestService(repo, &mockCache{}, &mockRequestLog{})

		_, err := svc.GenerateInsights(ctx, "user-1")
		assert.Error(t, err)
	})
}

func TestReportEndpointsLogTheirType(t *testing.T) {
	ctx := context.Background()
	repo := &mockEntryRepo{}
	requests := &mockRequestLog{}
	svc := newTestService(repo, &mockCache{}, requests)

	_, err := svc.EmotionDistribution(ctx, "user-1")
	require.NoError(t, err)
	_, err = svc.SentimentAnalysis(ctx, "user-1")
	require.NoError(t, err)
	_, err = svc.WordCloud(ctx, "user-1")
	require.NoError(t, err)
	_, err = svc.WritingPatterns(ctx, "user-1")
	require.NoError(t, err)
	_, err = svc.MoodCorrelations(ctx, "user-1")
	require.NoError(t, err)

	var types []string
	for _, req := range requests.getRequests() {
		types = append(types, req.Type)
	}
	assert.Equal(t, []string{
		"emotion_distribution", "sentiment_analysis", "word_cloud",
		"writing_patterns", "mood_correlations",
	}, types)
}

func TestAutoDetectMoods(t *testing.T) {
	ctx := context.Background()

	t.Run("skips flagged and empty entries", func(t *testing.T) {
		repo := &mockEntryRepo{entries: []domain.Entry{
			{ID: "e1", Content: "a fresh entry"},
			{ID: "e2", Content: "already done", AutoMood: true},
			{ID: "e3", Content: "   "},
			{ID: "e4", Content: "another fresh one"},
		}}
		svc := newTestService(repo, &mockCache{}, &mockRequestLog{})

		result, err := svc.AutoDetectMoods(ctx, "user-1")

		require.NoError(t, err)
		assert.Equal(t, 2, result.Processed)
		assert.Equal(t, 2, result.Updated)
		assert.Equal(t, 0, result.Failed)
		assert.ElementsMatch(t, []string{"e1", "e4"}, repo.getUpdated())
	})

	t.Run("write-back failures count without aborting", func(t *testing.T) {
		repo := &mockEntryRepo{
			entries:   []domain.Entry{{ID: "e1", Content: "text"}},
			updateErr: errors.New("db down"),
		}
		svc := newTestService(repo, &mockCache{}, &mockRequestLog{})

		result, err := svc.AutoDetectMoods(ctx, "user-1")

		require.NoError(t, err)
		assert.Equal(t, 1, result.Processed)
		assert.Equal(t, 0, result.Updated)
		assert.Equal(t, 1, result.Failed)
	})

	t.Run("no pending entries", func(t *testing.T) {
		repo := &mockEntryRepo{}
		svc := newTestService(repo, &mockCache{}, &mockRequestLog{})

		result, err := svc.AutoDetectMoods(ctx, "user-1")

		require.NoError(t, err)
		assert.Equal(t, domain.BatchDetectionResult{}, result)
	})
}

func TestDetectMoodNeverFails(t *testing.T) {
	svc := newTestService(&mockEntryRepo{}, nil, nil)

	result := svc.DetectMood(context.Background(), "an uneventful day")

	assert.Equal(t, "neutral", result.PrimaryMood)
	assert.InDelta(t, 0.3, result.Confidence, 1e-9)
}

func TestPreferencesPassthrough(t *testing.T) {
	ctx := context.Background()
	prefs := &mockPrefsRepo{prefs: map[string]any{"theme": "dark"}}
	detector := mood.NewDetector(flatScorer{}, nil, nil)
	engine := analytics.NewEngine(flatScorer{})
	svc := NewService(detector, engine, &mockEntryRepo{}, nil, nil, prefs, clockwork.NewFakeClock(), 1)

	got, err := svc.Preferences(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "dark", got["theme"])

	require.NoError(t, svc.UpdatePreferences(ctx, "user-1", map[string]any{"theme": "light"}))
	assert.Equal(t, "light", prefs.updated["theme"])
}
