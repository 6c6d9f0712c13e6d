package domain

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable is returned by collaborators that are configured off or
// currently unreachable. Callers degrade the signal's weight to zero and
// continue.
var ErrUnavailable = errors.New("collaborator unavailable")

// ErrEntryNotFound is returned by the entry repository when an entry ID
// does not exist.
var ErrEntryNotFound = errors.New("entry not found")

// EntryRepository is the durable storage contract for journal entries.
type EntryRepository interface {
	ListByUser(ctx context.Context, userID string) ([]Entry, error)
	UpdateMood(ctx context.Context, entryID string, result MoodResult) error
}

// InsightsCache stores the last computed analytics bundle per user. Get
// returns (nil, nil) on a miss; the cache enforces its own freshness
// window.
type InsightsCache interface {
	Get(ctx context.Context, userID string) (*AnalyticsBundle, error)
	Set(ctx context.Context, userID string, bundle *AnalyticsBundle) error
}

// EmotionClassifier is the transformer-style multi-label classifier
// collaborator. Classify returns a probability per emotion label.
type EmotionClassifier interface {
	Classify(ctx context.Context, text string) (SignalScores, error)
}

// GenerativeAnalyzer is the free-form language-model collaborator. Analyze
// returns a best-effort structured guess, or an error when the response
// could not be used at all.
type GenerativeAnalyzer interface {
	Analyze(ctx context.Context, text string) (*GenerativeGuess, error)
}

// RequestLogger records analytics requests for monitoring. Implementations
// must be best-effort: a failed log write never fails the request.
type RequestLogger interface {
	LogRequest(ctx context.Context, userID, requestType string, took time.Duration) error
}

// PreferencesRepository stores per-user analytics preferences.
type PreferencesRepository interface {
	Get(ctx context.Context, userID string) (map[string]any, error)
	Update(ctx context.Context, userID string, prefs map[string]any) error
}
