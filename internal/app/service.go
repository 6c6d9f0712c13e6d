// Package app wires the mood detector and the analytics engine to storage,
// caching, and request logging. Handlers call into this layer only.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/Jain-Tirth/Journalite/internal/analytics"
	"github.com/Jain-Tirth/Journalite/internal/domain"
	"github.com/Jain-Tirth/Journalite/internal/metrics"
	"github.com/Jain-Tirth/Journalite/internal/mood"
)

// Service is the application facade over mood detection and analytics.
type Service struct {
	detector     *mood.Detector
	engine       *analytics.Engine
	entries      domain.EntryRepository
	cache        domain.InsightsCache
	requests     domain.RequestLogger
	prefs        domain.PreferencesRepository
	clock        clockwork.Clock
	batchWorkers int
}

// NewService wires the service. cache and requests may be nil in tests.
func NewService(
	detector *mood.Detector,
	engine *analytics.Engine,
	entries domain.EntryRepository,
	cache domain.InsightsCache,
	requests domain.RequestLogger,
	prefs domain.PreferencesRepository,
	clock clockwork.Clock,
	batchWorkers int,
) *Service {
	if batchWorkers < 1 {
		batchWorkers = 1
	}
	return &Service{
		detector:     detector,
		engine:       engine,
		entries:      entries,
		cache:        cache,
		requests:     requests,
		prefs:        prefs,
		clock:        clock,
		batchWorkers: batchWorkers,
	}
}

// DetectMood runs the fusion pipeline over one piece of journal text. It
// never fails: collaborator outages degrade inside the detector.
func (s *Service) DetectMood(ctx context.Context, text string) domain.MoodResult {
	result := s.detector.Detect(ctx, text)
	metrics.MoodDetectionsTotal.WithLabelValues(result.PrimaryMood).Inc()
	return result
}

// GenerateInsights returns the full analytics bundle for a user, serving
// from the cache when a fresh bundle exists and recomputing otherwise.
func (s *Service) GenerateInsights(ctx context.Context, userID string) (*domain.AnalyticsBundle, error) {
	start := s.clock.Now()
	metrics.AnalyticsRequestsTotal.WithLabelValues("insights").Inc()

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, userID)
		if err != nil {
			slog.Warn("Insights cache read failed, recomputing", "user_id", userID, "error", err)
		} else if cached != nil {
			s.logRequest(ctx, userID, "insights_cached", s.clock.Since(start))
			return cached, nil
		}
	}

	entries, err := s.entries.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	bundle := s.engine.GenerateInsights(entries)
	bundle.GeneratedAt = s.clock.Now()

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, bundle); err != nil {
			slog.Warn("Insights cache write failed", "user_id", userID, "error", err)
		}
	}

	s.logRequest(ctx, userID, "insights", s.clock.Since(start))
	return bundle, nil
}

// EmotionDistribution computes just the emotion distribution report.
func (s *Service) EmotionDistribution(ctx context.Context, userID string) ([]domain.EmotionShare, error) {
	var report []domain.EmotionShare
	err := s.runReport(ctx, userID, "emotion_distribution", func(entries []domain.Entry) {
		report = s.engine.EmotionDistribution(entries)
	})
	return report, err
}

// SentimentAnalysis computes just the sentiment report.
func (s *Service) SentimentAnalysis(ctx context.Context, userID string) (domain.SentimentReport, error) {
	var report domain.SentimentReport
	err := s.runReport(ctx, userID, "sentiment_analysis", func(entries []domain.Entry) {
		report = s.engine.SentimentOverTime(entries)
	})
	return report, err
}

// WordCloud computes just the word cloud report.
func (s *Service) WordCloud(ctx context.Context, userID string) ([]domain.WordCloudEntry, error) {
	var report []domain.WordCloudEntry
	err := s.runReport(ctx, userID, "word_cloud", func(entries []domain.Entry) {
		report = s.engine.WordCloud(entries)
	})
	return report, err
}

// WritingPatterns computes just the writing patterns report.
func (s *Service) WritingPatterns(ctx context.Context, userID string) (domain.WritingPatternsReport, error) {
	var report domain.WritingPatternsReport
	err := s.runReport(ctx, userID, "writing_patterns", func(entries []domain.Entry) {
		report = s.engine.WritingPatterns(entries)
	})
	return report, err
}

// MoodCorrelations computes just the mood correlations report.
func (s *Service) MoodCorrelations(ctx context.Context, userID string) (domain.MoodCorrelationsReport, error) {
	var report domain.MoodCorrelationsReport
	err := s.runReport(ctx, userID, "mood_correlations", func(entries []domain.Entry) {
		report = s.engine.MoodCorrelations(entries)
	})
	return report, err
}

// runReport loads the user's entries, times the computation, and logs the
// request under the given type.
func (s *Service) runReport(ctx context.Context, userID, requestType string, compute func([]domain.Entry)) error {
	start := s.clock.Now()
	metrics.AnalyticsRequestsTotal.WithLabelValues(requestType).Inc()

	entries, err := s.entries.ListByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load entries: %w", err)
	}

	compute(entries)

	took := s.clock.Since(start)
	metrics.AnalyticsDuration.WithLabelValues(requestType).Observe(took.Seconds())
	s.logRequest(ctx, userID, requestType, took)
	return nil
}

// AutoDetectMoods detects and writes back moods for every entry of a user
// that has content and no auto-detected mood yet. Entries are processed
// concurrently with a bounded worker count; a failed write-back counts as
// failed without aborting the batch.
func (s *Service) AutoDetectMoods(ctx context.Context, userID string) (domain.BatchDetectionResult, error) {
	batchID := uuid.NewString()

	entries, err := s.entries.ListByUser(ctx, userID)
	if err != nil {
		return domain.BatchDetectionResult{}, fmt.Errorf("failed to load entries: %w", err)
	}

	var pending []domain.Entry
	for _, entry := range entries {
		if entry.AutoMood || strings.TrimSpace(entry.Content) == "" {
			continue
		}
		pending = append(pending, entry)
	}

	var updated, failed atomic.Int64
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.batchWorkers)

	for _, entry := range pending {
		group.Go(func() error {
			result := s.DetectMood(groupCtx, entry.Content)
			if err := s.entries.UpdateMood(groupCtx, entry.ID, result); err != nil {
				slog.Warn("Mood write-back failed", "batch_id", batchID, "entry_id", entry.ID, "error", err)
				failed.Add(1)
				metrics.BatchDetectionsTotal.WithLabelValues("failed").Inc()
				return nil
			}
			updated.Add(1)
			metrics.BatchDetectionsTotal.WithLabelValues("updated").Inc()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return domain.BatchDetectionResult{}, err
	}

	slog.Info("Batch mood detection finished",
		"batch_id", batchID, "user_id", userID,
		"updated", updated.Load(), "failed", failed.Load(), "processed", len(pending))

	return domain.BatchDetectionResult{
		Updated:   int(updated.Load()),
		Failed:    int(failed.Load()),
		Processed: len(pending),
	}, nil
}

// Preferences returns the user's stored analytics preferences.
func (s *Service) Preferences(ctx context.Context, userID string) (map[string]any, error) {
	return s.prefs.Get(ctx, userID)
}

// UpdatePreferences stores the user's analytics preferences.
func (s *Service) UpdatePreferences(ctx context.Context, userID string, prefs map[string]any) error {
	return s.prefs.Update(ctx, userID, prefs)
}

// logRequest records the request in the analytics request log. Failures are
// logged and swallowed; monitoring never fails a user request.
func (s *Service) logRequest(ctx context.Context, userID, requestType string, took time.Duration) {
	if s.requests == nil {
		return
	}
	if err := s.requests.LogRequest(ctx, userID, requestType, took); err != nil {
		slog.Warn("Request logging failed", "user_id", userID, "type", requestType, "error", err)
	}
}
