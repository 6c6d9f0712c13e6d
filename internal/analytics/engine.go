package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/Jain-Tirth/Journalite/internal/domain"
)

// PolarityScorer scores the polarity of a text fragment in [-1, 1]. The
// mood package's lexical scorer satisfies this.
type PolarityScorer interface {
	Polarity(text string) float64
}

// Engine computes analytics reports over entry collections. It depends
// only on the lexical polarity scorer; the classifier and generative
// collaborators play no part in aggregate analytics.
type Engine struct {
	scorer PolarityScorer
}

// NewEngine creates an analytics engine backed by the given scorer.
func NewEngine(scorer PolarityScorer) *Engine {
	return &Engine{scorer: scorer}
}

// GenerateInsights runs every sub-analysis and bundles the results.
// GeneratedAt is left zero; the caller stamps it before caching.
func (e *Engine) GenerateInsights(entries []domain.Entry) *domain.AnalyticsBundle {
	return &domain.AnalyticsBundle{
		EmotionDistribution: e.EmotionDistribution(entries),
		Sentiment:           e.SentimentOverTime(entries),
		WordCloud:           e.WordCloud(entries),
		WritingPatterns:     e.WritingPatterns(entries),
		MoodCorrelations:    e.MoodCorrelations(entries),
	}
}

const dateLayout = "2006-01-02"

func dateKey(t time.Time) string {
	return t.Format(dateLayout)
}

// distinctDates returns the sorted distinct calendar dates of the entries.
func distinctDates(entries []domain.Entry) []string {
	seen := make(map[string]struct{})
	for _, entry := range entries {
		seen[dateKey(entry.CreatedAt)] = struct{}{}
	}
	dates := make([]string, 0, len(seen))
	for date := range seen {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stddev is the population standard deviation.
func stddev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	sumSq := 0.0
	for _, v := range values {
		d := v - m
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(values)))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// trendLabel compares a recent mean against an older mean: above the upper
// ratio is "increasing", below the lower ratio "decreasing", otherwise
// "stable".
func trendLabel(recent, older, upper, lower float64) string {
	switch {
	case recent > older*upper:
		return "increasing"
	case recent < older*lower:
		return "decreasing"
	default:
		return "stable"
	}
}

// headMean and tailMean average the first/last up to n values.
func headMean(values []float64, n int) float64 {
	if len(values) < n {
		n = len(values)
	}
	return mean(values[:n])
}

func tailMean(values []float64, n int) float64 {
	if len(values) < n {
		n = len(values)
	}
	return mean(values[len(values)-n:])
}
