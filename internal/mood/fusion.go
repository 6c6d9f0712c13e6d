package mood

import (
	"context"
	"log/slog"
	"math"
	"sort"

	"github.com/Jain-Tirth/Journalite/internal/domain"
	"github.com/Jain-Tirth/Journalite/internal/metrics"
)

// Weights is the per-signal weight table used by one fusion pass.
type Weights struct {
	Sentiment  float64
	Emotions   float64
	Keywords   float64
	Generative float64
}

// fusionWeights returns the weight table for the signals that actually ran.
// With a generative guess present it is trusted more heavily than lexical
// sentiment. Without one the remaining weights keep their base values and
// sum to 0.9; the gap is deliberate and pinned by tests.
func fusionWeights(hasGenerative bool) Weights {
	if hasGenerative {
		return Weights{Sentiment: 0.2, Emotions: 0.3, Keywords: 0.2, Generative: 0.3}
	}
	return Weights{Sentiment: 0.3, Emotions: 0.4, Keywords: 0.2, Generative: 0}
}

// SentimentScorer produces the lexical sentiment breakdown for a text.
type SentimentScorer interface {
	Score(text string) domain.SentimentBreakdown
}

// Detector fuses up to four independent signals into one mood decision.
// Classifier and generative collaborators are optional: a nil collaborator
// or a failing call simply removes that signal's contribution. Detector
// keeps no cross-call state and is safe for concurrent use.
type Detector struct {
	scorer     SentimentScorer
	classifier domain.EmotionClassifier
	generative domain.GenerativeAnalyzer
}

// NewDetector wires a detector. classifier and generative may be nil when
// the corresponding collaborator is not configured.
func NewDetector(scorer SentimentScorer, classifier domain.EmotionClassifier, generative domain.GenerativeAnalyzer) *Detector {
	return &Detector{
		scorer:     scorer,
		classifier: classifier,
		generative: generative,
	}
}

// Detect estimates the mood expressed in raw journal text. It always
// returns a well-formed result: collaborator failures degrade to missing
// signals, and a failure of the whole pipeline falls back to a
// single-signal lexical decision.
func (d *Detector) Detect(ctx context.Context, text string) (result domain.MoodResult) {
	timer := metrics.StartDetectionTimer()
	defer timer.ObserveDuration()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("Mood detection pipeline failed, using lexical fallback", "panic", r)
			result = d.fallback(text)
		}
	}()

	cleaned := Normalize(text)

	sentiment := d.scorer.Score(cleaned)
	emotions := d.classifyEmotions(ctx, cleaned)
	keywords := ScoreKeywords(cleaned)
	guess := d.analyzeGenerative(ctx, cleaned)

	weights := fusionWeights(guess != nil)
	scores := combine(sentiment, emotions, keywords, guess, weights)
	primary, confidence := decide(scores)

	return domain.MoodResult{
		PrimaryMood:    primary,
		Confidence:     confidence,
		Emotions:       emotions,
		SentimentScore: sentiment.Compound,
		Keywords:       ExtractKeywords(cleaned),
		Detailed: domain.DetailedAnalysis{
			Sentiment:  sentiment,
			Keywords:   keywords,
			Generative: guess,
		},
	}
}

// classifyEmotions runs the transformer collaborator, degrading to an empty
// signal on any failure.
func (d *Detector) classifyEmotions(ctx context.Context, text string) domain.SignalScores {
	if d.classifier == nil {
		return domain.SignalScores{}
	}
	scores, err := d.classifier.Classify(ctx, text)
	if err != nil {
		slog.Warn("Emotion classification unavailable, continuing without signal", "error", err)
		return domain.SignalScores{}
	}
	return scores
}

// analyzeGenerative runs the generative collaborator, degrading to nil on
// any failure.
func (d *Detector) analyzeGenerative(ctx context.Context, text string) *domain.GenerativeGuess {
	if d.generative == nil {
		return nil
	}
	guess, err := d.generative.Analyze(ctx, text)
	if err != nil {
		slog.Warn("Generative mood analysis unavailable, continuing without signal", "error", err)
		return nil
	}
	return guess
}

// combine accumulates the weighted signals into one score per mood label.
// Accumulation is additive over an open label set: the same label may
// receive contributions from several signals, and the generative guess may
// introduce a label no other extractor knows.
func combine(sentiment domain.SentimentBreakdown, emotions, keywords domain.SignalScores, guess *domain.GenerativeGuess, weights Weights) domain.SignalScores {
	scores := make(domain.SignalScores)

	// Mid-range compound is evidence FOR neutrality, not absence of
	// evidence, hence the three-way bucket instead of a continuous blend.
	switch {
	case sentiment.Compound > 0.5:
		scores["happy"] = sentiment.Compound * weights.Sentiment
	case sentiment.Compound < -0.5:
		scores["sad"] = math.Abs(sentiment.Compound) * weights.Sentiment
	default:
		scores["neutral"] = (1 - math.Abs(sentiment.Compound)) * weights.Sentiment
	}

	for emotion, probability := range emotions {
		scores[emotion] += probability * weights.Emotions
	}

	for emotion, density := range keywords {
		scores[emotion] += density * weights.Keywords
	}

	if guess != nil && guess.PrimaryMood != "" {
		scores[guess.PrimaryMood] += guess.Confidence * weights.Generative
	}

	return scores
}

// decide picks the label with the highest accumulated score, breaking ties
// alphabetically so identical inputs always yield identical results. The
// empty score set degrades to neutral at the fixed 0.5 confidence floor.
func decide(scores domain.SignalScores) (string, float64) {
	if len(scores) == 0 {
		return "neutral", 0.5
	}

	labels := make([]string, 0, len(scores))
	for label := range scores {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	best := labels[0]
	for _, label := range labels[1:] {
		if scores[label] > scores[best] {
			best = label
		}
	}
	return best, math.Min(scores[best], 1.0)
}

// fallback is the single-signal decision used when the full pipeline fails:
// lexical polarity alone decides between happy, sad, and neutral. It always
// succeeds, including on empty input.
func (d *Detector) fallback(text string) domain.MoodResult {
	polarity := 0.0
	func() {
		defer func() { _ = recover() }()
		polarity = d.scorer.Score(Normalize(text)).Compound
	}()

	mood := "neutral"
	confidence := 0.5
	switch {
	case polarity > 0.3:
		mood = "happy"
		confidence = math.Min(polarity, 1.0)
	case polarity < -0.3:
		mood = "sad"
		confidence = math.Min(math.Abs(polarity), 1.0)
	}

	return domain.MoodResult{
		PrimaryMood:    mood,
		Confidence:     confidence,
		Emotions:       domain.SignalScores{},
		SentimentScore: polarity,
		Keywords:       []string{},
	}
}
