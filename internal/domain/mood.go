package domain

// SignalScores maps emotion labels to non-negative evidence weights. The
// label set is open: classifier and generative collaborators may introduce
// labels the lexicon has never seen, so this is a dynamic map rather than a
// closed enum.
type SignalScores map[string]float64

// SentimentBreakdown is the lexical sentiment contract: a compound polarity
// in [-1, 1], positive/negative/neutral proportions summing to ~1, and a
// subjectivity in [0, 1] from an independent second model (0 when that
// model is unavailable).
type SentimentBreakdown struct {
	Compound     float64 `json:"compound"`
	Positive     float64 `json:"positive"`
	Negative     float64 `json:"negative"`
	Neutral      float64 `json:"neutral"`
	Subjectivity float64 `json:"subjectivity"`
}

// GenerativeGuess is the best-effort structured output of the generative
// mood analyzer. PrimaryMood is free text from the model and may not match
// any lexicon label.
type GenerativeGuess struct {
	PrimaryMood string       `json:"primary_mood"`
	Confidence  float64      `json:"confidence"`
	Secondary   SignalScores `json:"secondary_emotions,omitempty"`
}

// DetailedAnalysis carries per-signal breakdowns for explainability.
// Generative is nil when the generative collaborator did not produce a
// usable guess.
type DetailedAnalysis struct {
	Sentiment  SentimentBreakdown `json:"sentiment"`
	Keywords   SignalScores       `json:"keyword_emotions"`
	Generative *GenerativeGuess   `json:"generative,omitempty"`
}

// MoodResult is the fused decision for one piece of text. Confidence is
// always clamped to [0, 1] and PrimaryMood is never empty.
type MoodResult struct {
	PrimaryMood    string           `json:"primary_mood"`
	Confidence     float64          `json:"confidence"`
	Emotions       SignalScores     `json:"emotions"`
	SentimentScore float64          `json:"sentiment_score"`
	Keywords       []string         `json:"keywords"`
	Detailed       DetailedAnalysis `json:"detailed_analysis"`
}
