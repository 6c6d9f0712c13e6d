package mood

import (
	"github.com/jonreiter/govader"

	"github.com/Jain-Tirth/Journalite/internal/domain"
)

// SubjectivityScorer is the optional second lexicon model. When nil, the
// subjectivity component of the breakdown is 0 and scoring continues.
type SubjectivityScorer interface {
	Subjectivity(text string) (float64, error)
}

// LexicalScorer wraps the VADER sentiment lexicon and, when configured, a
// separate subjectivity model. It is stateless across calls and safe for
// concurrent use.
type LexicalScorer struct {
	vader        *govader.SentimentIntensityAnalyzer
	subjectivity SubjectivityScorer
}

// NewLexicalScorer builds a scorer backed by the VADER lexicon.
// subjectivity may be nil.
func NewLexicalScorer(subjectivity SubjectivityScorer) *LexicalScorer {
	return &LexicalScorer{
		vader:        govader.NewSentimentIntensityAnalyzer(),
		subjectivity: subjectivity,
	}
}

// Score produces the full sentiment breakdown for normalized text. The
// subjectivity model failing or being absent degrades that component to 0,
// never the whole breakdown.
func (s *LexicalScorer) Score(text string) domain.SentimentBreakdown {
	scores := s.vader.PolarityScores(text)

	breakdown := domain.SentimentBreakdown{
		Compound: scores.Compound,
		Positive: scores.Positive,
		Negative: scores.Negative,
		Neutral:  scores.Neutral,
	}

	if s.subjectivity != nil {
		if subj, err := s.subjectivity.Subjectivity(text); err == nil {
			breakdown.Subjectivity = subj
		}
	}
	return breakdown
}

// Polarity returns just the compound polarity in [-1, 1]. Used by the
// analytics engine for per-entry and per-sentence scoring.
func (s *LexicalScorer) Polarity(text string) float64 {
	return s.vader.PolarityScores(text).Compound
}
