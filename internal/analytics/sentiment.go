package analytics

import (
	"sort"

	"github.com/Jain-Tirth/Journalite/internal/domain"
)

// The five polarity bands. Bounds are inclusive on each band's lower
// threshold: a score of exactly 0.6 is Very Positive and exactly -0.6 is
// Negative.
var sentimentBands = []struct {
	label string
	lower float64
	color string
}{
	{"Very Positive", 0.6, "#10B981"},
	{"Positive", 0.2, "#34D399"},
	{"Neutral", -0.2, "#6B7280"},
	{"Negative", -0.6, "#F87171"},
	{"Very Negative", -1.1, "#EF4444"},
}

func sentimentLabel(score float64) string {
	for _, band := range sentimentBands {
		if score >= band.lower {
			return band.label
		}
	}
	return sentimentBands[len(sentimentBands)-1].label
}

// SentimentOverTime scores every entry's polarity, buckets the scores into
// the five bands, and reports the per-date mean series with the overall
// mean and standard deviation (volatility). Empty input yields empty
// distribution and series.
func (e *Engine) SentimentOverTime(entries []domain.Entry) domain.SentimentReport {
	if len(entries) == 0 {
		return domain.SentimentReport{
			Distribution: []domain.SentimentBand{},
			OverTime:     []domain.DailySentiment{},
		}
	}

	scores := make([]float64, len(entries))
	byDate := make(map[string][]float64)
	for i, entry := range entries {
		score := e.scorer.Polarity(entry.Content)
		scores[i] = score
		key := dateKey(entry.CreatedAt)
		byDate[key] = append(byDate[key], score)
	}

	counts := make([]int, len(sentimentBands))
	for _, score := range scores {
		for i, band := range sentimentBands {
			if score >= band.lower {
				counts[i]++
				break
			}
		}
	}

	distribution := make([]domain.SentimentBand, len(sentimentBands))
	for i, band := range sentimentBands {
		distribution[i] = domain.SentimentBand{
			Sentiment: band.label,
			Value:     round1(float64(counts[i]) / float64(len(scores)) * 100),
			Color:     band.color,
		}
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	overTime := make([]domain.DailySentiment, len(dates))
	for i, date := range dates {
		daily := round3(mean(byDate[date]))
		overTime[i] = domain.DailySentiment{
			Date:  date,
			Score: daily,
			Label: sentimentLabel(daily),
		}
	}

	return domain.SentimentReport{
		Distribution:     distribution,
		OverTime:         overTime,
		AverageSentiment: round3(mean(scores)),
		Volatility:       round3(stddev(scores)),
	}
}
