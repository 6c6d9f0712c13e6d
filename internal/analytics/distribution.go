package analytics

import (
	"sort"

	"github.com/Jain-Tirth/Journalite/internal/domain"
)

var emotionEmoji = map[string]string{
	"happy": "😊", "sad": "😢", "angry": "😠", "anxious": "😟",
	"excited": "🤩", "calm": "😌", "neutral": "😐", "grateful": "🙏",
	"frustrated": "😤", "content": "😊", "tired": "😴", "stressed": "😰",
}

func emojiFor(mood string) string {
	if emoji, ok := emotionEmoji[mood]; ok {
		return emoji
	}
	return "😐"
}

// EmotionDistribution counts entries per mood label and reports each
// label's share as a percentage with one decimal, sorted descending by
// share, together with a per-label occurrence trend. Empty input yields an
// empty slice.
func (e *Engine) EmotionDistribution(entries []domain.Entry) []domain.EmotionShare {
	if len(entries) == 0 {
		return []domain.EmotionShare{}
	}

	counts := make(map[string]int)
	for _, entry := range entries {
		counts[entry.MoodLabel()]++
	}

	total := len(entries)
	distribution := make([]domain.EmotionShare, 0, len(counts))
	for mood, count := range counts {
		distribution = append(distribution, domain.EmotionShare{
			Name:  mood,
			Value: round1(float64(count) / float64(total) * 100),
			Count: count,
			Emoji: emojiFor(mood),
			Trend: e.emotionTrend(entries, mood),
		})
	}

	sort.Slice(distribution, func(i, j int) bool {
		if distribution[i].Value != distribution[j].Value {
			return distribution[i].Value > distribution[j].Value
		}
		return distribution[i].Name < distribution[j].Name
	})
	return distribution
}

// emotionTrend compares the label's mean daily occurrence count over its
// most recent 3 distinct dates against its earliest 3. Fewer than 2
// distinct dates is always "stable".
func (e *Engine) emotionTrend(entries []domain.Entry, mood string) string {
	countsByDate := make(map[string]int)
	for _, entry := range entries {
		if entry.MoodLabel() == mood {
			countsByDate[dateKey(entry.CreatedAt)]++
		}
	}
	if len(countsByDate) < 2 {
		return "stable"
	}

	dates := make([]string, 0, len(countsByDate))
	for date := range countsByDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	daily := make([]float64, len(dates))
	for i, date := range dates {
		daily[i] = float64(countsByDate[date])
	}

	return trendLabel(tailMean(daily, 3), headMean(daily, 3), 1.2, 0.8)
}
