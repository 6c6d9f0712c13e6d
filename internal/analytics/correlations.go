package analytics

import (
	"github.com/Jain-Tirth/Journalite/internal/domain"
)

// MoodCorrelations cross-tabulates mood against tag co-occurrence, entry
// length bucket, time-of-day bucket, and weather category. Axes whose
// source field is absent from every entry come back as empty maps.
func (e *Engine) MoodCorrelations(entries []domain.Entry) domain.MoodCorrelationsReport {
	report := domain.MoodCorrelationsReport{
		Tags:      map[string]domain.MoodBreakdown{},
		Length:    map[string]domain.MoodBreakdown{},
		TimeOfDay: map[string]domain.MoodBreakdown{},
		Weather:   map[string]domain.MoodBreakdown{},
	}

	for _, entry := range entries {
		mood := entry.MoodLabel()

		for _, tag := range entry.Tags {
			addCorrelation(report.Tags, tag, mood)
		}
		addCorrelation(report.Length, lengthBucket(entry.WordCount()), mood)
		addCorrelation(report.TimeOfDay, timeBucket(entry.CreatedAt.Hour()), mood)
		if entry.Weather != "" {
			addCorrelation(report.Weather, entry.Weather, mood)
		}
	}

	return report
}

func addCorrelation(table map[string]domain.MoodBreakdown, key, mood string) {
	breakdown, ok := table[key]
	if !ok {
		breakdown = domain.MoodBreakdown{Moods: make(map[string]int)}
	}
	breakdown.Count++
	breakdown.Moods[mood]++
	table[key] = breakdown
}
