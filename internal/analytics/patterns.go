package analytics

import (
	"sort"
	"time"

	"github.com/Jain-Tirth/Journalite/internal/domain"
)

var timeBuckets = []string{"morning", "afternoon", "evening", "night"}

func timeBucket(hour int) string {
	switch {
	case hour >= 6 && hour < 12:
		return "morning"
	case hour >= 12 && hour < 18:
		return "afternoon"
	case hour >= 18 && hour < 22:
		return "evening"
	default:
		return "night"
	}
}

var lengthBuckets = []string{"0-100 words", "100-300 words", "300-500 words", "500+ words"}

func lengthBucket(wordCount int) string {
	switch {
	case wordCount <= 100:
		return lengthBuckets[0]
	case wordCount <= 300:
		return lengthBuckets[1]
	case wordCount <= 500:
		return lengthBuckets[2]
	default:
		return lengthBuckets[3]
	}
}

// WritingPatterns analyzes when and how much the user writes: time-of-day
// and entry-length distributions, per-weekday counts, the current writing
// streak, and a productivity comparison of recent against earliest days.
func (e *Engine) WritingPatterns(entries []domain.Entry) domain.WritingPatternsReport {
	if len(entries) == 0 {
		return domain.WritingPatternsReport{
			TimeDistribution:   []domain.BucketShare{},
			LengthDistribution: []domain.BucketShare{},
			WeeklyPattern:      map[string]int{},
		}
	}

	total := len(entries)
	timeCounts := make(map[string]int)
	lengthCounts := make(map[string]int)
	weekly := make(map[string]int)
	wordsByDate := make(map[string]int)
	entriesByDate := make(map[string]int)

	totalWords := 0
	longest := 0
	shortest := -1
	for _, entry := range entries {
		wordCount := entry.WordCount()
		totalWords += wordCount
		if wordCount > longest {
			longest = wordCount
		}
		if shortest < 0 || wordCount < shortest {
			shortest = wordCount
		}

		timeCounts[timeBucket(entry.CreatedAt.Hour())]++
		lengthCounts[lengthBucket(wordCount)]++
		weekly[entry.CreatedAt.Weekday().String()]++

		key := dateKey(entry.CreatedAt)
		wordsByDate[key] += wordCount
		entriesByDate[key]++
	}

	stats := domain.WritingStats{
		TotalEntries:      total,
		TotalWords:        totalWords,
		AverageLength:     round1(float64(totalWords) / float64(total)),
		LongestEntry:      longest,
		ShortestEntry:     shortest,
		WritingStreak:     writingStreak(entries),
		MostProductiveDay: maxWeekday(weekly),
		FavoriteTime:      maxBucket(timeCounts, timeBuckets),
		ConsistencyScore:  consistencyScore(entries),
	}

	return domain.WritingPatternsReport{
		TimeDistribution:   bucketShares(timeCounts, timeBuckets, total),
		LengthDistribution: bucketShares(lengthCounts, lengthBuckets, total),
		WeeklyPattern:      weekly,
		Stats:              stats,
		Productivity:       productivity(wordsByDate, entriesByDate),
	}
}

func bucketShares(counts map[string]int, order []string, total int) []domain.BucketShare {
	shares := make([]domain.BucketShare, len(order))
	for i, label := range order {
		count := counts[label]
		shares[i] = domain.BucketShare{
			Label:      label,
			Count:      count,
			Percentage: round1(float64(count) / float64(total) * 100),
		}
	}
	return shares
}

// writingStreak counts consecutive calendar days with at least one entry,
// walking backward from the most recent entry date and stopping at the
// first gap.
func writingStreak(entries []domain.Entry) int {
	if len(entries) == 0 {
		return 0
	}

	days := make(map[string]struct{})
	var latest time.Time
	for _, entry := range entries {
		days[dateKey(entry.CreatedAt)] = struct{}{}
		if entry.CreatedAt.After(latest) {
			latest = entry.CreatedAt
		}
	}

	streak := 0
	for day := latest; ; day = day.AddDate(0, 0, -1) {
		if _, ok := days[dateKey(day)]; !ok {
			break
		}
		streak++
	}
	return streak
}

// consistencyScore is the fraction of calendar days in the observed range
// with at least one entry. A single-day collection scores 1.
func consistencyScore(entries []domain.Entry) float64 {
	dates := distinctDates(entries)
	if len(dates) == 0 {
		return 0
	}

	first, err := time.Parse(dateLayout, dates[0])
	if err != nil {
		return 0
	}
	last, err := time.Parse(dateLayout, dates[len(dates)-1])
	if err != nil {
		return 0
	}

	span := int(last.Sub(first).Hours()/24) + 1
	return round3(float64(len(dates)) / float64(span))
}

func productivity(wordsByDate, entriesByDate map[string]int) domain.ProductivityReport {
	dates := make([]string, 0, len(wordsByDate))
	for date := range wordsByDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	dailyWords := make([]float64, len(dates))
	totalEntries := 0
	bestDate := ""
	bestWords := -1
	for i, date := range dates {
		words := wordsByDate[date]
		dailyWords[i] = float64(words)
		totalEntries += entriesByDate[date]
		if words > bestWords {
			bestWords = words
			bestDate = date
		}
	}

	return domain.ProductivityReport{
		MostProductiveDate:   bestDate,
		AverageDailyWords:    round1(mean(dailyWords)),
		AverageEntriesPerDay: round1(float64(totalEntries) / float64(len(dates))),
		Trend:                trendLabel(tailMean(dailyWords, 7), headMean(dailyWords, 7), 1.1, 0.9),
	}
}

// maxWeekday picks the weekday with the highest count, scanning Monday
// through Sunday so ties resolve deterministically.
func maxWeekday(weekly map[string]int) string {
	order := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	best := ""
	bestCount := -1
	for _, day := range order {
		if count, ok := weekly[day]; ok && count > bestCount {
			best = day
			bestCount = count
		}
	}
	return best
}

func maxBucket(counts map[string]int, order []string) string {
	best := ""
	bestCount := -1
	for _, label := range order {
		if counts[label] > bestCount {
			best = label
			bestCount = counts[label]
		}
	}
	return best
}
