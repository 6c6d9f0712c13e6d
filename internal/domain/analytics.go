package domain

import "time"

// EmotionShare is one row of the emotion distribution: how often a mood
// label occurs across a collection, as a percentage of all entries.
type EmotionShare struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Count int     `json:"count"`
	Emoji string  `json:"emoji"`
	Trend string  `json:"trend"`
}

// SentimentBand is one of the five fixed polarity bands (Very Positive
// through Very Negative) with its share of entries in percent.
type SentimentBand struct {
	Sentiment string  `json:"sentiment"`
	Value     float64 `json:"value"`
	Color     string  `json:"color"`
}

// DailySentiment is the mean polarity of all entries written on one
// calendar date.
type DailySentiment struct {
	Date  string  `json:"date"`
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

// SentimentReport aggregates per-entry polarity into a band distribution
// and a per-date time series.
type SentimentReport struct {
	Distribution     []SentimentBand  `json:"distribution"`
	OverTime         []DailySentiment `json:"over_time"`
	AverageSentiment float64          `json:"average_sentiment"`
	Volatility       float64          `json:"sentiment_volatility"`
}

// WordCloudEntry is one word of the word/sentiment map. Size is a rendering
// hint, not a statistical quantity.
type WordCloudEntry struct {
	Text           string   `json:"text"`
	Frequency      int      `json:"frequency"`
	Size           int      `json:"size"`
	Sentiment      string   `json:"sentiment"`
	SentimentScore float64  `json:"sentiment_score"`
	Color          string   `json:"color"`
	Contexts       []string `json:"contexts"`
}

// BucketShare is a generic labelled count with its percentage of the total,
// used for time-of-day and entry-length distributions.
type BucketShare struct {
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// WritingStats summarizes a collection of entries.
type WritingStats struct {
	TotalEntries      int     `json:"total_entries"`
	TotalWords        int     `json:"total_words"`
	AverageLength     float64 `json:"average_length"`
	LongestEntry      int     `json:"longest_entry"`
	ShortestEntry     int     `json:"shortest_entry"`
	WritingStreak     int     `json:"writing_streak"`
	MostProductiveDay string  `json:"most_productive_day"`
	FavoriteTime      string  `json:"favorite_time"`
	ConsistencyScore  float64 `json:"consistency_score"`
}

// ProductivityReport compares recent daily output against the earliest
// observed days.
type ProductivityReport struct {
	MostProductiveDate   string  `json:"most_productive_day"`
	AverageDailyWords    float64 `json:"average_daily_words"`
	AverageEntriesPerDay float64 `json:"average_entries_per_day"`
	Trend                string  `json:"productivity_trend"`
}

// WritingPatternsReport bundles all habit analyses.
type WritingPatternsReport struct {
	TimeDistribution   []BucketShare      `json:"time_distribution"`
	LengthDistribution []BucketShare      `json:"length_distribution"`
	WeeklyPattern      map[string]int     `json:"weekly_pattern"`
	Stats              WritingStats       `json:"stats"`
	Productivity       ProductivityReport `json:"productivity"`
}

// MoodBreakdown is the mood distribution conditioned on one value of
// another variable (a tag, a length bucket, a time-of-day bucket, a
// weather category).
type MoodBreakdown struct {
	Count int            `json:"count"`
	Moods map[string]int `json:"moods"`
}

// MoodCorrelationsReport cross-tabulates mood against the other entry
// attributes. Axes whose source field is absent from every entry come back
// as empty maps, never nil errors.
type MoodCorrelationsReport struct {
	Tags      map[string]MoodBreakdown `json:"mood_tag_correlations"`
	Length    map[string]MoodBreakdown `json:"mood_length_correlations"`
	TimeOfDay map[string]MoodBreakdown `json:"time_mood_correlations"`
	Weather   map[string]MoodBreakdown `json:"weather_correlations"`
}

// AnalyticsBundle is the full recomputed insights payload for one user.
// Freshness is enforced by the cache collaborator (1-hour TTL), not here.
type AnalyticsBundle struct {
	EmotionDistribution []EmotionShare         `json:"emotion_distribution"`
	Sentiment           SentimentReport        `json:"sentiment_analysis"`
	WordCloud           []WordCloudEntry       `json:"word_cloud"`
	WritingPatterns     WritingPatternsReport  `json:"writing_patterns"`
	MoodCorrelations    MoodCorrelationsReport `json:"mood_correlations"`
	GeneratedAt         time.Time              `json:"generated_at"`
}

// BatchDetectionResult reports the outcome of auto-detecting moods across a
// user's entries.
type BatchDetectionResult struct {
	Updated   int `json:"updated_count"`
	Failed    int `json:"failed_count"`
	Processed int `json:"total_processed"`
}
