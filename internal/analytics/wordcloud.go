package analytics

import (
	"regexp"
	"sort"
	"strings"

	"github.com/Jain-Tirth/Journalite/internal/domain"
)

const (
	wordCloudLimit = 50
	maxContexts    = 3
	minWordLength  = 4
	positiveCutoff = 0.1
	negativeCutoff = -0.1
)

var nonWordPattern = regexp.MustCompile(`[^\w\s]`)

// WordCloud tokenizes the combined text of all entries, keeps the 50 most
// frequent meaningful words, and attaches each word's in-context sentiment
// with up to three example sentences. The Size field is a rendering hint.
func (e *Engine) WordCloud(entries []domain.Entry) []domain.WordCloudEntry {
	if len(entries) == 0 {
		return []domain.WordCloudEntry{}
	}

	contents := make([]string, len(entries))
	for i, entry := range entries {
		contents[i] = entry.Content
	}
	combined := strings.ToLower(strings.Join(contents, " "))
	combined = nonWordPattern.ReplaceAllString(combined, " ")

	frequencies := make(map[string]int)
	for _, word := range strings.Fields(combined) {
		if len(word) < minWordLength || stopWords[word] {
			continue
		}
		frequencies[word]++
	}
	if len(frequencies) == 0 {
		return []domain.WordCloudEntry{}
	}

	words := make([]string, 0, len(frequencies))
	for word := range frequencies {
		words = append(words, word)
	}
	sort.Slice(words, func(i, j int) bool {
		if frequencies[words[i]] != frequencies[words[j]] {
			return frequencies[words[i]] > frequencies[words[j]]
		}
		return words[i] < words[j]
	})
	if len(words) > wordCloudLimit {
		words = words[:wordCloudLimit]
	}

	cloud := make([]domain.WordCloudEntry, len(words))
	for i, word := range words {
		score, contexts := e.wordSentiment(word, entries)
		frequency := frequencies[word]
		cloud[i] = domain.WordCloudEntry{
			Text:           word,
			Frequency:      frequency,
			Size:           sizeHint(frequency),
			Sentiment:      sentimentCategory(score),
			SentimentScore: score,
			Color:          sentimentColor(score),
			Contexts:       contexts,
		}
	}
	return cloud
}

// wordSentiment averages the polarity of every sentence containing the
// word across all entries and collects up to three example sentences.
func (e *Engine) wordSentiment(word string, entries []domain.Entry) (float64, []string) {
	var scores []float64
	contexts := []string{}

	for _, entry := range entries {
		content := strings.ToLower(entry.Content)
		if !strings.Contains(content, word) {
			continue
		}
		for _, sentence := range strings.Split(content, ".") {
			if !strings.Contains(sentence, word) {
				continue
			}
			scores = append(scores, e.scorer.Polarity(sentence))
			if len(contexts) < maxContexts {
				contexts = append(contexts, strings.TrimSpace(sentence))
			}
		}
	}

	if len(scores) == 0 {
		return 0, contexts
	}
	return mean(scores), contexts
}

func sizeHint(frequency int) int {
	size := 12 + frequency*2
	if size > 60 {
		return 60
	}
	return size
}

func sentimentCategory(score float64) string {
	switch {
	case score > positiveCutoff:
		return "positive"
	case score < negativeCutoff:
		return "negative"
	default:
		return "neutral"
	}
}

func sentimentColor(score float64) string {
	switch {
	case score > positiveCutoff:
		return "#10B981"
	case score < negativeCutoff:
		return "#EF4444"
	default:
		return "#6B7280"
	}
}
