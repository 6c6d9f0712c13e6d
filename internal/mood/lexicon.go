package mood

import (
	"sort"
	"strings"

	"github.com/Jain-Tirth/Journalite/internal/domain"
)

// emotionKeywords maps emotion labels to indicator phrases. Several phrases
// deliberately appear under more than one label ("betrayed" counts toward
// both angry and heartbroken): shared keywords model emotional ambiguity
// and must not be deduplicated across categories.
var emotionKeywords = map[string][]string{
	"happy": {
		"happy", "joy", "excited", "cheerful", "delighted", "pleased",
		"content", "satisfied", "glad", "elated",
	},
	"sad": {
		"sad", "depressed", "heartbroken", "lonely", "rejected", "crying",
		"cheated",
	},
	"angry":   {"angry", "mad", "rage", "betrayed", "cheated"},
	"anxious": {"worried", "scared", "insecure", "paranoid"},
	"excited": {
		"excited", "thrilled", "enthusiastic", "eager", "pumped",
		"energetic", "animated", "exhilarated", "ecstatic",
	},
	"calm": {
		"calm", "peaceful", "relaxed", "serene", "tranquil", "composed",
		"zen", "balanced", "centered", "still",
	},
	"grateful": {
		"grateful", "thankful", "appreciative", "blessed", "fortunate",
		"lucky", "indebted", "obliged",
	},
	"confused": {
		"confused", "puzzled", "bewildered", "perplexed", "uncertain",
		"unclear", "lost", "mixed up",
	},
	"surprised": {
		"surprised", "shocked", "amazed", "astonished", "stunned",
		"startled", "bewildered", "flabbergasted",
	},
	"tired": {
		"tired", "exhausted", "weary", "fatigued", "drained", "worn out",
		"sleepy", "lethargic", "spent",
	},
	"heartbroken": {"sad", "betrayed", "broken", "hurt", "grief"},
	"cheater":     {"betrayed", "deceived", "heartbroken"},
}

// ScoreKeywords matches the emotion lexicon against normalized text and
// returns a density score per emotion: the number of lexicon phrases
// occurring as substrings, divided by the text's word count. Emotions with
// no matches are omitted.
func ScoreKeywords(text string) domain.SignalScores {
	words := len(strings.Fields(text))
	if words == 0 {
		return domain.SignalScores{}
	}

	scores := make(domain.SignalScores)
	for emotion, keywords := range emotionKeywords {
		matches := 0
		for _, keyword := range keywords {
			if strings.Contains(text, keyword) {
				matches++
			}
		}
		if matches > 0 {
			scores[emotion] = float64(matches) / float64(words)
		}
	}
	return scores
}

// ExtractKeywords returns the deduplicated, sorted set of lexicon phrases
// found in the text, used as explanation output alongside the fused mood.
func ExtractKeywords(text string) []string {
	seen := make(map[string]struct{})
	for _, keywords := range emotionKeywords {
		for _, keyword := range keywords {
			if strings.Contains(text, keyword) {
				seen[keyword] = struct{}{}
			}
		}
	}

	matched := make([]string, 0, len(seen))
	for keyword := range seen {
		matched = append(matched, keyword)
	}
	sort.Strings(matched)
	return matched
}
