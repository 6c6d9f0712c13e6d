package domain

import (
	"strings"
	"time"
)

// Entry is a single journal entry as fetched from storage or submitted in a
// request body. Entries are read-only to the analytics core; only the
// storage layer mutates them (mood write-back).
type Entry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id,omitempty"`
	Title     string    `json:"title,omitempty"`
	Content   string    `json:"content"`
	Mood      string    `json:"mood,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	Weather   string    `json:"weather,omitempty"`
	AutoMood  bool      `json:"auto_mood,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// WordCount counts whitespace-separated tokens in the entry content.
func (e Entry) WordCount() int {
	return len(strings.Fields(e.Content))
}

// MoodLabel returns the entry mood, defaulting to "neutral" when unset.
func (e Entry) MoodLabel() string {
	if e.Mood == "" {
		return "neutral"
	}
	return e.Mood
}
