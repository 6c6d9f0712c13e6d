package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Jain-Tirth/Journalite/internal/domain"
)

// EntryRepo implements domain.EntryRepository backed by PostgreSQL.
type EntryRepo struct {
	pool *pgxpool.Pool
}

func NewEntryRepo(pool *pgxpool.Pool) *EntryRepo {
	return &EntryRepo{pool: pool}
}

// ListByUser returns all entries for a user, newest first.
func (r *EntryRepo) ListByUser(ctx context.Context, userID string) ([]domain.Entry, error) {
	start := time.Now()
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, title, content, mood, tags, weather, auto_mood, created_at
		FROM journal_entries
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
	observeQuery("list_entries", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		var entry domain.Entry
		if err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.Title, &entry.Content,
			&entry.Mood, &entry.Tags, &entry.Weather, &entry.AutoMood,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}
	return entries, nil
}

// UpdateMood writes a detected mood back onto an entry and flags it as
// auto-detected.
func (r *EntryRepo) UpdateMood(ctx context.Context, entryID string, result domain.MoodResult) error {
	emotions, err := json.Marshal(result.Emotions)
	if err != nil {
		return fmt.Errorf("failed to encode detected emotions: %w", err)
	}

	start := time.Now()
	tag, err := r.pool.Exec(ctx, `
		UPDATE journal_entries
		SET mood = $2,
			mood_confidence = $3,
			detected_emotions = $4,
			sentiment_score = $5,
			mood_keywords = $6,
			auto_mood = TRUE,
			mood_detected_at = NOW()
		WHERE id = $1`,
		entryID, result.PrimaryMood, result.Confidence, emotions,
		result.SentimentScore, result.Keywords)
	observeQuery("update_entry_mood", start, err)
	if err != nil {
		return fmt.Errorf("failed to update entry mood: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}
