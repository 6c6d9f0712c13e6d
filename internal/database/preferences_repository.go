package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PreferencesRepo stores per-user analytics preferences as a JSON blob.
type PreferencesRepo struct {
	pool *pgxpool.Pool
}

func NewPreferencesRepo(pool *pgxpool.Pool) *PreferencesRepo {
	return &PreferencesRepo{pool: pool}
}

// Get returns the user's preferences, or an empty map when none are stored.
func (r *PreferencesRepo) Get(ctx context.Context, userID string) (map[string]any, error) {
	start := time.Now()
	var raw []byte
	err := r.pool.QueryRow(ctx, `
		SELECT analytics_preferences FROM user_preferences WHERE user_id = $1`,
		userID).Scan(&raw)
	observeQuery("get_preferences", start, err)
	if errors.Is(err, pgx.ErrNoRows) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}

	var prefs map[string]any
	if err := json.Unmarshal(raw, &prefs); err != nil {
		return nil, fmt.Errorf("failed to decode preferences: %w", err)
	}
	return prefs, nil
}

// Update upserts the user's preferences.
func (r *PreferencesRepo) Update(ctx context.Context, userID string, prefs map[string]any) error {
	raw, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	start := time.Now()
	_, err = r.pool.Exec(ctx, `
		INSERT INTO user_preferences (user_id, analytics_preferences, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			analytics_preferences = EXCLUDED.analytics_preferences,
			updated_at = NOW()`,
		userID, raw)
	observeQuery("update_preferences", start, err)
	if err != nil {
		return fmt.Errorf("failed to update preferences: %w", err)
	}
	return nil
}
