package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RequestLog records analytics requests for monitoring. Writes are
// best-effort at the call site; this type only reports the error.
type RequestLog struct {
	pool *pgxpool.Pool
}

func NewRequestLog(pool *pgxpool.Pool) *RequestLog {
	return &RequestLog{pool: pool}
}

func (l *RequestLog) LogRequest(ctx context.Context, userID, requestType string, took time.Duration) error {
	start := time.Now()
	_, err := l.pool.Exec(ctx, `
		INSERT INTO analytics_requests (user_id, request_type, processing_time_ms)
		VALUES ($1, $2, $3)`,
		userID, requestType, took.Milliseconds())
	observeQuery("log_request", start, err)
	if err != nil {
		return fmt.Errorf("failed to log analytics request: %w", err)
	}
	return nil
}
