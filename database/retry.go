package database

import (
	"errors"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	maxRetries = 3
	retryDelay = 100 * time.Millisecond
)

// serialization_failure and deadlock_detected; Postgres asks the client to
// retry the whole transaction for both.
func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}

// WithRetry re-runs fn a bounded number of times when the database reports
// a serialization failure or deadlock. Business errors pass through
// untouched on the first attempt.
func WithRetry(fn func() error) error {
	var err error
	for attempt := 0; attempt < maxRetries; attempt++ {
		err = fn()
		if err == nil || !isRetryable(err) {
			return err
		}
		log.Printf("Retrying transaction after transient database error (attempt %d): %v", attempt+1, err)
		time.Sleep(retryDelay * time.Duration(attempt+1))
	}
	return err
}
