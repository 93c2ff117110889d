package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// pgQueryCanceled is raised when statement_timeout fires or the client cancels.
const pgQueryCanceled = "57014"

// IsTimeout reports whether err stems from a deadline, a cancellation or a
// server-side statement timeout rather than a broken query.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgQueryCanceled
	}
	return false
}
