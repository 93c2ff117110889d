package errors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// ErrorDump flattens an error chain for a single structured log entry.
type ErrorDump struct {
	TopMessage string   `json:"top_message"`
	Code       Code     `json:"code,omitempty"`
	Retryable  bool     `json:"retryable"`
	Chain      []string `json:"chain,omitempty"`
	PG         PGFields `json:"pg"`
}

// PGFields are the server-reported details of a Postgres failure, whichever
// driver surfaced it.
type PGFields struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Detail  string `json:"detail,omitempty"`
	Table   string `json:"table,omitempty"`
	Column  string `json:"column,omitempty"`
}

func Dump(err error) ErrorDump {
	if err == nil {
		return ErrorDump{}
	}

	d := ErrorDump{TopMessage: err.Error(), Code: CodeInternal}
	if te := As(err); te != nil {
		d.Code = te.Code()
	}
	d.Retryable = MetadataFor(d.Code).Retryable

	for e := err; e != nil; e = errors.Unwrap(e) {
		d.Chain = append(d.Chain, fmt.Sprintf("%T: %v", e, e))
	}
	d.PG = pgFields(err)
	return d
}

func pgFields(err error) PGFields {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return PGFields{
			Code:    pgxErr.Code,
			Message: pgxErr.Message,
			Detail:  pgxErr.Detail,
			Table:   pgxErr.TableName,
			Column:  pgxErr.ColumnName,
		}
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return PGFields{
			Code:    string(pqErr.Code),
			Message: pqErr.Message,
			Detail:  pqErr.Detail,
			Table:   pqErr.Table,
			Column:  pqErr.Column,
		}
	}
	return PGFields{}
}

// Fields renders the dump as log fields, skipping empty Postgres details.
func (d ErrorDump) Fields() map[string]any {
	fields := map[string]any{
		"error":       d.TopMessage,
		"error_code":  d.Code,
		"error_chain": d.Chain,
		"retryable":   d.Retryable,
	}
	for key, value := range map[string]string{
		"pg_code":    d.PG.Code,
		"pg_message": d.PG.Message,
		"pg_detail":  d.PG.Detail,
		"pg_table":   d.PG.Table,
		"pg_column":  d.PG.Column,
	} {
		if value != "" {
			fields[key] = value
		}
	}
	return fields
}
