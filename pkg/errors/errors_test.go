package errors

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataForKnownAndUnknownCodes(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, MetadataFor(CodeInvalidParameter).HTTPStatus)
	assert.Equal(t, http.StatusInternalServerError, MetadataFor(CodeQueryFailed).HTTPStatus)
	assert.True(t, MetadataFor(CodeQueryTimeout).Retryable)
	assert.Equal(t, MetadataFor(CodeInternal), MetadataFor(Code("SOMETHING_ELSE")))
}

func TestWrapPreservesCauseAndCode(t *testing.T) {
	cause := context.DeadlineExceeded
	err := Wrap(CodeQueryTimeout, cause, "store-sales query timed out")

	wrapped := fmt.Errorf("service: %w", err)
	typed := As(wrapped)
	require.NotNil(t, typed)
	assert.Equal(t, CodeQueryTimeout, typed.Code())
	assert.ErrorIs(t, wrapped, context.DeadlineExceeded)
	assert.True(t, Is(wrapped, CodeQueryTimeout))
	assert.False(t, Is(wrapped, CodeQueryFailed))
}

func TestInvalidParameterCarriesField(t *testing.T) {
	err := InvalidParameter("start_date", "start_date must not be after end_date")
	assert.Equal(t, CodeInvalidParameter, err.Code())
	assert.Equal(t, map[string]any{"field": "start_date"}, err.Details())
}

func TestDumpExtractsPostgresFields(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "57014", Message: "canceling statement due to statement timeout", TableName: "daily_sales"}
	err := Wrap(CodeQueryFailed, pgErr, "store-sales query failed")

	dump := Dump(err)
	assert.Equal(t, CodeQueryFailed, dump.Code)
	assert.Equal(t, "57014", dump.PG.Code)
	assert.Equal(t, "daily_sales", dump.PG.Table)
	assert.Len(t, dump.Chain, 2)

	fields := dump.Fields()
	assert.Equal(t, "57014", fields["pg_code"])
	assert.NotContains(t, fields, "pg_detail")
}

func TestDumpUntypedErrorIsInternal(t *testing.T) {
	dump := Dump(fmt.Errorf("boom"))
	assert.Equal(t, CodeInternal, dump.Code)
	assert.False(t, dump.Retryable)
	assert.NotContains(t, dump.Fields(), "pg_code")
}

func TestDumpNil(t *testing.T) {
	assert.Equal(t, ErrorDump{}, Dump(nil))
}
