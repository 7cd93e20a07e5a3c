package sqlerr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/txtstore/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// opError stands in for the record store's error type.
type opError struct {
	op  string
	err error
}

func (e *opError) Error() string          { return e.op + " record: " + e.err.Error() }
func (e *opError) Unwrap() error          { return e.err }
func (e *opError) StoreOperation() string { return e.op }

func TestHandleError_UniformStoreFailure(t *testing.T) {
	uniqueViolation := ConvertPgError(&pgconn.PgError{
		Severity:   "ERROR",
		Code:       "23505",
		Message:    "duplicate key value violates unique constraint \"test_pkey\"",
		TableName:  "test",
		ColumnName: "id",
	})

	tests := []struct {
		name string
		err  error
	}{
		{name: "no rows", err: &opError{op: "delete", err: pgx.ErrNoRows}},
		{name: "constraint violation", err: &opError{op: "create", err: uniqueViolation}},
		{name: "connection lost", err: &opError{op: "list", err: errors.New("conn closed")}},
		{name: "deadline", err: fmt.Errorf("service: %w", &opError{op: "create", err: context.DeadlineExceeded})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := HandleError(tt.err)

			var httpErr *errs.HTTPError
			require.ErrorAs(t, mapped, &httpErr)
			assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
			assert.Equal(t, tt.err.Error(), httpErr.Message)
			assert.True(t, httpErr.Plain)
			assert.NotEmpty(t, httpErr.Message)
			assert.ErrorIs(t, mapped, tt.err)

			// Same error in, same response out.
			assert.Equal(t, mapped, HandleError(tt.err))
		})
	}
}

func TestHandleError_OtherFailuresAreGeneric(t *testing.T) {
	cause := errors.New("open static/openapi.html: no such file or directory")

	mapped := HandleError(cause)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, mapped, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", httpErr.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), httpErr.Message)
	assert.False(t, httpErr.Plain)
	assert.ErrorIs(t, mapped, cause)
	assert.False(t, IsStoreFailure(cause))
}

func TestHandleError_PassesHTTPErrorThrough(t *testing.T) {
	in := errs.NewBadRequestError("bad id", false, nil, nil)
	assert.Same(t, in, HandleError(in))
	assert.NoError(t, HandleError(nil))
}

func TestClassify(t *testing.T) {
	pgErr := ConvertPgError(&pgconn.PgError{Code: "23502", Severity: "ERROR", TableName: "test", ColumnName: "txt"})

	assert.Equal(t, NotNullViolation, Classify(fmt.Errorf("create: %w", pgErr)))
	assert.Equal(t, NoRows, Classify(fmt.Errorf("delete: %w", pgx.ErrNoRows)))
	assert.Equal(t, Timeout, Classify(context.DeadlineExceeded))
	assert.Equal(t, Other, Classify(errors.New("boom")))
}

func TestMapCode(t *testing.T) {
	assert.Equal(t, UniqueViolation, MapCode("23505"))
	assert.Equal(t, ConnectionException, MapCode("08006"))
	assert.Equal(t, InsufficientRes, MapCode("53300"))
	assert.Equal(t, Other, MapCode("XX000"))
}

func TestMapSeverity(t *testing.T) {
	assert.Equal(t, SeverityFatal, MapSeverity("FATAL"))
	assert.Equal(t, SeverityError, MapSeverity("nonsense"))
}

func TestSummary(t *testing.T) {
	pgErr := ConvertPgError(&pgconn.PgError{Code: "23502", Severity: "ERROR", TableName: "test", ColumnName: "txt"})

	assert.Equal(t, "not null violation on Test.Txt", Summary(pgErr))
	assert.Equal(t, "No Rows", Summary(pgx.ErrNoRows))
}

func TestError_UnwrapsDriverError(t *testing.T) {
	src := &pgconn.PgError{Code: "23505", Message: "duplicate"}
	converted := ConvertPgError(src)

	var got *pgconn.PgError
	require.ErrorAs(t, converted, &got)
	assert.Same(t, src, got)
	assert.Equal(t, "duplicate (SQLSTATE 23505)", converted.Error())
}
